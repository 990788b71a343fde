package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/Urethramancer/asm16/assembler"
)

func main() {
	os.Exit(run())
}

func run() int {
	opt := arg.New("asm16")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log verbosity (0-2).", 0, false, arg.VarInt, nil)
	opt.SetOption(arg.GroupDefault, "d", "dump", "Print the symbol table of each assembled file.", false, false, arg.VarBool, nil)
	opt.SetPositional("FILE", "Source base names, without the .as extension.", "", true, arg.VarStringSlice)

	err := opt.Parse(os.Args[1:])
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 2
	}
	if opt.GetBool("help") {
		opt.PrintHelp()
		return 0
	}

	// glog registers its flags on the standard flag set; drive them from our options.
	_ = flag.Set("logtostderr", "true")
	_ = flag.Set("v", strconv.Itoa(opt.GetInt("verbose")))
	defer glog.Flush()

	emphasis := term.IsTerminal(int(os.Stderr.Fd()))
	failed := false
	for _, base := range opt.GetPosStringSlice("FILE") {
		obj, err := assembler.BuildFile(base)
		var diags assembler.Diagnostics
		switch {
		case errors.As(err, &diags):
			printDiagnostics(base, diags, emphasis)
			failed = true
			continue
		case err != nil:
			glog.Errorf("%s: %v", base, err)
			return 2
		}

		if opt.GetBool("dump") {
			pp.Fprintln(os.Stderr, obj.Symbols.Labels())
		}
	}

	if failed {
		return 1
	}
	return 0
}

// printDiagnostics reports every problem in a file, with the line number in bold on terminals.
func printDiagnostics(base string, diags assembler.Diagnostics, emphasis bool) {
	for _, d := range diags {
		line := fmt.Sprintf("%s%s:%04d", base, assembler.ExtExpanded, d.Line)
		if emphasis {
			line = "\x1b[1m" + line + "\x1b[0m"
		}
		fmt.Fprintf(os.Stderr, "%s\t%s\n", line, d.Message())
	}
}
