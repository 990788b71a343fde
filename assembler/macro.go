package assembler

import (
	"strings"

	"github.com/golang/glog"

	"github.com/Urethramancer/asm16/isa"
)

// Macro is a named block of source lines.
type Macro struct {
	Name string
	Body []string
	// Line is where the definition starts.
	Line int
}

// ExpandMacros removes macro definitions from src and replaces every call
// with the body of the macro. Expansion is one level deep: a call inside a
// body is copied unchanged. Redefining a macro replaces it from that point on.
func ExpandMacros(src string) (string, Diagnostics) {
	var (
		out    strings.Builder
		diags  Diagnostics
		macros = make(map[string]*Macro)
		cur    *Macro
		skip   bool
		start  int
	)

	report := func(line int, kind ErrorKind, detail string) {
		diags = append(diags, Diagnostic{Line: line, Kind: kind, Detail: detail})
	}

	for i, text := range splitLines(src) {
		line := i + 1
		fields := strings.Fields(text)

		if cur != nil || skip {
			if len(fields) > 0 && fields[0] == isa.MacroEnd {
				if len(fields) > 1 {
					report(line, ExtraneousText, strings.Join(fields[1:], " "))
				}
				if cur != nil {
					if _, ok := macros[cur.Name]; ok {
						glog.Warningf("line %d: macro %q redefined", cur.Line, cur.Name)
					}
					macros[cur.Name] = cur
					glog.V(2).Infof("macro %q: %d lines", cur.Name, len(cur.Body))
				}
				cur, skip = nil, false
				continue
			}
			if cur != nil {
				cur.Body = append(cur.Body, text)
			}
			continue
		}

		if len(fields) == 0 {
			out.WriteString(text + "\n")
			continue
		}

		if fields[0] == isa.MacroStart {
			start = line
			switch {
			case len(fields) < 2:
				report(line, MissingArguments, "macro name")
				skip = true
			case !ValidLabel(fields[1]):
				report(line, InvalidMacroName, fields[1])
				skip = true
			default:
				cur = &Macro{Name: fields[1], Line: line}
			}
			if len(fields) > 2 {
				report(line, ExtraneousText, strings.Join(fields[2:], " "))
			}
			continue
		}

		if m, ok := macros[fields[0]]; ok {
			if len(fields) > 1 {
				report(line, ExtraneousText, strings.Join(fields[1:], " "))
			}
			for _, body := range m.Body {
				out.WriteString(body + "\n")
			}
			continue
		}

		out.WriteString(text + "\n")
	}

	switch {
	case cur != nil:
		report(cur.Line, MissingMacroEnd, cur.Name)
	case skip:
		report(start, MissingMacroEnd, "")
	}
	return out.String(), diags
}
