package assembler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/golang/glog"
)

// File extensions used for one base name.
const (
	ExtSource   = ".as"
	ExtExpanded = ".am"
	ExtObject   = ".ob"
	ExtEntries  = ".ent"
	ExtExterns  = ".ext"
	ExtErrors   = ".err"
)

// BuildFile assembles base.as. The expanded source is always written to
// base.am. On success base.ob is written, plus base.ent and base.ext when
// there are entry or extern labels. If the source has errors only base.err
// is written and the Diagnostics are returned.
func BuildFile(base string) (*Object, error) {
	src, err := os.ReadFile(base + ExtSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", InvalidFilePath, err)
	}
	if err := removeOutputs(base); err != nil {
		return nil, err
	}

	asm := New()
	obj, asmErr := asm.Assemble(string(src))
	err = writeFile(base+ExtExpanded, func(w io.Writer) error {
		_, err := io.WriteString(w, obj.Expanded)
		return err
	})
	if err != nil {
		return obj, err
	}

	var diags Diagnostics
	if errors.As(asmErr, &diags) {
		glog.V(1).Infof("%s: %d diagnostics", base, len(diags))
		err = writeFile(base+ExtErrors, func(w io.Writer) error {
			return WriteDiagnostics(w, diags)
		})
		if err != nil {
			return obj, err
		}
		return obj, diags
	}
	if asmErr != nil {
		return obj, asmErr
	}

	if err := writeOutputs(base, obj); err != nil {
		_ = removeOutputs(base)
		return obj, err
	}
	glog.V(1).Infof("%s: %d code words, %d data words", base, obj.Memory.IC(), obj.Memory.DC())
	return obj, nil
}

func writeOutputs(base string, obj *Object) error {
	err := writeFile(base+ExtObject, func(w io.Writer) error {
		return WriteObject(w, obj.Memory)
	})
	if err != nil {
		return err
	}

	if obj.Symbols.EntryCount() > 0 {
		err = writeFile(base+ExtEntries, func(w io.Writer) error {
			return WriteEntries(w, obj.Symbols)
		})
		if err != nil {
			return err
		}
	}

	if obj.Symbols.ExternCount() > 0 {
		err = writeFile(base+ExtExterns, func(w io.Writer) error {
			return WriteExterns(w, obj.Symbols)
		})
	}
	return err
}

// removeOutputs deletes results left over from an earlier run.
func removeOutputs(base string) error {
	for _, ext := range []string{ExtObject, ExtEntries, ExtExterns, ExtErrors} {
		if err := os.Remove(base + ext); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// writeFile creates path and hands a buffered writer to fn. The file is
// closed on every path.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err = fn(w); err != nil {
		return err
	}
	return w.Flush()
}
