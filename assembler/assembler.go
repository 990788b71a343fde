package assembler

import (
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/Urethramancer/asm16/memory"
)

// Assembler holds the state for assembling one file.
type Assembler struct {
	mem     *memory.Image
	symbols *SymbolTable
	diags   Diagnostics
	line    int
}

// Object is the result of an assembly.
type Object struct {
	// Expanded is the source after macro expansion.
	Expanded string
	Memory   *memory.Image
	Symbols  *SymbolTable
}

// New creates a new Assembler instance.
func New() *Assembler {
	asm := &Assembler{}
	asm.reset()
	return asm
}

func (asm *Assembler) reset() {
	asm.mem = memory.New()
	asm.symbols = NewSymbolTable()
	asm.diags = nil
	asm.line = 0
}

// Assemble expands macros in src, encodes every line, checks that all labels
// are defined and patches label references.
//
// The returned Object is non-nil even on failure, so the expanded source is
// always available. If anything was wrong with the source the error is a
// Diagnostics listing every problem found; any other error is fatal.
func (asm *Assembler) Assemble(src string) (*Object, error) {
	asm.reset()

	expanded, diags := ExpandMacros(src)
	asm.diags = append(asm.diags, diags...)
	obj := &Object{Expanded: expanded, Memory: asm.mem, Symbols: asm.symbols}
	glog.V(1).Infof("macro expansion done: %d diagnostics", len(diags))

	for i, text := range splitLines(expanded) {
		asm.line = i + 1
		st, ok := parseStatement(text, asm.line)
		if !ok {
			continue
		}
		if err := asm.assembleStatement(st); err != nil {
			return obj, fmt.Errorf("line %d: %w", asm.line, err)
		}
	}
	glog.V(1).Infof("line pass done: ic=%d dc=%d labels=%d", asm.mem.IC(), asm.mem.DC(), len(asm.symbols.order))

	asm.diags = append(asm.diags, asm.symbols.Validate()...)
	if len(asm.diags) > 0 {
		return obj, asm.diags
	}

	if err := asm.symbols.Backpatch(asm.mem); err != nil {
		return obj, fmt.Errorf("backpatch failed: %w", err)
	}
	return obj, nil
}

// Diagnostics returns what was recorded by the last Assemble call.
func (asm *Assembler) Diagnostics() Diagnostics {
	return asm.diags
}

// report records a diagnostic on the current line.
func (asm *Assembler) report(kind ErrorKind, detail string) {
	glog.V(2).Infof("line %d: %s (%s)", asm.line, kind, detail)
	asm.diags = append(asm.diags, Diagnostic{Line: asm.line, Kind: kind, Detail: detail})
}

// reportErr records err as a diagnostic if it carries an ErrorKind.
func (asm *Assembler) reportErr(err error, detail string) {
	var kind ErrorKind
	if !errors.As(err, &kind) {
		kind = Unknown
	}
	asm.report(kind, detail)
}

// assembleStatement handles the label definition, then dispatches on the keyword.
func (asm *Assembler) assembleStatement(st Statement) error {
	if st.HasLabel {
		asm.defineLabel(st)
		if st.Keyword == "" {
			asm.report(UnknownCommand, st.Label+":")
			return nil
		}
	}

	if st.IsDirective() {
		return asm.assembleDirective(st)
	}
	return asm.assembleInstruction(st)
}

func (asm *Assembler) defineLabel(st Statement) {
	if !ValidLabel(st.Label) {
		asm.report(InvalidLabelName, st.Label)
		return
	}

	segment := AttrCode
	if st.Keyword == dirData || st.Keyword == dirString {
		segment = AttrData
	}
	address := asm.mem.PC() + memory.CodeStart
	if err := asm.symbols.Define(st.Label, address, segment, asm.line); err != nil {
		asm.reportErr(err, st.Label)
	}
}
