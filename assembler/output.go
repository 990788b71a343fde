package assembler

import (
	"fmt"
	"io"
	"strings"

	"github.com/Urethramancer/asm16/memory"
)

// FormatWord renders a word as five lettered nibbles, e.g. "A4-B0-C0-D0-E1".
func FormatWord(w memory.Word) string {
	packed := w.Packed()
	parts := make([]string, 5)
	for i := range parts {
		shift := uint(16 - 4*i)
		parts[i] = fmt.Sprintf("%c%x", 'A'+i, (packed>>shift)&0xF)
	}
	return strings.Join(parts, "-")
}

// WriteObject writes the object file: a header with the code and data word
// counts, then every word, code first, numbered from the code start address.
func WriteObject(w io.Writer, m *memory.Image) error {
	if _, err := fmt.Fprintf(w, "%4d\t%4d\n", m.IC(), m.DC()); err != nil {
		return err
	}

	addr := memory.CodeStart
	words := append(m.CodeWords(), m.DataWords()...)
	for _, word := range words {
		if _, err := fmt.Fprintf(w, "%04d\t%s\n", addr, FormatWord(word)); err != nil {
			return err
		}
		addr++
	}
	return nil
}

// WriteEntries lists every entry label with its base and offset.
func WriteEntries(w io.Writer, st *SymbolTable) error {
	for _, l := range st.Labels() {
		if !l.Has(AttrEntry) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s,%d,%d\n", l.Symbol, l.Base, l.Offset); err != nil {
			return err
		}
	}
	return nil
}

// WriteExterns lists every place an extern label is used.
func WriteExterns(w io.Writer, st *SymbolTable) error {
	for _, l := range st.Labels() {
		if !l.Has(AttrExtern) {
			continue
		}
		for _, ref := range l.Refs {
			addr := ref + memory.CodeStart
			offset := addr % 16
			if _, err := fmt.Fprintf(w, "%s BASE %d\n%s OFFSET %d\n\n", l.Symbol, addr-offset, l.Symbol, offset); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteDiagnostics writes one line per diagnostic.
func WriteDiagnostics(w io.Writer, ds Diagnostics) error {
	for _, d := range ds {
		if _, err := fmt.Fprintln(w, d.Error()); err != nil {
			return err
		}
	}
	return nil
}
