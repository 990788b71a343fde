package assembler

import (
	"github.com/golang/glog"

	"github.com/Urethramancer/asm16/memory"
)

// Attr is a bitmask of label attributes.
type Attr uint8

const (
	// AttrCode marks a label defined in front of an instruction.
	AttrCode Attr = 1 << iota
	// AttrData marks a label defined in front of .data or .string.
	AttrData
	// AttrExtern marks a label imported from another module.
	AttrExtern
	// AttrEntry marks a label exported to other modules.
	AttrEntry
)

// Undefined is the base address of a label that has not been defined yet.
const Undefined = -1

// Label is a symbol and everything known about it.
type Label struct {
	Symbol string
	// Refs holds the code offsets of the placeholder word pairs that name this label.
	Refs   []int
	Base   int
	Offset int
	Attr   Attr
	// Line is where the label first appeared in the source.
	Line int
}

// Has reports whether all bits of a are set.
func (l *Label) Has(a Attr) bool {
	return l.Attr&a == a
}

// Defined reports whether the label has an address.
func (l *Label) Defined() bool {
	return l.Base != Undefined
}

// Address returns base+offset.
func (l *Label) Address() int {
	return l.Base + l.Offset
}

// SymbolTable maps label names to labels for one assembled file.
type SymbolTable struct {
	labels  map[string]*Label
	order   []*Label
	externs int
	entries int
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{labels: make(map[string]*Label)}
}

// Lookup returns a label if it exists.
func (st *SymbolTable) Lookup(symbol string) (*Label, bool) {
	l, ok := st.labels[symbol]
	return l, ok
}

// GetOrCreate returns the named label, creating it undefined when missing.
func (st *SymbolTable) GetOrCreate(symbol string, line int) *Label {
	if l, ok := st.labels[symbol]; ok {
		return l
	}
	l := &Label{Symbol: symbol, Base: Undefined, Line: line}
	st.labels[symbol] = l
	st.order = append(st.order, l)
	return l
}

// Labels returns every label in order of first appearance.
func (st *SymbolTable) Labels() []*Label {
	out := make([]*Label, len(st.order))
	copy(out, st.order)
	return out
}

// ExternCount returns the number of labels marked extern.
func (st *SymbolTable) ExternCount() int {
	return st.externs
}

// EntryCount returns the number of labels marked entry.
func (st *SymbolTable) EntryCount() int {
	return st.entries
}

// Define records the address of a label. A second definition is rejected
// and the first address kept.
func (st *SymbolTable) Define(symbol string, address int, segment Attr, line int) error {
	l := st.GetOrCreate(symbol, line)
	switch {
	case l.Has(AttrExtern):
		return ContraryLabelAttributes
	case l.Defined():
		return MultipleLabelDefinitions
	}
	l.Offset = address % 16
	l.Base = address - l.Offset
	l.Attr |= segment
	glog.V(2).Infof("line %d: defined %q at %d+%d", line, symbol, l.Base, l.Offset)
	return nil
}

// RegisterEntryOrExtern marks a label as exported (entry) or imported (extern).
func (st *SymbolTable) RegisterEntryOrExtern(symbol string, isEntry bool, line int) error {
	l := st.GetOrCreate(symbol, line)
	if isEntry {
		switch {
		case l.Has(AttrExtern):
			return ContraryLabelAttributes
		case l.Has(AttrEntry):
			return nil
		}
		st.entries++
		l.Attr |= AttrEntry
		return nil
	}

	switch {
	case l.Has(AttrEntry):
		return ContraryLabelAttributes
	case l.Has(AttrExtern):
		return nil
	case l.Defined():
		// Already has a local address.
		return ContraryLabelAttributes
	}
	st.externs++
	l.Attr = AttrExtern
	l.Base = 0
	l.Offset = 0
	return nil
}

// RecordReference notes that the word pair at code offset refers to the label.
func (st *SymbolTable) RecordReference(l *Label, offset int) {
	l.Refs = append(l.Refs, offset)
}

// Validate returns an UndefinedLabel diagnostic for every label without an address.
func (st *SymbolTable) Validate() Diagnostics {
	var ds Diagnostics
	for _, l := range st.order {
		if !l.Defined() {
			ds = append(ds, Diagnostic{Line: l.Line, Kind: UndefinedLabel, Detail: l.Symbol})
		}
	}
	return ds
}

// Backpatch fills every reference with the base and offset of its label.
func (st *SymbolTable) Backpatch(m *memory.Image) error {
	for _, l := range st.order {
		tag := memory.Relocatable
		if l.Has(AttrExtern) {
			tag = memory.External
		}
		for _, ref := range l.Refs {
			if err := m.RewriteCode(uint16(l.Base), tag, ref); err != nil {
				return err
			}
			if err := m.RewriteCode(uint16(l.Offset), tag, ref+1); err != nil {
				return err
			}
			glog.V(2).Infof("patched %q at code offset %d", l.Symbol, ref)
		}
	}
	return nil
}
