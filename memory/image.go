package memory

import (
	"errors"
	"fmt"
)

const (
	// Size is the number of addressable words.
	Size = 8192
	// CodeStart is the address of the first instruction word.
	CodeStart = 100
	// DataStart is where the data region begins; it grows downward.
	DataStart = Size - 1
)

var (
	// ErrOverflow is returned when the code and data regions meet.
	ErrOverflow = errors.New("not enough memory")
	// ErrAccess is returned for reads or writes outside the emitted regions.
	ErrAccess = errors.New("invalid memory access")
)

// Image is the word store for one assembled file. Code grows up from
// CodeStart, data grows down from DataStart.
type Image struct {
	words [Size]Word
	ic    int
	dc    int
}

// New creates an empty image.
func New() *Image {
	return &Image{ic: CodeStart, dc: DataStart}
}

// IC returns the number of code words pushed.
func (m *Image) IC() int {
	return m.ic - CodeStart
}

// DC returns the number of data words pushed.
func (m *Image) DC() int {
	return DataStart - m.dc
}

// PC returns the total number of words pushed.
func (m *Image) PC() int {
	return m.IC() + m.DC()
}

func (m *Image) write(loc int, w Word) error {
	if m.ic >= m.dc {
		return ErrOverflow
	}
	if loc < 0 || loc >= Size {
		return fmt.Errorf("%w: location %d", ErrAccess, loc)
	}
	m.words[loc] = w
	return nil
}

// PushCode appends an absolute word to the code region.
func (m *Image) PushCode(v uint16) error {
	if err := m.write(m.ic, Word{Value: v, Tag: Absolute}); err != nil {
		return err
	}
	m.ic++
	return nil
}

// PushData appends an absolute word to the data region.
func (m *Image) PushData(v uint16) error {
	if err := m.write(m.dc, Word{Value: v, Tag: Absolute}); err != nil {
		return err
	}
	m.dc--
	return nil
}

// RewriteCode replaces an already emitted code word.
func (m *Image) RewriteCode(v uint16, tag Tag, offset int) error {
	loc := offset + CodeStart
	if offset < 0 || loc >= m.ic {
		return fmt.Errorf("%w: code offset %d", ErrAccess, offset)
	}
	m.words[loc] = Word{Value: v, Tag: tag}
	return nil
}

// Code returns the code word at offset, or a zero word if none was pushed there.
func (m *Image) Code(offset int) Word {
	loc := offset + CodeStart
	if offset < 0 || loc >= m.ic {
		return Word{}
	}
	return m.words[loc]
}

// Data returns the data word at offset, or a zero word if none was pushed there.
func (m *Image) Data(offset int) Word {
	loc := DataStart - offset
	if offset < 0 || loc <= m.dc {
		return Word{}
	}
	return m.words[loc]
}

// CodeWords returns the code region in push order.
func (m *Image) CodeWords() []Word {
	out := make([]Word, m.IC())
	copy(out, m.words[CodeStart:m.ic])
	return out
}

// DataWords returns the data region in push order.
func (m *Image) DataWords() []Word {
	out := make([]Word, 0, m.DC())
	for i := 0; i < m.DC(); i++ {
		out = append(out, m.Data(i))
	}
	return out
}
