package memory

// Tag is the relocation marker stored in the top nibble of a packed word.
type Tag uint8

const (
	// External words refer to a symbol imported from another module.
	External Tag = 1
	// Relocatable words hold a local address the loader must relocate.
	Relocatable Tag = 2
	// Absolute words need no fixing.
	Absolute Tag = 4
)

func (t Tag) String() string {
	switch t {
	case Absolute:
		return "A"
	case Relocatable:
		return "R"
	case External:
		return "E"
	}
	return "?"
}

// Word is one addressable location: a 16-bit value and its relocation tag.
type Word struct {
	Value uint16
	Tag   Tag
}

// Packed returns the 20-bit form, tag in the most significant nibble.
func (w Word) Packed() uint32 {
	return uint32(w.Tag&0xF)<<16 | uint32(w.Value)
}

// Unpack splits a 20-bit word into value and tag.
func Unpack(packed uint32) Word {
	return Word{Value: uint16(packed), Tag: Tag((packed >> 16) & 0xF)}
}
