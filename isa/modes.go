package isa

// Mode is an operand addressing mode (2-bit field in the operand word).
type Mode uint8

const (
	// Immediate: #<data> (00)
	Immediate Mode = 0

	// Direct: label (01)
	Direct Mode = 1

	// Index: label[rN] (10)
	Index Mode = 2

	// Register direct: rN (11)
	RegisterDirect Mode = 3
)

// Addressing mode bits used in the instruction table masks.
const (
	BitImmediate      uint8 = 1 << Immediate
	BitDirect         uint8 = 1 << Direct
	BitIndex          uint8 = 1 << Index
	BitRegisterDirect uint8 = 1 << RegisterDirect

	// BitAll accepts every addressing mode.
	BitAll = BitImmediate | BitDirect | BitIndex | BitRegisterDirect
)

// Bit returns the membership bit for the mode.
func (m Mode) Bit() uint8 {
	return 1 << m
}

// Words returns how many extra words the mode emits after the operand word.
// Register operands live inside the operand word itself.
func (m Mode) Words() int {
	switch m {
	case Immediate:
		return 1
	case Direct, Index:
		return 2
	default:
		return 0
	}
}

func (m Mode) String() string {
	switch m {
	case Immediate:
		return "immediate"
	case Direct:
		return "direct"
	case Index:
		return "index"
	case RegisterDirect:
		return "register direct"
	}
	return "invalid"
}
