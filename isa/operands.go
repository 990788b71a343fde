package isa

// Operand word layout, least significant bit first.
const (
	destModeShift = 0
	destRegShift  = 2
	srcModeShift  = 6
	srcRegShift   = 8
	functShift    = 12

	modeMask  = 0x3
	regMask   = 0xF
	functMask = 0xF
)

// Operands is the decoded form of the operand word that follows the opcode word.
type Operands struct {
	Funct    uint8
	SrcMode  Mode
	SrcReg   uint8
	DestMode Mode
	DestReg  uint8
}

// Encode packs the operand word.
func (o Operands) Encode() uint16 {
	w := uint16(o.DestMode&modeMask) << destModeShift
	w |= uint16(o.DestReg&regMask) << destRegShift
	w |= uint16(o.SrcMode&modeMask) << srcModeShift
	w |= uint16(o.SrcReg&regMask) << srcRegShift
	w |= uint16(o.Funct&functMask) << functShift
	return w
}

// DecodeOperands unpacks an operand word.
func DecodeOperands(w uint16) Operands {
	return Operands{
		Funct:    uint8(w>>functShift) & functMask,
		SrcMode:  Mode(w>>srcModeShift) & modeMask,
		SrcReg:   uint8(w>>srcRegShift) & regMask,
		DestMode: Mode(w>>destModeShift) & modeMask,
		DestReg:  uint8(w>>destRegShift) & regMask,
	}
}
