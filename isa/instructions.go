package isa

import "strconv"

// Instruction describes one machine instruction.
type Instruction struct {
	Name   string
	Opcode uint8
	Funct  uint8
	// Src and Dest are masks of the addressing modes allowed per operand.
	Src  uint8
	Dest uint8
}

// Args returns the number of operands the instruction takes.
func (in Instruction) Args() int {
	n := 0
	if in.Src != 0 {
		n++
	}
	if in.Dest != 0 {
		n++
	}
	return n
}

// AllowsSrc reports whether mode is legal in the source position.
func (in Instruction) AllowsSrc(m Mode) bool {
	return in.Src&m.Bit() != 0
}

// AllowsDest reports whether mode is legal in the destination position.
func (in Instruction) AllowsDest(m Mode) bool {
	return in.Dest&m.Bit() != 0
}

// OpcodeWord is the first word of every instruction: the opcode as a one-hot bit.
func (in Instruction) OpcodeWord() uint16 {
	return 1 << in.Opcode
}

const (
	srcOnlyAddr = BitDirect | BitIndex
	destWrite   = BitDirect | BitIndex | BitRegisterDirect
	destJump    = BitDirect | BitIndex
)

// Instructions is the full instruction set in opcode order.
var Instructions = []Instruction{
	{Name: "mov", Opcode: 0, Funct: 0, Src: BitAll, Dest: destWrite},
	{Name: "cmp", Opcode: 1, Funct: 0, Src: BitAll, Dest: BitAll},
	{Name: "add", Opcode: 2, Funct: 10, Src: BitAll, Dest: destWrite},
	{Name: "sub", Opcode: 2, Funct: 11, Src: BitAll, Dest: destWrite},
	{Name: "lea", Opcode: 4, Funct: 0, Src: srcOnlyAddr, Dest: destWrite},
	{Name: "clr", Opcode: 5, Funct: 10, Dest: destWrite},
	{Name: "not", Opcode: 5, Funct: 11, Dest: destWrite},
	{Name: "inc", Opcode: 5, Funct: 12, Dest: destWrite},
	{Name: "dec", Opcode: 5, Funct: 13, Dest: destWrite},
	{Name: "jmp", Opcode: 9, Funct: 10, Dest: destJump},
	{Name: "bne", Opcode: 9, Funct: 11, Dest: destJump},
	{Name: "jsr", Opcode: 9, Funct: 12, Dest: destJump},
	{Name: "red", Opcode: 12, Funct: 0, Dest: destWrite},
	{Name: "prn", Opcode: 13, Funct: 0, Dest: BitAll},
	{Name: "rts", Opcode: 14, Funct: 0},
	{Name: "stop", Opcode: 15, Funct: 0},
}

// RegisterCount is the number of general purpose registers, r0 to r15.
const RegisterCount = 16

// Directive keywords, without the leading dot.
const (
	DirData   = "data"
	DirString = "string"
	DirEntry  = "entry"
	DirExtern = "extern"
)

// Macro keywords.
const (
	MacroStart = "macro"
	MacroEnd   = "endm"
)

var (
	byName    = map[string]Instruction{}
	registers = map[string]uint8{}
	reserved  = map[string]bool{
		DirData:    true,
		DirString:  true,
		DirEntry:   true,
		DirExtern:  true,
		MacroStart: true,
		MacroEnd:   true,
	}
)

func init() {
	for _, in := range Instructions {
		byName[in.Name] = in
		reserved[in.Name] = true
	}
	for i := 0; i < RegisterCount; i++ {
		name := "r" + strconv.Itoa(i)
		registers[name] = uint8(i)
		reserved[name] = true
	}
}

// Lookup finds an instruction by mnemonic.
func Lookup(name string) (Instruction, bool) {
	in, ok := byName[name]
	return in, ok
}

// ByOpcode finds the instruction matching an opcode and funct pair.
func ByOpcode(opcode, funct uint8) (Instruction, bool) {
	for _, in := range Instructions {
		if in.Opcode == opcode && in.Funct == funct {
			return in, true
		}
	}
	return Instruction{}, false
}

// Register returns the number of a register name such as "r7".
func Register(name string) (uint8, bool) {
	n, ok := registers[name]
	return n, ok
}

// IsReserved reports whether name is an instruction, register, directive or macro keyword.
func IsReserved(name string) bool {
	return reserved[name]
}
