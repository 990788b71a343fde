package disassembler

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/Urethramancer/asm16/isa"
	"github.com/Urethramancer/asm16/memory"
)

var (
	// ErrNotOpcode is returned when a word expected to start an instruction is not one-hot.
	ErrNotOpcode = errors.New("not an opcode word")
	// ErrUnknownInstruction is returned for opcode/funct pairs outside the instruction set.
	ErrUnknownInstruction = errors.New("unknown instruction")
	// ErrTruncated is returned when an instruction runs past the end of the code.
	ErrTruncated = errors.New("truncated instruction")
)

// Instruction represents a single decoded instruction at a specific address.
type Instruction struct {
	Address  int
	Mnemonic string
	Operands []string
	Size     int
}

func (i Instruction) String() string {
	if len(i.Operands) == 0 {
		return i.Mnemonic
	}
	return fmt.Sprintf("%-5s %s", i.Mnemonic, strings.Join(i.Operands, ","))
}

// Disassemble renders the object as a listing, one line per instruction or data item.
func Disassemble(obj *Object) (string, error) {
	var out strings.Builder
	for pc := 0; pc < len(obj.Code); {
		inst, err := Decode(obj.Code, pc)
		if err != nil {
			return "", fmt.Errorf("address %04d: %w", memory.CodeStart+pc, err)
		}
		fmt.Fprintf(&out, "%04d\t%s\n", inst.Address, inst)
		pc += inst.Size
	}
	out.WriteString(formatData(obj.Data, memory.CodeStart+len(obj.Code)))
	return out.String(), nil
}

// Decode decodes the instruction starting at code offset pc.
func Decode(code []memory.Word, pc int) (Instruction, error) {
	if pc < 0 || pc >= len(code) {
		return Instruction{}, ErrTruncated
	}
	first := code[pc].Value
	if bits.OnesCount16(first) != 1 {
		return Instruction{}, fmt.Errorf("%w: %04x", ErrNotOpcode, first)
	}
	opcode := uint8(bits.TrailingZeros16(first))
	inst := Instruction{Address: memory.CodeStart + pc, Size: 1}

	if in, ok := isa.ByOpcode(opcode, 0); ok && in.Args() == 0 {
		inst.Mnemonic = in.Name
		return inst, nil
	}

	if pc+1 >= len(code) {
		return Instruction{}, ErrTruncated
	}
	ops := isa.DecodeOperands(code[pc+1].Value)
	in, ok := isa.ByOpcode(opcode, ops.Funct)
	if !ok {
		return Instruction{}, fmt.Errorf("%w: opcode %d funct %d", ErrUnknownInstruction, opcode, ops.Funct)
	}
	inst.Mnemonic = in.Name
	inst.Size = 2

	if in.Args() == 2 {
		text, used, err := decodeOperand(code, pc+inst.Size, ops.SrcMode, ops.SrcReg)
		if err != nil {
			return Instruction{}, err
		}
		inst.Operands = append(inst.Operands, text)
		inst.Size += used
	}
	text, used, err := decodeOperand(code, pc+inst.Size, ops.DestMode, ops.DestReg)
	if err != nil {
		return Instruction{}, err
	}
	inst.Operands = append(inst.Operands, text)
	inst.Size += used
	return inst, nil
}

// decodeOperand renders one operand and returns the number of words it used.
func decodeOperand(code []memory.Word, at int, mode isa.Mode, reg uint8) (string, int, error) {
	if at+mode.Words() > len(code) {
		return "", 0, ErrTruncated
	}

	switch mode {
	case isa.Immediate:
		return fmt.Sprintf("#%d", int16(code[at].Value)), 1, nil
	case isa.Direct:
		return formatAddress(code[at], code[at+1]), 2, nil
	case isa.Index:
		return fmt.Sprintf("%s[r%d]", formatAddress(code[at], code[at+1]), reg), 2, nil
	default:
		return fmt.Sprintf("r%d", reg), 0, nil
	}
}

// formatAddress renders a base/offset word pair. External references have no
// local address and print as "?".
func formatAddress(base, offset memory.Word) string {
	if base.Tag == memory.External {
		return "?"
	}
	return fmt.Sprintf("%d", int(base.Value)+int(offset.Value))
}
