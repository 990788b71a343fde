package assembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/asm16/isa"
	"github.com/Urethramancer/asm16/memory"
)

// assembleInstruction encodes one instruction line. Only memory overflow is
// returned as an error; everything else is recorded as a diagnostic.
func (asm *Assembler) assembleInstruction(st Statement) error {
	in, ok := isa.Lookup(st.Keyword)
	if !ok {
		asm.report(InvalidInstruction, st.Keyword)
		return nil
	}

	if err := asm.mem.PushCode(in.OpcodeWord()); err != nil {
		return err
	}
	if in.Args() == 0 {
		if strings.TrimSpace(st.Operands) != "" {
			asm.report(ExtraneousText, st.Operands)
		}
		return nil
	}

	// Reserve the operand word; it is filled in once the operands are known.
	at := asm.mem.IC()
	if err := asm.mem.PushCode(0); err != nil {
		return err
	}

	ops := isa.Operands{Funct: in.Funct}
	if err := asm.encodeOperands(in, st.Operands, &ops); err != nil {
		return err
	}
	return asm.mem.RewriteCode(ops.Encode(), memory.Absolute, at)
}

// encodeOperands parses the operand list of in and fills ops.
func (asm *Assembler) encodeOperands(in isa.Instruction, text string, ops *isa.Operands) error {
	rest := text
	if in.Args() == 2 {
		var tok string
		tok, rest = scanOperand(rest)
		if tok == "" {
			asm.report(MissingArguments, in.Name)
			return nil
		}
		mode, reg, err := asm.encodeOperand(in, tok, true)
		if err != nil {
			return err
		}
		ops.SrcMode, ops.SrcReg = mode, reg

		rest = strings.TrimLeft(rest, blanks)
		if !strings.HasPrefix(rest, ",") {
			asm.report(MissingArguments, fmt.Sprintf("%s needs two operands", in.Name))
			return nil
		}
		rest = rest[1:]
	}

	tok, rest := scanOperand(rest)
	if tok == "" {
		asm.report(MissingArguments, in.Name)
		return nil
	}
	mode, reg, err := asm.encodeOperand(in, tok, false)
	if err != nil {
		return err
	}
	ops.DestMode, ops.DestReg = mode, reg

	if extra := strings.TrimSpace(rest); extra != "" {
		asm.report(ExtraneousText, extra)
	}
	return nil
}

// encodeOperand classifies and validates one operand and emits its extra words.
// The returned mode and register go into the operand word; both are zero when
// the operand was rejected.
func (asm *Assembler) encodeOperand(in isa.Instruction, tok string, src bool) (isa.Mode, uint8, error) {
	mode := Classify(tok)
	if !ValidOperand(tok, mode) {
		asm.report(InvalidArgument, tok)
		return 0, 0, nil
	}

	allowed := in.AllowsDest(mode)
	if src {
		allowed = in.AllowsSrc(mode)
	}
	if !allowed {
		asm.report(InvalidAddressMethod, fmt.Sprintf("%s operand %q for %s", mode, tok, in.Name))
		return 0, 0, nil
	}

	switch mode {
	case isa.Immediate:
		return mode, 0, asm.mem.PushCode(parseImmediate(tok))

	case isa.Direct:
		return mode, 0, asm.reference(tok)

	case isa.Index:
		name, reg, _ := splitIndex(tok)
		return mode, reg, asm.reference(name)

	default:
		reg, _ := isa.Register(tok)
		return mode, reg, nil
	}
}

// reference records a use of a label and reserves its base and offset words.
func (asm *Assembler) reference(symbol string) error {
	l := asm.symbols.GetOrCreate(symbol, asm.line)
	asm.symbols.RecordReference(l, asm.mem.IC())
	if err := asm.mem.PushCode(0); err != nil {
		return err
	}
	return asm.mem.PushCode(0)
}
