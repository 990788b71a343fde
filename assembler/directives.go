package assembler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Urethramancer/asm16/isa"
)

const (
	dirData   = "." + isa.DirData
	dirString = "." + isa.DirString
	dirEntry  = "." + isa.DirEntry
	dirExtern = "." + isa.DirExtern
)

var reNumber = regexp.MustCompile(`^[+-]?[0-9]+$`)

// assembleDirective dispatches a directive line. Only memory overflow is
// returned as an error.
func (asm *Assembler) assembleDirective(st Statement) error {
	switch st.Keyword {
	case dirData:
		return asm.assembleData(st.Operands)
	case dirString:
		return asm.assembleString(st.Operands)
	case dirEntry:
		asm.assembleLinkage(st.Operands, true)
	case dirExtern:
		asm.assembleLinkage(st.Operands, false)
	default:
		asm.report(UndefinedDirective, st.Keyword)
	}
	return nil
}

// assembleData pushes one data word per comma-separated integer.
func (asm *Assembler) assembleData(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		asm.report(MissingArguments, dirData)
		return nil
	}

	for {
		tok, rest := scanOperand(text)
		if !reNumber.MatchString(tok) {
			asm.report(InvalidData, text)
			return nil
		}
		val, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			asm.report(InvalidData, tok)
			return nil
		}
		if err := asm.mem.PushData(uint16(val)); err != nil {
			return err
		}

		rest = strings.TrimLeft(rest, blanks)
		if rest == "" {
			return nil
		}
		if rest[0] != ',' {
			asm.report(MissingComma, rest)
			return nil
		}
		text = strings.TrimLeft(rest[1:], blanks)
		if text == "" {
			asm.report(InvalidData, "trailing comma")
			return nil
		}
	}
}

// assembleString pushes the characters between double quotes and a terminating zero.
func (asm *Assembler) assembleString(text string) error {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, `"`) {
		asm.report(MissingOpeningQuotes, text)
		return nil
	}

	body := text[1:]
	end := strings.IndexByte(body, '"')
	chars := body
	if end >= 0 {
		chars = body[:end]
	}
	for i := 0; i < len(chars); i++ {
		if err := asm.mem.PushData(uint16(chars[i])); err != nil {
			return err
		}
	}
	if err := asm.mem.PushData(0); err != nil {
		return err
	}

	switch {
	case end < 0:
		asm.report(MissingClosingQuotes, text)
	case strings.TrimSpace(body[end+1:]) != "":
		asm.report(ExtraneousText, body[end+1:])
	}
	return nil
}

// assembleLinkage handles .entry and .extern.
func (asm *Assembler) assembleLinkage(text string, isEntry bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		asm.report(MissingArguments, "label name")
		return
	}

	name := fields[0]
	if !ValidLabel(name) {
		asm.report(InvalidLabelName, name)
		return
	}
	if len(fields) > 1 {
		asm.report(ExtraneousText, strings.Join(fields[1:], " "))
	}
	if err := asm.symbols.RegisterEntryOrExtern(name, isEntry, asm.line); err != nil {
		asm.reportErr(err, name)
	}
}
