package assembler

import "strings"

// Statement is one meaningful source line split into its parts.
type Statement struct {
	Line int
	// Label is the name in front of a trailing colon, if HasLabel.
	Label    string
	HasLabel bool
	// Keyword is the mnemonic or the directive, including its dot.
	Keyword string
	// Operands is everything after the keyword, leading blanks removed.
	Operands string
}

// IsDirective reports whether the statement is a directive rather than an instruction.
func (st Statement) IsDirective() bool {
	return strings.HasPrefix(st.Keyword, ".")
}

// parseStatement splits a line. Blank lines and comments yield false.
func parseStatement(text string, line int) (Statement, bool) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, ";") {
		return Statement{}, false
	}

	st := Statement{Line: line}
	first, rest := cutField(text)
	if strings.HasSuffix(first, ":") {
		st.Label = strings.TrimSuffix(first, ":")
		st.HasLabel = true
		first, rest = cutField(rest)
	}
	st.Keyword = first
	st.Operands = rest
	return st, true
}
