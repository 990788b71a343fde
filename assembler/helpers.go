package assembler

import "strings"

const blanks = " \t"

// cutField splits off the first blank-separated field.
func cutField(s string) (string, string) {
	s = strings.TrimLeft(s, blanks)
	i := strings.IndexAny(s, blanks)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i:], blanks)
}

// scanOperand reads one operand token, which ends at a comma or a blank.
func scanOperand(s string) (string, string) {
	s = strings.TrimLeft(s, blanks)
	i := strings.IndexAny(s, ","+blanks)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// splitLines normalises line endings and drops the empty tail after a final newline.
func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
