package assembler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Urethramancer/asm16/isa"
)

// MaxLabelLength is the longest accepted symbol.
const MaxLabelLength = 31

var (
	reImmediate = regexp.MustCompile(`^#-?[0-9]+$`)
	reLabel     = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
	reIndex     = regexp.MustCompile(`^([^\[\]]+)\[([^\[\]]+)\]$`)
)

// ValidLabel reports whether name can be used as a symbol.
func ValidLabel(name string) bool {
	return len(name) <= MaxLabelLength && reLabel.MatchString(name) && !isa.IsReserved(name)
}

// Classify picks the addressing mode an operand token asks for.
// It does not check that the token is well formed.
func Classify(token string) isa.Mode {
	if strings.HasPrefix(token, "#") {
		return isa.Immediate
	}
	if _, ok := isa.Register(token); ok {
		return isa.RegisterDirect
	}
	if strings.HasSuffix(token, "]") && !strings.HasPrefix(token, "[") && strings.Contains(token, "[") {
		return isa.Index
	}
	return isa.Direct
}

// ValidOperand checks the lexical shape of token for mode.
func ValidOperand(token string, mode isa.Mode) bool {
	switch mode {
	case isa.Immediate:
		return reImmediate.MatchString(token)
	case isa.Direct:
		return ValidLabel(token)
	case isa.Index:
		_, _, ok := splitIndex(token)
		return ok
	case isa.RegisterDirect:
		_, ok := isa.Register(token)
		return ok
	}
	return false
}

// splitIndex breaks "name[rN]" into the label name and register number.
func splitIndex(token string) (string, uint8, bool) {
	m := reIndex.FindStringSubmatch(token)
	if m == nil || !ValidLabel(m[1]) {
		return "", 0, false
	}
	reg, ok := isa.Register(m[2])
	if !ok {
		return "", 0, false
	}
	return m[1], reg, true
}

// parseImmediate returns the value of a validated immediate token, truncated to 16 bits.
func parseImmediate(token string) uint16 {
	v, err := strconv.ParseInt(strings.TrimPrefix(token, "#"), 10, 64)
	if err != nil {
		// Only reachable for digit strings too long for int64.
		return 0
	}
	return uint16(v)
}
