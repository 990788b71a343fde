package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/asm16/memory"
)

// isPrintableASCII checks if a word holds a standard printable ASCII character.
func isPrintableASCII(v uint16) bool {
	return v >= 0x20 && v <= 0x7E && v != '"'
}

// formatData renders data words, folding zero-terminated printable runs into .string lines.
func formatData(data []memory.Word, addr int) string {
	var sb strings.Builder
	for i := 0; i < len(data); {
		end := i
		for end < len(data) && isPrintableASCII(data[end].Value) {
			end++
		}
		if end > i && end < len(data) && data[end].Value == 0 {
			var s strings.Builder
			for _, w := range data[i:end] {
				s.WriteByte(byte(w.Value))
			}
			fmt.Fprintf(&sb, "%04d\t.string \"%s\"\n", addr+i, s.String())
			i = end + 1
			continue
		}

		fmt.Fprintf(&sb, "%04d\t.data %d\n", addr+i, int16(data[i].Value))
		i++
	}
	return sb.String()
}
