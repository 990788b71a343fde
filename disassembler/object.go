package disassembler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Urethramancer/asm16/memory"
)

// ErrFormat is returned for malformed object files.
var ErrFormat = errors.New("malformed object file")

// Object is the content of an object file.
type Object struct {
	Code []memory.Word
	Data []memory.Word
}

// ReadObject parses an object file as written by the assembler.
func ReadObject(r io.Reader) (*Object, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing header", ErrFormat)
	}

	header := strings.Fields(sc.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: bad header %q", ErrFormat, sc.Text())
	}
	ic, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad code count: %w", ErrFormat, err)
	}
	dc, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad data count: %w", ErrFormat, err)
	}

	obj := &Object{}
	for i := 0; i < ic+dc; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %d words, got %d", ErrFormat, ic+dc, i)
		}
		addr, w, err := parseLine(sc.Text())
		if err != nil {
			return nil, err
		}
		if addr != memory.CodeStart+i {
			return nil, fmt.Errorf("%w: address %d out of sequence", ErrFormat, addr)
		}
		if i < ic {
			obj.Code = append(obj.Code, w)
		} else {
			obj.Data = append(obj.Data, w)
		}
	}
	return obj, sc.Err()
}

// parseLine reads "0100\tA4-B0-C0-D0-E1".
func parseLine(line string) (int, memory.Word, error) {
	addrText, wordText, ok := strings.Cut(line, "\t")
	if !ok {
		return 0, memory.Word{}, fmt.Errorf("%w: %q", ErrFormat, line)
	}
	addr, err := strconv.Atoi(addrText)
	if err != nil {
		return 0, memory.Word{}, fmt.Errorf("%w: bad address %q", ErrFormat, addrText)
	}

	nibbles := strings.Split(wordText, "-")
	if len(nibbles) != 5 {
		return 0, memory.Word{}, fmt.Errorf("%w: bad word %q", ErrFormat, wordText)
	}
	var packed uint32
	for i, n := range nibbles {
		if len(n) != 2 || n[0] != byte('A'+i) {
			return 0, memory.Word{}, fmt.Errorf("%w: bad nibble %q", ErrFormat, n)
		}
		v, err := strconv.ParseUint(n[1:], 16, 4)
		if err != nil {
			return 0, memory.Word{}, fmt.Errorf("%w: bad nibble %q", ErrFormat, n)
		}
		packed = packed<<4 | uint32(v)
	}
	return addr, memory.Unpack(packed), nil
}
