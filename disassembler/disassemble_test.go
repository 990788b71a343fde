package disassembler_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Urethramancer/asm16/assembler"
	"github.com/Urethramancer/asm16/disassembler"
	"github.com/Urethramancer/asm16/memory"
)

// Assembles source, writes it as an object file and reads it back.
func roundTrip(t *testing.T, src string) (*assembler.Object, *disassembler.Object) {
	t.Helper()

	obj, err := assembler.New().Assemble(src)
	if err != nil {
		t.Fatalf("failed to assemble:\n%s\nerror: %v", src, err)
	}
	var buf bytes.Buffer
	if err := assembler.WriteObject(&buf, obj.Memory); err != nil {
		t.Fatal(err)
	}
	back, err := disassembler.ReadObject(&buf)
	if err != nil {
		t.Fatalf("failed to read object: %v", err)
	}
	return obj, back
}

func TestReadObjectRoundTrip(t *testing.T) {
	src := ".extern X\nMAIN: jsr X\nlea STR,r1\nstop\nSTR: .string \"ok\"\n.data -1\n"
	obj, back := roundTrip(t, src)

	code := obj.Memory.CodeWords()
	data := obj.Memory.DataWords()
	if len(back.Code) != len(code) || len(back.Data) != len(data) {
		t.Fatalf("got %d/%d words, want %d/%d", len(back.Code), len(back.Data), len(code), len(data))
	}
	for i := range code {
		if back.Code[i] != code[i] {
			t.Errorf("code %d: got %+v, want %+v", i, back.Code[i], code[i])
		}
	}
	for i := range data {
		if back.Data[i] != data[i] {
			t.Errorf("data %d: got %+v, want %+v", i, back.Data[i], data[i])
		}
	}
}

func TestDisassemble(t *testing.T) {
	src := strings.Join([]string{
		".extern X",
		"MAIN: mov #5,r2",
		"lea STR,r1",
		"jsr X",
		"cmp ARR[r4],#-2",
		"rts",
		"STR: .string \"hi\"",
		"ARR: .data 3,-4",
	}, "\n")
	_, back := roundTrip(t, src)

	listing, err := disassembler.Disassemble(back)
	if err != nil {
		t.Fatal(err)
	}
	want := "0100\tmov   #5,r2\n" +
		"0103\tlea   117,r1\n" +
		"0107\tjsr   ?\n" +
		"0111\tcmp   120[r4],#-2\n" +
		"0116\trts\n" +
		"0117\t.string \"hi\"\n" +
		"0120\t.data 3\n" +
		"0121\t.data -4\n"
	if listing != want {
		t.Errorf("got:\n%s\nwant:\n%s", listing, want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name, src, want string
		size            int
	}{
		{"RegReg", "add r3,r4", "add   r3,r4", 2},
		{"Imm", "prn #-7", "prn   #-7", 3},
		{"Reg", "clr r15", "clr   r15", 2},
		{"NoOperands", "stop", "stop", 1},
	}
	for _, tc := range tests {
		_, back := roundTrip(t, tc.src)
		inst, err := disassembler.Decode(back.Code, 0)
		if err != nil {
			t.Errorf("[%s] %v", tc.name, err)
			continue
		}
		if inst.String() != tc.want || inst.Size != tc.size {
			t.Errorf("[%s] got %q (%d words), want %q (%d words)", tc.name, inst, inst.Size, tc.want, tc.size)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	abs := func(v uint16) memory.Word { return memory.Word{Value: v, Tag: memory.Absolute} }
	tests := []struct {
		name string
		code []memory.Word
		want error
	}{
		{"NotOneHot", []memory.Word{abs(3)}, disassembler.ErrNotOpcode},
		{"Zero", []memory.Word{abs(0)}, disassembler.ErrNotOpcode},
		{"UnusedOpcode", []memory.Word{abs(1 << 3), abs(0)}, disassembler.ErrUnknownInstruction},
		{"BadFunct", []memory.Word{abs(1 << 5), abs(0x1003)}, disassembler.ErrUnknownInstruction},
		{"MissingOperandWord", []memory.Word{abs(1)}, disassembler.ErrTruncated},
		{"MissingImmediate", []memory.Word{abs(1 << 13), abs(0)}, disassembler.ErrTruncated},
	}
	for _, tc := range tests {
		_, err := disassembler.Decode(tc.code, 0)
		if !errors.Is(err, tc.want) {
			t.Errorf("[%s] got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestReadObjectErrors(t *testing.T) {
	tests := []struct {
		name, text string
	}{
		{"Empty", ""},
		{"BadHeader", "three\n"},
		{"ShortBody", "   2\t   0\n0100\tA4-B0-C0-D0-E1\n"},
		{"BadNibble", "   1\t   0\n0100\tA4-B0-X0-D0-E1\n"},
		{"OutOfSequence", "   1\t   0\n0101\tA4-B0-C0-D0-E1\n"},
	}
	for _, tc := range tests {
		_, err := disassembler.ReadObject(strings.NewReader(tc.text))
		if !errors.Is(err, disassembler.ErrFormat) {
			t.Errorf("[%s] got %v, want %v", tc.name, err, disassembler.ErrFormat)
		}
	}
}
