package assembler_test

import (
	"bytes"
	"testing"

	"github.com/Urethramancer/asm16/assembler"
	"github.com/Urethramancer/asm16/memory"
)

func TestFormatWord(t *testing.T) {
	tests := []struct {
		word memory.Word
		want string
	}{
		{memory.Word{Value: 1, Tag: memory.Absolute}, "A4-B0-C0-D0-E1"},
		{memory.Word{Value: 0xfff9, Tag: memory.Absolute}, "A4-Bf-Cf-Df-E9"},
		{memory.Word{Value: 96, Tag: memory.Relocatable}, "A2-B0-C0-D6-E0"},
		{memory.Word{Value: 0, Tag: memory.External}, "A1-B0-C0-D0-E0"},
		{memory.Word{Value: 0xa001, Tag: memory.Absolute}, "A4-Ba-C0-D0-E1"},
	}
	for _, tc := range tests {
		if got := assembler.FormatWord(tc.word); got != tc.want {
			t.Errorf("%+v: got %s, want %s", tc.word, got, tc.want)
		}
	}
}

func TestWriteObject(t *testing.T) {
	obj := assemble(t, "object", "MAIN: mov #5,r2\n.data 7\n")

	var buf bytes.Buffer
	if err := assembler.WriteObject(&buf, obj.Memory); err != nil {
		t.Fatal(err)
	}
	want := "   3\t   1\n" +
		"0100\tA4-B0-C0-D0-E1\n" +
		"0101\tA4-B0-C0-D0-Eb\n" +
		"0102\tA4-B0-C0-D0-E5\n" +
		"0103\tA4-B0-C0-D0-E7\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteEntriesAndExterns(t *testing.T) {
	src := ".entry MAIN\n.extern X\nMAIN: jsr X\nbne X\nstop\n"
	obj := assemble(t, "linkage", src)

	var ent bytes.Buffer
	if err := assembler.WriteEntries(&ent, obj.Symbols); err != nil {
		t.Fatal(err)
	}
	if want := "MAIN,96,4\n"; ent.String() != want {
		t.Errorf("entries: got %q, want %q", ent.String(), want)
	}

	var ext bytes.Buffer
	if err := assembler.WriteExterns(&ext, obj.Symbols); err != nil {
		t.Fatal(err)
	}
	want := "X BASE 96\nX OFFSET 6\n\nX BASE 96\nX OFFSET 10\n\n"
	if ext.String() != want {
		t.Errorf("externs: got %q, want %q", ext.String(), want)
	}
}

func TestWriteDiagnostics(t *testing.T) {
	diags := assembleWithErrors(t, "diagnostics", "stop\n.data 1 2\n")

	var buf bytes.Buffer
	if err := assembler.WriteDiagnostics(&buf, diags); err != nil {
		t.Fatal(err)
	}
	want := "0002\t" + assembler.MissingComma.Error() + ": 2\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
