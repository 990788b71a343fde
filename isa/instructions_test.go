package isa_test

import (
	"fmt"
	"testing"

	"github.com/Urethramancer/asm16/isa"
)

func TestInstructionTable(t *testing.T) {
	tests := []struct {
		name          string
		opcode, funct uint8
		args          int
	}{
		{"mov", 0, 0, 2},
		{"cmp", 1, 0, 2},
		{"add", 2, 10, 2},
		{"sub", 2, 11, 2},
		{"lea", 4, 0, 2},
		{"clr", 5, 10, 1},
		{"not", 5, 11, 1},
		{"inc", 5, 12, 1},
		{"dec", 5, 13, 1},
		{"jmp", 9, 10, 1},
		{"bne", 9, 11, 1},
		{"jsr", 9, 12, 1},
		{"red", 12, 0, 1},
		{"prn", 13, 0, 1},
		{"rts", 14, 0, 0},
		{"stop", 15, 0, 0},
	}
	if len(isa.Instructions) != len(tests) {
		t.Fatalf("expected %d instructions, got %d", len(tests), len(isa.Instructions))
	}
	for _, tc := range tests {
		in, ok := isa.Lookup(tc.name)
		if !ok {
			t.Errorf("%s: not found", tc.name)
			continue
		}
		if in.Opcode != tc.opcode || in.Funct != tc.funct || in.Args() != tc.args {
			t.Errorf("%s: got opcode %d funct %d args %d, want %d %d %d",
				tc.name, in.Opcode, in.Funct, in.Args(), tc.opcode, tc.funct, tc.args)
		}
		back, ok := isa.ByOpcode(tc.opcode, tc.funct)
		if !ok || back.Name != tc.name {
			t.Errorf("ByOpcode(%d, %d) = %q, want %q", tc.opcode, tc.funct, back.Name, tc.name)
		}
	}
}

func TestAddressingMasks(t *testing.T) {
	mov, _ := isa.Lookup("mov")
	if !mov.AllowsSrc(isa.Immediate) || mov.AllowsDest(isa.Immediate) {
		t.Errorf("mov: immediate must be source only")
	}
	lea, _ := isa.Lookup("lea")
	if lea.AllowsSrc(isa.Immediate) || lea.AllowsSrc(isa.RegisterDirect) {
		t.Errorf("lea: source must be direct or index")
	}
	jmp, _ := isa.Lookup("jmp")
	if jmp.AllowsDest(isa.RegisterDirect) || !jmp.AllowsDest(isa.Index) {
		t.Errorf("jmp: destination must be direct or index")
	}
	prn, _ := isa.Lookup("prn")
	if prn.Dest != isa.BitAll {
		t.Errorf("prn: got dest mask %04b, want %04b", prn.Dest, isa.BitAll)
	}
}

func TestOpcodeWordIsOneHot(t *testing.T) {
	stop, _ := isa.Lookup("stop")
	if w := stop.OpcodeWord(); w != 0x8000 {
		t.Errorf("stop: got %04x, want 8000", w)
	}
	mov, _ := isa.Lookup("mov")
	if w := mov.OpcodeWord(); w != 1 {
		t.Errorf("mov: got %04x, want 0001", w)
	}
}

func TestRegistersAndReservedWords(t *testing.T) {
	for i := 0; i < isa.RegisterCount; i++ {
		name := fmt.Sprintf("r%d", i)
		n, ok := isa.Register(name)
		if !ok || int(n) != i {
			t.Errorf("%s: got %d %v", name, n, ok)
		}
	}
	for _, bad := range []string{"r16", "R1", "r", "rr1"} {
		if _, ok := isa.Register(bad); ok {
			t.Errorf("%s should not be a register", bad)
		}
	}
	for _, w := range []string{"mov", "stop", "r0", "r15", "data", "string", "entry", "extern", "macro", "endm"} {
		if !isa.IsReserved(w) {
			t.Errorf("%s should be reserved", w)
		}
	}
	for _, w := range []string{"MAIN", "loop", "r16", "movx"} {
		if isa.IsReserved(w) {
			t.Errorf("%s should not be reserved", w)
		}
	}
}

func TestModeWords(t *testing.T) {
	want := map[isa.Mode]int{isa.Immediate: 1, isa.Direct: 2, isa.Index: 2, isa.RegisterDirect: 0}
	for m, n := range want {
		if got := m.Words(); got != n {
			t.Errorf("%s: got %d words, want %d", m, got, n)
		}
	}
}
