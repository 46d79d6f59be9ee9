package opcode

import "testing"

func TestLookup(t *testing.T) {
	r, ok := Lookup("STOP")
	if !ok {
		t.Fatal("stop not found")
	}

	if r.Code != 15 || r.Ops != 0 {
		t.Errorf("stop = %+v, want code 15, 0 ops", r)
	}

	r, ok = Lookup("mov")
	if !ok || r.Code != 0 {
		t.Errorf("mov lookup failed or wrong code: %+v", r)
	}
}

func TestModeCode(t *testing.T) {
	cases := []struct {
		m    Mode
		want uint8
	}{
		{Immediate, 0},
		{Direct, 1},
		{Matrix, 2},
		{Register, 3},
	}

	for _, c := range cases {
		if got := ModeCode(c.m); got != c.want {
			t.Errorf("ModeCode(%s) = %d, want %d", c.m, got, c.want)
		}
	}
}

func TestAllows(t *testing.T) {
	r, _ := Lookup("lea")
	if Allows(r.Src, Register) {
		t.Error("lea source should not allow register mode")
	}

	if !Allows(r.Dst, Register) {
		t.Error("lea destination should allow register mode")
	}
}
