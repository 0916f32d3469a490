package qfield

import "testing"

func TestArithmetic(t *testing.T) {
	a := FromFrac(1, 2)
	b := FromFrac(1, 3)

	if got := Add(a, b).String(); got != "5/6" {
		t.Fatalf("Add: got %s want 5/6", got)
	}
	if got := Sub(a, b).String(); got != "1/6" {
		t.Fatalf("Sub: got %s want 1/6", got)
	}
	if got := Mul(a, b).String(); got != "1/6" {
		t.Fatalf("Mul: got %s want 1/6", got)
	}
	if got := Quo(a, b).String(); got != "3/2" {
		t.Fatalf("Quo: got %s want 3/2", got)
	}
}

func TestZeroOne(t *testing.T) {
	if !Zero().IsZero() {
		t.Fatalf("Zero() is not zero")
	}
	if !One().IsOne() {
		t.Fatalf("One() is not one")
	}
	if FromInt64(0).IsZero() != true {
		t.Fatalf("FromInt64(0) is not zero")
	}
}

func TestInvPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Inv(0) did not panic")
		}
	}()
	Inv(Zero())
}

func TestParseRoundTrip(t *testing.T) {
	cases := []string{"3", "-3", "1/2", "-1/2", "0"}
	for _, c := range cases {
		e, err := Parse(c)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c, err)
		}
		if got := e.String(); got != c && !(c == "0" && got == "0") {
			t.Fatalf("Parse(%q).String() = %q", c, got)
		}
	}
}

func TestCmpAndSign(t *testing.T) {
	neg := FromInt64(-1)
	zero := Zero()
	pos := FromInt64(1)

	if neg.Sign() != -1 || zero.Sign() != 0 || pos.Sign() != 1 {
		t.Fatalf("unexpected signs")
	}
	if neg.Cmp(pos) >= 0 {
		t.Fatalf("neg should compare less than pos")
	}
}
