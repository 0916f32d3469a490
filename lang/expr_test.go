package lang

import (
	"testing"

	"vFGB/algebra"
)

func TestParseSimplePolynomial(t *testing.T) {
	ar := algebra.NewArena()
	p, err := Parse(ar, "x1 - x2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p.String() != "x1 - x2" {
		t.Fatalf("Parse(%q).String() = %q", "x1 - x2", p.String())
	}
}

func TestParseCoefficients(t *testing.T) {
	ar := algebra.NewArena()
	p, err := Parse(ar, "3x1 + 2/4 x2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := "3 x1 + 1/2 x2"
	if p.String() != want {
		t.Fatalf("Parse(...).String() = %q, want %q", p.String(), want)
	}
}

func TestParseFunApplication(t *testing.T) {
	ar := algebra.NewArena()
	p, err := Parse(ar, "f(x1 + x2) - f(x2)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 summands, got %d", p.Len())
	}
}

func TestParseParenthesizedJuxtaposition(t *testing.T) {
	ar := algebra.NewArena()
	p, err := Parse(ar, "(x1 + x2)(x1 - x2)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := "x1 x1 - x2 x2"
	if p.String() != want {
		t.Fatalf("Parse(...).String() = %q, want %q", p.String(), want)
	}
}

func TestParseLoneMinusIsNegativeOne(t *testing.T) {
	ar := algebra.NewArena()
	p, err := Parse(ar, "-x1")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p.String() != "-x1" {
		t.Fatalf("Parse(-x1).String() = %q", p.String())
	}
}

func TestParseErrorOnUnbalancedParen(t *testing.T) {
	ar := algebra.NewArena()
	if _, err := Parse(ar, "f(x1 - x2"); err == nil {
		t.Fatalf("expected a parse error on an unterminated f(...)")
	}
}

func TestParseIsCaseAndWhitespaceInsensitive(t *testing.T) {
	ar := algebra.NewArena()
	a, err := Parse(ar, "X1*X2 + F(X3)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	b, err := Parse(ar, "x1 x2 + f( x3 )")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if a != b {
		t.Fatalf("case/whitespace/'*' variants should parse to the same Polynode")
	}
}
