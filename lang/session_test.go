package lang

import (
	"errors"
	"strings"
	"testing"

	"vFGB/algebra"
)

func TestSessionHypSingleExpression(t *testing.T) {
	ar := algebra.NewArena()
	s := NewSession(ar)
	advanced, err := s.ExecuteLine("hyp x1 - x2")
	if err != nil || !advanced {
		t.Fatalf("ExecuteLine error=%v advanced=%v", err, advanced)
	}
	if len(s.Hyps) != 1 {
		t.Fatalf("expected 1 hypothesis, got %d", len(s.Hyps))
	}
}

func TestSessionHypEqualityFormAddsDifferences(t *testing.T) {
	ar := algebra.NewArena()
	s := NewSession(ar)
	if _, err := s.ExecuteLine("hyp x1 = x2 = x3"); err != nil {
		t.Fatalf("ExecuteLine error: %v", err)
	}
	if len(s.Hyps) != 2 {
		t.Fatalf("expected 2 hypotheses (x2-x1, x3-x1), got %d", len(s.Hyps))
	}
}

func TestSessionSubAppendsHypothesis(t *testing.T) {
	ar := algebra.NewArena()
	s := NewSession(ar)
	mustLine(t, s, "hyp x1 - x2")
	advanced, err := s.ExecuteLine("sub h1 x2 0")
	if err != nil || !advanced {
		t.Fatalf("ExecuteLine error=%v advanced=%v", err, advanced)
	}
	if len(s.Hyps) != 2 {
		t.Fatalf("expected 2 hypotheses after sub, got %d", len(s.Hyps))
	}
	if s.Hyps[1].String() != "x1" {
		t.Fatalf("h2 = %q, want x1 (x1 - 0)", s.Hyps[1].String())
	}
}

func TestSessionAppImplementsApplyFunc(t *testing.T) {
	ar := algebra.NewArena()
	s := NewSession(ar)
	mustLine(t, s, "hyp x1 - x2")
	if _, err := s.ExecuteLine("app h1 x3"); err != nil {
		t.Fatalf("ExecuteLine error: %v", err)
	}
	want := ar.ApplyFunc(s.Hyps[0], mustParse(t, ar, "x3"))
	if s.Hyps[1] != want {
		t.Fatalf("app did not apply ApplyFunc's definition")
	}
}

func TestSessionEndSignalsTermination(t *testing.T) {
	ar := algebra.NewArena()
	s := NewSession(ar)
	_, err := s.ExecuteLine("end")
	if !errors.Is(err, ErrEnd) {
		t.Fatalf("expected ErrEnd, got %v", err)
	}
}

func TestSessionParseErrorDoesNotAdvanceCounter(t *testing.T) {
	ar := algebra.NewArena()
	s := NewSession(ar)
	mustLine(t, s, "hyp x1")
	advanced, err := s.ExecuteLine("hyp x")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if advanced {
		t.Fatalf("a parse error should not advance the hypothesis counter")
	}
	if len(s.Hyps) != 1 {
		t.Fatalf("hypothesis count changed after a parse error: %d", len(s.Hyps))
	}
}

func TestSessionSubMissingHypothesisIsRecoverableError(t *testing.T) {
	ar := algebra.NewArena()
	s := NewSession(ar)
	_, err := s.ExecuteLine("sub h7 x1 0")
	if err == nil {
		t.Fatalf("expected an error referencing a missing hypothesis")
	}
}

func TestSessionHypToleratesLeadingWhitespace(t *testing.T) {
	ar := algebra.NewArena()
	s := NewSession(ar)
	advanced, err := s.ExecuteLine("   hyp x1 - x2")
	if err != nil || !advanced {
		t.Fatalf("ExecuteLine error=%v advanced=%v", err, advanced)
	}
	if s.Hyps[0].String() != "x1 - x2" {
		t.Fatalf("h1 = %q, want %q", s.Hyps[0].String(), "x1 - x2")
	}
}

func TestSessionRunEchoesPromptsAndReEchoesOnEnd(t *testing.T) {
	ar := algebra.NewArena()
	s := NewSession(ar)
	in := strings.NewReader("hyp x1 - x2\nhyp x3\nend\n")
	var out strings.Builder
	err := s.Run(in, &out, true)
	if !errors.Is(err, ErrEnd) {
		t.Fatalf("Run error = %v, want ErrEnd", err)
	}
	got := out.String()
	for _, want := range []string{"h1: ", "h2: ", "h1: x1 - x2", "h2: x3"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Run output %q missing %q", got, want)
		}
	}
}

func TestSessionRunSilentWhenNotPretty(t *testing.T) {
	ar := algebra.NewArena()
	s := NewSession(ar)
	in := strings.NewReader("hyp x1\nend\n")
	var out strings.Builder
	err := s.Run(in, &out, false)
	if !errors.Is(err, ErrEnd) {
		t.Fatalf("Run error = %v, want ErrEnd", err)
	}
	if out.Len() != 0 {
		t.Fatalf("Run wrote output with pretty=false: %q", out.String())
	}
}

func mustLine(t *testing.T, s *Session, line string) {
	t.Helper()
	if _, err := s.ExecuteLine(line); err != nil {
		t.Fatalf("ExecuteLine(%q) error: %v", line, err)
	}
}

func mustParse(t *testing.T, ar *algebra.Arena, expr string) *algebra.Polynode {
	t.Helper()
	p, err := Parse(ar, expr)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", expr, err)
	}
	return p
}
