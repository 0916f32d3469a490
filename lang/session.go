package lang

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vFGB/algebra"
)

// ErrEnd is returned by ExecuteLine when the line is the `end`/`e`
// terminator (spec.md §6.1).
var ErrEnd = errors.New("lang: end")

// Session tracks one id's hypothesis history against a single Arena,
// dispatching hyp/sub/app/end commands (spec.md §6.1's command table).
type Session struct {
	Arena *algebra.Arena
	Hyps  []*algebra.Polynode
}

// NewSession returns an empty session bound to ar.
func NewSession(ar *algebra.Arena) *Session {
	return &Session{Arena: ar}
}

// ExecuteLine parses and applies one command-language line. advanced
// reports whether a new hypothesis was appended (the hypothesis counter
// does not advance on a parse error, spec.md §6.1). err == ErrEnd signals
// the `end`/`e` terminator; the caller stops feeding this session lines.
func (s *Session) ExecuteLine(line string) (advanced bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch strings.ToLower(fields[0]) {
	case "hyp", "h":
		rest := strings.TrimSpace(strings.Join(fields[1:], " "))
		if rest == "" {
			return false, fmt.Errorf("lang: hyp: missing expression")
		}
		parts := strings.Split(rest, "=")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if err := s.hyp(parts); err != nil {
			return false, err
		}
		return true, nil

	case "sub", "s":
		if len(fields) < 3 {
			return false, fmt.Errorf("lang: sub: expected h<i> x<k> <expr>")
		}
		i, err := parseIndexToken(fields[1], 'h')
		if err != nil {
			return false, err
		}
		k, err := parseIndexToken(fields[2], 'x')
		if err != nil {
			return false, err
		}
		exprStr := strings.Join(fields[3:], " ")
		if err := s.sub(i, k, exprStr); err != nil {
			return false, err
		}
		return true, nil

	case "app", "a":
		if len(fields) < 2 {
			return false, fmt.Errorf("lang: app: expected h<i> <expr>")
		}
		i, err := parseIndexToken(fields[1], 'h')
		if err != nil {
			return false, err
		}
		exprStr := strings.Join(fields[2:], " ")
		if err := s.app(i, exprStr); err != nil {
			return false, err
		}
		return true, nil

	case "end", "e":
		return false, ErrEnd

	default:
		return false, fmt.Errorf("lang: unknown command %q", fields[0])
	}
}

// hyp implements spec.md §6.1's `hyp`: for equality form expr_0 = expr_1 =
// … add expr_k − expr_0 for every k ≥ 1; for a lone expression, add it as-is.
func (s *Session) hyp(parts []string) error {
	parsed := make([]*algebra.Polynode, len(parts))
	for i, part := range parts {
		p, err := Parse(s.Arena, part)
		if err != nil {
			return err
		}
		parsed[i] = p
	}
	if len(parsed) == 1 {
		s.Hyps = append(s.Hyps, parsed[0])
		return nil
	}
	for k := 1; k < len(parsed); k++ {
		s.Hyps = append(s.Hyps, s.Arena.Sub(parsed[k], parsed[0]))
	}
	return nil
}

func (s *Session) sub(i, k int, exprStr string) error {
	h, err := s.lookup(i)
	if err != nil {
		return err
	}
	v, err := Parse(s.Arena, exprStr)
	if err != nil {
		return err
	}
	s.Hyps = append(s.Hyps, s.Arena.SubstituteVar(h, k, v))
	return nil
}

func (s *Session) app(i int, exprStr string) error {
	h, err := s.lookup(i)
	if err != nil {
		return err
	}
	q, err := Parse(s.Arena, exprStr)
	if err != nil {
		return err
	}
	s.Hyps = append(s.Hyps, s.Arena.ApplyFunc(h, q))
	return nil
}

// Run reproduces the original's interactive-session echo (src/input.cpp's
// handle_input): it prints a "h<i>: " prompt before reading each line and,
// on end/e, re-echoes every stored hypothesis in order. Silent when pretty
// is false, matching spec.md §6.3's --pretty toggle. Returns ErrEnd on a
// normal end/e termination, or the scanner's error (nil at a clean EOF
// with no trailing end/e).
func (s *Session) Run(r io.Reader, w io.Writer, pretty bool) error {
	scanner := bufio.NewScanner(r)
	for {
		if pretty {
			fmt.Fprintf(w, "h%d: ", len(s.Hyps)+1)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		_, err := s.ExecuteLine(scanner.Text())
		if err == nil {
			continue
		}
		if errors.Is(err, ErrEnd) {
			if pretty {
				for i, h := range s.Hyps {
					fmt.Fprintf(w, "h%d: %s\n", i+1, h.String())
				}
			}
			return ErrEnd
		}
		if pretty {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
	}
}

// lookup resolves h<i> (1-based). A missing index is treated as a
// recoverable parse error (spec.md §6.1/§7).
func (s *Session) lookup(i int) (*algebra.Polynode, error) {
	if i < 1 || i > len(s.Hyps) {
		return nil, fmt.Errorf("lang: no such hypothesis h%d", i)
	}
	return s.Hyps[i-1], nil
}

func parseIndexToken(tok string, prefix byte) (int, error) {
	tok = strings.ToLower(tok)
	if len(tok) < 2 || tok[0] != prefix {
		return 0, fmt.Errorf("lang: expected token of the form %q<n>, got %q", string(prefix), tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return 0, fmt.Errorf("lang: invalid index in %q: %w", tok, err)
	}
	return n, nil
}
