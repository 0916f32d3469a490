package lang

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/tuneinsight/lattigo/v4/utils"

	"vFGB/algebra"
	"vFGB/internal/qfield"
)

// Noise-model constants governing the scrambled pretty-printer, ported from
// the original's randomize.cpp: DropoutProb is the chance the juxtaposed
// factors of a summand are joined with an explicit '*' instead of a space,
// VariationProb is the chance
// an elidable coefficient of 1 is spelled out, and SwitchProb is the chance
// two adjacent summands trade places (always valid, since + is
// commutative).
const (
	DropoutProb   = 0.15
	VariationProb = 0.35
	SwitchProb    = 0.25
)

// Randomizer is a seeded scrambled pretty-printer: the same seed always
// produces the same scramble of the same Polynode, grounded on the
// deterministic-per-seed PRNG pattern ntru/hash_bridge.go uses for its own
// derived randomness.
type Randomizer struct {
	prng utils.PRNG
}

// NewRandomizer seeds a Randomizer from an arbitrary byte string.
func NewRandomizer(seed []byte) (*Randomizer, error) {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("lang: new randomizer: %w", err)
	}
	return &Randomizer{prng: prng}, nil
}

// nextUint64 draws one 8-byte sample from the PRNG, the same
// read-into-buffer pattern credential/challenge.go's randInt64 uses.
func (r *Randomizer) nextUint64() uint64 {
	var buf [8]byte
	if _, err := r.prng.Read(buf[:]); err != nil {
		// utils.PRNG backed by a keyed stream cipher does not fail in
		// practice; treat a read failure as "no randomness this draw"
		// rather than panicking mid pretty-print.
		return 0
	}
	v := new(big.Int).SetBytes(buf[:])
	return v.Uint64()
}

func (r *Randomizer) chance(p float64) bool {
	const scale = float64(1 << 53)
	u := r.nextUint64() >> 11 // top 53 bits, matching IEEE-754 double mantissa width
	return float64(u)/scale < p
}

// Scramble renders p in an equivalent but visually varied textual form: a
// pure restyling, never an algebraic change. Summand order is randomly
// perturbed by adjacent transpositions, some coefficients of 1 are spelled
// out instead of elided, and the space between juxtaposed factors is
// sometimes rewritten as an explicit '*'.
func (r *Randomizer) Scramble(p *algebra.Polynode) string {
	terms := p.Terms()
	if len(terms) == 0 {
		return "0"
	}
	order := make([]int, len(terms))
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		if r.chance(SwitchProb) {
			order[i], order[i-1] = order[i-1], order[i]
		}
	}

	var b strings.Builder
	for pos, idx := range order {
		t := terms[idx]
		neg := t.Coeff.Sign() < 0
		coeff := t.Coeff
		if neg {
			coeff = qfield.Neg(coeff)
		}
		switch {
		case pos == 0 && neg:
			b.WriteByte('-')
		case pos > 0 && neg:
			b.WriteString(" - ")
		case pos > 0:
			b.WriteString(" + ")
		}
		r.writeCoeff(&b, coeff)
		monoStr := r.randomMononode(t.Mono)
		if monoStr == "" {
			continue
		}
		if !coeff.IsOne() || b.Len() == 0 || b.String()[b.Len()-1] != ' ' {
			b.WriteByte(' ')
		}
		if r.chance(DropoutProb) {
			b.WriteString(strings.ReplaceAll(monoStr, " ", "*"))
		} else {
			b.WriteString(monoStr)
		}
	}
	return b.String()
}

// randomMononode is to_random_string(Mononode) from randomize.cpp: it
// expands m into one token per unit of exponent and shuffles that list
// (a Fisher-Yates pass driven by the same PRNG as everything else) before
// joining, instead of printing the canonical factor order String uses.
// x1*x1*x2 can come out as "x1 x2 x1" as readily as "x1 x1 x2".
func (r *Randomizer) randomMononode(m *algebra.Mononode) string {
	tokens := m.FactorTokens()
	for i := len(tokens) - 1; i > 0; i-- {
		j := int(r.nextUint64() % uint64(i+1))
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return strings.Join(tokens, " ")
}

func (r *Randomizer) writeCoeff(b *strings.Builder, c qfield.Elem) {
	if c.IsOne() {
		if r.chance(VariationProb) {
			b.WriteString("1")
		}
		return
	}
	b.WriteString(c.String())
}
