package algebra

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// NodeHash, MononodeHash and PolynodeHash are the 64-bit content-addressed
// keys every entity is interned under. Two entities with equal hashes are
// taken to be structurally identical (P1); this is the same idealization
// the original C++ arena relies on (a single unordered_map keyed by hash,
// no collision chain).
type NodeHash = uint64
type MononodeHash = uint64
type PolynodeHash = uint64

// seedConj is the process-wide mixing constant ("conj" in spec.md's
// Hashing paragraph), carried over verbatim from algebra.cpp's fast_hash.
const seedConj uint64 = 0x93c467e37db0c7a4

// finalize is a splitmix64-style finalizer: a bijective scramble of a
// 64-bit value, folding in seedConj at both ends the way fast_hash does.
// It is used for Node hashes (which must not be homomorphic — a Node's
// hash is opaque content-addressing, not an algebraic combinator) and once
// per Polynode summand before the order-independent XOR-combine.
func finalize(x uint64) uint64 {
	x ^= seedConj
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x ^ seedConj
}

// powHash returns base^exp under the wraparound uint64 multiplicative
// group. This is the building block of the Mononode hash: it is a genuine
// multiplicative homomorphism (powHash(h, a+b) == powHash(h,a)*powHash(h,b)),
// which is exactly what lets Mononode.Mul's fast path pre-check the arena
// before doing a full factor merge.
func powHash(base uint64, exp int) uint64 {
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// coeffHash folds a rational coefficient down to a 64-bit digest via
// SHA-3, mirroring how ntru/csign_testonly.go reaches for golang.org/x/crypto/sha3
// whenever it needs a fixed-width digest of variable-length material. This
// digest feeds the (necessarily non-homomorphic) per-summand combine inside
// a Polynode's hash; unlike the Mononode hash, nothing here needs to be an
// algebraic homomorphism in the coefficient, so a cryptographic hash is a
// fine source of entropy.
func coeffHash(num, den *big.Int) uint64 {
	h := sha3.New256()
	// num.Bytes() is the absolute value, so the sign is hashed separately;
	// without it c and -c would collide.
	h.Write([]byte{byte(num.Sign() + 1)})
	h.Write(num.Bytes())
	h.Write([]byte{0})
	h.Write(den.Bytes())
	sum := h.Sum(nil)
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(sum[i])
	}
	return v
}

// combineSummand folds one (Mononode hash, coefficient) pair into the
// per-summand value that Polynode's hash XORs together. It must depend on
// both the monomial's identity and the coefficient's value, but need not be
// reversible or homomorphic — only finalize()'s bijectivity matters for
// spreading bits before the XOR-combine.
func combineSummand(monoHash MononodeHash, cNum, cDen *big.Int) uint64 {
	return finalize(monoHash*coeffHash(cNum, cDen) + 1)
}
