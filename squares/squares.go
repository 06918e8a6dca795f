// Package squares implements the Lagrange/Legendre three-square
// decomposition used by the prover to turn the range witnesses v1, v2 (both
// non-negative and congruent to 1 mod 4) into vectors of three integers
// whose squares sum to them, per SPEC_FULL.md §4.6.
//
// Grounded on privacybydesign/gabi's internal/common/mathutil.go
// (SumFourSquares / sumFourSquaresSpecial, the Rabin-Shallit randomized
// polynomial-time algorithm) and rangeproof/splitutils.go's
// exhaustive-search-for-small-delta idiom. The four-square case split on
// n mod 4 does not apply here (m is always congruent to 1 mod 4 by
// construction), so this package specializes sumFourSquaresSpecial's
// "find a prime residual, then descend via the Gaussian-integer Euclidean
// algorithm" technique into a three-square search: peel off one square
// d0 at random, and if the residual is a prime congruent to 1 mod 4, the
// same Euclidean descent used there (via math/big's native ModSqrt, which
// replaces gabi's hand-rolled PrimeSqrt/LegendreSymbol Tonelli-Shanks
// since the modulus here is always prime) splits it into two squares.
package squares

import (
	"github.com/zkrange/cuproof"
	"github.com/zkrange/cuproof/bignum"
)

// exhaustiveBitLimit is the bit-length threshold at or below which Find3Squares
// uses the exhaustive double loop of SPEC_FULL.md §4.6 rather than the
// randomized heuristic.
const exhaustiveBitLimit = 64

// heuristicBudget bounds the number of random-d0 attempts the heuristic
// path makes before giving up with ErrNoDecomposition. It is a configured
// constant, not a formally proven termination bound, per spec.md §4.6's
// explicit caveat that "the source offers no formally stated termination
// bound".
const heuristicBudget = 100000

// Find3Squares returns (d0, d1, d2) with d0^2 + d1^2 + d2^2 = m, for
// m >= 0 with m == 1 (mod 4). Callers never pass an m violating that
// congruence; the range-proof protocol guarantees it by construction
// (v1, v2 are always of the form 4k+1).
//
// It returns cuproof.ErrNoDecomposition if the heuristic search for large
// m exhausts its iteration budget.
func Find3Squares(m *bignum.Int) (*bignum.Int, *bignum.Int, *bignum.Int, error) {
	zero := bignum.NewInt(0)
	if m.Sign() == 0 {
		return zero, zero, zero, nil
	}

	if m.BitLen() <= exhaustiveBitLimit {
		return exhaustiveSearch(m)
	}
	return heuristicSearch(m)
}

// exhaustiveSearch implements SPEC_FULL.md §4.6's bounded double loop:
// for 0 <= d0 <= floor(sqrt(m)), for 0 <= d1 <= floor(sqrt(m - d0^2)),
// test whether m - d0^2 - d1^2 is a perfect square.
func exhaustiveSearch(m *bignum.Int) (*bignum.Int, *bignum.Int, *bignum.Int, error) {
	rootM := new(bignum.Int).Sqrt(m)

	d0 := new(bignum.Int)
	for d0.SetInt64(0); d0.Cmp(rootM) <= 0; d0.Add(d0, bignum.NewInt(1)) {
		rem0 := new(bignum.Int).Sub(m, new(bignum.Int).Mul(d0, d0))
		rootRem0 := new(bignum.Int).Sqrt(rem0)

		d1 := new(bignum.Int)
		for d1.SetInt64(0); d1.Cmp(rootRem0) <= 0; d1.Add(d1, bignum.NewInt(1)) {
			rem1 := new(bignum.Int).Sub(rem0, new(bignum.Int).Mul(d1, d1))
			d2 := new(bignum.Int).Sqrt(rem1)
			check := new(bignum.Int).Mul(d2, d2)
			if check.Cmp(rem1) == 0 {
				return new(bignum.Int).Set(d0), new(bignum.Int).Set(d1), d2, nil
			}
		}
	}
	// m == 1 (mod 4) is always a sum of three squares by Legendre's
	// theorem, so this is unreachable for any m satisfying the
	// protocol's precondition.
	return nil, nil, nil, cuproof.ErrNoDecomposition
}

// heuristicSearch implements the randomized fallback for m too large for
// the exhaustive double loop: repeatedly peel off a random square d0 and
// test whether the residual m - d0^2 is a prime congruent to 1 mod 4, in
// which case the residual itself splits into two squares via the same
// Gaussian-integer Euclidean descent gabi's sumFourSquaresSpecial uses.
func heuristicSearch(m *bignum.Int) (*bignum.Int, *bignum.Int, *bignum.Int, error) {
	rootM := new(bignum.Int).Sqrt(m)
	one := bignum.NewInt(1)
	four := bignum.NewInt(4)

	for attempt := 0; attempt < heuristicBudget; attempt++ {
		d0raw, err := bignum.RandRange(bignum.NewInt(0), new(bignum.Int).Add(rootM, one))
		if err != nil {
			return nil, nil, nil, err
		}
		// Force d0 even so that residual = m - d0^2 stays == 1 (mod 4):
		// m == 1 (mod 4) and an even square is == 0 (mod 4).
		d0 := new(bignum.Int).Sub(d0raw, new(bignum.Int).Mod(d0raw, bignum.NewInt(2)))

		residual := new(bignum.Int).Sub(m, new(bignum.Int).Mul(d0, d0))
		if residual.Sign() < 0 {
			continue
		}
		if residual.Sign() == 0 {
			return d0, bignum.NewInt(0), bignum.NewInt(0), nil
		}
		if new(bignum.Int).Mod(residual, four).Cmp(one) != 0 {
			continue
		}
		if !residual.ProbablyPrime(20) {
			continue
		}

		d1, d2, ok := splitPrimeIntoTwoSquares(residual)
		if !ok {
			continue
		}
		return d0, d1, d2, nil
	}
	return nil, nil, nil, cuproof.ErrNoDecomposition
}

// splitPrimeIntoTwoSquares writes a prime p == 1 (mod 4) as a^2 + b^2 via
// Cornacchia's algorithm: find w with w^2 == -1 (mod p) using the native
// modular square root (valid since p is prime), then run the Euclidean
// algorithm on (p, w) until the remainders drop below sqrt(p); the first
// two remainders below sqrt(p) are the two square roots.
//
// This is the same descent gabi's sumFourSquaresSpecial performs once it
// has located a suitable prime residual; it is reused here unchanged in
// shape, only retargeted from the four-square recursion to a standalone
// two-square split.
func splitPrimeIntoTwoSquares(p *bignum.Int) (*bignum.Int, *bignum.Int, bool) {
	negOne := new(bignum.Int).Sub(p, bignum.NewInt(1))
	w := new(bignum.Int).ModSqrt(negOne, p)
	if w == nil {
		return nil, nil, false
	}

	a, b := new(bignum.Int).Set(p), new(bignum.Int).Set(w)
	for new(bignum.Int).Mul(b, b).Cmp(p) > 0 {
		a, b = b, new(bignum.Int).Mod(a, b)
	}
	// b is now the first term of the Euclidean remainder sequence on
	// (p, w) with b^2 <= p; the next remainder pairs with it to sum to p.
	x, y := b, new(bignum.Int).Mod(a, b)

	sum := new(bignum.Int).Add(new(bignum.Int).Mul(x, x), new(bignum.Int).Mul(y, y))
	if sum.Cmp(p) != 0 {
		return nil, nil, false
	}
	return x, y, true
}
