package squares

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkrange/cuproof/bignum"
)

func sumOfSquares(d0, d1, d2 *bignum.Int) *bignum.Int {
	sq := func(x *bignum.Int) *bignum.Int { return new(bignum.Int).Mul(x, x) }
	return new(bignum.Int).Add(sq(d0), new(bignum.Int).Add(sq(d1), sq(d2)))
}

// S6 of SPEC_FULL.md §8: find_3_squares(1) = (1,0,0) up to permutation.
func TestFind3SquaresOfOne(t *testing.T) {
	d0, d1, d2, err := Find3Squares(bignum.NewInt(1))
	require.NoError(t, err)

	squares := []int64{d0.Int64(), d1.Int64(), d2.Int64()}
	assert.ElementsMatch(t, []int64{1, 0, 0}, squares)
}

func TestFind3SquaresOfZero(t *testing.T) {
	d0, d1, d2, err := Find3Squares(bignum.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), sumOfSquares(d0, d1, d2).Int64())
}

// S6 of SPEC_FULL.md §8: find_3_squares(5) returns some (a,b,c) with
// a^2+b^2+c^2 = 5.
func TestFind3SquaresOfFive(t *testing.T) {
	d0, d1, d2, err := Find3Squares(bignum.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, int64(5), sumOfSquares(d0, d1, d2).Int64())
}

// Testable property 4 of SPEC_FULL.md §8: exact decomposition for a range
// of m == 1 (mod 4) values in the exhaustive-search regime.
func TestFind3SquaresExhaustiveRegime(t *testing.T) {
	for m := int64(1); m < 2000; m += 4 {
		d0, d1, d2, err := Find3Squares(bignum.NewInt(m))
		require.NoError(t, err, "m=%d", m)
		assert.Equal(t, m, sumOfSquares(d0, d1, d2).Int64(), "m=%d", m)
	}
}

// Exercises the randomized fallback: m.BitLen() > 64 routes Find3Squares
// through heuristicSearch rather than the exhaustive double loop.
func TestFind3SquaresHeuristicRegime(t *testing.T) {
	m := new(bignum.Int).Lsh(bignum.NewInt(1), 70)
	m.Add(m, bignum.NewInt(1))
	require.Greater(t, m.BitLen(), exhaustiveBitLimit)

	d0, d1, d2, err := Find3Squares(m)
	require.NoError(t, err)
	assert.Equal(t, 0, sumOfSquares(d0, d1, d2).Cmp(m))
}

// Calls heuristicSearch directly, so the Cornacchia-descent path it drives
// is covered by more than splitPrimeIntoTwoSquares's standalone test.
func TestHeuristicSearchDirectly(t *testing.T) {
	m := new(bignum.Int).Lsh(bignum.NewInt(1), 80)
	m.Add(m, bignum.NewInt(1))

	d0, d1, d2, err := heuristicSearch(m)
	require.NoError(t, err)
	assert.Equal(t, 0, sumOfSquares(d0, d1, d2).Cmp(m))
}

func TestSplitPrimeIntoTwoSquares(t *testing.T) {
	for _, p := range []int64{5, 13, 17, 29, 37, 41} {
		d0, d1, ok := splitPrimeIntoTwoSquares(bignum.NewInt(p))
		require.True(t, ok, "p=%d", p)
		sum := new(bignum.Int).Add(new(bignum.Int).Mul(d0, d0), new(bignum.Int).Mul(d1, d1))
		assert.Equal(t, p, sum.Int64(), "p=%d", p)
	}
}
