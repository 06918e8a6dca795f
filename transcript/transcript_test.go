package transcript

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zkrange/cuproof/bignum"
)

// S5 of SPEC_FULL.md §8: the derived challenge equals the SHA-256 digest
// of the concatenated big-endian byte strings, reinterpreted as an
// unsigned big-endian integer.
func TestChallengeMatchesManualSha256(t *testing.T) {
	a := bignum.NewInt(1234567)
	s := bignum.NewInt(987654321)
	c := bignum.NewInt(42)

	h := sha256.New()
	h.Write(a.Bytes())
	h.Write(s.Bytes())
	h.Write(c.Bytes())
	want := new(big.Int).SetBytes(h.Sum(nil))

	got := Challenge(a, s, c)
	assert.Equal(t, want, got.Go())
}

// Testable property 6 of SPEC_FULL.md §8: order-sensitivity.
func TestChallengeIsOrderSensitive(t *testing.T) {
	x := bignum.NewInt(111)
	y := bignum.NewInt(222)

	assert.NotEqual(t, Challenge(x, y), Challenge(y, x))
}

func TestChallengeIsDeterministic(t *testing.T) {
	x := bignum.NewInt(7)
	y := bignum.NewInt(9)

	assert.Equal(t, Challenge(x, y), Challenge(x, y))
}

func TestChallengeOfZeroUsesEmptyEncoding(t *testing.T) {
	zero := bignum.NewInt(0)
	h := sha256.New()
	h.Write([]byte{})
	want := new(big.Int).SetBytes(h.Sum(nil))

	assert.Equal(t, want, Challenge(zero).Go())
}
