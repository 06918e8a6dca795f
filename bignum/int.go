// Package bignum is a thin, API-compatible facade over "math/big".Int,
// restricted to the non-negative-integer arithmetic the cuproof engine
// needs: addition, subtraction, multiplication, division/remainder, gcd,
// modular exponentiation, and uniform random sampling.
package bignum

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Int is a non-negative arbitrary-precision integer. It is a defined type
// with "math/big".Int as its underlying type rather than a distinct struct,
// so that callers can always drop down to Go() when they need an operation
// this facade doesn't expose.
type Int big.Int

// Convert wraps a "math/big".Int as an *Int without copying.
func Convert(x *big.Int) *Int { return (*Int)(x) }

// Go unwraps an *Int back to "math/big".Int without copying.
func (i *Int) Go() *big.Int { return (*big.Int)(i) }

func NewInt(x int64) *Int { return Convert(big.NewInt(x)) }

// RandInt returns a uniform random value in [0, max), reading from rnd.
// It panics if max <= 0, matching "math/big".Int.Rand's contract via
// "crypto/rand".Int.
func RandInt(rnd io.Reader, max *Int) (*Int, error) {
	i, err := cryptorand.Int(rnd, max.Go())
	return Convert(i), err
}

// RandRange returns a uniform random value in [lo, hi). It panics if
// hi <= lo.
func RandRange(lo, hi *Int) (*Int, error) {
	span := new(big.Int).Sub(hi.Go(), lo.Go())
	if span.Sign() <= 0 {
		panic(fmt.Sprintf("bignum: empty range [%v, %v)", lo, hi))
	}
	r, err := cryptorand.Int(cryptorand.Reader, span)
	if err != nil {
		return nil, err
	}
	return Convert(new(big.Int).Add(r, lo.Go())), nil
}

// RandBits returns a uniform random value in [0, 2^k), i.e. a random value
// of at most k bits.
func RandBits(k uint) (*Int, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), k)
	return RandInt(cryptorand.Reader, Convert(limit))
}

// "math/big".Int API. We are liberal with the conversion helpers above;
// the Go compiler inlines them.

func (i *Int) String() string               { return i.Go().String() }
func (i *Int) Bytes() []byte                { return i.Go().Bytes() }
func (i *Int) BitLen() int                  { return i.Go().BitLen() }
func (i *Int) Bit(j int) uint               { return i.Go().Bit(j) }
func (i *Int) Sign() int                    { return i.Go().Sign() }
func (i *Int) Int64() int64                 { return i.Go().Int64() }
func (i *Int) IsInt64() bool                { return i.Go().IsInt64() }
func (i *Int) Cmp(y *Int) int               { return i.Go().Cmp(y.Go()) }
func (i *Int) ProbablyPrime(n int) bool     { return i.Go().ProbablyPrime(n) }
func (i *Int) Set(x *Int) *Int              { return Convert(i.Go().Set(x.Go())) }
func (i *Int) SetInt64(x int64) *Int        { return Convert(i.Go().SetInt64(x)) }
func (i *Int) SetUint64(x uint64) *Int      { return Convert(i.Go().SetUint64(x)) }
func (i *Int) SetBytes(buf []byte) *Int     { return Convert(i.Go().SetBytes(buf)) }
func (i *Int) SetString(s string, base int) (*Int, bool) {
	z, ok := i.Go().SetString(s, base)
	return Convert(z), ok
}
func (i *Int) Text(base int) string { return i.Go().Text(base) }
func (i *Int) Add(x, y *Int) *Int   { return Convert(i.Go().Add(x.Go(), y.Go())) }
func (i *Int) Sub(x, y *Int) *Int   { return Convert(i.Go().Sub(x.Go(), y.Go())) }
func (i *Int) Mul(x, y *Int) *Int   { return Convert(i.Go().Mul(x.Go(), y.Go())) }
func (i *Int) Quo(x, y *Int) *Int   { return Convert(i.Go().Quo(x.Go(), y.Go())) }
func (i *Int) Rem(x, y *Int) *Int   { return Convert(i.Go().Rem(x.Go(), y.Go())) }
func (i *Int) Mod(x, y *Int) *Int   { return Convert(i.Go().Mod(x.Go(), y.Go())) }
func (i *Int) Lsh(x *Int, n uint) *Int { return Convert(i.Go().Lsh(x.Go(), n)) }
func (i *Int) Rsh(x *Int, n uint) *Int { return Convert(i.Go().Rsh(x.Go(), n)) }
func (i *Int) Abs(x *Int) *Int      { return Convert(i.Go().Abs(x.Go())) }
func (i *Int) Neg(x *Int) *Int      { return Convert(i.Go().Neg(x.Go())) }
func (i *Int) Sqrt(x *Int) *Int     { return Convert(i.Go().Sqrt(x.Go())) }
func (i *Int) And(x, y *Int) *Int   { return Convert(i.Go().And(x.Go(), y.Go())) }

// Exp computes x^y mod m (modpow), matching spec.md's "modpow(base, exp,
// modulus)" bignum facade primitive. m == nil means unmodded exponentiation.
func (i *Int) Exp(x, y, m *Int) *Int {
	var mg *big.Int
	if m != nil {
		mg = m.Go()
	}
	return Convert(i.Go().Exp(x.Go(), y.Go(), mg))
}

// GCD sets i to the greatest common divisor of x and y and returns i. x and
// y must be non-negative.
func (i *Int) GCD(x, y *Int) *Int {
	return Convert(i.Go().GCD(nil, nil, x.Go(), y.Go()))
}

// ModInverse sets i to the multiplicative inverse of g in the ring
// Z/nZ and returns i, or nil if g and n are not coprime.
func (i *Int) ModInverse(g, n *Int) *Int {
	r := i.Go().ModInverse(g.Go(), n.Go())
	if r == nil {
		return nil
	}
	return Convert(r)
}

// ModSqrt sets i to a square root of x mod p (p prime) and returns i, or
// nil if x is not a square mod p.
func (i *Int) ModSqrt(x, p *Int) *Int {
	r := i.Go().ModSqrt(x.Go(), p.Go())
	if r == nil {
		return nil
	}
	return Convert(r)
}
