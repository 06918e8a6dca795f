// Package setup generates the public parameters (g, h, n) a prover and
// verifier share, per SPEC_FULL.md §4.3.
//
// Grounded on privacybydesign/gabi's gabikeys.generateSafePrimePair /
// GenerateKeyPair (sample-and-reject prime generation ahead of an RSA
// modulus, then sample generators) and safeprime.Generate's use of
// primes.GenerateProbablePrimeConcurrent for the slow, large-bit-width
// case. Unlike gabi's issuer keys, p and q are discarded the instant n is
// formed: no trapdoor survives trusted_setup.
package setup

import (
	"github.com/zkrange/cuproof"
	"github.com/zkrange/cuproof/bignum"
	"github.com/zkrange/cuproof/primes"
)

// Mode selects the bit widths used by Trusted.
type Mode string

const (
	// ModeFast generates 256-bit primes (512-bit modulus), for
	// development and the test suite.
	ModeFast Mode = "fast"
	// ModeTrusted generates 1024-bit primes (2048-bit modulus), for
	// production use.
	ModeTrusted Mode = "trusted"
)

// primeBits maps a Mode to the bit-width passed to
// primes.GenerateProbablePrime.
func primeBits(mode Mode) (uint, error) {
	switch mode {
	case ModeFast:
		return 256, nil
	case ModeTrusted:
		return 1024, nil
	default:
		return 0, cuproof.ErrInvalidParameter
	}
}

// Params is the public output of trusted setup: a Pedersen commitment
// base g, blinding base h, and RSA modulus n. p and q, the two primes
// whose product is n, are never part of this struct and never leave this
// package.
type Params struct {
	G *bignum.Int
	H *bignum.Int
	N *bignum.Int
}

// Trusted runs the trusted setup procedure for the given mode: it samples
// two distinct probable primes p, q to form n = p*q, then samples g and h
// uniformly from [2, n) subject to gcd(g, n) = gcd(h, n) = 1 and g != h.
// p and q are discarded as soon as n is computed.
//
// ModeTrusted's 1024-bit primes are generated with
// primes.GenerateProbablePrimeConcurrent (one candidate search per CPU
// core, first result wins), matching gabikeys.generateSafePrimePair's
// parallel generation for its slow, large-bit-width case. ModeFast's
// 256-bit primes are cheap enough that single-threaded generation never
// dominates setup time, so they go through the sequential search instead.
func Trusted(mode Mode) (*Params, error) {
	bits, err := primeBits(mode)
	if err != nil {
		return nil, err
	}
	cuproof.Logger.Debugf("trusted setup: mode=%s, prime width=%d bits", mode, bits)

	p, err := generatePrime(mode, bits)
	if err != nil {
		return nil, err
	}

	var q *bignum.Int
	for {
		q, err = generatePrime(mode, bits)
		if err != nil {
			return nil, err
		}
		if q.Cmp(p) != 0 {
			break
		}
		cuproof.Logger.Trace("sampled q == p, resampling q")
	}

	n := new(bignum.Int).Mul(p, q)
	// p and q go out of scope here; nothing below references them.

	g, err := sampleCoprimeUnit(n, nil)
	if err != nil {
		return nil, err
	}
	h, err := sampleCoprimeUnit(n, g)
	if err != nil {
		return nil, err
	}

	cuproof.Logger.Debug("trusted setup complete")
	return &Params{G: g, H: h, N: n}, nil
}

// generatePrime dispatches to the sequential or concurrent prime search
// depending on mode.
func generatePrime(mode Mode, bits uint) (*bignum.Int, error) {
	if mode != ModeTrusted {
		return primes.GenerateProbablePrime(bits)
	}

	stop := make(chan struct{})
	ints, errs := primes.GenerateProbablePrimeConcurrent(bits, stop)
	defer close(stop)

	select {
	case p := <-ints:
		return p, nil
	case err := <-errs:
		return nil, err
	}
}

// sampleCoprimeUnit samples a uniform value from [2, n) that is coprime to
// n and, if avoid is non-nil, distinct from avoid. It resamples on
// rejection, matching gabi's generator-sampling loops in gabikeys.
func sampleCoprimeUnit(n *bignum.Int, avoid *bignum.Int) (*bignum.Int, error) {
	two := bignum.NewInt(2)
	one := bignum.NewInt(1)
	for {
		c, err := bignum.RandRange(two, n)
		if err != nil {
			return nil, err
		}
		if avoid != nil && c.Cmp(avoid) == 0 {
			continue
		}
		if new(bignum.Int).GCD(c, n).Cmp(one) != 0 {
			continue
		}
		return c, nil
	}
}
