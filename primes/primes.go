// Package primes implements Miller-Rabin probable-prime generation at a
// fixed bit width, as specified in SPEC_FULL.md §4.2.
//
// Grounded on privacybydesign/gabi's internal/common/randomprime.go (the
// SmallPrimes trial-division sieve ahead of the expensive ProbablyPrime
// call) and safeprime/safeprime.go's concurrent generate-until-stop channel
// idiom, which this package reuses for the 1024-bit "trusted" setup mode
// where generation latency matters.
package primes

import (
	"crypto/rand"
	"io"
	"runtime"
	"sync"

	"github.com/zkrange/cuproof"
	"github.com/zkrange/cuproof/bignum"
)

// smallPrimes excludes 2 because every candidate is forced odd by
// construction, exactly as in gabi's SmallPrimes.
var smallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37,
}

// MillerRabinWitnesses is the number of random witnesses used per
// candidate, giving an error probability of at most 2^-80 as required by
// SPEC_FULL.md §4.2.
const MillerRabinWitnesses = 40

// GenerateProbablePrime returns a k-bit value p such that Miller-Rabin
// declares p probably prime with error <= 2^-80. It fails with
// cuproof.ErrInvalidParameter if k < 16.
func GenerateProbablePrime(k uint) (*bignum.Int, error) {
	if k < 16 {
		return nil, cuproof.ErrInvalidParameter
	}
	return randomPrime(rand.Reader, k)
}

// randomPrime samples a k-bit odd candidate with the top bit set, sieves it
// against smallPrimes, and on survival runs Miller-Rabin with
// MillerRabinWitnesses random witnesses, resampling on any rejection.
func randomPrime(rnd io.Reader, k uint) (*bignum.Int, error) {
	nbytes := int((k + 7) / 8)
	topBitMask := byte(1) << ((k - 1) % 8)
	// If k isn't a multiple of 8, clear the high bits above the k-th bit
	// in the top byte before forcing the top bit on.
	var clearMask byte = 0xff
	if rem := k % 8; rem != 0 {
		clearMask = byte(1<<rem) - 1
	}

	buf := make([]byte, nbytes)
	candidate := new(bignum.Int)

	for {
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, err
		}
		buf[0] &= clearMask
		buf[0] |= topBitMask
		buf[nbytes-1] |= 1 // force odd

		candidate.SetBytes(buf)
		if uint(candidate.BitLen()) != k {
			continue
		}
		if divisibleBySmallPrime(candidate) {
			continue
		}
		if millerRabin(candidate, MillerRabinWitnesses) {
			return candidate, nil
		}
		cuproof.Logger.Trace("candidate failed Miller-Rabin, resampling")
		candidate = new(bignum.Int)
	}
}

func divisibleBySmallPrime(p *bignum.Int) bool {
	for _, sp := range smallPrimes {
		rem := new(bignum.Int).Mod(p, bignum.NewInt(int64(sp)))
		if rem.Sign() == 0 && p.Cmp(bignum.NewInt(int64(sp))) != 0 {
			return true
		}
	}
	return false
}

// millerRabin reports whether p is probably prime, testing witnesses random
// integers drawn uniformly from [2, p-2]. It writes p-1 = d*2^s, then for
// each witness a computes x = a^d mod p and squares up to s-1 times
// watching for +-1, exactly as specified in SPEC_FULL.md §4.2.
func millerRabin(p *bignum.Int, witnesses int) bool {
	one := bignum.NewInt(1)
	two := bignum.NewInt(2)

	if p.Cmp(two) < 0 {
		return false
	}
	if p.Cmp(two) == 0 {
		return true
	}
	three := bignum.NewInt(3)
	if p.Cmp(three) == 0 {
		return true
	}
	if new(bignum.Int).Mod(p, two).Sign() == 0 {
		return false
	}

	pMinus1 := new(bignum.Int).Sub(p, one)
	d := new(bignum.Int).Set(pMinus1)
	s := uint(0)
	for new(bignum.Int).Mod(d, two).Sign() == 0 {
		d.Rsh(d, 1)
		s++
	}

	// Witnesses are drawn uniformly from the closed range [2, p-2], i.e.
	// the half-open range [2, p-1) RandRange expects.
	for i := 0; i < witnesses; i++ {
		a, err := bignum.RandRange(two, pMinus1)
		if err != nil {
			return false
		}

		x := new(bignum.Int).Exp(a, d, p)
		if x.Cmp(one) == 0 || x.Cmp(pMinus1) == 0 {
			continue
		}

		composite := true
		for j := uint(0); j < s-1; j++ {
			x.Exp(x, two, p)
			if x.Cmp(pMinus1) == 0 {
				composite = false
				break
			}
			if x.Cmp(one) == 0 {
				return false
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// GenerateProbablePrimeConcurrent generates k-bit probable primes on every
// CPU core until the stop channel receives a value or is closed, matching
// gabi's safeprime.GenerateConcurrent. Used by package setup for the
// "trusted" mode's 1024-bit primes, where single-threaded generation
// latency would otherwise dominate setup time.
func GenerateProbablePrimeConcurrent(k uint, stop <-chan struct{}) (<-chan *bignum.Int, <-chan error) {
	count := runtime.GOMAXPROCS(0)
	cuproof.Logger.Debugf("starting %d-bit probable prime search across %d goroutines", k, count)
	ints := make(chan *bignum.Int, count)
	errs := make(chan error, count)
	stopped := make(chan struct{})
	var stopOnce sync.Once
	closeStopped := func() { stopOnce.Do(func() { close(stopped) }) }

	go func() {
		select {
		case <-stop:
			closeStopped()
		case <-stopped:
		}
	}()

	for i := 0; i < count; i++ {
		go func() {
			for {
				p, err := randomPrime(rand.Reader, k)
				if err != nil {
					errs <- err
					closeStopped()
					return
				}
				select {
				case <-stopped:
					return
				case ints <- p:
				}
			}
		}()
	}

	return ints, errs
}
