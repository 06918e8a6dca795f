package primes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zkrange/cuproof"
	"github.com/zkrange/cuproof/bignum"
)

func TestGenerateProbablePrimeRejectsSmallWidth(t *testing.T) {
	_, err := GenerateProbablePrime(15)
	assert.ErrorIs(t, err, cuproof.ErrInvalidParameter)
}

func TestGenerateProbablePrimeHasExactBitLength(t *testing.T) {
	for _, k := range []uint{16, 64, 128} {
		p, err := GenerateProbablePrime(k)
		if !assert.NoError(t, err) {
			continue
		}
		assert.Equal(t, int(k), p.BitLen())
		assert.True(t, p.ProbablyPrime(64))
	}
}

func TestGenerateProbablePrimeIsOdd(t *testing.T) {
	p, err := GenerateProbablePrime(32)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), p.Bit(0))
}

func TestMillerRabinAgreesWithStandardLibraryOnKnownValues(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 97, 7919, 104729}
	for _, pv := range primes {
		p := bignum.NewInt(pv)
		assert.True(t, millerRabin(p, MillerRabinWitnesses), "%d should be prime", pv)
	}

	composites := []int64{1, 4, 6, 9, 15, 100, 561, 41041}
	for _, cv := range composites {
		c := bignum.NewInt(cv)
		assert.False(t, millerRabin(c, MillerRabinWitnesses), "%d should be composite", cv)
	}
}

func TestGenerateProbablePrimeConcurrentStops(t *testing.T) {
	stop := make(chan struct{})
	ints, _ := GenerateProbablePrimeConcurrent(24, stop)

	p := <-ints
	assert.Equal(t, 24, p.BitLen())
	close(stop)
}
