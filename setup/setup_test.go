package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zkrange/cuproof"
	"github.com/zkrange/cuproof/bignum"
)

func TestTrustedRejectsUnknownMode(t *testing.T) {
	_, err := Trusted(Mode("bogus"))
	assert.ErrorIs(t, err, cuproof.ErrInvalidParameter)
}

func TestTrustedFastProducesValidParams(t *testing.T) {
	params, err := Trusted(ModeFast)
	if !assert.NoError(t, err) {
		return
	}

	assert.NotEqual(t, 0, params.G.Cmp(params.H))
	assert.True(t, params.N.BitLen() >= 500 && params.N.BitLen() <= 512)

	one := bignum.NewInt(1)
	assert.Equal(t, 0, new(bignum.Int).GCD(params.G, params.N).Cmp(one))
	assert.Equal(t, 0, new(bignum.Int).GCD(params.H, params.N).Cmp(one))
}

func TestTrustedFastParamsAreIndependentAcrossCalls(t *testing.T) {
	a, err := Trusted(ModeFast)
	assert.NoError(t, err)
	b, err := Trusted(ModeFast)
	assert.NoError(t, err)

	assert.NotEqual(t, 0, a.N.Cmp(b.N))
}
