package rangeproof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkrange/cuproof/bignum"
	"github.com/zkrange/cuproof/setup"
)

func mustSetup(t *testing.T) *setup.Params {
	t.Helper()
	params, err := setup.Trusted(setup.ModeFast)
	require.NoError(t, err)
	return params
}

// S1 of SPEC_FULL.md §8: fast setup, a=10, b=100, v=30, r=42.
func TestProveVerifyS1(t *testing.T) {
	params := mustSetup(t)
	proof, err := Prove(params, bignum.NewInt(30), bignum.NewInt(42), bignum.NewInt(10), bignum.NewInt(100))
	require.NoError(t, err)
	assert.True(t, Verify(params, proof))
}

// S2 of SPEC_FULL.md §8: range [0, 1000], several values, r=123.
func TestProveVerifyS2(t *testing.T) {
	params := mustSetup(t)
	a, b := bignum.NewInt(0), bignum.NewInt(1000)
	for _, v := range []int64{0, 100, 500, 999, 1000} {
		proof, err := Prove(params, bignum.NewInt(v), bignum.NewInt(123), a, b)
		require.NoError(t, err)
		assert.True(t, Verify(params, proof), "v=%d should verify", v)
	}
}

func TestProveRejectsOutOfRange(t *testing.T) {
	params := mustSetup(t)
	_, err := Prove(params, bignum.NewInt(5), bignum.NewInt(1), bignum.NewInt(10), bignum.NewInt(100))
	assert.Error(t, err)
}

// S3 of SPEC_FULL.md §8: tampering with t_hat must flip the verdict.
func TestVerifyRejectsTamperedTHat(t *testing.T) {
	params := mustSetup(t)
	proof, err := Prove(params, bignum.NewInt(30), bignum.NewInt(42), bignum.NewInt(10), bignum.NewInt(100))
	require.NoError(t, err)
	require.True(t, Verify(params, proof))

	proof.THat = new(bignum.Int).Add(proof.THat, bignum.NewInt(1))
	assert.False(t, Verify(params, proof))
}

// S4 of SPEC_FULL.md §8: swapping tau1 and tau2 must flip the verdict.
func TestVerifyRejectsSwappedTau(t *testing.T) {
	params := mustSetup(t)
	proof, err := Prove(params, bignum.NewInt(30), bignum.NewInt(42), bignum.NewInt(10), bignum.NewInt(100))
	require.NoError(t, err)
	require.True(t, Verify(params, proof))

	proof.Tau1, proof.Tau2 = proof.Tau2, proof.Tau1
	assert.False(t, Verify(params, proof))
}

func TestVerifyRejectsNilProof(t *testing.T) {
	params := mustSetup(t)
	assert.False(t, Verify(params, nil))
}

func TestIPAShapeForFixedDimension(t *testing.T) {
	params := mustSetup(t)
	proof, err := Prove(params, bignum.NewInt(30), bignum.NewInt(42), bignum.NewInt(10), bignum.NewInt(100))
	require.NoError(t, err)

	assert.Len(t, proof.IPA.L, IPALevels)
	assert.Len(t, proof.IPA.R, IPALevels)
}

func TestVerifyIsDeterministic(t *testing.T) {
	params := mustSetup(t)
	proof, err := Prove(params, bignum.NewInt(30), bignum.NewInt(42), bignum.NewInt(10), bignum.NewInt(100))
	require.NoError(t, err)

	first := Verify(params, proof)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Verify(params, proof))
	}
}
