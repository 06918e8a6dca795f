package serialize

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkrange/cuproof/bignum"
	"github.com/zkrange/cuproof/rangeproof"
	"github.com/zkrange/cuproof/setup"
)

func TestEncodeHexOfZero(t *testing.T) {
	assert.Equal(t, "0x00", EncodeHex(bignum.NewInt(0)))
}

func TestDecodeHexAcceptsEmptyBody(t *testing.T) {
	v, err := DecodeHex("0x")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int64())
}

func TestDecodeHexAcceptsOddLength(t *testing.T) {
	v, err := DecodeHex("0xb")
	require.NoError(t, err)
	assert.Equal(t, int64(11), v.Int64())
}

func TestDecodeHexRejectsMissingPrefix(t *testing.T) {
	_, err := DecodeHex("ff")
	assert.Error(t, err)
}

func TestHexRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 11, 255, 65536, 1234567890} {
		v := bignum.NewInt(n)
		decoded, err := DecodeHex(EncodeHex(v))
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(decoded))
	}
}

// Testable property 9 of SPEC_FULL.md §8: params round-trip value-for-value.
func TestParamsRoundTrip(t *testing.T) {
	params := &setup.Params{G: bignum.NewInt(4), H: bignum.NewInt(7), N: bignum.NewInt(253)}

	var buf bytes.Buffer
	require.NoError(t, WriteParams(&buf, params))

	got, err := ReadParams(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, got.G.Cmp(params.G))
	assert.Equal(t, 0, got.H.Cmp(params.H))
	assert.Equal(t, 0, got.N.Cmp(params.N))
}

func TestReadParamsRejectsEqualGH(t *testing.T) {
	var buf bytes.Buffer
	params := &setup.Params{G: bignum.NewInt(4), H: bignum.NewInt(4), N: bignum.NewInt(253)}
	require.NoError(t, WriteParams(&buf, params))

	_, err := ReadParams(&buf)
	assert.Error(t, err)
}

func TestReadParamsRejectsTruncatedFile(t *testing.T) {
	_, err := ReadParams(bytes.NewBufferString("0x04\n0x07\n"))
	assert.Error(t, err)
}

// Testable property 9 of SPEC_FULL.md §8: proof round-trip, value-for-value.
func TestProofRoundTrip(t *testing.T) {
	params, err := setup.Trusted(setup.ModeFast)
	require.NoError(t, err)
	proof, err := rangeproof.Prove(params, bignum.NewInt(30), bignum.NewInt(42), bignum.NewInt(10), bignum.NewInt(100))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteProof(&buf, proof))

	got, err := ReadProof(&buf)
	require.NoError(t, err)

	assert.True(t, rangeproof.Verify(params, got))
	assert.Equal(t, 0, got.THat.Cmp(proof.THat))
	assert.Len(t, got.IPA.L, rangeproof.IPALevels)
	assert.Len(t, got.IPA.R, rangeproof.IPALevels)
}

func TestProofWriteHasCanonicalIndentation(t *testing.T) {
	params, err := setup.Trusted(setup.ModeFast)
	require.NoError(t, err)
	proof, err := rangeproof.Prove(params, bignum.NewInt(30), bignum.NewInt(42), bignum.NewInt(10), bignum.NewInt(100))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteProof(&buf, proof))

	found := false
	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		if bytes.HasPrefix(line, []byte("  0x")) {
			found = true
			break
		}
	}
	assert.True(t, found, "expected two-space-indented IPP element lines")
}
