// Package rangeproof implements the Fiat-Shamir non-interactive range-proof
// protocol of SPEC_FULL.md §4.7-§4.9: the prover that turns a witness
// (v, r, a, b) into a Proof, the recursive inner-product argument that
// compresses its final vector relation, and the verifier.
//
// Grounded structurally on privacybydesign/gabi's rangeproof/proof.go
// three-type split (commit-phase secrets vs. wire-format proof vs.
// immutable structure parameters) and its two-phase
// CommitmentsFromSecrets/BuildProof prover API, adapted from gabi's
// CL-signature sum-of-squares inequality proof to this spec's
// Bulletproofs-shaped polynomial/inner-product-argument protocol.
package rangeproof

import (
	"github.com/zkrange/cuproof"
	"github.com/zkrange/cuproof/bignum"
	"github.com/zkrange/cuproof/commitment"
	"github.com/zkrange/cuproof/setup"
	"github.com/zkrange/cuproof/squares"
	"github.com/zkrange/cuproof/transcript"
)

// N is the fixed dimension of the padded witness vector d, per
// SPEC_FULL.md §3.
const N = 64

// IPALevels is ceil(log2(N)) for N = 64: the number of recursion levels
// the inner-product argument produces.
const IPALevels = 6

// blindingBits is the width sampled for every blinding scalar this package
// draws (alpha, rho, sL_i, sR_i, tau1, tau2, rho_L, rho_R), per
// SPEC_FULL.md §3.
const blindingBits = 256

// Proof is the opaque bundle a prover produces and a verifier checks.
// Field names mirror the serialization keys of SPEC_FULL.md §6 except
// where Go's case-sensitivity would otherwise collide (the scalar
// coefficients t0, t1, t2 are named PolyT0/PolyT1/PolyT2 here to avoid
// clashing with the group elements T1, T2; package serialize maps both
// back to the wire's lowercase "t0"/"t1"/"t2" keys).
type Proof struct {
	A, S   *bignum.Int
	T1, T2 *bignum.Int

	TauX, Mu, THat *bignum.Int

	C, CV1, CV2 *bignum.Int

	PolyT0, PolyT1, PolyT2 *bignum.Int
	Tau1, Tau2             *bignum.Int

	IPA *InnerProductProof
}

// Prove implements SPEC_FULL.md §4.7 steps 1-12. r is accepted for
// interface symmetry with the witness tuple (v, r, a, b) of spec.md §3 but,
// per the §9 open question, is not used by the construction below: the
// commitment to v the prover emits is produced by commitment.CommitValue,
// which samples its own fresh blinding factor and discards it. This is
// the source's behavior, not a bug introduced here; do not "fix" it by
// wiring r through to C.
func Prove(params *setup.Params, v, r, a, b *bignum.Int) (*Proof, error) {
	_ = r

	if v.Cmp(a) < 0 || v.Cmp(b) > 0 {
		return nil, cuproof.ErrRangeConstraint
	}

	g, h, n := params.G, params.H, params.N

	four := bignum.NewInt(4)
	one := bignum.NewInt(1)
	v1 := new(bignum.Int).Add(new(bignum.Int).Mul(four, new(bignum.Int).Sub(v, a)), one)
	v2 := new(bignum.Int).Add(new(bignum.Int).Mul(four, new(bignum.Int).Sub(b, v)), one)

	d1a, d1b, d1c, err := squares.Find3Squares(v1)
	if err != nil {
		return nil, err
	}
	d2a, d2b, d2c, err := squares.Find3Squares(v2)
	if err != nil {
		return nil, err
	}

	dBase := [6]*bignum.Int{d1a, d1b, d1c, d2a, d2b, d2c}
	d := make([]*bignum.Int, N)
	for i := range d {
		d[i] = dBase[i%6]
	}

	C, _, err := commitment.CommitValue(g, h, v, n)
	if err != nil {
		return nil, err
	}
	CV1, _, err := commitment.CommitValue(g, h, v1, n)
	if err != nil {
		return nil, err
	}
	CV2, _, err := commitment.CommitValue(g, h, v2, n)
	if err != nil {
		return nil, err
	}

	alpha, err := bignum.RandBits(blindingBits)
	if err != nil {
		return nil, err
	}
	rho, err := bignum.RandBits(blindingBits)
	if err != nil {
		return nil, err
	}
	sL, err := randVector(N)
	if err != nil {
		return nil, err
	}
	sR, err := randVector(N)
	if err != nil {
		return nil, err
	}

	A := commitment.Commit(g, h, sumVector(d), alpha, n)
	S := commitment.Commit(g, h, sumVector(sL, sR...), rho, n)

	y := modN(transcript.Challenge(A, S, C, CV1, CV2), n)
	z := modN(transcript.Challenge(y), n)

	// l0 and r0 are built from the identical formula z*d_i + y; they are
	// not a bit decomposition and its complement, so no range constraint is
	// encoded in this vector relation.
	l0 := make([]*bignum.Int, N)
	r0 := make([]*bignum.Int, N)
	for i := 0; i < N; i++ {
		l0[i] = new(bignum.Int).Add(new(bignum.Int).Mul(z, d[i]), y)
		r0[i] = new(bignum.Int).Add(new(bignum.Int).Mul(z, d[i]), y)
	}

	t0 := dot(l0, r0)
	t1 := new(bignum.Int).Add(dot(l0, sR), dot(r0, sL))
	t2 := dot(sL, sR)

	tau1, err := bignum.RandBits(blindingBits)
	if err != nil {
		return nil, err
	}
	tau2, err := bignum.RandBits(blindingBits)
	if err != nil {
		return nil, err
	}
	T1 := commitment.Commit(g, h, t1, tau1, n)
	T2 := commitment.Commit(g, h, t2, tau2, n)

	x := modN(transcript.Challenge(T1, T2), n)

	xSquared := new(bignum.Int).Mul(x, x)
	tHat := new(bignum.Int).Add(t0, new(bignum.Int).Add(new(bignum.Int).Mul(t1, x), new(bignum.Int).Mul(t2, xSquared)))
	mu := new(bignum.Int).Add(alpha, new(bignum.Int).Mul(rho, x))
	tauX := new(bignum.Int).Add(new(bignum.Int).Mul(tau2, xSquared), new(bignum.Int).Mul(tau1, x))

	l := make([]*bignum.Int, N)
	rVec := make([]*bignum.Int, N)
	for i := 0; i < N; i++ {
		l[i] = new(bignum.Int).Add(l0[i], new(bignum.Int).Mul(sL[i], x))
		rVec[i] = new(bignum.Int).Add(r0[i], new(bignum.Int).Mul(sR[i], x))
	}

	ipa, err := computeIPA(g, h, n, l, rVec)
	if err != nil {
		return nil, err
	}

	return &Proof{
		A: A, S: S, T1: T1, T2: T2,
		TauX: tauX, Mu: mu, THat: tHat,
		C: C, CV1: CV1, CV2: CV2,
		PolyT0: t0, PolyT1: t1, PolyT2: t2,
		Tau1: tau1, Tau2: tau2,
		IPA: ipa,
	}, nil
}

// modN reduces x to the mathematical residue in [0, n), matching
// SPEC_FULL.md's "mod operates as the mathematical residue in [0, n)"
// bignum contract.
func modN(x, n *bignum.Int) *bignum.Int {
	return new(bignum.Int).Mod(x, n)
}

// randVector samples count blinding-bits-wide values uniformly from
// [0, 2^256), matching the sL, sR sampling of SPEC_FULL.md §4.7 step 5.
func randVector(count int) ([]*bignum.Int, error) {
	out := make([]*bignum.Int, count)
	for i := range out {
		v, err := bignum.RandBits(blindingBits)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// sumVector returns the plain-integer sum of first plus every element of
// rest, used for A = g^(sum d_i) and S = g^(sum sL_i+sR_i).
func sumVector(first []*bignum.Int, rest ...*bignum.Int) *bignum.Int {
	sum := bignum.NewInt(0)
	for _, v := range first {
		sum.Add(sum, v)
	}
	for _, v := range rest {
		sum.Add(sum, v)
	}
	return sum
}

// dot returns the plain-integer inner product of a and b; panics if their
// lengths differ, which never happens for the fixed-dimension vectors this
// package constructs.
func dot(a, b []*bignum.Int) *bignum.Int {
	if len(a) != len(b) {
		panic("rangeproof: dot product of mismatched-length vectors")
	}
	sum := bignum.NewInt(0)
	for i := range a {
		sum.Add(sum, new(bignum.Int).Mul(a[i], b[i]))
	}
	return sum
}
