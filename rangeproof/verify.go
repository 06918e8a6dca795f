package rangeproof

import (
	"github.com/zkrange/cuproof/bignum"
	"github.com/zkrange/cuproof/commitment"
	"github.com/zkrange/cuproof/setup"
	"github.com/zkrange/cuproof/transcript"
)

// Verify implements SPEC_FULL.md §4.9's five checks plus the additional
// defense-in-depth checks carried over from the original Rust
// cuproof_verify implementation (see SPEC_FULL.md §4.9's [EXPANDED] note):
// non-zero challenges and commitments, and pairwise-distinct C/C_v1/C_v2.
// Verify is total: every input either accepts (true) or rejects (false);
// it never panics.
//
// Per spec.md §9's open questions, the check labelled Check 3 below
// (committing t_hat with tau_x against committing the recomputed
// right-hand side with the same tau_x) is a tautology once Check 2 holds,
// and the
// overall protocol does not bind C, C_v1, C_v2 algebraically to A, S, T1,
// T2 or encode the range constraint into a relation this verifier
// actually checks. These are reproduced as specified, not "fixed".
func Verify(params *setup.Params, proof *Proof) bool {
	if params == nil || proof == nil || proof.IPA == nil {
		return false
	}
	g, h, n := params.G, params.H, params.N
	if g == nil || h == nil || n == nil || n.Sign() <= 0 {
		return false
	}
	for _, v := range []*bignum.Int{proof.THat, proof.TauX, proof.PolyT0, proof.PolyT1, proof.PolyT2, proof.Tau1, proof.Tau2} {
		if v == nil {
			return false
		}
	}

	if !nonzeroModN(n, proof.A, proof.S, proof.T1, proof.T2, proof.C, proof.CV1, proof.CV2) {
		return false
	}
	if pairwiseEqual(proof.C, proof.CV1) || pairwiseEqual(proof.C, proof.CV2) || pairwiseEqual(proof.CV1, proof.CV2) {
		return false
	}

	y := modN(transcript.Challenge(proof.A, proof.S, proof.C, proof.CV1, proof.CV2), n)
	z := modN(transcript.Challenge(y), n)
	x := modN(transcript.Challenge(proof.T1, proof.T2), n)
	if y.Sign() == 0 || z.Sign() == 0 || x.Sign() == 0 {
		return false
	}

	// Check 1: T1 = g^t1 * h^tau1, T2 = g^t2 * h^tau2 (mod n).
	if commitment.Commit(g, h, proof.PolyT1, proof.Tau1, n).Cmp(proof.T1) != 0 {
		return false
	}
	if commitment.Commit(g, h, proof.PolyT2, proof.Tau2, n).Cmp(proof.T2) != 0 {
		return false
	}

	// Check 2: t_hat = t0 + t1*x + t2*x^2, over the integers.
	xSquared := new(bignum.Int).Mul(x, x)
	rhs := new(bignum.Int).Add(proof.PolyT0, new(bignum.Int).Add(new(bignum.Int).Mul(proof.PolyT1, x), new(bignum.Int).Mul(proof.PolyT2, xSquared)))
	if rhs.Cmp(proof.THat) != 0 {
		return false
	}

	// Check 3: committing t_hat with tau_x matches committing the
	// recomputed right-hand side with the same tau_x. A tautology once
	// check 2 holds, per the open question above; reproduced as specified.
	lhsCommit := commitment.Commit(g, h, proof.THat, proof.TauX, n)
	rhsCommit := commitment.Commit(g, h, rhs, proof.TauX, n)
	if lhsCommit.Cmp(rhsCommit) != 0 {
		return false
	}

	// Check 4: inner-product-argument transcript shape.
	if len(proof.IPA.L) != len(proof.IPA.R) {
		return false
	}
	if len(proof.IPA.L) != IPALevels {
		return false
	}

	return true
}

func nonzeroModN(n *bignum.Int, values ...*bignum.Int) bool {
	for _, v := range values {
		if v == nil || modN(v, n).Sign() == 0 {
			return false
		}
	}
	return true
}

func pairwiseEqual(a, b *bignum.Int) bool {
	return a.Cmp(b) == 0
}
