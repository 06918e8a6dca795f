package rangeproof

import (
	"github.com/zkrange/cuproof/bignum"
	"github.com/zkrange/cuproof/commitment"
	"github.com/zkrange/cuproof/transcript"
)

// InnerProductProof is the recursive inner-product sub-proof of
// SPEC_FULL.md §4.8: two ordered sequences L, R of group elements of equal
// length IPALevels, plus the terminal scalars a*, b*.
//
// Grounded on the recursive bulletproofs inner-product-argument shape in
// the example corpus (the L/R/A_final/B_final split used for elliptic-
// curve IPAs), reimplemented here over the RSA-group Pedersen commitment
// (commitment.Commit) rather than an elliptic-curve group.
type InnerProductProof struct {
	L, R         []*bignum.Int
	AStar, BStar *bignum.Int
}

// computeIPA implements SPEC_FULL.md §4.8: base case at |l| = 1, else
// split, commit to the cross terms, derive a challenge, recurse on the
// folded vectors, and append (L_l, R_l) to the list returned by the
// recursive call. This append-after-recursion order is part of the
// serialization contract and must be reproduced exactly: it puts the
// deepest recursion level first and the outermost (top) level last.
func computeIPA(g, h, n *bignum.Int, l, r []*bignum.Int) (*InnerProductProof, error) {
	if len(l) == 1 {
		return &InnerProductProof{AStar: l[0], BStar: r[0]}, nil
	}

	mid := len(l) / 2
	lL, lR := l[:mid], l[mid:]
	rL, rR := r[:mid], r[mid:]

	cL := dot(lL, rR)
	cR := dot(lR, rL)

	rhoL, err := bignum.RandBits(blindingBits)
	if err != nil {
		return nil, err
	}
	rhoR, err := bignum.RandBits(blindingBits)
	if err != nil {
		return nil, err
	}

	Lcommit := commitment.Commit(g, h, cL, rhoL, n)
	Rcommit := commitment.Commit(g, h, cR, rhoR, n)

	u := modN(transcript.Challenge(Lcommit, Rcommit), n)

	lFolded := make([]*bignum.Int, mid)
	rFolded := make([]*bignum.Int, mid)
	for i := 0; i < mid; i++ {
		lFolded[i] = new(bignum.Int).Add(lL[i], new(bignum.Int).Mul(u, lR[i]))
		rFolded[i] = new(bignum.Int).Add(rL[i], new(bignum.Int).Mul(u, rR[i]))
	}

	sub, err := computeIPA(g, h, n, lFolded, rFolded)
	if err != nil {
		return nil, err
	}

	sub.L = append(sub.L, Lcommit)
	sub.R = append(sub.R, Rcommit)
	return sub, nil
}
