// Package commitment implements Pedersen commitments over the RSA group
// Z_n^*, per SPEC_FULL.md §4.4.
//
// Grounded on privacybydesign/gabi's keyproof/pedersen.go (the
// g^m * h^r mod n commitment shape) and rangeproof/qrgroup.go's exponent
// plumbing. Commit exponentiates with the plain, arbitrary-size
// bignum.Int.Exp modpow rather than a windowed fixed-base table: unlike
// gabi's keyproof.group and zkproof.group, which know the group's order
// and panic if an exponent would exceed it before ever calling into a
// table, this protocol has no such bound available (p, q are discarded at
// the end of trusted setup, per setup.Trusted) and routinely commits to
// values many times wider than n (the polynomial coefficients t0, t1, t2
// and the inner-product-argument cross terms are computed over the
// integers, unbounded by n). A table sized to n's bit length would
// silently truncate those exponents, so none is used here.
package commitment

import "github.com/zkrange/cuproof/bignum"

// Commit computes g^m * h^r mod n.
func Commit(g, h, m, r, n *bignum.Int) *bignum.Int {
	gm := new(bignum.Int).Exp(g, m, n)
	hr := new(bignum.Int).Exp(h, r, n)
	return new(bignum.Int).Mod(new(bignum.Int).Mul(gm, hr), n)
}

// CommitValue samples r uniformly from [0, 2^256) and returns
// (Commit(g, h, m, r, n), r).
func CommitValue(g, h, m, n *bignum.Int) (*bignum.Int, *bignum.Int, error) {
	r, err := bignum.RandBits(256)
	if err != nil {
		return nil, nil, err
	}
	return Commit(g, h, m, r, n), r, nil
}
