// Package transcript implements the Fiat-Shamir challenge derivation used
// to turn the interactive range-proof protocol into a non-interactive one,
// per SPEC_FULL.md §4.5.
//
// Grounded on privacybydesign/gabi's internal/common/hashtool.go
// (HashCommit: hash a concatenation of big integers, reinterpret the
// digest as a big integer), adapted from gabi's ASN.1-framed encoding to
// the spec's raw big-endian-concatenation contract: the wire contract
// here is authoritative, not gabi's. Uses minio/sha256-simd as a drop-in
// crypto/sha256 replacement, since the transcript is re-hashed on every
// prover step and on every inner-product-argument recursion level.
package transcript

import (
	sha256 "github.com/minio/sha256-simd"

	"github.com/zkrange/cuproof/bignum"
)

// Challenge concatenates the big-endian unsigned byte encoding of each
// input in the given order, hashes the concatenation with SHA-256, and
// reinterprets the 32-byte digest as an unsigned big-endian integer.
// Callers reduce the result modulo n themselves at the point of use; this
// function never reduces. No domain-separation tag and none of the public
// parameters (g, h, n) is mixed into the hash: only the inputs given.
//
// The order of inputs is part of the protocol's contract: Challenge(x, y)
// and Challenge(y, x) differ with overwhelming probability when x != y.
func Challenge(inputs ...*bignum.Int) *bignum.Int {
	h := sha256.New()
	for _, in := range inputs {
		h.Write(in.Bytes())
	}
	digest := h.Sum(nil)
	return new(bignum.Int).SetBytes(digest)
}
