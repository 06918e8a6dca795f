package cuproof

import "github.com/zkrange/cuproof/bignum"

// RandomBlindingFactorBits is the width the cmd/cuproof CLI samples r from
// when a caller of "prove" does not already hold a witness blinding
// factor, matching original_source/src/main.rs's
// "cuproof::util::random_bigint(256)" call ahead of cuproof_prove.
const RandomBlindingFactorBits = 256

// RandomBlindingFactor samples r uniformly from [0, 2^256), for CLI
// callers that have no pre-existing commitment randomness to supply.
func RandomBlindingFactor() (*bignum.Int, error) {
	return bignum.RandBits(RandomBlindingFactorBits)
}
