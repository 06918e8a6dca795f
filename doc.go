// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cuproof proves, in zero knowledge, that a secret integer v lies
// within a public closed interval [a, b] given a Pedersen commitment
// C = g^v * h^r (mod n) over an RSA group. See the subpackages bignum,
// primes, setup, commitment, transcript, squares and rangeproof for the
// actual engine, serialize for the on-disk wire format, and cmd/cuproof
// for the command-line boundary.
package cuproof
