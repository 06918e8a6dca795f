package cuproof

import "github.com/go-errors/errors"

// Error taxonomy shared by every engine package. Each sentinel is built
// with github.com/go-errors/errors.New, matching how gabi itself builds
// errors throughout gabikeys, safeprime and keyproof. Engine functions
// return these values directly, unwrapped, so callers can compare them
// with errors.Is; the CLI prints only the error message.
var (
	// ErrInvalidParameter covers setup bit-widths that are too small,
	// malformed hex on the command line, g == h, and g or h not coprime
	// to n on load.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrRangeConstraint is returned when the prover is invoked with
	// v < a or v > b.
	ErrRangeConstraint = errors.New("value outside claimed range")

	// ErrNoDecomposition is returned when the three-square search
	// exhausts its iteration budget. It is fatal and not recoverable
	// locally.
	ErrNoDecomposition = errors.New("no three-square decomposition found")

	// ErrSerializationError covers params/proof files with incorrect
	// shape, truncation, or a non-hex body.
	ErrSerializationError = errors.New("malformed serialized data")
)
