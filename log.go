package cuproof

import "github.com/sirupsen/logrus"

// Logger is the package-level logger used for progress and diagnostic
// messages emitted by the engine (prime generation and trusted setup
// progress). The CLI's VALID/INVALID and error output never goes through
// Logger: that output is specified byte-for-byte in SPEC_FULL.md §6 and is
// written directly to stdout/stderr instead.
var Logger *logrus.Logger

func init() {
	Logger = logrus.StandardLogger()
}
