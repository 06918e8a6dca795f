// Package serialize implements the canonical hex line formats of
// SPEC_FULL.md §6 for the parameters file and the proof file, the
// boundary between the cryptographic engine and the cmd/cuproof CLI.
//
// Grounded on privacybydesign/gabi's gabikeys/keys.go WriteTo/WriteToFile/
// NewPublicKeyFromFile read/write pair, adapted from gabi's XML encoding
// to the spec's plain hex-line text contract, and on
// original_source/src/main.rs's load_params/save_params/load_proof/
// save_proof call shape (the three file-level operations a CLI needs).
package serialize

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/zkrange/cuproof"
	"github.com/zkrange/cuproof/bignum"
	"github.com/zkrange/cuproof/rangeproof"
	"github.com/zkrange/cuproof/setup"
)

// EncodeHex renders v as "0x" followed by lowercase hex of its big-endian
// unsigned encoding. Zero is always emitted as "0x00", per SPEC_FULL.md
// §6's "implementations must accept both and emit 0x00".
func EncodeHex(v *bignum.Int) string {
	if v.Sign() == 0 {
		return "0x00"
	}
	return "0x" + hex.EncodeToString(v.Bytes())
}

// DecodeHex parses a "0x"-prefixed lowercase-or-mixed-case hex string into
// a non-negative integer. It tolerantly accepts an empty body ("0x") and
// an odd number of hex digits, per SPEC_FULL.md §6. It returns
// cuproof.ErrSerializationError on any other malformed input.
func DecodeHex(s string) (*bignum.Int, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") {
		return nil, cuproof.ErrSerializationError
	}
	body := s[2:]
	if body == "" {
		return bignum.NewInt(0), nil
	}
	if len(body)%2 != 0 {
		body = "0" + body
	}
	raw, err := hex.DecodeString(body)
	if err != nil {
		return nil, cuproof.ErrSerializationError
	}
	return new(bignum.Int).SetBytes(raw), nil
}

// WriteParams writes the three-line params.txt format of SPEC_FULL.md §6:
// one line each for g, h, n in that order, each "0x" plus lowercase hex,
// with a trailing newline at end of file.
func WriteParams(w io.Writer, params *setup.Params) error {
	for _, v := range []*bignum.Int{params.G, params.H, params.N} {
		if _, err := fmt.Fprintln(w, EncodeHex(v)); err != nil {
			return err
		}
	}
	return nil
}

// ReadParams parses the three-line params.txt format, returning
// cuproof.ErrSerializationError on a malformed or truncated file and
// cuproof.ErrInvalidParameter if g == h or either is not coprime to n.
func ReadParams(r io.Reader) (*setup.Params, error) {
	lines, err := readNonEmptyLines(r, 3)
	if err != nil {
		return nil, err
	}

	g, err := DecodeHex(lines[0])
	if err != nil {
		return nil, err
	}
	h, err := DecodeHex(lines[1])
	if err != nil {
		return nil, err
	}
	n, err := DecodeHex(lines[2])
	if err != nil {
		return nil, err
	}

	if g.Cmp(h) == 0 {
		return nil, cuproof.ErrInvalidParameter
	}
	one := bignum.NewInt(1)
	if new(bignum.Int).GCD(g, n).Cmp(one) != 0 || new(bignum.Int).GCD(h, n).Cmp(one) != 0 {
		return nil, cuproof.ErrInvalidParameter
	}

	return &setup.Params{G: g, H: h, N: n}, nil
}

// proofFieldOrder is the exact key order of SPEC_FULL.md §6's proof.txt
// key-value block, preceding the IPP_L/IPP_R/IPP_a/IPP_b block.
var proofFieldOrder = []string{
	"A", "S", "T1", "T2", "tau_x", "mu", "t_hat",
	"C", "C_v1", "C_v2", "t0", "t1", "t2", "tau1", "tau2",
}

func proofFieldValue(p *rangeproof.Proof, key string) *bignum.Int {
	switch key {
	case "A":
		return p.A
	case "S":
		return p.S
	case "T1":
		return p.T1
	case "T2":
		return p.T2
	case "tau_x":
		return p.TauX
	case "mu":
		return p.Mu
	case "t_hat":
		return p.THat
	case "C":
		return p.C
	case "C_v1":
		return p.CV1
	case "C_v2":
		return p.CV2
	case "t0":
		return p.PolyT0
	case "t1":
		return p.PolyT1
	case "t2":
		return p.PolyT2
	case "tau1":
		return p.Tau1
	case "tau2":
		return p.Tau2
	default:
		return nil
	}
}

// WriteProof writes the proof.txt key-value format of SPEC_FULL.md §6:
// one "key: 0xhex" line per field in proofFieldOrder, followed by the
// IPP_L:/IPP_R: blocks (each with rangeproof.IPALevels two-space-indented
// hex lines) and the IPP_a:/IPP_b: terminal scalars.
func WriteProof(w io.Writer, p *rangeproof.Proof) error {
	for _, key := range proofFieldOrder {
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, EncodeHex(proofFieldValue(p, key))); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "IPP_L:"); err != nil {
		return err
	}
	for _, l := range p.IPA.L {
		if _, err := fmt.Fprintf(w, "  %s\n", EncodeHex(l)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "IPP_R:"); err != nil {
		return err
	}
	for _, rv := range p.IPA.R {
		if _, err := fmt.Fprintf(w, "  %s\n", EncodeHex(rv)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "IPP_a: %s\n", EncodeHex(p.IPA.AStar)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "IPP_b: %s\n", EncodeHex(p.IPA.BStar)); err != nil {
		return err
	}
	return nil
}

// ReadProof parses the proof.txt format written by WriteProof. It accepts
// additional whitespace around the two-space IPP indentation, per
// SPEC_FULL.md §6, but requires the field order and block structure to
// otherwise match; any deviation yields cuproof.ErrSerializationError.
func ReadProof(r io.Reader) (*rangeproof.Proof, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	proof := &rangeproof.Proof{}
	for _, key := range proofFieldOrder {
		line, ok := nextNonEmptyLine(scanner)
		if !ok {
			return nil, cuproof.ErrSerializationError
		}
		value, err := parseKeyValueLine(line, key)
		if err != nil {
			return nil, err
		}
		*fieldPointer(proof, key) = value
	}

	if line, ok := nextNonEmptyLine(scanner); !ok || strings.TrimSpace(line) != "IPP_L:" {
		return nil, cuproof.ErrSerializationError
	}
	ls, err := readIndentedHexBlock(scanner, rangeproof.IPALevels)
	if err != nil {
		return nil, err
	}
	if line, ok := nextNonEmptyLine(scanner); !ok || strings.TrimSpace(line) != "IPP_R:" {
		return nil, cuproof.ErrSerializationError
	}
	rs, err := readIndentedHexBlock(scanner, rangeproof.IPALevels)
	if err != nil {
		return nil, err
	}

	aLine, ok := nextNonEmptyLine(scanner)
	if !ok {
		return nil, cuproof.ErrSerializationError
	}
	aStar, err := parseKeyValueLine(aLine, "IPP_a")
	if err != nil {
		return nil, err
	}
	bLine, ok := nextNonEmptyLine(scanner)
	if !ok {
		return nil, cuproof.ErrSerializationError
	}
	bStar, err := parseKeyValueLine(bLine, "IPP_b")
	if err != nil {
		return nil, err
	}

	proof.IPA = &rangeproof.InnerProductProof{L: ls, R: rs, AStar: aStar, BStar: bStar}
	return proof, nil
}

// fieldPointer returns the address of the Proof field for key, so
// ReadProof can fill it in place without repeating the key switch above.
func fieldPointer(p *rangeproof.Proof, key string) **bignum.Int {
	switch key {
	case "A":
		return &p.A
	case "S":
		return &p.S
	case "T1":
		return &p.T1
	case "T2":
		return &p.T2
	case "tau_x":
		return &p.TauX
	case "mu":
		return &p.Mu
	case "t_hat":
		return &p.THat
	case "C":
		return &p.C
	case "C_v1":
		return &p.CV1
	case "C_v2":
		return &p.CV2
	case "t0":
		return &p.PolyT0
	case "t1":
		return &p.PolyT1
	case "t2":
		return &p.PolyT2
	case "tau1":
		return &p.Tau1
	case "tau2":
		return &p.Tau2
	}
	panic("serialize: unknown proof field key " + key)
}

func parseKeyValueLine(line, wantKey string) (*bignum.Int, error) {
	parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != wantKey {
		return nil, cuproof.ErrSerializationError
	}
	return DecodeHex(strings.TrimSpace(parts[1]))
}

func readIndentedHexBlock(scanner *bufio.Scanner, count int) ([]*bignum.Int, error) {
	out := make([]*bignum.Int, 0, count)
	for i := 0; i < count; i++ {
		line, ok := nextNonEmptyLine(scanner)
		if !ok {
			return nil, cuproof.ErrSerializationError
		}
		v, err := DecodeHex(strings.TrimSpace(line))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func nextNonEmptyLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, true
	}
	return "", false
}

func readNonEmptyLines(r io.Reader, count int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, ok := nextNonEmptyLine(scanner)
		if !ok {
			return nil, cuproof.ErrSerializationError
		}
		out = append(out, line)
	}
	return out, nil
}
