// Command cuproof is the command-line boundary of SPEC_FULL.md §6: it
// dispatches the setup, prove, and verify subcommands to the engine
// packages and translates engine errors to a single-line diagnostic on
// stderr plus a non-zero exit code, per SPEC_FULL.md §7.
//
// Grounded on original_source/src/main.rs's command dispatch shape
// (manual args[N] matching on a fixed subcommand set) rather than a CLI
// framework: no example in the corpus that pulls a CLI library is close
// enough in shape to this three-verb tool to justify the dependency, and
// the teacher itself ships no CLI binary to imitate either. See
// DESIGN.md.
package main

import (
	"fmt"
	"os"

	"github.com/zkrange/cuproof"
	"github.com/zkrange/cuproof/rangeproof"
	"github.com/zkrange/cuproof/serialize"
	"github.com/zkrange/cuproof/setup"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "setup":
		err = runSetup(os.Args[2:])
	case "prove":
		err = runProve(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  cuproof setup <fast|trusted> <params-path>")
	fmt.Fprintln(os.Stderr, "  cuproof prove <params-path> <a-hex> <b-hex> <v-hex> <proof-path>")
	fmt.Fprintln(os.Stderr, "  cuproof verify <params-path> <proof-path>")
}

func runSetup(args []string) error {
	if len(args) != 2 {
		usage()
		return cuproof.ErrInvalidParameter
	}
	mode := setup.Mode(args[0])
	if mode != setup.ModeFast && mode != setup.ModeTrusted {
		return cuproof.ErrInvalidParameter
	}

	params, err := setup.Trusted(mode)
	if err != nil {
		return err
	}

	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	return serialize.WriteParams(f, params)
}

func runProve(args []string) error {
	if len(args) != 5 {
		usage()
		return cuproof.ErrInvalidParameter
	}
	paramsPath, aHex, bHex, vHex, proofPath := args[0], args[1], args[2], args[3], args[4]

	pf, err := os.Open(paramsPath)
	if err != nil {
		return err
	}
	defer pf.Close()
	params, err := serialize.ReadParams(pf)
	if err != nil {
		return err
	}

	a, err := serialize.DecodeHex(aHex)
	if err != nil {
		return cuproof.ErrInvalidParameter
	}
	b, err := serialize.DecodeHex(bHex)
	if err != nil {
		return cuproof.ErrInvalidParameter
	}
	v, err := serialize.DecodeHex(vHex)
	if err != nil {
		return cuproof.ErrInvalidParameter
	}

	r, err := cuproof.RandomBlindingFactor()
	if err != nil {
		return err
	}

	proof, err := rangeproof.Prove(params, v, r, a, b)
	if err != nil {
		return err
	}

	outFile, err := os.Create(proofPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	return serialize.WriteProof(outFile, proof)
}

func runVerify(args []string) error {
	if len(args) != 2 {
		usage()
		return cuproof.ErrInvalidParameter
	}
	paramsPath, proofPath := args[0], args[1]

	pf, err := os.Open(paramsPath)
	if err != nil {
		return err
	}
	defer pf.Close()
	params, err := serialize.ReadParams(pf)
	if err != nil {
		return err
	}

	prf, err := os.Open(proofPath)
	if err != nil {
		return err
	}
	defer prf.Close()
	proof, err := serialize.ReadProof(prf)
	if err != nil {
		return err
	}

	if rangeproof.Verify(params, proof) {
		fmt.Println("VALID")
	} else {
		fmt.Println("INVALID")
	}
	return nil
}
