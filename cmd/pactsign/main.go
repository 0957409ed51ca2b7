package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pactsign/pactsign/pkg/pactsign"
)

func main() {
	var (
		curveName    = flag.String("curve", "secp256r1", "Named curve (secp224r1, secp256r1, secp256k1, secp384r1, secp521r1)")
		message      = flag.String("message", "approve", "Contract message to sign")
		generate     = flag.Bool("generate", false, "Only generate two key pairs on the curve and print them")
		contractFile = flag.String("contract", "", "Path to a contract document to load and execute")
		format       = flag.String("format", "json", "Contract document format (json or yaml)")
		verbose      = flag.Bool("verbose", false, "Enable diagnostic logging")
	)
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *contractFile != "" {
		executeDocument(*contractFile, *format)
		return
	}

	curve, ok := pactsign.CurveByName(*curveName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown curve %q\n", *curveName)
		os.Exit(1)
	}

	if *generate {
		generateOnly(curve)
		return
	}

	runDemo(curve, *message, log)
}

// generateOnly prints two fresh key pairs and their fingerprint.
func generateOnly(curve pactsign.Curve) {
	pair1, err := pactsign.GenerateKeyPair(curve)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pair2, err := pactsign.GenerateKeyPair(curve)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Curve: %s\n\n", curve)
	fmt.Printf("Party 1 private key: %s\n", pair1.Private)
	fmt.Printf("Party 1 public key:  %s\n\n", pair1.Public)
	fmt.Printf("Party 2 private key: %s\n", pair2.Private)
	fmt.Printf("Party 2 public key:  %s\n\n", pair2.Public)
	fmt.Printf("Key fingerprint: %s\n", pactsign.Fingerprint(pair1.Private, pair2.Private))
}

// executeDocument loads a contract document and evaluates it.
func executeDocument(path, format string) {
	var parser pactsign.ContractParser
	switch format {
	case "json":
		parser = &pactsign.JSONParser{}
	case "yaml":
		parser = &pactsign.YAMLParser{}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want json or yaml)\n", format)
		os.Exit(1)
	}

	doc, err := parser.ParseContract(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	contract, err := doc.Contract()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded contract over %s (state: %s)\n", contract.Curve(), contract.State())
	fmt.Printf("Verdict: %s\n", contract.ExecuteIfConditionsMet())
	if contract.State() != pactsign.StateExecutedSuccess {
		os.Exit(1)
	}
}

// runDemo walks the full dual-signature flow on freshly generated keys.
func runDemo(curve pactsign.Curve, message string, log *logrus.Logger) {
	fmt.Printf("Generating two key pairs on %s...\n", curve)
	pair1, err := pactsign.GenerateKeyPair(curve)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pair2, err := pactsign.GenerateKeyPair(curve)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fingerprint := pactsign.Fingerprint(pair1.Private, pair2.Private)
	fmt.Printf("Key fingerprint at formation: %s\n", fingerprint)

	checker := pactsign.NewChecker(pactsign.NewIdentifier(pactsign.DefaultRegistry())).WithLogger(log)
	agreed, ok := checker.PublicKeysAgree(pair1.Public, pair2.Public)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: parties' keys are not on the same curve")
		os.Exit(1)
	}
	fmt.Printf("Both parties agree on %s\n", agreed)

	contract := pactsign.NewContract(message, pair1.Public, pair2.Public, agreed)

	sig1, err := pactsign.Sign(message, pair1.Private, agreed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sig2, err := pactsign.Sign(message, pair2.Private, agreed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := contract.Sign(pactsign.PartyFirst, sig1); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := contract.Sign(pactsign.PartySecond, sig2); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Both parties signed %q (state: %s)\n", message, contract.State())

	if pactsign.Fingerprint(pair1.Private, pair2.Private) != fingerprint {
		fmt.Fprintln(os.Stderr, "Error: key material changed since formation")
		os.Exit(1)
	}

	fmt.Printf("Verdict: %s\n", contract.ExecuteIfConditionsMet())
	if contract.State() != pactsign.StateExecutedSuccess {
		os.Exit(1)
	}
}
