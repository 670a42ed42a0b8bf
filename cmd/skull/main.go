package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/TheAceShinigami/skull"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("skull", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		deckFlag = flags.String("deck", "skull,rose,rose,rose", "Comma separated hand to commit (skull or rose)")
		seedFlag = flags.String("seed", "", "Hex seed for a reproducible run (testing only)")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	deck, err := skull.ParseDeck(*deckFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	var rng io.Reader = rand.Reader
	if *seedFlag != "" {
		seed, err := hex.DecodeString(*seedFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Error: --seed: %v\n", err)
			return 2
		}
		rng = skull.NewSeededReader(seed)
	}

	gens := skull.NewGenerators()
	commitments, revelations, err := skull.CommitDeck(gens, deck, rng)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "g: %s\n", hex.EncodeToString(gens.G().Bytes()))
	fmt.Fprintf(stdout, "h: %s\n", hex.EncodeToString(gens.H().Bytes()))
	for i, c := range commitments {
		fmt.Fprintf(stdout, "commitment %d: %s\n", i, c.Hex())
	}
	fmt.Fprintf(stdout, "fingerprint: %s\n", skull.DeckFingerprint(commitments))

	sig, err := skull.SignRevelations(rng, gens, revelations)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "signature: %s\n", hex.EncodeToString(sig.Bytes()))
	fmt.Fprintf(stdout, "fair: %t\n", skull.CheckSchnorrSignature(gens, commitments, sig))

	for i := range commitments {
		proof, err := skull.ProveCard(rng, gens, commitments[i], revelations[i])
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		ok := skull.VerifyCard(gens, commitments[i], revelations[i].Card, proof)
		fmt.Fprintf(stdout, "card %d: %s %t\n", i, revelations[i].Card, ok)
	}
	return 0
}
