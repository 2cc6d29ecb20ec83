package main

import (
	"fmt"
	"strings"

	"github.com/complex-gh/universalseed"
)

func main() {
	seed, err := universalseed.GenerateWords(24)
	if err != nil {
		panic(err)
	}

	words := universalseed.Words(seed, "en")
	display := make([]string, len(words))
	for i, w := range words {
		display[i] = w.Word
	}
	fmt.Printf("Generated seed phrase:\n%s\n\n", strings.Join(display, " "))
	fmt.Printf("Checksum valid: %v\n", universalseed.VerifyChecksum(seed))

	roundTripped, err := universalseed.NewSeedFromWords(display)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Round-tripped through words: %v\n\n", roundTripped.Indexes())

	master, err := universalseed.DeriveMasterKey(seed, "")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Master key: %x\n", master)

	fingerprint, err := universalseed.Fingerprint(seed, "")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Fingerprint: %s\n\n", fingerprint)

	profile := universalseed.DeriveProfile(master, "hidden-account")
	fmt.Printf("Profile key for password %q: %x\n\n", "hidden-account", profile)

	bits := universalseed.EntropyBits(seed, "")
	fmt.Printf("Estimated security level: %.0f bits\n", bits)
}
