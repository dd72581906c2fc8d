// Command hash-generator prints bcrypt hashes for the passwords given as
// arguments, for seeding owner rows by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/Jatin020403/quiz-api/internal/domain"
	"github.com/Jatin020403/quiz-api/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password...")
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher(*cost)
	failed := false
	for _, password := range flag.Args() {
		if err := domain.ValidatePlaintextPassword(password); err != nil {
			fmt.Fprintf(os.Stderr, "skipping password: %v\n", err)
			failed = true
			continue
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error generating hash: %v\n", err)
			failed = true
			continue
		}
		fmt.Println(hash)
	}
	if failed {
		os.Exit(1)
	}
}
