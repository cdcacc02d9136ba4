// Command genhash prints the stored password digest for each argument,
// for seeding users directly in the database.
package main

import (
	"fmt"
	"os"

	"recruitai-backend/pkg/security"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./scripts/genhash.go <password>...")
		os.Exit(2)
	}

	for _, pass := range os.Args[1:] {
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, security.HashPassword(pass))
	}
}
