package main

import (
	"fmt"
	"os"

	"github.com/collabverse/site/password"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <password>\n", os.Args[0])
		os.Exit(1)
	}
	pw := os.Args[1]

	if err := password.ValidateStrength(pw); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hash, salt, err := password.Hash(pw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
	fmt.Printf("ADMIN_PASSWORD_SALT=%s\n", salt)
}
