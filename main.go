package main

import (
	"fmt"
	"os"

	"githubauth/cmd/githubauth"
)

func main() {
	if err := githubauth.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
