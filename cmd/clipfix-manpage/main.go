package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/clipfix/cmd/clipfix"
	"github.com/arthur-debert/clipfix/internal/version"
)

func main() {
	rootCmd := clipfix.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CLIPFIX",
		Section: "1",
		Source:  "clipfix " + version.Version,
		Manual:  "clipfix manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
