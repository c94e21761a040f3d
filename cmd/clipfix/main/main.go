package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/clipfix/cmd/clipfix"
	"github.com/arthur-debert/clipfix/pkg/ui/terminal"
)

func main() {
	rootCmd := clipfix.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, terminal.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
