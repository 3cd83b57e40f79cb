package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snirk-lang/protosnirk-sub001/internal/diagfmt"
	"github.com/snirk-lang/protosnirk-sub001/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.snk",
	Short: "Tokenize a snirk source file",
	Long:  `Tokenize breaks down a snirk source file into its constituent tokens, including the synthetic indentation markers`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	result, err := driver.Tokenize(filePath, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика в stderr, токены в stdout
	if result.Bag.Len() > 0 {
		opts := diagfmt.DefaultPrettyOpts(useColor(cmd, os.Stderr))
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	diagfmt.Tokens(os.Stdout, result.Tokens, result.FileSet)

	if result.Bag.HasErrors() {
		return fmt.Errorf("tokenization produced errors")
	}
	return nil
}
