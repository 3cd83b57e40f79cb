package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snirk-lang/protosnirk-sub001/internal/diagfmt"
	"github.com/snirk-lang/protosnirk-sub001/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.snk",
	Short: "Parse a snirk source file",
	Long:  `Parse builds the syntax tree for a snirk source file and reports syntax diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	result, err := driver.Parse(filePath, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.DefaultPrettyOpts(useColor(cmd, os.Stderr))
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", filePath, len(result.Bag.Errors()))
	}

	if !quiet {
		items := 0
		if file := result.Builder.Files.Get(result.FileID); file != nil {
			items = len(file.Items)
		}
		fmt.Fprintf(os.Stdout, "%s: ok, %d item(s)\n", filePath, items)
	}
	return nil
}
