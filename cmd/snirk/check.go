package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/snirk-lang/protosnirk-sub001/internal/diagfmt"
	"github.com/snirk-lang/protosnirk-sub001/internal/driver"
	"github.com/snirk-lang/protosnirk-sub001/internal/project"
	"github.com/snirk-lang/protosnirk-sub001/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path]",
	Short: "Check snirk source files",
	Long:  `Check parses and resolves a file or every source file under a directory and reports all diagnostics`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runCheckDir(cmd, target)
	}
	return runCheckFile(cmd, target)
}

func runCheckFile(cmd *cobra.Command, filePath string) error {
	manifest, _, err := project.Discover(".")
	if err != nil {
		return err
	}
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		manifest.Check.MaxDiagnostics = maxDiagnostics(cmd)
	}

	result, err := driver.Check(filePath, manifest)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.DefaultPrettyOpts(useColor(cmd, os.Stderr))
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	if !result.Clean() {
		return fmt.Errorf("%s: %d error(s)", filePath, len(result.Bag.Errors()))
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(os.Stdout, "%s: ok\n", filePath)
	}
	return nil
}

func runCheckDir(cmd *cobra.Command, dir string) error {
	manifest, _, err := project.Discover(dir)
	if err != nil {
		return err
	}
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		manifest.Check.MaxDiagnostics = maxDiagnostics(cmd)
	}

	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no source files under %s", dir)
	}

	var cache *driver.DiskCache
	noCache, _ := cmd.Flags().GetBool("no-cache")
	if manifest.Check.Cache && !noCache {
		cache, err = driver.OpenDiskCache("snirk")
		if err != nil {
			// Кэш опционален, работаем без него.
			cache = nil
		}
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showProgress := !quiet && isTerminal(os.Stdout)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		events    chan driver.Event
		summaries []driver.FileSummary
		checkErr  error
	)

	if showProgress {
		events = make(chan driver.Event, len(files)*2)
		done := make(chan struct{})
		go func() {
			defer close(done)
			summaries, checkErr = driver.CheckDir(ctx, files, manifest, cache, events)
			close(events)
		}()
		model := ui.NewProgressModel("checking "+dir, files, events)
		if _, uiErr := tea.NewProgram(model).Run(); uiErr != nil {
			// Прогресс не критичен: дожидаемся результатов и продолжаем.
			for range events {
			}
		}
		<-done
	} else {
		summaries, checkErr = driver.CheckDir(ctx, files, manifest, nil, nil)
	}
	if checkErr != nil {
		return checkErr
	}

	colored := useColor(cmd, os.Stderr)
	failed := 0
	cached := 0
	for i := range summaries {
		s := &summaries[i]
		if s.LoadErr != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", s.Path, s.LoadErr)
			continue
		}
		if s.Cached {
			cached++
		}
		if s.Bag != nil && s.Bag.Len() > 0 {
			opts := diagfmt.DefaultPrettyOpts(colored)
			diagfmt.Pretty(os.Stderr, s.Bag, s.FileSet, opts)
		}
		if !s.Clean() {
			failed++
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "checked %d file(s), %d from cache, %d failed\n",
			len(summaries), cached, failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) with errors", failed)
	}
	return nil
}
