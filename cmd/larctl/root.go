package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/larkit/compress"
	"github.com/joshuapare/larkit/lar"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	syncWrites  bool
	compression string
)

var rootCmd = &cobra.Command{
	Use:   "larctl",
	Short: "Create and inspect LAR firmware archives",
	Long: `larctl packs named files, optionally compressed, into a fixed-size LAR
archive with a reserved bootblock at its tail, and lists or extracts them
again. Archives are edited in place through a memory mapping.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&syncWrites, "sync", false, "Flush the archive to disk before exiting")
	rootCmd.PersistentFlags().StringVarP(&compression, "compression", "c", lar.DefaultAlgorithm.String(),
		"Compression algorithm for added files (none, lzma, zstd, lz4, s2)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger builds the slog logger handed to the archive. Debug records are
// only shown with --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// archiveOptions returns the handle options shared by every command.
func archiveOptions() lar.Options {
	return lar.Options{
		Registry: compress.Default(),
		Logger:   newLogger(),
	}
}

// openArchive opens path with the shared options.
func openArchive(path string) (*lar.Archive, error) {
	opts := archiveOptions()
	a, err := lar.Open(path, &opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return a, nil
}

// closeArchive syncs when requested and closes a, keeping the first error.
func closeArchive(a *lar.Archive, err error) error {
	if syncWrites && err == nil {
		err = a.Sync()
	}
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
