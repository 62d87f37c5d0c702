package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/larkit/lar"
)

var extractDir string

func init() {
	rootCmd.AddCommand(newExtractCmd())
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <archive> [names...]",
		Short: "Extract entries to files named after them",
		Long: `The extract command writes each entry to a file named after its stored
name, creating parent directories as needed. Compressed entries are
decompressed. Given names, only those entries are extracted.

Example:
  larctl extract fw.img
  larctl extract fw.img normal/stage2 -C out/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
	cmd.Flags().StringVarP(&extractDir, "directory", "C", "", "Extract into this directory")
	return cmd
}

func runExtract(args []string) error {
	a, err := openArchive(args[0])
	if err != nil {
		return err
	}
	defer a.Close()

	paths, err := a.Extract(lar.NewFilter(args[1:]...), &lar.ExtractOptions{Dir: extractDir})
	for _, p := range paths {
		printVerbose("  %s\n", p)
	}
	return err
}
