package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/larkit/lar"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <archive> [names...]",
		Short: "List the entries of an archive",
		Long: `The list command prints every entry with its size and payload offset,
followed by the bootblock. Given names, only those entries are shown.

Example:
  larctl list fw.img
  larctl list fw.img normal/stage2 bootblock --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	a, err := openArchive(args[0])
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.List(lar.NewFilter(args[1:]...))
	if err != nil {
		return err
	}

	if jsonOut {
		if entries == nil {
			entries = []lar.EntryInfo{}
		}
		return printJSON(entries)
	}

	for _, e := range entries {
		printInfo("  %s\n", e)
	}
	return nil
}
