package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/larkit/compress"
	"github.com/joshuapare/larkit/lar"
)

func init() {
	rootCmd.AddCommand(newAddCmd())
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <archive> <file[:name]>...",
		Short: "Add files to an existing archive",
		Long: `The add command writes each file into the first free slot of the archive.

A file may be given as source:name to store it under a different name, and
prefixed with nocompress: to store it uncompressed. Compressed output that
is not smaller than the source is stored uncompressed as well.

Example:
  larctl add fw.img stage1.bin
  larctl add fw.img build/stage2.bin:normal/stage2 nocompress:payload.elf
  larctl add -c lzma fw.img initram.bin`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args)
		},
	}
	return cmd
}

func runAdd(args []string) error {
	addOpts, err := addOptions()
	if err != nil {
		return err
	}

	a, err := openArchive(args[0])
	if err != nil {
		return err
	}
	err = addAll(a, args[1:], addOpts)
	return closeArchive(a, err)
}

// addOptions builds AddOptions from the --compression flag.
func addOptions() (*lar.AddOptions, error) {
	algo, err := compress.ParseAlgorithm(compression)
	if err != nil {
		return nil, err
	}
	return &lar.AddOptions{Algorithm: algo, Store: algo == compress.None}, nil
}

func addAll(a *lar.Archive, files []string, opts *lar.AddOptions) error {
	for _, f := range files {
		printVerbose("Adding %s\n", f)
		if err := a.Add(f, opts); err != nil {
			return fmt.Errorf("failed to add %s: %w", f, err)
		}
	}
	return nil
}
