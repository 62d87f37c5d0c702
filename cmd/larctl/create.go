package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/larkit/lar"
)

var createBootblock string

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <archive> <size> [files...]",
		Short: "Create a new, erased archive of a fixed size",
		Long: `The create command allocates a new archive of exactly <size> bytes,
fills it with 0xFF and writes the bootblock at its tail. Any files given
are added afterwards, as with the add command.

Example:
  larctl create fw.img 1m
  larctl create fw.img 1048576 --bootblock bootblock.bin stage1.bin`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
	cmd.Flags().StringVarP(&createBootblock, "bootblock", "b", "",
		"File to place in the bootblock (must be exactly 16384 bytes)")
	return cmd
}

func runCreate(args []string) error {
	archivePath := args[0]
	size, err := parseSize(args[1])
	if err != nil {
		return err
	}
	addOpts, err := addOptions()
	if err != nil {
		return err
	}

	printVerbose("Creating archive: %s (%d bytes)\n", archivePath, size)

	a, err := lar.Create(archivePath, size, &lar.CreateOptions{
		Options:       archiveOptions(),
		BootblockFile: createBootblock,
	})
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	err = addAll(a, args[2:], addOpts)
	if err := closeArchive(a, err); err != nil {
		return err
	}

	printInfo("Created %s (%d bytes)\n", archivePath, size)
	return nil
}
