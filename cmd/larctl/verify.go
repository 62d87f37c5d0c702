package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/larkit/lar"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <archive> [names...]",
		Short: "Check entry checksums and decode every payload",
		Long: `The verify command recomputes the checksum of each entry, decompresses
its payload and prints a sha256 digest of the content.

Example:
  larctl verify fw.img
  larctl verify fw.img stage1.bin --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

func runVerify(args []string) error {
	a, err := openArchive(args[0])
	if err != nil {
		return err
	}
	defer a.Close()

	results, err := a.Verify(lar.NewFilter(args[1:]...))
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}

	if jsonOut {
		if results == nil {
			results = []lar.VerifyResult{}
		}
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			status := "ok"
			switch {
			case r.Err != nil:
				status = "FAILED: " + r.Err.Error()
			case !r.ChecksumOK:
				status = fmt.Sprintf("FAILED: checksum 0x%08x, computed 0x%08x", r.Checksum, r.ComputedChecksum)
			}
			printInfo("  %-32s %s %s\n", r.Name, status, r.Digest)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d entries failed verification", failed, len(results))
	}
	return nil
}
