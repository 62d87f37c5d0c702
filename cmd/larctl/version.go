package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/larkit/compress"
)

// Set with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type versionInfo struct {
	Version    string   `json:"version"`
	Commit     string   `json:"commit"`
	Built      string   `json:"built"`
	Algorithms []string `json:"algorithms"`
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information and the supported compression algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func runVersion() error {
	info := currentVersion()
	if jsonOut {
		return printJSON(info)
	}
	fmt.Printf("larctl %s\n", info.Version)
	fmt.Printf("  commit: %s\n", info.Commit)
	fmt.Printf("  built: %s\n", info.Built)
	fmt.Printf("  algorithms: %s\n", strings.Join(info.Algorithms, ", "))
	return nil
}

// currentVersion falls back to the module version recorded by
// `go install` when no version was linked in.
func currentVersion() versionInfo {
	info := versionInfo{Version: version, Commit: commit, Built: date}
	if info.Version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	for _, a := range compress.Default().Algorithms() {
		info.Algorithms = append(info.Algorithms, a.String())
	}
	return info
}
