package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/netguard/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		info := buildInfo
		if info.Version == "" {
			info.Version = "dev"
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "netguard %s\n", info.Version)
		if info.Commit != "" {
			fmt.Fprintf(out, "  commit: %s\n", info.Commit)
		}
		if info.BuildDate != "" {
			fmt.Fprintf(out, "  built:  %s\n", info.BuildDate)
		}
		if info.GoVersion != "" {
			fmt.Fprintf(out, "  go:     %s\n", info.GoVersion)
		}
		fmt.Fprintf(out, "  %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
