// Package cmd provides Cobra CLI commands for netguard.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/netguard/internal/cli"
	"github.com/bnema/netguard/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	verbose   bool
	rootCmd   = &cobra.Command{
		Use:   "netguard",
		Short: "Per-session network request mediation",
		Long: `netguard decides, for every outbound request of a browsing session, whether it
is allowed, redirected to HTTPS or blocked, and remembers what each site may do.

Features:
  - Dangerous protocol and phishing URL rejection
  - HTTPS upgrade and ad/tracker blocking
  - Privacy headers (DNT, Sec-GPC, user agent and client hints)
  - Per-site permission decisions with interactive prompts
  - Persistent and incognito sessions kept apart

Run 'netguard proxy' to mediate a real client through an HTTP proxy, or use
the other subcommands to inspect decisions, permissions and counters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{LogToStderr: verbose || cmd.Name() == "proxy"})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	closeApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func closeApp() {
	if app == nil {
		return
	}
	if err := app.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "shutdown:", err)
	}
	app = nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
