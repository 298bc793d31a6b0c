package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adblockJSON bool

var adblockCmd = &cobra.Command{
	Use:   "adblock",
	Short: "Show ad-block counters or switch blocking on and off",
	Long: `Ad and tracker blocking applies to every session.

Examples:
  netguard adblock stats
  netguard adblock off
  netguard adblock on`,
}

var adblockStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show blocked request counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}

		stats := a.AdblockUC.GetStats(a.Ctx())
		if adblockJSON {
			return writeJSON(cmd.OutOrStdout(), stats)
		}
		fmt.Fprint(cmd.OutOrStdout(), a.Theme.AdblockStats(stats))
		return nil
	},
}

var adblockOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable ad and tracker blocking",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return toggleAdblock(cmd, true)
	},
}

var adblockOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable ad and tracker blocking",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return toggleAdblock(cmd, false)
	},
}

func init() {
	adblockStatsCmd.Flags().BoolVar(&adblockJSON, "json", false, "output as JSON")

	adblockCmd.AddCommand(adblockStatsCmd)
	adblockCmd.AddCommand(adblockOnCmd)
	adblockCmd.AddCommand(adblockOffCmd)
	rootCmd.AddCommand(adblockCmd)
}

func toggleAdblock(cmd *cobra.Command, enabled bool) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	now, err := a.AdblockUC.Toggle(a.Ctx(), enabled)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.Theme.Title.Render("Ad blocking"), a.Theme.OnOffBadge(now))
	return nil
}
