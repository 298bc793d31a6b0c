package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/netguard/internal/application/usecase"
	"github.com/bnema/netguard/internal/domain/entity"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show active protections and block counters",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

type statusResult struct {
	Posture    entity.SecurityPosture `json:"posture"`
	Adblock    entity.AdblockStats    `json:"adblock"`
	Blocklist  int                    `json:"blocklistDomains"`
	ConfigFile string                 `json:"configFile"`
	Database   string                 `json:"database"`
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	result := statusResult{
		Posture:    usecase.GetSecurityPosture(a.Config.Snapshot()),
		Adblock:    a.AdblockUC.GetStats(a.Ctx()),
		Blocklist:  a.Classifier.Blocklist().Len(),
		ConfigFile: a.Config.GetConfigFile(),
		Database:   a.Config.Get().Database.Path,
	}

	out := cmd.OutOrStdout()
	if statusJSON {
		return writeJSON(out, result)
	}

	fmt.Fprint(out, a.Theme.Posture(result.Posture))
	fmt.Fprint(out, a.Theme.AdblockStats(result.Adblock))
	fmt.Fprintf(out, "  %s %d\n", a.Theme.Subtle.Render("blocklist domains:"), result.Blocklist)
	fmt.Fprintf(out, "  %s %s\n", a.Theme.Subtle.Render("config:"), result.ConfigFile)
	fmt.Fprintf(out, "  %s %s\n", a.Theme.Subtle.Render("database:"), result.Database)
	return nil
}
