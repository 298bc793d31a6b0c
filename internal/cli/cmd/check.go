package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bnema/netguard/internal/domain/classifier"
	"github.com/bnema/netguard/internal/domain/entity"
)

var (
	checkPartition    string
	checkTopLevel     string
	checkResourceType string
	checkDownload     string
	checkJSON         bool
)

var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Show how a request would be decided",
	Long: `Run a URL through the request pipeline without loading it.

The decision uses the current settings of the given partition. Nothing is
counted or persisted.

Examples:
  netguard check http://example.com/
  netguard check https://doubleclick.net/ad.js --type script
  netguard check https://cdn.example/pixel --top-level https://news.example/ --partition incognito
  netguard check https://files.example/setup --download setup.exe`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

type checkResult struct {
	URL         string              `json:"url"`
	Partition   string              `json:"partition"`
	Incognito   bool                `json:"incognito"`
	Action      entity.Action       `json:"action"`
	Stage       entity.Stage        `json:"stage"`
	RedirectURL string              `json:"redirectUrl,omitempty"`
	Reason      string              `json:"reason,omitempty"`
	Headers     http.Header         `json:"headers,omitempty"`
	Download    *downloadCheckValue `json:"download,omitempty"`
}

type downloadCheckValue struct {
	Filename  string `json:"filename"`
	Extension string `json:"extension,omitempty"`
	Dangerous bool   `json:"dangerous"`
}

func init() {
	checkCmd.Flags().StringVarP(&checkPartition, "partition", "p", "", "session partition (default: proxy.partition)")
	checkCmd.Flags().StringVar(&checkTopLevel, "top-level", "", "URL of the document issuing the request")
	checkCmd.Flags().StringVarP(&checkResourceType, "type", "t", string(entity.ResourceMainFrame),
		"resource type (mainFrame, subFrame, script, image, xhr, other)")
	checkCmd.Flags().StringVar(&checkDownload, "download", "", "also screen a download with this filename")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	partition := checkPartition
	if partition == "" {
		partition = a.Config.Get().Proxy.Partition
	}
	if err := entity.ValidatePartition(partition); err != nil {
		return fmt.Errorf("partition %q: %w", partition, err)
	}

	req := &entity.Request{
		URL:          args[0],
		Method:       http.MethodGet,
		ResourceType: entity.ResourceType(checkResourceType),
		TopLevelURL:  checkTopLevel,
		Headers:      http.Header{},
	}
	cfg := a.Sessions.ConfigFor(partition)
	verdict := a.Interceptor.Decide(req, cfg)

	result := checkResult{
		URL:         args[0],
		Partition:   partition,
		Incognito:   cfg.IsIncognito(),
		Action:      verdict.Action,
		Stage:       verdict.Stage,
		RedirectURL: verdict.RedirectURL,
		Reason:      verdict.Reason,
		Headers:     verdict.Headers,
	}
	if checkDownload != "" {
		ext, dangerous := classifier.IsDangerousDownload(checkDownload)
		result.Download = &downloadCheckValue{Filename: checkDownload, Extension: ext, Dangerous: dangerous}
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		return writeJSON(out, result)
	}

	fmt.Fprint(out, a.Theme.Verdict(args[0], verdict))
	if d := result.Download; d != nil {
		if d.Dangerous {
			fmt.Fprintln(out, a.Theme.WarningStyle.Render("dangerous download: "+d.Filename))
		} else {
			fmt.Fprintln(out, a.Theme.Subtle.Render("download looks harmless: "+d.Filename))
		}
	}
	return nil
}
