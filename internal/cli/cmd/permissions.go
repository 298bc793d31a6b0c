package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var permissionsJSON bool

var permissionsCmd = &cobra.Command{
	Use:     "permissions",
	Aliases: []string{"perm"},
	Short:   "Manage remembered site permissions",
	Long: `List and edit the allow/deny decisions remembered per site origin.

Permission names: geolocation, notifications, media, clipboard-read,
clipboard-write, display-capture, pointer-lock, fullscreen, persistent-storage.

Examples:
  netguard permissions list
  netguard permissions list https://maps.example
  netguard permissions grant https://maps.example geolocation
  netguard permissions deny https://news.example notifications
  netguard permissions revoke https://maps.example geolocation`,
}

var permissionsListCmd = &cobra.Command{
	Use:   "list [site]",
	Short: "List remembered decisions, optionally for one site",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}

		site := ""
		if len(args) == 1 {
			site = args[0]
		}
		records, err := a.PermissionsUC.List(a.Ctx(), site)
		if err != nil {
			return err
		}

		if permissionsJSON {
			return writeJSON(cmd.OutOrStdout(), records)
		}
		fmt.Fprint(cmd.OutOrStdout(), a.Theme.Permissions(records))
		return nil
	},
}

var permissionsGrantCmd = &cobra.Command{
	Use:   "grant <site> <permission>",
	Short: "Always allow a permission for a site",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPermission(cmd, args[0], args[1], true)
	},
}

var permissionsDenyCmd = &cobra.Command{
	Use:   "deny <site> <permission>",
	Short: "Always deny a permission for a site",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPermission(cmd, args[0], args[1], false)
	},
}

var permissionsRevokeCmd = &cobra.Command{
	Use:   "revoke <site> <permission>",
	Short: "Forget a decision so the site is asked again",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}
		if err := a.PermissionsUC.Revoke(a.Ctx(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render("revoked "+args[1]+" for "+args[0]))
		return nil
	},
}

func init() {
	permissionsListCmd.Flags().BoolVar(&permissionsJSON, "json", false, "output as JSON")

	permissionsCmd.AddCommand(permissionsListCmd)
	permissionsCmd.AddCommand(permissionsGrantCmd)
	permissionsCmd.AddCommand(permissionsDenyCmd)
	permissionsCmd.AddCommand(permissionsRevokeCmd)
	rootCmd.AddCommand(permissionsCmd)
}

func setPermission(cmd *cobra.Command, site, permission string, allowed bool) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	record, err := a.PermissionsUC.Set(a.Ctx(), site, permission, allowed)
	if err != nil {
		return err
	}

	decision := a.Theme.ErrorStyle.Render("denied")
	if record.Allowed {
		decision = a.Theme.SuccessStyle.Render("allowed")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %s\n", record.Kind.DisplayName(), decision, record.Origin)
	return nil
}
