package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/madara-tools/madara-generator/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		version := displayVersion(buildVersion)

		if versionShort {
			fmt.Fprintln(out, version)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": version,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), version, buildCommit, buildDate)
		return nil
	},
}

// displayVersion normalizes semver build versions ("v1.2.0" → "1.2.0") and
// passes anything else, such as "dev", through unchanged.
func displayVersion(v string) string {
	if v == "" {
		return "dev"
	}
	sv, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return sv.String()
}
