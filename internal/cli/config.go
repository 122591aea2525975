package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/madara-tools/madara-generator/internal/branding"
	"github.com/madara-tools/madara-generator/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or reset the stored author and repository settings",
	Long: fmt.Sprintf("Read or delete the settings stored at ~/%s (or $%s).",
		branding.ConfigFile(), branding.EnvVar("config")),
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), settings.ConfigPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		console, settings, err := newConsole(cmd)
		if err != nil {
			return err
		}
		store := config.NewStore(settings.ConfigPath)
		exists, err := store.Exists()
		if err != nil {
			return fail(console, err)
		}
		if !exists {
			return fail(console, fmt.Errorf("no config file at %s; run %s to create one", settings.ConfigPath, cmd.Root().Name()))
		}
		rec, err := store.Load()
		if err != nil {
			return fail(console, err)
		}
		console.Println(settings.ConfigPath)
		config.Display(console, rec)
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the config file so the next run asks again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		console, settings, err := newConsole(cmd)
		if err != nil {
			return err
		}
		if err := config.NewStore(settings.ConfigPath).Remove(); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				console.Warn("No config file to delete.")
				return nil
			}
			return fail(console, err)
		}
		console.Success("Config file deleted.")
		return nil
	},
}
