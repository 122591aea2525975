package cli

import (
	"errors"

	"github.com/madara-tools/madara-generator/internal/branding"
	"github.com/madara-tools/madara-generator/internal/config"
	"github.com/madara-tools/madara-generator/internal/output"
	"github.com/madara-tools/madara-generator/internal/prompt"
	"github.com/madara-tools/madara-generator/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new Madara source in a Paperback extensions repository.

On the first run it asks for the author, the GitHub user or repo to credit and
the repository path, and stores them in ~/.madara-generator.json. Every run then
asks for the source name, base URL, icon file, and the manga ID and search term
used by the generated test.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	console, settings, err := newConsole(cmd)
	if err != nil {
		return err
	}
	console.Debug("using config", "path", settings.ConfigPath)

	p := prompt.NewLine(cmd.InOrStdin(), cmd.OutOrStdout())

	manager := config.NewManager(config.NewStore(settings.ConfigPath), p, console)
	rec, err := manager.LoadOrCreate()
	if err != nil {
		return fail(console, err)
	}

	result, err := scaffold.NewGenerator(p, console).Run(rec)
	if err != nil {
		return fail(console, err)
	}
	console.Debug("generated source", "dir", result.Layout.SourceDir, "files", len(result.Files))

	console.Success("Done!")
	return nil
}

// newConsole reads environment settings and builds the console for cmd.
func newConsole(cmd *cobra.Command) (*output.Console, *config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, &ExitError{Code: ExitFatal, Err: err}
	}
	level, err := output.ParseLevel(settings.LogLevel)
	console := output.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), level)
	if err != nil {
		console.Warn(err.Error())
	}
	return console, settings, nil
}

// fail reports err and converts it to an ExitError. A restart request has
// already been explained to the user.
func fail(console *output.Console, err error) error {
	if errors.Is(err, config.ErrRestartRequired) {
		return &ExitError{Code: ExitRestart, Err: err, Printed: true}
	}
	console.Error("Error: " + err.Error())
	return &ExitError{Code: ExitFatal, Err: err, Printed: true}
}
