package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/madara-tools/madara-generator/internal/output"
	"github.com/madara-tools/madara-generator/internal/prompt"
)

// ErrRestartRequired is returned after the record file was deleted, either on
// request or because it could not be read. The user has already been told to
// run the program again.
var ErrRestartRequired = errors.New("restart required")

// Questions asked during first-run setup.
const (
	QuestionAuthor   = "What should the author of the Source be: "
	QuestionRepoPath = "What is the path of the repository where the content will be saved? Note: This should be the parent of the directory of where the 'Madara.ts' file is: "
	QuestionEdit     = "Type 'edit' to change config, or proceed: "
)

// QuestionUsername returns the username question, which names the fallback.
func QuestionUsername(author string) string {
	return fmt.Sprintf("What should be the name of the user or repo to credit the Source? If empty, the author (%s) will be assumed to be the repo author: ", author)
}

// Manager produces the record for the current run.
type Manager struct {
	store    *Store
	prompter prompt.Prompter
	console  *output.Console
}

// NewManager creates a Manager.
func NewManager(store *Store, p prompt.Prompter, console *output.Console) *Manager {
	return &Manager{store: store, prompter: p, console: console}
}

// LoadOrCreate returns the persisted record, collecting and saving a new one
// when none exists. It returns ErrRestartRequired when the record was deleted.
func (m *Manager) LoadOrCreate() (*Record, error) {
	exists, err := m.store.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return m.create()
	}
	return m.open()
}

func (m *Manager) create() (*Record, error) {
	m.console.Println("Config file not found, starting first-time setup.")

	author, err := prompt.Required(m.prompter, QuestionAuthor)
	if err != nil {
		return nil, err
	}
	username, err := prompt.WithDefault(m.prompter, QuestionUsername(author), author)
	if err != nil {
		return nil, err
	}
	repoPath, err := prompt.Required(m.prompter, QuestionRepoPath)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		Author:         author,
		GitHubUsername: username,
		RepoPath:       repoPath,
	}

	m.console.Warn("Writing new config file.")
	if err := m.store.Save(rec); err != nil {
		m.console.Error("Error while writing config: " + err.Error())
		m.console.Error("Your config data has not been saved, and you will need to enter it on the next execution of this program.")
		return rec, nil
	}
	m.console.Debug("saved config", "path", m.store.Path())
	return rec, nil
}

func (m *Manager) open() (*Record, error) {
	rec, err := m.store.Load()
	if err != nil {
		m.console.Error("Error while reading config: " + err.Error())
		if rmErr := m.store.Remove(); rmErr != nil {
			return nil, m.manualRemoval(rmErr)
		}
		m.console.Error("The config file has been deleted, please restart the program to re-create it.")
		return nil, fmt.Errorf("%w: %w", ErrRestartRequired, err)
	}

	m.console.Success("Read config. These are the values read:")
	Display(m.console, rec)

	option, err := m.prompter.Ask(QuestionEdit)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(option), "edit") {
		return rec, nil
	}

	if err := m.store.Remove(); err != nil {
		return nil, m.manualRemoval(err)
	}
	m.console.Success("Config file deleted. Please restart the program.")
	return nil, ErrRestartRequired
}

func (m *Manager) manualRemoval(err error) error {
	return fmt.Errorf("unable to delete the config file, please delete it yourself manually; the config file is located at %s: %w", m.store.Path(), err)
}

// Display prints the record fields.
func Display(console *output.Console, rec *Record) {
	console.Field("author", rec.Author)
	console.Field("github_username", rec.GitHubUsername)
	console.Field("repo_path", rec.RepoPath)
}
