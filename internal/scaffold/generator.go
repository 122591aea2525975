package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/madara-tools/madara-generator/internal/branding"
	"github.com/madara-tools/madara-generator/internal/config"
	"github.com/madara-tools/madara-generator/internal/output"
	"github.com/madara-tools/madara-generator/internal/platform"
	"github.com/madara-tools/madara-generator/internal/prompt"
)

var (
	// ErrEmptyName is returned when the source name is blank.
	ErrEmptyName = errors.New("source name is empty")

	// ErrIconNotFound is returned when the icon path does not exist.
	ErrIconNotFound = errors.New("icon file not found")
)

// Questions asked for every generated source, in order.
const (
	QuestionName       = "Enter the name of the source: "
	QuestionBaseURL    = "Enter the base URL: "
	QuestionIcon       = "Enter the location of the icon file: "
	QuestionMangaID    = "Enter the manga ID used for testing: "
	QuestionSearchTerm = "Enter the search term used for testing: "
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Request holds the per-run answers for one source.
type Request struct {
	Name       string
	BaseURL    string
	IconPath   string
	MangaID    string
	SearchTerm string
}

// Layout is where the files of one source live inside a repository.
type Layout struct {
	SourceDir   string // <repo>/src/<name>
	IncludesDir string // <repo>/src/<name>/includes
	SourceFile  string // <repo>/src/<name>/<name>.ts
	TestFile    string // <repo>/src/tests/<name>.test.ts
}

// NewLayout computes the output paths for source name under repoPath. The
// name is used as given, so path separators in it create nested directories.
func NewLayout(repoPath, name string) (*Layout, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	ext := branding.SourceExt()
	src := filepath.Join(repoPath, "src")
	dir := filepath.Join(src, name)
	return &Layout{
		SourceDir:   dir,
		IncludesDir: filepath.Join(dir, "includes"),
		SourceFile:  filepath.Join(dir, name+"."+ext),
		TestFile:    filepath.Join(src, "tests", name+".test."+ext),
	}, nil
}

// Result lists what a run wrote.
type Result struct {
	Layout *Layout
	Icon   string   // path of the copied icon
	Files  []string // generated files, in write order
}

// Generator collects a Request and writes the scaffold for it.
type Generator struct {
	prompter prompt.Prompter
	console  *output.Console
}

// NewGenerator creates a Generator.
func NewGenerator(p prompt.Prompter, console *output.Console) *Generator {
	return &Generator{prompter: p, console: console}
}

// Run asks for the source details and writes the scaffold under
// rec.RepoPath. Steps run in order and the first failure is returned; files
// written by earlier steps are left in place.
func (g *Generator) Run(rec *config.Record) (*Result, error) {
	var req Request
	var err error

	if req.Name, err = prompt.Required(g.prompter, QuestionName); err != nil {
		return nil, err
	}
	if req.BaseURL, err = g.prompter.Ask(QuestionBaseURL); err != nil {
		return nil, err
	}
	req.BaseURL = NormalizeBaseURL(req.BaseURL)
	if req.IconPath, err = prompt.Required(g.prompter, QuestionIcon); err != nil {
		return nil, err
	}

	layout, err := NewLayout(rec.RepoPath, req.Name)
	if err != nil {
		return nil, err
	}
	result := &Result{Layout: layout}

	if _, err := platform.EnsureDir(layout.IncludesDir, dirPerm); err != nil {
		return nil, fmt.Errorf("unable to make folder %s: %w", layout.IncludesDir, err)
	}
	g.console.Debug("created folder", "path", layout.IncludesDir)

	icon, err := copyIcon(req.IconPath, layout.IncludesDir)
	if err != nil {
		return nil, err
	}
	result.Icon = icon
	g.console.Success("Copied icon file.")

	data := NewSourceData(req.Name, req.BaseURL, filepath.Base(req.IconPath), rec.Author, rec.GitHubUsername)
	if err := writeRendered(layout.SourceFile, func() (string, error) { return RenderSource(data) }); err != nil {
		return nil, fmt.Errorf("unable to write source file: %w", err)
	}
	result.Files = append(result.Files, layout.SourceFile)
	g.console.Success("Wrote source file.")

	if req.MangaID, err = g.prompter.Ask(QuestionMangaID); err != nil {
		return nil, err
	}
	if req.SearchTerm, err = g.prompter.Ask(QuestionSearchTerm); err != nil {
		return nil, err
	}

	td := &TestData{
		Name:       req.Name,
		MangaID:    strings.TrimSpace(req.MangaID),
		SearchTerm: strings.TrimSpace(req.SearchTerm),
	}
	if err := writeRendered(layout.TestFile, func() (string, error) { return RenderTest(td) }); err != nil {
		return nil, fmt.Errorf("unable to write test file: %w", err)
	}
	result.Files = append(result.Files, layout.TestFile)
	g.console.Success("Wrote test file.")

	return result, nil
}

// copyIcon copies iconPath into dir under its base name.
func copyIcon(iconPath, dir string) (string, error) {
	dst := filepath.Join(dir, filepath.Base(iconPath))
	if err := platform.CopyFile(iconPath, dst); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("unable to copy icon file: %w: %s", ErrIconNotFound, iconPath)
		}
		return "", fmt.Errorf("unable to copy icon file %s: %w", iconPath, err)
	}
	return dst, nil
}

// writeRendered renders content and replaces path with it. The parent
// directory must already exist.
func writeRendered(path string, render func() (string, error)) error {
	content, err := render()
	if err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
