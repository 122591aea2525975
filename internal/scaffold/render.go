package scaffold

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SourceVersion is the version every newly generated source starts at.
var SourceVersion = semver.MustParse("1.0.0")

// SourceData holds the variables of the source implementation template.
type SourceData struct {
	Name           string
	DomainConst    string // e.g., "MANGAKAKALOT_DOMAIN"
	BaseURL        string // without trailing slash
	Icon           string // base name of the icon file
	Author         string
	GitHubUsername string
	Version        *semver.Version
}

// TestData holds the variables of the test template.
type TestData struct {
	Name       string
	MangaID    string
	SearchTerm string
}

// NewSourceData creates SourceData with derived fields populated.
func NewSourceData(name, baseURL, icon, author, githubUsername string) *SourceData {
	return &SourceData{
		Name:           name,
		DomainConst:    DomainConst(name),
		BaseURL:        NormalizeBaseURL(baseURL),
		Icon:           icon,
		Author:         author,
		GitHubUsername: githubUsername,
		Version:        SourceVersion,
	}
}

// DomainConst returns the name of the base URL constant for a source. Casers
// keep state, so one is made per call.
func DomainConst(name string) string {
	return cases.Upper(language.Und).String(name) + "_DOMAIN"
}

// NormalizeBaseURL strips surrounding whitespace and one trailing slash.
func NormalizeBaseURL(u string) string {
	return strings.TrimSuffix(strings.TrimSpace(u), "/")
}

// RenderSource renders the source implementation file.
func RenderSource(data *SourceData) (string, error) {
	return render(sourceTemplate, data)
}

// RenderTest renders the test file.
func RenderTest(data *TestData) (string, error) {
	return render(testTemplate, data)
}

func render(name string, data interface{}) (string, error) {
	tmplBytes, err := templateFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
