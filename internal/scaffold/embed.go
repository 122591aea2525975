package scaffold

import "embed"

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names inside templateFS.
const (
	sourceTemplate = "templates/source.ts.tmpl"
	testTemplate   = "templates/test.ts.tmpl"
)
