package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Console writes outcome messages to out and diagnostic logs to errOut.
type Console struct {
	out    io.Writer
	styles styles
	logger *log.Logger
}

// NewConsole creates a Console. Messages below level are not logged.
func NewConsole(out, errOut io.Writer, level log.Level) *Console {
	return &Console{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
		logger: log.NewWithOptions(errOut, log.Options{
			Level:           level,
			ReportTimestamp: level == log.DebugLevel,
			Prefix:          "madara-generator",
		}),
	}
}

// ParseLevel maps a level name (debug, info, warn, error) to a log level.
// An empty name means warn, which keeps diagnostics out of normal runs.
func ParseLevel(name string) (log.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return log.WarnLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.WarnLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// Success prints msg in green.
func (c *Console) Success(msg string) { c.line(c.styles.success, msg) }

// Warn prints msg in yellow.
func (c *Console) Warn(msg string) { c.line(c.styles.warn, msg) }

// Error prints msg in red.
func (c *Console) Error(msg string) { c.line(c.styles.err, msg) }

// Println prints msg without styling.
func (c *Console) Println(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Field prints an indented "key: value" line with the value highlighted.
func (c *Console) Field(key, value string) {
	fmt.Fprintf(c.out, "  %s %s\n", c.styles.dim.Render(key+":"), c.styles.noun.Render(value))
}

// Debug logs a diagnostic message with key/value pairs.
func (c *Console) Debug(msg string, keyvals ...interface{}) {
	c.logger.Debug(msg, keyvals...)
}

func (c *Console) line(style lipgloss.Style, msg string) {
	fmt.Fprintln(c.out, style.Render(msg))
}
