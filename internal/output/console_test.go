package output

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(level log.Level) (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewConsole(&out, &errOut, level), &out, &errOut
}

func TestConsole_OutcomeMessages(t *testing.T) {
	c, out, _ := newTestConsole(log.InfoLevel)

	c.Success("Wrote source file.")
	c.Warn("Writing new config file.")
	c.Error("Unable to copy icon file, exiting.")

	assert.Equal(t,
		"Wrote source file.\nWriting new config file.\nUnable to copy icon file, exiting.\n",
		out.String(),
		"non-terminal writers should receive plain text")
}

func TestConsole_Field(t *testing.T) {
	c, out, _ := newTestConsole(log.InfoLevel)

	c.Field("author", "Alice")

	assert.Equal(t, "  author: Alice\n", out.String())
}

func TestConsole_DebugRespectsLevel(t *testing.T) {
	c, _, errOut := newTestConsole(log.WarnLevel)
	c.Debug("hidden", "path", "/tmp")
	assert.Empty(t, errOut.String(), "debug output should be suppressed at warn level")

	c, _, errOut = newTestConsole(log.DebugLevel)
	c.Debug("visible", "path", "/tmp")
	assert.Contains(t, errOut.String(), "visible")
	assert.Contains(t, errOut.String(), "/tmp")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, level, "empty name should default to warn")

	level, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
