// Package output renders user-facing console messages and diagnostic logs.
//
// Outcome messages are colored by meaning: green for success, yellow for
// warnings and red for errors. Colors are decided per writer, so messages sent
// to a pipe or a test buffer carry no escape sequences. Diagnostic logs go
// through charmbracelet/log on the error stream and are hidden below the
// configured level.
package output
