// Package cli defines the Cobra command tree for the madara-generator CLI.
// The root command runs the interactive generator; version and config are
// small helper commands. Commands delegate to internal packages and only
// handle I/O wiring and exit codes.
package cli
