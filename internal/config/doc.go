// Package config manages the author and repository settings stored at
// ~/.madara-generator.json. It loads, validates, saves and removes the record,
// and runs the first-run setup that collects it interactively.
package config
