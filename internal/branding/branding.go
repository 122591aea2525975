// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults apply when a key is missing.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	ConfigFile  string `yaml:"config_file"`
	EnvPrefix   string `yaml:"env_prefix"`
	SourceExt   string `yaml:"source_ext"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "madara-generator",
			DisplayName: "Madara Generator",
			Description: "Scaffold new Madara sources",
			ConfigFile:  ".madara-generator.json",
			EnvPrefix:   "MADARA_GENERATOR",
			SourceExt:   "ts",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "madara-generator").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfigFile returns the name of the config dotfile under $HOME.
func ConfigFile() string { load(); return defaults.ConfigFile }

// EnvPrefix returns the environment variable prefix (e.g., "MADARA_GENERATOR").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// SourceExt returns the file extension of generated sources, without the dot.
func SourceExt() string { load(); return defaults.SourceExt }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("config") → "MADARA_GENERATOR_CONFIG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
