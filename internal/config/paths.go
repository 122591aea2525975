package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/madara-tools/madara-generator/internal/branding"
	"github.com/spf13/viper"
)

// Environment keys, read with the MADARA_GENERATOR_ prefix.
const (
	envConfigPath = "config"
	envLogLevel   = "log_level"
)

// Settings are process-level options read from the environment.
type Settings struct {
	// ConfigPath is where the record is stored.
	ConfigPath string
	// LogLevel is the diagnostic log level name; empty means the default.
	LogLevel string
}

// DefaultPath returns ~/.madara-generator.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.ConfigFile()), nil
}

// LoadSettings reads settings from the environment. MADARA_GENERATOR_CONFIG
// overrides the record location.
func LoadSettings() (*Settings, error) {
	v := viper.New()
	for _, key := range []string{envConfigPath, envLogLevel} {
		if err := v.BindEnv(key, branding.EnvVar(key)); err != nil {
			return nil, fmt.Errorf("binding %s: %w", branding.EnvVar(key), err)
		}
	}

	s := &Settings{
		ConfigPath: v.GetString(envConfigPath),
		LogLevel:   v.GetString(envLogLevel),
	}
	if s.ConfigPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		s.ConfigPath = p
	}
	return s, nil
}
