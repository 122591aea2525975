package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is returned when a record is missing a field, has a blank
// field or does not match the record schema.
var ErrInvalidRecord = errors.New("invalid config record")

// Record is the persisted identity and location of the target repository.
type Record struct {
	Author         string `json:"author" mapstructure:"author"`
	GitHubUsername string `json:"github_username" mapstructure:"github_username"`
	RepoPath       string `json:"repo_path" mapstructure:"repo_path"`
}

// Validate checks that every field is set.
func (r *Record) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Author) == "" {
		missing = append(missing, "author")
	}
	if strings.TrimSpace(r.GitHubUsername) == "" {
		missing = append(missing, "github_username")
	}
	if strings.TrimSpace(r.RepoPath) == "" {
		missing = append(missing, "repo_path")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidRecord, strings.Join(missing, ", "))
	}
	return nil
}
