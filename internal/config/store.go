package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/madara-tools/madara-generator/internal/platform"
	"github.com/spf13/viper"
)

const (
	fileType = "json"
	filePerm = 0600
	dirPerm  = 0755
)

// Store reads and writes the record at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store for the record at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the record.
func (s *Store) Path() string { return s.path }

// Exists reports whether a record file is present. A path that cannot exist
// because one of its parents is a regular file counts as absent.
func (s *Store) Exists() (bool, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, fmt.Errorf("checking config file %s: %w", s.path, err)
	}
	return true, nil
}

// Load reads, schema-checks and decodes the record. The schema is applied to
// the file as written, so keys must match exactly.
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", s.path, err)
	}

	issues, err := validateDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", s.path, err)
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(msgs, "; "))
	}

	v := viper.New()
	v.SetConfigType(fileType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", s.path, err)
	}

	var rec Record
	if err := v.Unmarshal(&rec); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", s.path, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save replaces the record file with rec.
func (s *Store) Save(rec *Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if _, err := platform.EnsureDir(filepath.Dir(s.path), dirPerm); err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(s.path, data, filePerm); err != nil {
		return fmt.Errorf("writing config file %s: %w", s.path, err)
	}
	return nil
}

// Remove deletes the record file.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("removing config file %s: %w", s.path, err)
	}
	return nil
}
