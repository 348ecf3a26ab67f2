// Package store owns the single JSON document that backs the tracker.
// The whole collection is read into memory and rewritten wholesale on every
// mutation; there is no partial write and no record-level access.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/importer"
	"github.com/charmbracelet/log"
)

const fileName = "projects.json"

type Store struct {
	path   string
	logger *log.Logger
}

// Open prepares the data directory and returns a store for the backing
// document inside it. The document itself is not touched until Load or Save.
func Open(dataDir string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{
		path:   filepath.Join(dataDir, fileName),
		logger: logger,
	}, nil
}

// Path returns the location of the backing document.
func (s *Store) Path() string { return s.path }

// Load reads the backing document. It fails soft: a missing, unreadable, or
// invalid document falls back to the built-in seed with a single log line,
// so the tracker is always usable. Callers never see an error.
func (s *Store) Load() []*domain.Project {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("no backing document, starting from seed data", "path", s.path)
		return Seed()
	}
	if err != nil {
		s.logger.Warn("backing document unreadable, falling back to seed data", "path", s.path, "err", err)
		return Seed()
	}

	projects, err := importer.Decode(data)
	if err != nil {
		s.logger.Warn("backing document invalid, falling back to seed data", "path", s.path, "err", err)
		return Seed()
	}
	return projects
}

// Save rewrites the backing document. The bytes go to a temp file in the
// same directory, are fsynced, and then renamed over the target so readers
// never observe a partial write.
func (s *Store) Save(projects []*domain.Project) error {
	data, err := importer.Encode(projects)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".projects-*.json")
	if err != nil {
		return fmt.Errorf("creating temp document: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp document: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting document mode: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing document: %w", err)
	}
	return nil
}

// Reset restores the built-in seed dataset and persists it.
func (s *Store) Reset() ([]*domain.Project, error) {
	seed := Seed()
	if err := s.Save(seed); err != nil {
		return nil, err
	}
	return seed, nil
}
