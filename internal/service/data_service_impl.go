package service

import (
	"context"
	"fmt"
	"io"

	"github.com/calyxcontainers/supplytrack/internal/importer"
	"github.com/calyxcontainers/supplytrack/internal/store"
)

type dataService struct {
	state *state
}

func (s *dataService) ImportFrom(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("reading import: %w", err)
	}
	projects, err := importer.Decode(data)
	if err != nil {
		return 0, err
	}
	if err := s.state.replace(projects); err != nil {
		return 0, err
	}
	return len(projects), nil
}

func (s *dataService) ExportTo(ctx context.Context, w io.Writer) error {
	data, err := importer.Encode(s.state.snapshot())
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

func (s *dataService) Reset(ctx context.Context) error {
	return s.state.replace(store.Seed())
}

func (s *dataService) Reload(ctx context.Context) error {
	projects := s.state.store.Load()
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	sortProjects(projects)
	s.state.projects = projects
	return nil
}
