// Package service wraps the in-memory project set behind small interfaces.
// All services share one state value; a single mutex serializes access
// because bubbletea runs commands on their own goroutines.
package service

import (
	"sort"
	"sync"

	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/store"
)

type state struct {
	mu       sync.RWMutex
	store    *store.Store
	projects []*domain.Project

	// today is swappable in tests; defaults to the wall clock.
	today func() domain.Date
}

// Services bundles the three service facets over one shared state.
type Services struct {
	Projects ProjectService
	Metrics  MetricsService
	Data     DataService
}

// New loads the backing document and wires the services around it.
func New(st *store.Store) *Services {
	s := &state{
		store:    st,
		projects: st.Load(),
		today:    domain.Today,
	}
	sortProjects(s.projects)
	return &Services{
		Projects: &projectService{state: s},
		Metrics:  &metricsService{state: s},
		Data:     &dataService{state: s},
	}
}

func sortProjects(projects []*domain.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].ObjectiveNumber < projects[j].ObjectiveNumber
	})
}

// snapshot returns deep copies of the current set, already sorted.
func (s *state) snapshot() []*domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// replace swaps the project set and persists it. The old set is restored
// when the save fails, so memory and disk never diverge.
func (s *state) replace(projects []*domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sortProjects(projects)
	old := s.projects
	s.projects = projects
	if err := s.store.Save(projects); err != nil {
		s.projects = old
		return err
	}
	return nil
}

// mutate applies fn to the project with the given ID under the write lock
// and persists the result. fn runs on the live record.
func (s *state) mutate(projectID string, fn func(*domain.Project) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *domain.Project
	for _, p := range s.projects {
		if p.ID == projectID {
			target = p
			break
		}
	}
	if target == nil {
		return &NotFoundError{Kind: "project", ID: projectID}
	}

	backup := target.Clone()
	if err := fn(target); err != nil {
		return err
	}
	target.RecomputeCompletion()
	target.Touch()

	if err := s.store.Save(s.projects); err != nil {
		*target = *backup
		return err
	}
	return nil
}
