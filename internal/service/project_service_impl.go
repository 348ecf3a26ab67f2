package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/calyxcontainers/supplytrack/internal/domain"
)

type projectService struct {
	state *state
}

func (s *projectService) List(ctx context.Context) []*domain.Project {
	return s.state.snapshot()
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	for _, p := range s.state.projects {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, &NotFoundError{Kind: "project", ID: id}
}

// Update replaces the stored project with the given value. The stored
// completion percentage is recomputed from subtasks, so callers cannot
// smuggle in a stale figure.
func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := validateProject(p); err != nil {
		return err
	}
	incoming := p.Clone()
	return s.state.mutate(p.ID, func(stored *domain.Project) error {
		incoming.ID = stored.ID
		incoming.CreatedAt = stored.CreatedAt
		*stored = *incoming
		return nil
	})
}

func (s *projectService) ToggleSubtask(ctx context.Context, projectID, subtaskID string) (*domain.Project, error) {
	err := s.state.mutate(projectID, func(p *domain.Project) error {
		st := p.FindSubtask(subtaskID)
		if st == nil {
			return &NotFoundError{Kind: "subtask", ID: subtaskID}
		}
		st.Completed = !st.Completed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, projectID)
}

func (s *projectService) AddSubtask(ctx context.Context, projectID string, st domain.Subtask) error {
	if strings.TrimSpace(st.Name) == "" {
		return fmt.Errorf("subtask name is required")
	}
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	if st.Notes == nil {
		st.Notes = []domain.Note{}
	}
	return s.state.mutate(projectID, func(p *domain.Project) error {
		if p.FindSubtask(st.ID) != nil {
			return fmt.Errorf("subtask %q already exists in project %q", st.ID, projectID)
		}
		p.Subtasks = append(p.Subtasks, st)
		return nil
	})
}

func (s *projectService) UpdateSubtask(ctx context.Context, projectID string, st domain.Subtask) error {
	if strings.TrimSpace(st.Name) == "" {
		return fmt.Errorf("subtask name is required")
	}
	return s.state.mutate(projectID, func(p *domain.Project) error {
		stored := p.FindSubtask(st.ID)
		if stored == nil {
			return &NotFoundError{Kind: "subtask", ID: st.ID}
		}
		*stored = st
		return nil
	})
}

func (s *projectService) AddProjectNote(ctx context.Context, projectID, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("note text is required")
	}
	return s.state.mutate(projectID, func(p *domain.Project) error {
		p.Notes = append(p.Notes, domain.NewNote(text))
		return nil
	})
}

func (s *projectService) AddSubtaskNote(ctx context.Context, projectID, subtaskID, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("note text is required")
	}
	return s.state.mutate(projectID, func(p *domain.Project) error {
		st := p.FindSubtask(subtaskID)
		if st == nil {
			return &NotFoundError{Kind: "subtask", ID: subtaskID}
		}
		st.Notes = append(st.Notes, domain.NewNote(text))
		return nil
	})
}

func validateProject(p *domain.Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	if !p.Priority.Valid() {
		return fmt.Errorf("invalid priority %q", p.Priority)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("invalid status %q", p.Status)
	}
	if !p.StartDate.IsZero() && !p.DueDate.IsZero() && p.DueDate.Before(p.StartDate) {
		return fmt.Errorf("due date %s is before start date %s", p.DueDate, p.StartDate)
	}
	return nil
}
