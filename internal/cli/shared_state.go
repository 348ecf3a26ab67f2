package cli

import (
	"github.com/calyxcontainers/supplytrack/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Active project context, set when a detail view opens.
	ActiveProjectID    string
	ActiveProjectLabel string

	// Terminal dimensions
	Width  int
	Height int
}

// Today returns the reference day used for overdue and deadline math.
func (s *SharedState) Today() domain.Date {
	return domain.Today()
}

// SetActiveProjectFrom records the project shown in the header breadcrumb.
func (s *SharedState) SetActiveProjectFrom(p *domain.Project) {
	s.ActiveProjectID = p.ID
	s.ActiveProjectLabel = p.Label()
}

// ClearProjectContext resets the active project state.
func (s *SharedState) ClearProjectContext() {
	s.ActiveProjectID = ""
	s.ActiveProjectLabel = ""
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
