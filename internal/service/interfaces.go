package service

import (
	"context"
	"io"

	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/metrics"
)

// ProjectService reads and mutates the tracked objectives. Reads return
// deep copies; edits only take effect through the mutation methods, each of
// which persists the whole document before returning.
type ProjectService interface {
	List(ctx context.Context) []*domain.Project
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	ToggleSubtask(ctx context.Context, projectID, subtaskID string) (*domain.Project, error)
	AddSubtask(ctx context.Context, projectID string, st domain.Subtask) error
	UpdateSubtask(ctx context.Context, projectID string, st domain.Subtask) error
	AddProjectNote(ctx context.Context, projectID, text string) error
	AddSubtaskNote(ctx context.Context, projectID, subtaskID, text string) error
}

// MetricsService derives dashboard figures from the current project set.
type MetricsService interface {
	Summary(ctx context.Context) metrics.Summary
	StatusBreakdown(ctx context.Context) ([]domain.Status, map[domain.Status]int)
	PriorityBreakdown(ctx context.Context) ([]domain.Priority, map[domain.Priority]int)
	OwnerWorkload(ctx context.Context) []metrics.Workload
	UpcomingDeadlines(ctx context.Context, limit int) []metrics.Deadline
	MonthlyMilestones(ctx context.Context) []metrics.MonthBucket
	CompletionByProject(ctx context.Context) []float64
}

// DataService moves the whole document across the process boundary.
type DataService interface {
	// ImportFrom replaces the tracked set with the document read from r.
	// On any parse or validation error the current state is untouched.
	ImportFrom(ctx context.Context, r io.Reader) (int, error)
	ExportTo(ctx context.Context, w io.Writer) error
	Reset(ctx context.Context) error
	// Reload re-reads the backing document, picking up external edits.
	Reload(ctx context.Context) error
}
