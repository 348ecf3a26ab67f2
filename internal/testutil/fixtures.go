package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/calyxcontainers/supplytrack/internal/domain"
)

var objectiveCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithPriority(pr domain.Priority) ProjectOption {
	return func(p *domain.Project) {
		p.Priority = pr
	}
}

func WithStatus(s domain.Status) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithOwner(owner string) ProjectOption {
	return func(p *domain.Project) {
		p.Owner = owner
	}
}

func WithDueDate(d domain.Date) ProjectOption {
	return func(p *domain.Project) {
		p.DueDate = d
	}
}

func WithBudget(budget, spent float64) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = budget
		p.BudgetSpent = spent
	}
}

func WithCompletion(pct int) ProjectOption {
	return func(p *domain.Project) {
		p.CompletionPct = pct
	}
}

func WithSubtasks(subtasks ...domain.Subtask) ProjectOption {
	return func(p *domain.Project) {
		p.Subtasks = append(p.Subtasks, subtasks...)
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	n := int(objectiveCounter.Add(1))
	p := &domain.Project{
		ID:              uuid.New().String(),
		ObjectiveNumber: n,
		Name:            name,
		Priority:        domain.PriorityMedium,
		Status:          domain.StatusInProgress,
		Owner:           "Cory Timmons",
		TeamMembers:     []string{"Cory Timmons"},
		StartDate:       domain.NewDate(2026, time.January, 6),
		DueDate:         domain.NewDate(2026, time.March, 31),
		Budget:          10000,
		Category:        "Purchasing",
		Tags:            []string{},
		Subtasks:        []domain.Subtask{},
		Notes:           []domain.Note{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Subtask options
type SubtaskOption func(*domain.Subtask)

func WithSubtaskOwner(owner string) SubtaskOption {
	return func(s *domain.Subtask) {
		s.Owner = owner
	}
}

func WithSubtaskDue(d domain.Date) SubtaskOption {
	return func(s *domain.Subtask) {
		s.DueDate = d
	}
}

func Completed() SubtaskOption {
	return func(s *domain.Subtask) {
		s.Completed = true
	}
}

func NewTestSubtask(name string, opts ...SubtaskOption) domain.Subtask {
	st := domain.Subtask{
		ID:        fmt.Sprintf("st-%s", uuid.New().String()[:8]),
		Name:      name,
		StartDate: domain.NewDate(2026, time.January, 6),
		DueDate:   domain.NewDate(2026, time.February, 27),
		Owner:     "Greg Furner",
		Notes:     []domain.Note{},
	}
	for _, opt := range opts {
		opt(&st)
	}
	return st
}
