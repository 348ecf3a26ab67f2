package domain

import (
	"fmt"
	"time"
)

// Project is a top-level tracked objective. The whole collection lives in a
// single JSON document; fields are validated and defaulted at construction
// time by the importer, so consumers can rely on non-nil slices and valid
// enum values.
type Project struct {
	ID              string
	ObjectiveNumber int
	Name            string
	Description     string
	Priority        Priority
	Status          Status
	Owner           string
	TeamMembers     []string
	StartDate       Date
	DueDate         Date
	EstimatedHours  float64
	ActualHours     float64
	Budget          float64
	BudgetSpent     float64
	CompletionPct   int
	Category        string
	Tags            []string
	Subtasks        []Subtask
	Notes           []Note
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Label returns the display label used across lists and charts,
// e.g. "Obj 3: Dazpak Partnership Agreement".
func (p *Project) Label() string {
	return fmt.Sprintf("Obj %d: %s", p.ObjectiveNumber, p.Name)
}

// SubtaskProgress returns how many subtasks are completed out of the total.
func (p *Project) SubtaskProgress() (done, total int) {
	total = len(p.Subtasks)
	for i := range p.Subtasks {
		if p.Subtasks[i].Completed {
			done++
		}
	}
	return done, total
}

// CompletionPercent returns the project's completion percentage.
// When subtasks exist it is derived from them; the stored value is
// authoritative only for projects without subtasks.
func (p *Project) CompletionPercent() int {
	done, total := p.SubtaskProgress()
	if total > 0 {
		return done * 100 / total
	}
	pct := p.CompletionPct
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// RecomputeCompletion refreshes the stored percentage from subtasks.
// A no-op for projects without subtasks, whose stored value stands alone.
func (p *Project) RecomputeCompletion() {
	if _, total := p.SubtaskProgress(); total > 0 {
		p.CompletionPct = p.CompletionPercent()
	}
}

// IsOverdue reports whether the due date is strictly before today and the
// project is not completed.
func (p *Project) IsOverdue(today Date) bool {
	return p.Status != StatusCompleted && !p.DueDate.IsZero() && p.DueDate.Before(today)
}

// EffectiveStatus is the stored status, promoted to StatusOverdue when the
// project is past due and not completed.
func (p *Project) EffectiveStatus(today Date) Status {
	if p.IsOverdue(today) {
		return StatusOverdue
	}
	if p.Status == "" {
		return StatusNotStarted
	}
	return p.Status
}

// DaysUntilDue returns the whole days until the due date (negative when
// past due). The second return is false when no due date is set.
func (p *Project) DaysUntilDue(today Date) (int, bool) {
	if p.DueDate.IsZero() {
		return 0, false
	}
	return today.DaysUntil(p.DueDate), true
}

// BudgetOverrun returns how far spend exceeds budget, zero when within it.
// Overspend is a tracked overage, not an error.
func (p *Project) BudgetOverrun() float64 {
	if p.BudgetSpent > p.Budget {
		return p.BudgetSpent - p.Budget
	}
	return 0
}

// FindSubtask returns the subtask with the given ID, or nil.
func (p *Project) FindSubtask(id string) *Subtask {
	for i := range p.Subtasks {
		if p.Subtasks[i].ID == id {
			return &p.Subtasks[i]
		}
	}
	return nil
}

// Touch bumps UpdatedAt. Called by the service layer on every mutation.
func (p *Project) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy. The service layer hands clones across the
// API boundary so callers can edit freely before committing an update.
func (p *Project) Clone() *Project {
	cp := *p
	cp.TeamMembers = append([]string(nil), p.TeamMembers...)
	cp.Tags = append([]string(nil), p.Tags...)
	cp.Notes = append([]Note(nil), p.Notes...)
	cp.Subtasks = make([]Subtask, len(p.Subtasks))
	for i := range p.Subtasks {
		cp.Subtasks[i] = p.Subtasks[i]
		cp.Subtasks[i].Notes = append([]Note(nil), p.Subtasks[i].Notes...)
	}
	return &cp
}
