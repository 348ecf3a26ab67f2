package domain

// Subtask is a milestone within a Project with its own completion state.
type Subtask struct {
	ID                 string
	Name               string
	Description        string
	CompletionCriteria string
	StartDate          Date
	DueDate            Date
	Owner              string
	Dependencies       string
	SuccessMetric      string
	Completed          bool
	Notes              []Note
}

// IsOverdue reports whether the subtask's due date is strictly before today
// and the subtask is not completed. Subtasks without a due date are never
// overdue.
func (s *Subtask) IsOverdue(today Date) bool {
	return !s.Completed && !s.DueDate.IsZero() && s.DueDate.Before(today)
}

// EffectiveStatus derives a display status from the completion flag and the
// date window. Subtasks carry no stored status of their own.
func (s *Subtask) EffectiveStatus(today Date) Status {
	switch {
	case s.Completed:
		return StatusCompleted
	case s.IsOverdue(today):
		return StatusOverdue
	case !s.StartDate.IsZero() && !today.Before(s.StartDate):
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}
