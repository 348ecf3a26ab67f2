package domain

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the stored priority values in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "On Hold"

	// StatusOverdue is a derived display state, never written to the
	// backing document. EffectiveStatus produces it.
	StatusOverdue Status = "Overdue"
)

// Statuses lists the storable status values.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold}

// Valid reports whether s is a storable status. StatusOverdue is not.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}
