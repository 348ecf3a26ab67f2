package importer

import (
	"fmt"

	"github.com/calyxcontainers/supplytrack/internal/domain"
)

// ValidateDocument checks the semantic rules the JSON Schema cannot express.
// Returns a slice of all validation errors found so the user sees every
// problem in one pass.
func ValidateDocument(doc Document) []error {
	var errs []error

	projectIDs := make(map[string]bool)
	for i := range doc {
		p := &doc[i]
		prefix := fmt.Sprintf("projects[%d]", i)

		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if projectIDs[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, p.ID))
		} else {
			projectIDs[p.ID] = true
		}

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Priority != "" && !domain.Priority(p.Priority).Valid() {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, p.Priority))
		}
		if p.Status != "" && !domain.Status(p.Status).Valid() {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
		}
		if p.CompletionPct != nil && (*p.CompletionPct < 0 || *p.CompletionPct > 100) {
			errs = append(errs, fmt.Errorf("%s.completion_percentage: %d out of range 0-100", prefix, *p.CompletionPct))
		}
		if p.EstimatedHours < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_hours must not be negative", prefix))
		}
		if p.Budget < 0 {
			errs = append(errs, fmt.Errorf("%s.budget must not be negative", prefix))
		}
		if p.BudgetSpent < 0 {
			errs = append(errs, fmt.Errorf("%s.budget_spent must not be negative", prefix))
		}

		errs = append(errs, validateOptionalDate(prefix+".start_date", p.StartDate)...)
		errs = append(errs, validateOptionalDate(prefix+".due_date", p.DueDate)...)

		subtaskIDs := make(map[string]bool)
		for j := range p.Subtasks {
			s := &p.Subtasks[j]
			sp := fmt.Sprintf("%s.subtasks[%d]", prefix, j)

			if s.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", sp))
			} else if subtaskIDs[s.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", sp, s.ID))
			} else {
				subtaskIDs[s.ID] = true
			}

			if s.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", sp))
			}

			errs = append(errs, validateOptionalDate(sp+".start_date", s.StartDate)...)
			errs = append(errs, validateOptionalDate(sp+".due_date", s.DueDate)...)
		}
	}

	return errs
}

func validateOptionalDate(field, dateStr string) []error {
	if dateStr == "" {
		return nil
	}
	if _, err := domain.ParseDate(dateStr); err != nil {
		return []error{fmt.Errorf("%s: %w", field, err)}
	}
	return nil
}
