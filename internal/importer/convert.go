package importer

import (
	"errors"
	"time"

	"github.com/calyxcontainers/supplytrack/internal/domain"
)

// Decode is the single path from raw bytes to domain objects: parse,
// structural validation, semantic validation, conversion. Both load() and
// import use it, so a document that loads will always import and vice versa.
func Decode(data []byte) ([]*domain.Project, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	if errs := ValidateDocument(doc); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return ToDomain(doc), nil
}

// Encode serializes domain projects back to document bytes.
func Encode(projects []*domain.Project) ([]byte, error) {
	return MarshalDocument(FromDomain(projects))
}

// ToDomain converts a validated document into domain projects, applying
// defaults for missing fields: status Not Started, priority Medium, non-nil
// slices. Validation guarantees dates and enums parse, so conversion cannot
// fail.
func ToDomain(doc Document) []*domain.Project {
	projects := make([]*domain.Project, 0, len(doc))
	for i := range doc {
		projects = append(projects, projectToDomain(&doc[i]))
	}
	return projects
}

func projectToDomain(r *ProjectRecord) *domain.Project {
	p := &domain.Project{
		ID:              r.ID,
		ObjectiveNumber: r.ObjectiveNumber,
		Name:            r.Name,
		Description:     r.Description,
		Priority:        domain.Priority(r.Priority),
		Status:          domain.Status(r.Status),
		Owner:           r.Owner,
		TeamMembers:     cloneStrings(r.TeamMembers),
		StartDate:       parseDateStrict(r.StartDate),
		DueDate:         parseDateStrict(r.DueDate),
		EstimatedHours:  r.EstimatedHours,
		ActualHours:     r.ActualHours,
		Budget:          r.Budget,
		BudgetSpent:     r.BudgetSpent,
		Category:        r.Category,
		Tags:            cloneStrings(r.Tags),
		Subtasks:        make([]domain.Subtask, 0, len(r.Subtasks)),
		Notes:           notesToDomain(r.Notes),
		CreatedAt:       parseTimestamp(r.CreatedAt),
		UpdatedAt:       parseTimestamp(r.UpdatedAt),
	}

	if p.Priority == "" {
		p.Priority = domain.PriorityMedium
	}
	if p.Status == "" {
		p.Status = domain.StatusNotStarted
	}
	if r.CompletionPct != nil {
		p.CompletionPct = *r.CompletionPct
	}

	for j := range r.Subtasks {
		s := &r.Subtasks[j]
		p.Subtasks = append(p.Subtasks, domain.Subtask{
			ID:                 s.ID,
			Name:               s.Name,
			Description:        s.Description,
			CompletionCriteria: s.CompletionCriteria,
			StartDate:          parseDateStrict(s.StartDate),
			DueDate:            parseDateStrict(s.DueDate),
			Owner:              s.Owner,
			Dependencies:       s.Dependencies,
			SuccessMetric:      s.SuccessMetric,
			Completed:          s.Completed,
			Notes:              notesToDomain(s.Notes),
		})
	}

	return p
}

// FromDomain converts domain projects to the wire document.
func FromDomain(projects []*domain.Project) Document {
	doc := make(Document, 0, len(projects))
	for _, p := range projects {
		pct := p.CompletionPct
		r := ProjectRecord{
			ID:              p.ID,
			ObjectiveNumber: p.ObjectiveNumber,
			Name:            p.Name,
			Description:     p.Description,
			Priority:        string(p.Priority),
			Status:          string(p.Status),
			Owner:           p.Owner,
			TeamMembers:     cloneStrings(p.TeamMembers),
			StartDate:       p.StartDate.String(),
			DueDate:         p.DueDate.String(),
			EstimatedHours:  p.EstimatedHours,
			ActualHours:     p.ActualHours,
			Budget:          p.Budget,
			BudgetSpent:     p.BudgetSpent,
			CompletionPct:   &pct,
			Category:        p.Category,
			Tags:            cloneStrings(p.Tags),
			Subtasks:        make([]SubtaskRecord, 0, len(p.Subtasks)),
			Notes:           notesFromDomain(p.Notes),
			CreatedAt:       formatTimestamp(p.CreatedAt),
			UpdatedAt:       formatTimestamp(p.UpdatedAt),
		}

		for i := range p.Subtasks {
			s := &p.Subtasks[i]
			r.Subtasks = append(r.Subtasks, SubtaskRecord{
				ID:                 s.ID,
				Name:               s.Name,
				Description:        s.Description,
				CompletionCriteria: s.CompletionCriteria,
				StartDate:          s.StartDate.String(),
				DueDate:            s.DueDate.String(),
				Owner:              s.Owner,
				Dependencies:       s.Dependencies,
				SuccessMetric:      s.SuccessMetric,
				Completed:          s.Completed,
				Notes:              notesFromDomain(s.Notes),
			})
		}

		doc = append(doc, r)
	}
	return doc
}

func notesToDomain(records []NoteRecord) []domain.Note {
	notes := make([]domain.Note, 0, len(records))
	for _, n := range records {
		notes = append(notes, domain.Note{
			Text:      n.Text,
			Timestamp: parseTimestamp(n.Timestamp),
		})
	}
	return notes
}

func notesFromDomain(notes []domain.Note) []NoteRecord {
	if len(notes) == 0 {
		return nil
	}
	records := make([]NoteRecord, 0, len(notes))
	for _, n := range notes {
		records = append(records, NoteRecord{
			Text:      n.Text,
			Timestamp: formatTimestamp(n.Timestamp),
		})
	}
	return records
}

// parseDateStrict is for post-validation conversion where the date is known
// to be empty or well-formed.
func parseDateStrict(s string) domain.Date {
	if s == "" {
		return domain.Date{}
	}
	d, _ := domain.ParseDate(s)
	return d
}

// parseTimestamp accepts RFC 3339 or a bare ISO datetime without zone
// (the form older exports wrote). Unparseable values become zero times
// rather than errors; timestamps are informational.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
