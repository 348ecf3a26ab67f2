package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyxcontainers/supplytrack/internal/domain"
)

const minimalDoc = `[
  {
    "id": "p-1",
    "name": "Alpha",
    "subtasks": []
  }
]`

// ── parsing and schema ───────────────────────────────────────────────────────

func TestParseDocument_Minimal(t *testing.T) {
	doc, err := ParseDocument([]byte(minimalDoc))
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, "p-1", doc[0].ID)
	assert.Equal(t, "Alpha", doc[0].Name)
}

func TestParseDocument_MalformedJSON(t *testing.T) {
	_, err := ParseDocument([]byte(`[{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing document")
}

func TestParseDocument_SchemaRejectsNonArray(t *testing.T) {
	_, err := ParseDocument([]byte(`{"id": "p-1"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document schema")
}

func TestParseDocument_SchemaRejectsWrongTypes(t *testing.T) {
	_, err := ParseDocument([]byte(`[{"id": 42, "name": "Alpha", "subtasks": []}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document schema")
}

// ── semantic validation ──────────────────────────────────────────────────────

func TestValidateDocument_CollectsAllErrors(t *testing.T) {
	doc := Document{
		{ID: "", Name: "", Subtasks: []SubtaskRecord{}},
		{ID: "p-2", Name: "Beta", Priority: "Urgent", Status: "Done", Subtasks: []SubtaskRecord{}},
	}
	errs := ValidateDocument(doc)
	require.Len(t, errs, 4)

	joined := make([]string, len(errs))
	for i, e := range errs {
		joined[i] = e.Error()
	}
	all := strings.Join(joined, "\n")
	assert.Contains(t, all, "projects[0].id is required")
	assert.Contains(t, all, "projects[0].name is required")
	assert.Contains(t, all, `projects[1].priority: invalid value "Urgent"`)
	assert.Contains(t, all, `projects[1].status: invalid value "Done"`)
}

func TestValidateDocument_DuplicateIDs(t *testing.T) {
	doc := Document{
		{ID: "p-1", Name: "Alpha", Subtasks: []SubtaskRecord{}},
		{ID: "p-1", Name: "Beta", Subtasks: []SubtaskRecord{}},
	}
	errs := ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `duplicate id "p-1"`)
}

func TestValidateDocument_DuplicateSubtaskIDs(t *testing.T) {
	doc := Document{
		{ID: "p-1", Name: "Alpha", Subtasks: []SubtaskRecord{
			{ID: "st-1", Name: "one"},
			{ID: "st-1", Name: "two"},
		}},
	}
	errs := ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "projects[0].subtasks[1].id")
}

func TestValidateDocument_BadDatesAndRanges(t *testing.T) {
	pct := 140
	doc := Document{
		{
			ID: "p-1", Name: "Alpha", StartDate: "01/06/2026",
			CompletionPct: &pct, Budget: -5,
			Subtasks: []SubtaskRecord{{ID: "st-1", Name: "one", DueDate: "soon"}},
		},
	}
	errs := ValidateDocument(doc)
	require.Len(t, errs, 4)
}

// ── conversion ───────────────────────────────────────────────────────────────

func TestDecode_AppliesDefaults(t *testing.T) {
	projects, err := Decode([]byte(minimalDoc))
	require.NoError(t, err)
	require.Len(t, projects, 1)

	p := projects[0]
	assert.Equal(t, domain.PriorityMedium, p.Priority)
	assert.Equal(t, domain.StatusNotStarted, p.Status)
	assert.NotNil(t, p.Subtasks)
	assert.NotNil(t, p.Notes)
	assert.NotNil(t, p.TeamMembers)
	assert.NotNil(t, p.Tags)
	assert.True(t, p.StartDate.IsZero())
}

func TestDecode_InvalidDocumentFails(t *testing.T) {
	_, err := Decode([]byte(`[{"id": "p-1", "name": "Alpha", "status": "Done", "subtasks": []}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	stamp := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	original := []*domain.Project{
		{
			ID:              "p-1",
			ObjectiveNumber: 1,
			Name:            "Alpha",
			Description:     "first",
			Priority:        domain.PriorityHigh,
			Status:          domain.StatusInProgress,
			Owner:           "Cory Timmons",
			TeamMembers:     []string{"Cory Timmons", "Finance"},
			StartDate:       domain.NewDate(2026, 1, 6),
			DueDate:         domain.NewDate(2026, 3, 31),
			EstimatedHours:  40,
			ActualHours:     8,
			Budget:          25000,
			BudgetSpent:     4200,
			CompletionPct:   50,
			Category:        "Pricing",
			Tags:            []string{"q1-2026"},
			Subtasks: []domain.Subtask{
				{
					ID: "st-1", Name: "one", Owner: "Greg Furner",
					StartDate: domain.NewDate(2026, 1, 6),
					DueDate:   domain.NewDate(2026, 2, 1),
					Completed: true,
					Notes:     []domain.Note{{Text: "done early", Timestamp: stamp}},
				},
				{ID: "st-2", Name: "two", Notes: []domain.Note{}},
			},
			Notes:     []domain.Note{{Text: "kickoff held", Timestamp: stamp}},
			CreatedAt: stamp,
			UpdatedAt: stamp,
		},
	}

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, original[0], decoded[0])
}

func TestEncode_WriteShape(t *testing.T) {
	data, err := Encode([]*domain.Project{{ID: "p-1", ObjectiveNumber: 1, Name: "Alpha",
		Priority: domain.PriorityLow, Status: domain.StatusNotStarted}})
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "[\n"), "document is a top-level array")
	assert.True(t, strings.HasSuffix(s, "\n"), "trailing newline")
	assert.Contains(t, s, `"objective_number": 1`)
	assert.Contains(t, s, `"completion_percentage": 0`)
	assert.NotContains(t, s, `"notes"`)
}

// ── timestamps ───────────────────────────────────────────────────────────────

func TestParseTimestamp_Forms(t *testing.T) {
	assert.Equal(t,
		time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		parseTimestamp("2026-01-05T09:00:00Z"))

	// Older exports wrote ISO datetimes without a zone; treat as UTC.
	assert.Equal(t,
		time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		parseTimestamp("2026-01-05T09:00:00"))

	assert.True(t, parseTimestamp("").IsZero())
	assert.True(t, parseTimestamp("yesterday").IsZero())
}
