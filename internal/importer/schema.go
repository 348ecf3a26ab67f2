// Package importer parses, validates, and converts the JSON project
// document. Load, import, and export all pass through here so the storage
// format has exactly one definition.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"

	_ "embed"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed projects.schema.json
var schemaJSON string

// docSchema is the structural contract for the backing document.
// Semantic rules (unique IDs, enum values, date formats) are layered on top
// by ValidateDocument.
var docSchema = jsonschema.MustCompileString("projects.schema.json", schemaJSON)

// Document is the top-level shape of the backing file: an ordered array of
// project records.
type Document []ProjectRecord

// ProjectRecord is the wire form of a project. All dates are strings;
// conversion to domain types happens in convert.go.
type ProjectRecord struct {
	ID              string          `json:"id"`
	ObjectiveNumber int             `json:"objective_number"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Priority        string          `json:"priority,omitempty"`
	Status          string          `json:"status,omitempty"`
	Owner           string          `json:"owner,omitempty"`
	TeamMembers     []string        `json:"team_members,omitempty"`
	StartDate       string          `json:"start_date,omitempty"`
	DueDate         string          `json:"due_date,omitempty"`
	EstimatedHours  float64         `json:"estimated_hours,omitempty"`
	ActualHours     float64         `json:"actual_hours,omitempty"`
	Budget          float64         `json:"budget,omitempty"`
	BudgetSpent     float64         `json:"budget_spent,omitempty"`
	CompletionPct   *int            `json:"completion_percentage,omitempty"`
	Category        string          `json:"category,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	Subtasks        []SubtaskRecord `json:"subtasks"`
	Notes           []NoteRecord    `json:"notes,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
}

// SubtaskRecord is the wire form of a subtask.
type SubtaskRecord struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Description        string       `json:"description,omitempty"`
	CompletionCriteria string       `json:"completion_criteria,omitempty"`
	StartDate          string       `json:"start_date,omitempty"`
	DueDate            string       `json:"due_date,omitempty"`
	Owner              string       `json:"owner,omitempty"`
	Dependencies       string       `json:"dependencies,omitempty"`
	SuccessMetric      string       `json:"success_metric,omitempty"`
	Completed          bool         `json:"completed"`
	Notes              []NoteRecord `json:"notes,omitempty"`
}

// NoteRecord is the wire form of a note.
type NoteRecord struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ParseDocument unmarshals and structurally validates a document.
// The JSON Schema pass catches shape errors (wrong types, missing required
// fields) with readable paths before the stricter semantic validation runs.
func ParseDocument(data []byte) (Document, error) {
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if err := docSchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("document schema: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

// MarshalDocument serializes a document with 2-space indentation and a
// trailing newline, the exact form written by every exporter of this file.
func MarshalDocument(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	return buf.Bytes(), nil
}
