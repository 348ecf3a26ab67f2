package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyxcontainers/supplytrack/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), log.New(io.Discard))
	require.NoError(t, err)
	return s
}

func TestLoad_MissingDocument_ReturnsSeed(t *testing.T) {
	s := newTestStore(t)

	projects := s.Load()
	assert.Len(t, projects, 8)

	// Load alone must not create the document.
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_MalformedDocument_ReturnsSeed(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	projects := s.Load()
	assert.Len(t, projects, 8)
	assert.Equal(t, "Flexpack Pricing Reduction Initiative", projects[0].Name)
}

func TestLoad_InvalidDocument_ReturnsSeed(t *testing.T) {
	s := newTestStore(t)
	// Well-formed JSON that fails validation: duplicate project IDs.
	doc := `[{"id":"p1","name":"A"},{"id":"p1","name":"B"}]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0o644))

	projects := s.Load()
	assert.Len(t, projects, 8)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := Seed()
	in[0].Name = "Renamed Objective"
	in[0].Subtasks[0].Completed = true
	require.NoError(t, s.Save(in))

	out := s.Load()
	require.Len(t, out, len(in))
	assert.Equal(t, "Renamed Objective", out[0].Name)
	assert.True(t, out[0].Subtasks[0].Completed)
	assert.Equal(t, in[0].DueDate, out[0].DueDate)
	assert.Equal(t, in[1].Budget, out[1].Budget)
}

func TestSave_NoTempFileLeftBehind(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(Seed()))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "projects.json", entries[0].Name())
}

func TestReset_RestoresSeed(t *testing.T) {
	s := newTestStore(t)

	modified := Seed()[:2]
	modified[0].Name = "scratch"
	require.NoError(t, s.Save(modified))

	projects, err := s.Reset()
	require.NoError(t, err)
	assert.Len(t, projects, 8)

	reloaded := s.Load()
	assert.Len(t, reloaded, 8)
	assert.Equal(t, "Flexpack Pricing Reduction Initiative", reloaded[0].Name)
}

func TestSeed_Objectives(t *testing.T) {
	byName := map[string]string{}
	for _, p := range Seed() {
		byName[p.Name] = p.Owner
	}

	assert.Equal(t, "Cory Timmons", byName["Flexpack Pricing Reduction Initiative"])
	assert.Equal(t, "Cory Timmons", byName["Bulk Resin and Film Purchasing Program"])
	assert.Equal(t, "Cory Timmons", byName["Dazpak Strategic Partnership Agreement"])
	assert.Equal(t, "Greg Furner", byName["Domestic Backup Supplier Qualification"])
	assert.Equal(t, "Greg Furner", byName["HP Press Changeover Efficiency"])
	assert.Equal(t, "Cory Timmons", byName["Inventory Carrying Cost Reduction"])
	assert.Equal(t, "Greg Furner", byName["Film Waste Reduction Program"])
	assert.Equal(t, "Greg Furner", byName["Supplier Quality Audit Program"])
}

func TestSeed_Invariants(t *testing.T) {
	seen := map[string]bool{}
	for i, p := range Seed() {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.Equal(t, i+1, p.ObjectiveNumber)
		assert.True(t, p.Priority.Valid(), "project %s priority", p.ID)
		assert.True(t, p.Status.Valid(), "project %s status", p.ID)
		assert.NotEmpty(t, p.Subtasks, "project %s has no subtasks", p.ID)
		for _, st := range p.Subtasks {
			assert.False(t, st.DueDate.Before(st.StartDate), "subtask %s due before start", st.ID)
		}
	}
}

func TestSeed_FreshCopies(t *testing.T) {
	a := Seed()
	a[0].Name = "mutated"
	a[0].Subtasks[0].Completed = !a[0].Subtasks[0].Completed

	b := Seed()
	assert.Equal(t, "Flexpack Pricing Reduction Initiative", b[0].Name)
	assert.NotEqual(t, a[0].Subtasks[0].Completed, b[0].Subtasks[0].Completed)
}

func TestSeed_DatesWithinQuarter(t *testing.T) {
	start := domain.NewDate(2026, 1, 1)
	end := domain.NewDate(2026, 3, 31)
	for _, p := range Seed() {
		assert.False(t, p.StartDate.Before(start), "project %s starts before the quarter", p.ID)
		assert.False(t, p.DueDate.After(end), "project %s due after the quarter", p.ID)
	}
}
