package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/store"
	"github.com/calyxcontainers/supplytrack/internal/testutil"
)

func newTestServices(t *testing.T, projects ...*domain.Project) (*Services, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir(), log.New(io.Discard))
	require.NoError(t, err)
	if projects != nil {
		require.NoError(t, st.Save(projects))
	}
	return New(st), st
}

func TestNew_StartsFromSeedWhenEmpty(t *testing.T) {
	svcs, _ := newTestServices(t)
	assert.Len(t, svcs.Projects.List(context.Background()), 8)
}

func TestList_SortedByObjectiveNumber(t *testing.T) {
	a := testutil.NewTestProject("third")
	b := testutil.NewTestProject("first")
	a.ObjectiveNumber, b.ObjectiveNumber = 3, 1
	svcs, _ := newTestServices(t, a, b)

	got := svcs.Projects.List(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "third", got[1].Name)
}

func TestGetByID_ReturnsIsolatedCopy(t *testing.T) {
	p := testutil.NewTestProject("original",
		testutil.WithSubtasks(testutil.NewTestSubtask("step")))
	svcs, _ := newTestServices(t, p)
	ctx := context.Background()

	got, err := svcs.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	got.Name = "scribbled"
	got.Subtasks[0].Completed = true

	again, err := svcs.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Name)
	assert.False(t, again.Subtasks[0].Completed)
}

func TestGetByID_NotFound(t *testing.T) {
	svcs, _ := newTestServices(t)
	_, err := svcs.Projects.GetByID(context.Background(), "nope")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "project", nf.Kind)
}

func TestUpdate_RecomputesCompletionAndPersists(t *testing.T) {
	p := testutil.NewTestProject("tracked",
		testutil.WithSubtasks(
			testutil.NewTestSubtask("a", testutil.Completed()),
			testutil.NewTestSubtask("b"),
		))
	svcs, st := newTestServices(t, p)
	ctx := context.Background()

	edit, err := svcs.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	edit.Owner = "Greg Furner"
	edit.CompletionPct = 99 // stale; recomputed from subtasks on update
	require.NoError(t, svcs.Projects.Update(ctx, edit))

	// A fresh service stack over the same document sees the change.
	reloaded := New(st).Projects
	got, err := reloaded.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Greg Furner", got.Owner)
	assert.Equal(t, 50, got.CompletionPct)
}

func TestUpdate_RejectsInvalid(t *testing.T) {
	p := testutil.NewTestProject("tracked")
	svcs, _ := newTestServices(t, p)
	ctx := context.Background()

	edit, err := svcs.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)

	edit.Name = "  "
	assert.Error(t, svcs.Projects.Update(ctx, edit))

	edit.Name = "ok"
	edit.Status = "Shipped"
	assert.Error(t, svcs.Projects.Update(ctx, edit))

	edit.Status = domain.StatusInProgress
	edit.StartDate = domain.NewDate(2026, time.March, 1)
	edit.DueDate = domain.NewDate(2026, time.February, 1)
	assert.Error(t, svcs.Projects.Update(ctx, edit))
}

func TestToggleSubtask_PersistsAndRecomputes(t *testing.T) {
	p := testutil.NewTestProject("tracked",
		testutil.WithSubtasks(
			testutil.NewTestSubtask("a"),
			testutil.NewTestSubtask("b"),
		))
	stID := p.Subtasks[0].ID
	svcs, st := newTestServices(t, p)
	ctx := context.Background()

	got, err := svcs.Projects.ToggleSubtask(ctx, p.ID, stID)
	require.NoError(t, err)
	assert.True(t, got.Subtasks[0].Completed)
	assert.Equal(t, 50, got.CompletionPct)

	// Toggle back.
	got, err = svcs.Projects.ToggleSubtask(ctx, p.ID, stID)
	require.NoError(t, err)
	assert.False(t, got.Subtasks[0].Completed)
	assert.Equal(t, 0, got.CompletionPct)

	reloaded, err := New(st).Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Subtasks[0].Completed)
}

func TestToggleSubtask_UnknownSubtask(t *testing.T) {
	p := testutil.NewTestProject("tracked")
	svcs, _ := newTestServices(t, p)

	_, err := svcs.Projects.ToggleSubtask(context.Background(), p.ID, "missing")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "subtask", nf.Kind)
}

func TestAddSubtask(t *testing.T) {
	p := testutil.NewTestProject("tracked")
	svcs, _ := newTestServices(t, p)
	ctx := context.Background()

	require.NoError(t, svcs.Projects.AddSubtask(ctx, p.ID, domain.Subtask{Name: "new step"}))

	got, err := svcs.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Subtasks, 1)
	assert.Equal(t, "new step", got.Subtasks[0].Name)
	assert.NotEmpty(t, got.Subtasks[0].ID)

	assert.Error(t, svcs.Projects.AddSubtask(ctx, p.ID, domain.Subtask{Name: ""}))
}

func TestUpdateSubtask(t *testing.T) {
	p := testutil.NewTestProject("tracked",
		testutil.WithSubtasks(testutil.NewTestSubtask("step")))
	st := p.Subtasks[0]
	svcs, _ := newTestServices(t, p)
	ctx := context.Background()

	st.Name = "renamed step"
	st.Owner = "Cory Timmons"
	require.NoError(t, svcs.Projects.UpdateSubtask(ctx, p.ID, st))

	got, err := svcs.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed step", got.Subtasks[0].Name)
	assert.Equal(t, "Cory Timmons", got.Subtasks[0].Owner)
}

func TestNotes(t *testing.T) {
	p := testutil.NewTestProject("tracked",
		testutil.WithSubtasks(testutil.NewTestSubtask("step")))
	svcs, _ := newTestServices(t, p)
	ctx := context.Background()

	require.NoError(t, svcs.Projects.AddProjectNote(ctx, p.ID, "vendor call went well"))
	require.NoError(t, svcs.Projects.AddSubtaskNote(ctx, p.ID, p.Subtasks[0].ID, "samples in transit"))
	assert.Error(t, svcs.Projects.AddProjectNote(ctx, p.ID, "   "))

	got, err := svcs.Projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "vendor call went well", got.Notes[0].Text)
	assert.False(t, got.Notes[0].Timestamp.IsZero())
	require.Len(t, got.Subtasks[0].Notes, 1)
}

func TestImportFrom_ReplacesState(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	doc := `[{"id":"p-new","objective_number":1,"name":"Imported Objective","priority":"High","status":"In Progress"}]`
	n, err := svcs.Data.ImportFrom(ctx, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got := svcs.Projects.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Imported Objective", got[0].Name)
}

func TestImportFrom_MalformedLeavesStateUntouched(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	before := svcs.Projects.List(ctx)
	_, err := svcs.Data.ImportFrom(ctx, strings.NewReader(`[{"id":"x"`))
	require.Error(t, err)
	assert.Equal(t, before, svcs.Projects.List(ctx))

	// Valid JSON, invalid content: duplicate IDs.
	_, err = svcs.Data.ImportFrom(ctx, strings.NewReader(`[{"id":"a","name":"A"},{"id":"a","name":"B"}]`))
	require.Error(t, err)
	assert.Len(t, svcs.Projects.List(ctx), 8)
}

func TestImportFrom_ReadError(t *testing.T) {
	svcs, _ := newTestServices(t)
	_, err := svcs.Data.ImportFrom(context.Background(), errReader{})
	assert.Error(t, err)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestExportImport_RoundTrip(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, svcs.Data.ExportTo(ctx, &buf))

	other, _ := newTestServices(t, testutil.NewTestProject("placeholder"))
	n, err := other.Data.ImportFrom(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, svcs.Projects.List(ctx), other.Projects.List(ctx))
}

func TestReset(t *testing.T) {
	svcs, _ := newTestServices(t, testutil.NewTestProject("scratch"))
	ctx := context.Background()

	require.NoError(t, svcs.Data.Reset(ctx))
	got := svcs.Projects.List(ctx)
	assert.Len(t, got, 8)
	assert.Equal(t, "Flexpack Pricing Reduction Initiative", got[0].Name)
}

func TestReload_PicksUpExternalEdit(t *testing.T) {
	p := testutil.NewTestProject("before")
	svcs, st := newTestServices(t, p)
	ctx := context.Background()

	// Out-of-band rewrite of the backing document.
	edited := p.Clone()
	edited.Name = "after"
	require.NoError(t, st.Save([]*domain.Project{edited}))

	require.NoError(t, svcs.Data.Reload(ctx))
	got := svcs.Projects.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "after", got[0].Name)
}

func TestMetricsService_UsesCurrentState(t *testing.T) {
	p := testutil.NewTestProject("tracked",
		testutil.WithSubtasks(
			testutil.NewTestSubtask("a"),
			testutil.NewTestSubtask("b"),
		))
	svcs, _ := newTestServices(t, p)
	ctx := context.Background()

	assert.Equal(t, 0, svcs.Metrics.Summary(ctx).SubtasksDone)

	_, err := svcs.Projects.ToggleSubtask(ctx, p.ID, p.Subtasks[0].ID)
	require.NoError(t, err)
	sum := svcs.Metrics.Summary(ctx)
	assert.Equal(t, 1, sum.SubtasksDone)
	assert.Equal(t, 50, sum.AvgCompletion)
}
