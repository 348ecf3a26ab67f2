package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyxcontainers/supplytrack/internal/cli/formatter"
	"github.com/calyxcontainers/supplytrack/internal/config"
	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/service"
	"github.com/calyxcontainers/supplytrack/internal/store"
	"github.com/calyxcontainers/supplytrack/internal/teatest"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	st, err := store.Open(t.TempDir(), log.New(io.Discard))
	require.NoError(t, err)

	svcs := service.New(st)
	return &App{
		Projects: svcs.Projects,
		Metrics:  svcs.Metrics,
		Data:     svcs.Data,
		Store:    st,
		Config: &config.Config{
			DataDir:       st.Path(),
			UpcomingLimit: 10,
			Quarter:       config.Quarter{Start: "2026-01-01", End: "2026-03-31"},
		},
		IsInteractive: func() bool { return false },
	}
}

func newTestDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))
	d.DrainInit()
	return d
}

func activeViewID(d *teatest.Driver) ViewID {
	m := d.Model.(appModel)
	return m.activeView().ID()
}

func stackDepth(d *teatest.Driver) int {
	m := d.Model.(appModel)
	return len(m.viewStack)
}

// ── top-level navigation ─────────────────────────────────────────────────────

func TestAppModel_DashboardIsInitialView(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))

	assert.Equal(t, ViewDashboard, activeViewID(d))
	view := d.View()
	assert.Contains(t, view, "supplytrack")
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "objectives")
}

func TestAppModel_QuitKeys(t *testing.T) {
	t.Run("q", func(t *testing.T) {
		d := newTestDriver(t, newTestApp(t))
		d.PressKey('q')
		assert.True(t, d.Quitting)
	})
	t.Run("ctrl+c", func(t *testing.T) {
		d := newTestDriver(t, newTestApp(t))
		d.PressCtrlC()
		assert.True(t, d.Quitting)
	})
}

func TestAppModel_NumberKeysSwitchScreens(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))

	d.PressKey('2')
	assert.Equal(t, ViewTimeline, activeViewID(d))
	assert.Contains(t, d.View(), "Timeline")

	d.PressKey('3')
	assert.Equal(t, ViewProjectList, activeViewID(d))
	assert.Contains(t, d.View(), "Projects")

	d.PressKey('4')
	assert.Equal(t, ViewTracker, activeViewID(d))
	assert.Contains(t, d.View(), "Tracker")

	d.PressKey('1')
	assert.Equal(t, ViewDashboard, activeViewID(d))
}

func TestAppModel_SwitchClearsProjectContext(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))

	d.PressKey('3')
	d.PressEnter() // open first project
	require.Equal(t, ViewProjectDetail, activeViewID(d))
	assert.Contains(t, d.View(), "Obj 1")

	d.PressKey('1')
	m := d.Model.(appModel)
	assert.Empty(t, m.state.ActiveProjectID)
	assert.Equal(t, 1, stackDepth(d))
}

func TestAppModel_ReloadKeyFlashes(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))

	d.PressKey('r')
	assert.Contains(t, d.View(), "Reloaded")
}

// ── project list and detail ──────────────────────────────────────────────────

func TestProjectList_ShowsSeedObjectives(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))
	d.PressKey('3')

	view := d.View()
	assert.Contains(t, view, "Obj 1: Flexpack Pricing")
	assert.Contains(t, view, "Supplier Quality Audit Program")
}

func TestProjectList_EnterOpensDetail(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))
	d.PressKey('3')
	d.PressDown()
	d.PressEnter()

	assert.Equal(t, ViewProjectDetail, activeViewID(d))
	assert.Equal(t, 2, stackDepth(d))
	view := d.View()
	assert.Contains(t, view, "Bulk Resin and Film Purchasing Program")
	assert.Contains(t, view, "Cory Timmons")
}

func TestProjectDetail_EscReturnsToList(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))
	d.PressKey('3')
	d.PressEnter()
	require.Equal(t, ViewProjectDetail, activeViewID(d))

	d.PressEsc()
	assert.Equal(t, ViewProjectList, activeViewID(d))
	assert.Equal(t, 1, stackDepth(d))
}

func TestProjectDetail_ToggleSubtaskPersists(t *testing.T) {
	app := newTestApp(t)
	d := newTestDriver(t, app)
	d.PressKey('3')
	d.PressEnter() // Obj 1
	d.PressTab()   // subtasks tab

	// Seed marks the first subtask of Obj 1 as completed; toggling
	// flips it back to open.
	d.PressKey('t')

	p, err := app.Projects.GetByID(context.Background(), "obj-01")
	require.NoError(t, err)
	st := p.FindSubtask("obj-01-st-1")
	require.NotNil(t, st)
	assert.False(t, st.Completed)
	assert.Equal(t, 0, p.CompletionPercent())
}

func TestProjectDetail_EditOpensWizard(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))
	d.PressKey('3')
	d.PressEnter()

	d.PressKey('e')
	assert.Equal(t, ViewForm, activeViewID(d))
	assert.Equal(t, 3, stackDepth(d))

	// Esc cancels the wizard and returns to the detail view.
	d.PressEsc()
	assert.Equal(t, ViewProjectDetail, activeViewID(d))
	assert.Contains(t, d.View(), "Cancelled")
}

// ── tracker ──────────────────────────────────────────────────────────────────

func TestTracker_ListsSubtasksGroupedByObjective(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))
	d.PressKey('4')

	view := d.View()
	assert.Contains(t, view, "Obj 1")
	assert.Contains(t, view, "Baseline current flexpack cost per unit")
}

func TestTracker_ToggleAndOpenFilter(t *testing.T) {
	app := newTestApp(t)
	d := newTestDriver(t, app)
	d.PressKey('4')

	// First row is Obj 1's first subtask, completed in the seed data.
	d.PressKey('t')
	p, err := app.Projects.GetByID(context.Background(), "obj-01")
	require.NoError(t, err)
	st := p.FindSubtask("obj-01-st-1")
	require.NotNil(t, st)
	assert.False(t, st.Completed)

	// The open-only filter should not error out and keeps rendering.
	d.PressKey('o')
	assert.NotEmpty(t, d.View())
}

// ── timeline ─────────────────────────────────────────────────────────────────

func TestTimeline_RendersQuarterBars(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))
	d.PressKey('2')

	view := d.View()
	assert.Contains(t, view, "Obj 1: Flexpack Pricing")
	assert.Contains(t, view, "━")
}

func TestTimeline_FilterCycles(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))
	d.PressKey('2')

	// The cycle covers statuses, priorities, and the two seed owners.
	seenOwnerFilter := false
	for i := 0; i < 12; i++ {
		d.PressKey('f')
		view := d.View()
		assert.NotEmpty(t, view)
		if strings.Contains(view, "owner: Greg Furner") {
			seenOwnerFilter = true
			assert.NotContains(t, view, "Obj 1: Flexpack Pricing")
			assert.Contains(t, view, "Backup Supplier")
		}
	}
	assert.True(t, seenOwnerFilter)
}

func TestGanttCells_BarSpanAndTodayMarker(t *testing.T) {
	qStart := domain.NewDate(2026, time.January, 1)
	qEnd := domain.NewDate(2026, time.March, 31)
	today := domain.NewDate(2026, time.February, 15)

	cells := ganttCells(
		domain.NewDate(2026, time.January, 1),
		domain.NewDate(2026, time.March, 31),
		qStart, qEnd, today, "━", formatter.StyleBlue)
	require.Len(t, cells, ganttWidth)

	row := strings.Join(cells, "")
	assert.Contains(t, row, "━")
	assert.Contains(t, row, "┃")
	assert.NotContains(t, row, "·")

	// An undated item stretches across the whole window.
	cells = ganttCells(domain.Date{}, domain.Date{}, qStart, qEnd, today, "─", formatter.StyleGray)
	assert.NotContains(t, strings.Join(cells, ""), "·")
}

func TestTimeline_SubtaskRowsToggle(t *testing.T) {
	d := newTestDriver(t, newTestApp(t))
	d.PressKey('2')

	assert.NotContains(t, d.View(), "└")
	d.PressKey('s')
	assert.Contains(t, d.View(), "└ Baseline current flexpack")
	d.PressKey('s')
	assert.NotContains(t, d.View(), "└")
}

// ── external change handling ─────────────────────────────────────────────────

func TestAppModel_DocumentChangedReloads(t *testing.T) {
	app := newTestApp(t)
	d := newTestDriver(t, app)

	d.Send(documentChangedMsg{})
	assert.Contains(t, d.View(), "Reloaded")
}
