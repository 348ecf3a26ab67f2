package cli

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calyxcontainers/supplytrack/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI. It manages a view
// stack whose bottom entry is one of the four main screens.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient status-bar notice, cleared on the next keypress.
	flashText string

	// Rewrites of the backing document arrive here from the store watcher.
	changes <-chan struct{}
}

func newAppModel(app *App) appModel {
	return newAppModelWithWatch(app, nil)
}

func newAppModelWithWatch(app *App, changes <-chan struct{}) appModel {
	state := &SharedState{App: app}
	return appModel{
		state:     state,
		viewStack: []View{newDashboardView(state)},
		changes:   changes,
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// waitForChange blocks on the watcher channel and surfaces the next
// external rewrite of the backing document.
func (m *appModel) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return documentChangedMsg{}
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	if cmd := m.waitForChange(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case switchViewMsg:
		m.state.ClearProjectContext()
		m.viewStack = []View{msg.view}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to every view on the stack so views below the top
		// reload data mutated by forms opened above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case flashMsg:
		m.flashText = msg.text
		return m, nil

	case documentChangedMsg:
		// The document was rewritten outside the process; reload and
		// rearm the watcher.
		_ = m.state.App.Data.Reload(context.Background())
		m.flashText = "Reloaded: data file changed on disk"
		return m, tea.Batch(refreshViews(), m.waitForChange())

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews())
	}

	// Forward everything else to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.flashText = ""

	// Views with their own text input (forms) receive every key.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "1":
		return m, switchView(newDashboardView(m.state))
	case "2":
		return m, switchView(newTimelineView(m.state))
	case "3":
		return m, switchView(newProjectListView(m.state))
	case "4":
		return m, switchView(newTrackerView(m.state))

	case "r":
		if err := m.state.App.Data.Reload(context.Background()); err != nil {
			m.flashText = "Reload failed: " + err.Error()
			return m, nil
		}
		m.flashText = "Reloaded"
		return m, refreshViews()
	}

	if msg.Type == tea.KeyEsc {
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("supplytrack")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb
	if m.state.ActiveProjectLabel != "" {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(m.state.ActiveProjectLabel) + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.flashText != "" {
		hints = append(hints, formatter.StyleYellow.Render(m.flashText))
	} else {
		if v := m.activeView(); v != nil {
			for _, b := range v.ShortHelp() {
				hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
			}
		}
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		} else {
			hints = append(hints, formatter.Dim("1-4: screens"))
		}
		hints = append(hints, formatter.Dim("q: quit"))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
