package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calyxcontainers/supplytrack/internal/cli/formatter"
	"github.com/calyxcontainers/supplytrack/internal/domain"
)

// trackerRow is one subtask flattened out of its project for the tracker.
type trackerRow struct {
	projectID    string
	projectLabel string
	subtask      domain.Subtask
}

// trackerLoadedMsg signals that tracker rows have been loaded.
type trackerLoadedMsg struct {
	rows []trackerRow
}

// trackerView lists every subtask in the program grouped by objective,
// with one-key completion toggling. 'o' hides completed rows.
type trackerView struct {
	state    *SharedState
	loading  bool
	rows     []trackerRow
	cursor   int
	openOnly bool
}

func newTrackerView(state *SharedState) *trackerView {
	return &trackerView{state: state, loading: true}
}

func (v *trackerView) ID() ViewID    { return ViewTracker }
func (v *trackerView) Title() string { return "Tracker" }

func (v *trackerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("t", "space"), key.WithHelp("t", "toggle done")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open only")),
	}
}

func (v *trackerView) Init() tea.Cmd {
	return v.loadData()
}

func (v *trackerView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		var rows []trackerRow
		for _, p := range app.Projects.List(context.Background()) {
			for _, st := range p.Subtasks {
				rows = append(rows, trackerRow{
					projectID:    p.ID,
					projectLabel: p.Label(),
					subtask:      st,
				})
			}
		}
		return trackerLoadedMsg{rows: rows}
	}
}

func (v *trackerView) visibleRows() []trackerRow {
	if !v.openOnly {
		return v.rows
	}
	var out []trackerRow
	for _, r := range v.rows {
		if !r.subtask.Completed {
			out = append(out, r)
		}
	}
	return out
}

func (v *trackerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trackerLoadedMsg:
		v.loading = false
		v.rows = msg.rows
		if n := len(v.visibleRows()); v.cursor >= n {
			v.cursor = max(0, n-1)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		visible := v.visibleRows()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(visible)-1 {
				v.cursor++
			}
		case "o":
			v.openOnly = !v.openOnly
			if n := len(v.visibleRows()); v.cursor >= n {
				v.cursor = max(0, n-1)
			}
		case "t", " ":
			if v.cursor < len(visible) {
				row := visible[v.cursor]
				return v, v.toggle(row.projectID, row.subtask.ID)
			}
		}
	}
	return v, nil
}

func (v *trackerView) toggle(projectID, subtaskID string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if _, err := app.Projects.ToggleSubtask(context.Background(), projectID, subtaskID); err != nil {
			return flashMsg{text: err.Error()}
		}
		return refreshViewMsg{}
	}
}

func (v *trackerView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}

	visible := v.visibleRows()
	if len(visible) == 0 {
		return "\n  " + formatter.Dim("Nothing to track.")
	}

	today := v.state.Today()
	var b strings.Builder
	b.WriteString("\n")

	lastProject := ""
	for i, row := range visible {
		if row.projectLabel != lastProject {
			lastProject = row.projectLabel
			b.WriteString("  " + formatter.StyleHeader.Render(row.projectLabel) + "\n")
		}

		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		box := formatter.Dim("☐")
		if row.subtask.Completed {
			box = formatter.StyleGreen.Render("☑")
		}

		b.WriteString(fmt.Sprintf("  %s%s %-46s %s %s\n",
			marker, box,
			formatter.Truncate(row.subtask.Name, 46),
			formatter.Dim(formatter.ShortDate(row.subtask.DueDate)),
			formatter.StatusPill(row.subtask.EffectiveStatus(today)),
		))
	}
	return b.String()
}
