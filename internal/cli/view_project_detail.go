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

// detailTab selects which pane of the detail view is showing.
type detailTab int

const (
	tabOverview detailTab = iota
	tabSubtasks
	tabNotes
)

var detailTabNames = []string{"Overview", "Subtasks", "Notes"}

// projectLoadedMsg carries a freshly loaded project into the detail view.
type projectLoadedMsg struct {
	project *domain.Project
	err     error
}

// projectDetailView shows one objective with tabbed panes and edit actions.
type projectDetailView struct {
	state     *SharedState
	projectID string
	project   *domain.Project
	err       error
	loading   bool

	tab    detailTab
	cursor int // subtask cursor on the subtasks tab
}

func newProjectDetailView(state *SharedState, projectID string) *projectDetailView {
	return &projectDetailView{state: state, projectID: projectID, loading: true}
}

func (v *projectDetailView) ID() ViewID { return ViewProjectDetail }

func (v *projectDetailView) Title() string {
	if v.project != nil {
		return fmt.Sprintf("Obj %d", v.project.ObjectiveNumber)
	}
	return "Detail"
}

func (v *projectDetailView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "note")),
	}
	if v.tab == tabSubtasks {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle done")),
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add subtask")),
		)
	}
	return bindings
}

func (v *projectDetailView) Init() tea.Cmd {
	return v.loadData()
}

func (v *projectDetailView) loadData() tea.Cmd {
	app := v.state.App
	id := v.projectID
	return func() tea.Msg {
		p, err := app.Projects.GetByID(context.Background(), id)
		return projectLoadedMsg{project: p, err: err}
	}
}

func (v *projectDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.project = msg.project
			if v.cursor >= len(v.project.Subtasks) {
				v.cursor = max(0, len(v.project.Subtasks)-1)
			}
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *projectDetailView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.project == nil {
		return v, nil
	}

	switch msg.String() {
	case "tab":
		v.tab = (v.tab + 1) % 3
		return v, nil

	case "e":
		return v, startEditProjectWizard(v.state, v.project)

	case "n":
		if v.tab == tabSubtasks && v.cursor < len(v.project.Subtasks) {
			return v, startSubtaskNoteWizard(v.state, v.project.ID, v.project.Subtasks[v.cursor].ID)
		}
		return v, startProjectNoteWizard(v.state, v.project.ID)
	}

	if v.tab == tabSubtasks {
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.project.Subtasks)-1 {
				v.cursor++
			}
		case "t", " ":
			if v.cursor < len(v.project.Subtasks) {
				return v, v.toggleSubtask(v.project.Subtasks[v.cursor].ID)
			}
		case "a":
			return v, startAddSubtaskWizard(v.state, v.project.ID)
		case "enter":
			if v.cursor < len(v.project.Subtasks) {
				return v, startEditSubtaskWizard(v.state, v.project.ID, v.project.Subtasks[v.cursor])
			}
		}
	}
	return v, nil
}

func (v *projectDetailView) toggleSubtask(subtaskID string) tea.Cmd {
	app := v.state.App
	projectID := v.projectID
	return func() tea.Msg {
		if _, err := app.Projects.ToggleSubtask(context.Background(), projectID, subtaskID); err != nil {
			return flashMsg{text: err.Error()}
		}
		return refreshViewMsg{}
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *projectDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	p := v.project
	today := v.state.Today()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold(p.Label()) + "\n")
	b.WriteString("  " + formatter.StatusPill(p.EffectiveStatus(today)) +
		"  " + formatter.PriorityBadge(p.Priority) +
		"  " + formatter.DueLabel(p.DueDate, today) + "\n\n")

	// Tab bar
	var tabs []string
	for i, name := range detailTabNames {
		if detailTab(i) == v.tab {
			tabs = append(tabs, formatter.StyleHeader.Render(name))
		} else {
			tabs = append(tabs, formatter.Dim(name))
		}
	}
	b.WriteString("  " + strings.Join(tabs, formatter.Dim(" │ ")) + "\n\n")

	switch v.tab {
	case tabSubtasks:
		b.WriteString(v.renderSubtasks(today))
	case tabNotes:
		b.WriteString(v.renderNotes())
	default:
		b.WriteString(v.renderOverview(today))
	}
	return b.String()
}

func (v *projectDetailView) renderOverview(today domain.Date) string {
	p := v.project
	var b strings.Builder

	if p.Description != "" {
		b.WriteString("  " + p.Description + "\n\n")
	}

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim(fmt.Sprintf("%-12s", label)), value))
	}

	row("owner", p.Owner)
	if len(p.TeamMembers) > 0 {
		row("team", strings.Join(p.TeamMembers, ", "))
	}
	row("category", p.Category)
	row("window", fmt.Sprintf("%s → %s", p.StartDate, p.DueDate))
	row("progress", formatter.RenderProgress(p.CompletionPercent(), 20))

	done, total := p.SubtaskProgress()
	if total > 0 {
		row("subtasks", fmt.Sprintf("%d of %d complete", done, total))
	}

	budget := formatter.Money(p.BudgetSpent) + formatter.Dim(" of ") + formatter.Money(p.Budget)
	if over := p.BudgetOverrun(); over > 0 {
		budget += "  " + formatter.StyleRed.Render(formatter.Money(over)+" over")
	}
	row("budget", budget)
	row("hours", fmt.Sprintf("%.0f actual / %.0f estimated", p.ActualHours, p.EstimatedHours))
	if len(p.Tags) > 0 {
		row("tags", formatter.Dim(strings.Join(p.Tags, " ")))
	}
	return b.String()
}

func (v *projectDetailView) renderSubtasks(today domain.Date) string {
	p := v.project
	if len(p.Subtasks) == 0 {
		return "  " + formatter.Dim("No subtasks. Press 'a' to add one.") + "\n"
	}

	var b strings.Builder
	for i := range p.Subtasks {
		st := &p.Subtasks[i]

		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		box := formatter.Dim("☐")
		if st.Completed {
			box = formatter.StyleGreen.Render("☑")
		}

		b.WriteString(fmt.Sprintf("%s%s %-44s %s %s\n",
			marker, box,
			formatter.Truncate(st.Name, 44),
			formatter.StatusPill(st.EffectiveStatus(today)),
			formatter.Dim(formatter.ShortDate(st.DueDate)),
		))

		if i == v.cursor {
			if st.Description != "" {
				b.WriteString("      " + formatter.Dim(st.Description) + "\n")
			}
			if st.CompletionCriteria != "" {
				b.WriteString("      " + formatter.Dim("done when: ") + st.CompletionCriteria + "\n")
			}
			if st.Owner != "" {
				b.WriteString("      " + formatter.Dim("owner: ") + st.Owner + "\n")
			}
			if st.Dependencies != "" {
				b.WriteString("      " + formatter.Dim("depends: ") + st.Dependencies + "\n")
			}
			for _, note := range st.Notes {
				b.WriteString("      " + formatter.Dim("• "+note.Text) + "\n")
			}
		}
	}
	return b.String()
}

func (v *projectDetailView) renderNotes() string {
	p := v.project
	if len(p.Notes) == 0 {
		return "  " + formatter.Dim("No notes. Press 'n' to add one.") + "\n"
	}

	var b strings.Builder
	for i := len(p.Notes) - 1; i >= 0; i-- {
		note := p.Notes[i]
		b.WriteString("  " + formatter.Dim(note.Timestamp.Format("2006-01-02 15:04")) + "\n")
		b.WriteString("  " + note.Text + "\n\n")
	}
	return b.String()
}
