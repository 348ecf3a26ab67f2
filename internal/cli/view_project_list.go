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

// projectsLoadedMsg signals that the project list has been loaded.
type projectsLoadedMsg struct {
	projects []*domain.Project
}

// projectListView is a selectable list of all objectives.
type projectListView struct {
	state    *SharedState
	loading  bool
	projects []*domain.Project
	cursor   int
}

func newProjectListView(state *SharedState) *projectListView {
	return &projectListView{state: state, loading: true}
}

func (v *projectListView) ID() ViewID    { return ViewProjectList }
func (v *projectListView) Title() string { return "Projects" }

func (v *projectListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

func (v *projectListView) Init() tea.Cmd {
	return v.loadData()
}

func (v *projectListView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return projectsLoadedMsg{projects: app.Projects.List(context.Background())}
	}
}

func (v *projectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		v.loading = false
		v.projects = msg.projects
		if v.cursor >= len(v.projects) {
			v.cursor = max(0, len(v.projects)-1)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.projects)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.projects) {
				p := v.projects[v.cursor]
				v.state.SetActiveProjectFrom(p)
				return v, pushView(newProjectDetailView(v.state, p.ID))
			}
		}
	}
	return v, nil
}

func (v *projectListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if len(v.projects) == 0 {
		return "\n  " + formatter.Dim("No objectives tracked.")
	}

	today := v.state.Today()
	var b strings.Builder
	b.WriteString("\n")

	for i, p := range v.projects {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}

		line := fmt.Sprintf("%s%-40s %s  %s  %s",
			marker,
			formatter.Truncate(p.Label(), 40),
			formatter.PriorityBadge(p.Priority),
			formatter.StatusPill(p.EffectiveStatus(today)),
			formatter.RenderProgress(p.CompletionPercent(), 12),
		)
		b.WriteString(line + "\n")

		if i == v.cursor {
			detail := fmt.Sprintf("    %s  %s  %s",
				formatter.Dim("owner: ")+p.Owner,
				formatter.Dim("due: ")+formatter.ShortDate(p.DueDate),
				formatter.Dim("budget: ")+formatter.Money(p.BudgetSpent)+formatter.Dim(" of ")+formatter.Money(p.Budget),
			)
			b.WriteString(detail + "\n")
		}
	}
	return b.String()
}
