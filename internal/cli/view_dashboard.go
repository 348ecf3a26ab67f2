package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calyxcontainers/supplytrack/internal/cli/formatter"
	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/metrics"
)

// ── data types ───────────────────────────────────────────────────────────────

// dashboardData holds everything the dashboard renders, loaded in one shot.
type dashboardData struct {
	summary        metrics.Summary
	statusOrder    []domain.Status
	statusCounts   map[domain.Status]int
	priorityOrder  []domain.Priority
	priorityCounts map[domain.Priority]int
	completion     []float64
	deadlines      []metrics.Deadline
	workload       []metrics.Workload
}

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen: headline metrics, a status breakdown,
// the completion sparkline, and the upcoming-deadlines table.
type dashboardView struct {
	state   *SharedState
	data    *dashboardData
	loading bool
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "timeline")),
		key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "projects")),
		key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "tracker")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	limit := 10
	if app.Config != nil {
		limit = app.Config.UpcomingLimit
	}
	return func() tea.Msg {
		ctx := context.Background()
		order, counts := app.Metrics.StatusBreakdown(ctx)
		prOrder, prCounts := app.Metrics.PriorityBreakdown(ctx)
		return dashboardLoadedMsg{data: dashboardData{
			summary:        app.Metrics.Summary(ctx),
			statusOrder:    order,
			statusCounts:   counts,
			priorityOrder:  prOrder,
			priorityCounts: prCounts,
			completion:     app.Metrics.CompletionByProject(ctx),
			deadlines:      app.Metrics.UpcomingDeadlines(ctx, limit),
			workload:       app.Metrics.OwnerWorkload(ctx),
		}}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.data = &msg.data
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()
	}
	return v, nil
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading || v.data == nil {
		return "\n  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(v.renderSummaryRow())
	b.WriteString("\n")

	left := v.renderBreakdown()
	right := v.renderDeadlines()

	if v.state.Width >= 96 {
		leftCol := lipgloss.NewStyle().Width(44).Render(left)
		divider := formatter.Dim("│")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", right))
	} else {
		b.WriteString(left)
		b.WriteString("\n")
		b.WriteString(right)
	}
	return b.String()
}

func (v *dashboardView) renderSummaryRow() string {
	s := v.data.summary

	cell := func(label, value string, style lipgloss.Style) string {
		return style.Render(value) + " " + formatter.Dim(label)
	}

	cells := []string{
		cell("objectives", fmt.Sprintf("%d", s.TotalProjects), formatter.StyleBold),
		cell("completed", fmt.Sprintf("%d", s.Completed), formatter.StyleGreen),
		cell("in progress", fmt.Sprintf("%d", s.InProgress), formatter.StyleBlue),
		cell("overdue", fmt.Sprintf("%d", s.Overdue), formatter.StyleRed),
		cell("on hold", fmt.Sprintf("%d", s.OnHold), formatter.StyleYellow),
	}

	spentPct := 0
	if s.TotalBudget > 0 {
		spentPct = int(s.TotalSpent * 100 / s.TotalBudget)
	}
	budget := fmt.Sprintf("%s %s / %s spent",
		formatter.RenderProgress(spentPct, 24),
		formatter.Money(s.TotalSpent), formatter.Money(s.TotalBudget))
	if over := s.Overrun(); over > 0 {
		budget += " " + formatter.StyleRed.Render(fmt.Sprintf("(%s over)", formatter.Money(over)))
	}

	var b strings.Builder
	b.WriteString("  " + strings.Join(cells, formatter.Dim("  ·  ")) + "\n")
	b.WriteString("  " + formatter.Dim("budget") + " " + budget + "\n")
	b.WriteString("  " + formatter.Dim("overall") + " " + formatter.RenderProgress(v.data.summary.AvgCompletion, 24))
	done, total := s.SubtasksDone, s.SubtasksTotal
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d/%d subtasks done", done, total)) + "\n")
	return b.String()
}

func (v *dashboardView) renderBreakdown() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Status") + "\n")
	b.WriteString(renderStatusBars(v.data.statusOrder, v.data.statusCounts))
	b.WriteString("\n")
	b.WriteString(formatter.Header("Priority") + "\n")
	b.WriteString(renderPriorityBars(v.data.priorityOrder, v.data.priorityCounts))
	b.WriteString("\n")
	b.WriteString(formatter.Header("Completion by objective") + "\n")
	b.WriteString(renderCompletionSpark(v.data.completion))
	b.WriteString("\n\n")
	b.WriteString(formatter.Header("Workload") + "\n")
	for i, w := range v.data.workload {
		if i >= 5 {
			break
		}
		b.WriteString(fmt.Sprintf("  %-16s %s\n",
			formatter.Truncate(w.Owner, 16),
			formatter.Dim(fmt.Sprintf("%d open subtasks · %.0fh est", w.OpenSubtasks, w.EstimatedHours))))
	}
	return b.String()
}

func (v *dashboardView) renderDeadlines() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Upcoming deadlines") + "\n")

	if len(v.data.deadlines) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing due. Quarter is under control."))
		return b.String()
	}

	rows := make([][]string, 0, len(v.data.deadlines))
	for _, d := range v.data.deadlines {
		rows = append(rows, []string{
			formatter.ShortDate(d.DueDate),
			formatter.UrgencyStyle(d.Urgency).Render(string(d.Urgency)),
			formatter.Truncate(d.SubtaskName, 34),
			formatter.Dim(formatter.Truncate(d.ProjectLabel, 26)),
			formatter.Truncate(d.Owner, 14),
		})
	}
	b.WriteString(formatter.RenderTable(
		[]string{"DUE", "STATE", "SUBTASK", "OBJECTIVE", "OWNER"}, rows))
	return b.String()
}
