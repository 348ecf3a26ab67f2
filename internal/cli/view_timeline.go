package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calyxcontainers/supplytrack/internal/cli/formatter"
	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/metrics"
)

// timelineLoadedMsg signals that timeline data has been loaded.
type timelineLoadedMsg struct {
	projects   []*domain.Project
	milestones []metrics.MonthBucket
}

// timelineFilter is one entry in the f-key cycle: all objectives, then each
// status, priority, and owner present in the data.
type timelineFilter struct {
	label string
	match func(*domain.Project) bool
}

// timelineView draws each objective as a bar across the quarter with a
// today marker, plus the per-month milestone roll-up underneath.
type timelineView struct {
	state   *SharedState
	loading bool

	projects   []*domain.Project
	milestones []metrics.MonthBucket

	filters      []timelineFilter
	filterIdx    int
	showSubtasks bool
}

func newTimelineView(state *SharedState) *timelineView {
	return &timelineView{state: state, loading: true}
}

func (v *timelineView) ID() ViewID    { return ViewTimeline }
func (v *timelineView) Title() string { return "Timeline" }

func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "subtasks")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *timelineView) Init() tea.Cmd {
	return v.loadData()
}

func (v *timelineView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		return timelineLoadedMsg{
			projects:   app.Projects.List(ctx),
			milestones: app.Metrics.MonthlyMilestones(ctx),
		}
	}
}

// buildFilters assembles the f-key cycle from the loaded projects. Owners
// come from the data so the cycle always offers exactly the people who
// lead something.
func (v *timelineView) buildFilters() {
	filters := []timelineFilter{
		{label: "all objectives", match: func(*domain.Project) bool { return true }},
	}
	for _, s := range domain.Statuses {
		s := s
		filters = append(filters, timelineFilter{
			label: "status: " + string(s),
			match: func(p *domain.Project) bool { return p.Status == s },
		})
	}
	for _, pr := range domain.Priorities {
		pr := pr
		filters = append(filters, timelineFilter{
			label: "priority: " + string(pr),
			match: func(p *domain.Project) bool { return p.Priority == pr },
		})
	}

	seen := map[string]bool{}
	var owners []string
	for _, p := range v.projects {
		if p.Owner != "" && !seen[p.Owner] {
			seen[p.Owner] = true
			owners = append(owners, p.Owner)
		}
	}
	sort.Strings(owners)
	for _, o := range owners {
		o := o
		filters = append(filters, timelineFilter{
			label: "owner: " + o,
			match: func(p *domain.Project) bool { return p.Owner == o },
		})
	}

	v.filters = filters
	if v.filterIdx >= len(filters) {
		v.filterIdx = 0
	}
}

func (v *timelineView) visibleProjects() []*domain.Project {
	if len(v.filters) == 0 || v.filterIdx == 0 {
		return v.projects
	}
	match := v.filters[v.filterIdx].match
	var out []*domain.Project
	for _, p := range v.projects {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timelineLoadedMsg:
		v.loading = false
		v.projects = msg.projects
		v.milestones = msg.milestones
		v.buildFilters()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "f":
			if len(v.filters) > 0 {
				v.filterIdx = (v.filterIdx + 1) % len(v.filters)
			}
			return v, nil
		case "s":
			v.showSubtasks = !v.showSubtasks
			return v, nil
		}
	}
	return v, nil
}

// ── rendering ────────────────────────────────────────────────────────────────

const ganttWidth = 40

func (v *timelineView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}

	start, end := domain.NewDate(2026, 1, 1), domain.NewDate(2026, 3, 31)
	if cfg := v.state.App.Config; cfg != nil {
		start, end = cfg.Quarter.Window()
	}
	today := v.state.Today()

	var b strings.Builder
	b.WriteString("\n")

	filterLabel := "all objectives"
	if len(v.filters) > 0 {
		filterLabel = v.filters[v.filterIdx].label
	}
	b.WriteString("  " + formatter.Header(fmt.Sprintf("Quarter %s – %s", start, end)) + "\n")
	b.WriteString("  " + formatter.Dim("showing: ") + filterLabel + "\n\n")

	visible := v.visibleProjects()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No objectives match this filter.") + "\n")
	}
	for _, p := range visible {
		b.WriteString(v.renderProjectRow(p, start, end, today))
		if v.showSubtasks {
			for i := range p.Subtasks {
				b.WriteString(v.renderSubtaskRow(&p.Subtasks[i], start, end, today))
			}
		}
	}

	b.WriteString("\n  " + formatter.Header("Milestones by month") + "\n")
	b.WriteString(renderMilestoneBars(v.milestones))
	return b.String()
}

// ganttCol maps a date onto a column of the bar area, clamped to the window.
func ganttCol(d, qStart, qEnd domain.Date) int {
	span := qStart.DaysUntil(qEnd)
	if span < 1 {
		span = 1
	}
	c := qStart.DaysUntil(d) * (ganttWidth - 1) / span
	if c < 0 {
		return 0
	}
	if c > ganttWidth-1 {
		return ganttWidth - 1
	}
	return c
}

func ganttCells(start, due, qStart, qEnd, today domain.Date, bar string, style lipgloss.Style) []string {
	from, to := ganttCol(start, qStart, qEnd), ganttCol(due, qStart, qEnd)
	if start.IsZero() {
		from = 0
	}
	if due.IsZero() {
		to = ganttWidth - 1
	}
	if to < from {
		to = from
	}

	cells := make([]string, ganttWidth)
	for i := range cells {
		if i >= from && i <= to {
			cells[i] = style.Render(bar)
		} else {
			cells[i] = formatter.Dim("·")
		}
	}
	// Today marker overlays the bar when it falls inside the window.
	if !today.Before(qStart) && !today.After(qEnd) {
		cells[ganttCol(today, qStart, qEnd)] = formatter.StyleBold.Render("┃")
	}
	return cells
}

func (v *timelineView) renderProjectRow(p *domain.Project, qStart, qEnd, today domain.Date) string {
	style := formatter.StatusStyle(p.EffectiveStatus(today))
	cells := ganttCells(p.StartDate, p.DueDate, qStart, qEnd, today, "━", style)

	label := formatter.Truncate(p.Label(), 32)
	return fmt.Sprintf("  %-32s %s %s\n",
		label, strings.Join(cells, ""), formatter.StatusPill(p.EffectiveStatus(today)))
}

func (v *timelineView) renderSubtaskRow(st *domain.Subtask, qStart, qEnd, today domain.Date) string {
	style := formatter.StatusStyle(st.EffectiveStatus(today))
	cells := ganttCells(st.StartDate, st.DueDate, qStart, qEnd, today, "─", style)

	// Pad before styling so ANSI codes don't break the column math.
	label := fmt.Sprintf("%-32s", "  └ "+formatter.Truncate(st.Name, 28))
	return fmt.Sprintf("  %s %s\n", formatter.Dim(label), strings.Join(cells, ""))
}
