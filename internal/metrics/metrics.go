// Package metrics derives dashboard figures from the in-memory project set.
// Every function is pure and takes the reference day explicitly, so the
// same dataset always yields the same numbers in tests.
package metrics

import (
	"sort"
	"strconv"
	"time"

	"github.com/calyxcontainers/supplytrack/internal/domain"
)

// Summary is the headline row of the dashboard.
type Summary struct {
	TotalProjects int
	Completed     int
	InProgress    int
	NotStarted    int
	OnHold        int
	Overdue       int

	AvgCompletion int // mean of per-project completion percentages

	TotalBudget float64
	TotalSpent  float64

	SubtasksDone  int
	SubtasksTotal int
}

// BudgetRemaining is never negative; overspend shows up in Overrun instead.
func (s Summary) BudgetRemaining() float64 {
	if s.TotalSpent >= s.TotalBudget {
		return 0
	}
	return s.TotalBudget - s.TotalSpent
}

func (s Summary) Overrun() float64 {
	if s.TotalSpent > s.TotalBudget {
		return s.TotalSpent - s.TotalBudget
	}
	return 0
}

// Summarize rolls the whole project set up into a Summary. Overdue projects
// are counted under Overdue only, not under their stored status.
func Summarize(projects []*domain.Project, today domain.Date) Summary {
	var sum Summary
	sum.TotalProjects = len(projects)

	var pctTotal int
	for _, p := range projects {
		switch p.EffectiveStatus(today) {
		case domain.StatusCompleted:
			sum.Completed++
		case domain.StatusInProgress:
			sum.InProgress++
		case domain.StatusOnHold:
			sum.OnHold++
		case domain.StatusOverdue:
			sum.Overdue++
		default:
			sum.NotStarted++
		}

		pctTotal += p.CompletionPercent()
		sum.TotalBudget += p.Budget
		sum.TotalSpent += p.BudgetSpent

		done, total := p.SubtaskProgress()
		sum.SubtasksDone += done
		sum.SubtasksTotal += total
	}
	if len(projects) > 0 {
		sum.AvgCompletion = pctTotal / len(projects)
	}
	return sum
}

// StatusCounts tallies projects by effective status, in the fixed display
// order Not Started, In Progress, Completed, On Hold, Overdue. Statuses
// with no projects are included with a zero count so charts keep a stable
// axis.
func StatusCounts(projects []*domain.Project, today domain.Date) ([]domain.Status, map[domain.Status]int) {
	order := append(append([]domain.Status{}, domain.Statuses...), domain.StatusOverdue)
	counts := make(map[domain.Status]int, len(order))
	for _, s := range order {
		counts[s] = 0
	}
	for _, p := range projects {
		counts[p.EffectiveStatus(today)]++
	}
	return order, counts
}

// PriorityCounts tallies projects by priority in High, Medium, Low order.
func PriorityCounts(projects []*domain.Project) ([]domain.Priority, map[domain.Priority]int) {
	counts := make(map[domain.Priority]int, len(domain.Priorities))
	for _, pr := range domain.Priorities {
		counts[pr] = 0
	}
	for _, p := range projects {
		pr := p.Priority
		if !pr.Valid() {
			pr = domain.PriorityMedium
		}
		counts[pr]++
	}
	return domain.Priorities, counts
}

// Workload is one owner's share of the open work.
type Workload struct {
	Owner          string
	OpenSubtasks   int
	Projects       int     // projects the owner leads
	EstimatedHours float64 // summed over the projects they lead
}

// OwnerWorkload counts each owner's open (incomplete) subtasks plus the
// projects they lead, sorted by open subtasks descending, then by name for
// a stable order. Subtask owners and project owners both contribute rows.
func OwnerWorkload(projects []*domain.Project) []Workload {
	byOwner := map[string]*Workload{}
	get := func(owner string) *Workload {
		if owner == "" {
			owner = "Unassigned"
		}
		w, ok := byOwner[owner]
		if !ok {
			w = &Workload{Owner: owner}
			byOwner[owner] = w
		}
		return w
	}

	for _, p := range projects {
		w := get(p.Owner)
		w.Projects++
		w.EstimatedHours += p.EstimatedHours
		for i := range p.Subtasks {
			if !p.Subtasks[i].Completed {
				get(p.Subtasks[i].Owner).OpenSubtasks++
			}
		}
	}

	out := make([]Workload, 0, len(byOwner))
	for _, w := range byOwner {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OpenSubtasks != out[j].OpenSubtasks {
			return out[i].OpenSubtasks > out[j].OpenSubtasks
		}
		return out[i].Owner < out[j].Owner
	})
	return out
}

// Urgency buckets an upcoming deadline for display.
type Urgency string

const (
	UrgencyOverdue Urgency = "Overdue"
	UrgencyDueSoon Urgency = "Due Soon" // within the next 7 days
	UrgencyOnTrack Urgency = "On Track"
)

// Deadline is one incomplete subtask's due date, flattened for the
// upcoming-deadlines table.
type Deadline struct {
	ProjectID    string
	ProjectLabel string
	SubtaskID    string
	SubtaskName  string
	Owner        string
	DueDate      domain.Date
	DaysLeft     int
	Urgency      Urgency
}

// UpcomingDeadlines flattens every incomplete subtask with a due date,
// sorted ascending by due date, and returns at most limit entries.
// Overdue subtasks sort first by construction. limit <= 0 means no cap.
func UpcomingDeadlines(projects []*domain.Project, today domain.Date, limit int) []Deadline {
	var out []Deadline
	for _, p := range projects {
		for i := range p.Subtasks {
			st := &p.Subtasks[i]
			if st.Completed || st.DueDate.IsZero() {
				continue
			}
			days := today.DaysUntil(st.DueDate)
			urgency := UrgencyOnTrack
			switch {
			case days < 0:
				urgency = UrgencyOverdue
			case days <= 7:
				urgency = UrgencyDueSoon
			}
			out = append(out, Deadline{
				ProjectID:    p.ID,
				ProjectLabel: p.Label(),
				SubtaskID:    st.ID,
				SubtaskName:  st.Name,
				Owner:        st.Owner,
				DueDate:      st.DueDate,
				DaysLeft:     days,
				Urgency:      urgency,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MonthBucket is the per-month milestone roll-up behind the timeline chart.
type MonthBucket struct {
	Year  int
	Month time.Month
	Due   int // subtasks due in the month
	Done  int // of those, already completed
}

func (m MonthBucket) Label() string { return m.Month.String()[:3] + " " + strconv.Itoa(m.Year) }

// MonthlyMilestones buckets every dated subtask by due month, in
// chronological order. Months between the first and last due date are
// included even when empty so the chart axis has no gaps.
func MonthlyMilestones(projects []*domain.Project) []MonthBucket {
	type key struct {
		year  int
		month time.Month
	}
	counts := map[key]*MonthBucket{}
	var first, last domain.Date

	for _, p := range projects {
		for i := range p.Subtasks {
			st := &p.Subtasks[i]
			if st.DueDate.IsZero() {
				continue
			}
			if first.IsZero() || st.DueDate.Before(first) {
				first = st.DueDate
			}
			if last.IsZero() || st.DueDate.After(last) {
				last = st.DueDate
			}
			k := key{st.DueDate.Year(), st.DueDate.Month()}
			b, ok := counts[k]
			if !ok {
				b = &MonthBucket{Year: k.year, Month: k.month}
				counts[k] = b
			}
			b.Due++
			if st.Completed {
				b.Done++
			}
		}
	}
	if first.IsZero() {
		return nil
	}

	var out []MonthBucket
	for y, m := first.Year(), first.Month(); y < last.Year() || (y == last.Year() && m <= last.Month()); {
		if b, ok := counts[key{y, m}]; ok {
			out = append(out, *b)
		} else {
			out = append(out, MonthBucket{Year: y, Month: m})
		}
		m++
		if m > time.December {
			m = time.January
			y++
		}
	}
	return out
}

// CompletionHistory returns each project's completion percentage in
// objective order, feeding the dashboard sparkline.
func CompletionHistory(projects []*domain.Project) []float64 {
	out := make([]float64, len(projects))
	for i, p := range projects {
		out[i] = float64(p.CompletionPercent())
	}
	return out
}
