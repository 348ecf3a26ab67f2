package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/testutil"
)

func d(m time.Month, day int) domain.Date { return domain.NewDate(2026, m, day) }

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil, d(time.February, 1))
	assert.Equal(t, 0, sum.TotalProjects)
	assert.Equal(t, 0, sum.AvgCompletion)
	assert.Zero(t, sum.TotalBudget)
}

func TestSummarize_CountsByEffectiveStatus(t *testing.T) {
	today := d(time.February, 15)
	projects := []*domain.Project{
		testutil.NewTestProject("done", testutil.WithStatus(domain.StatusCompleted)),
		testutil.NewTestProject("running"),
		testutil.NewTestProject("parked", testutil.WithStatus(domain.StatusOnHold)),
		// Past due and not completed: counted as Overdue, not In Progress.
		testutil.NewTestProject("late", testutil.WithDueDate(d(time.January, 31))),
		testutil.NewTestProject("fresh", testutil.WithStatus(domain.StatusNotStarted)),
	}

	sum := Summarize(projects, today)
	assert.Equal(t, 5, sum.TotalProjects)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, 1, sum.InProgress)
	assert.Equal(t, 1, sum.OnHold)
	assert.Equal(t, 1, sum.Overdue)
	assert.Equal(t, 1, sum.NotStarted)
}

func TestSummarize_CompletedPastDueIsNotOverdue(t *testing.T) {
	today := d(time.March, 1)
	p := testutil.NewTestProject("shipped",
		testutil.WithStatus(domain.StatusCompleted),
		testutil.WithDueDate(d(time.January, 15)))

	sum := Summarize([]*domain.Project{p}, today)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, 0, sum.Overdue)
}

func TestSummarize_DueTodayIsNotOverdue(t *testing.T) {
	today := d(time.February, 15)
	p := testutil.NewTestProject("due-today", testutil.WithDueDate(today))

	sum := Summarize([]*domain.Project{p}, today)
	assert.Equal(t, 0, sum.Overdue)
	assert.Equal(t, 1, sum.InProgress)
}

func TestSummarize_CompletionDerivedFromSubtasks(t *testing.T) {
	p := testutil.NewTestProject("quartered",
		testutil.WithCompletion(90), // ignored: subtasks win
		testutil.WithSubtasks(
			testutil.NewTestSubtask("a", testutil.Completed()),
			testutil.NewTestSubtask("b"),
			testutil.NewTestSubtask("c"),
			testutil.NewTestSubtask("d"),
		))

	sum := Summarize([]*domain.Project{p}, d(time.February, 1))
	assert.Equal(t, 25, sum.AvgCompletion)
	assert.Equal(t, 1, sum.SubtasksDone)
	assert.Equal(t, 4, sum.SubtasksTotal)
}

func TestSummarize_Budgets(t *testing.T) {
	projects := []*domain.Project{
		testutil.NewTestProject("a", testutil.WithBudget(25000, 4200)),
		testutil.NewTestProject("b", testutil.WithBudget(10000, 12500)),
	}

	sum := Summarize(projects, d(time.February, 1))
	assert.InDelta(t, 35000, sum.TotalBudget, 0.001)
	assert.InDelta(t, 16700, sum.TotalSpent, 0.001)
	assert.InDelta(t, 18300, sum.BudgetRemaining(), 0.001)
	assert.Zero(t, sum.Overrun())
}

func TestStatusCounts_StableAxis(t *testing.T) {
	order, counts := StatusCounts(nil, d(time.February, 1))
	require.Len(t, order, 5)
	assert.Equal(t, domain.StatusOverdue, order[len(order)-1])
	for _, s := range order {
		_, ok := counts[s]
		assert.True(t, ok, "missing axis entry for %s", s)
	}
}

func TestPriorityCounts(t *testing.T) {
	projects := []*domain.Project{
		testutil.NewTestProject("a", testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTestProject("b", testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTestProject("c", testutil.WithPriority(domain.PriorityLow)),
	}

	order, counts := PriorityCounts(projects)
	assert.Equal(t, []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}, order)
	assert.Equal(t, 2, counts[domain.PriorityHigh])
	assert.Equal(t, 0, counts[domain.PriorityMedium])
	assert.Equal(t, 1, counts[domain.PriorityLow])
}

func TestOwnerWorkload(t *testing.T) {
	projects := []*domain.Project{
		testutil.NewTestProject("a",
			testutil.WithOwner("Cory Timmons"),
			testutil.WithSubtasks(
				testutil.NewTestSubtask("s1", testutil.WithSubtaskOwner("Greg Furner")),
				testutil.NewTestSubtask("s2", testutil.WithSubtaskOwner("Greg Furner")),
				testutil.NewTestSubtask("s3", testutil.WithSubtaskOwner("Greg Furner"), testutil.Completed()),
				testutil.NewTestSubtask("s4", testutil.WithSubtaskOwner("Cory Timmons")),
			)),
	}

	work := OwnerWorkload(projects)
	require.Len(t, work, 2)
	assert.Equal(t, "Greg Furner", work[0].Owner)
	assert.Equal(t, 2, work[0].OpenSubtasks)
	assert.Equal(t, "Cory Timmons", work[1].Owner)
	assert.Equal(t, 1, work[1].OpenSubtasks)
	assert.Equal(t, 1, work[1].Projects)
	// Estimated hours accrue to the project lead, not subtask owners.
	assert.InDelta(t, projects[0].EstimatedHours, work[1].EstimatedHours, 0.001)
	assert.Zero(t, work[0].EstimatedHours)
}

func TestUpcomingDeadlines_SortedAndLimited(t *testing.T) {
	today := d(time.February, 10)
	projects := []*domain.Project{
		testutil.NewTestProject("a", testutil.WithSubtasks(
			testutil.NewTestSubtask("far", testutil.WithSubtaskDue(d(time.March, 20))),
			testutil.NewTestSubtask("late", testutil.WithSubtaskDue(d(time.February, 1))),
			testutil.NewTestSubtask("soon", testutil.WithSubtaskDue(d(time.February, 14))),
			testutil.NewTestSubtask("done", testutil.WithSubtaskDue(d(time.February, 2)), testutil.Completed()),
		)),
	}

	all := UpcomingDeadlines(projects, today, 0)
	require.Len(t, all, 3) // completed subtask excluded
	assert.Equal(t, "late", all[0].SubtaskName)
	assert.Equal(t, UrgencyOverdue, all[0].Urgency)
	assert.Equal(t, -9, all[0].DaysLeft)
	assert.Equal(t, "soon", all[1].SubtaskName)
	assert.Equal(t, UrgencyDueSoon, all[1].Urgency)
	assert.Equal(t, "far", all[2].SubtaskName)
	assert.Equal(t, UrgencyOnTrack, all[2].Urgency)

	capped := UpcomingDeadlines(projects, today, 2)
	require.Len(t, capped, 2)
	assert.Equal(t, "late", capped[0].SubtaskName)
}

func TestUpcomingDeadlines_SevenDayBoundary(t *testing.T) {
	today := d(time.February, 10)
	projects := []*domain.Project{
		testutil.NewTestProject("a", testutil.WithSubtasks(
			testutil.NewTestSubtask("seventh", testutil.WithSubtaskDue(d(time.February, 17))),
			testutil.NewTestSubtask("eighth", testutil.WithSubtaskDue(d(time.February, 18))),
		)),
	}

	out := UpcomingDeadlines(projects, today, 0)
	require.Len(t, out, 2)
	assert.Equal(t, UrgencyDueSoon, out[0].Urgency)
	assert.Equal(t, UrgencyOnTrack, out[1].Urgency)
}

func TestMonthlyMilestones_FillsGaps(t *testing.T) {
	projects := []*domain.Project{
		testutil.NewTestProject("a", testutil.WithSubtasks(
			testutil.NewTestSubtask("jan", testutil.WithSubtaskDue(d(time.January, 20)), testutil.Completed()),
			testutil.NewTestSubtask("mar", testutil.WithSubtaskDue(d(time.March, 5))),
			testutil.NewTestSubtask("mar2", testutil.WithSubtaskDue(d(time.March, 25))),
		)),
	}

	buckets := MonthlyMilestones(projects)
	require.Len(t, buckets, 3)
	assert.Equal(t, time.January, buckets[0].Month)
	assert.Equal(t, 1, buckets[0].Due)
	assert.Equal(t, 1, buckets[0].Done)
	assert.Equal(t, time.February, buckets[1].Month)
	assert.Equal(t, 0, buckets[1].Due)
	assert.Equal(t, time.March, buckets[2].Month)
	assert.Equal(t, 2, buckets[2].Due)
	assert.Equal(t, "Jan 2026", buckets[0].Label())
}

func TestMonthlyMilestones_NoDatedSubtasks(t *testing.T) {
	assert.Nil(t, MonthlyMilestones([]*domain.Project{testutil.NewTestProject("bare")}))
}

func TestCompletionHistory(t *testing.T) {
	projects := []*domain.Project{
		testutil.NewTestProject("a", testutil.WithCompletion(40)),
		testutil.NewTestProject("b", testutil.WithCompletion(80)),
	}
	assert.Equal(t, []float64{40, 80}, CompletionHistory(projects))
}
