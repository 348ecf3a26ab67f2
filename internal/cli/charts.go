package cli

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/calyxcontainers/supplytrack/internal/cli/formatter"
	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/metrics"
)

const (
	sparklineWidth  = 32
	sparklineHeight = 3
	countBarWidth   = 24
)

var sparklineStyle = lipgloss.NewStyle().Foreground(formatter.ColorBlue)

// renderCompletionSpark draws per-project completion percentages as a
// sparkline, one column per objective.
func renderCompletionSpark(values []float64) string {
	if len(values) == 0 {
		return formatter.Dim("no data")
	}
	spark := sparkline.New(sparklineWidth, sparklineHeight)
	for _, v := range values {
		spark.Push(v)
	}
	spark.Draw()
	return sparklineStyle.Render(spark.View())
}

// renderStatusBars draws a horizontal bar per status, scaled to the
// largest count.
func renderStatusBars(order []domain.Status, counts map[domain.Status]int) string {
	maxCount := 1
	for _, s := range order {
		if counts[s] > maxCount {
			maxCount = counts[s]
		}
	}

	var b strings.Builder
	for _, s := range order {
		n := counts[s]
		width := n * countBarWidth / maxCount
		bar := strings.Repeat("█", width)
		label := fmt.Sprintf("%-12s", s)
		b.WriteString(fmt.Sprintf("  %s %s %d\n",
			formatter.Dim(label),
			formatter.StatusStyle(s).Render(bar),
			n))
	}
	return b.String()
}

// renderPriorityBars draws a horizontal bar per priority level.
func renderPriorityBars(order []domain.Priority, counts map[domain.Priority]int) string {
	maxCount := 1
	for _, p := range order {
		if counts[p] > maxCount {
			maxCount = counts[p]
		}
	}

	style := func(p domain.Priority) lipgloss.Style {
		switch p {
		case domain.PriorityHigh:
			return formatter.StyleRed
		case domain.PriorityLow:
			return formatter.StyleGray
		default:
			return formatter.StyleYellow
		}
	}

	var b strings.Builder
	for _, p := range order {
		n := counts[p]
		width := n * countBarWidth / maxCount
		bar := strings.Repeat("█", width)
		b.WriteString(fmt.Sprintf("  %s %s %d\n",
			formatter.Dim(fmt.Sprintf("%-12s", p)),
			style(p).Render(bar),
			n))
	}
	return b.String()
}

// renderMilestoneBars draws the due/done milestone counts per month.
func renderMilestoneBars(buckets []metrics.MonthBucket) string {
	if len(buckets) == 0 {
		return "  " + formatter.Dim("no dated milestones") + "\n"
	}

	maxDue := 1
	for _, bk := range buckets {
		if bk.Due > maxDue {
			maxDue = bk.Due
		}
	}

	var b strings.Builder
	for _, bk := range buckets {
		doneW := bk.Done * countBarWidth / maxDue
		dueW := bk.Due*countBarWidth/maxDue - doneW
		bar := formatter.StyleGreen.Render(strings.Repeat("█", doneW)) +
			formatter.StyleBlue.Render(strings.Repeat("█", dueW))
		b.WriteString(fmt.Sprintf("  %s %s %d/%d done\n",
			formatter.Dim(fmt.Sprintf("%-9s", bk.Label())),
			bar, bk.Done, bk.Due))
	}
	return b.String()
}
