package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calyxcontainers/supplytrack/internal/domain"
)

// Money formats a dollar amount with thousands separators, e.g. "$25,000".
// Cents are shown only when present.
func Money(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	// Round to total cents first so 24.999 carries into $25.00 instead of
	// splitting as 24 dollars and 100 cents.
	totalCents := int64(math.Round(amount * 100))
	whole := totalCents / 100
	cents := totalCents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, ch := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}

	out := "$" + b.String()
	if cents > 0 {
		out = fmt.Sprintf("%s.%02d", out, cents)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// DueLabel describes a due date relative to the reference day, colored by
// urgency: red when overdue or due within 2 days, yellow within a week.
func DueLabel(due domain.Date, today domain.Date) string {
	if due.IsZero() {
		return Dim("no due date")
	}

	days := today.DaysUntil(due)
	var text string
	switch {
	case days == 0:
		text = "Due today"
	case days == 1:
		text = "Due tomorrow"
	case days == -1:
		text = "1 day overdue"
	case days < 0:
		text = fmt.Sprintf("%d days overdue", -days)
	case days < 14:
		text = fmt.Sprintf("Due in %dd", days)
	default:
		text = fmt.Sprintf("Due in %dw", days/7)
	}

	switch {
	case days < 0, days <= 2:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// ShortDate renders a date as "Jan 02" for tables, or a dash when unset.
func ShortDate(d domain.Date) string {
	if d.IsZero() {
		return "–"
	}
	return d.Format("Jan 02")
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return StyleHeader.Render(upper) + "\n" + StyleDim.Render(line)
}

// Truncate cuts s to max visible characters, appending an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
