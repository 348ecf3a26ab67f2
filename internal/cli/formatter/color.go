package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/metrics"
)

// Status palette carried over from the original web dashboard.
var (
	ColorGray   = lipgloss.Color("#6c757d") // Not Started
	ColorBlue   = lipgloss.Color("#0d6efd") // In Progress
	ColorGreen  = lipgloss.Color("#198754") // Completed
	ColorRed    = lipgloss.Color("#dc3545") // Overdue
	ColorYellow = lipgloss.Color("#ffc107") // On Hold
	ColorFg     = lipgloss.Color("#e9ecef")
	ColorDim    = lipgloss.Color("#6c757d")
	ColorHeader = lipgloss.Color("#20c997")
)

var (
	StyleGray   = lipgloss.NewStyle().Foreground(ColorGray)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle maps a (possibly derived) status to its display style.
func StatusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusCompleted:
		return StyleGreen
	case domain.StatusInProgress:
		return StyleBlue
	case domain.StatusOnHold:
		return StyleYellow
	case domain.StatusOverdue:
		return StyleRed
	default:
		return StyleGray
	}
}

// StatusPill renders a colored status marker such as "● In Progress".
func StatusPill(s domain.Status) string {
	return StatusStyle(s).Render("● " + string(s))
}

// PriorityBadge renders a priority marker: High red, Medium yellow, Low gray.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ High")
	case domain.PriorityLow:
		return StyleGray.Render("▽ Low")
	default:
		return StyleYellow.Render("△ Medium")
	}
}

// UrgencyStyle maps a deadline urgency bucket to its display style.
func UrgencyStyle(u metrics.Urgency) lipgloss.Style {
	switch u {
	case metrics.UrgencyOverdue:
		return StyleRed
	case metrics.UrgencyDueSoon:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
