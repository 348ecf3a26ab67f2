package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/calyxcontainers/supplytrack/internal/cli/formatter"
	"github.com/calyxcontainers/supplytrack/internal/domain"
)

// trackerHuhTheme restyles huh forms with the dashboard palette.
func trackerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// ── validators ───────────────────────────────────────────────────────────────

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validateDate accepts an empty value or a YYYY-MM-DD date.
func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := domain.ParseDate(s)
	return err
}

// validateAmount accepts an empty value or a non-negative number.
func validateAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if f < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func parseAmount(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func parseDateOrZero(s string) domain.Date {
	d, _ := domain.ParseDate(s)
	return d
}

func priorityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Priorities))
	for _, p := range domain.Priorities {
		opts = append(opts, huh.NewOption(string(p), string(p)))
	}
	return opts
}

func statusOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		opts = append(opts, huh.NewOption(string(s), string(s)))
	}
	return opts
}

// ── wizards ──────────────────────────────────────────────────────────────────

// startEditProjectWizard opens the objective edit form. On confirm the
// whole project is written back through the service.
func startEditProjectWizard(state *SharedState, p *domain.Project) tea.Cmd {
	edited := p.Clone()
	priority := string(edited.Priority)
	status := string(edited.Status)
	start := edited.StartDate.String()
	due := edited.DueDate.String()
	budget := strconv.FormatFloat(edited.Budget, 'f', -1, 64)
	spent := strconv.FormatFloat(edited.BudgetSpent, 'f', -1, 64)
	actual := strconv.FormatFloat(edited.ActualHours, 'f', -1, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&edited.Name).Validate(validateRequired),
			huh.NewText().Title("Description").Value(&edited.Description).Lines(3),
			huh.NewInput().Title("Owner").Value(&edited.Owner),
			huh.NewSelect[string]().Title("Priority").Options(priorityOptions()...).Value(&priority),
			huh.NewSelect[string]().Title("Status").Options(statusOptions()...).Value(&status),
		),
		huh.NewGroup(
			huh.NewInput().Title("Start date").Description("YYYY-MM-DD").Value(&start).Validate(validateDate),
			huh.NewInput().Title("Due date").Description("YYYY-MM-DD").Value(&due).Validate(validateDate),
			huh.NewInput().Title("Budget").Value(&budget).Validate(validateAmount),
			huh.NewInput().Title("Budget spent").Value(&spent).Validate(validateAmount),
			huh.NewInput().Title("Actual hours").Value(&actual).Validate(validateAmount),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			edited.Priority = domain.Priority(priority)
			edited.Status = domain.Status(status)
			edited.StartDate = parseDateOrZero(start)
			edited.DueDate = parseDateOrZero(due)
			edited.Budget = parseAmount(budget)
			edited.BudgetSpent = parseAmount(spent)
			edited.ActualHours = parseAmount(actual)
			if err := app.Projects.Update(context.Background(), edited); err != nil {
				return flashMsg{text: err.Error()}
			}
			return flashMsg{text: "Saved " + edited.Label()}
		}
	}
	return pushView(newWizardView(state, "Edit", form, done))
}

// subtaskForm builds the shared add/edit subtask form over st's fields.
func subtaskForm(st *domain.Subtask, start, due *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&st.Name).Validate(validateRequired),
			huh.NewText().Title("Description").Value(&st.Description).Lines(2),
			huh.NewInput().Title("Completion criteria").Value(&st.CompletionCriteria),
			huh.NewInput().Title("Owner").Value(&st.Owner),
			huh.NewInput().Title("Start date").Description("YYYY-MM-DD").Value(start).Validate(validateDate),
			huh.NewInput().Title("Due date").Description("YYYY-MM-DD").Value(due).Validate(validateDate),
			huh.NewInput().Title("Success metric").Value(&st.SuccessMetric),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}

func startAddSubtaskWizard(state *SharedState, projectID string) tea.Cmd {
	st := &domain.Subtask{}
	var start, due string
	form := subtaskForm(st, &start, &due)

	done := func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			st.StartDate = parseDateOrZero(start)
			st.DueDate = parseDateOrZero(due)
			if err := app.Projects.AddSubtask(context.Background(), projectID, *st); err != nil {
				return flashMsg{text: err.Error()}
			}
			return flashMsg{text: "Added subtask"}
		}
	}
	return pushView(newWizardView(state, "Add subtask", form, done))
}

func startEditSubtaskWizard(state *SharedState, projectID string, st domain.Subtask) tea.Cmd {
	edited := st
	start := edited.StartDate.String()
	due := edited.DueDate.String()
	form := subtaskForm(&edited, &start, &due)

	done := func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			edited.StartDate = parseDateOrZero(start)
			edited.DueDate = parseDateOrZero(due)
			if err := app.Projects.UpdateSubtask(context.Background(), projectID, edited); err != nil {
				return flashMsg{text: err.Error()}
			}
			return flashMsg{text: "Saved subtask"}
		}
	}
	return pushView(newWizardView(state, "Edit subtask", form, done))
}

func noteForm(text *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Note").Value(text).Lines(3).Validate(validateRequired),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}

func startProjectNoteWizard(state *SharedState, projectID string) tea.Cmd {
	var text string
	done := func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			if err := app.Projects.AddProjectNote(context.Background(), projectID, text); err != nil {
				return flashMsg{text: err.Error()}
			}
			return flashMsg{text: "Note added"}
		}
	}
	return pushView(newWizardView(state, "Note", noteForm(&text), done))
}

func startSubtaskNoteWizard(state *SharedState, projectID, subtaskID string) tea.Cmd {
	var text string
	done := func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			if err := app.Projects.AddSubtaskNote(context.Background(), projectID, subtaskID, text); err != nil {
				return flashMsg{text: err.Error()}
			}
			return flashMsg{text: "Note added"}
		}
	}
	return pushView(newWizardView(state, "Subtask note", noteForm(&text), done))
}
