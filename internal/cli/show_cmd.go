package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calyxcontainers/supplytrack/internal/cli/formatter"
	"github.com/calyxcontainers/supplytrack/internal/domain"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <objective>",
		Short: "Show one objective with its subtasks and notes",
		Long: `Show one objective in full. The argument is either the project ID
or the objective number (1-8 for the stock program).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}

			today := domain.Today()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, formatter.Bold(p.Label()))
			fmt.Fprintf(out, "%s  %s  %s\n\n",
				formatter.StatusPill(p.EffectiveStatus(today)),
				formatter.PriorityBadge(p.Priority),
				formatter.DueLabel(p.DueDate, today))

			if p.Description != "" {
				fmt.Fprintln(out, p.Description)
				fmt.Fprintln(out)
			}

			fmt.Fprintf(out, "%s %s\n", formatter.Dim("owner:   "), p.Owner)
			if len(p.TeamMembers) > 0 {
				fmt.Fprintf(out, "%s %s\n", formatter.Dim("team:    "), strings.Join(p.TeamMembers, ", "))
			}
			fmt.Fprintf(out, "%s %s → %s\n", formatter.Dim("window:  "), p.StartDate, p.DueDate)
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("progress:"), formatter.RenderProgress(p.CompletionPercent(), 20))
			fmt.Fprintf(out, "%s %s of %s\n", formatter.Dim("budget:  "),
				formatter.Money(p.BudgetSpent), formatter.Money(p.Budget))

			if len(p.Subtasks) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.Header("Subtasks"))
				for _, st := range p.Subtasks {
					box := "☐"
					if st.Completed {
						box = "☑"
					}
					fmt.Fprintf(out, "  %s %-46s %s %s\n",
						box,
						formatter.Truncate(st.Name, 46),
						formatter.StatusPill(st.EffectiveStatus(today)),
						formatter.Dim(formatter.ShortDate(st.DueDate)))
				}
			}

			if len(p.Notes) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.Header("Notes"))
				for _, n := range p.Notes {
					fmt.Fprintf(out, "  %s %s\n",
						formatter.Dim(n.Timestamp.Format("2006-01-02")), n.Text)
				}
			}
			return nil
		},
	}
}

// resolveProject accepts a project ID or an objective number.
func resolveProject(app *App, arg string) (*domain.Project, error) {
	ctx := context.Background()

	if p, err := app.Projects.GetByID(ctx, arg); err == nil {
		return p, nil
	}

	if n, err := strconv.Atoi(arg); err == nil {
		for _, p := range app.Projects.List(ctx) {
			if p.ObjectiveNumber == n {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("no objective %q", arg)
}
