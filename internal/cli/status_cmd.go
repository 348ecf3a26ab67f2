package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calyxcontainers/supplytrack/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	var upcoming int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the program status summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			sum := app.Metrics.Summary(ctx)
			fmt.Fprintln(out, formatter.Header("Program status"))
			fmt.Fprintf(out, "  %d objectives: %s completed, %s in progress, %s overdue, %s on hold, %d not started\n",
				sum.TotalProjects,
				formatter.StyleGreen.Render(fmt.Sprintf("%d", sum.Completed)),
				formatter.StyleBlue.Render(fmt.Sprintf("%d", sum.InProgress)),
				formatter.StyleRed.Render(fmt.Sprintf("%d", sum.Overdue)),
				formatter.StyleYellow.Render(fmt.Sprintf("%d", sum.OnHold)),
				sum.NotStarted)
			fmt.Fprintf(out, "  overall %s  %d/%d subtasks done\n",
				formatter.RenderProgress(sum.AvgCompletion, 20),
				sum.SubtasksDone, sum.SubtasksTotal)
			fmt.Fprintf(out, "  budget %s of %s spent\n",
				formatter.Money(sum.TotalSpent), formatter.Money(sum.TotalBudget))
			if over := sum.Overrun(); over > 0 {
				fmt.Fprintf(out, "  %s\n", formatter.StyleRed.Render(formatter.Money(over)+" over budget"))
			}

			deadlines := app.Metrics.UpcomingDeadlines(ctx, upcoming)
			if len(deadlines) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.Header("Upcoming deadlines"))
				var rows [][]string
				for _, d := range deadlines {
					rows = append(rows, []string{
						formatter.ShortDate(d.DueDate),
						formatter.UrgencyStyle(d.Urgency).Render(string(d.Urgency)),
						formatter.Truncate(d.SubtaskName, 40),
						d.Owner,
					})
				}
				fmt.Fprint(out, formatter.RenderTable(
					[]string{"DUE", "STATE", "SUBTASK", "OWNER"}, rows))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&upcoming, "upcoming", 10, "How many upcoming deadlines to show")

	return cmd
}
