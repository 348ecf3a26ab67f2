package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calyxcontainers/supplytrack/internal/cli/formatter"
	"github.com/calyxcontainers/supplytrack/internal/domain"
)

func newListCmd(app *App) *cobra.Command {
	var owner string
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked objectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := domain.Today()
			projects := app.Projects.List(context.Background())

			var rows [][]string
			for _, p := range projects {
				if owner != "" && p.Owner != owner {
					continue
				}
				effective := p.EffectiveStatus(today)
				if status != "" && string(effective) != status && string(p.Status) != status {
					continue
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", p.ObjectiveNumber),
					formatter.Truncate(p.Name, 42),
					formatter.StatusPill(effective),
					formatter.PriorityBadge(p.Priority),
					p.Owner,
					formatter.RenderProgress(p.CompletionPercent(), 10),
					formatter.ShortDate(p.DueDate),
				})
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No objectives match.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"#", "OBJECTIVE", "STATUS", "PRIORITY", "OWNER", "PROGRESS", "DUE"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Only objectives led by this owner")
	cmd.Flags().StringVar(&status, "status", "", `Only objectives with this status (e.g. "In Progress", "Overdue")`)

	return cmd
}
