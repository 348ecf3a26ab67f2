package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(app)
		},
	}
}

// runUI starts the full-screen TUI with the document watcher armed, so
// edits made to the data file from another terminal show up live.
func runUI(app *App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes <-chan struct{}
	if app.Store != nil {
		if ch, err := app.Store.Watch(ctx); err == nil {
			changes = ch
		}
	}

	p := tea.NewProgram(newAppModelWithWatch(app, changes), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
