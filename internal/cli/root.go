package cli

import (
	"github.com/spf13/cobra"

	"github.com/calyxcontainers/supplytrack/internal/config"
	"github.com/calyxcontainers/supplytrack/internal/service"
	"github.com/calyxcontainers/supplytrack/internal/store"
)

// App holds references to the service interfaces used by CLI commands and
// TUI views.
type App struct {
	Projects service.ProjectService
	Metrics  service.MetricsService
	Data     service.DataService

	Store  *store.Store
	Config *config.Config

	// IsInteractive reports whether stdin is a terminal; the bare root
	// command only opens the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "supplytrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "supplytrack",
		Short: "Q1 supply chain objective tracker",
		Long: `Terminal dashboard for the quarterly supply chain objectives:
flexpack pricing, material purchasing, vendor qualification, and the
rest of the tracked program. Run without arguments to open the
interactive dashboard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return cmd.Help()
			}
			return runUI(app)
		},
	}

	root.AddCommand(
		newUICmd(app),
		newListCmd(app),
		newShowCmd(app),
		newStatusCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newResetCmd(app),
	)

	return root
}
