package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the tracked data as JSON",
		Long:  "Write the whole tracked document to a file, or to stdout when no destination is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 1 {
				outPath = args[0]
			}
			if outPath == "" {
				return app.Data.ExportTo(ctx, cmd.OutOrStdout())
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer f.Close()

			if err := app.Data.ExportTo(ctx, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination file (default stdout)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the tracked data with a JSON document",
		Long: `Validate and import a JSON document, replacing all tracked data.
The document is checked in full before anything is replaced; a failed
import leaves the current data untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			n, err := app.Data.ImportFrom(context.Background(), f)
			if err != nil {
				return fmt.Errorf("import failed, data unchanged: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d objectives from %s\n", n, args[0])
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in Q1 objectives",
		Long:  "Discard all tracked data and restore the 8 built-in Q1 2026 objectives.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprint(cmd.OutOrStdout(), "This discards all tracked changes. Type 'reset' to confirm: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, _ := reader.ReadString('\n')
				if strings.TrimSpace(line) != "reset" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := app.Data.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Restored the 8 built-in objectives.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
