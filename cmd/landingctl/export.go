package main

import (
	"fmt"
	"time"

	"donna_landing_go/config"
	"donna_landing_go/db"
	"donna_landing_go/models"
	"donna_landing_go/services"

	"github.com/spf13/cobra"
)

func exportContactsCmd() *cobra.Command {
	var (
		out    string
		status string
		since  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "export-contacts",
		Short: "Write contact messages to an .xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" && !models.IsValidContactStatus(status) {
				return fmt.Errorf("%w: %q", services.ErrInvalidContactStatus, status)
			}

			cfg := config.Load()
			if err := db.Initialize(db.Options{
				Path:        cfg.DBPath,
				TursoURL:    cfg.TursoDatabaseURL,
				TursoToken:  cfg.TursoAuthToken,
				Environment: "production",
			}); err != nil {
				return err
			}
			defer db.Close()

			filter := services.ContactFilter{Status: status}
			if since > 0 {
				filter.Since = time.Now().UTC().Add(-since)
			}
			messages, err := services.ListContactMessages(db.DB, filter)
			if err != nil {
				return err
			}

			f, err := services.ExportContactMessages(messages)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := f.SaveAs(out); err != nil {
				return fmt.Errorf("failed to save %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d contact messages to %s\n", len(messages), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "contacts.xlsx", "Output workbook path")
	cmd.Flags().StringVar(&status, "status", "", "Only export messages with this status (new, answered, discarded)")
	cmd.Flags().DurationVar(&since, "since", 0, "Only export messages received within this duration, e.g. 720h")
	return cmd
}
