package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Giorgio68/morning-greetings/delivery"
	"github.com/Giorgio68/morning-greetings/internal/clifmt"
	"github.com/Giorgio68/morning-greetings/internal/pathutil"
)

func newJournalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "List past delivery attempts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := pathutil.ResolveStateFile(viper.GetString("state_dir"), "journal.jsonl")
			journal := delivery.NewJournal(path)

			records, err := journal.Records()
			if err != nil {
				return err
			}

			rows := make([]clifmt.NameDetailRow, 0, len(records))
			for _, record := range records {
				detail := fmt.Sprintf("status=%s  at=%s", record.Status, record.At.Format(time.RFC3339))
				if record.Error != "" {
					detail += "  error=" + record.Error
				}
				rows = append(rows, clifmt.NameDetailRow{Name: record.Email, Detail: detail})
			}

			clifmt.PrintNameDetailTable(cmd.OutOrStdout(), clifmt.NameDetailTableOptions{
				Title:        "Delivery attempts",
				Rows:         rows,
				EmptyText:    "No deliveries have been journaled.",
				NameHeader:   "EMAIL",
				DetailHeader: "DETAILS",
			})
			return nil
		},
	}
}
