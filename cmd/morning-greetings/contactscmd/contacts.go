// Package contactscmd inspects and edits an imported contact list.
package contactscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Giorgio68/morning-greetings/contacts"
	"github.com/Giorgio68/morning-greetings/internal/clifmt"
	"github.com/Giorgio68/morning-greetings/internal/importutil"
	"github.com/Giorgio68/morning-greetings/internal/logutil"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Inspect and edit the imported contact list",
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newSetCmd())
	return cmd
}

func storeFromCommand(cmd *cobra.Command) (*contacts.Store, error) {
	logger, err := logutil.LoggerFromViper()
	if err != nil {
		return nil, err
	}
	modes, inputs, err := importutil.FromCommand(cmd)
	if err != nil {
		return nil, err
	}
	return contacts.BuildStore(logger, modes, inputs)
}

func printStore(cmd *cobra.Command, store *contacts.Store) {
	list := store.List()
	rows := make([]clifmt.NameDetailRow, 0, len(list))
	for _, contact := range list {
		rows = append(rows, clifmt.NameDetailRow{
			Name:   contact.Name,
			Detail: fmt.Sprintf("email=%s  preferred_time=%s", contact.Email, contact.PreferredTime),
		})
	}

	clifmt.PrintNameDetailTable(cmd.OutOrStdout(), clifmt.NameDetailTableOptions{
		Title:        "Contacts",
		Rows:         rows,
		EmptyText:    "No contacts were imported.",
		NameHeader:   "NAME",
		DetailHeader: "DETAILS",
	})
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the imported contacts in insertion order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storeFromCommand(cmd)
			if err != nil {
				return err
			}
			printStore(cmd, store)
			return nil
		},
	}
	importutil.RegisterFlags(cmd)
	return cmd
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME EMAIL [HHMM]",
		Short: "Add a contact to the imported list",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFromCommand(cmd)
			if err != nil {
				return err
			}
			preferredTime := ""
			if len(args) == 3 {
				preferredTime = args[2]
			}
			if err := store.Add(args[0], args[1], preferredTime); err != nil {
				return err
			}
			printStore(cmd, store)
			return nil
		},
	}
	importutil.RegisterFlags(cmd)
	return cmd
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a contact from the imported list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFromCommand(cmd)
			if err != nil {
				return err
			}
			if err := store.Remove(args[0]); err != nil {
				return err
			}
			printStore(cmd, store)
			return nil
		},
	}
	importutil.RegisterFlags(cmd)
	return cmd
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set NAME",
		Short: "Update fields of an imported contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFromCommand(cmd)
			if err != nil {
				return err
			}

			update := contacts.Update{}
			update.Name, _ = cmd.Flags().GetString("rename")
			update.Email, _ = cmd.Flags().GetString("email")
			update.PreferredTime, _ = cmd.Flags().GetString("time")

			if err := store.Modify(args[0], update); err != nil {
				return err
			}
			printStore(cmd, store)
			return nil
		},
	}
	importutil.RegisterFlags(cmd)
	cmd.Flags().String("rename", "", "New name for the contact.")
	cmd.Flags().String("email", "", "New email address.")
	cmd.Flags().String("time", "", "New preferred send time (HHMM).")
	return cmd
}
