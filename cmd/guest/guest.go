// Package guest manages the guest list and contributions
package guest

import (
	"context"
	"fmt"
	"io"

	"fjacquet/event-budget/cmd/common"
	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/render"
	"fjacquet/event-budget/internal/store"
	"fjacquet/event-budget/internal/totals"

	"github.com/spf13/cobra"
)

// Cmd represents the guest command
var Cmd = &cobra.Command{
	Use:   "guest",
	Short: "Add, list, update and remove guests",
	Long:  `Manage the guest list together with the contribution each guest owes.`,
}

type addOptions struct {
	name      string
	confirmed bool
	due       string
	paid      string
	table     string
	relation  string
	notes     string
}

var addOpts addOptions

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a guest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer(cmd.Context())
		if err != nil {
			return err
		}
		return addGuest(cmd.Context(), c.GetStore(), cmd.OutOrStdout(), addOpts)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List guests with their balances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer(cmd.Context())
		if err != nil {
			return err
		}
		return listGuests(cmd.OutOrStdout(), c.GetStore())
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update the given fields of a guest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		changes, err := changesFromFlags(cmd)
		if err != nil {
			return err
		}
		c, err := root.GetContainer(cmd.Context())
		if err != nil {
			return err
		}
		return updateGuest(cmd.Context(), c.GetStore(), cmd.OutOrStdout(), args[0], changes)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a guest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.GetStore().DeleteGuest(cmd.Context(), args[0]); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted guest %s\n", args[0])
		return err
	},
}

func init() {
	addCmd.Flags().StringVarP(&addOpts.name, "name", "n", "", "Guest name")
	addCmd.Flags().BoolVar(&addOpts.confirmed, "confirmed", false, "Attendance is confirmed")
	addCmd.Flags().StringVar(&addOpts.due, "due", "", "Contribution expected from the guest")
	addCmd.Flags().StringVarP(&addOpts.paid, "paid", "p", "", "Contribution received so far")
	addCmd.Flags().StringVarP(&addOpts.table, "table", "t", "", "Table assignment")
	addCmd.Flags().StringVarP(&addOpts.relation, "relation", "r", "", "Relation tag (family, friends, ...)")
	addCmd.Flags().StringVar(&addOpts.notes, "notes", "", "Free-text notes")
	_ = addCmd.MarkFlagRequired("name")

	updateCmd.Flags().StringP("name", "n", "", "Guest name")
	updateCmd.Flags().Bool("confirmed", false, "Attendance is confirmed")
	updateCmd.Flags().String("due", "", "Contribution expected from the guest")
	updateCmd.Flags().StringP("paid", "p", "", "Contribution received so far")
	updateCmd.Flags().StringP("table", "t", "", "Table assignment")
	updateCmd.Flags().StringP("relation", "r", "", "Relation tag")
	updateCmd.Flags().String("notes", "", "Free-text notes")

	Cmd.AddCommand(addCmd, listCmd, updateCmd, deleteCmd)
}

func addGuest(ctx context.Context, s *store.RecordStore, out io.Writer, opts addOptions) error {
	b := models.NewGuestBuilder().
		WithName(opts.name).
		WithAmounts(opts.due, opts.paid).
		WithSeating(opts.table, opts.relation).
		WithNotes(opts.notes)
	if opts.confirmed {
		b = b.AsConfirmed()
	}
	draft, err := b.Build()
	if err != nil {
		return err
	}
	g, err := s.AddGuest(ctx, draft)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Added guest %s (%s)\n", g.ID, g.Name)
	return err
}

func listGuests(out io.Writer, s *store.RecordStore) error {
	guests := s.Guests()
	_, err := io.WriteString(out, render.Guests(guests, totals.SummarizeGuests(guests)))
	return err
}

func changesFromFlags(cmd *cobra.Command) (models.GuestChanges, error) {
	var changes models.GuestChanges
	var err error
	for name, dst := range map[string]**string{
		"name":     &changes.Name,
		"table":    &changes.Table,
		"relation": &changes.Relation,
		"notes":    &changes.Notes,
	} {
		if *dst, err = common.ChangedString(cmd, name); err != nil {
			return changes, err
		}
	}
	if changes.AmountDue, err = common.ChangedAmount(cmd, "due"); err != nil {
		return changes, err
	}
	if changes.AmountPaid, err = common.ChangedAmount(cmd, "paid"); err != nil {
		return changes, err
	}
	if changes.Confirmed, err = common.ChangedBool(cmd, "confirmed"); err != nil {
		return changes, err
	}
	return changes, nil
}

func updateGuest(ctx context.Context, s *store.RecordStore, out io.Writer, id string, changes models.GuestChanges) error {
	if changes.IsEmpty() {
		return fmt.Errorf("nothing to update: pass at least one of --name, --confirmed, --due, --paid, --table, --relation, --notes")
	}
	g, err := s.UpdateGuest(ctx, id, changes)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Updated guest %s, balance %s\n", g.ID, g.Balance())
	return err
}
