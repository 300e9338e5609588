// Package item manages the budget line items
package item

import (
	"context"
	"fmt"
	"io"

	"fjacquet/event-budget/cmd/common"
	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/recorderror"
	"fjacquet/event-budget/internal/render"
	"fjacquet/event-budget/internal/store"
	"fjacquet/event-budget/internal/totals"

	"github.com/spf13/cobra"
)

// Cmd represents the item command
var Cmd = &cobra.Command{
	Use:   "item",
	Short: "Add, list, update and remove budget items",
	Long:  `Manage the line items of the budget. Each item belongs to one category.`,
}

type addOptions struct {
	name    string
	cost    string
	deposit string
	paid    string
	notes   string
}

var addOpts addOptions

var addCmd = &cobra.Command{
	Use:   "add <category>",
	Short: "Add an item to a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer(cmd.Context())
		if err != nil {
			return err
		}
		return addItem(cmd.Context(), c.GetStore(), cmd.OutOrStdout(), models.CategoryID(args[0]), addOpts)
	},
}

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List items, optionally of a single category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer(cmd.Context())
		if err != nil {
			return err
		}
		var category models.CategoryID
		if len(args) == 1 {
			category = models.CategoryID(args[0])
		}
		return listItems(cmd.OutOrStdout(), c.GetStore(), category)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update the given fields of an item",
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
		return updateItem(cmd.Context(), c.GetStore(), cmd.OutOrStdout(), args[0], changes)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark an item as completed, or not completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer(cmd.Context())
		if err != nil {
			return err
		}
		return toggleItem(cmd.Context(), c.GetStore(), cmd.OutOrStdout(), args[0])
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer(cmd.Context())
		if err != nil {
			return err
		}
		return deleteItem(cmd.Context(), c.GetStore(), cmd.OutOrStdout(), args[0])
	},
}

func init() {
	addCmd.Flags().StringVarP(&addOpts.name, "name", "n", "", "Item name")
	addCmd.Flags().StringVarP(&addOpts.cost, "cost", "c", "", "Total expected cost")
	addCmd.Flags().StringVar(&addOpts.deposit, "deposit", "", "Amount paid as deposit")
	addCmd.Flags().StringVarP(&addOpts.paid, "paid", "p", "", "Amount paid after the deposit")
	addCmd.Flags().StringVar(&addOpts.notes, "notes", "", "Free-text notes")
	_ = addCmd.MarkFlagRequired("name")

	updateCmd.Flags().StringP("name", "n", "", "Item name")
	updateCmd.Flags().StringP("cost", "c", "", "Total expected cost")
	updateCmd.Flags().String("deposit", "", "Amount paid as deposit")
	updateCmd.Flags().StringP("paid", "p", "", "Amount paid after the deposit")
	updateCmd.Flags().String("notes", "", "Free-text notes")
	updateCmd.Flags().Bool("completed", false, "Whether the item is completed")

	Cmd.AddCommand(addCmd, listCmd, updateCmd, toggleCmd, deleteCmd)
}

func addItem(ctx context.Context, s *store.RecordStore, out io.Writer, category models.CategoryID, opts addOptions) error {
	draft, err := models.NewItemBuilder().
		InCategory(category).
		WithName(opts.name).
		WithAmounts(opts.cost, opts.deposit, opts.paid).
		WithNotes(opts.notes).
		Build()
	if err != nil {
		return err
	}
	item, err := s.AddItem(ctx, draft)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Added item %s (%s) to %s\n", item.ID, item.Name, item.CategoryID)
	return err
}

func listItems(out io.Writer, s *store.RecordStore, category models.CategoryID) error {
	if category == "" {
		_, err := io.WriteString(out, render.Items(s.Items()))
		return err
	}

	c, ok := models.LookupCategory(category)
	if !ok {
		return &recorderror.ValidationError{Kind: recorderror.KindCategory, Field: "id", Reason: fmt.Sprintf("'%s' is not a configured category", category)}
	}
	items := s.ItemsInCategory(category)
	if _, err := io.WriteString(out, render.CategoryHeader(c, totals.ForCategory(category, items))); err != nil {
		return err
	}
	_, err := io.WriteString(out, render.Items(items))
	return err
}

func changesFromFlags(cmd *cobra.Command) (models.ItemChanges, error) {
	var changes models.ItemChanges
	var err error
	if changes.Name, err = common.ChangedString(cmd, "name"); err != nil {
		return changes, err
	}
	if changes.Notes, err = common.ChangedString(cmd, "notes"); err != nil {
		return changes, err
	}
	if changes.Cost, err = common.ChangedAmount(cmd, "cost"); err != nil {
		return changes, err
	}
	if changes.Deposit, err = common.ChangedAmount(cmd, "deposit"); err != nil {
		return changes, err
	}
	if changes.Paid, err = common.ChangedAmount(cmd, "paid"); err != nil {
		return changes, err
	}
	if changes.Completed, err = common.ChangedBool(cmd, "completed"); err != nil {
		return changes, err
	}
	return changes, nil
}

func updateItem(ctx context.Context, s *store.RecordStore, out io.Writer, id string, changes models.ItemChanges) error {
	if changes.IsEmpty() {
		return fmt.Errorf("nothing to update: pass at least one of --name, --cost, --deposit, --paid, --notes, --completed")
	}
	item, err := s.UpdateItem(ctx, id, changes)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Updated item %s, balance %s\n", item.ID, item.Balance())
	return err
}

func toggleItem(ctx context.Context, s *store.RecordStore, out io.Writer, id string) error {
	item, err := s.ToggleItem(ctx, id)
	if err != nil {
		return err
	}
	state := "not completed"
	if item.Completed {
		state = "completed"
	}
	_, err = fmt.Fprintf(out, "Item %s marked as %s\n", item.ID, state)
	return err
}

func deleteItem(ctx context.Context, s *store.RecordStore, out io.Writer, id string) error {
	if err := s.DeleteItem(ctx, id); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "Deleted item %s\n", id)
	return err
}
