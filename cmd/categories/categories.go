// Package categories lists the configured budget categories
package categories

import (
	"io"

	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/render"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the budget categories",
	Long:  `List the budget categories in the order they are shown in dashboards and reports.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := io.WriteString(cmd.OutOrStdout(), render.Categories(models.Categories()))
		return err
	},
}
