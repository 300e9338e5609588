// Package dashboard shows the overall and per-category totals
package dashboard

import (
	"io"

	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/render"
	"fjacquet/event-budget/internal/store"
	"fjacquet/event-budget/internal/totals"

	"github.com/spf13/cobra"
)

// Cmd represents the dashboard command
var Cmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show overall totals, progress and per-category balances",
	Long: `Show the overall estimated, paid and pending amounts with the completion
progress, followed by one line per category and a line for the guests.`,
	Args: cobra.NoArgs,
	RunE: dashboardFunc,
}

func dashboardFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer(cmd.Context())
	if err != nil {
		return err
	}
	return Render(cmd.OutOrStdout(), c.GetStore())
}

// Render writes the dashboard for the current records to out.
func Render(out io.Writer, records store.Reader) error {
	_, err := io.WriteString(out, render.Dashboard(totals.Summarize(records.Snapshot())))
	return err
}
