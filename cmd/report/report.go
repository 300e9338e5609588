// Package report prints the per-category budget breakdown
package report

import (
	"fmt"

	"fjacquet/event-budget/cmd/root"

	"github.com/spf13/cobra"
)

var (
	format string
	output string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Print the per-category breakdown as a table, CSV or JSON",
	Long: `Print one row per category with the estimated, paid-so-far and pending
amounts, a row for the guests and the overall totals.`,
	Args: cobra.NoArgs,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, csv or json (default from config)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to this file instead of stdout")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer(cmd.Context())
	if err != nil {
		return err
	}
	f := format
	if f == "" {
		f = c.GetConfig().Report.Format
	}

	writer := c.GetReportWriter()
	snapshot := c.GetStore().Snapshot()
	if output == "" {
		return writer.Write(cmd.OutOrStdout(), snapshot, f)
	}
	if err := writer.WriteFile(snapshot, f, output); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
	return err
}
