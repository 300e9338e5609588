// Package export writes the backup document of all records
package export

import (
	"fmt"

	"fjacquet/event-budget/cmd/root"
	exporter "fjacquet/event-budget/internal/export"

	"github.com/spf13/cobra"
)

var (
	format string
	output string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all items and guests to a JSON or YAML backup file",
	Long: `Write every item and guest, together with the export date, to a backup
file. The file name defaults to the configured base name plus the format
extension.`,
	Args: cobra.NoArgs,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml (default from config)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default <export.file_name>.<format>)")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer(cmd.Context())
	if err != nil {
		return err
	}
	cfg := c.GetConfig()

	f := format
	if f == "" {
		f = cfg.Export.Format
	}
	path := output
	if path == "" {
		path = exporter.FileName(cfg.Export.FileName, f)
	}

	snapshot := c.GetStore().Snapshot()
	if err := c.GetExporter().WriteFile(snapshot, f, path); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items and %d guests to %s\n",
		len(snapshot.Items), len(snapshot.Guests), path)
	return err
}
