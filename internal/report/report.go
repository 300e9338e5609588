// Package report writes the per-category breakdown in tabular, CSV or JSON
// form.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/event-budget/internal/fileutils"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/recorderror"
	"fjacquet/event-budget/internal/render"
	"fjacquet/event-budget/internal/totals"

	"github.com/gocarina/gocsv"
)

// Supported report formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// Formats lists the supported report formats.
var Formats = []string{FormatTable, FormatCSV, FormatJSON}

// Report is the breakdown of one snapshot with its overall totals.
type Report struct {
	Rows    []totals.BreakdownRow `json:"rows"`
	Overall totals.OverallTotals  `json:"overall"`
}

// New builds the report for a snapshot.
func New(snapshot totals.Snapshot) Report {
	return Report{
		Rows:    totals.Breakdown(snapshot.Items, snapshot.Guests),
		Overall: totals.Overall(snapshot.Items, snapshot.Guests),
	}
}

// Writer renders reports.
type Writer struct {
	logger    logging.Logger
	delimiter rune
}

// NewWriter creates a Writer using delimiter for CSV output.
func NewWriter(logger logging.Logger, delimiter rune) *Writer {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Writer{
		logger:    logger.WithField(logging.FieldComponent, "ReportWriter"),
		delimiter: delimiter,
	}
}

// Write renders the report for snapshot to out.
func (w *Writer) Write(out io.Writer, snapshot totals.Snapshot, format string) error {
	r := New(snapshot)
	w.logger.Debug("Writing report",
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: logging.FieldCount, Value: len(r.Rows)})

	switch strings.ToLower(format) {
	case FormatTable:
		_, err := io.WriteString(out, render.Breakdown(r.Rows, r.Overall))
		return err
	case FormatCSV:
		return w.writeCSV(out, r)
	case FormatJSON:
		return w.writeJSON(out, r)
	default:
		return &recorderror.UnsupportedFormatError{Format: format, Supported: Formats}
	}
}

// WriteFile renders the report into path, replacing any existing file.
func (w *Writer) WriteFile(snapshot totals.Snapshot, format, path string) error {
	var buf bytes.Buffer
	if err := w.Write(&buf, snapshot, format); err != nil {
		return err
	}
	if err := fileutils.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		w.logger.WithError(err).Error("Failed to write report",
			logging.Field{Key: logging.FieldOutputFile, Value: path})
		return fmt.Errorf("error writing report: %w", err)
	}
	w.logger.Info("Report written",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldFormat, Value: format})
	return nil
}

// writeCSV emits the breakdown rows followed by a total row.
func (w *Writer) writeCSV(out io.Writer, r Report) error {
	rows := make([]totals.BreakdownRow, 0, len(r.Rows)+1)
	rows = append(rows, r.Rows...)
	rows = append(rows, totals.BreakdownRow{
		Label:     "Total",
		Estimated: r.Overall.TotalEstimated,
		PaidSoFar: r.Overall.TotalPaid,
		Pending:   r.Overall.TotalPending,
	})

	csvWriter := csv.NewWriter(out)
	csvWriter.Comma = w.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		w.logger.WithError(err).Error("Failed to write CSV report")
		return fmt.Errorf("error writing CSV report: %w", err)
	}
	return nil
}

func (w *Writer) writeJSON(out io.Writer, r Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("error encoding JSON report: %w", err)
	}
	return nil
}
