// Package export produces the backup document combining both collections
// with a generation timestamp.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fjacquet/event-budget/internal/fileutils"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/recorderror"
	"fjacquet/event-budget/internal/totals"

	"gopkg.in/yaml.v3"
)

// Supported export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Document is the exported backup.
type Document struct {
	Items      []models.LineItem `json:"items" yaml:"items"`
	Guests     []models.Guest    `json:"guests" yaml:"guests"`
	ExportDate string            `json:"exportDate" yaml:"exportDate"`
}

// Generator renders export documents.
type Generator struct {
	logger logging.Logger
	now    func() time.Time
}

// NewGenerator creates a Generator.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{
		logger: logger.WithField(logging.FieldComponent, "ExportGenerator"),
		now:    time.Now,
	}
}

// Build assembles the document for a snapshot, stamped with the current time.
func (g *Generator) Build(snapshot totals.Snapshot) Document {
	doc := Document{
		Items:      snapshot.Items,
		Guests:     snapshot.Guests,
		ExportDate: g.now().UTC().Format(TimestampLayout),
	}
	if doc.Items == nil {
		doc.Items = []models.LineItem{}
	}
	if doc.Guests == nil {
		doc.Guests = []models.Guest{}
	}
	return doc
}

// Generate renders the snapshot in the given format.
func (g *Generator) Generate(snapshot totals.Snapshot, format string) ([]byte, error) {
	doc := g.Build(snapshot)
	switch strings.ToLower(format) {
	case FormatJSON:
		return g.generateJSON(doc)
	case FormatYAML:
		return g.generateYAML(doc)
	default:
		return nil, &recorderror.UnsupportedFormatError{Format: format, Supported: []string{FormatJSON, FormatYAML}}
	}
}

// WriteFile renders the snapshot and writes it to path.
func (g *Generator) WriteFile(snapshot totals.Snapshot, format, path string) error {
	data, err := g.Generate(snapshot, format)
	if err != nil {
		return err
	}
	if err := fileutils.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	g.logger.Info("Export written",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: "items", Value: len(snapshot.Items)},
		logging.Field{Key: "guests", Value: len(snapshot.Guests)})
	return nil
}

func (g *Generator) generateJSON(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON export")
		return nil, fmt.Errorf("failed to marshal JSON export: %w", err)
	}
	return append(data, '\n'), nil
}

func (g *Generator) generateYAML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML export")
		return nil, fmt.Errorf("failed to marshal YAML export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML export: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName appends the extension matching format to base.
func FileName(base, format string) string {
	ext := "." + strings.ToLower(format)
	if strings.HasSuffix(base, ext) {
		return base
	}
	return base + ext
}
