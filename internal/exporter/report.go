package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gradebook/internal/config"
	"gradebook/internal/domain"
	apperrors "gradebook/internal/errors"
	"gradebook/internal/grading"
	"gradebook/internal/stats"
	"gradebook/internal/store"
)

// Report CSV column headers, also accepted as the header row on re-import.
var reportHeaders = []string{"Name", "Marks", "Grade"}

// gradeNA fills the grade column when a name has no assigned grade.
const gradeNA = domain.Grade("N/A")

// GradeReport bundles everything one analysis pass produced, ready to
// export.
type GradeReport struct {
	Records      *store.Store
	Grades       map[string]domain.Grade
	Summary      stats.Summary
	Distribution map[domain.Grade]int
	PassFail     grading.PassFailSummary
}

// reportRecord is one student line in the JSON export.
type reportRecord struct {
	Name  string       `json:"name"`
	Mark  int          `json:"mark"`
	Grade domain.Grade `json:"grade"`
}

// ReportExporter writes grade reports to disk in CSV or JSON form.
type ReportExporter struct {
	csvWriter *CSVWriter
	logger    *slog.Logger
}

// NewReportExporter creates a new report exporter
func NewReportExporter(paths *config.Paths, logger *slog.Logger) *ReportExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportExporter{csvWriter: NewCSVWriter(paths), logger: logger}
}

// NormalizeFilename appends the .csv suffix when the user-typed name carries
// no recognized report extension. Names ending in .json select JSON export.
func (e *ReportExporter) NormalizeFilename(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".json":
		return name
	default:
		return name + ".csv"
	}
}

// Export writes the report to path, choosing the format by extension: .json
// produces the summary document, anything else the Name,Marks,Grade table.
func (e *ReportExporter) Export(ctx context.Context, path string, report GradeReport) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return e.ExportJSON(ctx, path, report)
	}
	return e.ExportCSV(ctx, path, report)
}

// ExportCSV writes one row per student, sorted by name ascending.
func (e *ReportExporter) ExportCSV(ctx context.Context, path string, report GradeReport) error {
	rows := make([][]string, 0, report.Records.Len())
	for _, rec := range reportRecords(report) {
		rows = append(rows, []string{rec.Name, formatInt(rec.Mark), string(rec.Grade)})
	}

	if err := e.csvWriter.WriteSimpleCSV(path, reportHeaders, rows); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("could not write to file '%s'", path), err)
	}

	e.logger.InfoContext(ctx, "exported grade report CSV",
		slog.String("path", path),
		slog.Int("students", len(rows)))
	return nil
}

// ExportJSON writes the full summary document: records, statistics, grade
// distribution and the pass/fail partition, with a generation timestamp.
func (e *ReportExporter) ExportJSON(ctx context.Context, path string, report GradeReport) error {
	records := reportRecords(report)

	doc := map[string]interface{}{
		"records":      records,
		"summary":      report.Summary,
		"distribution": report.Distribution,
		"pass_fail":    report.PassFail,
		"count":        len(records),
		"generated_at": time.Now().Format(time.RFC3339),
	}

	fullPath := e.csvWriter.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("could not write to file '%s'", path), err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("could not write to file '%s'", path), err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("could not write to file '%s'", path), err)
	}

	e.logger.InfoContext(ctx, "exported grade summary JSON",
		slog.String("path", fullPath),
		slog.Int("students", len(records)))
	return nil
}

// reportRecords flattens the report into name-sorted rows, filling the grade
// column with N/A for any name missing from the grade map.
func reportRecords(report GradeReport) []reportRecord {
	names := report.Records.SortedNames()
	records := make([]reportRecord, 0, len(names))
	for _, name := range names {
		mark, _ := report.Records.Get(name)
		grade, ok := report.Grades[name]
		if !ok {
			grade = gradeNA
		}
		records = append(records, reportRecord{Name: name, Mark: mark, Grade: grade})
	}
	return records
}
