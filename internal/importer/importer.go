package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gradebook/internal/domain"
	apperrors "gradebook/internal/errors"
	"gradebook/internal/store"
)

// SkippedRow records a file row that could not be turned into a Record.
type SkippedRow struct {
	Line   int      // 1-based line number in the source file
	Fields []string // raw row content
	Reason string
}

// Result is the outcome of one file import: the populated record store plus
// everything the interactive session reports back to the user.
type Result struct {
	Source  string   // path the data was read from
	Header  []string // first row, echoed for display, never parsed as data
	Store   *store.Store
	Skipped []SkippedRow
}

func (r *Result) skip(line int, fields []string, reason string) {
	r.Skipped = append(r.Skipped, SkippedRow{Line: line, Fields: fields, Reason: reason})
}

// FileImporter loads record stores from data files.
type FileImporter struct {
	logger *slog.Logger
}

// NewFileImporter creates a new file importer
func NewFileImporter(logger *slog.Logger) *FileImporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileImporter{logger: logger}
}

// LoadFile imports the file at path, routing by extension: .xlsx and .xls go
// through the Excel reader, everything else is read as CSV.
func (i *FileImporter) LoadFile(ctx context.Context, path string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return i.LoadXLSX(ctx, path)
	default:
		return i.LoadCSV(ctx, path)
	}
}

// validateDataFile checks that path names a readable regular file before an
// import touches it. Excel owner files (~$ prefix) are rejected.
func (i *FileImporter) validateDataFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return apperrors.NewStorageError(fmt.Sprintf("the file '%s' was not found", path), err)
	}
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to stat %s", path), err)
	}
	if info.IsDir() {
		return apperrors.NewStorageError(fmt.Sprintf("%s is a directory, not a file", path), nil)
	}
	if strings.HasPrefix(filepath.Base(path), "~$") {
		return apperrors.NewStorageError(fmt.Sprintf("%s is a temporary Excel file", path), nil)
	}
	return nil
}

// appendRow validates one data row and adds it to the result store. Rows
// that cannot produce a valid record are recorded as skipped, never fatal.
// Blank rows are dropped silently. Columns past the second are ignored, so
// a previously exported Name,Marks,Grade report reads back cleanly.
func (i *FileImporter) appendRow(ctx context.Context, res *Result, line int, fields []string) {
	if isBlankRow(fields) {
		return
	}

	if len(fields) < 2 {
		res.skip(line, fields, "missing mark column")
		i.logSkip(ctx, line, "missing mark column")
		return
	}

	name := strings.TrimSpace(fields[0])
	markText := strings.TrimSpace(fields[1])

	mark, err := strconv.Atoi(markText)
	if err != nil {
		reason := fmt.Sprintf("mark %q is not an integer", markText)
		res.skip(line, fields, reason)
		i.logSkip(ctx, line, reason)
		return
	}

	record := domain.Record{Name: name, Mark: mark}
	if err := record.Validate(); err != nil {
		res.skip(line, fields, err.Error())
		i.logSkip(ctx, line, err.Error())
		return
	}

	res.Store.Set(record.Name, record.Mark)
}

func (i *FileImporter) logSkip(ctx context.Context, line int, reason string) {
	i.logger.WarnContext(ctx, "skipping invalid row",
		slog.Int("line", line),
		slog.String("reason", reason))
}

func isBlankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
