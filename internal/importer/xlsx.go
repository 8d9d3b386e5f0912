package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "gradebook/internal/errors"
	"gradebook/internal/store"
)

// Sheet names that mark the sheet holding student data. The first sheet is
// used when none match.
var preferredSheets = []string{"Marks", "Grades"}

// LoadXLSX reads student records from an Excel workbook. Rows follow the
// same rules as the CSV import: first row is a header, data rows are
// name,mark.
func (i *FileImporter) LoadXLSX(ctx context.Context, path string) (*Result, error) {
	if err := i.validateDataFile(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	sheet := pickSheet(f.GetSheetList())
	if sheet == "" {
		return nil, apperrors.NewParsingError(fmt.Sprintf("workbook %s has no sheets", path), nil)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %s", sheet), err)
	}

	res := &Result{Source: path, Store: store.New()}
	for n, fields := range rows {
		line := n + 1
		if line == 1 {
			res.Header = fields
			continue
		}
		i.appendRow(ctx, res, line, fields)
	}

	i.logger.InfoContext(ctx, "loaded Excel workbook",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("records", res.Store.Len()),
		slog.Int("skipped", len(res.Skipped)))

	return res, nil
}

// pickSheet prefers a sheet named for the data it holds, then falls back to
// the first sheet in the workbook.
func pickSheet(sheets []string) string {
	for _, name := range sheets {
		for _, want := range preferredSheets {
			if strings.EqualFold(strings.TrimSpace(name), want) {
				return name
			}
		}
	}
	if len(sheets) > 0 {
		return sheets[0]
	}
	return ""
}
