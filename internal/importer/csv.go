package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	apperrors "gradebook/internal/errors"
	"gradebook/internal/store"
)

// LoadCSV reads student records from a CSV file. The first row is a header
// and is echoed for display only; data rows are name,mark. Malformed rows
// are skipped with a warning and the import carries on.
func (i *FileImporter) LoadCSV(ctx context.Context, path string) (*Result, error) {
	if err := i.validateDataFile(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // rows are validated individually
	reader.TrimLeadingSpace = true

	res := &Result{Source: path, Store: store.New()}

	line := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.skip(line, fields, err.Error())
			i.logSkip(ctx, line, err.Error())
			continue
		}
		if line == 1 {
			// exports carry a UTF-8 BOM for Excel; keep it out of the echo
			fields[0] = strings.TrimPrefix(fields[0], "\uFEFF")
			res.Header = fields
			continue
		}
		i.appendRow(ctx, res, line, fields)
	}

	i.logger.InfoContext(ctx, "loaded CSV file",
		slog.String("path", path),
		slog.Int("records", res.Store.Len()),
		slog.Int("skipped", len(res.Skipped)))

	return res, nil
}
