package importer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "marks.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadXLSX_FirstSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"Name", "Marks"},
		{"Alice", 85},
		{"Bob", 72},
	})

	res, err := NewFileImporter(nil).LoadXLSX(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Marks"}, res.Header)
	require.Equal(t, 2, res.Store.Len())

	mark, ok := res.Store.Get("Alice")
	require.True(t, ok)
	assert.Equal(t, 85, mark)
}

func TestLoadXLSX_PrefersMarksSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// decoy data on the default sheet, real data on Marks
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "notes"))
	_, err := f.NewSheet("Marks")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Marks", "A1", "Name"))
	require.NoError(t, f.SetCellValue("Marks", "B1", "Marks"))
	require.NoError(t, f.SetCellValue("Marks", "A2", "Alice"))
	require.NoError(t, f.SetCellValue("Marks", "B2", 85))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	res, err := NewFileImporter(nil).LoadXLSX(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Store.Len())
	mark, ok := res.Store.Get("Alice")
	require.True(t, ok)
	assert.Equal(t, 85, mark)
}

func TestLoadXLSX_SkipsMalformedRows(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"Name", "Marks"},
		{"Alice", 85},
		{"Bob", "eighty"},
		{"Carol", 150},
		{"Dave", 60},
	})

	res, err := NewFileImporter(nil).LoadXLSX(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Store.Len())
	assert.Len(t, res.Skipped, 2)

	_, ok := res.Store.Get("Bob")
	assert.False(t, ok)
	_, ok = res.Store.Get("Dave")
	assert.True(t, ok)
}

func TestLoadXLSX_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.xlsx")

	res, err := NewFileImporter(nil).LoadXLSX(context.Background(), path)
	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestPickSheet(t *testing.T) {
	tests := []struct {
		name   string
		sheets []string
		want   string
	}{
		{"empty workbook", nil, ""},
		{"single sheet", []string{"Sheet1"}, "Sheet1"},
		{"marks sheet wins", []string{"Sheet1", "Marks"}, "Marks"},
		{"grades sheet wins", []string{"Sheet1", "Grades"}, "Grades"},
		{"case insensitive", []string{"Sheet1", "MARKS"}, "MARKS"},
		{"no preferred falls back to first", []string{"Data", "Other"}, "Data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickSheet(tt.sheets))
		})
	}
}
