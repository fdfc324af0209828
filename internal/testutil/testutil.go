package testutil

import (
	"testing"

	"ltranslate/internal/domain"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// Header is the column row every vocabulary fixture starts with
var Header = []string{"English", "German", "French", "Russian"}

// NewTestEntries returns the two-row cat/dog fixture
func NewTestEntries() []domain.Entry {
	return []domain.Entry{
		{English: "cat", German: "Katze", French: "chat", Russian: "кот"},
		{English: "dog", German: "Hund", French: "chien", Russian: "собака"},
	}
}

// EntryRows converts entries into spreadsheet rows below Header
func EntryRows(entries []domain.Entry) [][]string {
	rows := [][]string{Header}
	for _, e := range entries {
		rows = append(rows, []string{e.English, e.German, e.French, e.Russian})
	}
	return rows
}

// WriteWorkbook stores rows as the first sheet of an .xlsx file on fs
func WriteWorkbook(t *testing.T, fs afero.Fs, path string, rows [][]string) {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()

	sheet := book.GetSheetName(0)
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow(sheet, axis, &cells))
	}

	buf, err := book.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o644))
}
