package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ltranslate/internal/domain"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// VocabularyRepo implements repository.VocabularyRepository on an .xlsx or .csv file
type VocabularyRepo struct {
	fs    afero.Fs
	path  string
	sheet string
}

// NewVocabularyRepo creates a repository reading path from fs.
// An empty sheet selects the first worksheet of the workbook.
func NewVocabularyRepo(fs afero.Fs, path, sheet string) *VocabularyRepo {
	return &VocabularyRepo{
		fs:    fs,
		path:  path,
		sheet: sheet,
	}
}

// Source returns the file path
func (r *VocabularyRepo) Source() string {
	return r.path
}

// LoadEntries reads the header row, resolves the language columns and
// returns one entry per non-blank data row
func (r *VocabularyRepo) LoadEntries() ([]domain.Entry, error) {
	f, err := r.fs.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]string
	if strings.EqualFold(filepath.Ext(r.path), ".csv") {
		rows, err = readCSV(f)
	} else {
		rows, err = r.readWorkbook(f)
	}
	if err != nil {
		return nil, err
	}

	return parseRows(rows)
}

func (r *VocabularyRepo) readWorkbook(reader io.Reader) ([][]string, error) {
	book, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer book.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := book.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(reader io.Reader) ([][]string, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

// parseRows maps the first row as header. Extra columns are ignored.
func parseRows(rows [][]string) ([]domain.Entry, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no header row: %w", domain.ErrMissingColumn)
	}

	columns, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var entries []domain.Entry
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		var e domain.Entry
		for _, lang := range domain.Languages {
			e.Set(lang, cell(row, columns[lang]))
		}

		if lang, missing := e.MissingLanguage(); missing {
			// +2: one for the header, one for 1-based numbering
			return nil, fmt.Errorf("row %d has no %s value", i+2, lang)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func resolveColumns(header []string) (map[domain.Language]int, error) {
	columns := make(map[domain.Language]int, len(domain.Languages))
	for i, name := range header {
		lang, err := domain.ParseLanguage(strings.TrimSpace(name))
		if err != nil {
			continue
		}
		if _, dup := columns[lang]; !dup {
			columns[lang] = i
		}
	}

	for _, lang := range domain.Languages {
		if _, ok := columns[lang]; !ok {
			return nil, fmt.Errorf("%s: %w", lang, domain.ErrMissingColumn)
		}
	}
	return columns, nil
}

// cell tolerates short rows: excelize trims trailing empty cells
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
