// Package vocabulary holds the immutable word list loaded at startup.
package vocabulary

import (
	"fmt"

	"ltranslate/internal/domain"
	"ltranslate/internal/repository"
)

// Table is a read-only, ordered list of vocabulary entries.
// It is safe for concurrent reads.
type Table struct {
	entries []domain.Entry
}

// NewTable builds a table from a copy of entries
func NewTable(entries []domain.Entry) *Table {
	copied := make([]domain.Entry, len(entries))
	copy(copied, entries)
	return &Table{entries: copied}
}

// Load reads every entry from repo. Any failure is reported as a
// *domain.DataSourceError and no table is returned.
func Load(repo repository.VocabularyRepository) (*Table, error) {
	entries, err := repo.LoadEntries()
	if err != nil {
		return nil, &domain.DataSourceError{Source: repo.Source(), Err: err}
	}

	for i, e := range entries {
		if lang, missing := e.MissingLanguage(); missing {
			return nil, &domain.DataSourceError{
				Source: repo.Source(),
				Err:    fmt.Errorf("entry %d has no %s value", i+1, lang),
			}
		}
	}

	return NewTable(entries), nil
}

// RowCount returns the number of entries
func (t *Table) RowCount() int {
	return len(t.entries)
}

// Entry returns the row at index. Panics when index is out of range.
func (t *Table) Entry(index int) domain.Entry {
	if index < 0 || index >= len(t.entries) {
		panic(fmt.Sprintf("vocabulary: row index %d out of range [0, %d)", index, len(t.entries)))
	}
	return t.entries[index]
}

// ValueAt returns one cell. Panics on an out-of-range index or unknown language.
func (t *Table) ValueAt(index int, lang domain.Language) string {
	return t.Entry(index).Value(lang)
}
