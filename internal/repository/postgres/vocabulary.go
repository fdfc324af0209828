package postgres

import (
	"database/sql"
	"fmt"

	"ltranslate/internal/domain"
)

// VocabularyRepo implements repository.VocabularyRepository on the vocabulary table
type VocabularyRepo struct {
	db *sql.DB
}

// NewVocabularyRepo creates a new vocabulary repository
func NewVocabularyRepo(db *sql.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

// Source names the table for error reports
func (r *VocabularyRepo) Source() string {
	return "postgres table vocabulary"
}

// LoadEntries returns every vocabulary row ordered by insertion id
func (r *VocabularyRepo) LoadEntries() ([]domain.Entry, error) {
	query := `
		SELECT english, german, french, russian
		FROM vocabulary
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var english, german, french, russian sql.NullString
		if err := rows.Scan(&english, &german, &french, &russian); err != nil {
			return nil, err
		}
		e.English = english.String
		e.German = german.String
		e.French = french.String
		e.Russian = russian.String

		if lang, missing := e.MissingLanguage(); missing {
			return nil, fmt.Errorf("row %d has no %s value", len(entries)+1, lang)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
