package postgres

import (
	"fmt"
	"testing"

	"ltranslate/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestVocabularyRepo_LoadEntries(t *testing.T) {
	columns := []string{"english", "german", "french", "russian"}
	query := "SELECT english, german, french, russian FROM vocabulary ORDER BY id"

	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expected      []domain.Entry
		expectedError bool
	}{
		{
			name: "two rows",
			mockRows: sqlmock.NewRows(columns).
				AddRow("cat", "Katze", "chat", "кот").
				AddRow("dog", "Hund", "chien", "собака"),
			expected: []domain.Entry{
				{English: "cat", German: "Katze", French: "chat", Russian: "кот"},
				{English: "dog", German: "Hund", French: "chien", Russian: "собака"},
			},
		},
		{
			name:     "empty table",
			mockRows: sqlmock.NewRows(columns),
			expected: nil,
		},
		{
			name: "null cell",
			mockRows: sqlmock.NewRows(columns).
				AddRow("cat", "Katze", nil, "кот"),
			expectedError: true,
		},
		{
			name:          "missing table",
			mockError:     fmt.Errorf(`pq: relation "vocabulary" does not exist`),
			expectedError: true,
		},
		{
			name: "row error",
			mockRows: sqlmock.NewRows(columns).
				AddRow("cat", "Katze", "chat", "кот").
				RowError(0, fmt.Errorf("connection reset")),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			if tt.mockError != nil {
				mock.ExpectQuery(query).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WillReturnRows(tt.mockRows)
			}

			repo := NewVocabularyRepo(db)
			entries, err := repo.LoadEntries()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, entries)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVocabularyRepo_Source(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	assert.Contains(t, NewVocabularyRepo(db).Source(), "vocabulary")
}
