package repository

import (
	"ltranslate/internal/domain"
)

// VocabularyRepository defines vocabulary data operations
type VocabularyRepository interface {
	// LoadEntries reads every vocabulary row in source order
	LoadEntries() ([]domain.Entry, error)
	// Source names the underlying resource for error reports
	Source() string
}
