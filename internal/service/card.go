package service

import (
	"fmt"

	"ltranslate/internal/domain"
	"ltranslate/internal/vocabulary"

	"go.uber.org/zap"
)

// CardService draws flashcards from the vocabulary table
type CardService struct {
	table  *vocabulary.Table
	logger *zap.Logger
}

// NewCardService creates a new card service
func NewCardService(table *vocabulary.Table, logger *zap.Logger) *CardService {
	return &CardService{
		table:  table,
		logger: logger,
	}
}

// RowCount returns the number of entries available for drawing
func (s *CardService) RowCount() int {
	return s.table.RowCount()
}

// Next draws a row that differs from the session's previous one and returns
// the word in lang with its Russian translation.
// Returns domain.ErrEmptyTable when there is nothing to draw.
func (s *CardService) Next(session *Session, lang domain.Language) (domain.Card, error) {
	index, err := session.next(s.table.RowCount())
	if err != nil {
		s.logger.Error("Failed to draw card",
			zap.String("language", string(lang)),
			zap.Error(err),
		)
		return domain.Card{}, fmt.Errorf("draw %s card: %w", lang, err)
	}

	card := domain.Card{
		Language:    lang,
		Word:        s.table.ValueAt(index, lang),
		Translation: s.table.ValueAt(index, domain.Russian),
	}

	s.logger.Debug("Card drawn",
		zap.String("language", string(lang)),
		zap.Int("index", index),
		zap.String("word", card.Word),
	)

	return card, nil
}
