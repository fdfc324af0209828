package handler

import (
	"errors"
	"fmt"
	"html"

	"ltranslate/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var flags = map[domain.Language]string{
	domain.English: "🇬🇧",
	domain.German:  "🇩🇪",
	domain.French:  "🇫🇷",
}

// formatCard renders a card with the translation hidden behind a spoiler
func formatCard(card domain.Card) string {
	return fmt.Sprintf("%s <b>%s</b>\n\n🇷🇺 <tg-spoiler>%s</tg-spoiler>",
		flags[card.Language],
		html.EscapeString(card.Word),
		html.EscapeString(card.Translation),
	)
}

func (h *Handler) languageHandler(lang domain.Language) tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.handleCard(c, lang)
	}
}

// handleMore draws another card in the language carried by the button data
func (h *Handler) handleMore(c tele.Context) error {
	data := cleanCallbackData(c.Callback().Data)

	lang, err := parseStudyLanguage(data)
	if err != nil {
		h.logger.Warn("Invalid language in callback", zap.String("data", data), zap.Error(err))
		return c.Respond()
	}
	return h.handleCard(c, lang)
}

// handleCard draws a card from the chat's session and shows it
func (h *Handler) handleCard(c tele.Context, lang domain.Language) error {
	userID := c.Sender().ID

	card, err := h.cards.Next(h.GetSession(c.Chat().ID), lang)
	if errors.Is(err, domain.ErrEmptyTable) {
		if c.Callback() != nil {
			_ = c.Respond()
		}
		return c.Send("Словарь пуст, учить нечего.")
	}
	if err != nil {
		h.logger.Error("Failed to draw card", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	text := formatCard(card)

	if c.Callback() != nil {
		err := c.Edit(text, cardMarkup(lang), tele.ModeHTML)
		if err == nil {
			return c.Respond()
		}
		if h.handleEditError(err, c, userID) == nil {
			return nil
		}
	}

	return c.Send(text, cardMarkup(lang), tele.ModeHTML)
}

func parseStudyLanguage(data string) (domain.Language, error) {
	lang, err := domain.ParseLanguage(data)
	if err != nil {
		return "", err
	}
	if _, ok := flags[lang]; !ok {
		return "", fmt.Errorf("%s is not a study language", lang)
	}
	return lang, nil
}
