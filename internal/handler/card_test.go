package handler

import (
	"testing"

	"ltranslate/internal/domain"
	"ltranslate/internal/service"
	"ltranslate/internal/testutil"
	"ltranslate/internal/vocabulary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func newTestHandler(t *testing.T, entries []domain.Entry) (*Handler, *tele.Bot, *testutil.TelegramRecorder) {
	t.Helper()

	bot, recorder := testutil.NewTestBot(t)
	logger := testutil.NewTestLogger()
	cards := service.NewCardService(vocabulary.NewTable(entries), logger)

	return NewHandler(bot, cards, logger), bot, recorder
}

func TestFormatCard(t *testing.T) {
	tests := []struct {
		name     string
		card     domain.Card
		expected string
	}{
		{
			name:     "english",
			card:     domain.Card{Language: domain.English, Word: "cat", Translation: "кот"},
			expected: "🇬🇧 <b>cat</b>\n\n🇷🇺 <tg-spoiler>кот</tg-spoiler>",
		},
		{
			name:     "html is escaped",
			card:     domain.Card{Language: domain.French, Word: "<chat>", Translation: "кот & кошка"},
			expected: "🇫🇷 <b>&lt;chat&gt;</b>\n\n🇷🇺 <tg-spoiler>кот &amp; кошка</tg-spoiler>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatCard(tt.card))
		})
	}
}

func TestParseStudyLanguage(t *testing.T) {
	lang, err := parseStudyLanguage("German")
	assert.NoError(t, err)
	assert.Equal(t, domain.German, lang)

	_, err = parseStudyLanguage("Russian")
	assert.Error(t, err)

	_, err = parseStudyLanguage("Klingon")
	assert.Error(t, err)
}

func TestHandler_GetSession(t *testing.T) {
	h, _, _ := newTestHandler(t, testutil.NewTestEntries())

	first := h.GetSession(1)
	assert.Same(t, first, h.GetSession(1))
	assert.NotSame(t, first, h.GetSession(2))
}

func TestHandler_HandleCard_CommandAlternates(t *testing.T) {
	h, bot, recorder := newTestHandler(t, testutil.NewTestEntries())

	c := bot.NewContext(testutil.MessageUpdate(1, "/english"))
	require.NoError(t, h.handleCard(c, domain.English))
	first := recorder.LastText()

	require.NoError(t, h.handleCard(c, domain.English))
	second := recorder.LastText()

	valid := []string{
		formatCard(domain.Card{Language: domain.English, Word: "cat", Translation: "кот"}),
		formatCard(domain.Card{Language: domain.English, Word: "dog", Translation: "собака"}),
	}
	assert.Contains(t, valid, first)
	assert.Contains(t, valid, second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, []string{"sendMessage", "sendMessage"}, recorder.Methods())
	assert.Equal(t, "HTML", recorder.Calls()[0].Params["parse_mode"])
}

func TestHandler_HandleCard_SessionsAreIndependent(t *testing.T) {
	h, bot, _ := newTestHandler(t, testutil.NewTestEntries())

	require.NoError(t, h.handleCard(bot.NewContext(testutil.MessageUpdate(1, "/german")), domain.German))
	require.NoError(t, h.handleCard(bot.NewContext(testutil.MessageUpdate(2, "/german")), domain.German))

	assert.Len(t, h.sessions, 2)
	assert.NotSame(t, h.GetSession(1), h.GetSession(2))
}

func TestHandler_HandleCard_CallbackEditsMessage(t *testing.T) {
	h, bot, recorder := newTestHandler(t, testutil.NewTestEntries())

	c := bot.NewContext(testutil.CallbackUpdate(1, btnFrench.Unique, ""))
	require.NoError(t, h.handleCard(c, domain.French))

	assert.Equal(t, []string{"editMessageText", "answerCallbackQuery"}, recorder.Methods())
	assert.Contains(t, recorder.LastText(), "🇫🇷")
}

func TestHandler_HandleCard_EditNotModified(t *testing.T) {
	h, bot, recorder := newTestHandler(t, testutil.NewTestEntries())
	recorder.FailEdits = tele.ErrSameMessageContent.Description

	c := bot.NewContext(testutil.CallbackUpdate(1, btnGerman.Unique, ""))
	require.NoError(t, h.handleCard(c, domain.German))

	assert.Equal(t, []string{"editMessageText", "answerCallbackQuery"}, recorder.Methods())
}

func TestHandler_HandleCard_EditFailedSendsNew(t *testing.T) {
	h, bot, recorder := newTestHandler(t, testutil.NewTestEntries())
	recorder.FailEdits = "Bad Request: message to edit not found"

	c := bot.NewContext(testutil.CallbackUpdate(1, btnEnglish.Unique, ""))
	require.NoError(t, h.handleCard(c, domain.English))

	assert.Equal(t, []string{"editMessageText", "answerCallbackQuery", "sendMessage"}, recorder.Methods())
}

func TestHandler_HandleCard_EmptyTable(t *testing.T) {
	h, bot, recorder := newTestHandler(t, nil)

	c := bot.NewContext(testutil.MessageUpdate(1, "/english"))
	require.NoError(t, h.handleCard(c, domain.English))

	assert.Equal(t, "Словарь пуст, учить нечего.", recorder.LastText())
}

func TestHandler_HandleMore(t *testing.T) {
	tests := []struct {
		name            string
		data            string
		expectedMethods []string
	}{
		{
			name:            "valid language",
			data:            "German",
			expectedMethods: []string{"editMessageText", "answerCallbackQuery"},
		},
		{
			name:            "language with control characters",
			data:            " German\x00",
			expectedMethods: []string{"editMessageText", "answerCallbackQuery"},
		},
		{
			name:            "unknown language",
			data:            "Klingon",
			expectedMethods: []string{"answerCallbackQuery"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, bot, recorder := newTestHandler(t, testutil.NewTestEntries())

			c := bot.NewContext(testutil.CallbackUpdate(1, btnMore.Unique, tt.data))
			require.NoError(t, h.handleMore(c))

			assert.Equal(t, tt.expectedMethods, recorder.Methods())
		})
	}
}

func TestCardMarkup(t *testing.T) {
	markup := cardMarkup(domain.French)

	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, btnMore.Unique, markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "French", markup.InlineKeyboard[0][0].Data)
	assert.Empty(t, btnMore.Data)
}
