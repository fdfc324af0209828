package handler

import (
	"sync"

	"ltranslate/internal/domain"
	"ltranslate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	cards  *service.CardService
	logger *zap.Logger

	// One study session per chat
	sessions   map[int64]*service.Session
	sessionMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	cards *service.CardService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		cards:    cards,
		logger:   logger,
		sessions: make(map[int64]*service.Session),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/english", h.languageHandler(domain.English))
	h.bot.Handle("/german", h.languageHandler(domain.German))
	h.bot.Handle("/french", h.languageHandler(domain.French))

	// Callback queries (inline buttons)
	h.bot.Handle(&btnEnglish, h.languageHandler(domain.English))
	h.bot.Handle(&btnGerman, h.languageHandler(domain.German))
	h.bot.Handle(&btnFrench, h.languageHandler(domain.French))
	h.bot.Handle(&btnMore, h.handleMore)
	h.bot.Handle(&btnMainMenu, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetSession returns the chat's session, creating it on first use
func (h *Handler) GetSession(chatID int64) *service.Session {
	h.sessionMux.RLock()
	session, exists := h.sessions[chatID]
	h.sessionMux.RUnlock()
	if exists {
		return session
	}

	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	// Another update for this chat may have won the race
	if session, exists = h.sessions[chatID]; exists {
		return session
	}
	session = service.NewSession(nil)
	h.sessions[chatID] = session
	return session
}

// Inline keyboard buttons
var (
	btnEnglish = tele.Btn{
		Unique: "card_english",
		Text:   "🇬🇧 English",
	}
	btnGerman = tele.Btn{
		Unique: "card_german",
		Text:   "🇩🇪 German",
	}
	btnFrench = tele.Btn{
		Unique: "card_french",
		Text:   "🇫🇷 French",
	}
	btnMore = tele.Btn{
		Unique: "more",
		Text:   "🔄 Ещё",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Главное меню",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnFrench),
		menu.Row(btnGerman),
		menu.Row(btnEnglish),
	)
	return menu
}

// cardMarkup returns the keyboard shown under a card
func cardMarkup(lang domain.Language) *tele.ReplyMarkup {
	more := btnMore
	more.Data = string(lang)

	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(more),
		menu.Row(btnMainMenu),
	)
	return menu
}
