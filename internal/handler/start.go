package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const mainMenuText = "🏠 Главное меню\n\nВыберите язык:"

// handleStart handles /start command and the main menu button
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User opened main menu",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	if c.Callback() != nil {
		err := c.Edit(mainMenuText, mainMenuMarkup())
		if err == nil {
			return c.Respond()
		}
		if h.handleEditError(err, c, c.Sender().ID) == nil {
			return nil
		}
	}

	return c.Send(mainMenuText, mainMenuMarkup())
}
