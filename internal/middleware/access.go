package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AllowList creates middleware admitting only the given user IDs.
// An empty list admits everyone.
func AllowList(allowed []int64, logger *zap.Logger) tele.MiddlewareFunc {
	set := make(map[int64]struct{}, len(allowed))
	for _, id := range allowed {
		set[id] = struct{}{}
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if len(set) == 0 || c.Sender() == nil {
				return next(c)
			}

			userID := c.Sender().ID
			if _, ok := set[userID]; ok {
				return next(c)
			}

			logger.Warn("Rejected user not on allow list", zap.Int64("user_id", userID))
			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: "Доступ запрещён."})
			}
			return c.Send("Доступ запрещён.")
		}
	}
}
