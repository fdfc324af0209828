package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// APICall is one request the bot made to the Telegram API
type APICall struct {
	Method string
	Params map[string]interface{}
}

// TelegramRecorder records Bot API calls and answers them successfully
type TelegramRecorder struct {
	mu    sync.Mutex
	calls []APICall

	// FailEdits makes editMessageText fail with the given description
	FailEdits string
}

// Calls returns a copy of the recorded calls
func (r *TelegramRecorder) Calls() []APICall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]APICall(nil), r.calls...)
}

// Methods returns the recorded method names in order
func (r *TelegramRecorder) Methods() []string {
	var methods []string
	for _, call := range r.Calls() {
		methods = append(methods, call.Method)
	}
	return methods
}

// LastText returns the text parameter of the last send or edit call
func (r *TelegramRecorder) LastText() string {
	calls := r.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if text, ok := calls[i].Params["text"].(string); ok && calls[i].Method != "answerCallbackQuery" {
			return text
		}
	}
	return ""
}

func (r *TelegramRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	method := req.URL.Path[strings.LastIndex(req.URL.Path, "/")+1:]

	params := map[string]interface{}{}
	_ = json.NewDecoder(req.Body).Decode(&params)

	r.mu.Lock()
	r.calls = append(r.calls, APICall{Method: method, Params: params})
	failEdits := r.FailEdits
	r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case method == "editMessageText" && failEdits != "":
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":          false,
			"error_code":  400,
			"description": failEdits,
		})
	case method == "answerCallbackQuery":
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	default:
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}}`))
	}
}

// NewTestBot creates an offline bot talking to a local fake Bot API
func NewTestBot(t *testing.T) (*tele.Bot, *TelegramRecorder) {
	t.Helper()

	recorder := &TelegramRecorder{}
	srv := httptest.NewServer(recorder)
	t.Cleanup(srv.Close)

	bot, err := tele.NewBot(tele.Settings{
		URL:     srv.URL,
		Token:   "test-token",
		Offline: true,
	})
	require.NoError(t, err)

	return bot, recorder
}

// MessageUpdate builds an update for a text message from userID in their private chat
func MessageUpdate(userID int64, text string) tele.Update {
	return tele.Update{
		Message: &tele.Message{
			ID:     10,
			Text:   text,
			Sender: &tele.User{ID: userID},
			Chat:   &tele.Chat{ID: userID, Type: tele.ChatPrivate},
		},
	}
}

// CallbackUpdate builds an update for an inline button press
func CallbackUpdate(userID int64, unique, data string) tele.Update {
	return tele.Update{
		Callback: &tele.Callback{
			ID:     "cb-1",
			Unique: unique,
			Data:   data,
			Sender: &tele.User{ID: userID},
			Message: &tele.Message{
				ID:   20,
				Chat: &tele.Chat{ID: userID, Type: tele.ChatPrivate},
			},
		},
	}
}
