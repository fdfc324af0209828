// Package ui implements the desktop front end: a splash screen with a theme
// toggle and the flashcard window.
package ui

import (
	"ltranslate/internal/service"

	"fyne.io/fyne/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// UI holds the application state shared by the windows
type UI struct {
	app             fyne.App
	cards           *service.CardService
	session         *service.Session
	fs              afero.Fs
	backgroundImage string
	logger          *zap.Logger
}

// NewUI creates a new UI instance
func NewUI(
	app fyne.App,
	cards *service.CardService,
	session *service.Session,
	fs afero.Fs,
	backgroundImage string,
	logger *zap.Logger,
) *UI {
	return &UI{
		app:             app,
		cards:           cards,
		session:         session,
		fs:              fs,
		backgroundImage: backgroundImage,
		logger:          logger,
	}
}

// Run shows the splash screen and blocks until the application quits
func (u *UI) Run() {
	u.applyTheme()
	u.newSplash().Show()
	u.app.Run()
}

func (u *UI) applyTheme() {
	u.app.Settings().SetTheme(Theme(u.session.DarkTheme()))
}
