package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// Splash is the start screen
type Splash struct {
	ui          *UI
	window      fyne.Window
	themeCheck  *widget.Check
	startButton *widget.Button
	main        *MainWindow
}

func (u *UI) newSplash() *Splash {
	s := &Splash{ui: u}

	// Borderless on desktop drivers, a plain window elsewhere
	if drv, ok := u.app.Driver().(desktop.Driver); ok {
		s.window = drv.CreateSplashWindow()
	} else {
		s.window = u.app.NewWindow("Language Learning App")
	}

	// Checked means light, matching the unchecked dark default
	s.themeCheck = widget.NewCheck("Theme", s.toggleTheme)
	s.themeCheck.Checked = !u.session.DarkTheme()

	s.startButton = widget.NewButton("Start Learning", s.start)
	s.startButton.Importance = widget.HighImportance

	s.window.SetContent(container.NewBorder(
		container.NewHBox(s.themeCheck, layout.NewSpacer()),
		nil, nil, nil,
		container.NewCenter(container.NewGridWrap(fyne.NewSize(200, 200), s.startButton)),
	))
	s.window.Resize(fyne.NewSize(800, 600))
	s.window.CenterOnScreen()

	return s
}

// Show displays the splash window
func (s *Splash) Show() {
	s.window.Show()
}

func (s *Splash) toggleTheme(light bool) {
	s.ui.session.SetDarkTheme(!light)
	s.ui.applyTheme()
	s.ui.logger.Debug("Theme switched", zap.Bool("dark", !light))
}

func (s *Splash) start() {
	s.main = s.ui.newMainWindow()
	s.main.Show()
	s.window.Close()
}
