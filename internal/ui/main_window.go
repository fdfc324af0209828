package ui

import (
	"ltranslate/internal/domain"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// MainWindow shows one flashcard at a time with a button per study language
type MainWindow struct {
	ui          *UI
	window      fyne.Window
	word        *widget.Label
	translation *widget.Label
	buttons     map[domain.Language]*widget.Button

	// onFatal receives selection errors; the window shows nothing for them
	onFatal func(error)
}

func (u *UI) newMainWindow() *MainWindow {
	m := &MainWindow{
		ui:      u,
		window:  u.app.NewWindow("Ltranslate"),
		buttons: make(map[domain.Language]*widget.Button, len(domain.StudyLanguages)),
	}
	m.onFatal = m.showFatal

	m.word = widget.NewLabel("")
	m.word.Alignment = fyne.TextAlignCenter
	m.word.TextStyle = fyne.TextStyle{Bold: true}
	m.word.Wrapping = fyne.TextWrapWord

	m.translation = widget.NewLabel("")
	m.translation.Alignment = fyne.TextAlignCenter
	m.translation.Wrapping = fyne.TextWrapWord

	// French on top, English at the bottom
	column := container.NewVBox()
	for i := len(domain.StudyLanguages) - 1; i >= 0; i-- {
		lang := domain.StudyLanguages[i]
		btn := widget.NewButton(string(lang), func() { m.Select(lang) })
		btn.Importance = widget.HighImportance
		m.buttons[lang] = btn
		column.Add(container.NewGridWrap(fyne.NewSize(131, 111), btn))
		column.Add(layout.NewSpacer())
	}

	card := container.NewGridWrap(fyne.NewSize(270, 80), m.word)
	answer := container.NewGridWrap(fyne.NewSize(270, 41), m.translation)
	labels := container.NewVBox(card, layout.NewSpacer(), answer)

	content := container.NewPadded(container.NewHBox(
		labels,
		layout.NewSpacer(),
		column,
	))

	if bg := m.ui.loadBackground(); bg != nil {
		m.window.SetContent(container.NewStack(bg, content))
	} else {
		m.window.SetContent(content)
	}

	m.window.Resize(fyne.NewSize(800, 600))
	m.window.SetFixedSize(true)
	m.window.SetMaster()

	return m
}

// Show displays the window
func (m *MainWindow) Show() {
	m.window.Show()
}

// Select draws a card in lang and renders it
func (m *MainWindow) Select(lang domain.Language) {
	card, err := m.ui.cards.Next(m.ui.session, lang)
	if err != nil {
		m.onFatal(err)
		return
	}

	m.word.SetText(card.Word)
	m.translation.SetText(card.Translation)
}

// SelectEnglish draws an English card
func (m *MainWindow) SelectEnglish() { m.Select(domain.English) }

// SelectGerman draws a German card
func (m *MainWindow) SelectGerman() { m.Select(domain.German) }

// SelectFrench draws a French card
func (m *MainWindow) SelectFrench() { m.Select(domain.French) }

func (m *MainWindow) showFatal(err error) {
	m.ui.logger.Error("Selection failed, quitting", zap.Error(err))

	d := dialog.NewError(fatalMessage(err), m.window)
	d.SetOnClosed(m.ui.app.Quit)
	d.Show()
}

func (u *UI) loadBackground() fyne.CanvasObject {
	if u.backgroundImage == "" {
		return nil
	}

	data, err := afero.ReadFile(u.fs, u.backgroundImage)
	if err != nil {
		u.logger.Info("No background image",
			zap.String("path", u.backgroundImage),
			zap.Error(err),
		)
		return nil
	}

	img := canvas.NewImageFromResource(fyne.NewStaticResource(u.backgroundImage, data))
	img.FillMode = canvas.ImageFillContain
	img.Translucency = 0.4
	return img
}
