package ui

import (
	"errors"
	"fmt"
	"os"

	"ltranslate/internal/domain"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ShowFatal opens an error window that quits the application when dismissed.
// The caller runs the app loop and exits afterwards.
func ShowFatal(app fyne.App, err error) {
	w := app.NewWindow("Error")
	w.Resize(fyne.NewSize(400, 200))
	w.SetOnClosed(app.Quit)

	d := dialog.NewError(fatalMessage(err), w)
	d.SetOnClosed(app.Quit)

	w.Show()
	d.Show()
}

// fatalMessage turns load and selection errors into user-facing text
func fatalMessage(err error) error {
	var dsErr *domain.DataSourceError
	switch {
	case errors.As(err, &dsErr) && errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("Could not find %s file", dsErr.Source)
	case errors.As(err, &dsErr):
		return fmt.Errorf("Could not load vocabulary from %s: %v", dsErr.Source, dsErr.Err)
	case errors.Is(err, domain.ErrEmptyTable):
		return errors.New("The vocabulary list is empty, there is nothing to learn")
	}
	return err
}
