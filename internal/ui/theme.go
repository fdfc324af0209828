package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var accentRed = color.NRGBA{R: 0xd0, G: 0x10, B: 0x10, A: 0xff}

// cardTheme pins the default theme to one variant and paints the accent red
type cardTheme struct {
	variant fyne.ThemeVariant
}

// Theme returns the application theme for the dark or light variant
func Theme(dark bool) fyne.Theme {
	if dark {
		return &cardTheme{variant: theme.VariantDark}
	}
	return &cardTheme{variant: theme.VariantLight}
}

func (t *cardTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return accentRed
	}
	return theme.DefaultTheme().Color(name, t.variant)
}

func (t *cardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *cardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *cardTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
