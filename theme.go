package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// tableTheme darkens the default theme to match the green felt table and
// keeps overlay dialogs readable on top of it.
type tableTheme struct {
	fyne.Theme
}

// newTableTheme wraps the provided theme.
func newTableTheme(t fyne.Theme) fyne.Theme {
	return &tableTheme{Theme: t}
}

// Color overrides the default color for specific widget states.
func (t *tableTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 21, G: 88, B: 43, A: 255} // Felt green.
	case theme.ColorNameOverlayBackground:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 190} // Dark overlay behind dialogs.
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameButton:
		return color.NRGBA{R: 14, G: 59, B: 29, A: 255} // Darker felt for buttons.
	case theme.ColorNameHover, theme.ColorNamePressed:
		return color.NRGBA{R: 46, G: 139, B: 87, A: 220}
	case theme.ColorNameDisabled:
		return color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	}
	return t.Theme.Color(name, variant)
}

// Variant declares the theme as dark so Fyne uses light text and icons on
// the felt background.
func (t *tableTheme) Variant() fyne.ThemeVariant {
	return theme.VariantDark
}
