package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PanoramaTheme darkens the default theme so the panel blends with the
// no-data background of the rendering.
type PanoramaTheme struct{}

var _ fyne.Theme = (*PanoramaTheme)(nil)

func (t *PanoramaTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x1C, G: 0x1C, B: 0x1C, A: 0xFF} // Same as no-data pixels
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x00, G: 0x80, B: 0xFF, A: 0xFF} // Water blue
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *PanoramaTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *PanoramaTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *PanoramaTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 5
	default:
		return theme.DefaultTheme().Size(name)
	}
}
