package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AnalyzerTheme keeps the light palette whatever the system variant, so
// blackified regions always read against the window background. The primary
// color is a muted slate that does not compete with the previews.
type AnalyzerTheme struct{}

var _ fyne.Theme = (*AnalyzerTheme)(nil)

var slate = color.NRGBA{R: 0x37, G: 0x47, B: 0x4F, A: 0xFF}

func (t *AnalyzerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return slate
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

func (t *AnalyzerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *AnalyzerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *AnalyzerTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameHeadingText {
		return 20
	}
	return theme.DefaultTheme().Size(name)
}
