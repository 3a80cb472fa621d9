package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand colors of the creation screen
var (
	ColorGroupGreen = color.RGBA{R: 18, G: 140, B: 126, A: 255}  // create button, success text, progress
	ColorUploadBlue = color.RGBA{R: 0, G: 168, B: 255, A: 255}   // upload action
	ColorErrorRed   = color.RGBA{R: 255, G: 77, B: 77, A: 255}   // error text
	ColorHintBlack  = color.RGBA{R: 0, G: 0, B: 0, A: 255}       // hint text
	ColorFieldLight = color.RGBA{R: 255, G: 255, B: 255, A: 230} // translucent input background
)

// CompactTheme defines a compact theme for the UI with the group screen palette
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return ColorGroupGreen
	case theme.ColorNameSuccess:
		return ColorGroupGreen
	case theme.ColorNameError:
		return ColorErrorRed
	case theme.ColorNameHyperlink:
		return ColorUploadBlue
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return theme.DefaultTheme().Color(name, variant)
		}
		return ColorFieldLight
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 5 // Loosened from default 4 to space the form
	case theme.SizeNameInnerPadding:
		return 10 // Matches the 10px field padding of the screen
	case theme.SizeNameText:
		return 14
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
