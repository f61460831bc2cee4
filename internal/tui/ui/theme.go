package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor           tcell.Color
	FgColor           tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	CrumbActiveFg     tcell.Color
	CrumbActiveBg     tcell.Color
	CrumbInactiveFg   tcell.Color
	CrumbInactiveBg   tcell.Color
	MenuKeyColor      tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	CardTitleColor    tcell.Color
	CardBodyColor     tcell.Color
	CardMarkerColor   tcell.Color
	SkeletonShades    []tcell.Color
	EmptyColor        tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	ErrorBarFg        tcell.Color
	ErrorBarBg        tcell.Color
	ErrorActionBg     tcell.Color
	PromptBorderColor tcell.Color
}

// DefaultTheme returns a k9s-inspired dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorCadetBlue,
		BorderColor:       tcell.ColorDodgerBlue,
		BorderFocusColor:  tcell.ColorLightSkyBlue,
		CrumbActiveFg:     tcell.ColorBlack,
		CrumbActiveBg:     tcell.ColorOrange,
		CrumbInactiveFg:   tcell.ColorBlack,
		CrumbInactiveBg:   tcell.ColorAqua,
		MenuKeyColor:      tcell.ColorDodgerBlue,
		TitleColor:        tcell.ColorFuchsia,
		CounterColor:      tcell.ColorPapayaWhip,
		CardTitleColor:    tcell.ColorWhite,
		CardBodyColor:     tcell.ColorSilver,
		CardMarkerColor:   tcell.ColorDodgerBlue,
		SkeletonShades:    []tcell.Color{tcell.ColorDimGray, tcell.ColorGray, tcell.ColorDarkGray, tcell.ColorGray},
		EmptyColor:        tcell.ColorNavajoWhite,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		ErrorBarFg:        tcell.ColorWhite,
		ErrorBarBg:        tcell.NewHexColor(0xe74c3c),
		ErrorActionBg:     tcell.NewHexColor(0xc0392b),
		PromptBorderColor: tcell.ColorDodgerBlue,
	}
}

// ColorName returns a tview-compatible color name string.
func ColorName(c tcell.Color) string {
	for name, val := range tcell.ColorNames {
		if val == c {
			return name
		}
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
