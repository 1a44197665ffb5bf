package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridcrawler/core"
)

var (
	styleDefault = tcell.StyleDefault
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleGate    = tcell.StyleDefault.Foreground(tcell.ColorOlive).Bold(true)
	styleItem    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTrigger = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleCombat  = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLog     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleLatest  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
)

// kindStyle returns the map style for an actor kind
func kindStyle(k core.Kind) tcell.Style {
	switch k {
	case core.KindArchitecture:
		return styleWall
	case core.KindGate:
		return styleGate
	case core.KindItem:
		return styleItem
	case core.KindTrigger:
		return styleTrigger
	case core.KindEnemy:
		return styleEnemy
	case core.KindPlayer:
		return stylePlayer
	}
	return styleDefault
}

// layer orders kinds bottom to top
func layer(k core.Kind) int {
	switch k {
	case core.KindTrigger:
		return 1
	case core.KindItem:
		return 2
	case core.KindArchitecture, core.KindGate:
		return 3
	case core.KindEnemy:
		return 4
	case core.KindPlayer:
		return 5
	}
	return 0
}
