package ui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/widget/material"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

var (
	colorLightBlue  = color.NRGBA{R: 173, G: 216, B: 230, A: 255}
	colorDarkBlue   = color.NRGBA{B: 139, A: 255}
	colorYellow     = color.NRGBA{R: 255, G: 255, A: 255}
	colorOrange     = color.NRGBA{R: 255, G: 165, A: 255}
	colorGreen      = color.NRGBA{G: 128, A: 255}
	colorWhite      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlack      = color.NRGBA{A: 255}
	colorLightGray  = color.NRGBA{R: 211, G: 211, B: 211, A: 255}
	colorLightGreen = color.NRGBA{R: 144, G: 238, B: 144, A: 255}
	colorLightCoral = color.NRGBA{R: 240, G: 128, B: 128, A: 255}
)

func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	return th
}

func cellBackground(cell entity.Cell) color.NRGBA {
	switch cell {
	case entity.CellX:
		return colorLightGreen
	case entity.CellO:
		return colorLightCoral
	default:
		return colorLightGray
	}
}

func bannerBackground(outcome entity.Outcome) color.NRGBA {
	if outcome == entity.Draw {
		return colorOrange
	}
	return colorYellow
}
