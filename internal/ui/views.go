package ui

import (
	"context"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const homeTitle = "Welcome to Tic Tac Toe"

// Layout - handles pending clicks and draws the current screen.
func (that *Window) Layout(ctx context.Context, gtx layout.Context) layout.Dimensions {
	that.update(ctx, gtx)

	if that.controller.Screen() == BoardScreen {
		return that.layoutBoard(gtx)
	}
	return that.layoutHome(gtx)
}

// update - feeds button clicks of the visible screen to the controller.
func (that *Window) update(ctx context.Context, gtx layout.Context) {
	switch that.controller.Screen() {
	case HomeScreen:
		if that.play.Clicked(gtx) {
			that.controller.Play(ctx)
		}
	case BoardScreen:
		for row := range entity.Size {
			for col := range entity.Size {
				for that.cells[row][col].Clicked(gtx) {
					that.controller.Activate(ctx, row, col)
				}
			}
		}
	}
}

func (that *Window) layoutHome(gtx layout.Context) layout.Dimensions {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(30), Bottom: unit.Dp(30)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return that.label(gtx, homeTitle, unit.Sp(32), colorDarkBlue, colorLightBlue)
			})
		}),
	}

	if that.subtitle != "" {
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Bottom: unit.Dp(35)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return that.label(gtx, that.subtitle, unit.Sp(24), colorDarkBlue, colorLightBlue)
			})
		}))
	}

	if banner := that.controller.Banner(); !banner.IsZero() {
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return that.label(gtx, banner.Text, unit.Sp(24), colorBlack, bannerBackground(banner.Outcome))
			})
		}))
	}

	children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			btn := material.Button(that.theme, &that.play, "Play Game")
			btn.Background = colorGreen
			btn.Color = colorWhite
			btn.TextSize = unit.Sp(22)
			btn.Inset = layout.Inset{Top: unit.Dp(10), Bottom: unit.Dp(10), Left: unit.Dp(20), Right: unit.Dp(20)}
			return btn.Layout(gtx)
		})
	}))

	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx, children...)
}

// layoutBoard - draws the turn hint over a 3x3 grid of buttons, each filling its share of the window.
func (that *Window) layoutBoard(gtx layout.Context) layout.Dimensions {
	rows := make([]layout.FlexChild, 0, entity.Size+1)
	rows = append(rows, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return that.label(gtx, that.controller.TurnHint(), unit.Sp(20), colorDarkBlue, colorLightBlue)
	}))

	for row := range entity.Size {
		rows = append(rows, layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			cols := make([]layout.FlexChild, 0, entity.Size)
			for col := range entity.Size {
				cols = append(cols, layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return that.layoutCell(gtx, row, col)
				}))
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, cols...)
		}))
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}

func (that *Window) layoutCell(gtx layout.Context, row, col int) layout.Dimensions {
	cell := that.controller.Cell(row, col)

	return layout.UniformInset(unit.Dp(5)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = gtx.Constraints.Max

		btn := material.Button(that.theme, &that.cells[row][col], cell.String())
		btn.Background = cellBackground(cell)
		btn.Color = colorBlack
		btn.TextSize = unit.Sp(48)
		btn.CornerRadius = 0
		return btn.Layout(gtx)
	})
}

// label - draws bold text on a filled background.
func (that *Window) label(gtx layout.Context, txt string, size unit.Sp, fg, bg color.NRGBA) layout.Dimensions {
	lbl := material.Label(that.theme, size, txt)
	lbl.Color = fg
	lbl.Font.Weight = font.Bold
	lbl.Alignment = text.Middle

	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect{Max: gtx.Constraints.Min}.Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, bg)
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(10)).Layout(gtx, lbl.Layout)
		},
	)
}
