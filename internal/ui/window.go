package ui

import (
	"context"
	"log/slog"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// Window renders the controller's screens in a Gio window.
type Window struct {
	logger     *slog.Logger
	conf       config.Window
	subtitle   string
	controller *Controller
	theme      *material.Theme

	play  widget.Clickable
	cells [entity.Size][entity.Size]widget.Clickable
}

func NewWindow(logger *slog.Logger, conf *config.Config, controller *Controller) *Window {
	return &Window{
		logger:     logger.With("component", "window"),
		conf:       conf.Window,
		subtitle:   conf.Home.Subtitle,
		controller: controller,
		theme:      newTheme(),
	}
}

// Run - opens the window and processes its events until it is closed or ctx is done.
func (that *Window) Run(ctx context.Context) error {
	w := new(app.Window)
	w.Option(that.options()...)

	stop := context.AfterFunc(ctx, func() {
		that.logger.Info("closing window")
		w.Perform(system.ActionClose)
	})
	defer stop()

	that.logger.Info("window opened", "title", that.conf.Title, "mode", that.conf.Mode)

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			that.logger.Info("window closed")
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			that.handleKeys(gtx, w)
			that.Layout(ctx, gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (that *Window) options() []app.Option {
	opts := []app.Option{
		app.Title(that.conf.Title),
		app.Size(unit.Dp(that.conf.Width), unit.Dp(that.conf.Height)),
	}

	// app.Size resets the mode to windowed, so the mode goes last.
	switch that.conf.Mode {
	case config.WindowModeMaximized:
		opts = append(opts, app.Maximized.Option())
	case config.WindowModeFullscreen:
		opts = append(opts, app.Fullscreen.Option())
	}

	return opts
}

// handleKeys - Escape leaves fullscreen or maximized mode.
func (that *Window) handleKeys(gtx layout.Context, w *app.Window) {
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			return
		}

		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			that.logger.Debug("leaving fullscreen")
			w.Option(app.Windowed.Option())
		}
	}
}
