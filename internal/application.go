package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/service"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/ui"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

var ErrChannelNotSet = errors.New("events channel is empty")

// RunApp - runs the application until the window is closed or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sinks, closeSinks, err := newEventSinks(ctx, logger, conf)
	if err != nil {
		return fmt.Errorf("could not set up event feed: %w", err)
	}

	defer func() {
		if err = closeSinks(); err != nil {
			log.Error("could not close event feed", "error", err)
		}
	}()

	notifier := service.NewNotifier(logger, conf.Events.Buffer, conf.Events.PublishTimeout, sinks...)
	gameManager := usecase.NewGameManager(logger, notifier)
	controller := ui.NewController(gameManager)
	window := ui.NewWindow(logger, conf, controller)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		return notifier.Run(ctx)
	})

	errg.Go(func() error {
		// closing the window ends the application
		defer cancel()

		if err := window.Run(ctx); err != nil {
			return fmt.Errorf("window error: %w", err)
		}

		log.Info("Window closed, shutting down")
		return nil
	})

	return errg.Wait()
}

// newEventSinks - events are always logged; the Redis feed is added on top when it is enabled.
func newEventSinks(ctx context.Context, logger *slog.Logger, conf *config.Config) ([]service.Sink, func() error, error) {
	log := logger.With("component", "app")

	sinks := []service.Sink{service.NewLogSink(logger)}

	if !conf.Events.Enabled {
		log.Debug("Event feed disabled, only logging events")
		return sinks, func() error { return nil }, nil
	}

	if conf.Events.Channel == "" {
		return nil, nil, ErrChannelNotSet
	}

	addr := conf.Redis.GetRedisAddr()
	client, err := redis.New(ctx, addr, conf.Events.Channel)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	log.Info("Publishing events to redis", "addr", addr, "channel", conf.Events.Channel)

	return append(sinks, client), client.Close, nil
}
