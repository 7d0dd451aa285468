package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/twipi/pubsub"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// Sink is where queued events end up.
type Sink interface {
	Publish(ctx context.Context, event entity.Event) error
}

// Notifier decouples the UI loop from the event sinks: Publish only queues,
// Run fans every event out to each sink on its own goroutine.
type Notifier struct {
	logger  *slog.Logger
	sinks   []Sink
	timeout time.Duration

	mu       sync.Mutex
	closed   bool
	events   chan entity.Event
	sub      pubsub.Subscriber[entity.Event]
	inflight sync.WaitGroup
}

// NewNotifier - timeout bounds each delivery and, once Run's context is done, the whole flush.
func NewNotifier(logger *slog.Logger, buffer int, timeout time.Duration, sinks ...Sink) *Notifier {
	if buffer < 1 {
		buffer = 1
	}

	return &Notifier{
		logger:  logger.With("component", "notifier"),
		sinks:   sinks,
		timeout: timeout,
		events:  make(chan entity.Event, buffer),
	}
}

// Publish - queues the event. It never blocks; when the queue is full or the notifier has stopped the event is dropped.
func (that *Notifier) Publish(event entity.Event) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		that.logger.Debug("notifier stopped, dropping event", "kind", event.Kind, "round", event.Round)
		return
	}

	that.inflight.Add(len(that.sinks))
	select {
	case that.events <- event:
	default:
		that.inflight.Add(-len(that.sinks))
		that.logger.Warn("event queue is full, dropping event", "kind", event.Kind, "round", event.Round)
	}
}

// Run - delivers events until ctx is done, then gives queued events one timeout to reach the sinks.
func (that *Notifier) Run(ctx context.Context) error {
	drainCtx, cancelDrain := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelDrain()

	var errg errgroup.Group

	channels := make([]chan entity.Event, 0, len(that.sinks))
	for _, sink := range that.sinks {
		ch := make(chan entity.Event)
		that.sub.Subscribe(ch, nil)
		channels = append(channels, ch)

		errg.Go(func() error {
			that.drain(drainCtx, sink, ch)
			return nil
		})
	}

	errg.Go(func() error {
		// returns once events is closed and forwarded, or the flush deadline passes
		_ = that.sub.Listen(drainCtx, that.events)
		return nil
	})

	<-ctx.Done()

	that.close()
	that.waitFlushed()
	cancelDrain()

	for _, ch := range channels {
		that.sub.Unsubscribe(ch)
	}

	return errg.Wait()
}

func (that *Notifier) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
	close(that.events)
}

// waitFlushed - waits for every queued event to be delivered, at most one timeout.
func (that *Notifier) waitFlushed() {
	flushed := make(chan struct{})
	go func() {
		that.inflight.Wait()
		close(flushed)
	}()

	var deadline <-chan time.Time
	if that.timeout > 0 {
		timer := time.NewTimer(that.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	select {
	case <-flushed:
	case <-deadline:
		that.logger.Warn("gave up flushing events", "timeout", that.timeout)
	}
}

func (that *Notifier) drain(ctx context.Context, sink Sink, ch <-chan entity.Event) {
	for event := range ch {
		if ctx.Err() == nil {
			that.deliver(ctx, sink, event)
		}
		that.inflight.Done()
	}
}

func (that *Notifier) deliver(ctx context.Context, sink Sink, event entity.Event) {
	if that.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.timeout)
		defer cancel()
	}

	if err := sink.Publish(ctx, event); err != nil {
		that.logger.Error("could not publish event", "kind", event.Kind, "round", event.Round, "error", err)
	}
}
