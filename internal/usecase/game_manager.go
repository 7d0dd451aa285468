package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

type eventPublisher interface {
	Publish(event entity.Event)
}

// GameManager owns the game being played in the window. A new GameState is
// allocated for every round.
type GameManager struct {
	logger    *slog.Logger
	publisher eventPublisher
	now       func() time.Time

	game  *tictactoe.GameState
	round int
}

func NewGameManager(logger *slog.Logger, publisher eventPublisher) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game-manager"),
		publisher: publisher,
		now:       time.Now,
		game:      tictactoe.NewGameState(),
	}
}

// NewGame - drops the current game and starts the next round with X to move.
func (that *GameManager) NewGame(ctx context.Context) {
	that.game = tictactoe.NewGameState()
	that.round++

	that.logger.InfoContext(ctx, "game started", "round", that.round)
	that.publish(entity.Event{Kind: entity.EventStarted})
}

// MakeTurn - places the current player's mark at (row, col).
func (that *GameManager) MakeTurn(ctx context.Context, row, col int) tictactoe.Result {
	mover := that.game.Turn()
	result := that.game.Place(row, col)
	pos := entity.Position{Row: row, Col: col}

	if result.Outcome == entity.Rejected {
		that.logger.DebugContext(ctx, "move rejected", "round", that.round, "position", pos.String(), "reason", result.Err)
		return result
	}

	that.logger.InfoContext(ctx, "move accepted",
		"round", that.round,
		"mark", mover.String(),
		"position", pos.String(),
		"outcome", result.Outcome.String(),
	)
	that.publish(entity.Event{Kind: entity.EventMove, Position: &pos, Mark: mover, Outcome: result.Outcome})

	if result.Outcome.IsFinal() {
		that.logger.InfoContext(ctx, "game finished",
			"round", that.round,
			"outcome", result.Outcome.String(),
			"winner", result.Mark.String(),
			"moves", that.game.Moves(),
		)
		that.publish(entity.Event{Kind: entity.EventFinished, Mark: result.Mark, Outcome: result.Outcome})
	}

	return result
}

func (that *GameManager) publish(event entity.Event) {
	event.Round = that.round
	event.Moves = that.game.Moves()
	event.At = that.now().UTC()

	that.publisher.Publish(event)
}

func (that *GameManager) Board() entity.Board {
	return that.game.Board()
}

func (that *GameManager) Turn() entity.Mark {
	return that.game.Turn()
}

// Round - returns the number of the current round, 0 before the first game.
func (that *GameManager) Round() int {
	return that.round
}
