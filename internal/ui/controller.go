package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

var ErrNoGameInProgress = errors.New("no game in progress")

// Screen is the page currently shown in the window.
type Screen uint8

const (
	HomeScreen Screen = iota
	BoardScreen
)

type gameManager interface {
	NewGame(ctx context.Context)
	MakeTurn(ctx context.Context, row, col int) tictactoe.Result
	Board() entity.Board
	Turn() entity.Mark
	Round() int
}

// Banner is the message the home screen shows about the last finished game.
type Banner struct {
	Text    string
	Outcome entity.Outcome
}

func (that Banner) IsZero() bool {
	return that.Text == ""
}

// Controller switches between the home and board screens and keeps the banner.
// It holds the only reference to the game manager.
type Controller struct {
	manager gameManager
	screen  Screen
	banner  Banner
}

func NewController(manager gameManager) *Controller {
	return &Controller{
		manager: manager,
		screen:  HomeScreen,
	}
}

func (that *Controller) Screen() Screen {
	return that.screen
}

func (that *Controller) Banner() Banner {
	return that.banner
}

// Play - starts a new game and shows the board.
func (that *Controller) Play(ctx context.Context) {
	that.manager.NewGame(ctx)
	that.screen = BoardScreen
}

// Activate - handles a click on the board cell at (row, col).
func (that *Controller) Activate(ctx context.Context, row, col int) tictactoe.Result {
	if that.screen != BoardScreen {
		return tictactoe.Result{Outcome: entity.Rejected, Err: ErrNoGameInProgress}
	}

	result := that.manager.MakeTurn(ctx, row, col)

	switch result.Outcome {
	case entity.Win:
		that.banner = Banner{Text: fmt.Sprintf("Player %s Wins!", result.Mark), Outcome: entity.Win}
		that.screen = HomeScreen
	case entity.Draw:
		that.banner = Banner{Text: "It's a Draw!", Outcome: entity.Draw}
		that.screen = HomeScreen
	}

	return result
}

// Cell - returns the content of the board cell at (row, col).
func (that *Controller) Cell(row, col int) entity.Cell {
	board := that.manager.Board()
	return board.At(entity.Position{Row: row, Col: col})
}

// TurnHint - names the round and the player to move, shown above the board.
func (that *Controller) TurnHint() string {
	return fmt.Sprintf("Round %d: Player %s's turn", that.manager.Round(), that.manager.Turn())
}
