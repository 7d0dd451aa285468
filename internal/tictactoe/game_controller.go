package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// Result is what a Place call reports back to the caller.
//
// For Continue, Mark is the player to move next. For Win, Mark is the winner.
// For Rejected, Err holds the reason and nothing was changed.
type Result struct {
	Outcome entity.Outcome
	Mark    entity.Mark
	Err     error
}

func rejected(err error) Result {
	return Result{Outcome: entity.Rejected, Err: err}
}

// GameState owns the board, the current turn and the move count of one game.
type GameState struct {
	board    entity.Board
	turn     entity.Mark
	moves    int
	winner   entity.Mark
	finished bool
}

func NewGameState() *GameState {
	state := &GameState{}
	state.Reset()

	return state
}

// Reset - clears the board and hands the first move to X.
func (that *GameState) Reset() {
	that.board = entity.Board{}
	that.turn = entity.PlayerX
	that.moves = 0
	that.winner = entity.NoMark
	that.finished = false
}

// Place - puts the current player's mark at (row, col) and evaluates the game.
func (that *GameState) Place(row, col int) Result {
	pos := entity.Position{Row: row, Col: col}

	if err := that.validateMove(pos); err != nil {
		return rejected(err)
	}

	mark := that.turn
	that.board[row][col] = mark.Cell()
	that.moves++

	return that.updateGameStatus(mark)
}

// validateMove - checks if the move is valid.
func (that *GameState) validateMove(pos entity.Position) error {
	if !pos.Valid() {
		return apperror.ErrInvalidCell
	}

	if that.finished {
		return apperror.ErrGameFinished
	}

	if that.board.At(pos) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move by mark.
func (that *GameState) updateGameStatus(mark entity.Mark) Result {
	if hasLine(&that.board, mark) {
		that.winner = mark
		that.finished = true

		return Result{Outcome: entity.Win, Mark: mark}
	}

	if that.moves == entity.CellCount {
		that.finished = true

		return Result{Outcome: entity.Draw}
	}

	that.turn = mark.Other()

	return Result{Outcome: entity.Continue, Mark: that.turn}
}

// hasLine - reports whether any row, column or diagonal holds three of mark.
func hasLine(board *entity.Board, mark entity.Mark) bool {
	want := mark.Cell()
	for _, line := range entity.Lines {
		if board.At(line[0]) == want && board.At(line[1]) == want && board.At(line[2]) == want {
			return true
		}
	}

	return false
}

func (that *GameState) Board() entity.Board {
	return that.board
}

// Turn - returns the player to move. After the game concludes it is the player who made the last move.
func (that *GameState) Turn() entity.Mark {
	return that.turn
}

func (that *GameState) Moves() int {
	return that.moves
}

// Winner - returns the winning mark, if any.
func (that *GameState) Winner() (entity.Mark, bool) {
	return that.winner, that.winner != entity.NoMark
}

func (that *GameState) IsFinished() bool {
	return that.finished
}

func (that *GameState) IsDraw() bool {
	return that.finished && that.winner == entity.NoMark
}
