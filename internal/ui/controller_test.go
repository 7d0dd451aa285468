package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

type mockGameManager struct {
	mock.Mock
}

func (m *mockGameManager) NewGame(ctx context.Context) {
	m.Called(ctx)
}

func (m *mockGameManager) MakeTurn(ctx context.Context, row, col int) tictactoe.Result {
	args := m.Called(ctx, row, col)
	return args.Get(0).(tictactoe.Result)
}

func (m *mockGameManager) Board() entity.Board {
	args := m.Called()
	return args.Get(0).(entity.Board)
}

func (m *mockGameManager) Turn() entity.Mark {
	args := m.Called()
	return args.Get(0).(entity.Mark)
}

func (m *mockGameManager) Round() int {
	args := m.Called()
	return args.Int(0)
}

func TestController_Play(t *testing.T) {
	ctx := context.Background()

	// Given: a controller on the home screen
	manager := &mockGameManager{}
	manager.On("NewGame", ctx).Once()
	controller := NewController(manager)
	require.Equal(t, HomeScreen, controller.Screen())
	require.True(t, controller.Banner().IsZero())

	// When: Play is pressed
	controller.Play(ctx)

	// Then: a game is started and the board is shown
	assert.Equal(t, BoardScreen, controller.Screen())
	manager.AssertExpectations(t)
}

func TestController_Activate(t *testing.T) {
	ctx := context.Background()

	newPlaying := func(t *testing.T) (*Controller, *mockGameManager) {
		t.Helper()

		manager := &mockGameManager{}
		manager.On("NewGame", ctx)
		controller := NewController(manager)
		controller.Play(ctx)

		return controller, manager
	}

	t.Run("Continue keeps the board", func(t *testing.T) {
		controller, manager := newPlaying(t)
		manager.On("MakeTurn", ctx, 1, 1).Return(tictactoe.Result{Outcome: entity.Continue, Mark: entity.PlayerO}).Once()

		result := controller.Activate(ctx, 1, 1)

		assert.Equal(t, entity.Continue, result.Outcome)
		assert.Equal(t, BoardScreen, controller.Screen())
		assert.True(t, controller.Banner().IsZero())
	})

	t.Run("Rejected changes nothing", func(t *testing.T) {
		controller, manager := newPlaying(t)
		manager.On("MakeTurn", ctx, 0, 0).Return(tictactoe.Result{Outcome: entity.Rejected, Err: apperror.ErrCellOccupied}).Once()

		result := controller.Activate(ctx, 0, 0)

		require.ErrorIs(t, result.Err, apperror.ErrCellOccupied)
		assert.Equal(t, BoardScreen, controller.Screen())
		assert.True(t, controller.Banner().IsZero())
	})

	t.Run("Win returns home with the winner banner", func(t *testing.T) {
		// Given: a game in progress
		controller, manager := newPlaying(t)
		manager.On("MakeTurn", ctx, 0, 2).Return(tictactoe.Result{Outcome: entity.Win, Mark: entity.PlayerO}).Once()

		// When: the winning cell is clicked
		controller.Activate(ctx, 0, 2)

		// Then: the home screen announces the winner
		assert.Equal(t, HomeScreen, controller.Screen())
		assert.Equal(t, Banner{Text: "Player O Wins!", Outcome: entity.Win}, controller.Banner())
	})

	t.Run("Draw returns home with the draw banner", func(t *testing.T) {
		controller, manager := newPlaying(t)
		manager.On("MakeTurn", ctx, 2, 2).Return(tictactoe.Result{Outcome: entity.Draw}).Once()

		controller.Activate(ctx, 2, 2)

		assert.Equal(t, HomeScreen, controller.Screen())
		assert.Equal(t, Banner{Text: "It's a Draw!", Outcome: entity.Draw}, controller.Banner())
	})

	t.Run("Banner survives the next game until it ends", func(t *testing.T) {
		controller, manager := newPlaying(t)
		manager.On("MakeTurn", ctx, 0, 0).Return(tictactoe.Result{Outcome: entity.Win, Mark: entity.PlayerX}).Once()
		manager.On("MakeTurn", ctx, 1, 1).Return(tictactoe.Result{Outcome: entity.Draw}).Once()

		controller.Activate(ctx, 0, 0)
		controller.Play(ctx)
		assert.Equal(t, "Player X Wins!", controller.Banner().Text)

		controller.Activate(ctx, 1, 1)
		assert.Equal(t, "It's a Draw!", controller.Banner().Text)
	})

	t.Run("Clicks outside the board screen are ignored", func(t *testing.T) {
		manager := &mockGameManager{}
		controller := NewController(manager)

		result := controller.Activate(ctx, 0, 0)

		require.ErrorIs(t, result.Err, ErrNoGameInProgress)
		manager.AssertNotCalled(t, "MakeTurn", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestController_Cell(t *testing.T) {
	manager := &mockGameManager{}
	manager.On("Board").Return(entity.Board{{entity.CellX}, {}, {entity.EmptyCell, entity.EmptyCell, entity.CellO}})
	controller := NewController(manager)

	assert.Equal(t, entity.CellX, controller.Cell(0, 0))
	assert.Equal(t, entity.CellO, controller.Cell(2, 2))
	assert.Equal(t, entity.EmptyCell, controller.Cell(1, 1))
}

func TestController_TurnHint(t *testing.T) {
	// Given: the second round with O to move
	manager := &mockGameManager{}
	manager.On("Round").Return(2)
	manager.On("Turn").Return(entity.PlayerO)
	controller := NewController(manager)

	// Then: the hint names both
	assert.Equal(t, "Round 2: Player O's turn", controller.TurnHint())
}
