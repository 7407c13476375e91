package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

var errBotCrashed = errors.New("bot crashed")

type mockBot struct {
	mock.Mock
}

func (that *mockBot) MakeTurn(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func newMinimaxRunner(t *testing.T, st *suite.Suite) *MatchRunner {
	t.Helper()

	botX, err := service.NewBotService(entity.BotMinimax, false)
	require.NoError(t, err)

	botO, err := service.NewBotService(entity.BotMinimax, true)
	require.NoError(t, err)

	return NewMatchRunner(st.Logger,
		&entity.Player{Mark: tictactoe.PlayerX, Kind: entity.BotMinimax},
		&entity.Player{Mark: tictactoe.PlayerO, Kind: entity.BotMinimax},
		botX, botO)
}

func TestMatchRunner_Play(t *testing.T) {
	t.Run("Minimax against minimax draws", func(t *testing.T) {
		ctx, st := suite.New(t)
		runner := newMinimaxRunner(t, st)

		// Given: a new game between two minimax bots
		game, err := runner.NewGame(nil)
		require.NoError(t, err)
		require.NotEmpty(t, game.ID)
		require.Len(t, game.Players, 2)

		// When: the match is played out
		finished, err := runner.Play(ctx, game)

		// Then: it should end in a draw on a full board
		require.NoError(t, err)
		assert.True(t, finished.IsFinished())
		assert.True(t, finished.IsTie())
		assert.Len(t, finished.Moves, 9)
	})

	t.Run("Starts from a given board", func(t *testing.T) {
		ctx, st := suite.New(t)
		runner := newMinimaxRunner(t, st)

		// Given: X one move from winning
		start := tictactoe.Board{
			{tictactoe.PlayerX, tictactoe.PlayerX, tictactoe.EmptyCell},
			{tictactoe.PlayerO, tictactoe.PlayerO, tictactoe.EmptyCell},
			{tictactoe.EmptyCell, tictactoe.EmptyCell, tictactoe.EmptyCell},
		}
		game, err := runner.NewGame(&start)
		require.NoError(t, err)

		// When: the match is played out
		finished, err := runner.Play(ctx, game)

		// Then: X should win in one move
		require.NoError(t, err)
		assert.Equal(t, tictactoe.PlayerX, finished.Winner)
		assert.Len(t, finished.Moves, 1)
		assert.Equal(t, entity.BotMinimax, finished.WinnerKind())
	})

	t.Run("Error on invalid start board", func(t *testing.T) {
		_, st := suite.New(t)
		runner := newMinimaxRunner(t, st)

		start := tictactoe.Board{{tictactoe.PlayerO}}

		_, err := runner.NewGame(&start)

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Propagates bot errors", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: X is played by a bot that fails
		botX := &mockBot{}
		botX.On("MakeTurn", mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(errBotCrashed).
			Once()

		runner := NewMatchRunner(st.Logger,
			&entity.Player{Mark: tictactoe.PlayerX},
			&entity.Player{Mark: tictactoe.PlayerO},
			botX, &mockBot{})

		game, err := runner.NewGame(nil)
		require.NoError(t, err)

		// When: the match is played
		_, err = runner.Play(ctx, game)

		// Then: the bot error should be returned
		require.ErrorIs(t, err, errBotCrashed)
		botX.AssertExpectations(t)
	})

	t.Run("Alternates bots", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: two mocked bots that play the first free cell
		firstFree := func(args mock.Arguments) {
			game := args.Get(1).(*entity.Game)
			require.NoError(t, game.MakeTurn(game.Turn, tictactoe.Actions(game.Board)[0]))
		}

		botX := &mockBot{}
		botX.On("MakeTurn", mock.Anything, mock.Anything).Run(firstFree).Return(nil)
		botO := &mockBot{}
		botO.On("MakeTurn", mock.Anything, mock.Anything).Run(firstFree).Return(nil)

		runner := NewMatchRunner(st.Logger,
			&entity.Player{Mark: tictactoe.PlayerX},
			&entity.Player{Mark: tictactoe.PlayerO},
			botX, botO)

		game, err := runner.NewGame(nil)
		require.NoError(t, err)

		// When: the match is played
		finished, err := runner.Play(ctx, game)

		// Then: X completes the anti-diagonal on its fourth turn
		require.NoError(t, err)
		assert.Equal(t, tictactoe.PlayerX, finished.Winner)
		botX.AssertNumberOfCalls(t, "MakeTurn", 4)
		botO.AssertNumberOfCalls(t, "MakeTurn", 3)
	})

	t.Run("Stops on canceled context", func(t *testing.T) {
		_, st := suite.New(t)
		runner := newMinimaxRunner(t, st)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		game, err := runner.NewGame(nil)
		require.NoError(t, err)

		_, err = runner.Play(ctx, game)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Missing bot", func(t *testing.T) {
		ctx, st := suite.New(t)

		runner := NewMatchRunner(st.Logger,
			&entity.Player{Mark: tictactoe.PlayerX},
			&entity.Player{Mark: tictactoe.PlayerO},
			nil, nil)

		game, err := runner.NewGame(nil)
		require.NoError(t, err)

		_, err = runner.Play(ctx, game)

		require.ErrorIs(t, err, ErrNoBotForMark)
	})
}

func TestMatchRunner_PlayMany(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: minimax for X against a random O, starting after X took the center
	botX, err := service.NewBotService(entity.BotMinimax, false)
	require.NoError(t, err)
	botO, err := service.NewBotService(entity.BotRandom, false)
	require.NoError(t, err)

	runner := NewMatchRunner(st.Logger,
		&entity.Player{Mark: tictactoe.PlayerX, Kind: entity.BotMinimax},
		&entity.Player{Mark: tictactoe.PlayerO, Kind: entity.BotRandom},
		botX, botO)

	start := tictactoe.Board{
		{tictactoe.EmptyCell, tictactoe.EmptyCell, tictactoe.EmptyCell},
		{tictactoe.EmptyCell, tictactoe.PlayerX, tictactoe.EmptyCell},
		{tictactoe.EmptyCell, tictactoe.EmptyCell, tictactoe.EmptyCell},
	}

	// When: playing several matches concurrently
	tally, err := runner.PlayMany(ctx, 8, 4, &start)

	// Then: every match is counted and minimax never loses
	require.NoError(t, err)
	assert.Equal(t, 8, tally.Total())
	assert.Zero(t, tally.OWins)
}
