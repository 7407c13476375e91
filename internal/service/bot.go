package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

// NewBotService - builds the bot for the given kind. parallel only affects the minimax bot.
func NewBotService(kind string, parallel bool) (BotService, error) {
	switch kind {
	case entity.BotMinimax:
		return &minimaxBot{parallel: parallel}, nil
	case entity.BotRandom:
		return &randomBot{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownBotKind, kind)
	}
}

type minimaxBot struct {
	parallel bool
}

func (that *minimaxBot) MakeTurn(ctx context.Context, game *entity.Game) error {
	var (
		action tictactoe.Action
		ok     bool
		err    error
	)

	if that.parallel {
		action, ok, err = minimax.Parallel(ctx, game.Board)
		if err != nil {
			return fmt.Errorf("failed to search: %w", err)
		}
	} else {
		action, ok = minimax.Minimax(game.Board)
	}

	if !ok {
		return ErrNoAvailableMoves
	}

	if err = game.MakeTurn(game.Turn, action); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

type randomBot struct{}

func (that *randomBot) MakeTurn(_ context.Context, game *entity.Game) error {
	if tictactoe.Terminal(game.Board) {
		return ErrNoAvailableMoves
	}

	availableCells := tictactoe.Actions(game.Board)
	chosenCell := availableCells[rand.Intn(len(availableCells))] //nolint: gosec // it's ok

	if err := game.MakeTurn(game.Turn, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
