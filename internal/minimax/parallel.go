package minimax

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// Parallel - same answer as Minimax, with each top-level branch searched in its own goroutine.
// Branches share nothing, so the only coordination is collecting their values.
func Parallel(ctx context.Context, board tictactoe.Board) (tictactoe.Action, bool, error) {
	if tictactoe.Terminal(board) {
		return tictactoe.Action{}, false, nil
	}

	maximizing := tictactoe.Player(board) == tictactoe.PlayerX
	actions := tictactoe.Actions(board)
	values := make([]int, len(actions))

	g, gctx := errgroup.WithContext(ctx)
	for i, action := range actions {
		next, err := tictactoe.Result(board, action)
		if err != nil {
			return tictactoe.Action{}, false, fmt.Errorf("failed to apply action %s: %w", action, err)
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			values[i] = childValue(next, maximizing)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return tictactoe.Action{}, false, fmt.Errorf("search canceled: %w", err)
	}

	// reduce in Actions order with strict comparison, as MaxValue and MinValue do
	best := math.MinInt
	if !maximizing {
		best = math.MaxInt
	}

	var bestAction tictactoe.Action
	for i, value := range values {
		if (maximizing && value > best) || (!maximizing && value < best) {
			best = value
			bestAction = actions[i]
		}
	}

	return bestAction, true, nil
}
