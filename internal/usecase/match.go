package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNoBotForMark = errors.New("no bot for mark")

type bot interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

// Tally counts outcomes over several matches.
type Tally struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

func (that *Tally) Add(game *entity.Game) {
	switch game.Winner {
	case tictactoe.PlayerX:
		that.XWins++
	case tictactoe.PlayerO:
		that.OWins++
	case entity.PlayerTie:
		that.Draws++
	}
}

func (that *Tally) Total() int {
	return that.XWins + that.OWins + that.Draws
}

// MatchRunner plays bots against each other until a game ends.
type MatchRunner struct {
	logger *slog.Logger

	players []*entity.Player
	bots    map[tictactoe.Mark]bot
}

func NewMatchRunner(logger *slog.Logger, playerX, playerO *entity.Player, botX, botO bot) *MatchRunner {
	return &MatchRunner{
		logger: logger.With("component", "match"),

		players: []*entity.Player{playerX, playerO},
		bots: map[tictactoe.Mark]bot{
			tictactoe.PlayerX: botX,
			tictactoe.PlayerO: botO,
		},
	}
}

// NewGame - creates a game with a fresh id, from start if given or from the empty board.
func (that *MatchRunner) NewGame(start *tictactoe.Board) (*entity.Game, error) {
	id := uuid.NewString()

	game := entity.NewGame(id)
	if start != nil {
		var err error
		if game, err = entity.NewGameFromBoard(id, *start); err != nil {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}
	}

	game.Players = that.players

	return game, nil
}

// Play - lets the bots take turns until the game is finished.
func (that *MatchRunner) Play(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("match interrupted: %w", err)
		}

		mark := game.Turn
		current, ok := that.bots[mark]
		if !ok || current == nil {
			return game, fmt.Errorf("%w: %s", ErrNoBotForMark, mark)
		}

		if err := current.MakeTurn(ctx, game); err != nil {
			return game, fmt.Errorf("failed to make turn for %s: %w", mark, err)
		}

		last := game.Moves[len(game.Moves)-1]
		log.Debug("turn made", "mark", last.Mark, "row", last.Action.Row, "col", last.Action.Col, "board", game.Board.String())
	}

	log.Info("game finished", "winner", game.Winner, "winner_kind", game.WinnerKind(), "moves", len(game.Moves), "board", game.Board.String())

	return game, nil
}

// PlayMany - plays count matches on at most workers goroutines.
func (that *MatchRunner) PlayMany(ctx context.Context, count, workers int, start *tictactoe.Board) (Tally, error) {
	var (
		mu    sync.Mutex
		tally Tally
	)

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for range count {
		g.Go(func() error {
			game, err := that.NewGame(start)
			if err != nil {
				return err
			}

			finished, err := that.Play(gctx, game)
			if err != nil {
				return err
			}

			mu.Lock()
			tally.Add(finished)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return tally, fmt.Errorf("failed to play matches: %w", err)
	}

	return tally, nil
}
