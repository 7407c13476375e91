package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// RunApp - plays the configured matches and logs the tally.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var start *tictactoe.Board
	if conf.Match.StartBoard != "" {
		board, err := tictactoe.ParseBoard(conf.Match.StartBoard)
		if err != nil {
			return fmt.Errorf("could not parse start board: %w", err)
		}

		start = &board
	}

	botX, err := service.NewBotService(conf.Match.PlayerX, conf.Search.Parallel)
	if err != nil {
		return fmt.Errorf("could not create bot for X: %w", err)
	}

	botO, err := service.NewBotService(conf.Match.PlayerO, conf.Search.Parallel)
	if err != nil {
		return fmt.Errorf("could not create bot for O: %w", err)
	}

	runner := usecase.NewMatchRunner(logger,
		&entity.Player{Mark: tictactoe.PlayerX, Kind: conf.Match.PlayerX},
		&entity.Player{Mark: tictactoe.PlayerO, Kind: conf.Match.PlayerO},
		botX, botO)

	log.Info("Starting matches",
		"count", conf.Match.Count,
		"player_x", conf.Match.PlayerX,
		"player_o", conf.Match.PlayerO,
		"parallel_search", conf.Search.Parallel,
	)

	tally, err := runner.PlayMany(ctx, conf.Match.Count, conf.Match.Workers, start)
	if err != nil {
		return fmt.Errorf("matches failed: %w", err)
	}

	log.Info("Matches finished", "x_wins", tally.XWins, "o_wins", tally.OWins, "draws", tally.Draws)

	return nil
}
