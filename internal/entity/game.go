package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// PlayerTie is stored as the winner of a drawn game.
const PlayerTie tictactoe.Mark = "-"

type Move struct {
	Mark   tictactoe.Mark   `json:"mark"`
	Action tictactoe.Action `json:"action"`
}

type Game struct {
	ID      string          `json:"id"`
	Board   tictactoe.Board `json:"board"`
	Winner  tictactoe.Mark  `json:"winner"`
	Status  string          `json:"status"`
	Turn    tictactoe.Mark  `json:"player_turn"`
	Players []*Player       `json:"players,omitempty"`
	Moves   []Move          `json:"moves,omitempty"`
}

func NewGame(id string) *Game {
	game := &Game{
		ID:    id,
		Board: tictactoe.InitialState(),
	}
	game.UpdateGameState()

	return game
}

// NewGameFromBoard - starts a game from an arbitrary valid position.
func NewGameFromBoard(id string, board tictactoe.Board) (*Game, error) {
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("failed to start game from %s: %w", board, err)
	}

	game := &Game{
		ID:    id,
		Board: board,
	}
	game.UpdateGameState()

	return game, nil
}

func (that *Game) UpdateGameState() {
	if !tictactoe.Terminal(that.Board) {
		that.Status = StatusOngoing
		that.Winner = tictactoe.EmptyCell
		that.Turn = tictactoe.Player(that.Board)

		return
	}

	that.Status = StatusFinished
	that.Turn = tictactoe.EmptyCell

	if winner, ok := tictactoe.Winner(that.Board); ok {
		that.Winner = winner
		return
	}

	that.Winner = PlayerTie
}

func (that *Game) MakeTurn(playerMark tictactoe.Mark, action tictactoe.Action) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	next, err := tictactoe.Result(that.Board, action)
	if err != nil {
		return fmt.Errorf("failed to apply turn: %w", err)
	}

	that.Board = next
	that.Moves = append(that.Moves, Move{Mark: playerMark, Action: action})
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.Winner == PlayerTie
}

// PlayerByMark - returns the player holding the mark, or nil.
func (that *Game) PlayerByMark(mark tictactoe.Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// WinnerKind - returns the bot kind of the winning player, or "" for an unfinished, tied or unseated game.
func (that *Game) WinnerKind() string {
	if !that.IsFinished() || that.IsTie() {
		return ""
	}

	if player := that.PlayerByMark(that.Winner); player != nil {
		return player.Kind
	}

	return ""
}
