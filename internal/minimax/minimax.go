// Package minimax searches the full tic-tac-toe game tree. X maximizes the utility and O minimizes it.
package minimax

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// Minimax - returns the optimal action for the player to move, or false if the board is terminal.
func Minimax(board tictactoe.Board) (tictactoe.Action, bool) {
	if tictactoe.Terminal(board) {
		return tictactoe.Action{}, false
	}

	if tictactoe.Player(board) == tictactoe.PlayerX {
		_, action, ok := MaxValue(board)
		return action, ok
	}

	_, action, ok := MinValue(board)

	return action, ok
}

// MaxValue - returns the best utility X can force from the board and the action reaching it.
// Only a strictly better value replaces the current best, so among ties the first evaluated action is kept. Terminal boards have no action.
func MaxValue(board tictactoe.Board) (int, tictactoe.Action, bool) {
	if tictactoe.Terminal(board) {
		return tictactoe.Utility(board), tictactoe.Action{}, false
	}

	value := math.MinInt
	var best tictactoe.Action
	found := false

	for _, action := range tictactoe.Actions(board) {
		candidate, _, _ := MinValue(mustResult(board, action))
		if candidate > value {
			value = candidate
			best = action
			found = true
		}
	}

	return value, best, found
}

// MinValue - mirror of MaxValue for O.
func MinValue(board tictactoe.Board) (int, tictactoe.Action, bool) {
	if tictactoe.Terminal(board) {
		return tictactoe.Utility(board), tictactoe.Action{}, false
	}

	value := math.MaxInt
	var best tictactoe.Action
	found := false

	for _, action := range tictactoe.Actions(board) {
		candidate, _, _ := MaxValue(mustResult(board, action))
		if candidate < value {
			value = candidate
			best = action
			found = true
		}
	}

	return value, best, found
}

// Value - returns the game-theoretic value of the board under optimal play.
func Value(board tictactoe.Board) int {
	if tictactoe.Player(board) == tictactoe.PlayerX {
		value, _, _ := MaxValue(board)
		return value
	}

	value, _, _ := MinValue(board)

	return value
}

// OptimalActions - returns every action whose value equals the optimum for the player to move, in Actions order.
func OptimalActions(board tictactoe.Board) []tictactoe.Action {
	if tictactoe.Terminal(board) {
		return nil
	}

	maximizing := tictactoe.Player(board) == tictactoe.PlayerX
	target := Value(board)

	var optimal []tictactoe.Action
	for _, action := range tictactoe.Actions(board) {
		if childValue(mustResult(board, action), maximizing) == target {
			optimal = append(optimal, action)
		}
	}

	return optimal
}

// childValue - value of a child board, which is always reached by the opponent's reply.
func childValue(child tictactoe.Board, maximizing bool) int {
	if maximizing {
		value, _, _ := MinValue(child)
		return value
	}

	value, _, _ := MaxValue(child)

	return value
}

// mustResult - applies an action taken from Actions, which is always legal on that board.
func mustResult(board tictactoe.Board, action tictactoe.Action) tictactoe.Board {
	next, err := tictactoe.Result(board, action)
	if err != nil {
		panic(err)
	}

	return next
}
