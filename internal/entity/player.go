package entity

import "github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"

const (
	BotMinimax = "minimax"
	BotRandom  = "random"
)

type Player struct {
	Mark tictactoe.Mark `json:"mark"`
	Kind string         `json:"kind"`
}
