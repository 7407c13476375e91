package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

const Size = 3

// Board is a 3x3 grid stored by value, so assigning or passing a Board copies it.
type Board [Size][Size]Mark

// Action identifies a cell by row and column, both in [0, Size).
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WinCombos lists every line that wins the game: rows, then columns, then diagonals.
var WinCombos = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// InitialState - returns the all-empty board.
func InitialState() Board {
	return Board{}
}

// Player - returns the mark whose turn it is on the board. X moves whenever the counts are equal.
func Player(board Board) Mark {
	var xCount, oCount int

	for _, row := range board {
		for _, cell := range row {
			switch cell {
			case PlayerX:
				xCount++
			case PlayerO:
				oCount++
			}
		}
	}

	if xCount == oCount {
		return PlayerX
	}

	return PlayerO
}

// Actions - returns every empty cell of the board in row-major order.
func Actions(board Board) []Action {
	actions := make([]Action, 0, Size*Size)

	for i, row := range board {
		for j, cell := range row {
			if cell == EmptyCell {
				actions = append(actions, Action{Row: i, Col: j})
			}
		}
	}

	return actions
}

// Result - returns a copy of the board with the current player's mark placed at action.
func Result(board Board, action Action) (Board, error) {
	if !action.InBounds() {
		return board, fmt.Errorf("%w: cell (%d, %d) is out of range", apperror.ErrInvalidAction, action.Row, action.Col)
	}

	if board[action.Row][action.Col] != EmptyCell {
		return board, fmt.Errorf("%w: cell (%d, %d) is already occupied", apperror.ErrInvalidAction, action.Row, action.Col)
	}

	next := board
	next[action.Row][action.Col] = Player(board)

	return next, nil
}

// Winner - returns the mark that completes a line, if any.
func Winner(board Board) (Mark, bool) {
	for _, combo := range WinCombos {
		a := board[combo[0].Row][combo[0].Col]
		b := board[combo[1].Row][combo[1].Col]
		c := board[combo[2].Row][combo[2].Col]

		if a != EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return EmptyCell, false
}

// Terminal - reports whether the game is over by a win or a full board.
func Terminal(board Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}

	return EmptyCount(board) == 0
}

// Utility - returns 1 if X has won, -1 if O has won and 0 otherwise.
func Utility(board Board) int {
	switch mark, _ := Winner(board); mark {
	case PlayerX:
		return 1
	case PlayerO:
		return -1
	default:
		return 0
	}
}

func EmptyCount(board Board) int {
	count := 0

	for _, row := range board {
		for _, cell := range row {
			if cell == EmptyCell {
				count++
			}
		}
	}

	return count
}

func Opponent(mark Mark) Mark {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}

func (that Action) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Action) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Validate - checks that the board only holds known marks and that X is never behind O nor more than one move ahead.
func (that Board) Validate() error {
	var xCount, oCount int

	for i, row := range that {
		for j, cell := range row {
			switch cell {
			case PlayerX:
				xCount++
			case PlayerO:
				oCount++
			case EmptyCell:
			default:
				return fmt.Errorf("%w: unknown mark %q at (%d, %d)", apperror.ErrInvalidBoard, cell, i, j)
			}
		}
	}

	if xCount < oCount || xCount > oCount+1 {
		return fmt.Errorf("%w: %d X marks and %d O marks", apperror.ErrInvalidBoard, xCount, oCount)
	}

	return nil
}

// String - renders the board row by row, with '.' for empty cells and '/' between rows.
func (that Board) String() string {
	var sb strings.Builder

	for i, row := range that {
		if i > 0 {
			sb.WriteByte('/')
		}

		for _, cell := range row {
			if cell == EmptyCell {
				sb.WriteByte('.')
				continue
			}

			sb.WriteString(string(cell))
		}
	}

	return sb.String()
}

// ParseBoard - reads the notation produced by Board.String. Row separators are optional, but when
// present there must be exactly one between each pair of rows. '_', '-' or ' ' are accepted as empty cells too.
func ParseBoard(notation string) (Board, error) {
	var board Board

	cells := notation
	if strings.Contains(notation, "/") {
		rows := strings.Split(notation, "/")
		if len(rows) != Size {
			return board, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidBoard, Size, len(rows))
		}

		for i, row := range rows {
			if len(row) != Size {
				return board, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidBoard, i, len(row))
			}
		}

		cells = strings.Join(rows, "")
	}

	if len(cells) != Size*Size {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, Size*Size, len(cells))
	}

	for idx, ch := range []byte(cells) {
		var mark Mark

		switch ch {
		case 'X', 'x':
			mark = PlayerX
		case 'O', 'o':
			mark = PlayerO
		case '.', '_', '-', ' ':
			mark = EmptyCell
		default:
			return board, fmt.Errorf("%w: unexpected symbol %q", apperror.ErrInvalidBoard, ch)
		}

		board[idx/Size][idx%Size] = mark
	}

	return board, nil
}
