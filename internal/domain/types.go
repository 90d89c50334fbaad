package domain

import "strings"

// BoardConfig holds the parameters a board is generated from.
// No validation happens here; see validator.CheckConfig.
type BoardConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	MinBalls int `json:"minBalls"`
	MaxBalls int `json:"maxBalls"`
}

// NewBoardConfig builds a config as given.
func NewBoardConfig(width, height, minBalls, maxBalls int) BoardConfig {
	return BoardConfig{Width: width, Height: height, MinBalls: minBalls, MaxBalls: maxBalls}
}

// Cells is the number of distinct cells on the board.
func (c BoardConfig) Cells() int { return c.Width * c.Height }

// Cell identifies a grid position.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BoardState is a generated board with its hidden balls.
// Grid is indexed Grid[x][y]: Width columns of Height cells each.
type BoardState struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Balls  int      `json:"balls"`
	Grid   [][]bool `json:"grid"`
}

// Occupied reports whether a ball sits at (x, y). Out-of-range cells are empty.
func (s BoardState) Occupied(x, y int) bool {
	if x < 0 || x >= len(s.Grid) {
		return false
	}
	col := s.Grid[x]
	if y < 0 || y >= len(col) {
		return false
	}
	return col[y]
}

// Cells lists occupied cells in x-major order.
func (s BoardState) Cells() []Cell {
	out := make([]Cell, 0, s.Balls)
	for x, col := range s.Grid {
		for y, ball := range col {
			if ball {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return out
}

// Equal compares two boards by value.
func (s BoardState) Equal(o BoardState) bool {
	if s.Width != o.Width || s.Height != o.Height || s.Balls != o.Balls {
		return false
	}
	if len(s.Grid) != len(o.Grid) {
		return false
	}
	for x := range s.Grid {
		if len(s.Grid[x]) != len(o.Grid[x]) {
			return false
		}
		for y := range s.Grid[x] {
			if s.Grid[x][y] != o.Grid[x][y] {
				return false
			}
		}
	}
	return true
}

// String renders the board one row (y) per line: '.' empty, 'O' ball.
func (s BoardState) String() string {
	var sb strings.Builder
	for y := 0; y < s.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width; x++ {
			if s.Occupied(x, y) {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
