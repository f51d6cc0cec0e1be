package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/samber/lo"
)

const (
	// Size is the side length of the grid.
	Size = 9
	// BoxSize is the side length of one 3x3 box.
	BoxSize = 3
	// CellCount is the total number of cells on a board.
	CellCount = Size * Size
)

// ErrMalformedInput is returned when the textual grid has the wrong shape
// or contains characters outside '1'-'9', '.' and '0'.
var ErrMalformedInput = errors.New("malformed input")

// Board represents a 9x9 Sudoku grid as a flat row-major cell array.
// A cell holds 0 when blank, or its digit 1-9.
type Board struct {
	Cells []int `json:"cells"`
}

// NewBoard creates an empty Board (all cells blank)
func NewBoard() *Board {
	return &Board{Cells: make([]int, CellCount)}
}

// RowOf returns the row index (0-8) of a flat cell position.
func RowOf(pos int) int { return pos / Size }

// ColOf returns the column index (0-8) of a flat cell position.
func ColOf(pos int) int { return pos % Size }

// BoxOf returns the 3x3 box index (0-8) of a flat cell position.
func BoxOf(pos int) int {
	return (RowOf(pos)/BoxSize)*BoxSize + ColOf(pos)/BoxSize
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]int, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Cells: cells}
}

// IsComplete reports whether every cell holds a digit.
func (b *Board) IsComplete() bool {
	for _, v := range b.Cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// ParseGrid converts 9 rows of 9 characters into a Board. Digits '1'-'9'
// are fixed values; '.' and '0' both mark blank cells.
func ParseGrid(rows []string) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedInput, Size, len(rows))
	}
	if !slice.Every(rows, func(_ int, row string) bool { return len(row) == Size }) {
		return nil, fmt.Errorf("%w: every row must be exactly %d characters", ErrMalformedInput, Size)
	}

	board := NewBoard()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch ch := rows[r][c]; {
			case ch == '.' || ch == '0':
				// blank, cell stays 0
			case ch >= '1' && ch <= '9':
				board.Cells[r*Size+c] = int(ch - '0')
			default:
				return nil, fmt.Errorf("%w: invalid character %q at row %d, column %d",
					ErrMalformedInput, ch, r, c)
			}
		}
	}
	return board, nil
}

// Lines renders the board as 9 lines of 9 space-separated digits.
func (b *Board) Lines() []string {
	lines := make([]string, Size)
	for r := 0; r < Size; r++ {
		row := b.Cells[r*Size : (r+1)*Size]
		lines[r] = strings.Join(lo.Map(row, func(v int, _ int) string {
			return strconv.Itoa(v)
		}), " ")
	}
	return lines
}

// String renders the board in the compact puzzle form, '.' for blanks.
func (b *Board) String() string {
	var sb strings.Builder
	for pos, v := range b.Cells {
		if v == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(byte('0' + v))
		}
		if ColOf(pos) == Size-1 && pos != CellCount-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ToJSON converts the board to JSON bytes
func (b *Board) ToJSON() ([]byte, error) {
	return json.Marshal(b)
}

// FromJSON creates a Board from JSON bytes
func FromJSON(data []byte) (*Board, error) {
	var board Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, err
	}
	if len(board.Cells) != CellCount {
		return nil, fmt.Errorf("%w: board must have %d cells, got %d",
			ErrMalformedInput, CellCount, len(board.Cells))
	}
	return &board, nil
}
