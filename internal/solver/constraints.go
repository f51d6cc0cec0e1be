package solver

import (
	"fmt"
	"math/bits"

	"sudoku_solver_go/internal/types"
)

// allDigits has one bit set per digit 1-9.
const allDigits = 0x1FF

// digitBit maps digit d (1-9) to its mask bit.
func digitBit(d int) uint16 {
	return 1 << (d - 1)
}

// constraintSet tracks the digits already used in every row, column and box
// as 9-bit masks. Assigning it copies all three arrays, so no two search
// states ever share masks.
type constraintSet struct {
	rows  [types.Size]uint16
	cols  [types.Size]uint16
	boxes [types.Size]uint16
}

// newConstraintSet scans the assigned cells of a board once and builds the
// used-digit masks. Each digit is checked against the accumulated masks
// before being added, so a duplicate within any unit surfaces as
// ErrInvalidPuzzle here, before any search starts.
func newConstraintSet(board *types.Board) (constraintSet, error) {
	var cs constraintSet
	if len(board.Cells) != types.CellCount {
		return cs, fmt.Errorf("board must have %d cells, got %d", types.CellCount, len(board.Cells))
	}
	for pos, v := range board.Cells {
		if v == 0 {
			continue
		}
		r, c, b := types.RowOf(pos), types.ColOf(pos), types.BoxOf(pos)
		m := digitBit(v)
		if cs.rows[r]&m != 0 || cs.cols[c]&m != 0 || cs.boxes[b]&m != 0 {
			return cs, fmt.Errorf("%w: digit %d at row %d, column %d", ErrInvalidPuzzle, v, r, c)
		}
		cs.rows[r] |= m
		cs.cols[c] |= m
		cs.boxes[b] |= m
	}
	return cs, nil
}

// place marks digit d as used in the units covering pos.
func (cs *constraintSet) place(pos, d int) {
	m := digitBit(d)
	cs.rows[types.RowOf(pos)] |= m
	cs.cols[types.ColOf(pos)] |= m
	cs.boxes[types.BoxOf(pos)] |= m
}

// unplace reverses place, freeing digit d in the units covering pos.
func (cs *constraintSet) unplace(pos, d int) {
	m := digitBit(d)
	cs.rows[types.RowOf(pos)] &^= m
	cs.cols[types.ColOf(pos)] &^= m
	cs.boxes[types.BoxOf(pos)] &^= m
}

// candidates returns the mask of digits still legal at pos.
func (cs *constraintSet) candidates(pos int) uint16 {
	used := cs.rows[types.RowOf(pos)] | cs.cols[types.ColOf(pos)] | cs.boxes[types.BoxOf(pos)]
	return ^used & allDigits
}

// selectCell finds the blank cell with the fewest candidate digits (MRV).
// Returns pos == -1 when the board has no blanks left, i.e. it is solved.
// A returned mask of 0 means the cell (and so the whole state) is a dead
// end. Ties go to the first cell in row-major order, and a single-candidate
// cell stops the scan early since it cannot be beaten.
func selectCell(cells []int, cs *constraintSet) (pos int, mask uint16) {
	pos = -1
	bestCount := types.Size + 1
	for p, v := range cells {
		if v != 0 {
			continue
		}
		cand := cs.candidates(p)
		if cand == 0 {
			return p, 0
		}
		if count := bits.OnesCount16(cand); count < bestCount {
			bestCount = count
			pos = p
			mask = cand
			if bestCount == 1 {
				break
			}
		}
	}
	return pos, mask
}
