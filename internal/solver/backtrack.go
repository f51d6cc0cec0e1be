package solver

import (
	"sudoku_solver_go/internal/types"
)

// BacktrackingSolver explores the puzzle depth-first with a single mutable
// board: assign the MRV cell, recurse, undo on failure. Same MRV selection
// and ascending digit order as FrontierSolver, so both engines arrive at
// the same solution, but this one keeps at most one state in memory.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(board *types.Board) (*types.Board, error) {
	cs, err := newConstraintSet(board)
	if err != nil {
		return nil, err
	}

	cells := board.Clone().Cells

	var solve func() bool
	solve = func() bool {
		pos, mask := selectCell(cells, &cs)
		if pos == -1 {
			return true
		}
		// mask == 0 falls through: no digit to try, unwind.
		for d := 1; d <= types.Size; d++ {
			if mask&digitBit(d) == 0 {
				continue
			}
			cells[pos] = d
			cs.place(pos, d)

			if solve() {
				return true
			}

			cs.unplace(pos, d)
			cells[pos] = 0
		}
		return false
	}

	if !solve() {
		return nil, ErrNoSolution
	}
	return &types.Board{Cells: cells}, nil
}
