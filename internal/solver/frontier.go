package solver

import (
	"sudoku_solver_go/internal/types"
)

// searchState is one independent snapshot in the frontier: a board plus the
// constraint masks matching it. Nothing is shared with other states.
type searchState struct {
	cells []int
	cs    constraintSet
}

// FrontierSolver explores the puzzle breadth-first: a FIFO frontier of
// fully copied search states, expanding every candidate digit of the MRV
// cell into its own successor state. Memory-hungry compared to
// BacktrackingSolver, since all sibling candidates live in the frontier at
// once, but it finds the same solution.
type FrontierSolver struct{}

func NewFrontierSolver() *FrontierSolver { return &FrontierSolver{} }

func (s *FrontierSolver) Solve(board *types.Board) (*types.Board, error) {
	cs, err := newConstraintSet(board)
	if err != nil {
		return nil, err
	}

	start := board.Clone()
	if start.IsComplete() {
		return start, nil
	}

	frontier := []searchState{{cells: start.Cells, cs: cs}}
	for len(frontier) > 0 {
		st := frontier[0]
		frontier = frontier[1:]

		pos, mask := selectCell(st.cells, &st.cs)
		if pos == -1 {
			return &types.Board{Cells: st.cells}, nil
		}
		if mask == 0 {
			// dead end, abandon this state
			continue
		}

		for d := 1; d <= types.Size; d++ {
			if mask&digitBit(d) == 0 {
				continue
			}
			next := make([]int, types.CellCount)
			copy(next, st.cells)
			next[pos] = d
			ncs := st.cs
			ncs.place(pos, d)
			frontier = append(frontier, searchState{cells: next, cs: ncs})
		}
	}

	return nil, ErrNoSolution
}
