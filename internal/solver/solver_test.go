package solver

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku_solver_go/internal/types"
)

// A classic puzzle with a unique solution ('.' = blank).
var puzzleRows = []string{
	"53..7....",
	"6..195...",
	".98....6.",
	"8...6...3",
	"4..8.3..1",
	"7...2...6",
	".6....28.",
	"...419..5",
	"....8..79",
}

var solutionRows = []string{
	"534678912",
	"672195348",
	"198342567",
	"859761423",
	"426853791",
	"713924856",
	"961537284",
	"287419635",
	"345286179",
}

// A well-formed puzzle with no solution: row 0 uses digits 1-8, and the 9
// in column 8 leaves the last cell of row 0 without any candidate.
var unsolvableRows = []string{
	"12345678.",
	".........",
	"........9",
	".........",
	".........",
	".........",
	".........",
	".........",
	".........",
}

func engines() map[string]Solver {
	return map[string]Solver{
		"backtrack": NewBacktrackingSolver(),
		"frontier":  NewFrontierSolver(),
	}
}

func mustParse(t *testing.T, rows []string) *types.Board {
	t.Helper()
	board, err := types.ParseGrid(rows)
	require.NoError(t, err)
	return board
}

// requireValidSolution checks that a board is complete and that every row,
// column and box holds each digit exactly once.
func requireValidSolution(t *testing.T, board *types.Board) {
	t.Helper()
	require.True(t, board.IsComplete())
	_, err := newConstraintSet(board)
	require.NoError(t, err)
}

func TestSolveCanonicalPuzzle(t *testing.T) {
	want := mustParse(t, solutionRows)

	for name, s := range engines() {
		t.Run(name, func(t *testing.T) {
			solved, err := s.Solve(mustParse(t, puzzleRows))

			require.NoError(t, err)
			requireValidSolution(t, solved)
			assert.Equal(t, want.Cells, solved.Cells)
		})
	}
}

func TestSolvePreservesGivens(t *testing.T) {
	for name, s := range engines() {
		t.Run(name, func(t *testing.T) {
			board := mustParse(t, puzzleRows)

			solved, err := s.Solve(board)

			require.NoError(t, err)
			for pos, v := range board.Cells {
				if v != 0 {
					assert.Equal(t, v, solved.Cells[pos], "given at position %d changed", pos)
				}
			}
		})
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	for name, s := range engines() {
		t.Run(name, func(t *testing.T) {
			board := mustParse(t, puzzleRows)
			original := board.Clone()

			_, err := s.Solve(board)

			require.NoError(t, err)
			assert.Equal(t, original.Cells, board.Cells)
		})
	}
}

func TestSolveAlreadySolvedBoard(t *testing.T) {
	for name, s := range engines() {
		t.Run(name, func(t *testing.T) {
			board := mustParse(t, solutionRows)

			solved, err := s.Solve(board)

			require.NoError(t, err)
			assert.Equal(t, board.Cells, solved.Cells)
		})
	}
}

// FrontierSolver keeps every sibling candidate state alive at once, which
// makes an all-blank grid impractical for it; the backtracking engine
// completes it near-instantly.
func TestSolveEmptyBoard(t *testing.T) {
	s := NewBacktrackingSolver()

	solved, err := s.Solve(types.NewBoard())

	require.NoError(t, err)
	requireValidSolution(t, solved)
}

func TestSolveUnsolvablePuzzle(t *testing.T) {
	for name, s := range engines() {
		t.Run(name, func(t *testing.T) {
			solved, err := s.Solve(mustParse(t, unsolvableRows))

			assert.ErrorIs(t, err, ErrNoSolution)
			assert.Nil(t, solved)
		})
	}
}

func TestSolveRejectsInvalidPuzzle(t *testing.T) {
	cases := map[string][]string{
		"duplicate in row": {
			"5.....5..",
			".........",
			".........",
			".........",
			".........",
			".........",
			".........",
			".........",
			".........",
		},
		"duplicate in column": {
			"5........",
			".........",
			".........",
			"5........",
			".........",
			".........",
			".........",
			".........",
			".........",
		},
		"duplicate in box": {
			"7........",
			".7.......",
			".........",
			".........",
			".........",
			".........",
			".........",
			".........",
			".........",
		},
	}

	for name, rows := range cases {
		for engine, s := range engines() {
			t.Run(name+"/"+engine, func(t *testing.T) {
				solved, err := s.Solve(mustParse(t, rows))

				assert.ErrorIs(t, err, ErrInvalidPuzzle)
				assert.Nil(t, solved)
			})
		}
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	for name, s := range engines() {
		t.Run(name, func(t *testing.T) {
			first, err := s.Solve(mustParse(t, puzzleRows))
			require.NoError(t, err)
			second, err := s.Solve(mustParse(t, puzzleRows))
			require.NoError(t, err)

			assert.Equal(t, first.Cells, second.Cells)
		})
	}
}

func TestNewConstraintSetMasks(t *testing.T) {
	board := mustParse(t, puzzleRows)

	cs, err := newConstraintSet(board)

	require.NoError(t, err)
	// Row 0 holds 5, 3 and 7.
	assert.Equal(t, digitBit(5)|digitBit(3)|digitBit(7), cs.rows[0])
	// Column 0 holds 5, 6, 8, 4 and 7.
	assert.Equal(t, digitBit(5)|digitBit(6)|digitBit(8)|digitBit(4)|digitBit(7), cs.cols[0])
	// Box 0 holds 5, 3, 6, 9 and 8.
	assert.Equal(t, digitBit(5)|digitBit(3)|digitBit(6)|digitBit(9)|digitBit(8), cs.boxes[0])
}

func TestPlaceUnplaceRoundTrip(t *testing.T) {
	board := mustParse(t, puzzleRows)
	cs, err := newConstraintSet(board)
	require.NoError(t, err)
	before := cs

	cs.place(2, 4) // row 0, column 2, box 0
	assert.NotEqual(t, before, cs)
	assert.Zero(t, cs.candidates(2)&digitBit(4))

	cs.unplace(2, 4)
	assert.Equal(t, before, cs)
}

func TestSelectCellPicksFewestCandidates(t *testing.T) {
	board := mustParse(t, puzzleRows)
	cs, err := newConstraintSet(board)
	require.NoError(t, err)

	pos, mask := selectCell(board.Cells, &cs)

	require.NotEqual(t, -1, pos)
	require.NotZero(t, mask)
	assert.Zero(t, board.Cells[pos])

	// No other blank cell may have fewer candidates.
	best := bits.OnesCount16(mask)
	for p, v := range board.Cells {
		if v != 0 {
			continue
		}
		assert.GreaterOrEqual(t, bits.OnesCount16(cs.candidates(p)), best)
	}
}

func TestSelectCellOnCompleteBoard(t *testing.T) {
	board := mustParse(t, solutionRows)
	cs, err := newConstraintSet(board)
	require.NoError(t, err)

	pos, mask := selectCell(board.Cells, &cs)

	assert.Equal(t, -1, pos)
	assert.Zero(t, mask)
}

func TestSelectCellReportsDeadEnd(t *testing.T) {
	board := mustParse(t, unsolvableRows)
	cs, err := newConstraintSet(board)
	require.NoError(t, err)

	pos, mask := selectCell(board.Cells, &cs)

	// The last cell of row 0 has no candidate left.
	assert.Equal(t, 8, pos)
	assert.Zero(t, mask)
}
