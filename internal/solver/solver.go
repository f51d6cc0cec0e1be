package solver

import (
	"errors"

	"sudoku_solver_go/internal/types"
)

var (
	// ErrInvalidPuzzle is returned when the input board already breaks a
	// constraint: the same digit twice in one row, column or box.
	ErrInvalidPuzzle = errors.New("invalid puzzle: duplicate digit in row, column or box")
	// ErrNoSolution is returned when the search space is exhausted. It is a
	// defined terminal outcome, not a malfunction.
	ErrNoSolution = errors.New("no solution found")
)

// Solver interface defines methods for solving Sudoku puzzles
type Solver interface {
	Solve(board *types.Board) (*types.Board, error)
}
