package visualizer

import (
	"fmt"
	"strings"

	"sudoku_solver_go/internal/types"
)

// Visualizer handles board visualization
type Visualizer struct {
	board *types.Board
}

func NewVisualizer(board *types.Board) *Visualizer {
	return &Visualizer{board: board}
}

func (v *Visualizer) Print() {
	// Print top border
	v.printHorizontalBorder()

	// Print rows
	for r := 0; r < types.Size; r++ {
		fmt.Print("│ ")
		for c := 0; c < types.Size; c++ {
			val := v.board.Cells[r*types.Size+c]
			if val == 0 {
				fmt.Print(".")
			} else {
				fmt.Printf("%d", val)
			}
			fmt.Print(" ")

			// Print vertical borders
			if (c+1)%types.BoxSize == 0 && c < types.Size-1 {
				fmt.Print("│ ")
			}
		}
		fmt.Println("│")

		// Print horizontal borders
		if (r+1)%types.BoxSize == 0 && r < types.Size-1 {
			v.printHorizontalBorder()
		}
	}

	// Print bottom border
	v.printHorizontalBorder()
}

func (v *Visualizer) printHorizontalBorder() {
	fmt.Print("├")
	for c := 0; c < types.Size; c++ {
		fmt.Print(strings.Repeat("─", 2))
		if (c+1)%types.BoxSize == 0 && c < types.Size-1 {
			fmt.Print("┼")
		}
	}
	fmt.Println("┤")
}
