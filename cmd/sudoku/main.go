package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/go-resty/resty/v2"

	"sudoku_solver_go/db"
	"sudoku_solver_go/internal/solver"
	"sudoku_solver_go/internal/types"
	"sudoku_solver_go/internal/visualizer"
)

func main() {
	filePtr := flag.String("file", "", "Path to a puzzle file: 9 rows of 9 characters ('1'-'9', '.' or '0')")
	urlPtr := flag.String("url", "", "URL to fetch the puzzle text from instead of a file")
	algoPtr := flag.String("algo", "backtrack", "Solving algorithm. Allowed values are: \"backtrack\" and \"frontier\", where \"backtrack\" is the default")
	uploadPtr := flag.Bool("upload", false, "Upload the solved puzzle to PocketBase")
	flag.Parse()

	rows, err := readPuzzle(*filePtr, *urlPtr)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	board, err := types.ParseGrid(rows)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var s solver.Solver
	switch *algoPtr {
	case "backtrack":
		s = solver.NewBacktrackingSolver()
	case "frontier":
		s = solver.NewFrontierSolver()
	default:
		fmt.Printf("%v is not a valid algorithm\n", *algoPtr)
		os.Exit(1)
	}

	start := time.Now()
	solved, err := s.Solve(board)
	elapsed := time.Since(start)

	if errors.Is(err, solver.ErrNoSolution) {
		fmt.Println("No solution found.")
		return
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Verify solution
	if !verifySolution(solved) {
		fmt.Println("Warning: Invalid solution produced!")
		os.Exit(1)
	}

	fmt.Println("Solved board:")
	for _, line := range solved.Lines() {
		fmt.Println(line)
	}
	fmt.Printf("Solve time: %v\n", elapsed)

	viz := visualizer.NewVisualizer(solved)
	viz.Print()

	if *uploadPtr {
		if err := db.Authenticate(); err != nil {
			fmt.Printf("Error authenticating with PocketBase: %v\n", err)
			return
		}
		record, err := db.UploadSolve(board, solved, *algoPtr, elapsed)
		if err != nil {
			fmt.Printf("Error uploading solve: %v\n", err)
			return
		}
		fmt.Printf("Uploaded solve as record %s\n", record.ID)
	}
}

func readPuzzle(file, url string) ([]string, error) {
	switch {
	case file != "" && url != "":
		return nil, errors.New("use either -file or -url, not both")
	case url != "":
		return fetchPuzzle(url)
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return scanRows(f)
	default:
		fmt.Println("Reading puzzle from stdin (9 rows of 9 characters):")
		return scanRows(os.Stdin)
	}
}

// scanRows collects the non-empty lines of the input, trimming whitespace.
// Row count and row length are validated by the parser, not here.
func scanRows(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	rows := make([]string, 0, types.Size)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows, scanner.Err()
}

func fetchPuzzle(url string) ([]string, error) {
	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch puzzle: %v", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch puzzle: %s", resp.Status())
	}
	return scanRows(strings.NewReader(resp.String()))
}

func verifySolution(board *types.Board) bool {
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	// Verify rows
	for r := 0; r < types.Size; r++ {
		row := make([]int, types.Size)
		copy(row, board.Cells[r*types.Size:(r+1)*types.Size])
		slice.Sort(row)
		if !slice.Equal(row, want) {
			return false
		}
	}

	// Verify columns
	for c := 0; c < types.Size; c++ {
		col := make([]int, 0, types.Size)
		for r := 0; r < types.Size; r++ {
			col = append(col, board.Cells[r*types.Size+c])
		}
		slice.Sort(col)
		if !slice.Equal(col, want) {
			return false
		}
	}

	// Verify boxes
	for b := 0; b < types.Size; b++ {
		box := make([]int, 0, types.Size)
		for pos, v := range board.Cells {
			if types.BoxOf(pos) == b {
				box = append(box, v)
			}
		}
		slice.Sort(box)
		if !slice.Equal(box, want) {
			return false
		}
	}

	return true
}
