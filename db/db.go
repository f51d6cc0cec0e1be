package db

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"

	"sudoku_solver_go/internal/types"
)

// SolveData is the puzzle/solution payload stored inside a record
type SolveData struct {
	Puzzle   []int `json:"puzzle"`
	Solution []int `json:"solution"`
}

// SolveRecord represents a record in the PocketBase database
type SolveRecord struct {
	ID        string    `json:"id"`
	Solve     SolveData `json:"solve"`
	Algorithm string    `json:"algorithm"`
	TookMs    int64     `json:"tookMs"`
	Created   string    `json:"created"`
	Updated   string    `json:"updated"`
}

var client *pocketbase.Client

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Warning: No .env file found")
	}

	url := os.Getenv("POCKETBASE_URL")
	if url == "" {
		url = "http://127.0.0.1:8090"
	}
	email := os.Getenv("POCKETBASE_EMAIL")
	password := os.Getenv("POCKETBASE_PASSWORD")

	// Create client with superuser authentication
	client = pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(email, password))
}

// Authenticate tries to authenticate with PocketBase
func Authenticate() error {
	err := client.Authorize()
	if err != nil {
		return fmt.Errorf("authentication failed: %v", err)
	}

	// Re-authenticate every 30 minutes
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		for range ticker.C {
			if err := client.Authorize(); err != nil {
				fmt.Printf("⚠️ Re-authentication failed: %v\n", err)
			} else {
				fmt.Println("🔄 Successfully re-authenticated with PocketBase")
			}
		}
	}()
	return nil
}

// UploadSolve stores a solved puzzle in the "solves" collection.
func UploadSolve(puzzle, solution *types.Board, algorithm string, took time.Duration) (*pocketbase.ResponseCreate, error) {
	solveJSON, err := json.Marshal(SolveData{
		Puzzle:   puzzle.Cells,
		Solution: solution.Cells,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal solve data: %v", err)
	}

	data := map[string]any{
		"solve":     string(solveJSON),
		"algorithm": algorithm,
		"tookMs":    took.Milliseconds(),
	}

	record, err := client.Create("solves", data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload solve: %v", err)
	}
	return &record, nil
}

// GetSolve loads a stored solve by record ID.
func GetSolve(id string) (*SolveRecord, error) {
	record, err := client.One("solves", id)
	if err != nil {
		return nil, fmt.Errorf("failed to load solve %s: %v", id, err)
	}

	var solveData SolveData
	if err := json.Unmarshal([]byte(record["solve"].(string)), &solveData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solve data: %v", err)
	}

	result := &SolveRecord{
		ID:    fmt.Sprintf("%v", record["id"]),
		Solve: solveData,
	}
	if algo, ok := record["algorithm"].(string); ok {
		result.Algorithm = algo
	}
	if tookMs, ok := record["tookMs"].(float64); ok {
		result.TookMs = int64(tookMs)
	}
	if created, ok := record["created"].(string); ok {
		result.Created = created
	}
	if updated, ok := record["updated"].(string); ok {
		result.Updated = updated
	}
	return result, nil
}

// ListSolves pages through stored solves, newest first.
func ListSolves(page int, perPage int, algorithm string) (*pocketbase.ResponseList[map[string]any], error) {
	var filterRules []string
	if algorithm != "" {
		filterRules = append(filterRules, fmt.Sprintf("algorithm = \"%s\"", algorithm))
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    "-created",
		Filters: strings.Join(filterRules, " && "),
	}

	result, err := client.List("solves", params)
	return &result, err
}

// SolveExists reports whether a record with the given ID is stored.
func SolveExists(id string) (bool, error) {
	_, err := client.One("solves", id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
