package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID         int
	Depth      int // 0 plays uniformly random legal moves
	Goroutines int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of Black
	Agent2 int // AgentConfig.ID of White
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer stores experiment results as CSV files in its own directory.
type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	return w.writeFile("agent_configs.csv", func(f io.Writer) error {
		return WriteAgentConfigs(f, configs)
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeFile("game_records.csv", func(f io.Writer) error {
		return WriteGameRecords(f, records)
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return w.writeFile("move_records.csv", func(f io.Writer) error {
		return WriteMoveRecords(f, records)
	})
}

func (w *Writer) writeFile(name string, write func(io.Writer) error) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}

func WriteAgentConfigs(w io.Writer, configs []AgentConfig) error {
	header := []string{"id", "depth", "goroutines"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Goroutines),
		})
	}
	return writeCSV(w, "agent configs", header, rows)
}

func WriteGameRecords(w io.Writer, records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "black_depth", "white_depth", "winner", "margin", "total_moves", "passes", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.BlackDepth),
			strconv.Itoa(record.WhiteDepth),
			record.Winner,
			strconv.Itoa(record.Margin),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Passes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return writeCSV(w, "game records", header, rows)
}

// WriteMoveRecords writes one row per move. A single self-played game uses
// game 0.
func WriteMoveRecords(w io.Writer, records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "depth", "goroutines", "nodes", "score", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Goroutines),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Score),
			record.Duration.String(),
		})
	}
	return writeCSV(w, "move records", header, rows)
}

func writeCSV(w io.Writer, what string, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)

	// Write header
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}
	// Write each row
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", what, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", what, err)
	}
	return nil
}
