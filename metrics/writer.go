package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// StandingRecord is one player's final placing in a game.
type StandingRecord struct {
	GameID     string
	Place      int
	Player     string
	Score      int
	Penalties  int
	LockedRows int
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of dir to hold the records.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
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

func (w *Writer) WriteGameRecords(records []GameMetric) error {
	header := []string{"game", "players", "rounds", "turns", "marks", "penalties", "end_state", "winner", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.GameID,
			strconv.Itoa(record.Players),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Marks),
			strconv.Itoa(record.Penalties),
			record.EndState,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("games.csv", header, rows)
}

func (w *Writer) WriteStandingRecords(records []StandingRecord) error {
	header := []string{"game", "place", "player", "score", "penalties", "locked_rows"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.GameID,
			strconv.Itoa(record.Place),
			record.Player,
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Penalties),
			strconv.Itoa(record.LockedRows),
		})
	}
	return w.write("standings.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
