package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of experiments/<name> named by the current
// timestamp.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	return NewWriterAt(filepath.Join("experiments", name, timestamp))
}

// NewWriterAt writes records into dir, creating it if needed.
func NewWriterAt(dir string) (*Writer, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

// Dir is where the records are written.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seed", "agent", "lines", "pieces", "game_over", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.Agent,
			strconv.Itoa(record.Lines),
			strconv.Itoa(record.Pieces),
			strconv.FormatBool(record.GameOver),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "kind", "column", "rotation", "row", "lines", "commands", "candidates", "rejected", "best_score", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Kind,
			strconv.Itoa(record.Column),
			strconv.Itoa(record.Rotation),
			strconv.Itoa(record.Row),
			strconv.Itoa(record.Lines),
			strconv.Itoa(record.Commands),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Rejected),
			strconv.FormatFloat(record.BestScore, 'f', 4, 64),
			record.Duration.String(),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteEpisodeRecords(records []EpisodeMetric) error {
	header := []string{"episode", "lines", "pieces", "updates", "alpha", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Episode),
			strconv.Itoa(record.Lines),
			strconv.Itoa(record.Pieces),
			strconv.Itoa(record.Updates),
			strconv.FormatFloat(record.Alpha, 'g', -1, 64),
			record.Duration.String(),
		})
	}
	return w.write("episode_records.csv", header, rows)
}
