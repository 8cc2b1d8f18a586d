package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "records")
	w, err := NewWriterAt(dir)
	require.NoError(t, err)
	require.Equal(t, dir, w.Dir())

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{{ID: 1, GameMetric: GameMetric{
			Seed: 7, Agent: "heuristic", Lines: 12, Pieces: 40, GameOver: true,
			StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
		}}}
		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "id", rows[0][0])
		require.Equal(t, []string{"1", "7", "heuristic", "12", "40", "true", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{{Game: 1, MoveMetric: MoveMetric{
			Step: 1, Kind: "T", Column: 3, Rotation: 2, Row: 17, Lines: 0, Commands: 20,
			SearchMetric: SearchMetric{Goroutines: 1, Candidates: 34, BestScore: -1.5},
		}}}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, len(rows[0]), len(rows[1]))
		require.Equal(t, "T", rows[1][2])
		require.Equal(t, "-1.5000", rows[1][10])
	})

	t.Run("episode records", func(t *testing.T) {
		records := []EpisodeMetric{{Episode: 1, Lines: 3, Pieces: 10, Updates: 9, Alpha: 0.2}}
		require.NoError(t, w.WriteEpisodeRecords(records))

		rows := readCSV(t, filepath.Join(dir, "episode_records.csv"))
		require.Equal(t, []string{"1", "3", "10", "9", "0.2", "0s"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	t.Run("counts concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(4)
		done := make(chan struct{})
		for i := 0; i < 4; i++ {
			go func() {
				for j := 0; j < 100; j++ {
					c.AddCandidate()
				}
				done <- struct{}{}
			}()
		}
		for i := 0; i < 4; i++ {
			<-done
		}
		c.AddRejected()
		c.SetBestScore(-3.25)

		m := c.Complete()
		require.Equal(t, 4, m.Goroutines)
		require.Equal(t, 400, m.Candidates)
		require.Equal(t, 1, m.Rejected)
		require.Equal(t, -3.25, m.BestScore)
	})

	t.Run("start resets the counts", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddCandidate()
		c.Start(1)
		require.Zero(t, c.Complete().Candidates)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(8)
		c.AddCandidate()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
