package metrics

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent rolls", func(t *testing.T) {
		c := NewCollector(4)
		c.Start("FourBinary", 4, 7)

		var wg sync.WaitGroup
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					c.AddRoll(i % 5)
				}
			}()
		}
		wg.Wait()

		got := c.Complete()

		require.Equal(t, "FourBinary", got.DiceType)
		require.Equal(t, 4, got.Goroutines)
		require.Equal(t, uint64(7), got.Seed)
		require.Equal(t, 400, got.Rolls, "Should count every roll")
		require.Equal(t, []int{80, 80, 80, 80, 80}, got.Counts, "Should count rolls per value")
	})
}

func TestNewDistribution(t *testing.T) {
	t.Run("compares observed with expected", func(t *testing.T) {
		got := NewDistribution([]int{1, 3}, []float64{0.5, 0.5})

		require.Len(t, got, 2)
		require.Equal(t, 3, got[1].Count)
		require.InDelta(t, 0.75, got[1].Observed, 1e-12)
		require.InDelta(t, 0.25, got[1].Deviation, 1e-12)
		require.InDelta(t, -0.25, got[0].Deviation, 1e-12)
	})

	t.Run("no rolls", func(t *testing.T) {
		got := NewDistribution([]int{0, 0}, []float64{0.5, 0.5})

		require.Zero(t, got[0].Observed)
		require.InDelta(t, -0.5, got[0].Deviation, 1e-12)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		got := NewDistribution([]int{2}, []float64{0.25, 0.75})

		require.Len(t, got, 2, "Should cover every value")
		require.Zero(t, got[1].Count)
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "run-1")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "run-1"), w.Dir())

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = w.WriteRunRecords([]RunRecord{{
		ID:        "run-1",
		RunMetric: RunMetric{DiceType: "FourBinary", Goroutines: 2, Seed: 11, Rolls: 10, StartTime: start, Duration: time.Second},
	}})
	require.NoError(t, err)

	err = w.WriteDistribution([]DistributionRecord{{Value: 0, Count: 1, Observed: 0.1, Expected: 0.0625, Deviation: 0.0375}})
	require.NoError(t, err)

	runs := readCSV(t, filepath.Join(w.Dir(), "runs.csv"))
	require.Equal(t, [][]string{
		{"id", "dice_type", "goroutines", "seed", "rolls", "start_time", "duration"},
		{"run-1", "FourBinary", "2", "11", "10", "2024-01-02T03:04:05Z", "1s"},
	}, runs)

	distribution := readCSV(t, filepath.Join(w.Dir(), "distribution.csv"))
	require.Equal(t, [][]string{
		{"value", "count", "observed", "expected", "deviation"},
		{"0", "1", "0.100000", "0.062500", "0.037500"},
	}, distribution)
}

type closeFailure struct {
	bytes.Buffer
	closed bool
}

func (c *closeFailure) Close() error {
	c.closed = true
	return errors.New("disk full")
}

func TestWriteCSVReportsCloseError(t *testing.T) {
	out := &closeFailure{}

	err := writeCSV(out, "runs.csv", []string{"id"}, [][]string{{"run-1"}})

	require.ErrorContains(t, err, "failed to close runs.csv", "Close errors should not be dropped")
	require.ErrorContains(t, err, "disk full")
	require.True(t, out.closed, "File should be closed")
	require.Equal(t, "id\nrun-1\n", out.String(), "Rows should be written before closing")
}
