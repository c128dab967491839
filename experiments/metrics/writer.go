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

// RunRecord is a stored run, identified by its run id.
type RunRecord struct {
	ID string
	RunMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates the directory <outputDir>/<runID> that records are written to.
func NewWriter(outputDir, runID string) (*Writer, error) {
	baseDir := filepath.Join(outputDir, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory the writer stores records in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	header := []string{"id", "dice_type", "goroutines", "seed", "rolls", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			record.DiceType,
			strconv.Itoa(record.Goroutines),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Rolls),
			record.StartTime.UTC().Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("runs.csv", header, rows)
}

func (w *Writer) WriteDistribution(records []DistributionRecord) error {
	header := []string{"value", "count", "observed", "expected", "deviation"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Value),
			strconv.Itoa(record.Count),
			strconv.FormatFloat(record.Observed, 'f', 6, 64),
			strconv.FormatFloat(record.Expected, 'f', 6, 64),
			strconv.FormatFloat(record.Deviation, 'f', 6, 64),
		})
	}
	return w.write("distribution.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	return writeCSV(f, name, header, rows)
}

// writeCSV encodes the header and rows into wc and closes it. A failed close
// is reported, since buffered data may not have reached the disk.
func writeCSV(wc io.WriteCloser, name string, header []string, rows [][]string) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	writer := csv.NewWriter(wc)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
