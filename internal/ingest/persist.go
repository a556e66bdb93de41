package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/trendcraft/trendcraft-server/internal/models"
)

// Persist writes the records to the dated dataset file for the current
// calendar day (data_YYYY_MM_DD.csv). A second run on the same day replaces
// the file; there is no merge.
func Persist(dir string, records []models.VideoRecord, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create dataset directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("data_%s.csv", now.Format("2006_01_02")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(models.DatasetColumns); err != nil {
		return "", fmt.Errorf("failed to write dataset header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.CSVRow()); err != nil {
			return "", fmt.Errorf("failed to write dataset row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush dataset file: %w", err)
	}

	return path, nil
}
