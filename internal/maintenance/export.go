package maintenance

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// WriteGrid emits the cost grid in the line-oriented exchange format consumed
// by the export collaborator: a header followed by one numeric row per point.
// Non-finite rates are written as-is (+Inf), never coerced to zero.
func WriteGrid(w io.Writer, grid []CostPoint) error {
	if _, err := fmt.Fprintln(w, "t,CPUT,CPM,CCM"); err != nil {
		return err
	}
	for _, p := range grid {
		row := fmt.Sprintf("%s,%s,%s,%s",
			formatRate(p.T), formatRate(p.Total), formatRate(p.PM), formatRate(p.CM))
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ExportGrid writes the grid to a timestamped file under dir and returns the
// full path.
func ExportGrid(dir string, grid []CostPoint) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("cost-grid-%d.csv", time.Now().Unix()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteGrid(f, grid); err != nil {
		return "", fmt.Errorf("failed to write cost grid: %w", err)
	}
	return path, nil
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
