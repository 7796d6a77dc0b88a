package roster

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/adhilcr/exam-seating/internal/model"
	"github.com/adhilcr/exam-seating/internal/seating"
)

// ChartFilename names the seat chart artifact for a sitting, e.g.
// "seat_allocated_exam_session_2026-03-10_FN.csv".
func ChartFilename(examDate, session string) string {
	return fmt.Sprintf("seat_allocated_exam_session_%s_%s.csv", examDate, session)
}

// WriteChart persists a plan's assignments as the seat chart CSV under dir,
// creating the directory if needed, and returns the full path written.
// Rows arrive from the engine already grouped by hall and seat order and are
// written as-is.
func WriteChart(dir string, plan *seating.Plan) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, ChartFilename(plan.ExamDate, plan.Session))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart: %w", err)
	}
	defer f.Close()

	if err := WriteChartTo(f, plan.Assignments); err != nil {
		return "", err
	}
	return path, nil
}

// WriteChartTo streams chart rows to w; used by the download handler to
// write a stored plan straight into the HTTP response.
func WriteChartTo(w io.Writer, assignments []model.SeatAssignment) error {
	if err := gocsv.Marshal(assignments, w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
