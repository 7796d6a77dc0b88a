package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhilcr/exam-seating/internal/model"
	"github.com/adhilcr/exam-seating/internal/seating"
)

func allocatedFixture(t *testing.T) ([]model.Registration, *seating.Plan, seating.Config) {
	t.Helper()
	prepared, err := PrepareSession(normalizedFixture(), sessionFixture())
	require.NoError(t, err)
	cfg := seating.Config{NumberOfHalls: 2, HallCapacity: 10, MaxSubjectPerHall: 5}
	plan, err := seating.Allocate(prepared, cfg)
	require.NoError(t, err)
	return prepared, plan, cfg
}

func TestVerifyPlanCleanRun(t *testing.T) {
	prepared, plan, cfg := allocatedFixture(t)
	report := VerifyPlan(prepared, plan, cfg)
	assert.True(t, report.OK(), "violations: %v", report.Violations)
	assert.Equal(t, len(prepared), report.Seated)
	assert.Zero(t, report.MissingCount)
}

func TestVerifyPlanDetectsTampering(t *testing.T) {
	prepared, plan, cfg := allocatedFixture(t)

	// Drop a student: conservation must flag the gap.
	plan.Assignments = plan.Assignments[1:]
	report := VerifyPlan(prepared, plan, cfg)
	assert.False(t, report.OK())
	assert.Equal(t, 1, report.MissingCount)
}

func TestVerifyPlanDetectsSeatGaps(t *testing.T) {
	prepared, plan, cfg := allocatedFixture(t)
	plan.Assignments[len(plan.Assignments)-1].SeatNumber += 3
	report := VerifyPlan(prepared, plan, cfg)
	assert.False(t, report.OK())
}

func TestVerifyCoverage(t *testing.T) {
	normalized := normalizedFixture()
	wideCounts := map[int64]int{101: 2, 102: 1, 103: 1}
	report := VerifyCoverage(wideCounts, normalized)
	assert.True(t, report.OK(), "violations: %v", report.Violations)

	wideCounts[104] = 2 // student lost during normalization
	report = VerifyCoverage(wideCounts, normalized)
	assert.Equal(t, 1, report.MissingCount)

	wideCounts = map[int64]int{101: 3, 102: 1, 103: 1} // count drift
	report = VerifyCoverage(wideCounts, normalizedFixture())
	assert.False(t, report.OK())
}

func TestWriteChart(t *testing.T) {
	_, plan, _ := allocatedFixture(t)

	dir := filepath.Join(t.TempDir(), "output")
	path, err := WriteChart(dir, plan)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "seat_allocated_exam_session_2026-03-10_FN.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, len(plan.Assignments)+1) // header + one row per seat
	assert.Contains(t, lines[0], "register_no")
	assert.Contains(t, lines[0], "seat_number")
}

func TestChartFilename(t *testing.T) {
	assert.Equal(t, "seat_allocated_exam_session_2026-03-10_AN.csv", ChartFilename("2026-03-10", "AN"))
}
