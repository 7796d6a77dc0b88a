package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adhilcr/exam-seating/internal/model"
	"github.com/adhilcr/exam-seating/internal/seating"
)

// PlanReport is the outcome of auditing a seating plan against the
// registrations it was built from.  Every count is recomputed from scratch
// so a bug in the engine cannot hide behind its own bookkeeping.
type PlanReport struct {
	Students     int      `json:"students"`
	Seated       int      `json:"seated"`
	HallsUsed    int      `json:"halls_used"`
	Violations   []string `json:"violations,omitempty"`
	MissingCount int      `json:"missing_count"`
}

// OK reports whether the audit found no violations.
func (r PlanReport) OK() bool {
	return len(r.Violations) == 0 && r.MissingCount == 0
}

// VerifyPlan recomputes conservation, per-hall capacity, per-hall subject
// caps and contiguous seat numbering for a produced plan.  It never mutates
// its inputs; violations are collected rather than failing fast so the whole
// audit is reported at once.
func VerifyPlan(regs []model.Registration, plan *seating.Plan, cfg seating.Config) PlanReport {
	report := PlanReport{Students: len(regs), Seated: len(plan.Assignments)}

	expected := make(map[string]bool, len(regs))
	for _, r := range regs {
		expected[fmt.Sprintf("%d/%s", r.RegisterNo, r.SubjectCode)] = true
	}

	occupied := make(map[int]int)
	subjectCounts := make(map[int]map[string]int)
	lastSeat := make(map[int]int)
	for _, a := range plan.Assignments {
		key := fmt.Sprintf("%d/%s", a.RegisterNo, a.SubjectCode)
		if !expected[key] {
			report.Violations = append(report.Violations,
				fmt.Sprintf("assignment %s not in registrations (or seated twice)", key))
		}
		delete(expected, key)

		occupied[a.HallID]++
		if subjectCounts[a.HallID] == nil {
			subjectCounts[a.HallID] = make(map[string]int)
		}
		subjectCounts[a.HallID][a.SubjectCode]++

		if a.SeatNumber != lastSeat[a.HallID]+1 {
			report.Violations = append(report.Violations,
				fmt.Sprintf("hall %d: seat %d follows seat %d", a.HallID, a.SeatNumber, lastSeat[a.HallID]))
		}
		lastSeat[a.HallID] = a.SeatNumber
	}
	report.MissingCount = len(expected)
	report.HallsUsed = len(occupied)

	for hallID, n := range occupied {
		if n > cfg.HallCapacity {
			report.Violations = append(report.Violations,
				fmt.Sprintf("hall %d: %d occupants exceed capacity %d", hallID, n, cfg.HallCapacity))
		}
		for code, c := range subjectCounts[hallID] {
			if c > cfg.MaxSubjectPerHall {
				report.Violations = append(report.Violations,
					fmt.Sprintf("hall %d: subject %s count %d exceeds cap %d", hallID, code, c, cfg.MaxSubjectPerHall))
			}
		}
	}
	return report
}

// WideSubjectCounts re-reads a wide export and counts the non-blank subject
// cells per student.  The result feeds VerifyCoverage after normalization.
func WideSubjectCounts(r io.Reader) (map[int64]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	regIdx := -1
	var subjectCols []int
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == colRegisterNo {
			regIdx = i
		}
		if strings.HasPrefix(name, subjectPrefix) {
			subjectCols = append(subjectCols, i)
		}
	}
	if regIdx < 0 {
		return nil, fmt.Errorf("missing required column: %s", colRegisterNo)
	}

	counts := make(map[int64]int)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		regNo, err := strconv.ParseInt(strings.TrimSpace(row[regIdx]), 10, 64)
		if err != nil {
			continue
		}
		for _, ci := range subjectCols {
			if CanonicalSubjectCode(row[ci]) != "" {
				counts[regNo]++
			}
		}
		if _, ok := counts[regNo]; !ok {
			counts[regNo] = 0
		}
	}
	return counts, nil
}

// VerifyCoverage cross-checks a normalized roster against the per-student
// subject counts of the wide export it came from.  wideCounts maps register
// number to the number of non-blank subject cells in the export.
func VerifyCoverage(wideCounts map[int64]int, normalized []model.Registration) PlanReport {
	report := PlanReport{Students: len(wideCounts)}

	normCounts := make(map[int64]int)
	for _, r := range normalized {
		normCounts[r.RegisterNo]++
	}
	for regNo, want := range wideCounts {
		got := normCounts[regNo]
		if got == 0 {
			report.MissingCount++
			report.Violations = append(report.Violations,
				fmt.Sprintf("student %d missing from normalized data", regNo))
			continue
		}
		if got != want {
			report.Violations = append(report.Violations,
				fmt.Sprintf("student %d: %d subjects in export, %d after normalization", regNo, want, got))
		}
	}
	return report
}
