package seating

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhilcr/exam-seating/internal/model"
)

// reg builds a registration fixture with the session metadata filled in.
func reg(no int64, name, dept, subject string) model.Registration {
	return model.Registration{
		RegisterNo:  no,
		StudentName: name,
		Department:  dept,
		Semester:    4,
		SubjectCode: subject,
		ExamDate:    "2026-03-10",
		Session:     "FN",
	}
}

// mixedCohorts builds a roster with several departments and subjects of
// uneven sizes, large enough to spill across halls.
func mixedCohorts() []model.Registration {
	var regs []model.Registration
	no := int64(101)
	add := func(n int, dept, subject string) {
		for i := 0; i < n; i++ {
			regs = append(regs, reg(no, fmt.Sprintf("Student %d", no), dept, subject))
			no++
		}
	}
	add(10, "CSE", "2001")
	add(8, "ECE", "2001")
	add(6, "MECH", "4038")
	add(6, "CSE", "4038")
	add(4, "CIVIL", "6000")
	add(2, "ECE", "6000")
	return regs
}

func TestAllocateRejectsOddCapacity(t *testing.T) {
	_, err := Allocate(mixedCohorts(), Config{NumberOfHalls: 4, HallCapacity: 7, MaxSubjectPerHall: 5})
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Error(), "even")
}

func TestAllocateRejectsNonPositiveConfig(t *testing.T) {
	cases := []Config{
		{NumberOfHalls: 0, HallCapacity: 10, MaxSubjectPerHall: 5},
		{NumberOfHalls: 3, HallCapacity: 0, MaxSubjectPerHall: 5},
		{NumberOfHalls: 3, HallCapacity: 10, MaxSubjectPerHall: 0},
		{NumberOfHalls: -1, HallCapacity: 10, MaxSubjectPerHall: 5},
	}
	for _, cfg := range cases {
		_, err := Allocate(mixedCohorts(), cfg)
		var cfgErr *ConfigurationError
		assert.True(t, errors.As(err, &cfgErr), "config %+v should be rejected", cfg)
	}
}

func TestAllocateRejectsBlankFields(t *testing.T) {
	regs := mixedCohorts()
	regs[3].Department = ""
	_, err := Allocate(regs, Config{NumberOfHalls: 4, HallCapacity: 10, MaxSubjectPerHall: 6})
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "department", schemaErr.Field)
}

// TestAllocateInvariants checks conservation, per-hall capacity, the
// per-hall subject cap and contiguous seat numbering on a roster that
// spans multiple halls.
func TestAllocateInvariants(t *testing.T) {
	regs := mixedCohorts()
	cfg := Config{NumberOfHalls: 4, HallCapacity: 10, MaxSubjectPerHall: 6}

	plan, err := Allocate(regs, cfg)
	require.NoError(t, err)

	// Conservation: every registration seated exactly once.
	require.Len(t, plan.Assignments, len(regs))
	assert.Equal(t, len(regs), plan.TotalSeated)
	seen := make(map[string]bool)
	for _, a := range plan.Assignments {
		key := fmt.Sprintf("%d/%s", a.RegisterNo, a.SubjectCode)
		assert.False(t, seen[key], "registration %s seated twice", key)
		seen[key] = true
	}

	// Capacity and subject cap per hall.
	occupied := make(map[int]int)
	subjectCounts := make(map[int]map[string]int)
	for _, a := range plan.Assignments {
		occupied[a.HallID]++
		if subjectCounts[a.HallID] == nil {
			subjectCounts[a.HallID] = make(map[string]int)
		}
		subjectCounts[a.HallID][a.SubjectCode]++
	}
	for hallID, n := range occupied {
		assert.LessOrEqual(t, n, cfg.HallCapacity, "hall %d over capacity", hallID)
		for code, c := range subjectCounts[hallID] {
			assert.LessOrEqual(t, c, cfg.MaxSubjectPerHall, "hall %d subject %s over cap", hallID, code)
		}
	}

	// Seat numbering: contiguous 1..N per hall, and assignments arrive
	// grouped by hall ascending with seats ascending.
	next := make(map[int]int)
	lastHall := 0
	for _, a := range plan.Assignments {
		assert.GreaterOrEqual(t, a.HallID, lastHall)
		lastHall = a.HallID
		next[a.HallID]++
		assert.Equal(t, next[a.HallID], a.SeatNumber)
	}
	for hallID, n := range next {
		assert.Equal(t, occupied[hallID], n, "hall %d seat count mismatch", hallID)
	}
}

func TestAllocateDeterminism(t *testing.T) {
	regs := mixedCohorts()
	cfg := Config{NumberOfHalls: 4, HallCapacity: 10, MaxSubjectPerHall: 6}

	first, err := Allocate(regs, cfg)
	require.NoError(t, err)
	second, err := Allocate(regs, cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, first.Halls, second.Halls)
}

func TestAllocateInfeasibleNamesSubject(t *testing.T) {
	regs := []model.Registration{
		reg(1, "A", "CSE", "2001"),
		reg(2, "B", "CSE", "2001"),
	}
	_, err := Allocate(regs, Config{NumberOfHalls: 1, HallCapacity: 2, MaxSubjectPerHall: 1})
	var infeasible *AllocationInfeasible
	require.True(t, errors.As(err, &infeasible))
	assert.Equal(t, "2001", infeasible.SubjectCode)
	assert.Equal(t, "cannot allocate subject 2001; constraints too strict", err.Error())
}

// TestAllocateBenchScenario is the four-student case: two departments of
// two students each must not end up with the first bench holding a single
// department.
func TestAllocateBenchScenario(t *testing.T) {
	regs := []model.Registration{
		reg(1, "A", "X", "100"),
		reg(2, "B", "X", "100"),
		reg(3, "C", "Y", "100"),
		reg(4, "D", "Y", "200"),
	}
	plan, err := Allocate(regs, Config{NumberOfHalls: 1, HallCapacity: 4, MaxSubjectPerHall: 3})
	require.NoError(t, err)
	require.Len(t, plan.Assignments, 4)

	for _, a := range plan.Assignments {
		assert.Equal(t, 1, a.HallID)
	}
	// Seats 1&2 form the first bench; with two equally sized departments the
	// largest-two pairing must mix them.
	assert.NotEqual(t, plan.Assignments[0].Department, plan.Assignments[1].Department)
	assert.NotEqual(t, plan.Assignments[2].Department, plan.Assignments[3].Department)
}

func TestAllocateEmptyRoster(t *testing.T) {
	plan, err := Allocate(nil, Config{NumberOfHalls: 2, HallCapacity: 4, MaxSubjectPerHall: 2})
	require.NoError(t, err)
	assert.Empty(t, plan.Assignments)
	assert.Zero(t, plan.TotalSeated)
	assert.Zero(t, plan.HallsUsed)
}

func TestAllocateHallsUsedCount(t *testing.T) {
	regs := []model.Registration{
		reg(1, "A", "CSE", "2001"),
		reg(2, "B", "CSE", "2001"),
	}
	// Plenty of halls; the subject cap forces a split across exactly two.
	plan, err := Allocate(regs, Config{NumberOfHalls: 5, HallCapacity: 4, MaxSubjectPerHall: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, plan.HallsUsed)
	assert.Equal(t, 2, plan.TotalSeated)
}
