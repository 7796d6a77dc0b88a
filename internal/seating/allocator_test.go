package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhilcr/exam-seating/internal/model"
)

// TestAllocateHallsPrefersSubjectSpread verifies the ranking tuple: a
// student should land in the hall with the fewest same-subject occupants
// even when another hall is emptier overall.
func TestAllocateHallsPrefersSubjectSpread(t *testing.T) {
	// Six students of one subject across two halls with cap 3: the greedy
	// ranking must alternate halls instead of filling hall 1 first.
	var regs []model.Registration
	for i := int64(1); i <= 6; i++ {
		regs = append(regs, reg(i, "S", "CSE", "2001"))
	}
	halls, err := allocateHalls(regs, Config{NumberOfHalls: 2, HallCapacity: 6, MaxSubjectPerHall: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, halls[0].SubjectCounts["2001"])
	assert.Equal(t, 3, halls[1].SubjectCounts["2001"])
}

// TestAllocateHallsDepartmentTieBreak exercises the second ranking
// component: with equal subject counts, the hall holding fewer students of
// the same department wins.
func TestAllocateHallsDepartmentTieBreak(t *testing.T) {
	regs := []model.Registration{
		reg(1, "A", "CSE", "2001"),
		reg(2, "B", "ECE", "2001"),
		reg(3, "C", "CSE", "4038"),
	}
	halls, err := allocateHalls(regs, Config{NumberOfHalls: 2, HallCapacity: 4, MaxSubjectPerHall: 1})
	require.NoError(t, err)

	// Subject 2001 (larger cohort) goes first: A -> hall 1, B -> hall 2
	// (hall 1 at cap for 2001).  C's subject count is 0 in both halls; the
	// department tie-break steers the second CSE student away from hall 1.
	assert.Equal(t, 1, halls[0].DepartmentCounts["CSE"])
	assert.Equal(t, 1, halls[1].DepartmentCounts["CSE"])
}

// TestAllocateHallsLargestCohortFirst checks that subject groups are
// consumed in descending size order so the most constrained cohort is
// placed while capacity is plentiful.
func TestAllocateHallsLargestCohortFirst(t *testing.T) {
	var regs []model.Registration
	no := int64(1)
	// Small cohort listed first in the input; the large cohort is the one
	// squeezed by the subject cap and must spread evenly regardless.
	for i := 0; i < 2; i++ {
		regs = append(regs, reg(no, "S", "CIVIL", "6000"))
		no++
	}
	for i := 0; i < 6; i++ {
		regs = append(regs, reg(no, "S", "CSE", "2001"))
		no++
	}
	halls, err := allocateHalls(regs, Config{NumberOfHalls: 2, HallCapacity: 4, MaxSubjectPerHall: 3})
	require.NoError(t, err)

	total := 0
	for _, h := range halls {
		assert.LessOrEqual(t, h.SubjectCounts["2001"], 3)
		total += h.Occupied
	}
	assert.Equal(t, 8, total)
}

func TestAllocateHallsStableWithinCohort(t *testing.T) {
	regs := []model.Registration{
		reg(30, "C", "CSE", "2001"),
		reg(10, "A", "CSE", "2001"),
		reg(20, "B", "CSE", "2001"),
	}
	halls, err := allocateHalls(regs, Config{NumberOfHalls: 1, HallCapacity: 4, MaxSubjectPerHall: 3})
	require.NoError(t, err)

	// Students keep their input order within the cohort; reordering beyond
	// the cohort sort is the bench sequencer's job.
	var got []int64
	for _, s := range halls[0].Seats {
		got = append(got, s.RegisterNo)
	}
	assert.Equal(t, []int64{30, 10, 20}, got)
}

func TestPickHallSkipsFullAndCapped(t *testing.T) {
	cfg := Config{NumberOfHalls: 3, HallCapacity: 2, MaxSubjectPerHall: 1}
	halls := newHalls(cfg, []model.Registration{reg(1, "A", "CSE", "2001")})

	halls[0].place(reg(1, "A", "CSE", "2001")) // hall 1 at subject cap
	halls[1].place(reg(2, "B", "ECE", "4038"))
	halls[1].place(reg(3, "C", "ECE", "4038")) // hall 2 full

	h := pickHall(halls, "2001", "CSE", cfg.MaxSubjectPerHall)
	require.NotNil(t, h)
	assert.Equal(t, 3, h.ID)
}
