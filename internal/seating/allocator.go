package seating

import (
	"sort"

	"github.com/adhilcr/exam-seating/internal/model"
)

// allocateHalls distributes every registration across the configured halls,
// honoring hall capacity and the per-hall subject cap.
//
// Subject cohorts are processed largest first: big cohorts are the most
// constrained by the subject cap, so they get first pick while capacity is
// still plentiful.  Within a cohort students keep their input order.  Each
// student goes to the hall that currently holds the fewest same-subject
// students, then the fewest same-department students, then the fewest
// students overall; remaining ties fall to the lowest hall id so identical
// inputs always produce identical plans.
//
// The greedy choice is not globally optimal: a configuration an exhaustive
// search could satisfy may still fail here.  That trade is accepted for
// predictability and speed; infeasibility surfaces as *AllocationInfeasible
// with nothing committed.
func allocateHalls(regs []model.Registration, cfg Config) ([]*hall, error) {
	halls := newHalls(cfg, regs)

	groups := make(map[string][]model.Registration)
	subjects := make([]string, 0)
	for _, r := range regs {
		if _, seen := groups[r.SubjectCode]; !seen {
			subjects = append(subjects, r.SubjectCode)
		}
		groups[r.SubjectCode] = append(groups[r.SubjectCode], r)
	}
	sort.Slice(subjects, func(i, j int) bool {
		a, b := subjects[i], subjects[j]
		if len(groups[a]) != len(groups[b]) {
			return len(groups[a]) > len(groups[b])
		}
		return a < b
	})

	for _, subject := range subjects {
		for _, student := range groups[subject] {
			h := pickHall(halls, subject, student.Department, cfg.MaxSubjectPerHall)
			if h == nil {
				return nil, &AllocationInfeasible{SubjectCode: subject}
			}
			h.place(student)
		}
	}
	return halls, nil
}

// pickHall returns the eligible hall minimizing the ranking tuple
// (same-subject count, same-department count, total occupancy), or nil when
// no hall can take the student.  A single scan suffices; iterating in hall-id
// order with a strict comparison keeps the lowest id on ties.
func pickHall(halls []*hall, subject, department string, maxSubjectPerHall int) *hall {
	var best *hall
	for _, h := range halls {
		if !h.fits(subject, maxSubjectPerHall) {
			continue
		}
		if best == nil || ranksBefore(h, best, subject, department) {
			best = h
		}
	}
	return best
}

func ranksBefore(a, b *hall, subject, department string) bool {
	if a.SubjectCounts[subject] != b.SubjectCounts[subject] {
		return a.SubjectCounts[subject] < b.SubjectCounts[subject]
	}
	if a.DepartmentCounts[department] != b.DepartmentCounts[department] {
		return a.DepartmentCounts[department] < b.DepartmentCounts[department]
	}
	return a.Occupied < b.Occupied
}
