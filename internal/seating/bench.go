package seating

import (
	"sort"

	"github.com/adhilcr/exam-seating/internal/model"
)

// sequenceBenches reorders one hall's occupants so adjacent seat pairs
// (1&2, 3&4, ...) favor distinct departments.  Occupants are split into
// per-department FIFO queues preserving their incoming relative order, then
// benches are filled by pairing the two currently largest queues; pairing
// the largest queues first defers forced same-department adjacency for as
// long as possible.  When a single department remains its students are
// seated consecutively; the adjacency rule is best-effort, not hard.
//
// Equal queue lengths tie-break on department code ascending so the result
// is deterministic.  The output always contains exactly the input occupants.
func sequenceBenches(seats []model.Registration) []model.Registration {
	if len(seats) == 0 {
		return seats
	}

	queues := make(map[string][]model.Registration)
	for _, s := range seats {
		queues[s.Department] = append(queues[s.Department], s)
	}

	out := make([]model.Registration, 0, len(seats))
	for len(queues) > 0 {
		depts := make([]string, 0, len(queues))
		for d, q := range queues {
			if len(q) == 0 {
				delete(queues, d)
				continue
			}
			depts = append(depts, d)
		}
		if len(depts) == 0 {
			break
		}
		sort.Slice(depts, func(i, j int) bool {
			if len(queues[depts[i]]) != len(queues[depts[j]]) {
				return len(queues[depts[i]]) > len(queues[depts[j]])
			}
			return depts[i] < depts[j]
		})

		if len(depts) >= 2 {
			out = append(out, popFront(queues, depts[0]), popFront(queues, depts[1]))
			continue
		}
		// Last department standing: fill the bench from it alone.
		out = append(out, popFront(queues, depts[0]))
		if len(queues[depts[0]]) > 0 {
			out = append(out, popFront(queues, depts[0]))
		}
	}
	return out
}

func popFront(queues map[string][]model.Registration, dept string) model.Registration {
	q := queues[dept]
	head := q[0]
	queues[dept] = q[1:]
	return head
}

// sortSeats orders a hall's occupants by department then register number
// before bench sequencing, so each department queue comes out in register
// order on the final chart.
func sortSeats(seats []model.Registration) {
	sort.SliceStable(seats, func(i, j int) bool {
		if seats[i].Department != seats[j].Department {
			return seats[i].Department < seats[j].Department
		}
		return seats[i].RegisterNo < seats[j].RegisterNo
	})
}
