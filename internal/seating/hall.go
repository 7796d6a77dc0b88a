package seating

import "github.com/adhilcr/exam-seating/internal/model"

// hall is the working entity mutated during allocation and discarded after
// output flattening.  SubjectCounts and DepartmentCounts are pre-populated
// with zero entries for every subject and department seen in the input, so
// counter lookups never rely on read-time defaults.  Seats holds occupants
// in allocation order until the bench sequencer reorders them.
type hall struct {
	ID               int
	Capacity         int
	Occupied         int
	SubjectCounts    map[string]int
	DepartmentCounts map[string]int
	Seats            []model.Registration
}

// newHalls creates the configured number of empty halls with counters zeroed
// for every subject and department appearing in regs.
func newHalls(cfg Config, regs []model.Registration) []*hall {
	halls := make([]*hall, cfg.NumberOfHalls)
	for i := range halls {
		h := &hall{
			ID:               i + 1,
			Capacity:         cfg.HallCapacity,
			SubjectCounts:    make(map[string]int),
			DepartmentCounts: make(map[string]int),
		}
		for _, r := range regs {
			h.SubjectCounts[r.SubjectCode] = 0
			h.DepartmentCounts[r.Department] = 0
		}
		halls[i] = h
	}
	return halls
}

// place appends the registration and bumps all counters.  The caller must
// have verified capacity and the subject cap.
func (h *hall) place(r model.Registration) {
	h.Seats = append(h.Seats, r)
	h.Occupied++
	h.SubjectCounts[r.SubjectCode]++
	h.DepartmentCounts[r.Department]++
}

// fits reports whether the hall can take one more student of the given
// subject under the capacity and per-subject cap.
func (h *hall) fits(subject string, maxSubjectPerHall int) bool {
	return h.Occupied < h.Capacity && h.SubjectCounts[subject] < maxSubjectPerHall
}

// Summary is a read-only snapshot of one hall after allocation, surfaced to
// callers for logging and the per-hall overview endpoint.
type Summary struct {
	HallID      int            `json:"hall_id"`
	Capacity    int            `json:"capacity"`
	Occupied    int            `json:"occupied"`
	Subjects    map[string]int `json:"subjects"`
	Departments map[string]int `json:"departments"`
}

func (h *hall) summary() Summary {
	s := Summary{
		HallID:      h.ID,
		Capacity:    h.Capacity,
		Occupied:    h.Occupied,
		Subjects:    make(map[string]int),
		Departments: make(map[string]int),
	}
	// Zero-default entries are dropped so the snapshot only lists what the
	// hall actually holds.
	for code, n := range h.SubjectCounts {
		if n > 0 {
			s.Subjects[code] = n
		}
	}
	for dept, n := range h.DepartmentCounts {
		if n > 0 {
			s.Departments[dept] = n
		}
	}
	return s
}
