package seating

import (
	"sync"

	"github.com/adhilcr/exam-seating/internal/model"
)

// Plan is the outcome of one allocation run.  Assignments are grouped by
// hall id ascending with seat numbers ascending inside each hall; no other
// cross-hall ordering is guaranteed.  ExamDate and Session are carried from
// the input records for output naming and event metadata.
type Plan struct {
	ExamDate    string
	Session     string
	HallsUsed   int
	TotalSeated int
	Assignments []model.SeatAssignment
	Halls       []Summary
}

// Allocate runs the full engine: config validation, record re-validation,
// hall allocation, per-hall bench sequencing, and output flattening.  It is
// a pure function of its inputs (re-running with identical arguments yields
// an identical Plan) and commits nothing on failure.
//
// Halls are independent once allocation finishes, so bench sequencing runs
// one goroutine per hall; each goroutine owns its hall's occupant slice
// exclusively and writes results into its own slot.
func Allocate(regs []model.Registration, cfg Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateRecords(regs); err != nil {
		return nil, err
	}

	halls, err := allocateHalls(regs, cfg)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	for _, h := range halls {
		wg.Add(1)
		go func(h *hall) {
			defer wg.Done()
			sortSeats(h.Seats)
			h.Seats = sequenceBenches(h.Seats)
		}(h)
	}
	wg.Wait()

	plan := &Plan{Assignments: make([]model.SeatAssignment, 0, len(regs))}
	if len(regs) > 0 {
		plan.ExamDate = regs[0].ExamDate
		plan.Session = regs[0].Session
	}
	for _, h := range halls {
		for i, s := range h.Seats {
			plan.Assignments = append(plan.Assignments, model.SeatAssignment{
				RegisterNo:  s.RegisterNo,
				StudentName: s.StudentName,
				Department:  s.Department,
				SubjectCode: s.SubjectCode,
				HallID:      h.ID,
				SeatNumber:  i + 1,
			})
		}
		if h.Occupied > 0 {
			plan.HallsUsed++
		}
		plan.TotalSeated += h.Occupied
		plan.Halls = append(plan.Halls, h.summary())
	}
	return plan, nil
}

// validateRecords rejects registrations with blank required fields before
// any of them can influence an allocation decision.
func validateRecords(regs []model.Registration) error {
	for _, r := range regs {
		switch {
		case r.RegisterNo == 0:
			return &SchemaError{Field: "register_no"}
		case r.StudentName == "":
			return &SchemaError{Field: "student_name", RegisterNo: r.RegisterNo}
		case r.Department == "":
			return &SchemaError{Field: "department", RegisterNo: r.RegisterNo}
		case r.SubjectCode == "":
			return &SchemaError{Field: "subject_code", RegisterNo: r.RegisterNo}
		case r.ExamDate == "":
			return &SchemaError{Field: "exam_date", RegisterNo: r.RegisterNo}
		case r.Session == "":
			return &SchemaError{Field: "session", RegisterNo: r.RegisterNo}
		}
	}
	return nil
}
