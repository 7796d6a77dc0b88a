package roster

import (
	"fmt"
	"sort"

	"github.com/adhilcr/exam-seating/internal/model"
)

// PrepareSession narrows a normalized roster down to one sitting: only
// registrations for the session's subjects survive, each gets the exam date
// and session tag stamped on, and the result is sorted by (subject_code,
// department, register_no) for predictability.
//
// The total-capacity pre-check lives here rather than in the engine: it
// catches a hopeless configuration cheaply before any allocation work and
// with a clearer message than the engine's per-subject infeasibility error.
func PrepareSession(regs []model.Registration, sess model.ExamSession) ([]model.Registration, error) {
	subjects := make(map[string]bool, len(sess.SubjectCodes))
	for _, code := range sess.SubjectCodes {
		subjects[CanonicalSubjectCode(code)] = true
	}

	var prepared []model.Registration
	for _, r := range regs {
		if !subjects[r.SubjectCode] {
			continue
		}
		r.ExamDate = sess.ExamDate
		r.Session = sess.Session
		prepared = append(prepared, r)
	}
	if len(prepared) == 0 {
		return nil, fmt.Errorf("no students found for selected subject codes")
	}

	totalCapacity := sess.NumberOfHalls * sess.HallCapacity
	if len(prepared) > totalCapacity {
		return nil, fmt.Errorf("capacity exceeded: %d students but only %d seats available",
			len(prepared), totalCapacity)
	}

	sort.SliceStable(prepared, func(i, j int) bool {
		a, b := prepared[i], prepared[j]
		if a.SubjectCode != b.SubjectCode {
			return a.SubjectCode < b.SubjectCode
		}
		if a.Department != b.Department {
			return a.Department < b.Department
		}
		return a.RegisterNo < b.RegisterNo
	})
	return prepared, nil
}
