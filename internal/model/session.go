package model

import "time"

// Exam session lifecycle states.  A session starts as DRAFT when created,
// and becomes ALLOCATED once a seating plan has been generated and stored.
const (
	SessionStatusDraft     = "DRAFT"
	SessionStatusAllocated = "ALLOCATED"
)

// ExamSession groups the registrations and hall configuration for one sitting
// (one exam date plus a forenoon/afternoon tag).  SubjectCodes is the set of
// papers written in this sitting; only registrations for these subjects are
// seated.
//
// Fields:
//
//	ID                – UUID assigned at creation.
//	ExamDate          – date of the sitting, e.g. "2026-03-10".
//	Session           – session tag within the day, e.g. "FN" or "AN".
//	SubjectCodes      – subject codes examined in this sitting.
//	NumberOfHalls     – halls available for this sitting.
//	HallCapacity      – seats per hall (even; seats are consumed in benches of two).
//	MaxSubjectPerHall – cap on same-subject students within one hall.
//	Status            – DRAFT | ALLOCATED.
type ExamSession struct {
	ID                string    `json:"id"`
	ExamDate          string    `json:"exam_date"`
	Session           string    `json:"session"`
	SubjectCodes      []string  `json:"subject_codes"`
	NumberOfHalls     int       `json:"number_of_halls"`
	HallCapacity      int       `json:"hall_capacity"`
	MaxSubjectPerHall int       `json:"max_subject_per_hall"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
