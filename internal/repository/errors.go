// Package repository implements MySQL persistence for the seating service:
// exam-cell accounts and their refresh tokens, exam sessions, normalized
// registrations and generated seat assignments.  Sentinel errors defined
// here let handlers map failure scenarios onto HTTP statuses without
// string-matching driver errors.
package repository

import "errors"

// ErrSessionNotFound is returned when an exam session lookup yields no
// rows.  Handlers translate this into an HTTP 404 response.
var ErrSessionNotFound = errors.New("exam session not found")

// ErrDuplicateSession is returned when creating a session for an
// (exam_date, session) pair that already exists.  Handlers translate this
// into an HTTP 409 response.
var ErrDuplicateSession = errors.New("exam session already exists for this date and session")

// ErrNotAllocated is returned when seat assignments are requested for a
// session that has no stored plan yet.
var ErrNotAllocated = errors.New("session has no seating plan")

// ErrSeatNotFound is returned when a student's seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat assignment not found")
