package repository

import (
	"context"
	"database/sql"

	"github.com/adhilcr/exam-seating/internal/model"
)

// AssignmentRepo stores generated seating plans.  A run replaces the whole
// plan for its session atomically; partial plans are never visible, matching
// the engine's all-or-nothing contract.
type AssignmentRepo struct {
	db *sql.DB
}

// NewAssignmentRepo constructs an AssignmentRepo with the given DB handle.
func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{db: db} }

// ReplaceForSession swaps the stored plan for a session in one transaction
// and tags every row with the allocation run id for traceability.
func (r *AssignmentRepo) ReplaceForSession(ctx context.Context, sessionID, runID string, assignments []model.SeatAssignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM seat_assignments WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	if len(assignments) > 0 {
		query := `INSERT INTO seat_assignments (session_id, run_id, register_no, student_name, department, subject_code, hall_id, seat_number) VALUES `
		args := make([]any, 0, len(assignments)*8)
		for i, a := range assignments {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?, ?, ?, ?, ?)"
			args = append(args, sessionID, runID, a.RegisterNo, a.StudentName, a.Department, a.SubjectCode, a.HallID, a.SeatNumber)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListBySession returns the stored plan grouped by hall ascending with seat
// numbers ascending inside each hall, the same ordering the engine emits.
func (r *AssignmentRepo) ListBySession(ctx context.Context, sessionID string) ([]model.SeatAssignment, error) {
	const q = `SELECT register_no, student_name, department, subject_code, hall_id, seat_number
	           FROM seat_assignments
	           WHERE session_id = ?
	           ORDER BY hall_id, seat_number`
	rows, err := r.db.QueryContext(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SeatAssignment
	for rows.Next() {
		var a model.SeatAssignment
		if err := rows.Scan(&a.RegisterNo, &a.StudentName, &a.Department, &a.SubjectCode, &a.HallID, &a.SeatNumber); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNotAllocated
	}
	return result, nil
}

// FindSeat looks up one student's seat for a session and subject.
func (r *AssignmentRepo) FindSeat(ctx context.Context, sessionID string, registerNo int64, subjectCode string) (*model.SeatAssignment, error) {
	const q = `SELECT register_no, student_name, department, subject_code, hall_id, seat_number
	           FROM seat_assignments
	           WHERE session_id = ? AND register_no = ? AND subject_code = ?`
	var a model.SeatAssignment
	err := r.db.QueryRowContext(ctx, q, sessionID, registerNo, subjectCode).
		Scan(&a.RegisterNo, &a.StudentName, &a.Department, &a.SubjectCode, &a.HallID, &a.SeatNumber)
	if err == sql.ErrNoRows {
		return nil, ErrSeatNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListSeatsForStudent returns every seat a student holds in a session, one
// per subject, ordered by subject code.
func (r *AssignmentRepo) ListSeatsForStudent(ctx context.Context, sessionID string, registerNo int64) ([]model.SeatAssignment, error) {
	const q = `SELECT register_no, student_name, department, subject_code, hall_id, seat_number
	           FROM seat_assignments
	           WHERE session_id = ? AND register_no = ?
	           ORDER BY subject_code`
	rows, err := r.db.QueryContext(ctx, q, sessionID, registerNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SeatAssignment
	for rows.Next() {
		var a model.SeatAssignment
		if err := rows.Scan(&a.RegisterNo, &a.StudentName, &a.Department, &a.SubjectCode, &a.HallID, &a.SeatNumber); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrSeatNotFound
	}
	return result, nil
}
