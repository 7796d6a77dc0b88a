package repository

import (
	"context"
	"database/sql"

	"github.com/adhilcr/exam-seating/internal/model"
)

// RegistrationRepo stores the normalized roster uploaded for a session.
// Rows are immutable once written; re-uploading a roster replaces the whole
// set so a stale partial upload can never mix with a fresh one.
type RegistrationRepo struct {
	db *sql.DB
}

// NewRegistrationRepo constructs a RegistrationRepo with the given DB handle.
func NewRegistrationRepo(db *sql.DB) *RegistrationRepo { return &RegistrationRepo{db: db} }

// ReplaceForSession swaps the session's roster in a single transaction:
// existing rows are removed, then the new set is bulk-inserted.
func (r *RegistrationRepo) ReplaceForSession(ctx context.Context, sessionID string, regs []model.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM registrations WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	if err := insertRegistrations(ctx, tx, sessionID, regs); err != nil {
		return err
	}
	return tx.Commit()
}

// insertRegistrations bulk-inserts registrations in a single statement.
func insertRegistrations(ctx context.Context, tx *sql.Tx, sessionID string, regs []model.Registration) error {
	if len(regs) == 0 {
		return nil
	}
	query := `INSERT INTO registrations (session_id, register_no, student_name, department, semester, subject_code) VALUES `
	args := make([]any, 0, len(regs)*6)
	for i, reg := range regs {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?)"
		args = append(args, sessionID, reg.RegisterNo, reg.StudentName, reg.Department, reg.Semester, reg.SubjectCode)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// ListBySession returns the session's roster in the deterministic
// (subject_code, department, register_no) order the preparer expects.
func (r *RegistrationRepo) ListBySession(ctx context.Context, sessionID string) ([]model.Registration, error) {
	const q = `SELECT register_no, student_name, department, semester, subject_code
	           FROM registrations
	           WHERE session_id = ?
	           ORDER BY subject_code, department, register_no`
	rows, err := r.db.QueryContext(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Registration
	for rows.Next() {
		var reg model.Registration
		if err := rows.Scan(&reg.RegisterNo, &reg.StudentName, &reg.Department, &reg.Semester, &reg.SubjectCode); err != nil {
			return nil, err
		}
		result = append(result, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountBySession returns the roster size for capacity summaries.
func (r *RegistrationRepo) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE session_id = ?`, sessionID).Scan(&n)
	return n, err
}
