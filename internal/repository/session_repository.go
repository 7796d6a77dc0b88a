package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/adhilcr/exam-seating/internal/model"
)

// SessionRepo provides CRUD operations for exam sessions.  The subject set
// is stored as a comma-joined string in the subject_codes column; codes are
// canonicalized before they reach this layer so the join is unambiguous.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo constructs a SessionRepo with the given DB handle.
func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

// Create inserts an exam session.  The caller supplies the UUID.  A
// duplicate (exam_date, session) pair maps to ErrDuplicateSession.
func (r *SessionRepo) Create(ctx context.Context, s *model.ExamSession) error {
	const q = `INSERT INTO exam_sessions
	           (id, exam_date, session, subject_codes, number_of_halls, hall_capacity, max_subject_per_hall, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		s.ID, s.ExamDate, s.Session, strings.Join(s.SubjectCodes, ","),
		s.NumberOfHalls, s.HallCapacity, s.MaxSubjectPerHall, s.Status)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicateSession
		}
		return err
	}
	return nil
}

// GetByID retrieves a session by its UUID.
func (r *SessionRepo) GetByID(ctx context.Context, id string) (*model.ExamSession, error) {
	const q = `SELECT id, exam_date, session, subject_codes, number_of_halls, hall_capacity,
	                  max_subject_per_hall, status, created_at, updated_at
	           FROM exam_sessions WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// List returns all sessions ordered by exam date then session tag.
func (r *SessionRepo) List(ctx context.Context) ([]model.ExamSession, error) {
	const q = `SELECT id, exam_date, session, subject_codes, number_of_halls, hall_capacity,
	                  max_subject_per_hall, status, created_at, updated_at
	           FROM exam_sessions ORDER BY exam_date, session`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ExamSession
	for rows.Next() {
		s, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SetStatus updates the lifecycle state of a session.
func (r *SessionRepo) SetStatus(ctx context.Context, id, status string) error {
	const q = `UPDATE exam_sessions SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SessionRepo) scanOne(row *sql.Row) (*model.ExamSession, error) {
	s, err := r.scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	return s, err
}

func (r *SessionRepo) scanRow(row rowScanner) (*model.ExamSession, error) {
	var s model.ExamSession
	var codes string
	if err := row.Scan(&s.ID, &s.ExamDate, &s.Session, &codes, &s.NumberOfHalls,
		&s.HallCapacity, &s.MaxSubjectPerHall, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if codes != "" {
		s.SubjectCodes = strings.Split(codes, ",")
	}
	return &s, nil
}
