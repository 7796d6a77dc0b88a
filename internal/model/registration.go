package model

// Registration is one (student, subject) pair for an exam session.  The
// roster normalizer produces exactly one Registration per subject a student
// writes, so a student sitting three papers appears three times with the
// same register number.  Uniqueness of (RegisterNo, SubjectCode) is enforced
// during normalization, not re-checked downstream.
//
// csv tags follow the normalized roster file layout; json tags are used by
// the HTTP handlers when returning registrations to staff.
type Registration struct {
	RegisterNo  int64  `json:"register_no" csv:"register_no"`
	StudentName string `json:"student_name" csv:"student_name"`
	Department  string `json:"department" csv:"department"`
	Semester    int    `json:"semester" csv:"semester"`
	SubjectCode string `json:"subject_code" csv:"subject_code"`
	ExamDate    string `json:"exam_date" csv:"exam_date"`
	Session     string `json:"session" csv:"session"`
}
