package model

// SeatAssignment is the final placement of one registration: which hall the
// student writes this paper in and which seat they occupy.  SeatNumber is
// 1-based and contiguous within a hall; seats N and N+1 for odd N form a
// physical bench.
type SeatAssignment struct {
	RegisterNo  int64  `json:"register_no" csv:"register_no"`
	StudentName string `json:"student_name" csv:"student_name"`
	Department  string `json:"department" csv:"department"`
	SubjectCode string `json:"subject_code" csv:"subject_code"`
	HallID      int    `json:"hall_id" csv:"hall_id"`
	SeatNumber  int    `json:"seat_number" csv:"seat_number"`
}
