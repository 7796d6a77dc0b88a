// Package queue defines message payloads exchanged over the message broker.
package queue

// AllocationCompletedEvent is published when a seating plan has been
// generated and stored for an exam session.  It contains enough information
// for downstream consumers to log, notify invigilators, or trigger
// reporting without querying the primary database.
type AllocationCompletedEvent struct {
	RunID       string `json:"run_id"`
	SessionID   string `json:"session_id"`
	ExamDate    string `json:"exam_date"`
	Session     string `json:"session"`
	HallsUsed   int    `json:"halls_used"`
	TotalSeated int    `json:"total_seated"`
	ChartPath   string `json:"chart_path"`
	CompletedAt string `json:"completed_at"`
}
