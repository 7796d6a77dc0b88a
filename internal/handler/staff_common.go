package handler

import (
	"github.com/adhilcr/exam-seating/internal/config"
	"github.com/adhilcr/exam-seating/internal/repository"
)

// StaffHandler bundles everything the exam-cell endpoints need: session and
// roster persistence, plan storage, and the runtime configuration that
// points at the chart output directory.
type StaffHandler struct {
	Cfg           config.Config
	Sessions      *repository.SessionRepo
	Registrations *repository.RegistrationRepo
	Assignments   *repository.AssignmentRepo
}

// NewStaffHandler constructs a StaffHandler and panics if any dependency is nil.
func NewStaffHandler(cfg config.Config, sessions *repository.SessionRepo, regs *repository.RegistrationRepo, assignments *repository.AssignmentRepo) *StaffHandler {
	if sessions == nil || regs == nil || assignments == nil {
		panic("nil repository passed to NewStaffHandler")
	}
	return &StaffHandler{Cfg: cfg, Sessions: sessions, Registrations: regs, Assignments: assignments}
}
