package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adhilcr/exam-seating/internal/model"
	"github.com/adhilcr/exam-seating/internal/queue"
	"github.com/adhilcr/exam-seating/internal/repository"
	"github.com/adhilcr/exam-seating/internal/roster"
	"github.com/adhilcr/exam-seating/internal/seating"
	queue_publisher "github.com/adhilcr/exam-seating/internal/service"
)

// RunAllocation handles POST /v1/sessions/:id/allocate: it prepares the
// stored roster for the sitting, runs the seating engine, audits the plan,
// persists it, writes the chart CSV and publishes the completion event.
// The engine is pure, so re-running simply replaces the previous plan.
func (h *StaffHandler) RunAllocation(c echo.Context) error {
	ctx := c.Request().Context()

	sess, err := h.Sessions.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	normalized, err := h.Registrations.ListBySession(ctx, sess.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(normalized) == 0 {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no roster uploaded for this session"})
	}

	prepared, err := roster.PrepareSession(normalized, *sess)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	cfg := seating.Config{
		NumberOfHalls:     sess.NumberOfHalls,
		HallCapacity:      sess.HallCapacity,
		MaxSubjectPerHall: sess.MaxSubjectPerHall,
	}
	plan, err := seating.Allocate(prepared, cfg)
	if err != nil {
		return allocationErrorResponse(c, err)
	}

	// Independent recount of the plan before anything is persisted.
	audit := roster.VerifyPlan(prepared, plan, cfg)
	if !audit.OK() {
		log.Printf("allocation: audit failed for session %s: %v", sess.ID, audit.Violations)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "plan failed audit", "audit": audit})
	}

	runID := uuid.NewString()
	if err := h.Assignments.ReplaceForSession(ctx, sess.ID, runID, plan.Assignments); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store plan"})
	}
	if err := h.Sessions.SetStatus(ctx, sess.ID, model.SessionStatusAllocated); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update session"})
	}

	chartPath, err := roster.WriteChart(h.Cfg.OutputDir, plan)
	if err != nil {
		log.Printf("allocation: chart write failed for session %s: %v", sess.ID, err)
		chartPath = "" // plan is stored; the chart can be re-downloaded from the API
	}

	// Best effort: a missing broker must not fail the run.
	pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue_publisher.PublishAllocationCompleted(pubCtx, queue.AllocationCompletedEvent{
		RunID:       runID,
		SessionID:   sess.ID,
		ExamDate:    plan.ExamDate,
		Session:     plan.Session,
		HallsUsed:   plan.HallsUsed,
		TotalSeated: plan.TotalSeated,
		ChartPath:   chartPath,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	})

	log.Printf("allocation: session %s run %s seated %d students across %d halls",
		sess.ID, runID, plan.TotalSeated, plan.HallsUsed)

	return c.JSON(http.StatusOK, echo.Map{
		"run_id":       runID,
		"halls_used":   plan.HallsUsed,
		"total_seated": plan.TotalSeated,
		"chart_path":   chartPath,
		"halls":        plan.Halls,
		"audit":        audit,
	})
}

// allocationErrorResponse maps engine error types onto HTTP statuses.  The
// error text is surfaced verbatim; it is already human-readable and names
// the offending subject where applicable.
func allocationErrorResponse(c echo.Context, err error) error {
	var cfgErr *seating.ConfigurationError
	var schemaErr *seating.SchemaError
	var infeasible *seating.AllocationInfeasible
	switch {
	case errors.As(err, &cfgErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.As(err, &schemaErr):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.As(err, &infeasible):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error(), "subject_code": infeasible.SubjectCode})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "allocation failed"})
	}
}

// DownloadChart handles GET /v1/sessions/:id/chart and streams the stored
// plan as the seat chart CSV.
func (h *StaffHandler) DownloadChart(c echo.Context) error {
	sess, err := h.Sessions.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	assignments, err := h.Assignments.ListBySession(c.Request().Context(), sess.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotAllocated) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session has no seating plan yet"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	filename := roster.ChartFilename(sess.ExamDate, sess.Session)
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)
	return roster.WriteChartTo(c.Response(), assignments)
}

// HallOverview handles GET /v1/sessions/:id/halls and recomputes per-hall
// occupancy and subject mix from the stored plan.
func (h *StaffHandler) HallOverview(c echo.Context) error {
	sess, err := h.Sessions.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	assignments, err := h.Assignments.ListBySession(c.Request().Context(), sess.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotAllocated) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session has no seating plan yet"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	byHall := make(map[int]*seating.Summary)
	var order []int
	for _, a := range assignments {
		s, ok := byHall[a.HallID]
		if !ok {
			s = &seating.Summary{
				HallID:      a.HallID,
				Capacity:    sess.HallCapacity,
				Subjects:    make(map[string]int),
				Departments: make(map[string]int),
			}
			byHall[a.HallID] = s
			order = append(order, a.HallID)
		}
		s.Occupied++
		s.Subjects[a.SubjectCode]++
		s.Departments[a.Department]++
	}

	halls := make([]seating.Summary, 0, len(order))
	for _, id := range order {
		halls = append(halls, *byHall[id])
	}
	return c.JSON(http.StatusOK, halls)
}
