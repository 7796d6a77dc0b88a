package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adhilcr/exam-seating/internal/model"
	"github.com/adhilcr/exam-seating/internal/repository"
	"github.com/adhilcr/exam-seating/internal/roster"
	"github.com/adhilcr/exam-seating/internal/seating"
)

var validateReq = validator.New()

type createSessionReq struct {
	ExamDate          string   `json:"exam_date" validate:"required"`
	Session           string   `json:"session" validate:"required"`
	SubjectCodes      []string `json:"subject_codes" validate:"required,min=1,dive,required"`
	NumberOfHalls     int      `json:"number_of_halls" validate:"required,gt=0"`
	HallCapacity      int      `json:"hall_capacity" validate:"required,gt=0"`
	MaxSubjectPerHall int      `json:"max_subject_per_hall" validate:"required,gt=0"`
}

// CreateSession handles POST /v1/sessions.  The hall configuration is
// checked up front with the same rules the engine applies, so staff learn
// about an odd capacity at session creation rather than at allocation time.
func (h *StaffHandler) CreateSession(c echo.Context) error {
	var req createSessionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validateReq.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	cfg := seating.Config{
		NumberOfHalls:     req.NumberOfHalls,
		HallCapacity:      req.HallCapacity,
		MaxSubjectPerHall: req.MaxSubjectPerHall,
	}
	if err := cfg.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	codes := make([]string, 0, len(req.SubjectCodes))
	for _, raw := range req.SubjectCodes {
		if code := roster.CanonicalSubjectCode(raw); code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "subject_codes must not be blank"})
	}

	sess := &model.ExamSession{
		ID:                uuid.NewString(),
		ExamDate:          strings.TrimSpace(req.ExamDate),
		Session:           strings.ToUpper(strings.TrimSpace(req.Session)),
		SubjectCodes:      codes,
		NumberOfHalls:     req.NumberOfHalls,
		HallCapacity:      req.HallCapacity,
		MaxSubjectPerHall: req.MaxSubjectPerHall,
		Status:            model.SessionStatusDraft,
	}
	if err := h.Sessions.Create(c.Request().Context(), sess); err != nil {
		if errors.Is(err, repository.ErrDuplicateSession) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "session already exists for this date and session tag"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create session"})
	}
	sess.CreatedAt = time.Now().UTC()
	sess.UpdatedAt = sess.CreatedAt
	return c.JSON(http.StatusCreated, sess)
}

// ListSessions handles GET /v1/sessions.
func (h *StaffHandler) ListSessions(c echo.Context) error {
	sessions, err := h.Sessions.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if sessions == nil {
		sessions = []model.ExamSession{}
	}
	return c.JSON(http.StatusOK, sessions)
}

// GetSession handles GET /v1/sessions/:id and includes the current roster
// size so staff can see capacity headroom at a glance.
func (h *StaffHandler) GetSession(c echo.Context) error {
	sess, err := h.Sessions.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	count, err := h.Registrations.CountBySession(c.Request().Context(), sess.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session":        sess,
		"registrations":  count,
		"total_capacity": sess.NumberOfHalls * sess.HallCapacity,
	})
}
