// Package handler exposes HTTP handlers for both authenticated and public endpoints.
// This file defines the public seat lookup API. These routes let students find
// their own seat without authentication: a register number plus the session ID
// is considered public knowledge on exam day (it is printed on the notice board
// anyway). Responses carry only seat placement fields.

package handler

import (
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/adhilcr/exam-seating/internal/model"
    "github.com/adhilcr/exam-seating/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated lookups.
type PublicHandler struct {
    SessionRepo    *repository.SessionRepo    // exam session metadata
    AssignmentRepo *repository.AssignmentRepo // stored seating plans
}

// PublicSeat is one seat placement exposed via the public API.
type PublicSeat struct {
    RegisterNo  int64  `json:"register_no"`
    StudentName string `json:"student_name"`
    SubjectCode string `json:"subject_code"`
    HallID      int    `json:"hall_id"`
    SeatNumber  int    `json:"seat_number"`
}

// LookupSeat handles GET /v1/public/sessions/:id/seats/:register_no.
// A student writing more than one subject in the sitting gets one entry
// per subject; the optional ?subject= query narrows the answer to one paper.
func (h *PublicHandler) LookupSeat(c echo.Context) error {
    sessionID := c.Param("id")
    registerNo, err := strconv.ParseInt(strings.TrimSpace(c.Param("register_no")), 10, 64)
    if err != nil || registerNo <= 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid register number"})
    }

    sess, err := h.SessionRepo.GetByID(c.Request().Context(), sessionID)
    if err != nil {
        if errors.Is(err, repository.ErrSessionNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    var seats []model.SeatAssignment
    if subject := strings.TrimSpace(c.QueryParam("subject")); subject != "" {
        seat, err := h.AssignmentRepo.FindSeat(c.Request().Context(), sess.ID, registerNo, subject)
        if err != nil {
            if errors.Is(err, repository.ErrSeatNotFound) {
                return c.JSON(http.StatusNotFound, echo.Map{"error": "no seat found for this register number"})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
        }
        seats = []model.SeatAssignment{*seat}
    } else {
        var err error
        seats, err = h.AssignmentRepo.ListSeatsForStudent(c.Request().Context(), sess.ID, registerNo)
        if err != nil {
            if errors.Is(err, repository.ErrSeatNotFound) {
                return c.JSON(http.StatusNotFound, echo.Map{"error": "no seat found for this register number"})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
        }
    }

    out := make([]PublicSeat, 0, len(seats))
    for _, s := range seats {
        out = append(out, PublicSeat{
            RegisterNo:  s.RegisterNo,
            StudentName: s.StudentName,
            SubjectCode: s.SubjectCode,
            HallID:      s.HallID,
            SeatNumber:  s.SeatNumber,
        })
    }

    return c.JSON(http.StatusOK, echo.Map{
        "exam_date": sess.ExamDate,
        "session":   sess.Session,
        "seats":     out,
    })
}
