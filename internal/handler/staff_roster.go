package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adhilcr/exam-seating/internal/repository"
	"github.com/adhilcr/exam-seating/internal/roster"
)

// UploadRoster handles POST /v1/sessions/:id/roster.  The multipart field
// "roster" carries the wide registration export; it is melted to one row
// per (student, subject), validated, cross-checked against the original
// subject counts, and stored as the session's roster, replacing any
// earlier upload wholesale.
func (h *StaffHandler) UploadRoster(c echo.Context) error {
	sess, err := h.Sessions.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	fileHeader, err := c.FormFile("roster")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "multipart field 'roster' required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not read upload"})
	}
	defer f.Close()

	normalized, err := roster.Normalize(f)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	if err := roster.ValidateNormalized(normalized); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	// Second pass over the upload for the coverage audit.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not re-read upload"})
	}
	wideCounts, err := roster.WideSubjectCounts(f)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	coverage := roster.VerifyCoverage(wideCounts, normalized)
	if !coverage.OK() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":    "normalization coverage check failed",
			"coverage": coverage,
		})
	}

	if err := h.Registrations.ReplaceForSession(c.Request().Context(), sess.ID, normalized); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store roster"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"session_id":    sess.ID,
		"students":      len(wideCounts),
		"registrations": len(normalized),
	})
}
