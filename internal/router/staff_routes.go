package router // router defines how HTTP routes are registered for the API

import (
	"github.com/adhilcr/exam-seating/internal/handler"    // staff handlers
	"github.com/adhilcr/exam-seating/internal/middleware" // JWT + role middlewares
	"github.com/labstack/echo/v4"
)

// RegisterStaff registers STAFF-scoped endpoints under /v1.
// All routes require a valid JWT and STAFF role.
func RegisterStaff(e *echo.Echo, s *handler.StaffHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("STAFF"),
	)

	// ---- Exam sessions ----
	g.POST("/sessions", s.CreateSession)
	g.GET("/sessions", s.ListSessions)
	g.GET("/sessions/:id", s.GetSession)

	// ---- Roster ----
	// Upload replaces any roster previously stored for the session;
	// re-uploading before allocation is the normal correction path.
	g.POST("/sessions/:id/roster", s.UploadRoster)

	// ---- Allocation ----
	g.POST("/sessions/:id/allocate", s.RunAllocation)
	g.GET("/sessions/:id/halls", s.HallOverview)
	g.GET("/sessions/:id/chart", s.DownloadChart)
}
