package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/adhilcr/exam-seating/internal/handler"    // import the handlers that implement business logic
	"github.com/adhilcr/exam-seating/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Routes that do not require an existing session: register, login and
	// the two refresh variants.  Each handler is responsible for generating
	// or exchanging tokens.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token; refresh-access issues a new access
	// token without rotation.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout does not require JWT authentication.  The handler accepts a JSON
	// body containing a `refresh_token` and invalidates that token.
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token.  Any authenticated role is
	// accepted here; the staff-only surface applies its own role check.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("STAFF", "VIEWER"))
	auth.GET("/me", a.Me)

	// Alias so clients can call either /v1/auth/logout or /v1/logout with a
	// valid refresh token in the body to terminate a session.
	e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers unauthenticated lookup endpoints on the provided
// Echo instance.  These routes carry no JWT or role middleware; the optional
// middlewares (Redis response cache, token-bucket rate limiter) are applied
// here so that only the public surface pays for them.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1/public", mw...)
	// Student seat lookup: one entry per subject the student writes in the
	// sitting.  Register numbers are public on exam day, so no auth.
	g.GET("/sessions/:id/seats/:register_no", p.LookupSeat)
}
