package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillmentor/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	resume *handlers.ResumeHandler,
	analysis *handlers.AnalysisHandler,
	sess *handlers.SessionHandler,
	profile *handlers.ProfileHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Post("/logout", authMW, auth.Logout)

	// Upload flow
	rg := v1.Group("/resume", authMW)
	rg.Post("/upload", resume.Upload)
	v1.Post("/goal/suggest", authMW, resume.SuggestGoal)

	// Analysis dashboard
	an := v1.Group("/analysis", authMW)
	an.Post("/start", analysis.Start)
	an.Get("/roadmap", analysis.Roadmap)
	an.Get("/projects", analysis.Projects)

	// Session state
	sg := v1.Group("/session", authMW)
	sg.Get("/", sess.Get)
	sg.Post("/reset", sess.Reset)

	// Persisted profile
	pg := v1.Group("/profile", authMW)
	pg.Get("/", profile.Get)
	pg.Post("/save", profile.Save)
}
