package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	resume *handlers.ResumeHandler,
	jobs *handlers.JobsHandler,
	jd *handlers.JDHandler,
	match *handlers.MatchHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/login", auth.Login)

	// Resume analysis pipeline
	rg := v1.Group("/resume")
	rg.Post("/analyze", resume.Analyze)
	rg.Post("/parse", resume.ParseText)

	// Job catalog
	jg := v1.Group("/jobs")
	jg.Get("/", jobs.List)
	jg.Post("/", jobs.Create)
	jg.Post("/batch", jobs.CreateBatch)
	jg.Get("/:id", jobs.Get)
	jg.Delete("/:id", jobs.Delete)

	// JD parsing
	v1.Post("/jd/parse", jd.Parse)

	// Matching
	v1.Post("/match", match.Match)
	v1.Get("/matches", match.History)
}
