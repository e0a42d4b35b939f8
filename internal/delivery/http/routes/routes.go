package routes

import (
	"career-coach/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	ingest  *handler.IngestHandler
	match   *handler.MatchHandler
	planner *handler.PlannerHandler
	qa      *handler.QAHandler
}

func NewRegistry(
	ingest *handler.IngestHandler,
	match *handler.MatchHandler,
	planner *handler.PlannerHandler,
	qa *handler.QAHandler,
) *Registry {
	return &Registry{
		health:  handler.NewHealthHandler(),
		ingest:  ingest,
		match:   match,
		planner: planner,
		qa:      qa,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	if r.ingest != nil {
		r.ingest.RegisterRoutes(app)
	}
	if r.match != nil {
		r.match.RegisterRoutes(app)
	}
	if r.planner != nil {
		r.planner.RegisterRoutes(app)
	}
	if r.qa != nil {
		r.qa.RegisterRoutes(app)
	}
}
