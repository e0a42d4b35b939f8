package handler

import (
	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PlannerHandler struct {
	uc usecase.PlannerUsecase
}

func NewPlannerHandler(uc usecase.PlannerUsecase) *PlannerHandler {
	return &PlannerHandler{uc: uc}
}

func (h *PlannerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/planner")
	grp.Post("/roadmap", h.Roadmap)
}

// Roadmap takes a bare JSON array of skills as the request body.
func (h *PlannerHandler) Roadmap(c fiber.Ctx) error {
	var skills *dto.StringList
	if err := c.Bind().JSON(&skills); err != nil {
		return bodyError(err)
	}
	if skills == nil {
		return validationError("", "body must be a list of strings", nil)
	}

	return response.JSON(c, fiber.StatusOK, h.uc.Roadmap(c.Context(), []string(*skills)))
}
