package handler

import (
	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type QAHandler struct {
	uc usecase.QAUsecase
}

func NewQAHandler(uc usecase.QAUsecase) *QAHandler {
	return &QAHandler{uc: uc}
}

func (h *QAHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/qa")
	grp.Post("/ask", h.Ask)
}

func (h *QAHandler) Ask(c fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.Bind().JSON(&req); err != nil {
		return bodyError(err)
	}
	question, ok := req.Question.Get()
	if !ok {
		return validationError("question", "field required", nil)
	}

	return response.JSON(c, fiber.StatusOK, h.uc.Ask(c.Context(), question))
}
