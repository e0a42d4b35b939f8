package handler

import (
	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/domain/job"
	"career-coach/internal/domain/matching"
	"career-coach/internal/pkg/optional"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/match")
	grp.Post("/jobs", h.MatchJobs)
}

func (h *MatchHandler) MatchJobs(c fiber.Ctx) error {
	var req dto.MatchJobsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return bodyError(err)
	}

	q, err := toMatchQuery(req)
	if err != nil {
		return err
	}

	res, err := h.uc.MatchJobs(c.Context(), q)
	if err != nil {
		return mapUsecaseError(err)
	}
	if res == nil {
		res = []matching.Result{}
	}
	return response.JSON(c, fiber.StatusOK, res)
}

func toMatchQuery(req dto.MatchJobsRequest) (matching.Query, error) {
	skills, ok := req.Skills.Get()
	if !ok {
		return matching.Query{}, validationError("skills", "field required", nil)
	}

	q := matching.Query{Skills: []string(skills), TopK: req.TopK}

	if k, ok := req.TopK.Get(); ok && k < 0 {
		return matching.Query{}, validationError("top_k", "must not be negative", nil)
	}
	if raw, ok := req.JobType.Get(); ok {
		jt := job.Type(raw)
		if !jt.Valid() {
			return matching.Query{}, validationError("job_type", "must be one of full_time, internship", nil)
		}
		q.JobType = optional.Some(jt)
	}
	if cats, ok := req.Categories.Get(); ok {
		q.Categories = optional.Some([]string(cats))
	}
	return q, nil
}
