package handler

import (
	"fmt"
	"io"

	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const uploadField = "file"

type IngestHandler struct {
	uc       usecase.IngestUsecase
	maxBytes int64
}

func NewIngestHandler(uc usecase.IngestUsecase, maxBytes int) *IngestHandler {
	return &IngestHandler{uc: uc, maxBytes: int64(maxBytes)}
}

func (h *IngestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/ingest")
	grp.Post("/resume", h.IngestResume)
	grp.Post("/resume/file", h.IngestResumeFile)
}

func (h *IngestHandler) IngestResume(c fiber.Ctx) error {
	var req dto.ResumeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return bodyError(err)
	}
	text, ok := req.Text.Get()
	if !ok {
		return validationError("text", "field required", nil)
	}

	skills := h.uc.ExtractSkills(c.Context(), text)
	return response.JSON(c, fiber.StatusOK, dto.SkillsResponse{Skills: skills})
}

func (h *IngestHandler) IngestResumeFile(c fiber.Ctx) error {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return validationError(uploadField, "multipart file required", err)
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return validationError(uploadField, fmt.Sprintf("file larger than %d bytes", h.maxBytes), nil)
	}

	f, err := fh.Open()
	if err != nil {
		return mapUsecaseError(fmt.Errorf("%w: open upload: %v", usecase.ErrInternal, err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return mapUsecaseError(fmt.Errorf("%w: read upload: %v", usecase.ErrInternal, err))
	}

	skills, err := h.uc.ExtractSkillsFromDocument(c.Context(), fh.Header.Get(fiber.HeaderContentType), fh.Filename, data)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.SkillsResponse{Skills: skills})
}
