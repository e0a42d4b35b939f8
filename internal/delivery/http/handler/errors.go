package handler

import (
	"errors"

	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func validationError(field, reason string, cause error) error {
	return middleware.NewAppError(
		fiber.StatusUnprocessableEntity,
		response.MessageUnprocessableEntity,
		dto.ValidationErrorData{Field: field, Reason: reason},
		cause,
	)
}

func bodyError(err error) error {
	return validationError("", "invalid JSON body: "+err.Error(), err)
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return validationError("", err.Error(), err)
	case errors.Is(err, usecase.ErrUnsupportedDocument):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, response.MessageUnsupportedMediaType, dto.ValidationErrorData{Field: "file", Reason: err.Error()}, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
