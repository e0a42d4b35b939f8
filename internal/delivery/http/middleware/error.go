package middleware

import (
	"errors"

	"career-coach/internal/pkg/response"

	goerrors "github.com/go-errors/errors"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				stack := goerrors.Wrap(r, 2)
				m.logger.Error("panic recovered",
					zap.String("rid", RequestID(c)),
					zap.String("path", c.Path()),
					zap.String("panic", stack.Error()),
					zap.String("stack", string(stack.Stack())),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= fiber.StatusInternalServerError {
			m.logger.Error("request failed",
				zap.String("rid", RequestID(c)),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return response.Error(c, status, msg, data)
	}
}

// ErrorHandler renders errors raised outside the middleware chain, such as
// Fiber's own body-limit rejections.
func ErrorHandler(c fiber.Ctx, err error) error {
	status, msg, data := normalizeError(err)
	return response.Error(c, status, msg, data)
}

func normalizeError(err error) (int, string, interface{}) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}

		status := appErr.StatusCode
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}

		if status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		return status, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}

		if status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}

		return status, response.DefaultMessageForStatus(status), nil
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}
