package response

import "github.com/gofiber/fiber/v3"

type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                   = "ok"
	MessageBadRequest           = "bad request"
	MessageNotFound             = "not found"
	MessageMethodNotAllowed     = "method not allowed"
	MessageRequestTooLarge      = "request entity too large"
	MessageUnsupportedMediaType = "unsupported media type"
	MessageUnprocessableEntity  = "unprocessable entity"
	MessageInternalServerError  = "internal server error"
	MessageError                = "error"
)

// JSON writes v as the bare response body. The public endpoints return their
// payloads unwrapped; only errors use the SemanticResponse envelope.
func JSON(c fiber.Ctx, status int, v interface{}) error {
	return c.Status(normalizeStatus(status)).JSON(v)
}

func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	st := normalizeStatus(status)
	msg := normalizeMessage(message, st)
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: msg, Data: data})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessageForStatus(status)
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case fiber.StatusRequestEntityTooLarge:
		return MessageRequestTooLarge
	case fiber.StatusUnsupportedMediaType:
		return MessageUnsupportedMediaType
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
