package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedDocument = errors.New("unsupported document")
	ErrInternal            = errors.New("internal error")
)
