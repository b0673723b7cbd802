package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status through service and controller layers.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

func NewUnprocessableError(message string) *AppError {
	return &AppError{Code: fiber.StatusUnprocessableEntity, Message: message}
}

func NewServiceUnavailableError(message string) *AppError {
	return &AppError{Code: fiber.StatusServiceUnavailable, Message: message}
}

// StatusOf maps any error to the HTTP status it should be reported with.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
