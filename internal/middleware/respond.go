package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DuDupedrosa/krt-bank/internal/apperr"
)

// BadRequestErrorResponse carries field-level detail for validation failures.
type BadRequestErrorResponse struct {
	Message string             `json:"message"`
	Details []apperr.FieldError `json:"details"`
}

// RespondWithError writes a single-message error body.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"message": message,
	})
}

// RespondWithValidationError writes a 400 with one entry per failing field.
func RespondWithValidationError(c *gin.Context, fields []apperr.FieldError) {
	c.JSON(http.StatusBadRequest, BadRequestErrorResponse{
		Message: "Invalid request data",
		Details: fields,
	})
}

// RespondWithAppError translates the service error taxonomy to HTTP status
// signalling. Unknown errors are treated as internal.
func RespondWithAppError(c *gin.Context, err error) {
	var validationErr *apperr.ValidationError
	if errors.As(err, &validationErr) {
		RespondWithValidationError(c, validationErr.Fields)
		return
	}

	var conflictErr *apperr.ConflictError
	if errors.As(err, &conflictErr) {
		RespondWithError(c, http.StatusConflict, conflictErr.Message)
		return
	}

	var notFoundErr *apperr.NotFoundError
	if errors.As(err, &notFoundErr) {
		RespondWithError(c, http.StatusNotFound, notFoundErr.Message)
		return
	}

	var stateErr *apperr.StateError
	if errors.As(err, &stateErr) {
		RespondWithError(c, http.StatusBadRequest, stateErr.Message)
		return
	}

	RespondWithError(c, http.StatusInternalServerError, err.Error())
}
