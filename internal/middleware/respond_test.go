package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/DuDupedrosa/krt-bank/internal/apperr"
)

func TestRespondWithAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{
			name:         "validation",
			err:          &apperr.ValidationError{Fields: []apperr.FieldError{{Field: "Name", Message: "This field is required"}}},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "conflict",
			err:          &apperr.ConflictError{Message: "already registered"},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "not found",
			err:          &apperr.NotFoundError{Message: "Account not found"},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "state",
			err:          &apperr.StateError{Message: "Only active accounts can be updated"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "internal",
			err:          apperr.Internal("AccountService.Get", fmt.Errorf("store down")),
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "unknown errors are internal",
			err:          fmt.Errorf("something unexpected"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			RespondWithAppError(c, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestInternalErrorKeepsOperationTag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondWithAppError(c, apperr.Internal("AccountService.Create", fmt.Errorf("broker down")))

	assert.Contains(t, w.Body.String(), "AccountService.Create")
	assert.Contains(t, w.Body.String(), "broker down")
}
