package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"resto/shared/failure"
	"resto/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]int{"busyTablesCount": 2})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"busyTablesCount":2}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "OK")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation failure carries fields",
			err:      failure.Validation("", failure.FieldError{Field: "guestCount", Message: "guestCount must be greater than or equal to 1"}),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"error":"guestCount must be greater than or equal to 1","fields":[{"field":"guestCount","message":"guestCount must be greater than or equal to 1"}]}`,
		},
		{
			name:     "bad request",
			err:      failure.BadRequestFromString("failed to decode request body"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"failed to decode request body"}`,
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("Invalid token"),
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Invalid token"}`,
		},
		{
			name:     "storage error hides details",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}

func TestWithPreparingShutdown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}
