package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHTTPError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", NewValidationError("bad input"), http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound},
		{"forbidden", NewForbiddenError("nope"), http.StatusForbidden},
		{"conflict", NewConflictError("closed"), http.StatusConflict},
		{"insufficient funds", NewInsufficientFundsError(), http.StatusBadRequest},
		{"limit exceeded", NewLimitExceededError("Daily", "50"), http.StatusBadRequest},
		{"invalid pin", NewInvalidPINError(), http.StatusBadRequest},
		{"too many attempts", NewTooManyAttemptsError(), http.StatusTooManyRequests},
		{"external service", NewExternalServiceError("account", "down"), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleHTTPError(rec, tc.err)

			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHTTPError(rec, errors.New("pq: connection refused"))

	var body HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Message)
}
