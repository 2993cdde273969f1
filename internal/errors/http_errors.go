package errors

import (
	"encoding/json"
	"net/http"
)

type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HandleHTTPError maps error kinds to status codes and writes the JSON body.
func HandleHTTPError(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	switch e := err.(type) {
	case *ValidationError:
		httpErr = &HTTPError{
			Code:    http.StatusBadRequest,
			Message: e.Error(),
		}
	case *NotFoundError:
		httpErr = &HTTPError{
			Code:    http.StatusNotFound,
			Message: e.Error(),
		}
	case *ForbiddenError:
		httpErr = &HTTPError{
			Code:    http.StatusForbidden,
			Message: e.Error(),
		}
	case *ConflictError:
		httpErr = &HTTPError{
			Code:    http.StatusConflict,
			Message: e.Error(),
		}
	case *InsufficientFundsError:
		httpErr = &HTTPError{
			Code:    http.StatusBadRequest,
			Message: e.Error(),
		}
	case *LimitExceededError:
		httpErr = &HTTPError{
			Code:    http.StatusBadRequest,
			Message: e.Error(),
		}
	case *InvalidPINError:
		httpErr = &HTTPError{
			Code:    http.StatusBadRequest,
			Message: e.Error(),
		}
	case *TooManyAttemptsError:
		httpErr = &HTTPError{
			Code:    http.StatusTooManyRequests,
			Message: e.Error(),
		}
	case *ExternalServiceError:
		httpErr = &HTTPError{
			Code:    http.StatusBadGateway,
			Message: e.Error(),
		}
	default:
		httpErr = &HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Code)
	json.NewEncoder(w).Encode(httpErr)
}
