package accountsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

// Error kinds reported in ErrorResponse.Error for domain failures.
const (
	ErrorCodeValidation      = "Validation Error"
	ErrorCodeNotFound        = "Not Found"
	ErrorCodeUnauthorized    = "Unauthorized"
	ErrorCodeConflict        = "Conflict"
	ErrorCodeInternal        = "Internal Server Error"
	ErrorCodeTooManyRequests = "Too Many Requests"
)

// APIError is a non-2xx response. The server writes it and the client
// returns it.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// WriteError writes e as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{Error: e.Code, Message: e.Message})
}

// StatusCode returns the HTTP status of err when it is an *APIError, and 0
// otherwise.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Predefined request shape errors.
var (
	ErrInvalidBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "Invalid request body",
	}

	ErrRegisterFieldsRequired = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "Name, email, and password are required",
	}

	ErrLoginFieldsRequired = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "Email and password are required",
	}

	ErrRefreshTokenRequired = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "Refresh token is required",
	}
)

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Message:    errResp.Message,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       http.StatusText(resp.StatusCode),
	}
}
