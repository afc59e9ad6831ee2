package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

const msgInternalProduction = "An error occurred"

// ErrorWriter maps flow errors onto responses. Production hides the message
// of internal faults.
type ErrorWriter struct {
	Production bool
}

// Write responds with the status for err's kind.
func (e ErrorWriter) Write(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := &accountsdk.APIError{Message: domain.Message(err)}

	switch {
	case errors.Is(err, domain.ErrValidation):
		apiErr.StatusCode, apiErr.Code = http.StatusBadRequest, accountsdk.ErrorCodeValidation
	case errors.Is(err, domain.ErrNotFound):
		apiErr.StatusCode, apiErr.Code = http.StatusNotFound, accountsdk.ErrorCodeNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		apiErr.StatusCode, apiErr.Code = http.StatusUnauthorized, accountsdk.ErrorCodeUnauthorized
	case errors.Is(err, domain.ErrConflict):
		apiErr.StatusCode, apiErr.Code = http.StatusConflict, accountsdk.ErrorCodeConflict
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)

		apiErr.StatusCode, apiErr.Code = http.StatusInternalServerError, accountsdk.ErrorCodeInternal
		apiErr.Message = err.Error()
		if e.Production {
			apiErr.Message = msgInternalProduction
		}
	}

	apiErr.WriteError(w)
}

// toUser converts the public projection to its wire form.
func toUser(a domain.PublicAccount) accountsdk.User {
	return accountsdk.User{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
