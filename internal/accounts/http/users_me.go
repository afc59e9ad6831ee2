package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

var errMissingIdentity = &accountsdk.APIError{
	StatusCode: http.StatusUnauthorized,
	Code:       accountsdk.ErrorCodeUnauthorized,
}

type MeHandler struct {
	AccountService *service.AccountService
	Errors         ErrorWriter
}

// HandleGet returns the caller's profile.
//
//	@Summary		Get current user
//	@Description	Returns the profile of the account the access token was issued to.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.User				"Current user"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	accountsdk.ErrorResponse	"User not found"
//	@Router			/api/v1/users/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		errMissingIdentity.WriteError(w)
		return
	}

	account, err := h.AccountService.GetByID(r.Context(), id.AccountID)
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(account))
}

// HandleUpdate changes the caller's name and/or email.
//
//	@Summary		Update current user
//	@Description	Updates the name and/or email of the caller. Omitted or empty fields are left unchanged.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	accountsdk.User					"Updated user"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"Validation error"
//	@Failure		401		{object}	accountsdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		404		{object}	accountsdk.ErrorResponse		"User not found"
//	@Failure		409		{object}	accountsdk.ErrorResponse		"Email already in use"
//	@Router			/api/v1/users/me [put].
func (h *MeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		errMissingIdentity.WriteError(w)
		return
	}

	var req accountsdk.UpdateUserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		accountsdk.ErrInvalidBody.WriteError(w)
		return
	}

	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		if err := domain.ValidateEmailFormat(*req.Email); err != nil {
			h.Errors.Write(w, r, err)
			return
		}
	}

	account, err := h.AccountService.Update(r.Context(), id.AccountID, service.UpdateInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("profile updated", "account_id", account.ID)
	httpx.WriteJSON(w, http.StatusOK, toUser(account))
}
