package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type UserHandler struct {
	AccountService *service.AccountService
	Errors         ErrorWriter
}

// ServeHTTP returns a single user by id.
//
//	@Summary		Get user by id
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"User id (ULID)"
//	@Success		200	{object}	accountsdk.User				"User"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	accountsdk.ErrorResponse	"User not found"
//	@Router			/api/v1/users/{id} [get].
func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	account, err := h.AccountService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(account))
}
