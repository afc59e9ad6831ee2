package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	Errors      ErrorWriter
}

// ServeHTTP handles credential login.
//
//	@Summary		Login user
//	@Description	Exchanges an email and password for an access and refresh token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest		true	"Email and password"
//	@Success		200		{object}	accountsdk.AuthResponse		"Login successful"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Missing fields"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Invalid credentials or inactive account"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"User not found"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Too many authentication attempts"
//	@Router			/api/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		accountsdk.ErrInvalidBody.WriteError(w)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		accountsdk.ErrLoginFieldsRequired.WriteError(w)
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAuthResponse(res))
}
