package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type RefreshHandler struct {
	AuthService *service.AuthService
	Errors      ErrorWriter
}

// ServeHTTP exchanges a refresh token for a new token pair.
//
//	@Summary		Refresh tokens
//	@Description	Verifies a refresh token and issues a fresh access and refresh token for the same account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	accountsdk.AuthResponse		"New token pair"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Missing refresh token"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Invalid refresh token or inactive account"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Too many authentication attempts"
//	@Router			/api/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.RefreshRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		accountsdk.ErrInvalidBody.WriteError(w)
		return
	}

	token := strings.TrimSpace(req.RefreshToken)
	if token == "" {
		accountsdk.ErrRefreshTokenRequired.WriteError(w)
		return
	}

	res, err := h.AuthService.Refresh(r.Context(), token)
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAuthResponse(res))
}
