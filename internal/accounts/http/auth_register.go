package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
	Errors      ErrorWriter
}

// ServeHTTP handles account registration.
//
//	@Summary		Register a new user
//	@Description	Creates an active account and returns it together with an access and refresh token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.RegisterRequest	true	"Name, email and password"
//	@Success		201		{object}	accountsdk.AuthResponse		"User registered successfully"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Missing fields or validation error"
//	@Failure		409		{object}	accountsdk.ErrorResponse	"User already exists"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Too many authentication attempts"
//	@Router			/api/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		accountsdk.ErrInvalidBody.WriteError(w)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		accountsdk.ErrRegisterFieldsRequired.WriteError(w)
		return
	}
	if err := validateCredentials(req.Email, req.Password); err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	res, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAuthResponse(res))
}

func validateCredentials(email, password string) error {
	if err := domain.ValidateEmailFormat(email); err != nil {
		return err
	}
	if len(password) > cryptox.MaxPasswordBytes {
		return domain.Validation("Password must be at most 72 bytes long")
	}
	return nil
}

func toAuthResponse(res service.AuthResult) accountsdk.AuthResponse {
	return accountsdk.AuthResponse{
		User:         toUser(res.Account),
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	}
}
