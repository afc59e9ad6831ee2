package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// AccessVerifier validates access tokens.
type AccessVerifier interface {
	VerifyAccess(token string) (jwtx.Claims, error)
}

// Authenticate rejects requests without a valid bearer access token and
// attaches the caller Identity for downstream handlers.
func Authenticate(v AccessVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			id, ok := func() (id Identity, ok bool) {
				defer func() {
					if rec := recover(); rec != nil {
						log.Error("authentication panic", "panic", rec)
						WriteJSON(w, http.StatusInternalServerError, map[string]string{
							"error": "internal server error",
						})
						ok = false
					}
				}()

				authz := r.Header.Get("Authorization")
				if authz == "" {
					writeBearerError(w, "no token provided")
					return Identity{}, false
				}

				parts := strings.Split(authz, " ")
				if len(parts) != 2 {
					writeBearerError(w, "token error")
					return Identity{}, false
				}
				if !strings.EqualFold(parts[0], "Bearer") {
					writeBearerError(w, "token malformatted")
					return Identity{}, false
				}

				claims, err := v.VerifyAccess(parts[1])
				if err != nil {
					log.Warn("jwt verify failed", "err", err)
					writeBearerError(w, "invalid token")
					return Identity{}, false
				}

				return Identity{AccountID: claims.Subject, Email: claims.Email}, true
			}()
			if !ok {
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, id)))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": msg})
}
