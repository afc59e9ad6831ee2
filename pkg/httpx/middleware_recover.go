package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// Recover turns handler panics into a 500 JSON response.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slogx.FromContext(r.Context()).Error("panic recovered",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteJSON(w, http.StatusInternalServerError, map[string]string{
					"error":   "Internal Server Error",
					"message": "An error occurred",
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
