package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the session subject in the
// request context under [utils.UsernameCtxKey] before delegating to next.
//
// Missing headers and invalid or expired tokens are rejected with 401; a
// header that is not of the form "Bearer <token>" is rejected with 400.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("session token rejected")
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Claim.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
