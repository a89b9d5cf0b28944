package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/osphor/internal/service"
	"github.com/MKhiriev/osphor/internal/utils"
	"github.com/MKhiriev/osphor/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case "good":
				return stubToken("good", "alice"), nil
			case "expired":
				return models.Token{}, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, utils.ErrTokenExpired)
			default:
				return models.Token{}, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, utils.ErrTokenInvalid)
			}
		},
	}

	tests := []struct {
		name         string
		header       string
		wantStatus   int
		wantNext     bool
		wantUsername string
	}{
		{"valid token", "Bearer good", http.StatusOK, true, "alice"},
		{"lowercase scheme", "bearer good", http.StatusOK, true, "alice"},
		{"expired token", "Bearer expired", http.StatusUnauthorized, false, ""},
		{"forged token", "Bearer forged", http.StatusUnauthorized, false, ""},
		{"no header", "", http.StatusUnauthorized, false, ""},
		{"no scheme", "good", http.StatusBadRequest, false, ""},
		{"empty token", "Bearer ", http.StatusBadRequest, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(auth)

			var nextCalled bool
			var username string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				username, _ = utils.GetUsernameFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(t, h.auth(next), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			assert.Equal(t, tt.wantUsername, username)
		})
	}
}
