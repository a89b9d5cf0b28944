package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/osphor/internal/schema"
	"github.com/MKhiriev/osphor/internal/service"
	"github.com/MKhiriev/osphor/internal/store"
	"github.com/MKhiriev/osphor/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"conflict", fmt.Errorf("%w: alice", store.ErrConflict), http.StatusConflict},
		{"unauthorized", service.ErrUnauthorized, http.StatusUnauthorized},
		{"expired or invalid token", fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, utils.ErrTokenExpired), http.StatusUnauthorized},
		{"no authorization header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{"not found", fmt.Errorf("player: %w", store.ErrNotFound), http.StatusNotFound},
		{"invalid input", fmt.Errorf("%w: empty username", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"invalid input wrapping missing header", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, ErrEmptyAuthorizationHeader), http.StatusBadRequest},
		{"malformed bearer", utils.ErrInvalidBearer, http.StatusBadRequest},
		{"invalid json", ErrInvalidJSON, http.StatusBadRequest},
		{"store exhausted", fmt.Errorf("%w after 3 attempt(s): io", store.ErrStore), http.StatusInternalServerError},
		{"serialization", store.ErrSerialization, http.StatusInternalServerError},
		{"schema", schema.ErrSchema, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), fmt.Errorf("%w: alice", store.ErrConflict))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")

	rec = httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), fmt.Errorf("%w: secret detail", schema.ErrSchema))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError)+"\n", rec.Body.String())
}
