package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/service"
	"github.com/MKhiriev/osphor/internal/utils"
	"github.com/MKhiriev/osphor/models"
	"github.com/go-chi/chi/v5"
)

// register creates an account and its player record. The body is the
// player submission; the secret travels as "Authorization: Bearer <secret>".
// Data values are only checked against the catalog, never by the decoder.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	secret, err := bearerFromRequest(r)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	var player models.PlayerSubmission
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.AuthService.Register(ctx, models.RegisterRequest{
		Player: player,
		Secret: []byte(secret),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", created.Username).Msg("player registered")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.services.PlayerService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, players, http.StatusOK)
}

func (h *Handler) getPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := h.services.PlayerService.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, player, http.StatusOK)
}

// me returns the player owning the session token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	player, err := h.services.PlayerService.Get(r.Context(), username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, player, http.StatusOK)
}

func bearerFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	return utils.ParseBearerToken(header)
}
