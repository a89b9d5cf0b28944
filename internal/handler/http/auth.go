// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/service"
	"github.com/MKhiriev/osphor/internal/utils"
	"github.com/MKhiriev/osphor/models"
)

// login verifies the secret from the bearer header against the account named
// in the body. The session token is returned both as the plain-text body and
// in the "Authorization" response header. A missing or malformed credential
// header is a failed login and answers 401.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	secret, err := bearerFromRequest(r)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", service.ErrUnauthorized, err))
		return
	}

	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, models.LoginRequest{
		Account: models.Account{Username: account.Username},
		Secret:  []byte(secret),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", account.Username).Msg("player logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteText(w, token.SignedString, http.StatusOK)
}

// validate always answers 200. A token that is missing, malformed, forged or
// expired yields {"valid":false}.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tokenString, err := bearerFromRequest(r)
	if err != nil {
		log.Debug().Err(err).Msg("no session token to validate")
		utils.WriteJSON(w, models.ValidateResponse{Valid: false}, http.StatusOK)
		return
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		utils.WriteJSON(w, models.ValidateResponse{Valid: false}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.ValidateResponse{Valid: true, Claim: &token.Claim}, http.StatusOK)
}
