// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer authentication.
//
// On success the owner of the request is stored in the context under
// [utils.OwnerCtxKey]. The owner is the JWT subject of the token, or the raw
// token when it is not a JWT or has no subject.
//
// Every rejection is answered with 401 and the "Unauthorized" message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		owner, err := h.authenticate(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("request rejected")
			writeErrors(w, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithOwner(r.Context(), owner)))
	})
}

func (h *Handler) authenticate(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	if h.token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
		return "", ErrTokenNotAccepted
	}

	claims, err := utils.ParseClaimsUnverified(token)
	if err != nil {
		// opaque token
		return token, nil
	}
	if !claims.ExpiresAt.IsZero() && !h.now().Before(claims.ExpiresAt) {
		return "", ErrTokenIsExpired
	}
	if claims.Subject == "" {
		return token, nil
	}

	return claims.Subject, nil
}
