// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/tomtom215/rfidrelay/internal/logging"
	"github.com/tomtom215/rfidrelay/internal/metrics"
)

const bearerPrefix = "Bearer "

// BearerAuth rejects requests whose Authorization header does not carry
// "Bearer <secret>". An empty secret disables the check entirely.
//
// The comparison runs in constant time with respect to the secret's content.
func BearerAuth(secret string) func(http.HandlerFunc) http.HandlerFunc {
	expected := []byte(secret)

	return func(next http.HandlerFunc) http.HandlerFunc {
		if secret == "" {
			return next
		}

		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok || subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
				metrics.RecordAuthFailure()
				logging.Ctx(r.Context()).Warn().
					Str("remote_addr", logging.SanitizeValue(r.RemoteAddr)).
					Str("path", r.URL.Path).
					Bool("header_present", r.Header.Get("Authorization") != "").
					Msg("Rejected unauthenticated request")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			next(w, r)
		}
	}
}

// bearerToken extracts the credential from an Authorization header value.
func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	return header[len(bearerPrefix):], true
}
