// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pgtools/pg-config-view/internal/logger"
)

// getConfig writes the full configuration table as a JSON array, in the
// fixed declared order.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entries, err := h.services.ConfigService.GetConfig(r.Context())
	if err != nil {
		log.Err(err).Msg("error getting config table")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		log.Err(err).Msg("error encoding config table")
	}
}

// getConfigValue writes a single entry looked up by key name.
func (h *Handler) getConfigValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")
	entry, err := h.services.ConfigService.GetValue(r.Context(), name)
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("config entry lookup failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entry); err != nil {
		log.Err(err).Msg("error encoding config entry")
	}
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFromError(err))
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
