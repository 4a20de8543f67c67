// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Brookside API.
// Handlers are grouped by concern (auth, content, leads, dashboard,
// uploads) and receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"brookside/internal/content"
	"brookside/internal/dashboard"
)

// envelope is the JSON shape of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// respond writes a success envelope with the given payload.
func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// respondMessage writes a success envelope carrying only a message.
func respondMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: true, Message: message})
}

// respondFail writes a failure envelope with the given message.
func respondFail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Message: message})
}

// respondError maps domain errors onto HTTP statuses and writes a
// failure envelope. Unknown errors become an opaque 500; their detail
// goes to the log, not the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *content.ValidationError
	var ae *dashboard.AggregationError

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.As(err, &ve):
		status = http.StatusBadRequest
		message = ve.Error()
	case errors.Is(err, content.ErrForbidden):
		status = http.StatusForbidden
		message = "forbidden"
	case errors.Is(err, content.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.Is(err, content.ErrSlugTaken):
		status = http.StatusConflict
		message = "slug already in use"
	case errors.As(err, &ae):
		slog.Error("aggregation failed", "error", err, "path", r.URL.Path)
	default:
		slog.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Message: message})
}

// decode reads a JSON request body into dst. Unknown fields are
// tolerated; malformed JSON is a validation error.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &content.ValidationError{Field: "body", Msg: "must be valid JSON"}
	}
	return nil
}
