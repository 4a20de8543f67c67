// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"brookside/internal/dashboard"
)

// Dashboard exposes the admin summary endpoint.
type Dashboard struct {
	svc *dashboard.Service
}

// NewDashboard creates a new Dashboard handler group.
func NewDashboard(svc *dashboard.Service) *Dashboard {
	return &Dashboard{svc: svc}
}

// Summary returns the aggregated admin dashboard counters.
func (h *Dashboard) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context(), adminViewer(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, summary)
}
