// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders adds security-related HTTP headers to every response.
// The API serves JSON only, so the set is tuned for that: no response
// may be sniffed into a renderable type, framed, or stored by a shared
// cache (admin responses carry viewer-dependent data).
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Prevent the browser from MIME-sniffing the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// JSON responses have no business inside a frame.
		h.Set("X-Frame-Options", "DENY")

		// API URLs carry slugs and ids; never leak them on.
		h.Set("Referrer-Policy", "no-referrer")

		// Auth-dependent payloads must not be cached by intermediaries.
		h.Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}
