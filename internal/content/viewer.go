// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content implements the campus-scoped visibility, ordering,
// and publishing rules for all site content. It decides what a given
// viewer may see and in what order, and guards every mutation behind
// an administrator check. Stores are injected as narrow interfaces so
// the rules can be exercised without a database.
package content

import "brookside/internal/models"

// Viewer is the identity and scope a request is evaluated under.
// Administrators see every item; public viewers see published content
// scoped to their campus. For admins the campus value is an optional
// extra narrowing filter, not a security boundary.
type Viewer struct {
	IsAdmin bool
	Campus  *models.Campus
}

// Admin returns an administrator viewer with no campus narrowing.
func Admin() Viewer {
	return Viewer{IsAdmin: true}
}

// Public returns a public viewer scoped to the given campus. A nil
// campus is allowed for blogs and announcements (no campus filter) but
// rejected for campus updates.
func Public(campus *models.Campus) Viewer {
	return Viewer{Campus: campus}
}
