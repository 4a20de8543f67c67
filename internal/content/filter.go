// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"time"

	"brookside/internal/models"
)

// Filter is the query predicate produced by the visibility rules.
// The SQL stores and the in-memory fakes used in tests interpret the
// same structure, so visibility is decided in exactly one place.
// Nil fields mean "no constraint".
type Filter struct {
	Status *models.ContentStatus
	Campus *models.Campus
	// IncludeAll widens a campus constraint to also match items scoped
	// to every campus. Public queries set it; admin narrowing does not.
	IncludeAll bool
	Type       *models.UpdateType
	// ActiveAt excludes items whose expiry is strictly before this
	// instant. Items without an expiry always match.
	ActiveAt *time.Time
	Order    Order
}

// MatchStatus reports whether an item with status s passes the filter.
func (f Filter) MatchStatus(s models.ContentStatus) bool {
	return f.Status == nil || s == *f.Status
}

// MatchCampus reports whether an item scoped to campus c passes the filter.
func (f Filter) MatchCampus(c models.Campus) bool {
	if f.Campus == nil {
		return true
	}
	if c == *f.Campus {
		return true
	}
	return f.IncludeAll && c == models.CampusAll
}

// MatchType reports whether an item of update type t passes the filter.
func (f Filter) MatchType(t models.UpdateType) bool {
	return f.Type == nil || t == *f.Type
}

// MatchExpiry reports whether an item with the given expiry passes the
// filter. A nil expiresAt means the item never expires.
func (f Filter) MatchExpiry(expiresAt *time.Time) bool {
	if f.ActiveAt == nil || expiresAt == nil {
		return true
	}
	return !expiresAt.Before(*f.ActiveAt)
}
