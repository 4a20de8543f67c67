// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

// Campus identifies which school location a record belongs to. The
// sentinel CampusAll marks content that is shown on every campus.
type Campus string

const (
	CampusWestlands Campus = "westlands"
	CampusRedhill   Campus = "redhill"
	CampusAll       Campus = "all"
)

// Valid reports whether c is one of the three campus enum members.
func (c Campus) Valid() bool {
	switch c {
	case CampusWestlands, CampusRedhill, CampusAll:
		return true
	}
	return false
}

// IsPhysical reports whether c names an actual location as opposed to
// the "all" sentinel. Lead records (inquiries, contacts, payments) must
// reference a physical campus.
func (c Campus) IsPhysical() bool {
	return c == CampusWestlands || c == CampusRedhill
}

// ContentStatus represents the publishing state of a content item.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// Valid reports whether s is a known publishing state.
func (s ContentStatus) Valid() bool {
	return s == ContentStatusDraft || s == ContentStatusPublished
}
