// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a long-form post published on the public site. Blogs are
// looked up publicly by slug, which is unique across all blogs.
type Blog struct {
	ID         uuid.UUID     `json:"id"`
	Title      string        `json:"title"`
	Slug       string        `json:"slug"`
	Body       string        `json:"body"`
	CoverImage *string       `json:"coverImage,omitempty"`
	Campus     Campus        `json:"campus"`
	Status     ContentStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// IsPublished returns true if the blog is in published status.
func (b *Blog) IsPublished() bool {
	return b.Status == ContentStatusPublished
}

// Announcement is a short notice shown on the public site until it
// expires. A nil ExpiresAt means the announcement never expires;
// expiry hides it from the public without deleting it.
type Announcement struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	Campus    Campus        `json:"campus"`
	Status    ContentStatus `json:"status"`
	ExpiresAt *time.Time    `json:"expiresAt,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ActiveAt reports whether the announcement has not expired at t.
func (a *Announcement) ActiveAt(t time.Time) bool {
	return a.ExpiresAt == nil || !a.ExpiresAt.Before(t)
}

// UpdateType categorizes a campus update on the campus-specific page.
type UpdateType string

const (
	UpdateTypeNews         UpdateType = "news"
	UpdateTypeCurriculum   UpdateType = "curriculum"
	UpdateTypeAnnouncement UpdateType = "announcement"
	UpdateTypeNotice       UpdateType = "notice"
)

// Valid reports whether t is a known update type.
func (t UpdateType) Valid() bool {
	switch t {
	case UpdateTypeNews, UpdateTypeCurriculum, UpdateTypeAnnouncement, UpdateTypeNotice:
		return true
	}
	return false
}

// CampusUpdate is a dated item on a campus page feed. Pinned updates
// sort before unpinned ones regardless of age.
type CampusUpdate struct {
	ID        uuid.UUID     `json:"id"`
	Campus    Campus        `json:"campus"`
	Type      UpdateType    `json:"type"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	IsPinned  bool          `json:"isPinned"`
	Status    ContentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Page is static site content keyed by slug. Pages are global — they
// carry no campus scope.
type Page struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Slug      string        `json:"slug"`
	Body      string        `json:"body"`
	Status    ContentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
