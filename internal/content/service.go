// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brookside/internal/models"
)

// BlogStore is the persistence capability the blog rules require.
// Find methods return (nil, nil) when no row matches; Create and Update
// return ErrSlugTaken on a slug collision.
type BlogStore interface {
	List(ctx context.Context, f Filter) ([]models.Blog, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Create(ctx context.Context, b *models.Blog) (*models.Blog, error)
	Update(ctx context.Context, b *models.Blog) (*models.Blog, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ContentStatus) (*models.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// AnnouncementStore is the persistence capability for announcements.
type AnnouncementStore interface {
	List(ctx context.Context, f Filter) ([]models.Announcement, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error)
	Create(ctx context.Context, a *models.Announcement) (*models.Announcement, error)
	Update(ctx context.Context, a *models.Announcement) (*models.Announcement, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ContentStatus) (*models.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// UpdateStore is the persistence capability for campus updates.
type UpdateStore interface {
	List(ctx context.Context, f Filter) ([]models.CampusUpdate, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CampusUpdate, error)
	Create(ctx context.Context, u *models.CampusUpdate) (*models.CampusUpdate, error)
	Update(ctx context.Context, u *models.CampusUpdate) (*models.CampusUpdate, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ContentStatus) (*models.CampusUpdate, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// PageStore is the persistence capability for static pages.
type PageStore interface {
	List(ctx context.Context, f Filter) ([]models.Page, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Page, error)
	FindBySlug(ctx context.Context, slug string) (*models.Page, error)
	Create(ctx context.Context, p *models.Page) (*models.Page, error)
	Update(ctx context.Context, p *models.Page) (*models.Page, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ContentStatus) (*models.Page, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service applies the visibility, ordering, and lifecycle rules on top
// of the injected stores. It performs no logging — failures surface as
// error values for the HTTP boundary to classify.
type Service struct {
	blogs         BlogStore
	announcements AnnouncementStore
	updates       UpdateStore
	pages         PageStore

	now func() time.Time // injectable clock for expiry tests
}

// NewService creates the content service over the given stores.
func NewService(blogs BlogStore, announcements AnnouncementStore, updates UpdateStore, pages PageStore) *Service {
	return &Service{
		blogs:         blogs,
		announcements: announcements,
		updates:       updates,
		pages:         pages,
		now:           time.Now,
	}
}

// requireAdmin rejects mutations from public viewers. The router also
// guards admin routes; this keeps the contract even when the service is
// called from elsewhere.
func requireAdmin(v Viewer) error {
	if !v.IsAdmin {
		return ErrForbidden
	}
	return nil
}
