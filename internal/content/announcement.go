// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"brookside/internal/models"
)

// AnnouncementInput carries the writable fields of an announcement.
// A nil ExpiresAt means the announcement never expires.
type AnnouncementInput struct {
	Title     string
	Body      string
	Campus    models.Campus
	Status    models.ContentStatus
	ExpiresAt *time.Time
}

func (in *AnnouncementInput) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return errRequired("title")
	}
	if strings.TrimSpace(in.Body) == "" {
		return errRequired("body")
	}
	if in.Campus == "" {
		in.Campus = models.CampusAll
	}
	if !in.Campus.Valid() {
		return errInvalid("campus")
	}
	if in.Status == "" {
		in.Status = models.ContentStatusDraft
	}
	if !in.Status.Valid() {
		return errInvalid("status")
	}
	return nil
}

// ListAnnouncements returns the announcements v may see, newest first.
// Expiry is evaluated against the service clock at call time; expired
// items stay in the store and remain visible to administrators.
func (s *Service) ListAnnouncements(ctx context.Context, v Viewer, q ListQuery) ([]models.Announcement, error) {
	f, err := AnnouncementFilter(v, s.now(), q)
	if err != nil {
		return nil, err
	}
	return s.announcements.List(ctx, f)
}

// CreateAnnouncement validates and persists a new announcement.
func (s *Service) CreateAnnouncement(ctx context.Context, v Viewer, in AnnouncementInput) (*models.Announcement, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	return s.announcements.Create(ctx, &models.Announcement{
		Title:     in.Title,
		Body:      in.Body,
		Campus:    in.Campus,
		Status:    in.Status,
		ExpiresAt: in.ExpiresAt,
	})
}

// UpdateAnnouncement replaces all writable fields of an announcement.
func (s *Service) UpdateAnnouncement(ctx context.Context, v Viewer, id uuid.UUID, in AnnouncementInput) (*models.Announcement, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	a, err := s.announcements.Update(ctx, &models.Announcement{
		ID:        id,
		Title:     in.Title,
		Body:      in.Body,
		Campus:    in.Campus,
		Status:    in.Status,
		ExpiresAt: in.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// SetAnnouncementStatus toggles an announcement between draft and published.
func (s *Service) SetAnnouncementStatus(ctx context.Context, v Viewer, id uuid.UUID, status models.ContentStatus) (*models.Announcement, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errInvalid("status")
	}
	a, err := s.announcements.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// DeleteAnnouncement removes an announcement. Expiry and deletion are
// independent: expired announcements still exist until deleted.
func (s *Service) DeleteAnnouncement(ctx context.Context, v Viewer, id uuid.UUID) error {
	if err := requireAdmin(v); err != nil {
		return err
	}
	found, err := s.announcements.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
