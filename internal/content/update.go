// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"brookside/internal/models"
)

// UpdateInput carries the writable fields of a campus update. Campus is
// required and, unlike blogs, has no "all" default — though "all" is an
// accepted value meaning the update shows on both campuses.
type UpdateInput struct {
	Campus   models.Campus
	Type     models.UpdateType
	Title    string
	Body     string
	IsPinned bool
	Status   models.ContentStatus
}

func (in *UpdateInput) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return errRequired("title")
	}
	if strings.TrimSpace(in.Body) == "" {
		return errRequired("body")
	}
	if in.Campus == "" {
		return errRequired("campus")
	}
	if !in.Campus.Valid() {
		return errInvalid("campus")
	}
	if in.Type == "" {
		return errRequired("type")
	}
	if !in.Type.Valid() {
		return errInvalid("type")
	}
	if in.Status == "" {
		in.Status = models.ContentStatusDraft
	}
	if !in.Status.Valid() {
		return errInvalid("status")
	}
	return nil
}

// ListUpdates returns the campus updates v may see, pinned items first.
// Public viewers must supply a campus; the request is rejected before
// any query runs when it is missing.
func (s *Service) ListUpdates(ctx context.Context, v Viewer, q ListQuery) ([]models.CampusUpdate, error) {
	f, err := UpdateFilter(v, q)
	if err != nil {
		return nil, err
	}
	return s.updates.List(ctx, f)
}

// CreateUpdate validates and persists a new campus update.
func (s *Service) CreateUpdate(ctx context.Context, v Viewer, in UpdateInput) (*models.CampusUpdate, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	return s.updates.Create(ctx, &models.CampusUpdate{
		Campus:   in.Campus,
		Type:     in.Type,
		Title:    in.Title,
		Body:     in.Body,
		IsPinned: in.IsPinned,
		Status:   in.Status,
	})
}

// UpdateUpdate replaces all writable fields of a campus update.
func (s *Service) UpdateUpdate(ctx context.Context, v Viewer, id uuid.UUID, in UpdateInput) (*models.CampusUpdate, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	u, err := s.updates.Update(ctx, &models.CampusUpdate{
		ID:       id,
		Campus:   in.Campus,
		Type:     in.Type,
		Title:    in.Title,
		Body:     in.Body,
		IsPinned: in.IsPinned,
		Status:   in.Status,
	})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// SetUpdateStatus toggles a campus update between draft and published.
func (s *Service) SetUpdateStatus(ctx context.Context, v Viewer, id uuid.UUID, status models.ContentStatus) (*models.CampusUpdate, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errInvalid("status")
	}
	u, err := s.updates.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// DeleteUpdate removes a campus update.
func (s *Service) DeleteUpdate(ctx context.Context, v Viewer, id uuid.UUID) error {
	if err := requireAdmin(v); err != nil {
		return err
	}
	found, err := s.updates.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
