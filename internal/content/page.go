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

// PageInput carries the writable fields of a static page.
type PageInput struct {
	Title  string
	Slug   string
	Body   string
	Status models.ContentStatus
}

func (in *PageInput) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return errRequired("title")
	}
	if strings.TrimSpace(in.Body) == "" {
		return errRequired("body")
	}
	if in.Slug == "" {
		return errRequired("slug")
	}
	if in.Status == "" {
		in.Status = models.ContentStatusDraft
	}
	if !in.Status.Valid() {
		return errInvalid("status")
	}
	return nil
}

// ListPages returns pages for the admin panel, newest first.
func (s *Service) ListPages(ctx context.Context, v Viewer, q ListQuery) ([]models.Page, error) {
	f, err := PageFilter(v, q)
	if err != nil {
		return nil, err
	}
	return s.pages.List(ctx, f)
}

// GetPageBySlug returns a single page by slug. A missing or unpublished
// slug yields ErrNotFound for public viewers.
func (s *Service) GetPageBySlug(ctx context.Context, v Viewer, slug string) (*models.Page, error) {
	p, err := s.pages.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil || (!v.IsAdmin && p.Status != models.ContentStatusPublished) {
		return nil, ErrNotFound
	}
	return p, nil
}

// CreatePage validates and persists a new page.
func (s *Service) CreatePage(ctx context.Context, v Viewer, in PageInput) (*models.Page, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	return s.pages.Create(ctx, &models.Page{
		Title:  in.Title,
		Slug:   in.Slug,
		Body:   in.Body,
		Status: in.Status,
	})
}

// UpdatePage replaces all writable fields of a page.
func (s *Service) UpdatePage(ctx context.Context, v Viewer, id uuid.UUID, in PageInput) (*models.Page, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	p, err := s.pages.Update(ctx, &models.Page{
		ID:     id,
		Title:  in.Title,
		Slug:   in.Slug,
		Body:   in.Body,
		Status: in.Status,
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// SetPageStatus toggles a page between draft and published.
func (s *Service) SetPageStatus(ctx context.Context, v Viewer, id uuid.UUID, status models.ContentStatus) (*models.Page, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errInvalid("status")
	}
	p, err := s.pages.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// DeletePage removes a page.
func (s *Service) DeletePage(ctx context.Context, v Viewer, id uuid.UUID) error {
	if err := requireAdmin(v); err != nil {
		return err
	}
	found, err := s.pages.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
