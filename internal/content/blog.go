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

// BlogInput carries the writable fields of a blog. Updates replace
// every field; zero-valued optionals clear the stored value.
type BlogInput struct {
	Title      string
	Slug       string
	Body       string
	CoverImage *string
	Campus     models.Campus
	Status     models.ContentStatus
}

func (in *BlogInput) normalize() error {
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

// ListBlogs returns the blogs v may see, newest first.
func (s *Service) ListBlogs(ctx context.Context, v Viewer, q ListQuery) ([]models.Blog, error) {
	f, err := BlogFilter(v, q)
	if err != nil {
		return nil, err
	}
	return s.blogs.List(ctx, f)
}

// GetBlogBySlug returns a single blog by slug. Public viewers only see
// published blogs; a draft slug yields ErrNotFound, not an empty body.
func (s *Service) GetBlogBySlug(ctx context.Context, v Viewer, slug string) (*models.Blog, error) {
	b, err := s.blogs.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if b == nil || (!v.IsAdmin && !b.IsPublished()) {
		return nil, ErrNotFound
	}
	return b, nil
}

// CreateBlog validates and persists a new blog for an administrator.
func (s *Service) CreateBlog(ctx context.Context, v Viewer, in BlogInput) (*models.Blog, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	return s.blogs.Create(ctx, &models.Blog{
		Title:      in.Title,
		Slug:       in.Slug,
		Body:       in.Body,
		CoverImage: in.CoverImage,
		Campus:     in.Campus,
		Status:     in.Status,
	})
}

// UpdateBlog replaces all writable fields of an existing blog.
func (s *Service) UpdateBlog(ctx context.Context, v Viewer, id uuid.UUID, in BlogInput) (*models.Blog, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	b, err := s.blogs.Update(ctx, &models.Blog{
		ID:         id,
		Title:      in.Title,
		Slug:       in.Slug,
		Body:       in.Body,
		CoverImage: in.CoverImage,
		Campus:     in.Campus,
		Status:     in.Status,
	})
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// SetBlogStatus toggles a blog between draft and published. Publishing
// is not one-way: flipping back to draft takes the blog off the public
// site without deleting it.
func (s *Service) SetBlogStatus(ctx context.Context, v Viewer, id uuid.UUID, status models.ContentStatus) (*models.Blog, error) {
	if err := requireAdmin(v); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errInvalid("status")
	}
	b, err := s.blogs.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// DeleteBlog removes a blog. Deleting an id that never existed (or was
// already deleted) reports ErrNotFound so callers can tell the two apart.
func (s *Service) DeleteBlog(ctx context.Context, v Viewer, id uuid.UUID) error {
	if err := requireAdmin(v); err != nil {
		return err
	}
	found, err := s.blogs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
