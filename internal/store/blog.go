// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brookside/internal/content"
	"brookside/internal/models"
)

const blogColumns = "id, title, slug, body, cover_image, campus, status, created_at, updated_at"

// BlogStore handles all blog database operations.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore creates a new BlogStore with the given database connection.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

func scanBlog(row interface{ Scan(...any) error }) (*models.Blog, error) {
	b := &models.Blog{}
	err := row.Scan(&b.ID, &b.Title, &b.Slug, &b.Body, &b.CoverImage,
		&b.Campus, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns the blogs matching the filter in the filter's order.
func (s *BlogStore) List(ctx context.Context, f content.Filter) ([]models.Blog, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf("SELECT %s FROM blogs %s %s", blogColumns, where, orderBy(f.Order))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	var items []models.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// FindByID retrieves a blog by its UUID. Returns nil if not found.
func (s *BlogStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	b, err := scanBlog(s.db.QueryRowContext(ctx,
		"SELECT "+blogColumns+" FROM blogs WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by id: %w", err)
	}
	return b, nil
}

// FindBySlug retrieves a blog by its slug regardless of status.
// Returns nil if not found; the caller decides whether the viewer may
// see an unpublished blog.
func (s *BlogStore) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	b, err := scanBlog(s.db.QueryRowContext(ctx,
		"SELECT "+blogColumns+" FROM blogs WHERE slug = $1", slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by slug: %w", err)
	}
	return b, nil
}

// Create inserts a new blog and returns it with the generated ID.
// A slug collision yields content.ErrSlugTaken.
func (s *BlogStore) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	created, err := scanBlog(s.db.QueryRowContext(ctx, `
		INSERT INTO blogs (title, slug, body, cover_image, campus, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+blogColumns,
		b.Title, b.Slug, b.Body, b.CoverImage, b.Campus, b.Status))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, content.ErrSlugTaken
		}
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return created, nil
}

// Update replaces all writable fields of an existing blog while
// preserving created_at. Returns nil if the id does not exist.
func (s *BlogStore) Update(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	updated, err := scanBlog(s.db.QueryRowContext(ctx, `
		UPDATE blogs SET
			title = $1, slug = $2, body = $3, cover_image = $4,
			campus = $5, status = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+blogColumns,
		b.Title, b.Slug, b.Body, b.CoverImage, b.Campus, b.Status, b.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, content.ErrSlugTaken
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return updated, nil
}

// SetStatus flips the publishing state only, leaving created_at and the
// content untouched. Returns nil if the id does not exist.
func (s *BlogStore) SetStatus(ctx context.Context, id uuid.UUID, status models.ContentStatus) (*models.Blog, error) {
	b, err := scanBlog(s.db.QueryRowContext(ctx, `
		UPDATE blogs SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+blogColumns,
		status, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set blog status: %w", err)
	}
	return b, nil
}

// Delete removes a blog by ID, reporting whether a row was deleted.
func (s *BlogStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM blogs WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete blog: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete blog: %w", err)
	}
	return n > 0, nil
}

// Count returns the total number of blogs in any status.
func (s *BlogStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM blogs").Scan(&count); err != nil {
		return 0, fmt.Errorf("count blogs: %w", err)
	}
	return count, nil
}
