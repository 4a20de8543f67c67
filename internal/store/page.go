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

const pageColumns = "id, title, slug, body, status, created_at, updated_at"

// PageStore handles all page database operations.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

func scanPage(row interface{ Scan(...any) error }) (*models.Page, error) {
	p := &models.Page{}
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns the pages matching the filter. Pages carry no campus,
// so only the status clause applies.
func (s *PageStore) List(ctx context.Context, f content.Filter) ([]models.Page, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf("SELECT %s FROM pages %s %s", pageColumns, where, orderBy(f.Order))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var items []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a page by its UUID. Returns nil if not found.
func (s *PageStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRowContext(ctx,
		"SELECT "+pageColumns+" FROM pages WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a page by slug regardless of status. Returns nil
// if not found.
func (s *PageStore) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRowContext(ctx,
		"SELECT "+pageColumns+" FROM pages WHERE slug = $1", slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new page and returns it with the generated ID.
func (s *PageStore) Create(ctx context.Context, p *models.Page) (*models.Page, error) {
	created, err := scanPage(s.db.QueryRowContext(ctx, `
		INSERT INTO pages (title, slug, body, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+pageColumns,
		p.Title, p.Slug, p.Body, p.Status))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, content.ErrSlugTaken
		}
		return nil, fmt.Errorf("create page: %w", err)
	}
	return created, nil
}

// Update replaces all writable fields of an existing page. Returns nil
// if the id does not exist.
func (s *PageStore) Update(ctx context.Context, p *models.Page) (*models.Page, error) {
	updated, err := scanPage(s.db.QueryRowContext(ctx, `
		UPDATE pages SET
			title = $1, slug = $2, body = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING `+pageColumns,
		p.Title, p.Slug, p.Body, p.Status, p.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, content.ErrSlugTaken
		}
		return nil, fmt.Errorf("update page: %w", err)
	}
	return updated, nil
}

// SetStatus flips the publishing state only. Returns nil if the id does
// not exist.
func (s *PageStore) SetStatus(ctx context.Context, id uuid.UUID, status models.ContentStatus) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRowContext(ctx, `
		UPDATE pages SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+pageColumns,
		status, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set page status: %w", err)
	}
	return p, nil
}

// Delete removes a page by ID, reporting whether a row was deleted.
func (s *PageStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete page: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete page: %w", err)
	}
	return n > 0, nil
}
