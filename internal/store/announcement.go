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

const announcementColumns = "id, title, body, campus, status, expires_at, created_at, updated_at"

// AnnouncementStore handles all announcement database operations.
type AnnouncementStore struct {
	db *sql.DB
}

// NewAnnouncementStore creates a new AnnouncementStore with the given
// database connection.
func NewAnnouncementStore(db *sql.DB) *AnnouncementStore {
	return &AnnouncementStore{db: db}
}

func scanAnnouncement(row interface{ Scan(...any) error }) (*models.Announcement, error) {
	a := &models.Announcement{}
	err := row.Scan(&a.ID, &a.Title, &a.Body, &a.Campus, &a.Status,
		&a.ExpiresAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns the announcements matching the filter, newest first.
// Expiry filtering happens in SQL via the filter's ActiveAt cutoff.
func (s *AnnouncementStore) List(ctx context.Context, f content.Filter) ([]models.Announcement, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf("SELECT %s FROM announcements %s %s", announcementColumns, where, orderBy(f.Order))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var items []models.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// FindByID retrieves an announcement by its UUID. Returns nil if not found.
func (s *AnnouncementStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	a, err := scanAnnouncement(s.db.QueryRowContext(ctx,
		"SELECT "+announcementColumns+" FROM announcements WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find announcement by id: %w", err)
	}
	return a, nil
}

// Create inserts a new announcement and returns it with the generated ID.
func (s *AnnouncementStore) Create(ctx context.Context, a *models.Announcement) (*models.Announcement, error) {
	created, err := scanAnnouncement(s.db.QueryRowContext(ctx, `
		INSERT INTO announcements (title, body, campus, status, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+announcementColumns,
		a.Title, a.Body, a.Campus, a.Status, a.ExpiresAt))
	if err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return created, nil
}

// Update replaces all writable fields of an existing announcement.
// Returns nil if the id does not exist.
func (s *AnnouncementStore) Update(ctx context.Context, a *models.Announcement) (*models.Announcement, error) {
	updated, err := scanAnnouncement(s.db.QueryRowContext(ctx, `
		UPDATE announcements SET
			title = $1, body = $2, campus = $3, status = $4,
			expires_at = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+announcementColumns,
		a.Title, a.Body, a.Campus, a.Status, a.ExpiresAt, a.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	return updated, nil
}

// SetStatus flips the publishing state only. Returns nil if the id does
// not exist.
func (s *AnnouncementStore) SetStatus(ctx context.Context, id uuid.UUID, status models.ContentStatus) (*models.Announcement, error) {
	a, err := scanAnnouncement(s.db.QueryRowContext(ctx, `
		UPDATE announcements SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+announcementColumns,
		status, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set announcement status: %w", err)
	}
	return a, nil
}

// Delete removes an announcement by ID, reporting whether a row was
// deleted. Expired announcements stay in the table until deleted here.
func (s *AnnouncementStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM announcements WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete announcement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete announcement: %w", err)
	}
	return n > 0, nil
}
