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

const updateColumns = "id, campus, type, title, body, is_pinned, status, created_at, updated_at"

// UpdateStore handles all campus-update database operations.
type UpdateStore struct {
	db *sql.DB
}

// NewUpdateStore creates a new UpdateStore with the given database connection.
func NewUpdateStore(db *sql.DB) *UpdateStore {
	return &UpdateStore{db: db}
}

func scanUpdate(row interface{ Scan(...any) error }) (*models.CampusUpdate, error) {
	u := &models.CampusUpdate{}
	err := row.Scan(&u.ID, &u.Campus, &u.Type, &u.Title, &u.Body,
		&u.IsPinned, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List returns the campus updates matching the filter. With
// OrderPinnedFirst, pinned rows sort before unpinned regardless of age.
func (s *UpdateStore) List(ctx context.Context, f content.Filter) ([]models.CampusUpdate, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf("SELECT %s FROM campus_updates %s %s", updateColumns, where, orderBy(f.Order))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campus updates: %w", err)
	}
	defer rows.Close()

	var items []models.CampusUpdate
	for rows.Next() {
		u, err := scanUpdate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campus update: %w", err)
		}
		items = append(items, *u)
	}
	return items, rows.Err()
}

// FindByID retrieves a campus update by its UUID. Returns nil if not found.
func (s *UpdateStore) FindByID(ctx context.Context, id uuid.UUID) (*models.CampusUpdate, error) {
	u, err := scanUpdate(s.db.QueryRowContext(ctx,
		"SELECT "+updateColumns+" FROM campus_updates WHERE id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find campus update by id: %w", err)
	}
	return u, nil
}

// Create inserts a new campus update and returns it with the generated ID.
func (s *UpdateStore) Create(ctx context.Context, u *models.CampusUpdate) (*models.CampusUpdate, error) {
	created, err := scanUpdate(s.db.QueryRowContext(ctx, `
		INSERT INTO campus_updates (campus, type, title, body, is_pinned, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+updateColumns,
		u.Campus, u.Type, u.Title, u.Body, u.IsPinned, u.Status))
	if err != nil {
		return nil, fmt.Errorf("create campus update: %w", err)
	}
	return created, nil
}

// Update replaces all writable fields of an existing campus update.
// Returns nil if the id does not exist.
func (s *UpdateStore) Update(ctx context.Context, u *models.CampusUpdate) (*models.CampusUpdate, error) {
	updated, err := scanUpdate(s.db.QueryRowContext(ctx, `
		UPDATE campus_updates SET
			campus = $1, type = $2, title = $3, body = $4,
			is_pinned = $5, status = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+updateColumns,
		u.Campus, u.Type, u.Title, u.Body, u.IsPinned, u.Status, u.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update campus update: %w", err)
	}
	return updated, nil
}

// SetStatus flips the publishing state only. Returns nil if the id does
// not exist.
func (s *UpdateStore) SetStatus(ctx context.Context, id uuid.UUID, status models.ContentStatus) (*models.CampusUpdate, error) {
	u, err := scanUpdate(s.db.QueryRowContext(ctx, `
		UPDATE campus_updates SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+updateColumns,
		status, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set campus update status: %w", err)
	}
	return u, nil
}

// Delete removes a campus update by ID, reporting whether a row was deleted.
func (s *UpdateStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM campus_updates WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete campus update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete campus update: %w", err)
	}
	return n > 0, nil
}
