// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brookside/internal/models"
)

const contactColumns = "id, name, email, phone, message, campus, status, created_at, updated_at"

// ContactStore handles all contact-message database operations.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore with the given database connection.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

func scanContact(row interface{ Scan(...any) error }) (*models.Contact, error) {
	c := &models.Contact{}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message,
		&c.Campus, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all contact messages, newest first. A non-empty status
// narrows the result.
func (s *ContactStore) List(ctx context.Context, status models.ContactStatus) ([]models.Contact, error) {
	query := "SELECT " + contactColumns + " FROM contacts"
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var items []models.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// Create inserts a new contact message with status "new".
func (s *ContactStore) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	created, err := scanContact(s.db.QueryRowContext(ctx, `
		INSERT INTO contacts (name, email, phone, message, campus, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+contactColumns,
		c.Name, c.Email, c.Phone, c.Message, c.Campus, c.Status))
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return created, nil
}

// SetStatus marks a contact message as responded (or back to new).
// Returns nil if the id does not exist.
func (s *ContactStore) SetStatus(ctx context.Context, id uuid.UUID, status models.ContactStatus) (*models.Contact, error) {
	c, err := scanContact(s.db.QueryRowContext(ctx, `
		UPDATE contacts SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+contactColumns,
		status, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set contact status: %w", err)
	}
	return c, nil
}

// CountByStatus returns how many contact messages sit at the given status.
func (s *ContactStore) CountByStatus(ctx context.Context, status models.ContactStatus) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contacts WHERE status = $1", status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}
