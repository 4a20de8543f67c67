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

const inquiryColumns = "id, parent_name, email, child_age, year_applying, campus, status, created_at, updated_at"

// InquiryStore handles all admission-inquiry database operations.
type InquiryStore struct {
	db *sql.DB
}

// NewInquiryStore creates a new InquiryStore with the given database connection.
func NewInquiryStore(db *sql.DB) *InquiryStore {
	return &InquiryStore{db: db}
}

func scanInquiry(row interface{ Scan(...any) error }) (*models.Inquiry, error) {
	q := &models.Inquiry{}
	err := row.Scan(&q.ID, &q.ParentName, &q.Email, &q.ChildAge, &q.YearApplying,
		&q.Campus, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// List returns all inquiries, newest first. A non-empty status narrows
// the result to that stage.
func (s *InquiryStore) List(ctx context.Context, status models.InquiryStatus) ([]models.Inquiry, error) {
	query := "SELECT " + inquiryColumns + " FROM inquiries"
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var items []models.Inquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		items = append(items, *q)
	}
	return items, rows.Err()
}

// Create inserts a new inquiry with status "new".
func (s *InquiryStore) Create(ctx context.Context, q *models.Inquiry) (*models.Inquiry, error) {
	created, err := scanInquiry(s.db.QueryRowContext(ctx, `
		INSERT INTO inquiries (parent_name, email, child_age, year_applying, campus, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+inquiryColumns,
		q.ParentName, q.Email, q.ChildAge, q.YearApplying, q.Campus, q.Status))
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return created, nil
}

// SetStatus moves an inquiry to a new stage. Returns nil if the id does
// not exist.
func (s *InquiryStore) SetStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus) (*models.Inquiry, error) {
	q, err := scanInquiry(s.db.QueryRowContext(ctx, `
		UPDATE inquiries SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+inquiryColumns,
		status, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set inquiry status: %w", err)
	}
	return q, nil
}

// CountByStatus returns how many inquiries sit at the given stage.
func (s *InquiryStore) CountByStatus(ctx context.Context, status models.InquiryStatus) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM inquiries WHERE status = $1", status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	return n, nil
}
