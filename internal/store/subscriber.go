// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"brookside/internal/models"
)

const subscriberColumns = "id, email, source, created_at, updated_at"

// SubscriberStore handles all email-list database operations.
type SubscriberStore struct {
	db *sql.DB
}

// NewSubscriberStore creates a new SubscriberStore with the given database connection.
func NewSubscriberStore(db *sql.DB) *SubscriberStore {
	return &SubscriberStore{db: db}
}

func scanSubscriber(row interface{ Scan(...any) error }) (*models.Subscriber, error) {
	sub := &models.Subscriber{}
	err := row.Scan(&sub.ID, &sub.Email, &sub.Source, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// List returns all subscribers, newest first.
func (s *SubscriberStore) List(ctx context.Context) ([]models.Subscriber, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+subscriberColumns+" FROM email_subscribers ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	var items []models.Subscriber
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		items = append(items, *sub)
	}
	return items, rows.Err()
}

// Upsert subscribes an email address. Re-subscribing an existing address
// refreshes its source instead of creating a duplicate row.
func (s *SubscriberStore) Upsert(ctx context.Context, sub *models.Subscriber) (*models.Subscriber, error) {
	saved, err := scanSubscriber(s.db.QueryRowContext(ctx, `
		INSERT INTO email_subscribers (email, source)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET source = EXCLUDED.source, updated_at = NOW()
		RETURNING `+subscriberColumns,
		sub.Email, sub.Source))
	if err != nil {
		return nil, fmt.Errorf("upsert subscriber: %w", err)
	}
	return saved, nil
}

// Count returns the number of subscribers on the list.
func (s *SubscriberStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM email_subscribers").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}
