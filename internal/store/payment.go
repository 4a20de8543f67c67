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

const paymentColumns = "id, parent_name, amount, currency, purpose, campus, method, created_at, updated_at"

// PaymentStore handles all fee-payment database operations.
type PaymentStore struct {
	db *sql.DB
}

// NewPaymentStore creates a new PaymentStore with the given database connection.
func NewPaymentStore(db *sql.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(&p.ID, &p.ParentName, &p.Amount, &p.Currency, &p.Purpose,
		&p.Campus, &p.Method, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns payments, newest first. An empty campus returns every
// payment; otherwise only payments for that campus.
func (s *PaymentStore) List(ctx context.Context, campus models.Campus) ([]models.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payments"
	var args []any
	if campus != "" {
		query += " WHERE campus = $1"
		args = append(args, campus)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var items []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Create records a new payment.
func (s *PaymentStore) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	created, err := scanPayment(s.db.QueryRowContext(ctx, `
		INSERT INTO payments (parent_name, amount, currency, purpose, campus, method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+paymentColumns,
		p.ParentName, p.Amount, p.Currency, p.Purpose, p.Campus, p.Method))
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return created, nil
}

// SumAmounts returns the total of every recorded payment amount.
func (s *PaymentStore) SumAmounts(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM payments").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}
