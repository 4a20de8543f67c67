// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the content and lead persistence interfaces
// on PostgreSQL. Every store receives its *sql.DB through its
// constructor; nothing in this package reaches global state.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"brookside/internal/content"
)

// buildWhere renders a content.Filter into a WHERE clause and its
// arguments. The same filter drives the in-memory fakes in the content
// package tests, so the SQL here must mirror the Match* methods exactly.
func buildWhere(f content.Filter) (string, []any) {
	var conds []string
	var args []any

	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Campus != nil {
		args = append(args, *f.Campus)
		if f.IncludeAll {
			conds = append(conds, fmt.Sprintf("(campus = $%d OR campus = 'all')", len(args)))
		} else {
			conds = append(conds, fmt.Sprintf("campus = $%d", len(args)))
		}
	}
	if f.Type != nil {
		args = append(args, *f.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if f.ActiveAt != nil {
		args = append(args, *f.ActiveAt)
		conds = append(conds, fmt.Sprintf("(expires_at IS NULL OR expires_at >= $%d)", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// orderBy renders a content.Order into an ORDER BY clause.
func orderBy(o content.Order) string {
	if o == content.OrderPinnedFirst {
		return "ORDER BY is_pinned DESC, created_at DESC"
	}
	return "ORDER BY created_at DESC"
}

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation (SQLSTATE 23505). Slug and subscriber-email
// uniqueness are enforced by the database, not application locks; the
// second concurrent writer loses here.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
