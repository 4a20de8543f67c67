// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed creates the initial super admin account when the users table is
// empty. Credentials come from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD so
// no default password ever ships. 2FA starts disabled; the admin can set
// it up after first login.
func Seed(db *sql.DB, name, email, password string) error {
	if email == "" || password == "" {
		slog.Info("seed admin credentials not configured, skipping seed")
		return nil
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	if name == "" {
		name = "Admin"
	}

	_, err = db.Exec(`
		INSERT INTO users (name, email, password_hash, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, name, email, string(hash), "super_admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with initial super admin", "email", email)
	return nil
}
