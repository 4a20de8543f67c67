// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for lookups, updates, and deletes against
	// an id or slug that does not exist (or that the viewer may not see).
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when a non-admin viewer attempts a write.
	ErrForbidden = errors.New("forbidden")

	// ErrSlugTaken is returned when a blog or page slug collides with an
	// existing item. No automatic renaming is performed.
	ErrSlugTaken = errors.New("slug already in use")
)

// ValidationError identifies the input field that failed validation.
// It is always raised before any persistence attempt.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Msg)
}

func errRequired(field string) error {
	return &ValidationError{Field: field, Msg: "is required"}
}

func errInvalid(field string) error {
	return &ValidationError{Field: field, Msg: "has an invalid value"}
}
