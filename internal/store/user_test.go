package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"brookside/internal/models"
)

func TestUserStoreCreateAndAuth(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	email := "test-user-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanTable(t, db, "users", "email", email) })

	created, err := s.Create(ctx, "Test Admin", email, "correct horse battery", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.PasswordHash == "correct horse battery" {
		t.Error("password stored in plaintext")
	}

	found, err := s.FindByEmail(ctx, email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found == nil {
		t.Fatal("expected user, got nil")
	}

	if !s.CheckPassword(found, "correct horse battery") {
		t.Error("correct password rejected")
	}
	if s.CheckPassword(found, "wrong password") {
		t.Error("wrong password accepted")
	}

	missing, err := s.FindByEmail(ctx, "nobody-"+email)
	if err != nil {
		t.Fatalf("FindByEmail (missing): %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown email")
	}
}

func TestUserStoreTOTPLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	email := "test-totp-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanTable(t, db, "users", "email", email) })

	created, err := s.Create(ctx, "TOTP Admin", email, "pw123456", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.TOTPEnabled {
		t.Error("new user should not have 2FA enabled")
	}

	if err := s.SetTOTPSecret(ctx, created.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("SetTOTPSecret: %v", err)
	}
	if err := s.EnableTOTP(ctx, created.ID); err != nil {
		t.Fatalf("EnableTOTP: %v", err)
	}

	found, _ := s.FindByID(ctx, created.ID)
	if found == nil || !found.TOTPEnabled || found.TOTPSecret == nil {
		t.Fatalf("got %+v, want enabled 2FA with secret", found)
	}

	if err := s.ResetTOTP(ctx, created.ID); err != nil {
		t.Fatalf("ResetTOTP: %v", err)
	}
	found, _ = s.FindByID(ctx, created.ID)
	if found.TOTPEnabled || found.TOTPSecret != nil {
		t.Error("expected 2FA cleared after reset")
	}
}
