// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"brookside/internal/auth"
	"brookside/internal/content"
	"brookside/internal/middleware"
	"brookside/internal/models"
)

// totpIssuer is the issuer label shown in authenticator apps.
const totpIssuer = "Brookside Schools"

// UserStore is the account lookup capability the auth handlers require.
// *store.UserStore satisfies it; tests supply an in-memory fake.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CheckPassword(user *models.User, password string) bool
	SetTOTPSecret(ctx context.Context, userID uuid.UUID, secret string) error
	EnableTOTP(ctx context.Context, userID uuid.UUID) error
}

// Auth groups the authentication HTTP handlers.
type Auth struct {
	users   UserStore
	issuer  *auth.Issuer
	revoker *auth.Revoker
}

// NewAuth creates a new Auth handler group.
func NewAuth(users UserStore, issuer *auth.Issuer, revoker *auth.Revoker) *Auth {
	return &Auth{users: users, issuer: issuer, revoker: revoker}
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse carries the issued token. TwoFactorRequired tells the
// client to prompt for a TOTP code before the token is fully usable.
type loginResponse struct {
	Token             string       `json:"token"`
	TwoFactorRequired bool         `json:"twoFactorRequired"`
	User              *models.User `json:"user,omitempty"`
}

// Login verifies credentials and issues a bearer token. Accounts with
// 2FA enabled get a restricted token that only the verify endpoint
// accepts until the TOTP code checks out.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := a.users.FindByEmail(r.Context(), body.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if user == nil || !a.users.CheckPassword(user, body.Password) {
		// Same answer for unknown email and wrong password.
		respondFail(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	twoFADone := !user.TOTPEnabled
	token, _, err := a.issuer.Issue(user.ID, user.Email, string(user.Role), twoFADone)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := loginResponse{Token: token, TwoFactorRequired: user.TOTPEnabled}
	if twoFADone {
		resp.User = user
	}
	respond(w, http.StatusOK, resp)
}

// Logout puts the presented token on the revocation list.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		respondError(w, r, content.ErrForbidden)
		return
	}

	if err := a.revoker.Revoke(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		slog.Error("token revocation failed", "error", err)
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "logged out")
}

// Me returns the authenticated user's profile.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		respondError(w, r, content.ErrForbidden)
		return
	}

	user, err := a.users.FindByID(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if user == nil {
		respondError(w, r, content.ErrNotFound)
		return
	}
	respond(w, http.StatusOK, user)
}

// TwoFASetup generates a fresh TOTP secret for the authenticated user
// and returns it with a QR code for authenticator apps. The secret is
// inert until the first successful verification enables it.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		respondError(w, r, content.ErrForbidden)
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: claims.Email,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := a.users.SetTOTPSecret(r.Context(), claims.UserID, key.Secret()); err != nil {
		respondError(w, r, err)
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, map[string]string{
		"secret": key.Secret(),
		"qrCode": base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type twoFAVerifyBody struct {
	Code string `json:"code"`
}

// TwoFAVerify validates a TOTP code. On first-time setup it enables 2FA
// for the account. A fully-verified token replaces the restricted one,
// which is revoked.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		respondError(w, r, content.ErrForbidden)
		return
	}

	var body twoFAVerifyBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := a.users.FindByID(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if user == nil {
		respondError(w, r, content.ErrNotFound)
		return
	}
	if user.TOTPSecret == nil {
		respondError(w, r, &content.ValidationError{Field: "code", Msg: "has no pending setup to verify"})
		return
	}

	if !totp.Validate(body.Code, *user.TOTPSecret) {
		respondFail(w, http.StatusUnauthorized, "invalid code")
		return
	}

	if !user.TOTPEnabled {
		if err := a.users.EnableTOTP(r.Context(), user.ID); err != nil {
			respondError(w, r, err)
			return
		}
	}

	token, _, err := a.issuer.Issue(user.ID, user.Email, string(user.Role), true)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// The restricted token is no longer needed.
	if err := a.revoker.Revoke(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		slog.Error("restricted token revocation failed", "error", err)
	}

	respond(w, http.StatusOK, loginResponse{Token: token, User: user})
}
