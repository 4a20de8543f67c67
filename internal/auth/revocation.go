// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces revocation keys in Redis to avoid collisions.
const keyPrefix = "revoked:"

// Revoker keeps a denylist of revoked token IDs in Redis. Entries expire
// together with the token they cover, so the list never needs cleanup.
// A Revoker with a nil client is a no-op: nothing is revoked and no
// token is ever reported revoked. Tests and single-binary dev setups use
// that mode.
type Revoker struct {
	client *redis.Client
}

// NewRevoker creates a Revoker backed by the given Redis client. The
// client may be nil.
func NewRevoker(client *redis.Client) *Revoker {
	return &Revoker{client: client}
}

// Revoke marks a token ID as revoked until the token's own expiry.
func (r *Revoker) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if r.client == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // already expired, nothing to deny
	}
	if err := r.client.Set(ctx, keyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token ID is on the denylist.
func (r *Revoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if r.client == nil {
		return false, nil
	}
	_, err := r.client.Get(ctx, keyPrefix+jti).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return true, nil
}
