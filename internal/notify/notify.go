// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notify sends email alerts to school staff when a new inquiry
// or contact message arrives. Delivery goes through the Resend HTTP API;
// failures are logged by callers and never block the submission itself.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notifier delivers staff notification emails.
type Notifier interface {
	Send(ctx context.Context, subject, html string) error
}

// Resend sends email through the Resend API.
type Resend struct {
	apiKey  string
	from    string
	to      string
	baseURL string
	client  *http.Client
}

// NewResend creates a Resend notifier. Returns a Noop notifier when the
// API key or recipient is not configured.
func NewResend(apiKey, from, to string) Notifier {
	if apiKey == "" || to == "" {
		return Noop{}
	}
	return &Resend{
		apiKey:  apiKey,
		from:    from,
		to:      to,
		baseURL: "https://api.resend.com",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send delivers one email to the configured staff address.
func (r *Resend) Send(ctx context.Context, subject, html string) error {
	payload, err := json.Marshal(resendRequest{
		From:    r.from,
		To:      []string{r.to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("notify marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("notify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("notify send: resend returned %d: %s", resp.StatusCode, body)
	}
	return nil
}

// Noop discards all notifications. Used when Resend is not configured
// and in tests.
type Noop struct{}

// Send does nothing.
func (Noop) Send(context.Context, string, string) error { return nil }
