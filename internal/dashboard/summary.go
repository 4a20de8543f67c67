// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package dashboard assembles the admin dashboard summary from five
// independent collections. The reads run concurrently and fail as a
// unit: a dashboard mixing real numbers with zeroed-out fallbacks would
// mislead an administrator, so no partial summary is ever returned.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"brookside/internal/content"
)

// SummaryStore provides the five independent reads behind the summary.
// Each read has no data dependency on the others.
type SummaryStore interface {
	CountBlogs(ctx context.Context) (int, error)
	CountNewInquiries(ctx context.Context) (int, error)
	CountNewContacts(ctx context.Context) (int, error)
	CountSubscribers(ctx context.Context) (int, error)
	SumPayments(ctx context.Context) (float64, error)
}

// Summary is the derived dashboard payload. It is recomputed on every
// request and never persisted.
type Summary struct {
	Blogs             int     `json:"blogs"`
	NewInquiries      int     `json:"newInquiries"`
	NewContacts       int     `json:"newContacts"`
	EmailSubscribers  int     `json:"emailSubscribers"`
	// Sum of every recorded payment; the key name is historical.
	PaymentsThisMonth float64 `json:"paymentsThisMonth"`
}

// AggregationError marks a summary computation where at least one of
// the underlying reads failed.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("dashboard summary: %v", e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

// Service computes dashboard summaries for administrators.
type Service struct {
	store SummaryStore
}

// NewService creates the dashboard service over the given store.
func NewService(store SummaryStore) *Service {
	return &Service{store: store}
}

// Summary runs the five reads concurrently and joins them. If any read
// fails, the first error is returned wrapped in an AggregationError and
// the result is discarded. Empty collections produce zero values, not
// errors: the payment sum of no payments is 0.
func (s *Service) Summary(ctx context.Context, v content.Viewer) (*Summary, error) {
	if !v.IsAdmin {
		return nil, content.ErrForbidden
	}

	var out Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.store.CountBlogs(ctx)
		out.Blogs = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountNewInquiries(ctx)
		out.NewInquiries = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountNewContacts(ctx)
		out.NewContacts = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountSubscribers(ctx)
		out.EmailSubscribers = n
		return err
	})
	g.Go(func() error {
		total, err := s.store.SumPayments(ctx)
		out.PaymentsThisMonth = total
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, &AggregationError{Err: err}
	}
	return &out, nil
}
