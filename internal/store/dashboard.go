// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"

	"brookside/internal/models"
)

// DashboardStore answers the five counting reads behind the admin
// dashboard summary. It delegates to the entity stores so the count
// queries live next to the tables they read.
type DashboardStore struct {
	blogs       *BlogStore
	inquiries   *InquiryStore
	contacts    *ContactStore
	subscribers *SubscriberStore
	payments    *PaymentStore
}

// NewDashboardStore creates a DashboardStore over the given database connection.
func NewDashboardStore(db *sql.DB) *DashboardStore {
	return &DashboardStore{
		blogs:       NewBlogStore(db),
		inquiries:   NewInquiryStore(db),
		contacts:    NewContactStore(db),
		subscribers: NewSubscriberStore(db),
		payments:    NewPaymentStore(db),
	}
}

// CountBlogs returns the total number of blog posts, any status.
func (s *DashboardStore) CountBlogs(ctx context.Context) (int, error) {
	return s.blogs.Count(ctx)
}

// CountNewInquiries returns the number of inquiries still at "new".
func (s *DashboardStore) CountNewInquiries(ctx context.Context) (int, error) {
	return s.inquiries.CountByStatus(ctx, models.InquiryStatusNew)
}

// CountNewContacts returns the number of unanswered contact messages.
func (s *DashboardStore) CountNewContacts(ctx context.Context) (int, error) {
	return s.contacts.CountByStatus(ctx, models.ContactStatusNew)
}

// CountSubscribers returns the size of the email list.
func (s *DashboardStore) CountSubscribers(ctx context.Context) (int, error) {
	return s.subscribers.Count(ctx)
}

// SumPayments returns the total of all recorded payment amounts.
func (s *DashboardStore) SumPayments(ctx context.Context) (float64, error) {
	return s.payments.SumAmounts(ctx)
}
