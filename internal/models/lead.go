// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// InquiryStatus tracks how far an admission inquiry has progressed.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusEnrolled  InquiryStatus = "enrolled"
)

// Valid reports whether s is a known inquiry status.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusEnrolled:
		return true
	}
	return false
}

// Inquiry is an admission inquiry submitted from the public site.
type Inquiry struct {
	ID           uuid.UUID     `json:"id"`
	ParentName   string        `json:"parentName"`
	Email        string        `json:"email"`
	ChildAge     int           `json:"childAge"`
	YearApplying string        `json:"yearApplying"`
	Campus       Campus        `json:"campus"`
	Status       InquiryStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// ContactStatus tracks whether an admin has responded to a message.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusResponded ContactStatus = "responded"
)

// Valid reports whether s is a known contact status.
func (s ContactStatus) Valid() bool {
	return s == ContactStatusNew || s == ContactStatusResponded
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     *string       `json:"phone,omitempty"`
	Message   string        `json:"message"`
	Campus    Campus        `json:"campus"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// PaymentMethod is how a fee payment was made.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMpesa        PaymentMethod = "mpesa"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodMpesa:
		return true
	}
	return false
}

// Payment is a fee payment recorded by an administrator.
type Payment struct {
	ID         uuid.UUID     `json:"id"`
	ParentName string        `json:"parentName"`
	Amount     float64       `json:"amount"`
	Currency   string        `json:"currency"`
	Purpose    *string       `json:"purpose,omitempty"`
	Campus     Campus        `json:"campus"`
	Method     PaymentMethod `json:"method"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// Subscriber is an email-list entry. Email is unique; re-subscribing
// updates the existing row instead of creating a duplicate.
type Subscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Source    *string   `json:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
