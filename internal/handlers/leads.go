// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"brookside/internal/content"
	"brookside/internal/models"
	"brookside/internal/notify"
)

// InquiryStore is the persistence capability the inquiry handlers use.
type InquiryStore interface {
	List(ctx context.Context, status models.InquiryStatus) ([]models.Inquiry, error)
	Create(ctx context.Context, q *models.Inquiry) (*models.Inquiry, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus) (*models.Inquiry, error)
}

// ContactStore is the persistence capability the contact handlers use.
type ContactStore interface {
	List(ctx context.Context, status models.ContactStatus) ([]models.Contact, error)
	Create(ctx context.Context, c *models.Contact) (*models.Contact, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ContactStatus) (*models.Contact, error)
}

// SubscriberStore is the persistence capability the subscribe handler uses.
type SubscriberStore interface {
	List(ctx context.Context) ([]models.Subscriber, error)
	Upsert(ctx context.Context, sub *models.Subscriber) (*models.Subscriber, error)
}

// PaymentStore is the persistence capability the payment handlers use.
type PaymentStore interface {
	List(ctx context.Context, campus models.Campus) ([]models.Payment, error)
	Create(ctx context.Context, p *models.Payment) (*models.Payment, error)
}

// Leads groups the handlers for public form submissions and the admin
// views over them: admission inquiries, contact messages, newsletter
// subscriptions and fee payments.
type Leads struct {
	inquiries   InquiryStore
	contacts    ContactStore
	subscribers SubscriberStore
	payments    PaymentStore
	notifier    notify.Notifier
}

// NewLeads creates a new Leads handler group.
func NewLeads(inquiries InquiryStore, contacts ContactStore, subscribers SubscriberStore, payments PaymentStore, notifier notify.Notifier) *Leads {
	return &Leads{
		inquiries:   inquiries,
		contacts:    contacts,
		subscribers: subscribers,
		payments:    payments,
		notifier:    notifier,
	}
}

// notifyAdmins sends a heads-up email without blocking the request
// outcome. A notification failure is logged, never surfaced.
func (h *Leads) notifyAdmins(ctx context.Context, subject, html string) {
	if err := h.notifier.Send(ctx, subject, html); err != nil {
		slog.Error("notification failed", "subject", subject, "error", err)
	}
}

type inquiryBody struct {
	ParentName   string        `json:"parentName"`
	Email        string        `json:"email"`
	ChildAge     int           `json:"childAge"`
	YearApplying string        `json:"yearApplying"`
	Campus       models.Campus `json:"campus"`
}

func (b inquiryBody) validate() error {
	switch {
	case strings.TrimSpace(b.ParentName) == "":
		return &content.ValidationError{Field: "parentName", Msg: "is required"}
	case strings.TrimSpace(b.Email) == "":
		return &content.ValidationError{Field: "email", Msg: "is required"}
	case b.ChildAge <= 0:
		return &content.ValidationError{Field: "childAge", Msg: "must be positive"}
	case strings.TrimSpace(b.YearApplying) == "":
		return &content.ValidationError{Field: "yearApplying", Msg: "is required"}
	case !b.Campus.IsPhysical():
		return &content.ValidationError{Field: "campus", Msg: "must be a physical campus"}
	}
	return nil
}

// CreateInquiry accepts an admission inquiry from the public site.
func (h *Leads) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var body inquiryBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := body.validate(); err != nil {
		respondError(w, r, err)
		return
	}

	inquiry, err := h.inquiries.Create(r.Context(), &models.Inquiry{
		ParentName:   body.ParentName,
		Email:        body.Email,
		ChildAge:     body.ChildAge,
		YearApplying: body.YearApplying,
		Campus:       body.Campus,
		Status:       models.InquiryStatusNew,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.notifyAdmins(r.Context(), "New admission inquiry",
		fmt.Sprintf("<p><strong>%s</strong> (%s) inquired about the %s campus for %s.</p>",
			inquiry.ParentName, inquiry.Email, inquiry.Campus, inquiry.YearApplying))

	respond(w, http.StatusCreated, inquiry)
}

// ListInquiries returns inquiries for the admin panel, optionally
// filtered by ?status=.
func (h *Leads) ListInquiries(w http.ResponseWriter, r *http.Request) {
	status := models.InquiryStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		respondError(w, r, &content.ValidationError{Field: "status", Msg: "must be a known inquiry status"})
		return
	}

	inquiries, err := h.inquiries.List(r.Context(), status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, inquiries)
}

// SetInquiryStatus moves an inquiry through the admission pipeline.
func (h *Leads) SetInquiryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var body struct {
		Status models.InquiryStatus `json:"status"`
	}
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if !body.Status.Valid() {
		respondError(w, r, &content.ValidationError{Field: "status", Msg: "must be a known inquiry status"})
		return
	}

	inquiry, err := h.inquiries.SetStatus(r.Context(), id, body.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if inquiry == nil {
		respondError(w, r, content.ErrNotFound)
		return
	}
	respond(w, http.StatusOK, inquiry)
}

type contactBody struct {
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   *string       `json:"phone"`
	Message string        `json:"message"`
	Campus  models.Campus `json:"campus"`
}

func (b contactBody) validate() error {
	switch {
	case strings.TrimSpace(b.Name) == "":
		return &content.ValidationError{Field: "name", Msg: "is required"}
	case strings.TrimSpace(b.Email) == "":
		return &content.ValidationError{Field: "email", Msg: "is required"}
	case strings.TrimSpace(b.Message) == "":
		return &content.ValidationError{Field: "message", Msg: "is required"}
	case !b.Campus.IsPhysical():
		return &content.ValidationError{Field: "campus", Msg: "must be a physical campus"}
	}
	return nil
}

// CreateContact accepts a message from the public contact form.
func (h *Leads) CreateContact(w http.ResponseWriter, r *http.Request) {
	var body contactBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := body.validate(); err != nil {
		respondError(w, r, err)
		return
	}

	contactMsg, err := h.contacts.Create(r.Context(), &models.Contact{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Message: body.Message,
		Campus:  body.Campus,
		Status:  models.ContactStatusNew,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.notifyAdmins(r.Context(), "New contact message",
		fmt.Sprintf("<p><strong>%s</strong> (%s) wrote regarding the %s campus.</p>",
			contactMsg.Name, contactMsg.Email, contactMsg.Campus))

	respond(w, http.StatusCreated, contactMsg)
}

// ListContacts returns contact messages for the admin panel,
// optionally filtered by ?status=.
func (h *Leads) ListContacts(w http.ResponseWriter, r *http.Request) {
	status := models.ContactStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		respondError(w, r, &content.ValidationError{Field: "status", Msg: "must be a known contact status"})
		return
	}

	contacts, err := h.contacts.List(r.Context(), status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, contacts)
}

// SetContactStatus marks a contact message as responded (or back).
func (h *Leads) SetContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var body struct {
		Status models.ContactStatus `json:"status"`
	}
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if !body.Status.Valid() {
		respondError(w, r, &content.ValidationError{Field: "status", Msg: "must be a known contact status"})
		return
	}

	contactMsg, err := h.contacts.SetStatus(r.Context(), id, body.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if contactMsg == nil {
		respondError(w, r, content.ErrNotFound)
		return
	}
	respond(w, http.StatusOK, contactMsg)
}

type subscribeBody struct {
	Email  string  `json:"email"`
	Source *string `json:"source"`
}

// Subscribe adds an email to the newsletter list. Subscribing twice
// with the same email updates the existing entry.
func (h *Leads) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body subscribeBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if strings.TrimSpace(body.Email) == "" || !strings.Contains(body.Email, "@") {
		respondError(w, r, &content.ValidationError{Field: "email", Msg: "must be a valid email address"})
		return
	}

	sub, err := h.subscribers.Upsert(r.Context(), &models.Subscriber{
		Email:  strings.ToLower(strings.TrimSpace(body.Email)),
		Source: body.Source,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, sub)
}

// ListSubscribers returns the newsletter list for the admin panel.
func (h *Leads) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscribers.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, subs)
}

type paymentBody struct {
	ParentName string               `json:"parentName"`
	Amount     float64              `json:"amount"`
	Currency   string               `json:"currency"`
	Purpose    *string              `json:"purpose"`
	Campus     models.Campus        `json:"campus"`
	Method     models.PaymentMethod `json:"method"`
}

func (b paymentBody) validate() error {
	switch {
	case strings.TrimSpace(b.ParentName) == "":
		return &content.ValidationError{Field: "parentName", Msg: "is required"}
	case b.Amount <= 0:
		return &content.ValidationError{Field: "amount", Msg: "must be positive"}
	case strings.TrimSpace(b.Currency) == "":
		return &content.ValidationError{Field: "currency", Msg: "is required"}
	case !b.Campus.IsPhysical():
		return &content.ValidationError{Field: "campus", Msg: "must be a physical campus"}
	case !b.Method.Valid():
		return &content.ValidationError{Field: "method", Msg: "must be a known payment method"}
	}
	return nil
}

// CreatePayment records a fee payment entered by an administrator.
func (h *Leads) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var body paymentBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := body.validate(); err != nil {
		respondError(w, r, err)
		return
	}

	payment, err := h.payments.Create(r.Context(), &models.Payment{
		ParentName: body.ParentName,
		Amount:     body.Amount,
		Currency:   body.Currency,
		Purpose:    body.Purpose,
		Campus:     body.Campus,
		Method:     body.Method,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, payment)
}

// ListPayments returns recorded payments for the admin panel,
// optionally narrowed by ?campus=.
func (h *Leads) ListPayments(w http.ResponseWriter, r *http.Request) {
	campus := models.Campus(r.URL.Query().Get("campus"))
	if campus != "" && !campus.IsPhysical() {
		respondError(w, r, &content.ValidationError{Field: "campus", Msg: "must be a physical campus"})
		return
	}

	payments, err := h.payments.List(r.Context(), campus)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, payments)
}
