// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Brookside API. It organizes routes into public, auth, and admin
// groups with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"brookside/internal/auth"
	"brookside/internal/handlers"
	"brookside/internal/middleware"
)

// Deps carries everything the router wires together.
type Deps struct {
	Issuer      *auth.Issuer
	Revoker     *auth.Revoker
	RateLimiter *middleware.RateLimiter

	Auth      *handlers.Auth
	Content   *handlers.Content
	Leads     *handlers.Leads
	Dashboard *handlers.Dashboard
	Uploads   *handlers.Uploads
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadToken(d.Issuer, d.Revoker))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Public content reads, campus-scoped via ?campus=.
		r.Get("/blogs", d.Content.ListBlogs)
		r.Get("/blogs/{slug}", d.Content.GetBlogBySlug)
		r.Get("/announcements", d.Content.ListAnnouncements)
		r.Get("/campus-updates", d.Content.ListUpdates)
		r.Get("/pages/{slug}", d.Content.GetPageBySlug)

		// Public form submissions — rate limited against spam.
		r.Group(func(r chi.Router) {
			r.Use(d.RateLimiter.Middleware)
			r.Post("/inquiries", d.Leads.CreateInquiry)
			r.Post("/contact", d.Leads.CreateContact)
			r.Post("/subscribe", d.Leads.Subscribe)
		})

		// Authentication.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", d.Auth.Login)

			// Requires a valid token; 2FA may still be pending.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/logout", d.Auth.Logout)
				r.Post("/2fa/setup", d.Auth.TwoFASetup)
				r.Post("/2fa/verify", d.Auth.TwoFAVerify)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Use(middleware.Require2FA)
				r.Get("/me", d.Auth.Me)
			})
		})

		// Authenticated + 2FA-verified admin area.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)
			r.Use(middleware.RequireAdmin)

			r.Get("/dashboard", d.Dashboard.Summary)

			r.Route("/blogs", func(r chi.Router) {
				r.Get("/", d.Content.AdminListBlogs)
				r.Post("/", d.Content.CreateBlog)
				r.Put("/{id}", d.Content.UpdateBlog)
				r.Patch("/{id}/status", d.Content.SetBlogStatus)
				r.Delete("/{id}", d.Content.DeleteBlog)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", d.Content.AdminListAnnouncements)
				r.Post("/", d.Content.CreateAnnouncement)
				r.Put("/{id}", d.Content.UpdateAnnouncement)
				r.Patch("/{id}/status", d.Content.SetAnnouncementStatus)
				r.Delete("/{id}", d.Content.DeleteAnnouncement)
			})

			r.Route("/campus-updates", func(r chi.Router) {
				r.Get("/", d.Content.AdminListUpdates)
				r.Post("/", d.Content.CreateUpdate)
				r.Put("/{id}", d.Content.UpdateUpdate)
				r.Patch("/{id}/status", d.Content.SetUpdateStatus)
				r.Delete("/{id}", d.Content.DeleteUpdate)
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", d.Content.AdminListPages)
				r.Post("/", d.Content.CreatePage)
				r.Put("/{id}", d.Content.UpdatePage)
				r.Patch("/{id}/status", d.Content.SetPageStatus)
				r.Delete("/{id}", d.Content.DeletePage)
			})

			r.Route("/inquiries", func(r chi.Router) {
				r.Get("/", d.Leads.ListInquiries)
				r.Patch("/{id}/status", d.Leads.SetInquiryStatus)
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", d.Leads.ListContacts)
				r.Patch("/{id}/status", d.Leads.SetContactStatus)
			})

			r.Get("/subscribers", d.Leads.ListSubscribers)

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", d.Leads.ListPayments)
				r.Post("/", d.Leads.CreatePayment)
			})

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/", d.Uploads.Upload)
				r.Delete("/", d.Uploads.Delete)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
