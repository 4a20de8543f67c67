// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brookside/internal/content"
	"brookside/internal/models"
	"brookside/internal/slug"
)

// Content groups the HTTP handlers for blogs, announcements, campus
// updates, and pages. Public and admin routes share this group; the
// router decides which methods sit behind auth middleware.
type Content struct {
	svc *content.Service
}

// NewContent creates a new Content handler group.
func NewContent(svc *content.Service) *Content {
	return &Content{svc: svc}
}

// publicViewer builds the viewer for unauthenticated routes from the
// optional ?campus= query parameter.
func publicViewer(r *http.Request) content.Viewer {
	return content.Public(campusParam(r))
}

// adminViewer builds the viewer for admin routes. The optional ?campus=
// parameter narrows listings; router middleware has already enforced
// authentication.
func adminViewer(r *http.Request) content.Viewer {
	v := content.Admin()
	v.Campus = campusParam(r)
	return v
}

// campusParam reads ?campus= without validating it; the content rules
// reject unknown values with a field-level error.
func campusParam(r *http.Request) *models.Campus {
	raw := r.URL.Query().Get("campus")
	if raw == "" {
		return nil
	}
	c := models.Campus(raw)
	return &c
}

// listQueryParams reads the optional ?status= and ?type= narrowing.
func listQueryParams(r *http.Request) content.ListQuery {
	var q content.ListQuery
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := models.ContentStatus(raw)
		q.Status = &s
	}
	if raw := r.URL.Query().Get("type"); raw != "" {
		t := models.UpdateType(raw)
		q.Type = &t
	}
	return q
}

// idParam parses the {id} route parameter.
func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, &content.ValidationError{Field: "id", Msg: "has an invalid value"}
	}
	return id, nil
}

// statusBody is the payload of the PATCH .../status endpoints.
type statusBody struct {
	Status models.ContentStatus `json:"status"`
}

// --- Blogs ---

type blogBody struct {
	Title      string               `json:"title"`
	Slug       string               `json:"slug"`
	Body       string               `json:"body"`
	CoverImage *string              `json:"coverImage"`
	Campus     models.Campus        `json:"campus"`
	Status     models.ContentStatus `json:"status"`
}

func (b blogBody) input() content.BlogInput {
	// An omitted slug is derived from the title.
	if b.Slug == "" && b.Title != "" {
		b.Slug = slug.Generate(b.Title)
	}
	return content.BlogInput{
		Title:      b.Title,
		Slug:       b.Slug,
		Body:       b.Body,
		CoverImage: b.CoverImage,
		Campus:     b.Campus,
		Status:     b.Status,
	}
}

// ListBlogs serves the public blog feed.
func (c *Content) ListBlogs(w http.ResponseWriter, r *http.Request) {
	items, err := c.svc.ListBlogs(r.Context(), publicViewer(r), content.ListQuery{})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, items)
}

// GetBlogBySlug serves a single published blog post.
func (c *Content) GetBlogBySlug(w http.ResponseWriter, r *http.Request) {
	b, err := c.svc.GetBlogBySlug(r.Context(), publicViewer(r), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, b)
}

// AdminListBlogs serves the full blog inventory, drafts included.
func (c *Content) AdminListBlogs(w http.ResponseWriter, r *http.Request) {
	items, err := c.svc.ListBlogs(r.Context(), adminViewer(r), listQueryParams(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, items)
}

// CreateBlog creates a blog post.
func (c *Content) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var body blogBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	b, err := c.svc.CreateBlog(r.Context(), adminViewer(r), body.input())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, b)
}

// UpdateBlog replaces all writable fields of a blog post.
func (c *Content) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body blogBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	b, err := c.svc.UpdateBlog(r.Context(), adminViewer(r), id, body.input())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, b)
}

// SetBlogStatus publishes or unpublishes a blog post.
func (c *Content) SetBlogStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body statusBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	b, err := c.svc.SetBlogStatus(r.Context(), adminViewer(r), id, body.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, b)
}

// DeleteBlog removes a blog post.
func (c *Content) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := c.svc.DeleteBlog(r.Context(), adminViewer(r), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "blog deleted")
}

// --- Announcements ---

type announcementBody struct {
	Title     string               `json:"title"`
	Body      string               `json:"body"`
	Campus    models.Campus        `json:"campus"`
	Status    models.ContentStatus `json:"status"`
	ExpiresAt *time.Time           `json:"expiresAt"`
}

func (b announcementBody) input() content.AnnouncementInput {
	return content.AnnouncementInput{
		Title:     b.Title,
		Body:      b.Body,
		Campus:    b.Campus,
		Status:    b.Status,
		ExpiresAt: b.ExpiresAt,
	}
}

// ListAnnouncements serves active, published announcements to the public.
func (c *Content) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := c.svc.ListAnnouncements(r.Context(), publicViewer(r), content.ListQuery{})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, items)
}

// AdminListAnnouncements serves every announcement, expired ones included.
func (c *Content) AdminListAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := c.svc.ListAnnouncements(r.Context(), adminViewer(r), listQueryParams(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, items)
}

// CreateAnnouncement creates an announcement.
func (c *Content) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var body announcementBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	a, err := c.svc.CreateAnnouncement(r.Context(), adminViewer(r), body.input())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, a)
}

// UpdateAnnouncement replaces all writable fields of an announcement.
func (c *Content) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body announcementBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	a, err := c.svc.UpdateAnnouncement(r.Context(), adminViewer(r), id, body.input())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, a)
}

// SetAnnouncementStatus publishes or unpublishes an announcement.
func (c *Content) SetAnnouncementStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body statusBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	a, err := c.svc.SetAnnouncementStatus(r.Context(), adminViewer(r), id, body.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, a)
}

// DeleteAnnouncement removes an announcement.
func (c *Content) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := c.svc.DeleteAnnouncement(r.Context(), adminViewer(r), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "announcement deleted")
}

// --- Campus updates ---

type updateBody struct {
	Campus   models.Campus        `json:"campus"`
	Type     models.UpdateType    `json:"type"`
	Title    string               `json:"title"`
	Body     string               `json:"body"`
	IsPinned bool                 `json:"isPinned"`
	Status   models.ContentStatus `json:"status"`
}

func (b updateBody) input() content.UpdateInput {
	return content.UpdateInput{
		Campus:   b.Campus,
		Type:     b.Type,
		Title:    b.Title,
		Body:     b.Body,
		IsPinned: b.IsPinned,
		Status:   b.Status,
	}
}

// ListUpdates serves the campus-update feed for one campus. The campus
// query parameter is mandatory on this public route.
func (c *Content) ListUpdates(w http.ResponseWriter, r *http.Request) {
	items, err := c.svc.ListUpdates(r.Context(), publicViewer(r), listQueryParams(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, items)
}

// AdminListUpdates serves all campus updates across campuses.
func (c *Content) AdminListUpdates(w http.ResponseWriter, r *http.Request) {
	items, err := c.svc.ListUpdates(r.Context(), adminViewer(r), listQueryParams(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, items)
}

// CreateUpdate creates a campus update.
func (c *Content) CreateUpdate(w http.ResponseWriter, r *http.Request) {
	var body updateBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	u, err := c.svc.CreateUpdate(r.Context(), adminViewer(r), body.input())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, u)
}

// UpdateUpdate replaces all writable fields of a campus update.
func (c *Content) UpdateUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body updateBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	u, err := c.svc.UpdateUpdate(r.Context(), adminViewer(r), id, body.input())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, u)
}

// SetUpdateStatus publishes or unpublishes a campus update.
func (c *Content) SetUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body statusBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	u, err := c.svc.SetUpdateStatus(r.Context(), adminViewer(r), id, body.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, u)
}

// DeleteUpdate removes a campus update.
func (c *Content) DeleteUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := c.svc.DeleteUpdate(r.Context(), adminViewer(r), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "campus update deleted")
}

// --- Pages ---

type pageBody struct {
	Title  string               `json:"title"`
	Slug   string               `json:"slug"`
	Body   string               `json:"body"`
	Status models.ContentStatus `json:"status"`
}

func (b pageBody) input() content.PageInput {
	if b.Slug == "" && b.Title != "" {
		b.Slug = slug.Generate(b.Title)
	}
	return content.PageInput{
		Title:  b.Title,
		Slug:   b.Slug,
		Body:   b.Body,
		Status: b.Status,
	}
}

// GetPageBySlug serves a single published page.
func (c *Content) GetPageBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := c.svc.GetPageBySlug(r.Context(), publicViewer(r), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, p)
}

// AdminListPages serves every page, drafts included.
func (c *Content) AdminListPages(w http.ResponseWriter, r *http.Request) {
	items, err := c.svc.ListPages(r.Context(), adminViewer(r), listQueryParams(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, items)
}

// CreatePage creates a page.
func (c *Content) CreatePage(w http.ResponseWriter, r *http.Request) {
	var body pageBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	p, err := c.svc.CreatePage(r.Context(), adminViewer(r), body.input())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, p)
}

// UpdatePage replaces all writable fields of a page.
func (c *Content) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body pageBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	p, err := c.svc.UpdatePage(r.Context(), adminViewer(r), id, body.input())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, p)
}

// SetPageStatus publishes or unpublishes a page.
func (c *Content) SetPageStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body statusBody
	if err := decode(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	p, err := c.svc.SetPageStatus(r.Context(), adminViewer(r), id, body.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, p)
}

// DeletePage removes a page.
func (c *Content) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := c.svc.DeletePage(r.Context(), adminViewer(r), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, "page deleted")
}
