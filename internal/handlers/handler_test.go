// handler_test.go provides shared test infrastructure for the handler
// tests: in-memory store fakes and small helpers for driving handlers
// through httptest. No database or Redis is needed.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"brookside/internal/content"
	"brookside/internal/models"
)

// errFake stands in for any downstream failure.
var errFake = errors.New("downstream unavailable")

// envelopeOut mirrors the response envelope for decoding in tests.
type envelopeOut struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parseEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelopeOut {
	t.Helper()
	var env envelopeOut
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func parseData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	env := parseEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope, got message %q", env.Message)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

// --- content store fakes ---

type memBlogStore struct {
	mu    sync.Mutex
	items []models.Blog
}

func (s *memBlogStore) List(_ context.Context, f content.Filter) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Blog
	for _, b := range s.items {
		if f.MatchStatus(b.Status) && f.MatchCampus(b.Campus) {
			out = append(out, b)
		}
	}
	content.ByNewest(out, func(b models.Blog) time.Time { return b.CreatedAt })
	return out, nil
}

func (s *memBlogStore) FindByID(_ context.Context, id uuid.UUID) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			b := s.items[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (s *memBlogStore) FindBySlug(_ context.Context, slug string) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Slug == slug {
			b := s.items[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (s *memBlogStore) Create(_ context.Context, b *models.Blog) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.Slug == b.Slug {
			return nil, content.ErrSlugTaken
		}
	}
	created := *b
	created.ID = uuid.New()
	created.CreatedAt = time.Now().Add(time.Duration(len(s.items)) * time.Second)
	created.UpdatedAt = created.CreatedAt
	s.items = append(s.items, created)
	return &created, nil
}

func (s *memBlogStore) Update(_ context.Context, b *models.Blog) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.Slug == b.Slug && existing.ID != b.ID {
			return nil, content.ErrSlugTaken
		}
	}
	for i := range s.items {
		if s.items[i].ID == b.ID {
			updated := *b
			updated.CreatedAt = s.items[i].CreatedAt
			updated.UpdatedAt = time.Now()
			s.items[i] = updated
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *memBlogStore) SetStatus(_ context.Context, id uuid.UUID, status models.ContentStatus) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			b := s.items[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (s *memBlogStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// emptyAnnouncementStore, emptyUpdateStore, and emptyPageStore satisfy
// the service constructor for tests that only exercise blogs.
type emptyAnnouncementStore struct{}

func (emptyAnnouncementStore) List(context.Context, content.Filter) ([]models.Announcement, error) {
	return nil, nil
}
func (emptyAnnouncementStore) FindByID(context.Context, uuid.UUID) (*models.Announcement, error) {
	return nil, nil
}
func (emptyAnnouncementStore) Create(_ context.Context, a *models.Announcement) (*models.Announcement, error) {
	return a, nil
}
func (emptyAnnouncementStore) Update(_ context.Context, a *models.Announcement) (*models.Announcement, error) {
	return nil, nil
}
func (emptyAnnouncementStore) SetStatus(context.Context, uuid.UUID, models.ContentStatus) (*models.Announcement, error) {
	return nil, nil
}
func (emptyAnnouncementStore) Delete(context.Context, uuid.UUID) (bool, error) { return false, nil }

type emptyUpdateStore struct{}

func (emptyUpdateStore) List(context.Context, content.Filter) ([]models.CampusUpdate, error) {
	return nil, nil
}
func (emptyUpdateStore) FindByID(context.Context, uuid.UUID) (*models.CampusUpdate, error) {
	return nil, nil
}
func (emptyUpdateStore) Create(_ context.Context, u *models.CampusUpdate) (*models.CampusUpdate, error) {
	return u, nil
}
func (emptyUpdateStore) Update(_ context.Context, u *models.CampusUpdate) (*models.CampusUpdate, error) {
	return nil, nil
}
func (emptyUpdateStore) SetStatus(context.Context, uuid.UUID, models.ContentStatus) (*models.CampusUpdate, error) {
	return nil, nil
}
func (emptyUpdateStore) Delete(context.Context, uuid.UUID) (bool, error) { return false, nil }

type emptyPageStore struct{}

func (emptyPageStore) List(context.Context, content.Filter) ([]models.Page, error) { return nil, nil }
func (emptyPageStore) FindByID(context.Context, uuid.UUID) (*models.Page, error)   { return nil, nil }
func (emptyPageStore) FindBySlug(context.Context, string) (*models.Page, error)    { return nil, nil }
func (emptyPageStore) Create(_ context.Context, p *models.Page) (*models.Page, error) {
	return p, nil
}
func (emptyPageStore) Update(_ context.Context, p *models.Page) (*models.Page, error) {
	return nil, nil
}
func (emptyPageStore) SetStatus(context.Context, uuid.UUID, models.ContentStatus) (*models.Page, error) {
	return nil, nil
}
func (emptyPageStore) Delete(context.Context, uuid.UUID) (bool, error) { return false, nil }

// --- lead store fakes ---

type memInquiryStore struct {
	mu    sync.Mutex
	items []models.Inquiry
}

func (s *memInquiryStore) List(_ context.Context, status models.InquiryStatus) ([]models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Inquiry
	for _, q := range s.items {
		if status == "" || q.Status == status {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *memInquiryStore) Create(_ context.Context, q *models.Inquiry) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *q
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.items = append(s.items, created)
	return &created, nil
}

func (s *memInquiryStore) SetStatus(_ context.Context, id uuid.UUID, status models.InquiryStatus) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			q := s.items[i]
			return &q, nil
		}
	}
	return nil, nil
}

type memContactStore struct {
	mu    sync.Mutex
	items []models.Contact
}

func (s *memContactStore) List(_ context.Context, status models.ContactStatus) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Contact
	for _, c := range s.items {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memContactStore) Create(_ context.Context, c *models.Contact) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *c
	created.ID = uuid.New()
	s.items = append(s.items, created)
	return &created, nil
}

func (s *memContactStore) SetStatus(_ context.Context, id uuid.UUID, status models.ContactStatus) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			c := s.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

type memSubscriberStore struct {
	mu    sync.Mutex
	items []models.Subscriber
}

func (s *memSubscriberStore) List(context.Context) ([]models.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Subscriber(nil), s.items...), nil
}

func (s *memSubscriberStore) Upsert(_ context.Context, sub *models.Subscriber) (*models.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Email == sub.Email {
			s.items[i].Source = sub.Source
			s.items[i].UpdatedAt = time.Now()
			out := s.items[i]
			return &out, nil
		}
	}
	created := *sub
	created.ID = uuid.New()
	s.items = append(s.items, created)
	return &created, nil
}

type memPaymentStore struct {
	mu    sync.Mutex
	items []models.Payment
}

func (s *memPaymentStore) List(_ context.Context, campus models.Campus) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Payment
	for _, p := range s.items {
		if campus == "" || p.Campus == campus {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memPaymentStore) Create(_ context.Context, p *models.Payment) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *p
	created.ID = uuid.New()
	s.items = append(s.items, created)
	return &created, nil
}

// recordingNotifier captures sent notifications for assertions.
type recordingNotifier struct {
	mu       sync.Mutex
	subjects []string
	err      error
}

func (n *recordingNotifier) Send(_ context.Context, subject, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subjects = append(n.subjects, subject)
	return n.err
}

func (n *recordingNotifier) sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.subjects...)
}
