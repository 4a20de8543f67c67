// fakes_test.go provides in-memory store fakes so the visibility,
// ordering, and lifecycle rules can be tested without a database. The
// fakes interpret the same Filter the SQL stores do.
package content

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"brookside/internal/models"
)

// fakeClock hands out strictly increasing timestamps so creation order
// is observable in ordering assertions.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// --- Blogs ---

type fakeBlogStore struct {
	mu    sync.Mutex
	items []models.Blog
	clock *fakeClock
}

func newFakeBlogStore(clock *fakeClock) *fakeBlogStore {
	return &fakeBlogStore{clock: clock}
}

func (s *fakeBlogStore) List(_ context.Context, f Filter) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Blog
	for _, b := range s.items {
		if f.MatchStatus(b.Status) && f.MatchCampus(b.Campus) {
			out = append(out, b)
		}
	}
	ByNewest(out, func(b models.Blog) time.Time { return b.CreatedAt })
	return out, nil
}

func (s *fakeBlogStore) FindByID(_ context.Context, id uuid.UUID) (*models.Blog, error) {
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

func (s *fakeBlogStore) FindBySlug(_ context.Context, slug string) (*models.Blog, error) {
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

func (s *fakeBlogStore) Create(_ context.Context, b *models.Blog) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.Slug == b.Slug {
			return nil, ErrSlugTaken
		}
	}
	created := *b
	created.ID = uuid.New()
	created.CreatedAt = s.clock.next()
	created.UpdatedAt = created.CreatedAt
	s.items = append(s.items, created)
	return &created, nil
}

func (s *fakeBlogStore) Update(_ context.Context, b *models.Blog) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.Slug == b.Slug && existing.ID != b.ID {
			return nil, ErrSlugTaken
		}
	}
	for i := range s.items {
		if s.items[i].ID == b.ID {
			updated := *b
			updated.CreatedAt = s.items[i].CreatedAt
			updated.UpdatedAt = s.clock.next()
			s.items[i] = updated
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *fakeBlogStore) SetStatus(_ context.Context, id uuid.UUID, status models.ContentStatus) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			s.items[i].UpdatedAt = s.clock.next()
			b := s.items[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (s *fakeBlogStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
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

// --- Announcements ---

type fakeAnnouncementStore struct {
	mu    sync.Mutex
	items []models.Announcement
	clock *fakeClock
}

func newFakeAnnouncementStore(clock *fakeClock) *fakeAnnouncementStore {
	return &fakeAnnouncementStore{clock: clock}
}

func (s *fakeAnnouncementStore) List(_ context.Context, f Filter) ([]models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Announcement
	for _, a := range s.items {
		if f.MatchStatus(a.Status) && f.MatchCampus(a.Campus) && f.MatchExpiry(a.ExpiresAt) {
			out = append(out, a)
		}
	}
	ByNewest(out, func(a models.Announcement) time.Time { return a.CreatedAt })
	return out, nil
}

func (s *fakeAnnouncementStore) FindByID(_ context.Context, id uuid.UUID) (*models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			a := s.items[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *fakeAnnouncementStore) Create(_ context.Context, a *models.Announcement) (*models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *a
	created.ID = uuid.New()
	created.CreatedAt = s.clock.next()
	created.UpdatedAt = created.CreatedAt
	s.items = append(s.items, created)
	return &created, nil
}

func (s *fakeAnnouncementStore) Update(_ context.Context, a *models.Announcement) (*models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == a.ID {
			updated := *a
			updated.CreatedAt = s.items[i].CreatedAt
			updated.UpdatedAt = s.clock.next()
			s.items[i] = updated
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *fakeAnnouncementStore) SetStatus(_ context.Context, id uuid.UUID, status models.ContentStatus) (*models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			s.items[i].UpdatedAt = s.clock.next()
			a := s.items[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *fakeAnnouncementStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
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

// --- Campus updates ---

type fakeUpdateStore struct {
	mu    sync.Mutex
	items []models.CampusUpdate
	clock *fakeClock
}

func newFakeUpdateStore(clock *fakeClock) *fakeUpdateStore {
	return &fakeUpdateStore{clock: clock}
}

func (s *fakeUpdateStore) List(_ context.Context, f Filter) ([]models.CampusUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.CampusUpdate
	for _, u := range s.items {
		if f.MatchStatus(u.Status) && f.MatchCampus(u.Campus) && f.MatchType(u.Type) {
			out = append(out, u)
		}
	}
	if f.Order == OrderPinnedFirst {
		SortUpdates(out)
	} else {
		ByNewest(out, func(u models.CampusUpdate) time.Time { return u.CreatedAt })
	}
	return out, nil
}

func (s *fakeUpdateStore) FindByID(_ context.Context, id uuid.UUID) (*models.CampusUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			u := s.items[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUpdateStore) Create(_ context.Context, u *models.CampusUpdate) (*models.CampusUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *u
	created.ID = uuid.New()
	created.CreatedAt = s.clock.next()
	created.UpdatedAt = created.CreatedAt
	s.items = append(s.items, created)
	return &created, nil
}

func (s *fakeUpdateStore) Update(_ context.Context, u *models.CampusUpdate) (*models.CampusUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == u.ID {
			updated := *u
			updated.CreatedAt = s.items[i].CreatedAt
			updated.UpdatedAt = s.clock.next()
			s.items[i] = updated
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *fakeUpdateStore) SetStatus(_ context.Context, id uuid.UUID, status models.ContentStatus) (*models.CampusUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			s.items[i].UpdatedAt = s.clock.next()
			u := s.items[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUpdateStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
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

// --- Pages ---

type fakePageStore struct {
	mu    sync.Mutex
	items []models.Page
	clock *fakeClock
}

func newFakePageStore(clock *fakeClock) *fakePageStore {
	return &fakePageStore{clock: clock}
}

func (s *fakePageStore) List(_ context.Context, f Filter) ([]models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Page
	for _, p := range s.items {
		if f.MatchStatus(p.Status) {
			out = append(out, p)
		}
	}
	ByNewest(out, func(p models.Page) time.Time { return p.CreatedAt })
	return out, nil
}

func (s *fakePageStore) FindByID(_ context.Context, id uuid.UUID) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *fakePageStore) FindBySlug(_ context.Context, slug string) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Slug == slug {
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *fakePageStore) Create(_ context.Context, p *models.Page) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.Slug == p.Slug {
			return nil, ErrSlugTaken
		}
	}
	created := *p
	created.ID = uuid.New()
	created.CreatedAt = s.clock.next()
	created.UpdatedAt = created.CreatedAt
	s.items = append(s.items, created)
	return &created, nil
}

func (s *fakePageStore) Update(_ context.Context, p *models.Page) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.Slug == p.Slug && existing.ID != p.ID {
			return nil, ErrSlugTaken
		}
	}
	for i := range s.items {
		if s.items[i].ID == p.ID {
			updated := *p
			updated.CreatedAt = s.items[i].CreatedAt
			updated.UpdatedAt = s.clock.next()
			s.items[i] = updated
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *fakePageStore) SetStatus(_ context.Context, id uuid.UUID, status models.ContentStatus) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			s.items[i].UpdatedAt = s.clock.next()
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *fakePageStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
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

// newTestService wires a Service over fresh fakes sharing one clock.
func newTestService() (*Service, *fakeClock) {
	clock := newFakeClock()
	svc := NewService(
		newFakeBlogStore(clock),
		newFakeAnnouncementStore(clock),
		newFakeUpdateStore(clock),
		newFakePageStore(clock),
	)
	return svc, clock
}

func campusPtr(c models.Campus) *models.Campus { return &c }
