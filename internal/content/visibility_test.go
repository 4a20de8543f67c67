package content

import (
	"errors"
	"testing"
	"time"

	"brookside/internal/models"
)

func TestBlogFilterPublic(t *testing.T) {
	westlands := models.CampusWestlands

	f, err := BlogFilter(Public(&westlands), ListQuery{})
	if err != nil {
		t.Fatalf("BlogFilter: %v", err)
	}

	if f.Status == nil || *f.Status != models.ContentStatusPublished {
		t.Error("public filter must require published status")
	}
	if f.Campus == nil || *f.Campus != models.CampusWestlands {
		t.Error("public filter must carry the requested campus")
	}
	if !f.IncludeAll {
		t.Error("public campus filter must also match campus 'all'")
	}

	// Campus matching: own campus and 'all' pass, the other campus does not.
	if !f.MatchCampus(models.CampusWestlands) {
		t.Error("westlands item should match westlands query")
	}
	if !f.MatchCampus(models.CampusAll) {
		t.Error("'all' item should match westlands query")
	}
	if f.MatchCampus(models.CampusRedhill) {
		t.Error("redhill item must not match westlands query")
	}
}

func TestBlogFilterPublicNoCampus(t *testing.T) {
	f, err := BlogFilter(Public(nil), ListQuery{})
	if err != nil {
		t.Fatalf("BlogFilter: %v", err)
	}
	if f.Campus != nil {
		t.Error("absent campus should skip the campus constraint")
	}
	if f.Status == nil || *f.Status != models.ContentStatusPublished {
		t.Error("published constraint must still apply")
	}
}

func TestBlogFilterInvalidCampus(t *testing.T) {
	bogus := models.Campus("kilimani")
	_, err := BlogFilter(Public(&bogus), ListQuery{})

	var verr *ValidationError
	if err == nil {
		t.Fatal("expected error for invalid campus")
	}
	if !errors.As(err, &verr) || verr.Field != "campus" {
		t.Errorf("expected campus validation error, got %v", err)
	}
}

func TestBlogFilterAdmin(t *testing.T) {
	f, err := BlogFilter(Admin(), ListQuery{})
	if err != nil {
		t.Fatalf("BlogFilter: %v", err)
	}
	if f.Status != nil {
		t.Error("admin sees drafts and published alike")
	}
	if f.Campus != nil {
		t.Error("admin without narrowing sees all campuses")
	}

	// Admin narrowing is an exact match, not widened to 'all'.
	redhill := models.CampusRedhill
	f, err = BlogFilter(Viewer{IsAdmin: true, Campus: &redhill}, ListQuery{})
	if err != nil {
		t.Fatalf("BlogFilter: %v", err)
	}
	if f.IncludeAll {
		t.Error("admin narrowing must not widen to campus 'all'")
	}
	if f.MatchCampus(models.CampusAll) {
		t.Error("admin narrowing to redhill must exclude 'all' items")
	}
}

func TestAnnouncementFilterExpiry(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	f, err := AnnouncementFilter(Public(nil), now, ListQuery{})
	if err != nil {
		t.Fatalf("AnnouncementFilter: %v", err)
	}
	if f.ActiveAt == nil || !f.ActiveAt.Equal(now) {
		t.Fatal("public filter must carry the expiry cutoff")
	}

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	if f.MatchExpiry(&past) {
		t.Error("expired announcement must not match")
	}
	if !f.MatchExpiry(&future) {
		t.Error("future expiry should match")
	}
	if !f.MatchExpiry(&now) {
		t.Error("expiry exactly at now should still match")
	}
	if !f.MatchExpiry(nil) {
		t.Error("nil expiry means never expires")
	}

	// Admins see expired announcements.
	f, err = AnnouncementFilter(Admin(), now, ListQuery{})
	if err != nil {
		t.Fatalf("AnnouncementFilter: %v", err)
	}
	if f.ActiveAt != nil {
		t.Error("admin filter must not hide expired announcements")
	}
}

func TestUpdateFilterPublicRequiresCampus(t *testing.T) {
	_, err := UpdateFilter(Public(nil), ListQuery{})
	if err == nil {
		t.Fatal("public campus-update query without campus must be rejected")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "campus" {
		t.Errorf("expected campus validation error, got %v", err)
	}
}

func TestUpdateFilterPublic(t *testing.T) {
	redhill := models.CampusRedhill
	newsType := models.UpdateTypeNews

	f, err := UpdateFilter(Public(&redhill), ListQuery{Type: &newsType})
	if err != nil {
		t.Fatalf("UpdateFilter: %v", err)
	}
	if f.Order != OrderPinnedFirst {
		t.Error("campus updates must order pinned-first")
	}
	if f.Status == nil || *f.Status != models.ContentStatusPublished {
		t.Error("public filter must require published status")
	}
	if !f.MatchCampus(models.CampusAll) {
		t.Error("'all' update should show on every campus page")
	}
	if !f.MatchType(models.UpdateTypeNews) || f.MatchType(models.UpdateTypeNotice) {
		t.Error("type narrowing applied incorrectly")
	}
}

func TestUpdateFilterAdminCampusAll(t *testing.T) {
	all := models.CampusAll
	f, err := UpdateFilter(Viewer{IsAdmin: true, Campus: &all}, ListQuery{})
	if err != nil {
		t.Fatalf("UpdateFilter: %v", err)
	}
	// For admins "all" means no narrowing, so every campus matches.
	if f.Campus != nil {
		t.Error("admin campus 'all' should mean no campus constraint")
	}
}

func TestUpdateFilterInvalidType(t *testing.T) {
	bogus := models.UpdateType("gossip")
	westlands := models.CampusWestlands
	_, err := UpdateFilter(Public(&westlands), ListQuery{Type: &bogus})
	if err == nil {
		t.Fatal("invalid update type must be rejected")
	}
}

func TestPageFilter(t *testing.T) {
	f, err := PageFilter(Admin(), ListQuery{})
	if err != nil {
		t.Fatalf("PageFilter: %v", err)
	}
	if f.Status != nil {
		t.Error("admin page listing includes drafts")
	}

	f, err = PageFilter(Public(nil), ListQuery{})
	if err != nil {
		t.Fatalf("PageFilter: %v", err)
	}
	if f.Status == nil || *f.Status != models.ContentStatusPublished {
		t.Error("public page filter must require published status")
	}
}
