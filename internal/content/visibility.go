// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"time"

	"brookside/internal/models"
)

// ListQuery carries the optional narrowing filters a caller may supply
// alongside the viewer context. Status narrowing only applies to admin
// queries; type narrowing only applies to campus updates.
type ListQuery struct {
	Status *models.ContentStatus
	Type   *models.UpdateType
}

// BlogFilter builds the predicate selecting the blogs v may see.
// Public viewers get published items matching their campus (or campus
// "all"); an absent campus simply skips the campus constraint.
func BlogFilter(v Viewer, q ListQuery) (Filter, error) {
	f := Filter{Order: OrderNewestFirst}

	campus, err := viewerCampus(v)
	if err != nil {
		return Filter{}, err
	}

	if v.IsAdmin {
		if q.Status != nil {
			if !q.Status.Valid() {
				return Filter{}, errInvalid("status")
			}
			f.Status = q.Status
		}
		f.Campus = campus
		return f, nil
	}

	published := models.ContentStatusPublished
	f.Status = &published
	if campus != nil {
		f.Campus = campus
		f.IncludeAll = true
	}
	return f, nil
}

// AnnouncementFilter builds the predicate selecting the announcements
// v may see at instant now. Expired announcements are hidden from the
// public but remain visible to administrators.
func AnnouncementFilter(v Viewer, now time.Time, q ListQuery) (Filter, error) {
	f, err := BlogFilter(v, q)
	if err != nil {
		return Filter{}, err
	}
	if !v.IsAdmin {
		f.ActiveAt = &now
	}
	return f, nil
}

// UpdateFilter builds the predicate selecting the campus updates v may
// see. Campus is mandatory for public viewers: updates feed a single
// campus-specific page and are never served as a combined feed. For
// admins, a campus of "all" means no narrowing at all.
func UpdateFilter(v Viewer, q ListQuery) (Filter, error) {
	f := Filter{Order: OrderPinnedFirst}

	if q.Type != nil {
		if !q.Type.Valid() {
			return Filter{}, errInvalid("type")
		}
		f.Type = q.Type
	}

	campus, err := viewerCampus(v)
	if err != nil {
		return Filter{}, err
	}

	if v.IsAdmin {
		if q.Status != nil {
			if !q.Status.Valid() {
				return Filter{}, errInvalid("status")
			}
			f.Status = q.Status
		}
		if campus != nil && *campus != models.CampusAll {
			f.Campus = campus
		}
		return f, nil
	}

	if campus == nil {
		return Filter{}, errRequired("campus")
	}

	published := models.ContentStatusPublished
	f.Status = &published
	f.Campus = campus
	f.IncludeAll = true
	return f, nil
}

// PageFilter builds the predicate for admin page listings. Pages have
// no campus scope and no public listing — public access is by slug only.
func PageFilter(v Viewer, q ListQuery) (Filter, error) {
	f := Filter{Order: OrderNewestFirst}
	if v.IsAdmin {
		if q.Status != nil {
			if !q.Status.Valid() {
				return Filter{}, errInvalid("status")
			}
			f.Status = q.Status
		}
		return f, nil
	}
	published := models.ContentStatusPublished
	f.Status = &published
	return f, nil
}

// viewerCampus validates the viewer's campus value. A requested campus
// outside the enum is rejected rather than silently matching nothing —
// or worse, accidentally behaving like "all".
func viewerCampus(v Viewer) (*models.Campus, error) {
	if v.Campus == nil {
		return nil, nil
	}
	if !v.Campus.Valid() {
		return nil, errInvalid("campus")
	}
	return v.Campus, nil
}
