// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"sort"
	"time"

	"brookside/internal/models"
)

// Order is the deterministic presentation order of a result set.
type Order int

const (
	// OrderNewestFirst sorts by creation time descending.
	OrderNewestFirst Order = iota
	// OrderPinnedFirst floats pinned items to the top regardless of
	// age, newest-first within each group.
	OrderPinnedFirst
)

// ByNewest sorts items newest-first by their creation time. The sort is
// stable: equal timestamps keep the order the store returned them in.
func ByNewest[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[j]).Before(createdAt(items[i]))
	})
}

// SortUpdates orders campus updates pinned-first, then newest-first.
func SortUpdates(items []models.CampusUpdate) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsPinned != items[j].IsPinned {
			return items[i].IsPinned
		}
		return items[j].CreatedAt.Before(items[i].CreatedAt)
	})
}
