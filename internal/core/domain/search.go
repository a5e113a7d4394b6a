package domain

import (
	"sort"
	"strings"
)

// MatchOptions configures room name matching.
type MatchOptions struct {
	// Exact requires the title to equal the query byte-for-byte
	// (case-sensitive). The default is case-insensitive substring
	// matching.
	Exact bool
}

// MatchRooms returns the rooms whose title matches the query, preserving
// input order.
func MatchRooms(rooms []Room, query string, opts MatchOptions) []Room {
	var matched []Room
	if opts.Exact {
		for _, r := range rooms {
			if r.Title == query {
				matched = append(matched, r)
			}
		}
		return matched
	}

	q := strings.ToLower(query)
	for _, r := range rooms {
		if strings.Contains(strings.ToLower(r.Title), q) {
			matched = append(matched, r)
		}
	}
	return matched
}

// SortByActivity orders rooms by most recent activity first, falling back
// to the creation timestamp for rooms without activity. The sort is stable,
// so ties keep their input order. The input slice is not modified.
func SortByActivity(rooms []Room) []Room {
	sorted := make([]Room, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveTimestamp().After(sorted[j].EffectiveTimestamp())
	})
	return sorted
}

// SortByTitle orders rooms alphabetically by title. Used for the full room
// dump when a search finds nothing. The input slice is not modified.
func SortByTitle(rooms []Room) []Room {
	sorted := make([]Room, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Title < sorted[j].Title
	})
	return sorted
}
