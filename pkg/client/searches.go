package client

import (
	"encoding/json"
	"strings"

	"sports-tracker/internal/constants"
)

// RecentSearches keeps the per-league search history: most recent first,
// case-insensitive dedup, capped at five terms.
type RecentSearches struct {
	store Storage
}

func NewRecentSearches(store Storage) *RecentSearches {
	return &RecentSearches{store: store}
}

func searchKey(league string) string {
	return league + "_recent_searches"
}

// Save puts term at the front. A term already present (in any casing) moves
// to the front rather than duplicating.
func (r *RecentSearches) Save(league, term string) {
	history := r.List(league)

	filtered := make([]string, 0, len(history)+1)
	filtered = append(filtered, term)
	for _, q := range history {
		if !strings.EqualFold(q, term) {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) > constants.RecentSearchLimit {
		filtered = filtered[:constants.RecentSearchLimit]
	}

	data, err := json.Marshal(filtered)
	if err != nil {
		return
	}
	r.store.Set(searchKey(league), string(data))
}

func (r *RecentSearches) List(league string) []string {
	raw, ok := r.store.Get(searchKey(league))
	if !ok {
		return nil
	}
	var history []string
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil
	}
	return history
}

func (r *RecentSearches) Clear(league string) {
	r.store.Remove(searchKey(league))
}
