package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

// Season is the current tracked season across every provider.
const Season = 2024

const (
	// SearchPageSize bounds the candidate list returned by a name search.
	SearchPageSize = 25

	// NFLStatsPageSize must cover a full season of per-game rows.
	NFLStatsPageSize = 100
)

const (
	PredictionModel = "gpt-4o-mini"

	// RecentSearchLimit caps the client-side recent search history.
	RecentSearchLimit = 5
)
