package service

import (
	"math"
	"strings"
)

// Rounding contract for normalized records: rate stats keep one decimal,
// counting totals none, shooting percentages three.
func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round0(v float64) float64 { return math.Round(v) }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// seasonTotal = round(perGame * gamesPlayed). Providers expose per-game
// averages but not cumulative totals, so the total is derived.
func seasonTotal(perGame, gamesPlayed float64) float64 {
	return round0(perGame * gamesPlayed)
}

// pointsFromShooting = fgm*2 + fg3m*3 + ftm*1, the fallback when the
// provider omits a points field outright.
func pointsFromShooting(fgm, fg3m, ftm float64) float64 {
	return fgm*2 + fg3m*3 + ftm
}

// lastToken extracts the trimmed last token of a free-text name. Last-name
// search has a far better hit rate upstream than full-name search.
func lastToken(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

type namedCandidate interface {
	FullName() string
}

// pickCandidate prefers an exact case-insensitive full-name match and falls
// back to the first candidate in provider order. Ambiguous names resolve to
// an arbitrary one of them; that heuristic is the documented contract.
func pickCandidate[T namedCandidate](candidates []T, query string) T {
	want := strings.ToLower(strings.TrimSpace(query))
	for _, c := range candidates {
		if strings.ToLower(c.FullName()) == want {
			return c
		}
	}
	return candidates[0]
}
