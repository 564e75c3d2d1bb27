package client

import (
	"encoding/json"

	"sports-tracker/internal/domain"
)

// FantasyPoints applies the view-side weighting formula to a flat stats
// record. The weights are presentation heuristics, unrelated to any official
// fantasy scoring rules:
//
//	nba: points*1 + assists*1.5 + rebounds*1.2
//	nfl: passingYards*0.04 + passingTD*4 + interceptions*(-2)
//	     + rushingYards*0.1 + rushingTD*6 + receivingYards*0.1 + receivingTD*6
//	mlb: homeRuns*4 + RBIs*1 + hits*0.5
func FantasyPoints(league domain.League, stats map[string]float64) float64 {
	switch league {
	case domain.LeagueNBA:
		return stats["points"]*1 + stats["assists"]*1.5 + stats["rebounds"]*1.2
	case domain.LeagueNFL:
		return stats["passingYards"]*0.04 + stats["passingTD"]*4 +
			stats["interceptions"]*-2 +
			stats["rushingYards"]*0.1 + stats["rushingTD"]*6 +
			stats["receivingYards"]*0.1 + stats["receivingTD"]*6
	case domain.LeagueMLB:
		return stats["homeRuns"]*4 + stats["RBIs"]*1 + stats["hits"]*0.5
	default:
		return 0
	}
}

// TeamPowerScore sums FantasyPoints across a roster.
func TeamPowerScore(league domain.League, players []domain.FantasyPlayer) float64 {
	var total float64
	for _, p := range players {
		total += FantasyPoints(league, numericStats(p))
	}
	return total
}

// numericStats extracts the numeric extras a roster entry carried over from
// its search result.
func numericStats(p domain.FantasyPlayer) map[string]float64 {
	stats := make(map[string]float64, len(p.Extra))
	for k, raw := range p.Extra {
		var v float64
		if err := json.Unmarshal(raw, &v); err == nil {
			stats[k] = v
		}
	}
	return stats
}
