package domain

// League identifies one of the supported sports domains.
type League string

const (
	LeagueNBA    League = "nba"
	LeagueNFL    League = "nfl"
	LeagueMLB    League = "mlb"
	LeagueSoccer League = "soccer"
)

// FantasyLeagues is the set of leagues that accept roster entries.
var FantasyLeagues = []League{LeagueNBA, LeagueNFL, LeagueMLB}

func (l League) ValidFantasy() bool {
	for _, fl := range FantasyLeagues {
		if l == fl {
			return true
		}
	}
	return false
}

// NBAPlayerBase is the normalized base record for an NBA search.
// points/assists/rebounds are per-game averages, totalPoints a season total.
type NBAPlayerBase struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Points      float64 `json:"points"`
	Assists     float64 `json:"assists"`
	Rebounds    float64 `json:"rebounds"`
	TotalPoints float64 `json:"totalPoints"`
}

type NBAPlayerDetails struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Age       float64 `json:"age"`
	Minutes   float64 `json:"minutes"`
	FGPct     float64 `json:"fg_pct"`
	FG3Pct    float64 `json:"fg3_pct"`
	FTPct     float64 `json:"ft_pct"`
	Steals    float64 `json:"steals"`
	Blocks    float64 `json:"blocks"`
	Turnovers float64 `json:"turnovers"`
}

// NFLStats holds season totals summed from per-game rows.
type NFLStats struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Team          string  `json:"team"`
	Touchdowns    float64 `json:"touchdowns"`
	Yards         float64 `json:"yards"`
	Interceptions float64 `json:"interceptions"`
}

type NFLExpandedStats struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Age             float64 `json:"age"`
	RushingYards    float64 `json:"rushingYards"`
	RushingAttempts float64 `json:"rushingAttempts"`
	RushingTD       float64 `json:"rushingTD"`
	YardsPerRush    float64 `json:"yardsPerRush"`
	ReceivingYards  float64 `json:"receivingYards"`
	Receptions      float64 `json:"receptions"`
	ReceivingTD     float64 `json:"receivingTD"`
	Fumbles         float64 `json:"fumbles"`
}

type MLBStats struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Team           string  `json:"team"`
	HomeRuns       float64 `json:"homeRuns"`
	BattingAverage float64 `json:"battingAverage"`
	RBIs           float64 `json:"RBIs"`
}

type MLBExpandedStats struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Team           string  `json:"team"`
	Age            float64 `json:"age"`
	Games          float64 `json:"games"`
	Hits           float64 `json:"hits"`
	Doubles        float64 `json:"doubles"`
	Triples        float64 `json:"triples"`
	HomeRuns       float64 `json:"homeRuns"`
	RBIs           float64 `json:"RBIs"`
	Walks          float64 `json:"walks"`
	Strikeouts     float64 `json:"strikeouts"`
	BattingAverage float64 `json:"battingAverage"`
	OBP            float64 `json:"obp"`
	SLG            float64 `json:"slg"`
	OPS            float64 `json:"ops"`
}

type SoccerPlayerStats struct {
	Name        string `json:"name"`
	Team        string `json:"team"`
	Position    string `json:"position"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	YellowCards int    `json:"yellowCards"`
}

// SoccerStatEstimate is the stats-only bundle the estimation model returns.
type SoccerStatEstimate struct {
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	YellowCards int `json:"yellowCards"`
}
