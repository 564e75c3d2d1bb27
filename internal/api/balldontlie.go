package api

import (
	"context"
	"fmt"
	"net/url"

	"sports-tracker/internal/config"
	"sports-tracker/internal/constants"

	"github.com/valyala/fasthttp"
)

const balldontlieBaseURL = "https://api.balldontlie.io"

// BDLClient talks to the balldontlie family of stats APIs (NBA, NFL, MLB).
// Two endpoints per league: player search by name, season statistics by id.
type BDLClient struct {
	apiKey  string
	BaseURL string
	client  *fasthttp.Client
}

func NewBDLClient(cfg *config.Config) *BDLClient {
	return &BDLClient{
		apiKey:  cfg.BalldontlieKey,
		BaseURL: balldontlieBaseURL,
		client:  newHTTPClient(),
	}
}

func (c *BDLClient) auth() string {
	return fmt.Sprintf("Bearer %s", c.apiKey)
}

func (c *BDLClient) SearchNBAPlayers(ctx context.Context, query string) (*NBAPlayersResponse, error) {
	u := fmt.Sprintf("%s/nba/v1/players?search=%s&per_page=%d",
		c.BaseURL, url.QueryEscape(query), constants.SearchPageSize)
	return doGet[NBAPlayersResponse](ctx, c.client, "balldontlie", u, c.auth())
}

func (c *BDLClient) GetNBASeasonAverages(ctx context.Context, playerID int) (*NBASeasonAveragesResponse, error) {
	u := fmt.Sprintf("%s/nba/v1/season_averages/general?season=%d&season_type=regular&type=base&player_ids[]=%d",
		c.BaseURL, constants.Season, playerID)
	return doGet[NBASeasonAveragesResponse](ctx, c.client, "balldontlie", u, c.auth())
}

func (c *BDLClient) SearchNFLPlayers(ctx context.Context, query string) (*NFLPlayersResponse, error) {
	u := fmt.Sprintf("%s/nfl/v1/players?search=%s&per_page=%d",
		c.BaseURL, url.QueryEscape(query), constants.SearchPageSize)
	return doGet[NFLPlayersResponse](ctx, c.client, "balldontlie", u, c.auth())
}

// GetNFLGameStats returns per-game rows for the season; totals are summed
// by the caller because the provider has no cumulative endpoint here.
func (c *BDLClient) GetNFLGameStats(ctx context.Context, playerID int) (*NFLGameStatsResponse, error) {
	u := fmt.Sprintf("%s/nfl/v1/stats?player_ids[]=%d&seasons[]=%d&per_page=%d",
		c.BaseURL, playerID, constants.Season, constants.NFLStatsPageSize)
	return doGet[NFLGameStatsResponse](ctx, c.client, "balldontlie", u, c.auth())
}

func (c *BDLClient) GetNFLSeasonStats(ctx context.Context, playerID int) (*NFLSeasonStatsResponse, error) {
	u := fmt.Sprintf("%s/nfl/v1/season_stats?player_ids[]=%d&season=%d",
		c.BaseURL, playerID, constants.Season)
	return doGet[NFLSeasonStatsResponse](ctx, c.client, "balldontlie", u, c.auth())
}

func (c *BDLClient) SearchMLBPlayers(ctx context.Context, query string) (*MLBPlayersResponse, error) {
	u := fmt.Sprintf("%s/mlb/v1/players?search=%s&per_page=%d",
		c.BaseURL, url.QueryEscape(query), constants.SearchPageSize)
	return doGet[MLBPlayersResponse](ctx, c.client, "balldontlie", u, c.auth())
}

func (c *BDLClient) GetMLBSeasonStats(ctx context.Context, playerID int) (*MLBSeasonStatsResponse, error) {
	u := fmt.Sprintf("%s/mlb/v1/season_stats?player_ids[]=%d&season=%d",
		c.BaseURL, playerID, constants.Season)
	return doGet[MLBSeasonStatsResponse](ctx, c.client, "balldontlie", u, c.auth())
}

type NBAPlayersResponse struct {
	Data []NBAPlayer `json:"data"`
}

type NBAPlayer struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      struct {
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
}

func (p NBAPlayer) FullName() string {
	return p.FirstName + " " + p.LastName
}

type NBASeasonAveragesResponse struct {
	Data []struct {
		Stats NBASeasonStats `json:"stats"`
	} `json:"data"`
}

type NBASeasonStats struct {
	Pts    float64 `json:"pts"`
	Ast    float64 `json:"ast"`
	Reb    float64 `json:"reb"`
	GP     float64 `json:"gp"`
	FGM    float64 `json:"fgm"`
	FG3M   float64 `json:"fg3m"`
	FTM    float64 `json:"ftm"`
	Age    float64 `json:"age"`
	Min    float64 `json:"min"`
	FGPct  float64 `json:"fg_pct"`
	FG3Pct float64 `json:"fg3_pct"`
	FTPct  float64 `json:"ft_pct"`
	Stl    float64 `json:"stl"`
	Blk    float64 `json:"blk"`
	Tov    float64 `json:"tov"`
}

type NFLPlayersResponse struct {
	Data []NFLPlayer `json:"data"`
}

type NFLPlayer struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       float64 `json:"age"`
	Team      struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
}

func (p NFLPlayer) FullName() string {
	return p.FirstName + " " + p.LastName
}

type NFLGameStatsResponse struct {
	Data []NFLGameStat `json:"data"`
}

// NFLGameStat carries both spellings the provider has used for the same
// counters; pick() resolves whichever one is set.
type NFLGameStat struct {
	PassingTouchdowns    float64 `json:"passing_touchdowns"`
	PassingTDs           float64 `json:"passing_tds"`
	RushingTouchdowns    float64 `json:"rushing_touchdowns"`
	RushingTDs           float64 `json:"rushing_tds"`
	ReceivingTouchdowns  float64 `json:"receiving_touchdowns"`
	ReceivingTDs         float64 `json:"receiving_tds"`
	PassingYards         float64 `json:"passing_yards"`
	PassingYds           float64 `json:"passing_yds"`
	RushingYards         float64 `json:"rushing_yards"`
	RushingYds           float64 `json:"rushing_yds"`
	ReceivingYards       float64 `json:"receiving_yards"`
	ReceivingYds         float64 `json:"receiving_yds"`
	PassingInterceptions float64 `json:"passing_interceptions"`
	Interceptions        float64 `json:"interceptions"`
}

type NFLSeasonStatsResponse struct {
	Data []NFLSeasonStat `json:"data"`
}

type NFLSeasonStat struct {
	RushingYards        float64 `json:"rushing_yards"`
	RushingAttempts     float64 `json:"rushing_attempts"`
	RushingTouchdowns   float64 `json:"rushing_touchdowns"`
	YardsPerRushAttempt float64 `json:"yards_per_rush_attempt"`
	ReceivingYards      float64 `json:"receiving_yards"`
	Receptions          float64 `json:"receptions"`
	ReceivingTouchdowns float64 `json:"receiving_touchdowns"`
	RushingFumbles      float64 `json:"rushing_fumbles"`
}

type MLBPlayersResponse struct {
	Data []MLBPlayer `json:"data"`
}

type MLBPlayer struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       float64 `json:"age"`
	Team      struct {
		Name string `json:"name"`
	} `json:"team"`
}

func (p MLBPlayer) FullName() string {
	return p.FirstName + " " + p.LastName
}

type MLBSeasonStatsResponse struct {
	Data []MLBSeasonStat `json:"data"`
}

type MLBSeasonStat struct {
	TeamName        string  `json:"team_name"`
	GamesPlayed     float64 `json:"games_played"`
	BattingHR       float64 `json:"batting_hr"`
	BattingAvg      float64 `json:"batting_avg"`
	BattingRBI      float64 `json:"batting_rbi"`
	BattingHits     float64 `json:"batting_h"`
	BattingDoubles  float64 `json:"batting_2b"`
	BattingTriples  float64 `json:"batting_3b"`
	BattingWalks    float64 `json:"batting_bb"`
	BattingStrikeouts float64 `json:"batting_so"`
	BattingOBP      float64 `json:"batting_obp"`
	BattingSLG      float64 `json:"batting_slg"`
	BattingOPS      float64 `json:"batting_ops"`
}
