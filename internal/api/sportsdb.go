package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"sports-tracker/internal/config"

	"github.com/valyala/fasthttp"
)

const sportsDBBaseURL = "https://www.thesportsdb.com/api/v1/json"

// SportsDBClient is the almanac fallback for soccer identity lookups.
// The free tier key "123" works without registration.
type SportsDBClient struct {
	apiKey  string
	BaseURL string
	client  *fasthttp.Client
}

func NewSportsDBClient(cfg *config.Config) *SportsDBClient {
	return &SportsDBClient{
		apiKey:  cfg.SportsDBKey,
		BaseURL: sportsDBBaseURL,
		client:  newHTTPClient(),
	}
}

// SearchPlayers looks a player up by name. The endpoint wants spaces as
// underscores.
func (c *SportsDBClient) SearchPlayers(ctx context.Context, name string) (*SportsDBPlayersResponse, error) {
	encoded := url.QueryEscape(strings.Join(strings.Fields(strings.TrimSpace(name)), "_"))
	u := fmt.Sprintf("%s/%s/searchplayers.php?p=%s", c.BaseURL, c.apiKey, encoded)
	return doGet[SportsDBPlayersResponse](ctx, c.client, "thesportsdb", u, "")
}

type SportsDBPlayersResponse struct {
	Player []SportsDBPlayer `json:"player"`
}

type SportsDBPlayer struct {
	Name     string `json:"strPlayer"`
	Team     string `json:"strTeam"`
	Position string `json:"strPosition"`
	Sport    string `json:"strSport"`
}
