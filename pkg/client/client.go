// Package client is the consumer-side companion to the backend: an API
// client for the JSON surface plus the local storage, recent-search,
// session and scoring helpers the views rely on. Its signatures share the
// record types in internal/domain, so the package is usable from this
// module's own commands and tests but not from other modules.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"sports-tracker/internal/domain"

	"github.com/valyala/fasthttp"
)

// APIError is a non-success response from the backend, carrying the
// message string the UI renders inline.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client calls the aggregation backend's JSON surface.
type Client struct {
	BaseURL string

	// User stamps fantasy requests; empty means the shared guest roster.
	User string

	http *fasthttp.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		http: &fasthttp.Client{
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

func (c *Client) NBAPlayer(ctx context.Context, name string) (*domain.NBAPlayerBase, error) {
	var out domain.NBAPlayerBase
	if err := c.do(ctx, fasthttp.MethodGet, "/api/nba/players/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) NBADetails(ctx context.Context, name string) (*domain.NBAPlayerDetails, error) {
	var out domain.NBAPlayerDetails
	if err := c.do(ctx, fasthttp.MethodGet, "/api/nba/details/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) NFLPlayer(ctx context.Context, name string) (*domain.NFLStats, error) {
	var out domain.NFLStats
	if err := c.do(ctx, fasthttp.MethodGet, "/api/nfl/players/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) NFLDetails(ctx context.Context, name string) (*domain.NFLExpandedStats, error) {
	var out domain.NFLExpandedStats
	if err := c.do(ctx, fasthttp.MethodGet, "/api/nfl/details/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MLBPlayer(ctx context.Context, name string) (*domain.MLBStats, error) {
	var out domain.MLBStats
	if err := c.do(ctx, fasthttp.MethodGet, "/api/mlb/players/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MLBDetails(ctx context.Context, name string) (*domain.MLBExpandedStats, error) {
	var out domain.MLBExpandedStats
	if err := c.do(ctx, fasthttp.MethodGet, "/api/mlb/details/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SoccerPlayer(ctx context.Context, name string) (*domain.SoccerPlayerStats, error) {
	var out domain.SoccerPlayerStats
	if err := c.do(ctx, fasthttp.MethodGet, "/api/soccer/players/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Predict posts stats as-is; the server accepts any JSON object there, so a
// whole search record (string fields included) is a valid argument.
func (c *Client) Predict(ctx context.Context, league, playerName string, stats interface{}) (string, error) {
	body := map[string]interface{}{
		"league":     league,
		"playerName": playerName,
		"stats":      stats,
	}
	var out struct {
		Prediction string `json:"prediction"`
	}
	if err := c.do(ctx, fasthttp.MethodPost, "/api/chat/predict", body, &out); err != nil {
		return "", err
	}
	return out.Prediction, nil
}

type fantasyResponse struct {
	Teams map[domain.League][]domain.FantasyPlayer `json:"teams"`
}

func (c *Client) FantasyTeam(ctx context.Context) (map[domain.League][]domain.FantasyPlayer, error) {
	var out fantasyResponse
	if err := c.do(ctx, fasthttp.MethodGet, "/api/fantasy/team", nil, &out); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

func (c *Client) AddFantasyPlayer(ctx context.Context, league domain.League, player domain.FantasyPlayer) (map[domain.League][]domain.FantasyPlayer, error) {
	body := map[string]interface{}{
		"league": league,
		"player": player,
	}
	var out fantasyResponse
	if err := c.do(ctx, fasthttp.MethodPost, "/api/fantasy/add", body, &out); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

func (c *Client) RemoveFantasyPlayer(ctx context.Context, league domain.League, playerID int) (map[domain.League][]domain.FantasyPlayer, error) {
	path := fmt.Sprintf("/api/fantasy/remove/%s/%d", league, playerID)
	var out fantasyResponse
	if err := c.do(ctx, fasthttp.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

func (c *Client) ClearFantasyTeam(ctx context.Context, league domain.League) (map[domain.League][]domain.FantasyPlayer, error) {
	var out fantasyResponse
	if err := c.do(ctx, fasthttp.MethodDelete, "/api/fantasy/clear/"+string(league), nil, &out); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.BaseURL + path)
	req.Header.SetMethod(method)
	if c.User != "" {
		req.Header.Set("X-Fantasy-User", c.User)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.Do(req, resp)
	}
	if err != nil {
		return err
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode()}
		var msg struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(resp.Body(), &msg); jsonErr == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(resp.Body(), out)
}
