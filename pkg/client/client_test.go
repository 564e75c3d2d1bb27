package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sports-tracker/internal/domain"
	"sports-tracker/internal/repository"
	"sports-tracker/internal/server"

	"github.com/rs/zerolog"
)

type fakeNBA struct{}

func (fakeNBA) BaseStats(ctx context.Context, name string) (*domain.NBAPlayerBase, error) {
	if name != "Curry" {
		return nil, domain.ErrPlayerNotFound
	}
	return &domain.NBAPlayerBase{ID: 115, Name: "Stephen Curry", Team: "Golden State Warriors", Points: 24.5, TotalPoints: 1715}, nil
}

func (fakeNBA) Details(ctx context.Context, name string) (*domain.NBAPlayerDetails, error) {
	return &domain.NBAPlayerDetails{ID: 115, Name: "Stephen Curry", FGPct: 0.448}, nil
}

type fakeNFL struct{}

func (fakeNFL) BaseStats(ctx context.Context, name string) (*domain.NFLStats, error) {
	return &domain.NFLStats{ID: 77, Name: "Josh Allen", Team: "BUF", Touchdowns: 43}, nil
}

func (fakeNFL) Details(ctx context.Context, name string) (*domain.NFLExpandedStats, error) {
	return &domain.NFLExpandedStats{ID: 77, Name: "Josh Allen"}, nil
}

type fakeMLB struct{}

func (fakeMLB) BaseStats(ctx context.Context, name string) (*domain.MLBStats, error) {
	return &domain.MLBStats{ID: 30, Name: "Aaron Judge", HomeRuns: 58}, nil
}

func (fakeMLB) Details(ctx context.Context, name string) (*domain.MLBExpandedStats, error) {
	return &domain.MLBExpandedStats{ID: 30, Name: "Aaron Judge"}, nil
}

type fakeSoccer struct{}

func (fakeSoccer) PlayerStats(ctx context.Context, name string) (*domain.SoccerPlayerStats, error) {
	return &domain.SoccerPlayerStats{Name: "Mohamed Salah", Team: "Liverpool", Goals: 29}, nil
}

type fakePredictor struct{}

func (fakePredictor) Predict(ctx context.Context, league, playerName string, stats map[string]json.RawMessage) (string, error) {
	return "- keeps scoring", nil
}

func newTestBackend(t *testing.T) *Client {
	t.Helper()
	h := server.NewHandler(fakeNBA{}, fakeNFL{}, fakeMLB{}, fakeSoccer{}, fakePredictor{},
		repository.NewMemoryRosterStore(zerolog.Nop()), zerolog.Nop())
	ts := httptest.NewServer(server.NewRouter(h))
	t.Cleanup(ts.Close)
	return New(ts.URL)
}

func TestClientNBAPlayer(t *testing.T) {
	c := newTestBackend(t)

	got, err := c.NBAPlayer(context.Background(), "Curry")
	if err != nil {
		t.Fatalf("NBAPlayer: %v", err)
	}
	if got.Name != "Stephen Curry" || got.TotalPoints != 1715 {
		t.Errorf("NBAPlayer = %+v", got)
	}
}

func TestClientNotFound(t *testing.T) {
	c := newTestBackend(t)

	_, err := c.NBAPlayer(context.Background(), "Nobody")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", apiErr.Status)
	}
	if apiErr.Message != "Player not found or no stats available" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestClientPredict(t *testing.T) {
	c := newTestBackend(t)

	got, err := c.Predict(context.Background(), "nba", "Stephen Curry", map[string]float64{"points": 24.5})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got != "- keeps scoring" {
		t.Errorf("Predict = %q", got)
	}

	// A full record, string fields and all, is accepted end to end.
	record := domain.NBAPlayerBase{ID: 115, Name: "Stephen Curry", Team: "Golden State Warriors", Points: 24.5, TotalPoints: 1715}
	got, err = c.Predict(context.Background(), "nba", "Stephen Curry", record)
	if err != nil {
		t.Fatalf("Predict with record: %v", err)
	}
	if got != "- keeps scoring" {
		t.Errorf("Predict = %q", got)
	}
}

func TestClientFantasyFlow(t *testing.T) {
	c := newTestBackend(t)
	c.User = "alice"

	player := rosterEntry(t, `{"id":115,"name":"Stephen Curry","team":"Golden State Warriors","points":24.5}`)

	teams, err := c.AddFantasyPlayer(context.Background(), domain.LeagueNBA, player)
	if err != nil {
		t.Fatalf("AddFantasyPlayer: %v", err)
	}
	if len(teams[domain.LeagueNBA]) != 1 {
		t.Fatalf("roster after add = %+v", teams)
	}
	if string(teams[domain.LeagueNBA][0].Extra["points"]) != "24.5" {
		t.Errorf("extra fields lost over the wire: %+v", teams[domain.LeagueNBA][0])
	}

	// The duplicate surfaces as a 409 APIError.
	_, err = c.AddFantasyPlayer(context.Background(), domain.LeagueNBA, player)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusConflict {
		t.Fatalf("duplicate add err = %v, want 409 APIError", err)
	}

	teams, err = c.RemoveFantasyPlayer(context.Background(), domain.LeagueNBA, 115)
	if err != nil {
		t.Fatalf("RemoveFantasyPlayer: %v", err)
	}
	if len(teams[domain.LeagueNBA]) != 0 {
		t.Errorf("roster after remove = %+v", teams)
	}

	// Another identity never sees alice's roster.
	other := New(c.BaseURL)
	teams, err = other.FantasyTeam(context.Background())
	if err != nil {
		t.Fatalf("FantasyTeam: %v", err)
	}
	for league, roster := range teams {
		if len(roster) != 0 {
			t.Errorf("guest %s roster = %+v", league, roster)
		}
	}
}

func TestClientClearFantasyTeam(t *testing.T) {
	c := newTestBackend(t)

	player := rosterEntry(t, `{"id":30,"name":"Aaron Judge","homeRuns":58}`)
	if _, err := c.AddFantasyPlayer(context.Background(), domain.LeagueMLB, player); err != nil {
		t.Fatalf("AddFantasyPlayer: %v", err)
	}

	teams, err := c.ClearFantasyTeam(context.Background(), domain.LeagueMLB)
	if err != nil {
		t.Fatalf("ClearFantasyTeam: %v", err)
	}
	if len(teams[domain.LeagueMLB]) != 0 {
		t.Errorf("roster after clear = %+v", teams)
	}

	_, err = c.ClearFantasyTeam(context.Background(), domain.LeagueSoccer)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Errorf("clear soccer err = %v, want 400 APIError", err)
	}
}

func TestClientSoccerPlayer(t *testing.T) {
	c := newTestBackend(t)

	got, err := c.SoccerPlayer(context.Background(), "Salah")
	if err != nil {
		t.Fatalf("SoccerPlayer: %v", err)
	}
	if got.Goals != 29 || got.Team != "Liverpool" {
		t.Errorf("SoccerPlayer = %+v", got)
	}
}
