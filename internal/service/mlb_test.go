package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sports-tracker/internal/domain"

	"github.com/rs/zerolog"
)

func TestMLBBaseStats(t *testing.T) {
	bdl := newTestBDL(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mlb/v1/players":
			if got := r.URL.Query().Get("search"); got != "Judge" {
				t.Errorf("search query = %q, want %q", got, "Judge")
			}
			w.Write([]byte(`{"data":[{"id":30,"first_name":"Aaron","last_name":"Judge","team":{"name":"New York Yankees"}}]}`))
		case "/mlb/v1/season_stats":
			w.Write([]byte(`{"data":[{"team_name":"Yankees","batting_hr":58,"batting_avg":0.3215,"batting_rbi":144}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	svc := NewMLBService(bdl, zerolog.Nop())
	got, err := svc.BaseStats(context.Background(), "Aaron Judge")
	if err != nil {
		t.Fatalf("BaseStats: %v", err)
	}

	want := domain.MLBStats{
		ID:             30,
		Name:           "Aaron Judge",
		Team:           "Yankees",
		HomeRuns:       58,
		BattingAverage: 0.322,
		RBIs:           144,
	}
	if *got != want {
		t.Errorf("BaseStats = %+v, want %+v", *got, want)
	}
}

func TestMLBBaseStatsNoSeasonRow(t *testing.T) {
	bdl := newTestBDL(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mlb/v1/players":
			w.Write([]byte(`{"data":[{"id":12,"first_name":"Rookie","last_name":"Callup","team":{"name":"Tampa Bay Rays"}}]}`))
		default:
			w.Write([]byte(`{"data":[]}`))
		}
	})

	svc := NewMLBService(bdl, zerolog.Nop())
	got, err := svc.BaseStats(context.Background(), "Callup")
	if err != nil {
		t.Fatalf("BaseStats: %v", err)
	}
	if got.Name != "Rookie Callup" || got.Team != "Tampa Bay Rays" {
		t.Errorf("identity fields not populated: %+v", got)
	}
	if got.HomeRuns != 0 || got.BattingAverage != 0 || got.RBIs != 0 {
		t.Errorf("numeric fields should be zero: %+v", got)
	}
}

func TestMLBBaseStatsNotFound(t *testing.T) {
	bdl := newTestBDL(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	svc := NewMLBService(bdl, zerolog.Nop())
	if _, err := svc.BaseStats(context.Background(), "Nobody"); !errors.Is(err, domain.ErrPlayerNotFound) {
		t.Errorf("err = %v, want ErrPlayerNotFound", err)
	}
}

func TestMLBDetails(t *testing.T) {
	bdl := newTestBDL(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mlb/v1/players":
			w.Write([]byte(`{"data":[{"id":30,"first_name":"Aaron","last_name":"Judge","age":32,"team":{"name":"New York Yankees"}}]}`))
		case "/mlb/v1/season_stats":
			w.Write([]byte(`{"data":[{"team_name":"Yankees","games_played":158,"batting_h":180,"batting_2b":36,"batting_3b":1,"batting_hr":58,"batting_rbi":144,"batting_bb":133,"batting_so":171,"batting_avg":0.322,"batting_obp":0.4577,"batting_slg":0.7012,"batting_ops":1.1589}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	svc := NewMLBService(bdl, zerolog.Nop())
	got, err := svc.Details(context.Background(), "Judge")
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if got.Games != 158 || got.Hits != 180 || got.Doubles != 36 || got.Walks != 133 {
		t.Errorf("counting stats wrong: %+v", got)
	}
	if got.OBP != 0.458 || got.SLG != 0.701 || got.OPS != 1.159 {
		t.Errorf("rate stats should keep three decimals: %+v", got)
	}
	if got.Age != 32 {
		t.Errorf("Age = %v, want 32", got.Age)
	}
}

func TestMLBDetailsNoSeasonRow(t *testing.T) {
	bdl := newTestBDL(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mlb/v1/players":
			w.Write([]byte(`{"data":[{"id":12,"first_name":"Rookie","last_name":"Callup","team":{"name":"Tampa Bay Rays"}}]}`))
		default:
			w.Write([]byte(`{"data":[]}`))
		}
	})

	svc := NewMLBService(bdl, zerolog.Nop())
	if _, err := svc.Details(context.Background(), "Callup"); !errors.Is(err, domain.ErrPlayerNotFound) {
		t.Errorf("err = %v, want ErrPlayerNotFound", err)
	}
}
