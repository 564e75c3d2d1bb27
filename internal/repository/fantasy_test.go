package repository

import (
	"errors"
	"testing"

	"sports-tracker/internal/domain"

	"github.com/rs/zerolog"
)

func player(id int, name string) domain.FantasyPlayer {
	return domain.FantasyPlayer{ID: id, Name: name, Team: "Test"}
}

func TestAddAndSnapshot(t *testing.T) {
	store := NewMemoryRosterStore(zerolog.Nop())

	teams, err := store.Add("guest", domain.LeagueNBA, player(1, "Stephen Curry"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Every fantasy league shows up, empty ones as zero-length lists.
	for _, league := range domain.FantasyLeagues {
		if _, ok := teams[league]; !ok {
			t.Errorf("league %s missing from snapshot", league)
		}
	}
	if len(teams[domain.LeagueNBA]) != 1 || teams[domain.LeagueNBA][0].Name != "Stephen Curry" {
		t.Errorf("nba roster = %+v", teams[domain.LeagueNBA])
	}
	if len(teams[domain.LeagueNFL]) != 0 || len(teams[domain.LeagueMLB]) != 0 {
		t.Errorf("other rosters should be empty: %+v", teams)
	}
}

func TestAddDuplicateRejected(t *testing.T) {
	store := NewMemoryRosterStore(zerolog.Nop())

	if _, err := store.Add("guest", domain.LeagueNBA, player(1, "Stephen Curry")); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if _, err := store.Add("guest", domain.LeagueNBA, player(1, "Stephen Curry")); !errors.Is(err, domain.ErrDuplicatePlayer) {
		t.Fatalf("err = %v, want ErrDuplicatePlayer", err)
	}

	teams := store.Teams("guest")
	if len(teams[domain.LeagueNBA]) != 1 {
		t.Errorf("duplicate add changed the roster: %+v", teams[domain.LeagueNBA])
	}
}

func TestSameIDAcrossLeagues(t *testing.T) {
	store := NewMemoryRosterStore(zerolog.Nop())

	if _, err := store.Add("guest", domain.LeagueNBA, player(7, "A")); err != nil {
		t.Fatalf("Add nba: %v", err)
	}
	// Dedup is per league, ids from different providers may collide.
	if _, err := store.Add("guest", domain.LeagueNFL, player(7, "B")); err != nil {
		t.Fatalf("Add nfl: %v", err)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	store := NewMemoryRosterStore(zerolog.Nop())
	store.Add("guest", domain.LeagueMLB, player(30, "Aaron Judge"))

	teams, err := store.Remove("guest", domain.LeagueMLB, 999)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(teams[domain.LeagueMLB]) != 1 {
		t.Errorf("roster changed by absent-id remove: %+v", teams[domain.LeagueMLB])
	}

	teams, err = store.Remove("guest", domain.LeagueMLB, 30)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(teams[domain.LeagueMLB]) != 0 {
		t.Errorf("player not removed: %+v", teams[domain.LeagueMLB])
	}
}

func TestClear(t *testing.T) {
	store := NewMemoryRosterStore(zerolog.Nop())
	store.Add("guest", domain.LeagueNFL, player(1, "A"))
	store.Add("guest", domain.LeagueNFL, player(2, "B"))
	store.Add("guest", domain.LeagueNBA, player(3, "C"))

	teams, err := store.Clear("guest", domain.LeagueNFL)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(teams[domain.LeagueNFL]) != 0 {
		t.Errorf("nfl roster not cleared: %+v", teams[domain.LeagueNFL])
	}
	if len(teams[domain.LeagueNBA]) != 1 {
		t.Errorf("clear touched another league: %+v", teams[domain.LeagueNBA])
	}
}

func TestInvalidLeague(t *testing.T) {
	store := NewMemoryRosterStore(zerolog.Nop())

	if _, err := store.Add("guest", domain.LeagueSoccer, player(1, "A")); !errors.Is(err, domain.ErrInvalidLeague) {
		t.Errorf("Add soccer err = %v, want ErrInvalidLeague", err)
	}
	if _, err := store.Remove("guest", "cricket", 1); !errors.Is(err, domain.ErrInvalidLeague) {
		t.Errorf("Remove err = %v, want ErrInvalidLeague", err)
	}
	if _, err := store.Clear("guest", ""); !errors.Is(err, domain.ErrInvalidLeague) {
		t.Errorf("Clear err = %v, want ErrInvalidLeague", err)
	}
}

func TestUserIsolation(t *testing.T) {
	store := NewMemoryRosterStore(zerolog.Nop())

	store.Add("alice", domain.LeagueNBA, player(1, "A"))
	store.Add("bob", domain.LeagueNBA, player(2, "B"))

	if got := store.Teams("alice")[domain.LeagueNBA]; len(got) != 1 || got[0].ID != 1 {
		t.Errorf("alice roster = %+v", got)
	}
	if got := store.Teams("bob")[domain.LeagueNBA]; len(got) != 1 || got[0].ID != 2 {
		t.Errorf("bob roster = %+v", got)
	}
	if got := store.Teams("guest")[domain.LeagueNBA]; len(got) != 0 {
		t.Errorf("guest roster should be empty: %+v", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewMemoryRosterStore(zerolog.Nop())
	store.Add("guest", domain.LeagueNBA, player(1, "A"))

	teams := store.Teams("guest")
	teams[domain.LeagueNBA][0].Name = "mutated"

	if got := store.Teams("guest")[domain.LeagueNBA][0].Name; got != "A" {
		t.Errorf("store state leaked through snapshot: %q", got)
	}
}
