package repository

import (
	"sync"

	"sports-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// RosterStore owns the fantasy rosters, keyed by (user, league). The user
// identifier is an opaque string supplied by the HTTP layer; there is no
// authentication behind it.
type RosterStore interface {
	Teams(user string) map[domain.League][]domain.FantasyPlayer
	Add(user string, league domain.League, player domain.FantasyPlayer) (map[domain.League][]domain.FantasyPlayer, error)
	Remove(user string, league domain.League, playerID int) (map[domain.League][]domain.FantasyPlayer, error)
	Clear(user string, league domain.League) (map[domain.League][]domain.FantasyPlayer, error)
}

// MemoryRosterStore keeps rosters in process memory only; a restart discards
// everything. One mutex guards the whole mapping because add's dedup check
// and remove's filter are read-modify-write sequences.
type MemoryRosterStore struct {
	mu      sync.RWMutex
	rosters map[string]map[domain.League][]domain.FantasyPlayer
	logger  zerolog.Logger
}

func NewMemoryRosterStore(logger zerolog.Logger) *MemoryRosterStore {
	return &MemoryRosterStore{
		rosters: make(map[string]map[domain.League][]domain.FantasyPlayer),
		logger:  logger,
	}
}

func (s *MemoryRosterStore) Teams(user string) map[domain.League][]domain.FantasyPlayer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(user)
}

// Add appends the player to the user's league roster. A duplicate id is
// rejected, never merged or overwritten.
func (s *MemoryRosterStore) Add(user string, league domain.League, player domain.FantasyPlayer) (map[domain.League][]domain.FantasyPlayer, error) {
	if !league.ValidFantasy() {
		return nil, domain.ErrInvalidLeague
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	roster := s.roster(user)
	for _, p := range roster[league] {
		if p.ID == player.ID {
			return nil, domain.ErrDuplicatePlayer
		}
	}

	roster[league] = append(roster[league], player.Clone())
	s.logger.Info().Str("user", user).Str("league", string(league)).Int("player_id", player.ID).Msg("player added to fantasy roster")
	return s.snapshot(user), nil
}

// Remove filters the id out unconditionally; removing an absent id is a
// no-op success.
func (s *MemoryRosterStore) Remove(user string, league domain.League, playerID int) (map[domain.League][]domain.FantasyPlayer, error) {
	if !league.ValidFantasy() {
		return nil, domain.ErrInvalidLeague
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	roster := s.roster(user)
	kept := roster[league][:0]
	for _, p := range roster[league] {
		if p.ID != playerID {
			kept = append(kept, p)
		}
	}
	roster[league] = kept

	s.logger.Info().Str("user", user).Str("league", string(league)).Int("player_id", playerID).Msg("player removed from fantasy roster")
	return s.snapshot(user), nil
}

func (s *MemoryRosterStore) Clear(user string, league domain.League) (map[domain.League][]domain.FantasyPlayer, error) {
	if !league.ValidFantasy() {
		return nil, domain.ErrInvalidLeague
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster(user)[league] = nil
	s.logger.Info().Str("user", user).Str("league", string(league)).Msg("fantasy roster cleared")
	return s.snapshot(user), nil
}

// roster returns the live per-user mapping, creating it on first touch.
// Callers must hold the write lock.
func (s *MemoryRosterStore) roster(user string) map[domain.League][]domain.FantasyPlayer {
	r, ok := s.rosters[user]
	if !ok {
		r = make(map[domain.League][]domain.FantasyPlayer, len(domain.FantasyLeagues))
		s.rosters[user] = r
	}
	return r
}

// snapshot copies the user's rosters so callers never hold live slices.
// Every recognized league is present, empty lists included.
func (s *MemoryRosterStore) snapshot(user string) map[domain.League][]domain.FantasyPlayer {
	out := make(map[domain.League][]domain.FantasyPlayer, len(domain.FantasyLeagues))
	for _, league := range domain.FantasyLeagues {
		entries := s.rosters[user][league]
		list := make([]domain.FantasyPlayer, 0, len(entries))
		for _, p := range entries {
			list = append(list, p.Clone())
		}
		out[league] = list
	}
	return out
}
