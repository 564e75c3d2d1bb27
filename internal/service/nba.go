package service

import (
	"context"

	"sports-tracker/internal/api"
	"sports-tracker/internal/constants"
	"sports-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type NBAService struct {
	bdl    *api.BDLClient
	logger zerolog.Logger
}

func NewNBAService(bdl *api.BDLClient, logger zerolog.Logger) *NBAService {
	return &NBAService{bdl: bdl, logger: logger}
}

// BaseStats resolves a free-text name to one player and returns current
// season averages. A resolved player with no stats row comes back with
// identity populated and every counter zero, not an error.
func (s *NBAService) BaseStats(ctx context.Context, name string) (*domain.NBAPlayerBase, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("name", name).Msg("fetching nba base stats")

	player, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	stats, err := s.seasonStats(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	record := &domain.NBAPlayerBase{
		ID:   player.ID,
		Name: player.FullName(),
		Team: teamName(player.Team.Name),
	}
	if stats == nil {
		s.logger.Info().Int("player_id", player.ID).Msg("no nba season averages, returning zeroed record")
		return record, nil
	}

	ppg := stats.Pts
	if ppg == 0 {
		ppg = pointsFromShooting(stats.FGM, stats.FG3M, stats.FTM)
	}

	record.Points = round1(ppg)
	record.Assists = round1(stats.Ast)
	record.Rebounds = round1(stats.Reb)
	record.TotalPoints = seasonTotal(ppg, stats.GP)
	return record, nil
}

// Details is the expanded variant: same resolve, richer stats bundle.
// A resolved player with no stats row is a not-found here, matching the
// dedicated detail view's contract.
func (s *NBAService) Details(ctx context.Context, name string) (*domain.NBAPlayerDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("name", name).Msg("fetching nba expanded stats")

	player, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	stats, err := s.seasonStats(ctx, player.ID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, domain.ErrPlayerNotFound
	}

	return &domain.NBAPlayerDetails{
		ID:        player.ID,
		Name:      player.FullName(),
		Team:      teamName(player.Team.Name),
		Age:       stats.Age,
		Minutes:   stats.Min,
		FGPct:     round3(stats.FGPct),
		FG3Pct:    round3(stats.FG3Pct),
		FTPct:     round3(stats.FTPct),
		Steals:    stats.Stl,
		Blocks:    stats.Blk,
		Turnovers: stats.Tov,
	}, nil
}

func (s *NBAService) resolve(ctx context.Context, name string) (*api.NBAPlayer, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.bdl.SearchNBAPlayers(apiCtx, lastToken(name))
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("nba player search failed")
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, domain.ErrPlayerNotFound
	}

	player := pickCandidate(resp.Data, name)
	return &player, nil
}

func (s *NBAService) seasonStats(ctx context.Context, playerID int) (*api.NBASeasonStats, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.bdl.GetNBASeasonAverages(apiCtx, playerID)
	if err != nil {
		s.logger.Error().Err(err).Int("player_id", playerID).Msg("nba season averages fetch failed")
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0].Stats, nil
}

func teamName(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}
