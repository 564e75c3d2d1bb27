package service

import (
	"context"

	"sports-tracker/internal/api"
	"sports-tracker/internal/constants"
	"sports-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type MLBService struct {
	bdl    *api.BDLClient
	logger zerolog.Logger
}

func NewMLBService(bdl *api.BDLClient, logger zerolog.Logger) *MLBService {
	return &MLBService{bdl: bdl, logger: logger}
}

func (s *MLBService) BaseStats(ctx context.Context, name string) (*domain.MLBStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("name", name).Msg("fetching mlb base stats")

	player, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	stat, err := s.seasonStats(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	record := &domain.MLBStats{
		ID:   player.ID,
		Name: player.FullName(),
		Team: teamName(player.Team.Name),
	}
	if stat == nil {
		s.logger.Info().Int("player_id", player.ID).Msg("no mlb season stats, returning zeroed record")
		return record, nil
	}

	if stat.TeamName != "" {
		record.Team = stat.TeamName
	}
	record.HomeRuns = stat.BattingHR
	record.BattingAverage = round3(stat.BattingAvg)
	record.RBIs = stat.BattingRBI
	return record, nil
}

func (s *MLBService) Details(ctx context.Context, name string) (*domain.MLBExpandedStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("name", name).Msg("fetching mlb expanded stats")

	player, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	stat, err := s.seasonStats(ctx, player.ID)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		return nil, domain.ErrPlayerNotFound
	}

	team := teamName(player.Team.Name)
	if stat.TeamName != "" {
		team = stat.TeamName
	}

	return &domain.MLBExpandedStats{
		ID:             player.ID,
		Name:           player.FullName(),
		Team:           team,
		Age:            player.Age,
		Games:          stat.GamesPlayed,
		Hits:           stat.BattingHits,
		Doubles:        stat.BattingDoubles,
		Triples:        stat.BattingTriples,
		HomeRuns:       stat.BattingHR,
		RBIs:           stat.BattingRBI,
		Walks:          stat.BattingWalks,
		Strikeouts:     stat.BattingStrikeouts,
		BattingAverage: round3(stat.BattingAvg),
		OBP:            round3(stat.BattingOBP),
		SLG:            round3(stat.BattingSLG),
		OPS:            round3(stat.BattingOPS),
	}, nil
}

func (s *MLBService) resolve(ctx context.Context, name string) (*api.MLBPlayer, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.bdl.SearchMLBPlayers(apiCtx, lastToken(name))
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("mlb player search failed")
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, domain.ErrPlayerNotFound
	}

	player := pickCandidate(resp.Data, name)
	return &player, nil
}

func (s *MLBService) seasonStats(ctx context.Context, playerID int) (*api.MLBSeasonStat, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.bdl.GetMLBSeasonStats(apiCtx, playerID)
	if err != nil {
		s.logger.Error().Err(err).Int("player_id", playerID).Msg("mlb season stats fetch failed")
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0], nil
}
