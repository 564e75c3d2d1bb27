package service

import (
	"context"

	"sports-tracker/internal/api"
	"sports-tracker/internal/constants"
	"sports-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type NFLService struct {
	bdl    *api.BDLClient
	logger zerolog.Logger
}

func NewNFLService(bdl *api.BDLClient, logger zerolog.Logger) *NFLService {
	return &NFLService{bdl: bdl, logger: logger}
}

// BaseStats resolves a name and sums the player's per-game rows for the
// season, because the provider exposes no cumulative totals endpoint:
//
//	touchdowns    = Σ (passing + rushing + receiving touchdowns)
//	yards         = Σ (passing + rushing + receiving yards)
//	interceptions = Σ passing interceptions
func (s *NFLService) BaseStats(ctx context.Context, name string) (*domain.NFLStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("name", name).Msg("fetching nfl base stats")

	player, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	resp, err := s.bdl.GetNFLGameStats(apiCtx, player.ID)
	if err != nil {
		s.logger.Error().Err(err).Int("player_id", player.ID).Msg("nfl game stats fetch failed")
		return nil, err
	}

	record := &domain.NFLStats{
		ID:   player.ID,
		Name: player.FullName(),
		Team: teamAbbr(player.Team.Abbreviation),
	}

	if len(resp.Data) == 0 {
		s.logger.Info().Int("player_id", player.ID).Msg("no nfl game rows, returning zeroed record")
		return record, nil
	}

	for _, g := range resp.Data {
		record.Touchdowns += pick(g.PassingTouchdowns, g.PassingTDs) +
			pick(g.RushingTouchdowns, g.RushingTDs) +
			pick(g.ReceivingTouchdowns, g.ReceivingTDs)
		record.Yards += pick(g.PassingYards, g.PassingYds) +
			pick(g.RushingYards, g.RushingYds) +
			pick(g.ReceivingYards, g.ReceivingYds)
		record.Interceptions += pick(g.PassingInterceptions, g.Interceptions)
	}

	record.Touchdowns = round0(record.Touchdowns)
	record.Yards = round0(record.Yards)
	record.Interceptions = round0(record.Interceptions)
	return record, nil
}

// Details fetches the season-stats bundle for the expanded view.
func (s *NFLService) Details(ctx context.Context, name string) (*domain.NFLExpandedStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("name", name).Msg("fetching nfl expanded stats")

	player, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	resp, err := s.bdl.GetNFLSeasonStats(apiCtx, player.ID)
	if err != nil {
		s.logger.Error().Err(err).Int("player_id", player.ID).Msg("nfl season stats fetch failed")
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, domain.ErrPlayerNotFound
	}

	st := resp.Data[0]
	return &domain.NFLExpandedStats{
		ID:              player.ID,
		Name:            player.FullName(),
		Age:             player.Age,
		RushingYards:    st.RushingYards,
		RushingAttempts: st.RushingAttempts,
		RushingTD:       st.RushingTouchdowns,
		YardsPerRush:    round1(st.YardsPerRushAttempt),
		ReceivingYards:  st.ReceivingYards,
		Receptions:      st.Receptions,
		ReceivingTD:     st.ReceivingTouchdowns,
		Fumbles:         st.RushingFumbles,
	}, nil
}

func (s *NFLService) resolve(ctx context.Context, name string) (*api.NFLPlayer, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.bdl.SearchNFLPlayers(apiCtx, lastToken(name))
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("nfl player search failed")
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, domain.ErrPlayerNotFound
	}

	player := pickCandidate(resp.Data, name)
	return &player, nil
}

// pick resolves the provider's two spellings of the same counter.
func pick(a, b float64) float64 {
	if a != 0 {
		return a
	}
	return b
}

func teamAbbr(abbr string) string {
	if abbr == "" {
		return "N/A"
	}
	return abbr
}
