package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"sports-tracker/internal/api"
	"sports-tracker/internal/constants"
	"sports-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// PredictionService turns a flat stats record into a forward-looking
// narrative from the completion model. Output is the raw model text; any
// transport or provider failure collapses to ErrPredictionFailed.
type PredictionService struct {
	ai     *api.OpenAIClient
	logger zerolog.Logger
}

func NewPredictionService(ai *api.OpenAIClient, logger zerolog.Logger) *PredictionService {
	return &PredictionService{ai: ai, logger: logger}
}

func (s *PredictionService) Predict(ctx context.Context, league, playerName string, stats map[string]json.RawMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("league", league).Str("player", playerName).Msg("requesting prediction")

	reply, err := s.ai.CreateChatCompletion(ctx, constants.PredictionModel,
		"You are an expert sports statistician.",
		buildPredictionPrompt(league, playerName, stats), nil)
	if err != nil {
		s.logger.Error().Err(err).Str("player", playerName).Msg("prediction call failed")
		return "", fmt.Errorf("%w: %v", domain.ErrPredictionFailed, err)
	}

	return reply, nil
}

// buildPredictionPrompt lists every stat line sorted by key so the same
// record always yields the same prompt. Callers post whatever record they
// have in hand, so values are untyped; strings render verbatim, everything
// else as its JSON text.
func buildPredictionPrompt(league, playerName string, stats map[string]json.RawMessage) string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines strings.Builder
	for _, k := range keys {
		lines.WriteString(k)
		lines.WriteString(": ")
		lines.WriteString(statText(stats[k]))
		lines.WriteString("\n")
	}

	return fmt.Sprintf(`You are a sports analytics prediction model.
Predict next-season performance for the following player based strictly on the statistical data provided.

Sport: %s
Player: %s

Current Season Stats:
%s
Give a short and clear prediction for next season in bullet points.

Also, if they ask to elaborate on your reasons for the prediction, elaborate your views!`,
		league, playerName, lines.String())
}

func statText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
