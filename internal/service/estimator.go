package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"sports-tracker/internal/api"
	"sports-tracker/internal/constants"
	"sports-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// StatEstimator asks the completion model to estimate a soccer player's
// current-season counters from public knowledge. The reply must be a strict
// JSON object with numeric fields; anything else is ErrEstimationFailed.
type StatEstimator struct {
	ai     *api.OpenAIClient
	logger zerolog.Logger
}

func NewStatEstimator(ai *api.OpenAIClient, logger zerolog.Logger) *StatEstimator {
	return &StatEstimator{ai: ai, logger: logger}
}

func (e *StatEstimator) EstimateSoccer(ctx context.Context, name, team, position string) (*domain.SoccerStatEstimate, error) {
	prompt := fmt.Sprintf(`Return ONLY valid JSON. No explanations.
You must provide the MOST RECENT, REAL stats available online.

Task:
Provide current (2024-2025 season) soccer stats for the following player across all competitions:

Name: %s
Team: %s
Position: %s

Required JSON Format:
{
  "goals": number,
  "assists": number,
  "yellowCards": number
}

If any field cannot be found, estimate using recent performance trends.
Return ONLY JSON.`, name, team, position)

	temperature := 0.0
	reply, err := e.ai.CreateChatCompletion(ctx, constants.PredictionModel,
		"You are a sports statistics assistant. Always return ONLY valid JSON.",
		prompt, &temperature)
	if err != nil {
		return nil, err
	}

	var est domain.SoccerStatEstimate
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &est); err != nil {
		e.logger.Warn().Str("reply", reply).Msg("estimation model returned unparseable output")
		return nil, fmt.Errorf("%w: %v", domain.ErrEstimationFailed, err)
	}
	return &est, nil
}
