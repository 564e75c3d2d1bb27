package fx

import (
	"sports-tracker/internal/api"
	"sports-tracker/internal/config"
	"sports-tracker/internal/logger"
	"sports-tracker/internal/repository"
	"sports-tracker/internal/server"
	"sports-tracker/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideRosterStore(l zerolog.Logger) repository.RosterStore {
	return repository.NewMemoryRosterStore(l)
}

func ProvideHandler(
	nba *service.NBAService,
	nfl *service.NFLService,
	mlb *service.MLBService,
	soccer *service.SoccerService,
	prediction *service.PredictionService,
	roster repository.RosterStore,
	l zerolog.Logger,
) *server.Handler {
	return server.NewHandler(nba, nfl, mlb, soccer, prediction, roster, l)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api clients
	fx.Provide(api.NewBDLClient),
	fx.Provide(api.NewSportsDBClient),
	fx.Provide(api.NewOpenAIClient),
	// svc
	fx.Provide(service.NewNBAService),
	fx.Provide(service.NewNFLService),
	fx.Provide(service.NewMLBService),
	fx.Provide(service.NewStatEstimator),
	fx.Provide(service.NewSoccerService),
	fx.Provide(service.NewPredictionService),
	// store
	fx.Provide(ProvideRosterStore),
	// http surface
	fx.Provide(ProvideHandler),
	fx.Provide(server.NewRouter),
)
