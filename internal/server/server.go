package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"sports-tracker/internal/domain"
	"sports-tracker/internal/repository"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type NBAProvider interface {
	BaseStats(ctx context.Context, name string) (*domain.NBAPlayerBase, error)
	Details(ctx context.Context, name string) (*domain.NBAPlayerDetails, error)
}

type NFLProvider interface {
	BaseStats(ctx context.Context, name string) (*domain.NFLStats, error)
	Details(ctx context.Context, name string) (*domain.NFLExpandedStats, error)
}

type MLBProvider interface {
	BaseStats(ctx context.Context, name string) (*domain.MLBStats, error)
	Details(ctx context.Context, name string) (*domain.MLBExpandedStats, error)
}

type SoccerProvider interface {
	PlayerStats(ctx context.Context, name string) (*domain.SoccerPlayerStats, error)
}

type Predictor interface {
	Predict(ctx context.Context, league, playerName string, stats map[string]json.RawMessage) (string, error)
}

// Handler holds every collaborator the HTTP surface needs. Each route
// validates input shape, invokes exactly one collaborator and serializes
// the result or an error as JSON.
type Handler struct {
	nba       NBAProvider
	nfl       NFLProvider
	mlb       MLBProvider
	soccer    SoccerProvider
	predictor Predictor
	roster    repository.RosterStore
	logger    zerolog.Logger
}

func NewHandler(
	nba NBAProvider,
	nfl NFLProvider,
	mlb MLBProvider,
	soccer SoccerProvider,
	predictor Predictor,
	roster repository.RosterStore,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		nba:       nba,
		nfl:       nfl,
		mlb:       mlb,
		soccer:    soccer,
		predictor: predictor,
		roster:    roster,
		logger:    logger,
	}
}

func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/health", h.HealthCheck).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/nba/players/{name}", h.GetNBAPlayer).Methods(http.MethodGet)
	api.HandleFunc("/nba/details/{name}", h.GetNBADetails).Methods(http.MethodGet)
	api.HandleFunc("/nfl/players/{name}", h.GetNFLPlayer).Methods(http.MethodGet)
	api.HandleFunc("/nfl/details/{name}", h.GetNFLDetails).Methods(http.MethodGet)
	api.HandleFunc("/mlb/players/{name}", h.GetMLBPlayer).Methods(http.MethodGet)
	api.HandleFunc("/mlb/details/{name}", h.GetMLBDetails).Methods(http.MethodGet)
	api.HandleFunc("/soccer/players/{name}", h.GetSoccerPlayer).Methods(http.MethodGet)

	api.HandleFunc("/chat/predict", h.Predict).Methods(http.MethodPost)

	fantasy := api.PathPrefix("/fantasy").Subrouter()
	fantasy.HandleFunc("/team", h.GetFantasyTeam).Methods(http.MethodGet)
	fantasy.HandleFunc("/add", h.AddFantasyPlayer).Methods(http.MethodPost)
	fantasy.HandleFunc("/remove/{league}/{id}", h.RemoveFantasyPlayer).Methods(http.MethodDelete)
	fantasy.HandleFunc("/clear/{league}", h.ClearFantasyTeam).Methods(http.MethodDelete)

	return router
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// respondStatsError maps a league-client failure onto the wire contract:
// not-found is a 404, everything upstream collapses to a 500 with detail
// logged server-side only.
func (h *Handler) respondStatsError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrPlayerNotFound) {
		respondMessage(w, http.StatusNotFound, "Player not found or no stats available")
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("upstream failure")
	respondMessage(w, http.StatusInternalServerError, "Server error")
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
