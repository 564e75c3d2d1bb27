package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

func (h *Handler) GetNBAPlayer(w http.ResponseWriter, r *http.Request) {
	stats, err := h.nba.BaseStats(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.respondStatsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetNBADetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.nba.Details(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.respondStatsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

func (h *Handler) GetNFLPlayer(w http.ResponseWriter, r *http.Request) {
	stats, err := h.nfl.BaseStats(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.respondStatsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetNFLDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.nfl.Details(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.respondStatsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

func (h *Handler) GetMLBPlayer(w http.ResponseWriter, r *http.Request) {
	stats, err := h.mlb.BaseStats(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.respondStatsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetMLBDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.mlb.Details(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.respondStatsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

func (h *Handler) GetSoccerPlayer(w http.ResponseWriter, r *http.Request) {
	stats, err := h.soccer.PlayerStats(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		h.respondStatsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// predictRequest's stats field is whatever record the caller has in hand;
// only presence is enforced, never a schema, so non-numeric fields ride
// through to the prompt untouched.
type predictRequest struct {
	League     string                     `json:"league"`
	PlayerName string                     `json:"playerName"`
	Stats      map[string]json.RawMessage `json:"stats"`
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.League == "" || req.PlayerName == "" || req.Stats == nil {
		respondMessage(w, http.StatusBadRequest, "Missing required fields.")
		return
	}

	prediction, err := h.predictor.Predict(r.Context(), req.League, req.PlayerName, req.Stats)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("player", req.PlayerName).Msg("prediction failed")
		respondMessage(w, http.StatusInternalServerError, "Prediction failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"prediction": prediction})
}
