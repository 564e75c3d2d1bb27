package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"sports-tracker/internal/domain"

	"github.com/gorilla/mux"
)

// userFrom is the single place a user identity enters the system. There is
// no authentication behind the header; an absent header is the shared
// guest roster.
func userFrom(r *http.Request) string {
	if user := strings.TrimSpace(r.Header.Get("X-Fantasy-User")); user != "" {
		return user
	}
	return "guest"
}

func (h *Handler) GetFantasyTeam(w http.ResponseWriter, r *http.Request) {
	teams := h.roster.Teams(userFrom(r))
	respondJSON(w, http.StatusOK, map[string]interface{}{"teams": teams})
}

type fantasyAddRequest struct {
	League string          `json:"league"`
	Player json.RawMessage `json:"player"`
}

func (h *Handler) AddFantasyPlayer(w http.ResponseWriter, r *http.Request) {
	var req fantasyAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Missing league or player")
		return
	}
	if req.League == "" || len(req.Player) == 0 || string(req.Player) == "null" {
		respondMessage(w, http.StatusBadRequest, "Missing league or player")
		return
	}

	var player domain.FantasyPlayer
	if err := json.Unmarshal(req.Player, &player); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid player data")
		return
	}

	league := domain.League(req.League)
	teams, err := h.roster.Add(userFrom(r), league, player)
	if err != nil {
		h.respondFantasyError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Player added to " + strings.ToUpper(req.League) + " fantasy team",
		"teams":   teams,
	})
}

func (h *Handler) RemoveFantasyPlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	league := vars["league"]

	playerID, err := strconv.Atoi(vars["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid player id")
		return
	}

	teams, err := h.roster.Remove(userFrom(r), domain.League(league), playerID)
	if err != nil {
		h.respondFantasyError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Player removed from " + strings.ToUpper(league) + " fantasy team",
		"teams":   teams,
	})
}

func (h *Handler) ClearFantasyTeam(w http.ResponseWriter, r *http.Request) {
	league := mux.Vars(r)["league"]

	teams, err := h.roster.Clear(userFrom(r), domain.League(league))
	if err != nil {
		h.respondFantasyError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Cleared " + strings.ToUpper(league) + " fantasy team",
		"teams":   teams,
	})
}

func (h *Handler) respondFantasyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidLeague):
		respondMessage(w, http.StatusBadRequest, "Invalid league")
	case errors.Is(err, domain.ErrDuplicatePlayer):
		respondMessage(w, http.StatusConflict, "Player already added")
	default:
		respondMessage(w, http.StatusInternalServerError, "Server error")
	}
}
