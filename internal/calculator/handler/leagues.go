package handler

import (
	"net/http"
	"strings"

	"poeconv/internal/domain"
)

type LeaguesResponse struct {
	Leagues []domain.League `json:"leagues"`
	Active  string          `json:"active" example:"Standard"`
}

type SelectLeagueRequest struct {
	League string `json:"league" example:"Standard"`
}

// GetLeagues godoc
// @Summary List leagues
// @Tags Leagues
// @Produce json
// @Success 200 {object} LeaguesResponse
// @Failure 503 {object} errorResponse
// @Router /leagues [get]
func (h *Handler) GetLeagues(w http.ResponseWriter, _ *http.Request) {
	st, err := h.calc.State()
	if err != nil {
		writeServiceError(w, "GetLeagues", err)
		return
	}
	writeJSON(w, http.StatusOK, LeaguesResponse{Leagues: st.Leagues, Active: st.ActiveLeague})
}

// SelectLeague godoc
// @Summary Select the active league
// @Description Switching league refetches the catalog; selecting the active league does nothing
// @Tags Leagues
// @Accept json
// @Produce json
// @Param request body SelectLeagueRequest true "League key"
// @Success 200 {object} LeaguesResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /leagues/active [put]
func (h *Handler) SelectLeague(w http.ResponseWriter, r *http.Request) {
	var req SelectLeagueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	key := strings.TrimSpace(req.League)
	if key == "" {
		writeError(w, http.StatusBadRequest, "league is required")
		return
	}

	if err := h.calc.SelectLeague(r.Context(), key); err != nil {
		writeServiceError(w, "SelectLeague", err)
		return
	}
	h.GetLeagues(w, r)
}
