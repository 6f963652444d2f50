package handler

import (
	"net/http"

	"poeconv/internal/domain"
)

type SessionResponse struct {
	Leagues        []domain.League      `json:"leagues"`
	ActiveLeague   string               `json:"active_league" example:"Rise of the Abyssal"`
	Degraded       bool                 `json:"degraded"`
	CatalogError   string               `json:"catalog_error,omitempty"`
	Lines          []LineResponse       `json:"lines"`
	Removable      bool                 `json:"removable"`
	Target         *domain.CurrencyItem `json:"target"`
	ConvertedValue float64              `json:"converted_value" example:"2.01"`
}

// GetSession godoc
// @Summary Get calculator state
// @Description Leagues, active league, basket lines, target and the converted basket value
// @Tags Session
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 503 {object} errorResponse "leagues or catalog not loaded"
// @Router /session [get]
func (h *Handler) GetSession(w http.ResponseWriter, _ *http.Request) {
	st, err := h.calc.State()
	if err != nil {
		writeServiceError(w, "GetSession", err)
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{
		Leagues:        st.Leagues,
		ActiveLeague:   st.ActiveLeague,
		Degraded:       st.Degraded,
		CatalogError:   st.CatalogError,
		Lines:          toLineResponses(st.Lines),
		Removable:      st.Removable,
		Target:         st.Target,
		ConvertedValue: st.ConvertedValue,
	})
}

// ReloadSession godoc
// @Summary Reload the session
// @Description Reload leagues, reset basket and target, refetch the catalog
// @Tags Session
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 503 {object} errorResponse
// @Router /session/reload [post]
func (h *Handler) ReloadSession(w http.ResponseWriter, r *http.Request) {
	if err := h.calc.Reload(r.Context()); err != nil {
		writeServiceError(w, "ReloadSession", err)
		return
	}
	h.GetSession(w, r)
}
