package handler

import (
	"net/http"

	"poeconv/internal/domain"
)

type CatalogResponse struct {
	League   string                `json:"league" example:"Standard"`
	Degraded bool                  `json:"degraded"`
	Total    int                   `json:"total" example:"42"`
	Items    []domain.CurrencyItem `json:"items"`
}

// GetCatalog godoc
// @Summary List currencies of the active league
// @Description Optional case-insensitive name filter; results sorted by name
// @Tags Catalog
// @Produce json
// @Param search query string false "Name substring"
// @Success 200 {object} CatalogResponse
// @Failure 503 {object} errorResponse
// @Router /catalog [get]
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	view, err := h.calc.Catalog(r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, "GetCatalog", err)
		return
	}
	writeJSON(w, http.StatusOK, CatalogResponse{
		League:   view.League,
		Degraded: view.Degraded,
		Total:    view.Total,
		Items:    view.Items,
	})
}
