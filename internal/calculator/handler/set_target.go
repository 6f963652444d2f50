package handler

import (
	"net/http"
	"strings"

	"poeconv/internal/domain"
)

type SetTargetRequest struct {
	CurrencyID string `json:"currency_id" example:"divine"`
}

type TargetResponse struct {
	Target *domain.CurrencyItem `json:"target"`
}

// SetTarget godoc
// @Summary Choose the conversion target
// @Description An empty currency_id clears the target
// @Tags Session
// @Accept json
// @Produce json
// @Param request body SetTargetRequest true "Currency"
// @Success 200 {object} TargetResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /target [put]
func (h *Handler) SetTarget(w http.ResponseWriter, r *http.Request) {
	var req SetTargetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	target, err := h.calc.SetTarget(strings.TrimSpace(req.CurrencyID))
	if err != nil {
		writeServiceError(w, "SetTarget", err)
		return
	}
	writeJSON(w, http.StatusOK, TargetResponse{Target: target})
}
