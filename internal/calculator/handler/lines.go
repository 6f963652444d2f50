package handler

import (
	"net/http"
	"strings"
)

type SetLineCurrencyRequest struct {
	CurrencyID string `json:"currency_id" example:"divine"`
}

type SetLineAmountRequest struct {
	Amount string `json:"amount" example:"2.5"`
}

type SetLineAmountResponse struct {
	Line     LineResponse `json:"line"`
	Accepted bool         `json:"accepted"`
}

// AddLine godoc
// @Summary Add a basket line
// @Description New lines have no currency and amount "1"
// @Tags Lines
// @Produce json
// @Success 201 {object} LineResponse
// @Failure 503 {object} errorResponse
// @Router /lines [post]
func (h *Handler) AddLine(w http.ResponseWriter, _ *http.Request) {
	line, err := h.calc.AddLine()
	if err != nil {
		writeServiceError(w, "AddLine", err)
		return
	}
	writeJSON(w, http.StatusCreated, toLineResponse(line))
}

// RemoveLine godoc
// @Summary Remove a basket line
// @Tags Lines
// @Param id path int true "Line ID"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse "last line"
// @Router /lines/{id} [delete]
func (h *Handler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	id, ok := lineIDParam(w, r)
	if !ok {
		return
	}
	if err := h.calc.RemoveLine(id); err != nil {
		writeServiceError(w, "RemoveLine", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetLineCurrency godoc
// @Summary Pick the currency of a line
// @Description An empty currency_id clears the selection
// @Tags Lines
// @Accept json
// @Produce json
// @Param id path int true "Line ID"
// @Param request body SetLineCurrencyRequest true "Currency"
// @Success 200 {object} LineResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /lines/{id}/currency [put]
func (h *Handler) SetLineCurrency(w http.ResponseWriter, r *http.Request) {
	id, ok := lineIDParam(w, r)
	if !ok {
		return
	}
	var req SetLineCurrencyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	line, err := h.calc.SetLineCurrency(id, strings.TrimSpace(req.CurrencyID))
	if err != nil {
		writeServiceError(w, "SetLineCurrency", err)
		return
	}
	writeJSON(w, http.StatusOK, toLineResponse(line))
}

// SetLineAmount godoc
// @Summary Edit the amount of a line
// @Description Text that is not a non-negative decimal is ignored and reported with accepted=false
// @Tags Lines
// @Accept json
// @Produce json
// @Param id path int true "Line ID"
// @Param request body SetLineAmountRequest true "Amount text"
// @Success 200 {object} SetLineAmountResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /lines/{id}/amount [put]
func (h *Handler) SetLineAmount(w http.ResponseWriter, r *http.Request) {
	id, ok := lineIDParam(w, r)
	if !ok {
		return
	}
	var req SetLineAmountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	line, accepted, err := h.calc.SetLineAmount(id, req.Amount)
	if err != nil {
		writeServiceError(w, "SetLineAmount", err)
		return
	}
	writeJSON(w, http.StatusOK, SetLineAmountResponse{Line: toLineResponse(line), Accepted: accepted})
}
