package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

type RateResponse struct {
	From   string  `json:"from" example:"divine"`
	To     string  `json:"to" example:"exalted"`
	Amount float64 `json:"amount" example:"3"`
	Rate   float64 `json:"rate" example:"4"`
	Value  float64 `json:"value" example:"12"`
}

// GetRate godoc
// @Summary Convert one amount between two currencies
// @Tags Catalog
// @Produce json
// @Param from query string true "Source currency ID"
// @Param to query string true "Target currency ID"
// @Param amount query number false "Amount, default 1"
// @Success 200 {object} RateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /rates [get]
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := strings.TrimSpace(q.Get("from"))
	to := strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	amount := 1.0
	if raw := strings.TrimSpace(q.Get("amount")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			writeError(w, http.StatusBadRequest, "invalid amount")
			return
		}
		amount = parsed
	}

	quote, err := h.calc.Quote(from, to, amount)
	if err != nil {
		writeServiceError(w, "GetRate", err)
		return
	}
	writeJSON(w, http.StatusOK, RateResponse{
		From:   quote.From.ID,
		To:     quote.To.ID,
		Amount: quote.Amount,
		Rate:   quote.Rate,
		Value:  quote.Value,
	})
}
