package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"poeconv/internal/calculator"
	"poeconv/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 10

// Calculator is the session surface the handlers drive; *calculator.Session implements it.
type Calculator interface {
	State() (calculator.State, error)
	Reload(ctx context.Context) error
	SelectLeague(ctx context.Context, key string) error
	Catalog(query string) (calculator.CatalogView, error)
	AddLine() (domain.LineItem, error)
	RemoveLine(id domain.LineID) error
	SetLineCurrency(id domain.LineID, currencyID string) (domain.LineItem, error)
	SetLineAmount(id domain.LineID, text string) (domain.LineItem, bool, error)
	SetTarget(currencyID string) (*domain.CurrencyItem, error)
	Quote(fromID, toID string, amount float64) (calculator.Quote, error)
	Export() (domain.ExportDocument, error)
	SaveExport(ctx context.Context) (domain.StoredExport, error)
	GetExport(ctx context.Context, id uuid.UUID) (domain.StoredExport, error)
}

type Handler struct {
	calc Calculator
}

func NewCalculatorHandler(calc Calculator) *Handler {
	return &Handler{calc: calc}
}

type errorResponse struct {
	Error string `json:"error"`
}

type LineResponse struct {
	ID       int64                `json:"id" example:"1"`
	Currency *domain.CurrencyItem `json:"currency"`
	Amount   string               `json:"amount" example:"1.5"`
}

func toLineResponse(l domain.LineItem) LineResponse {
	return LineResponse{ID: int64(l.ID), Currency: l.Currency, Amount: l.Amount}
}

func toLineResponses(lines []domain.LineItem) []LineResponse {
	res := make([]LineResponse, 0, len(lines))
	for _, l := range lines {
		res = append(res, toLineResponse(l))
	}
	return res
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeServiceError maps session errors to status codes. Unknown errors are logged and hidden.
func writeServiceError(w http.ResponseWriter, handler string, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotReady):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, domain.ErrLeagueNotFound),
		errors.Is(err, domain.ErrLineNotFound),
		errors.Is(err, domain.ErrCurrencyNotFound),
		errors.Is(err, domain.ErrExportNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrLastLine):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrExportsDisabled):
		writeError(w, http.StatusNotImplemented, err.Error())
	default:
		msg := "ups, something went wrong this time"
		logrus.WithError(err).WithField("handler", handler).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func lineIDParam(w http.ResponseWriter, r *http.Request) (domain.LineID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid line ID")
		return 0, false
	}
	return domain.LineID(id), true
}
