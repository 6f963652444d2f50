package handler

import (
	"fmt"
	"net/http"
	"time"

	"poeconv/internal/calculator"
	"poeconv/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CreateExportResponse struct {
	ExportID  string    `json:"export_id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	League    string    `json:"league" example:"Standard"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-02T15:04:05Z"`
}

// DownloadExport godoc
// @Summary Download the conversion result
// @Description Indented JSON document of the current basket, target and converted value
// @Tags Exports
// @Produce json
// @Success 200 {object} domain.ExportDocument
// @Failure 503 {object} errorResponse
// @Router /export [get]
func (h *Handler) DownloadExport(w http.ResponseWriter, _ *http.Request) {
	doc, err := h.calc.Export()
	if err != nil {
		writeServiceError(w, "DownloadExport", err)
		return
	}
	writeDocument(w, doc)
}

// CreateExport godoc
// @Summary Store the conversion result
// @Tags Exports
// @Produce json
// @Success 201 {object} CreateExportResponse
// @Failure 501 {object} errorResponse "storage disabled"
// @Failure 503 {object} errorResponse
// @Router /exports [post]
func (h *Handler) CreateExport(w http.ResponseWriter, r *http.Request) {
	stored, err := h.calc.SaveExport(r.Context())
	if err != nil {
		writeServiceError(w, "CreateExport", err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateExportResponse{
		ExportID:  stored.ID.String(),
		League:    stored.League,
		CreatedAt: stored.CreatedAt,
	})
}

// GetStoredExport godoc
// @Summary Download a stored conversion result
// @Tags Exports
// @Produce json
// @Param id path string true "Export ID"
// @Success 200 {object} domain.ExportDocument
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 501 {object} errorResponse "storage disabled"
// @Router /exports/{id} [get]
func (h *Handler) GetStoredExport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid export ID format")
		return
	}

	stored, err := h.calc.GetExport(r.Context(), id)
	if err != nil {
		writeServiceError(w, "GetStoredExport", err)
		return
	}
	writeDocument(w, stored.Document)
}

func writeDocument(w http.ResponseWriter, doc domain.ExportDocument) {
	body, err := calculator.MarshalExport(doc)
	if err != nil {
		logrus.WithError(err).WithField("handler", "writeDocument").Error("export encoding failed")
		writeError(w, http.StatusInternalServerError, "failed to encode export")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", calculator.ExportFileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
