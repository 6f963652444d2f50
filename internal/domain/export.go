package domain

import (
	"time"

	"github.com/google/uuid"
)

type ExportInput struct {
	ID       LineID  `json:"id"`
	Currency *string `json:"currency"`
	Amount   string  `json:"amount"`
}

// ExportDocument is the downloadable conversion result.
type ExportDocument struct {
	Inputs         []ExportInput `json:"inputs"`
	TargetCurrency *string       `json:"targetCurrency"`
	ConvertedValue float64       `json:"convertedValue"`
}

type StoredExport struct {
	ID        uuid.UUID
	League    string
	Document  ExportDocument
	CreatedAt time.Time
}
