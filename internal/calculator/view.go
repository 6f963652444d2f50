package calculator

import (
	"encoding/json"

	"poeconv/internal/conversion"
	"poeconv/internal/domain"
)

// ExportFileName is the suggested download name of an export document.
const ExportFileName = "conversion-result.json"

type State struct {
	Leagues        []domain.League
	ActiveLeague   string
	Degraded       bool
	CatalogError   string
	Lines          []domain.LineItem
	Removable      bool
	Target         *domain.CurrencyItem
	ConvertedValue float64
}

type CatalogView struct {
	League   string
	Degraded bool
	Total    int
	Items    []domain.CurrencyItem
}

type Quote struct {
	From   domain.CurrencyItem
	To     domain.CurrencyItem
	Amount float64
	Rate   float64
	Value  float64
}

func buildExport(lines []domain.LineItem, target *domain.CurrencyItem) domain.ExportDocument {
	doc := domain.ExportDocument{
		Inputs:         make([]domain.ExportInput, 0, len(lines)),
		ConvertedValue: conversion.Convert(lines, target),
	}
	for _, line := range lines {
		in := domain.ExportInput{ID: line.ID, Amount: line.Amount}
		if line.Currency != nil {
			name := line.Currency.Name
			in.Currency = &name
		}
		doc.Inputs = append(doc.Inputs, in)
	}
	if target != nil {
		name := target.Name
		doc.TargetCurrency = &name
	}
	return doc
}

// MarshalExport renders the document the way it is downloaded: two-space indented JSON.
func MarshalExport(doc domain.ExportDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
