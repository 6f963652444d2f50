package catalog

import (
	"math"
	"strconv"

	"poeconv/internal/domain"
)

// Display-only rescalings of the chaos price. They are rough approximations, never used for conversion.
const (
	chaosPerExalted = 170
	chaosPerDivine  = 680
)

// Normalize turns an upstream listing into a catalog item.
// It reports false when the listing carries no usable identity.
func Normalize(l domain.Listing) (domain.CurrencyItem, bool) {
	id := l.APIID
	if id == "" && l.ID != 0 {
		id = strconv.FormatInt(l.ID, 10)
	}
	if id == "" {
		return domain.CurrencyItem{}, false
	}

	item := domain.CurrencyItem{
		ID:       id,
		Name:     l.Text,
		Icon:     l.IconURL,
		Category: l.CategoryAPIID,
	}
	if md := l.ItemMetadata; md != nil {
		if md.Name != "" {
			item.Name = md.Name
		}
		if md.Icon != "" {
			item.Icon = md.Icon
		}
		item.Description = md.Description
		item.Effects = md.Effect
	}

	item.ChaosValue = price(l.CurrentPrice)
	item.ExaltedValue = item.ChaosValue / chaosPerExalted
	item.DivineValue = item.ChaosValue / chaosPerDivine
	return item, true
}

// NormalizeAll normalizes listings in order, dropping unidentifiable and duplicate entries.
func NormalizeAll(listings []domain.Listing) []domain.CurrencyItem {
	items := make([]domain.CurrencyItem, 0, len(listings))
	seen := make(map[string]struct{}, len(listings))
	for _, l := range listings {
		item, ok := Normalize(l)
		if !ok {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return items
}

func price(p *float64) float64 {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) || *p < 0 {
		return 0
	}
	return *p
}
