package catalog

import "poeconv/internal/domain"

const chaosOrbIcon = "https://web.poecdn.com/image/Art/2DItems/Currency/CurrencyRerollRare.png"

// Fallback returns a fresh single-item catalog holding the reference currency at rate 1.
func Fallback(league string) domain.Catalog {
	return domain.Catalog{
		League:      league,
		CurrentPage: 1,
		Pages:       1,
		Total:       1,
		Degraded:    true,
		Items: []domain.CurrencyItem{
			{
				ID:           "chaos",
				Name:         "Chaos Orb",
				Icon:         chaosOrbIcon,
				Category:     "currency",
				Description:  "Reforges a rare item with new random modifiers",
				Effects:      []string{"Reforges a rare item with new random modifiers"},
				ChaosValue:   1,
				ExaltedValue: 1.0 / chaosPerExalted,
				DivineValue:  1.0 / chaosPerDivine,
			},
		},
	}
}
