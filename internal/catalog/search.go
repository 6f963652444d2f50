package catalog

import (
	"slices"
	"strings"

	"poeconv/internal/domain"
)

// Search filters items whose name contains query, ignoring case, sorted by name.
func Search(items []domain.CurrencyItem, query string) []domain.CurrencyItem {
	needle := strings.ToLower(strings.TrimSpace(query))
	found := make([]domain.CurrencyItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			found = append(found, item)
		}
	}
	slices.SortStableFunc(found, func(a, b domain.CurrencyItem) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return found
}
