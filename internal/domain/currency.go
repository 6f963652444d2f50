package domain

// CurrencyItem is one tradeable currency kind as priced for a league.
// ChaosValue is the canonical rate; ExaltedValue and DivineValue are display-only rescalings of it.
type CurrencyItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Icon         string   `json:"icon"`
	Category     string   `json:"category,omitempty"`
	Description  string   `json:"description,omitempty"`
	Effects      []string `json:"effects,omitempty"`
	ChaosValue   float64  `json:"chaos_value"`
	ExaltedValue float64  `json:"exalted_value"`
	DivineValue  float64  `json:"divine_value"`
}

// Convertible reports whether the item can be used as a conversion target.
func (c *CurrencyItem) Convertible() bool {
	return c != nil && c.ChaosValue > 0
}

type Catalog struct {
	League      string
	CurrentPage int
	Pages       int
	Total       int
	Items       []CurrencyItem
	Degraded    bool
}

// Find returns a pointer into Items for the given id.
func (c *Catalog) Find(id string) *CurrencyItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

type League struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
