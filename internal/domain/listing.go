package domain

// ItemMetadata is the structured metadata attached to an upstream listing. Any field may be empty.
type ItemMetadata struct {
	Name         string   `json:"name"`
	BaseType     string   `json:"base_type"`
	Icon         string   `json:"icon"`
	StackSize    int      `json:"stack_size"`
	MaxStackSize int      `json:"max_stack_size"`
	Description  string   `json:"description"`
	Effect       []string `json:"effect"`
}

// Listing is a raw upstream currency entry, before normalization.
type Listing struct {
	ID                 int64         `json:"id"`
	ItemID             int64         `json:"itemId"`
	CurrencyCategoryID int64         `json:"currencyCategoryId"`
	APIID              string        `json:"apiId"`
	Text               string        `json:"text"`
	CategoryAPIID      string        `json:"categoryApiId"`
	IconURL            string        `json:"iconUrl"`
	ItemMetadata       *ItemMetadata `json:"itemMetadata"`
	CurrentPrice       *float64      `json:"currentPrice"`
}

// ListingPage is one page of the upstream currency endpoint.
type ListingPage struct {
	CurrentPage int       `json:"currentPage"`
	Pages       int       `json:"pages"`
	Total       int       `json:"total"`
	Items       []Listing `json:"items"`
}
