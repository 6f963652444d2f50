package basket

import (
	"regexp"
	"slices"
	"strings"

	"poeconv/internal/domain"
)

const DefaultAmount = "1"

// amountPattern accepts an optionally empty non-negative decimal: digits with at most one point.
var amountPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)

// Basket is an ordered list of line items. It is not safe for concurrent use.
type Basket struct {
	lines  []domain.LineItem
	nextID domain.LineID
}

func New() *Basket {
	return &Basket{}
}

// AddLine appends a row with no currency and the default amount.
func (b *Basket) AddLine() domain.LineItem {
	b.nextID++
	line := domain.LineItem{ID: b.nextID, Amount: DefaultAmount}
	b.lines = append(b.lines, line)
	return line
}

// RemoveLine deletes the row if present. Removing an unknown id is a no-op.
func (b *Basket) RemoveLine(id domain.LineID) bool {
	idx := b.index(id)
	if idx < 0 {
		return false
	}
	b.lines = slices.Delete(b.lines, idx, idx+1)
	return true
}

func (b *Basket) SetLineCurrency(id domain.LineID, currency *domain.CurrencyItem) bool {
	idx := b.index(id)
	if idx < 0 {
		return false
	}
	b.lines[idx].Currency = currency
	return true
}

// SetLineAmount stores text verbatim when it is a valid partial amount.
// Invalid text leaves the stored value untouched and reports false.
func (b *Basket) SetLineAmount(id domain.LineID, text string) bool {
	idx := b.index(id)
	if idx < 0 || !ValidAmount(text) {
		return false
	}
	b.lines[idx].Amount = text
	return true
}

func (b *Basket) Line(id domain.LineID) (domain.LineItem, bool) {
	idx := b.index(id)
	if idx < 0 {
		return domain.LineItem{}, false
	}
	return b.lines[idx], true
}

// Lines returns a copy of the rows in insertion order.
func (b *Basket) Lines() []domain.LineItem {
	return slices.Clone(b.lines)
}

func (b *Basket) Len() int {
	return len(b.lines)
}

// Seed adds the initial row when the basket is empty and the catalog has items.
// The row points at the first item whose name contains referenceName, ignoring case.
func (b *Basket) Seed(catalog *domain.Catalog, referenceName string) bool {
	if len(b.lines) > 0 || catalog == nil || len(catalog.Items) == 0 {
		return false
	}
	line := b.AddLine()
	b.SetLineCurrency(line.ID, FindByName(catalog, referenceName))
	return true
}

// Rebind points every row at the item with the same id in catalog.
// Rows whose currency no longer exists lose their selection.
func (b *Basket) Rebind(catalog *domain.Catalog) {
	for i := range b.lines {
		if b.lines[i].Currency == nil {
			continue
		}
		b.lines[i].Currency = catalog.Find(b.lines[i].Currency.ID)
	}
}

// Reset drops every row. Line ids keep increasing so old ids are never reused.
func (b *Basket) Reset() {
	b.lines = nil
}

func (b *Basket) index(id domain.LineID) int {
	return slices.IndexFunc(b.lines, func(l domain.LineItem) bool { return l.ID == id })
}

func ValidAmount(text string) bool {
	return amountPattern.MatchString(text)
}

// FindByName returns the first catalog item whose name contains name, ignoring case.
func FindByName(catalog *domain.Catalog, name string) *domain.CurrencyItem {
	if catalog == nil || name == "" {
		return nil
	}
	needle := strings.ToLower(name)
	for i := range catalog.Items {
		if strings.Contains(strings.ToLower(catalog.Items[i].Name), needle) {
			return &catalog.Items[i]
		}
	}
	return nil
}
