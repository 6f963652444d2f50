package domain

type LineID int64

// LineItem is one basket row. Currency is nil until the user picks one; Amount holds the text exactly as typed.
type LineItem struct {
	ID       LineID
	Currency *CurrencyItem
	Amount   string
}
