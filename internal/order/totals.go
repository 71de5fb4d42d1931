package order

import "github.com/shopspring/decimal"

// TaxRate is the PB1 restaurant tax applied to the subtotal.
var TaxRate = decimal.RequireFromString("0.11")

// Totals are derived from cart lines on every read and never stored.
type Totals struct {
	Subtotal  int64 `json:"subtotal"`
	Tax       int64 `json:"tax"`
	Total     int64 `json:"total"`
	ItemCount int   `json:"item_count"`
}

// Subtotal is the sum of price times quantity over lines.
func Subtotal(lines []CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Amount()
	}
	return sum
}

// Tax rounds subtotal*TaxRate to whole rupiah, halves away from zero.
func Tax(subtotal int64) int64 {
	return decimal.NewFromInt(subtotal).Mul(TaxRate).Round(0).IntPart()
}

// ItemCount is the total number of units across lines.
func ItemCount(lines []CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// Summarize computes all derived amounts for lines.
func Summarize(lines []CartLine) Totals {
	sub := Subtotal(lines)
	tax := Tax(sub)
	return Totals{
		Subtotal:  sub,
		Tax:       tax,
		Total:     sub + tax,
		ItemCount: ItemCount(lines),
	}
}
