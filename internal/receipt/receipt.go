package receipt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/order"
)

const (
	Restaurant = "KOU Restaurant"
	Footer     = "Powered by KOU POS v1.0"

	// DefaultTableLabel is printed when no table was chosen.
	DefaultTableLabel = "T-04"

	// MaxSerial bounds the random suffix of an order id.
	MaxSerial = 9999

	previewItems = 3
)

type Line struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	Amount      int64  `json:"amount"`
	Notes       string `json:"notes,omitempty"`
	AmountLabel string `json:"amount_label"`
}

type Receipt struct {
	Restaurant string       `json:"restaurant"`
	OrderID    string       `json:"order_id"`
	Date       string       `json:"date"`
	Time       string       `json:"time"`
	TableLabel string       `json:"table_label"`
	Mode       order.Mode   `json:"order_mode"`
	GuestCount int          `json:"guest_count"`
	Lines      []Line       `json:"lines"`
	Totals     order.Totals `json:"totals"`
	TotalLabel string       `json:"total_label"`
	Preview    bool         `json:"preview"`
	Footer     string       `json:"footer"`
}

// Build renders the receipt for s. It prints the last completed order,
// or the open cart when nothing was paid yet, or a preview of the first
// menu items when both are empty.
func Build(s order.State, now time.Time, serial int) Receipt {
	lines, preview := receiptLines(s)

	label := DefaultTableLabel
	if s.SelectedTable != nil {
		label = s.SelectedTable.Label
	}

	totals := order.Summarize(lines)
	out := Receipt{
		Restaurant: Restaurant,
		OrderID:    OrderID(now, serial),
		Date:       FormatDate(now, s.Lang),
		Time:       FormatTime(now, s.Lang),
		TableLabel: label,
		Mode:       s.Mode,
		GuestCount: s.GuestCount,
		Lines:      make([]Line, 0, len(lines)),
		Totals:     totals,
		TotalLabel: FormatRupiah(totals.Total),
		Preview:    preview,
		Footer:     Footer,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, Line{
			Name:        l.Item.Name,
			Quantity:    l.Quantity,
			Price:       l.Item.Price,
			Amount:      l.Amount(),
			Notes:       l.Notes,
			AmountLabel: FormatRupiah(l.Amount()),
		})
	}
	return out
}

func receiptLines(s order.State) ([]order.CartLine, bool) {
	if len(s.LastOrder) > 0 {
		return s.LastOrder, false
	}
	if len(s.Cart) > 0 {
		return s.Cart, false
	}
	menu := catalog.Menu()
	lines := make([]order.CartLine, 0, previewItems)
	for _, item := range menu[:min(previewItems, len(menu))] {
		lines = append(lines, order.CartLine{Item: item, Quantity: 1})
	}
	return lines, true
}

// OrderID formats KOU-YYYYMMDD-NNNN. serial is taken modulo MaxSerial.
func OrderID(now time.Time, serial int) string {
	n := serial % MaxSerial
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("KOU-%s-%04d", now.Format("20060102"), n)
}

var (
	monthsID = [...]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"}
	monthsEN = [...]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
)

// FormatDate renders a long date, e.g. "07 Oktober 2026".
func FormatDate(t time.Time, lang order.Language) string {
	month := monthsID[t.Month()-1]
	if lang == order.LangEN {
		month = monthsEN[t.Month()-1]
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), month, t.Year())
}

// FormatTime renders hours and minutes; Indonesian uses a dot separator.
func FormatTime(t time.Time, lang order.Language) string {
	if lang == order.LangEN {
		return t.Format("15:04")
	}
	return t.Format("15.04")
}

// FormatRupiah renders an amount the Indonesian way, e.g. "Rp 130.000".
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	b.WriteString(sign + "Rp ")
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
