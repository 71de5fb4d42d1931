package receipt_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/order"
	"github.com/kiwari-pos/dinein/internal/receipt"
)

var now = time.Date(2026, time.October, 7, 14, 32, 0, 0, time.UTC)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1000, "Rp 1.000"},
		{130000, "Rp 130.000"},
		{12450000, "Rp 12.450.000"},
		{-14300, "-Rp 14.300"},
	}
	for _, tc := range tests {
		if got := receipt.FormatRupiah(tc.in); got != tc.want {
			t.Errorf("FormatRupiah(%d): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOrderID(t *testing.T) {
	if got := receipt.OrderID(now, 42); got != "KOU-20261007-0042" {
		t.Errorf("order id: got %s", got)
	}
	if got := receipt.OrderID(now, 9998); got != "KOU-20261007-9998" {
		t.Errorf("order id: got %s", got)
	}
	if got := receipt.OrderID(now, -1); got != "KOU-20261007-0001" {
		t.Errorf("negative serial: got %s", got)
	}
	if got := receipt.OrderID(now, math.MinInt64); got != "KOU-20261007-5948" || strings.Contains(got, "--") {
		t.Errorf("min int serial: got %s", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	if got := receipt.FormatDate(now, order.LangID); got != "07 Oktober 2026" {
		t.Errorf("ID date: got %s", got)
	}
	if got := receipt.FormatDate(now, order.LangEN); got != "07 October 2026" {
		t.Errorf("EN date: got %s", got)
	}
	if got := receipt.FormatTime(now, order.LangID); got != "14.32" {
		t.Errorf("ID time: got %s", got)
	}
	if got := receipt.FormatTime(now, order.LangEN); got != "14:32" {
		t.Errorf("EN time: got %s", got)
	}
}

func TestBuild_PrefersLastOrder(t *testing.T) {
	s := order.Initial()
	s = order.Apply(s, order.AddItem{Item: catalog.MenuItem{ID: "m1", Name: "Salmon Don", Price: 65000}})
	s = order.Apply(s, order.AddItem{Item: catalog.MenuItem{ID: "m1", Name: "Salmon Don", Price: 65000}})
	s = order.Apply(s, order.CompleteOrder{})
	s = order.Apply(s, order.AddItem{Item: catalog.MenuItem{ID: "m8", Name: "Ocha Ice", Price: 15000}})
	table := catalog.Tables()[0]
	s = order.Apply(s, order.SetTable{Table: &table})

	r := receipt.Build(s, now, 7)

	if r.Preview {
		t.Error("receipt of a paid order should not be a preview")
	}
	if len(r.Lines) != 1 || r.Lines[0].Name != "Salmon Don" || r.Lines[0].Quantity != 2 {
		t.Fatalf("lines: got %+v", r.Lines)
	}
	if r.Lines[0].AmountLabel != "Rp 130.000" {
		t.Errorf("amount label: got %s", r.Lines[0].AmountLabel)
	}
	if r.Totals.Total != 144300 || r.TotalLabel != "Rp 144.300" {
		t.Errorf("totals: got %+v %s", r.Totals, r.TotalLabel)
	}
	if r.TableLabel != "T01" {
		t.Errorf("table label: got %s", r.TableLabel)
	}
	if r.OrderID != "KOU-20261007-0007" {
		t.Errorf("order id: got %s", r.OrderID)
	}
}

func TestBuild_FallsBackToCart(t *testing.T) {
	s := order.Initial()
	s = order.Apply(s, order.CompleteOrder{}) // empty last order
	s = order.Apply(s, order.AddItem{Item: catalog.MenuItem{ID: "m8", Name: "Ocha Ice", Price: 15000}})

	r := receipt.Build(s, now, 1)
	if r.Preview || len(r.Lines) != 1 || r.Lines[0].Name != "Ocha Ice" {
		t.Errorf("expected cart line, got preview=%v lines=%+v", r.Preview, r.Lines)
	}
	if r.TableLabel != receipt.DefaultTableLabel {
		t.Errorf("table label: got %s", r.TableLabel)
	}
}

func TestBuild_Preview(t *testing.T) {
	r := receipt.Build(order.Initial(), now, 1)

	if !r.Preview {
		t.Error("empty session should render a preview")
	}
	menu := catalog.Menu()
	if len(r.Lines) != 3 {
		t.Fatalf("preview lines: got %d, want 3", len(r.Lines))
	}
	var sub int64
	for i, l := range r.Lines {
		if l.Name != menu[i].Name || l.Quantity != 1 {
			t.Errorf("line %d: got %+v", i, l)
		}
		sub += menu[i].Price
	}
	if r.Totals.Subtotal != sub {
		t.Errorf("subtotal: got %d, want %d", r.Totals.Subtotal, sub)
	}
}
