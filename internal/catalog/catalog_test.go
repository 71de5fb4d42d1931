package catalog_test

import (
	"errors"
	"testing"

	"github.com/kiwari-pos/dinein/internal/catalog"
)

func TestMenu_UniqueIDsAndPositivePrices(t *testing.T) {
	seen := map[string]bool{}
	for _, it := range catalog.Menu() {
		if seen[it.ID] {
			t.Errorf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
		if it.Price <= 0 {
			t.Errorf("%s: price %d must be positive", it.ID, it.Price)
		}
	}
	if len(seen) != 14 {
		t.Errorf("menu size: got %d, want 14", len(seen))
	}
}

func TestTables_SampleLayout(t *testing.T) {
	tables := catalog.Tables()
	if len(tables) != 12 {
		t.Fatalf("tables: got %d, want 12", len(tables))
	}

	tests := []struct {
		idx      int
		label    string
		capacity int
		status   catalog.TableStatus
	}{
		{0, "T01", 2, catalog.TableAvailable},
		{2, "T03", 2, catalog.TableOccupied},
		{4, "T05", 4, catalog.TableAvailable},
		{5, "T06", 4, catalog.TableOccupied},
		{7, "T08", 4, catalog.TableReserved},
		{9, "T10", 6, catalog.TableOccupied},
		{11, "T12", 6, catalog.TableAvailable},
	}
	for _, tc := range tests {
		got := tables[tc.idx]
		if got.Label != tc.label || got.Capacity != tc.capacity || got.Status != tc.status {
			t.Errorf("table[%d]: got %+v, want %s/%d/%s", tc.idx, got, tc.label, tc.capacity, tc.status)
		}
	}

	counts := catalog.CountByStatus(tables)
	if counts[catalog.TableOccupied] != 3 || counts[catalog.TableReserved] != 1 || counts[catalog.TableAvailable] != 8 {
		t.Errorf("counts: got %v", counts)
	}
}

func TestFilterMenu(t *testing.T) {
	items := catalog.Menu()

	tests := []struct {
		name     string
		category catalog.Category
		query    string
		wantIDs  []string
	}{
		{"all", catalog.CategoryAll, "", nil},
		{"snacks", catalog.CategorySnack, "", []string{"m11", "m12", "m13", "m14"}},
		{"search is case-insensitive", catalog.CategoryAll, "  RAMEN ", []string{"m3"}},
		{"category and search", catalog.CategoryDrink, "o", []string{"m8", "m9"}},
		{"no match", catalog.CategoryFood, "soda", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := catalog.FilterMenu(items, tc.category, tc.query)
			if tc.wantIDs == nil {
				if len(got) != len(items) {
					t.Fatalf("got %d items, want %d", len(got), len(items))
				}
				return
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("got %d items, want %d", len(got), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if got[i].ID != id {
					t.Errorf("item[%d]: got %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := catalog.ParseCategory(""); err != nil || c != catalog.CategoryAll {
		t.Errorf("empty: got %q, %v", c, err)
	}
	if c, err := catalog.ParseCategory("minuman"); err != nil || c != catalog.CategoryDrink {
		t.Errorf("minuman: got %q, %v", c, err)
	}
	if _, err := catalog.ParseCategory("dessert"); !errors.Is(err, catalog.ErrInvalidCategory) {
		t.Errorf("dessert: expected ErrInvalidCategory, got %v", err)
	}
}

func TestFindItemAndTable(t *testing.T) {
	it, err := catalog.FindItem(catalog.Menu(), "m6")
	if err != nil {
		t.Fatalf("find m6: %v", err)
	}
	if it.Name != "Sushi Platter" {
		t.Errorf("name: got %s", it.Name)
	}
	if _, err := catalog.FindItem(catalog.Menu(), "m99"); !errors.Is(err, catalog.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}

	tbl, err := catalog.FindTable(catalog.Tables(), 8)
	if err != nil {
		t.Fatalf("find table 8: %v", err)
	}
	if tbl.Selectable() {
		t.Error("reserved table should not be selectable")
	}
	if _, err := catalog.FindTable(catalog.Tables(), 13); !errors.Is(err, catalog.ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
}
