// Package catalog holds the static reference data the ordering flow reads:
// the menu and the dining-room tables. Nothing here is ever mutated.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kiwari-pos/dinein/internal/enum"
)

// Errors returned by catalog lookups.
var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrTableNotFound   = errors.New("table not found")
	ErrTableNotOpen    = errors.New("table is not available")
	ErrInvalidCategory = errors.New("invalid category")
)

// Category groups menu items on the browsing screens.
type Category string

const (
	CategoryAll   Category = enum.CategoryAll
	CategoryFood  Category = enum.CategoryFood
	CategoryDrink Category = enum.CategoryDrink
	CategorySnack Category = enum.CategorySnack
)

// ParseCategory accepts an empty string as CategoryAll.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case "", CategoryAll:
		return CategoryAll, nil
	case CategoryFood, CategoryDrink, CategorySnack:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// MenuItem is a sellable dish or drink. Price is in whole rupiah.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
	Stock       int      `json:"stock"`
	Badge       string   `json:"badge,omitempty"`
}

// TableStatus is supplied by the sample data; selection only reads it.
type TableStatus string

const (
	TableAvailable TableStatus = enum.TableStatusAvailable
	TableOccupied  TableStatus = enum.TableStatusOccupied
	TableReserved  TableStatus = enum.TableStatusReserved
)

// Table is a dining-room table guests can be seated at.
type Table struct {
	ID       int         `json:"id"`
	Label    string      `json:"label"`
	Capacity int         `json:"capacity"`
	Status   TableStatus `json:"status"`
}

// Selectable reports whether guests may pick this table.
func (t Table) Selectable() bool {
	return t.Status == TableAvailable
}

// FilterMenu narrows items to a category and a case-insensitive name search.
// Relative order is kept.
func FilterMenu(items []MenuItem, category Category, query string) []MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]MenuItem, 0, len(items))
	for _, it := range items {
		if category != "" && category != CategoryAll && it.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FindItem looks up a menu item by id.
func FindItem(items []MenuItem, id string) (MenuItem, error) {
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return MenuItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// FindTable looks up a table by id.
func FindTable(tables []Table, id int) (Table, error) {
	for _, t := range tables {
		if t.ID == id {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("%w: %d", ErrTableNotFound, id)
}

// CountByStatus tallies tables per status.
func CountByStatus(tables []Table) map[TableStatus]int {
	counts := make(map[TableStatus]int, 3)
	for _, t := range tables {
		counts[t.Status]++
	}
	return counts
}
