// Package order owns the in-progress order of a session: the cart, the
// chosen table and guest count, the order mode, the display language and
// the last completed order.
//
// State is only ever changed by Apply, a pure reducer over a closed set of
// actions. Store wraps one State for callers that share it.
package order

import (
	"errors"
	"fmt"

	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/enum"
)

const (
	MinGuests     = 1
	MaxGuests     = 12
	DefaultGuests = 2
)

// Errors returned when parsing session choices from user input.
var (
	ErrInvalidMode     = errors.New("invalid order mode")
	ErrInvalidLanguage = errors.New("invalid language")
)

// Mode is how the guest takes the order.
type Mode string

const (
	ModeDineIn   Mode = enum.OrderModeDineIn
	ModeTakeAway Mode = enum.OrderModeTakeAway
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDineIn, ModeTakeAway:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Language is the display language of the session.
type Language string

const (
	LangID Language = enum.LanguageID
	LangEN Language = enum.LanguageEN
)

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LangID, LangEN:
		return Language(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
}

// CartLine is one menu item in the cart. Quantity is always >= 1.
type CartLine struct {
	Item     catalog.MenuItem `json:"item"`
	Quantity int              `json:"quantity"`
	Notes    string           `json:"notes,omitempty"`
}

// Amount is the line price times quantity.
func (l CartLine) Amount() int64 {
	return l.Item.Price * int64(l.Quantity)
}

// State is a snapshot of the session order.
//
// LastOrder is nil until the first CompleteOrder and a (possibly empty)
// copy of the cart afterwards.
type State struct {
	Cart          []CartLine     `json:"cart"`
	LastOrder     []CartLine     `json:"last_order"`
	SelectedTable *catalog.Table `json:"selected_table"`
	GuestCount    int            `json:"guest_count"`
	Mode          Mode           `json:"order_mode"`
	Lang          Language       `json:"lang"`
}

// Initial returns the state every session starts with.
func Initial() State {
	return State{
		Cart:       []CartLine{},
		GuestCount: DefaultGuests,
		Mode:       ModeDineIn,
		Lang:       LangID,
	}
}

// Clone returns a deep copy so callers can never alias store internals.
func (s State) Clone() State {
	out := s
	out.Cart = cloneLines(s.Cart)
	if s.LastOrder != nil {
		out.LastOrder = cloneLines(s.LastOrder)
	}
	if s.SelectedTable != nil {
		t := *s.SelectedTable
		out.SelectedTable = &t
	}
	return out
}

// Line returns the cart line for an item id.
func (s State) Line(id string) (CartLine, bool) {
	if i := indexOf(s.Cart, id); i >= 0 {
		return s.Cart[i], true
	}
	return CartLine{}, false
}

func cloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}

func indexOf(lines []CartLine, id string) int {
	for i, l := range lines {
		if l.Item.ID == id {
			return i
		}
	}
	return -1
}

func clampGuests(n int) int {
	return max(MinGuests, min(MaxGuests, n))
}
