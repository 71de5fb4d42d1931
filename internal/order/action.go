package order

import "github.com/kiwari-pos/dinein/internal/catalog"

// Action is a state transition. The set is closed: only types in this
// package implement it, and Apply is the only way to run one.
type Action interface {
	// Name identifies the action in logs and metrics.
	Name() string
	apply(s State) State
}

// Apply returns the state after a. The input is never modified.
func Apply(s State, a Action) State {
	return a.apply(s.Clone())
}

// AddItem adds one unit of Item, appending a new line when the item is not
// in the cart yet. Notes only apply to a newly appended line.
type AddItem struct {
	Item  catalog.MenuItem
	Notes string
}

// RemoveItem drops the line for ID. Unknown ids are ignored.
type RemoveItem struct {
	ID string
}

// SetQuantity sets the absolute quantity of a line; zero or less removes it.
type SetQuantity struct {
	ID       string
	Quantity int
}

// ClearCart empties the cart and nothing else.
type ClearCart struct{}

// CompleteOrder moves the cart into LastOrder in one step.
type CompleteOrder struct{}

// SetTable replaces the selected table; nil clears it. Availability is the
// caller's concern.
type SetTable struct {
	Table *catalog.Table
}

// SetGuests stores Count clamped to [MinGuests, MaxGuests].
type SetGuests struct {
	Count int
}

// SetMode replaces the order mode.
type SetMode struct {
	Mode Mode
}

// SetLanguage replaces the display language.
type SetLanguage struct {
	Lang Language
}

func (AddItem) Name() string       { return "add_item" }
func (RemoveItem) Name() string    { return "remove_item" }
func (SetQuantity) Name() string   { return "set_quantity" }
func (ClearCart) Name() string     { return "clear_cart" }
func (CompleteOrder) Name() string { return "complete_order" }
func (SetTable) Name() string      { return "set_table" }
func (SetGuests) Name() string     { return "set_guests" }
func (SetMode) Name() string       { return "set_mode" }
func (SetLanguage) Name() string   { return "set_language" }

func (a AddItem) apply(s State) State {
	if i := indexOf(s.Cart, a.Item.ID); i >= 0 {
		s.Cart[i].Quantity++
		return s
	}
	s.Cart = append(s.Cart, CartLine{Item: a.Item, Quantity: 1, Notes: a.Notes})
	return s
}

func (a RemoveItem) apply(s State) State {
	out := s.Cart[:0]
	for _, l := range s.Cart {
		if l.Item.ID != a.ID {
			out = append(out, l)
		}
	}
	s.Cart = out
	return s
}

func (a SetQuantity) apply(s State) State {
	if a.Quantity <= 0 {
		return RemoveItem{ID: a.ID}.apply(s)
	}
	if i := indexOf(s.Cart, a.ID); i >= 0 {
		s.Cart[i].Quantity = a.Quantity
	}
	return s
}

func (ClearCart) apply(s State) State {
	s.Cart = []CartLine{}
	return s
}

func (CompleteOrder) apply(s State) State {
	s.LastOrder = cloneLines(s.Cart)
	s.Cart = []CartLine{}
	return s
}

func (a SetTable) apply(s State) State {
	if a.Table == nil {
		s.SelectedTable = nil
		return s
	}
	t := *a.Table
	s.SelectedTable = &t
	return s
}

func (a SetGuests) apply(s State) State {
	s.GuestCount = clampGuests(a.Count)
	return s
}

func (a SetMode) apply(s State) State {
	s.Mode = a.Mode
	return s
}

func (a SetLanguage) apply(s State) State {
	s.Lang = a.Lang
	return s
}
