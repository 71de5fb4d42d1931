// Package kitchen tracks order tickets on the kitchen display through
// new -> cooking -> ready.
package kitchen

import (
	"errors"
	"fmt"

	"github.com/kiwari-pos/dinein/internal/enum"
)

// Errors returned by the board and by status parsing.
var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrDuplicateTicket = errors.New("ticket id already exists")
	ErrEmptyTicket     = errors.New("ticket has no items")
	ErrInvalidStatus   = errors.New("invalid ticket status")
)

// Status is the fulfilment stage of a ticket.
type Status string

const (
	StatusNew     Status = enum.TicketStatusNew
	StatusCooking Status = enum.TicketStatusCooking
	StatusReady   Status = enum.TicketStatusReady
)

// ParseStatus accepts "", "all" (meaning no filter) or a known status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "", "all":
		return "", nil
	case StatusNew, StatusCooking, StatusReady:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// transitions is the whole state machine. Ready has no way out.
var transitions = map[Status]Status{
	StatusNew:     StatusCooking,
	StatusCooking: StatusReady,
}

// Next returns the status that follows s, or false when s is terminal.
func Next(s Status) (Status, bool) {
	next, ok := transitions[s]
	return next, ok
}

// TicketItem is one dish on a ticket.
type TicketItem struct {
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Notes string `json:"notes,omitempty"`
}

// Ticket is one table's order as seen by the kitchen.
type Ticket struct {
	ID         string       `json:"id"`
	TableLabel string       `json:"table_label"`
	Items      []TicketItem `json:"items"`
	Status     Status       `json:"status"`
	PlacedAt   string       `json:"time"`
	Elapsed    string       `json:"elapsed"`
}

func (t Ticket) clone() Ticket {
	items := make([]TicketItem, len(t.Items))
	copy(items, t.Items)
	t.Items = items
	return t
}

// Advance moves t one step forward. A ready ticket is returned unchanged.
func Advance(t Ticket) Ticket {
	if next, ok := Next(t.Status); ok {
		t.Status = next
	}
	return t
}

// FilterTickets keeps tickets with the given status in their original
// order. An empty status keeps everything.
func FilterTickets(tickets []Ticket, status Status) []Ticket {
	out := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if status == "" || t.Status == status {
			out = append(out, t.clone())
		}
	}
	return out
}

// Counts summarises a board.
type Counts struct {
	Total   int `json:"total"`
	New     int `json:"new"`
	Cooking int `json:"cooking"`
	Ready   int `json:"ready"`
}

// CountTickets tallies tickets per status.
func CountTickets(tickets []Ticket) Counts {
	c := Counts{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case StatusNew:
			c.New++
		case StatusCooking:
			c.Cooking++
		case StatusReady:
			c.Ready++
		}
	}
	return c
}

// SampleTickets is the board the kitchen display opens with.
func SampleTickets() []Ticket {
	return []Ticket{
		{ID: "ORD-001", TableLabel: "T01", Items: []TicketItem{{Name: "Salmon Don", Qty: 2}, {Name: "Matcha Latte", Qty: 2}}, Status: StatusNew, PlacedAt: "14:32", Elapsed: "2 min"},
		{ID: "ORD-002", TableLabel: "T05", Items: []TicketItem{{Name: "Ramen Tonkotsu", Qty: 1}, {Name: "Gyoza", Qty: 1, Notes: "Extra sauce"}, {Name: "Ocha Ice", Qty: 1}}, Status: StatusCooking, PlacedAt: "14:28", Elapsed: "6 min"},
		{ID: "ORD-003", TableLabel: "T08", Items: []TicketItem{{Name: "Sushi Platter", Qty: 1}, {Name: "Sake", Qty: 2}}, Status: StatusReady, PlacedAt: "14:15", Elapsed: "19 min"},
		{ID: "ORD-004", TableLabel: "T03", Items: []TicketItem{{Name: "Chicken Katsu", Qty: 2}, {Name: "Beef Gyudon", Qty: 1}, {Name: "Yuzu Soda", Qty: 3}}, Status: StatusCooking, PlacedAt: "14:25", Elapsed: "9 min"},
	}
}
