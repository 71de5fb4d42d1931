package kitchen

import (
	"fmt"
	"sync"
)

// Observer receives a copy of every ticket the board adds or advances.
type Observer func(event string, t Ticket)

// Board events passed to observers.
const (
	EventCreated  = "ticket.created"
	EventAdvanced = "ticket.advanced"
)

// Option configures a Board.
type Option func(*Board)

// WithObserver registers an Observer.
func WithObserver(o Observer) Option {
	return func(b *Board) {
		b.observers = append(b.observers, o)
	}
}

// Board owns the kitchen's ticket list.
type Board struct {
	mu        sync.RWMutex
	tickets   []Ticket
	observers []Observer
}

// NewBoard creates a board holding copies of tickets, in order.
func NewBoard(tickets []Ticket, opts ...Option) *Board {
	b := &Board{tickets: make([]Ticket, 0, len(tickets))}
	for _, t := range tickets {
		b.tickets = append(b.tickets, t.clone())
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends a ticket. New tickets always start at StatusNew.
func (b *Board) Add(t Ticket) (Ticket, error) {
	if len(t.Items) == 0 {
		return Ticket{}, ErrEmptyTicket
	}
	t = t.clone()
	t.Status = StatusNew

	b.mu.Lock()
	for _, existing := range b.tickets {
		if existing.ID == t.ID {
			b.mu.Unlock()
			return Ticket{}, fmt.Errorf("%w: %s", ErrDuplicateTicket, t.ID)
		}
	}
	b.tickets = append(b.tickets, t)
	b.mu.Unlock()

	b.notify(EventCreated, t)
	return t.clone(), nil
}

// Advance moves the ticket with id one stage forward and returns it.
// A ready ticket stays ready. The bool is false when no ticket has id.
func (b *Board) Advance(id string) (Ticket, bool) {
	b.mu.Lock()
	idx := -1
	for i := range b.tickets {
		if b.tickets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.Unlock()
		return Ticket{}, false
	}
	before := b.tickets[idx].Status
	b.tickets[idx] = Advance(b.tickets[idx])
	t := b.tickets[idx].clone()
	b.mu.Unlock()

	if t.Status != before {
		b.notify(EventAdvanced, t)
	}
	return t, true
}

// Get returns one ticket by id.
func (b *Board) Get(id string) (Ticket, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, t := range b.tickets {
		if t.ID == id {
			return t.clone(), true
		}
	}
	return Ticket{}, false
}

// Tickets returns the tickets matching status, or all of them when status
// is empty.
func (b *Board) Tickets(status Status) []Ticket {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return FilterTickets(b.tickets, status)
}

// Counts is recomputed from the current tickets on every call.
func (b *Board) Counts() Counts {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return CountTickets(b.tickets)
}

func (b *Board) notify(event string, t Ticket) {
	for _, o := range b.observers {
		o(event, t.clone())
	}
}
