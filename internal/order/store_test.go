package order_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/kiwari-pos/dinein/internal/order"
)

func TestStore_DispatchReturnsSnapshot(t *testing.T) {
	store := order.NewStore()

	snap := store.Dispatch(order.AddItem{Item: item("m1", 65000)})
	if len(snap.Cart) != 1 {
		t.Fatalf("cart: got %d lines, want 1", len(snap.Cart))
	}

	// Mutating a snapshot must not leak into the store.
	snap.Cart[0].Quantity = 42
	if got := store.State().Cart[0].Quantity; got != 1 {
		t.Errorf("store quantity: got %d, want 1", got)
	}
}

func TestStore_CompleteOrderIsAtomicForReaders(t *testing.T) {
	store := order.NewStore()
	for i := 0; i < 3; i++ {
		store.Dispatch(order.AddItem{Item: item("m1", 1000)})
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			s := store.State()
			if len(s.Cart) > 0 && len(s.LastOrder) > 0 {
				t.Error("observed pending cart and completed order at once")
				return
			}
		}
	}()

	store.Dispatch(order.CompleteOrder{})
	close(stop)
	wg.Wait()

	s := store.State()
	if len(s.Cart) != 0 || len(s.LastOrder) != 1 || s.LastOrder[0].Quantity != 3 {
		t.Errorf("after completion: %+v", s)
	}
}

func TestStore_Observers(t *testing.T) {
	var names []string
	var lastGuests int
	store := order.NewStore(order.WithObserver(func(a order.Action, next order.State) {
		names = append(names, a.Name())
		lastGuests = next.GuestCount
	}))

	store.Dispatch(order.SetGuests{Count: 99})
	store.Dispatch(order.ClearCart{})

	if len(names) != 2 || names[0] != "set_guests" || names[1] != "clear_cart" {
		t.Errorf("observed actions: got %v", names)
	}
	if lastGuests != 12 {
		t.Errorf("observed guests: got %d, want 12", lastGuests)
	}
}

func TestStore_ConcurrentAdds(t *testing.T) {
	store := order.NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(order.AddItem{Item: item("m1", 1)})
		}()
	}
	wg.Wait()

	s := store.State()
	if len(s.Cart) != 1 || s.Cart[0].Quantity != 50 {
		t.Errorf("cart: got %+v, want one line with quantity 50", s.Cart)
	}
}

func TestStore_DispatchIf(t *testing.T) {
	errRejected := errors.New("rejected")
	var observed int
	store := order.NewStore(order.WithObserver(func(order.Action, order.State) { observed++ }))
	store.Dispatch(order.AddItem{Item: item("m1", 65000)})

	_, err := store.DispatchIf(order.CompleteOrder{}, func(s order.State) error {
		if len(s.Cart) < 2 {
			return errRejected
		}
		return nil
	})
	if !errors.Is(err, errRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if s := store.State(); len(s.Cart) != 1 || s.LastOrder != nil {
		t.Errorf("rejected action changed state: %+v", s)
	}
	if observed != 1 {
		t.Errorf("observers: got %d calls, want 1", observed)
	}

	next, err := store.DispatchIf(order.CompleteOrder{}, func(order.State) error { return nil })
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(next.Cart) != 0 || len(next.LastOrder) != 1 {
		t.Errorf("after completion: %+v", next)
	}
}

func TestStore_DispatchAll(t *testing.T) {
	var names []string
	store := order.NewStore(order.WithObserver(func(a order.Action, next order.State) {
		names = append(names, a.Name())
	}))

	s := store.DispatchAll(order.SetMode{Mode: order.ModeTakeAway}, order.SetLanguage{Lang: order.LangEN})
	if s.Mode != order.ModeTakeAway || s.Lang != order.LangEN {
		t.Errorf("state: got %s/%s", s.Mode, s.Lang)
	}
	if len(names) != 2 || names[0] != "set_mode" || names[1] != "set_language" {
		t.Errorf("observed actions: got %v", names)
	}
}
