package ws

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/kiwari-pos/dinein/internal/kitchen"
)

// RoomKitchen is the room kitchen displays subscribe to.
const RoomKitchen = "kitchen"

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewEvent marshals payload into an Event of the given type.
func NewEvent(eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, Payload: data}, nil
}

type roomEvent struct {
	Room  string
	Event Event
}

// Hub maintains the set of active clients per room and broadcasts to them.
type Hub struct {
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *roomEvent

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *roomEvent, 256),
	}
}

// Run starts the hub's main loop. Call it as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.room] == nil {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.drop(client)
			h.mu.Unlock()

		case ev := <-h.broadcast:
			message, err := json.Marshal(ev.Event)
			if err != nil {
				log.Printf("ERROR: marshal ws event %s: %v", ev.Event.Type, err)
				continue
			}

			h.mu.Lock()
			for client := range h.rooms[ev.Room] {
				select {
				case client.send <- message:
				default:
					// slow consumer
					h.drop(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop removes client from its room and closes its send channel.
// Caller must hold h.mu.
func (h *Hub) drop(client *Client) {
	clients, ok := h.rooms[client.room]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.room)
	}
}

// Broadcast queues event for every client in room.
func (h *Hub) Broadcast(room string, event Event) {
	h.broadcast <- &roomEvent{Room: room, Event: event}
}

// ClientCount reports how many clients are subscribed to room.
func (h *Hub) ClientCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// TicketPublisher forwards board events to room so open displays refresh.
func TicketPublisher(h *Hub, room string) kitchen.Observer {
	return func(event string, t kitchen.Ticket) {
		ev, err := NewEvent(event, t)
		if err != nil {
			log.Printf("ERROR: %v", err)
			return
		}
		h.Broadcast(room, ev)
	}
}
