package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kiwari-pos/dinein/internal/auth"
	"github.com/kiwari-pos/dinein/internal/config"
	"github.com/kiwari-pos/dinein/internal/kitchen"
	"github.com/kiwari-pos/dinein/internal/metrics"
	"github.com/kiwari-pos/dinein/internal/order"
	"github.com/kiwari-pos/dinein/internal/router"
	"github.com/kiwari-pos/dinein/internal/ws"
)

func main() {
	cfg := config.Load()

	staff, err := auth.NewDirectory(auth.Roster(cfg.OwnerPIN, cfg.CashierPIN, cfg.KitchenPIN))
	if err != nil {
		log.Fatalf("build staff directory: %v", err)
	}

	reg := metrics.NewRegistry()

	hub := ws.NewHub()
	go hub.Run()

	deps := router.Deps{
		Session: order.NewStore(order.WithObserver(reg.OrderObserver("session"))),
		Counter: order.NewStore(order.WithObserver(reg.OrderObserver("cashier"))),
		Board: kitchen.NewBoard(kitchen.SampleTickets(),
			kitchen.WithObserver(reg.TicketObserver()),
			kitchen.WithObserver(ws.TicketPublisher(hub, ws.RoomKitchen)),
		),
		Staff:   staff,
		Hub:     hub,
		Metrics: reg,
	}

	r := router.New(cfg, deps)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
