// Command devtoken signs staff tokens for local development, so the
// cashier, kitchen and admin routes can be called without the login screen.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/url"

	"github.com/kiwari-pos/dinein/internal/auth"
	"github.com/kiwari-pos/dinein/internal/config"
)

func main() {
	username := flag.String("user", "dapur", "Staff username (pemilik, kasir, dapur)")
	pin := flag.String("pin", "", "PIN override; defaults to the configured PIN for the user")
	host := flag.String("host", "", "Host for the printed websocket URL; defaults to localhost:$PORT")
	flag.Parse()

	cfg := config.Load()

	roster := auth.Roster(cfg.OwnerPIN, cfg.CashierPIN, cfg.KitchenPIN)
	dir, err := auth.NewDirectory(roster)
	if err != nil {
		log.Fatalf("build staff directory: %v", err)
	}

	if *pin == "" {
		for _, s := range roster {
			if s.Username == *username {
				*pin = s.PIN
			}
		}
	}

	staff, err := dir.Authenticate(*username, *pin)
	if err != nil {
		log.Fatalf("authenticate %s: %v", *username, err)
	}

	access, err := auth.GenerateToken(cfg.JWTSecret, staff.ID, staff.Role)
	if err != nil {
		log.Fatalf("sign access token: %v", err)
	}
	refresh, err := auth.GenerateRefreshToken(cfg.JWTSecret, staff.ID)
	if err != nil {
		log.Fatalf("sign refresh token: %v", err)
	}

	if *host == "" {
		*host = "localhost:" + cfg.Port
	}
	wsURL := url.URL{Scheme: "ws", Host: *host, Path: "/ws/kitchen", RawQuery: url.Values{"token": {access}}.Encode()}

	log.Printf("Signed tokens for %s (%s, ID: %s)", staff.Username, staff.Role, staff.ID)
	fmt.Printf("ACCESS_TOKEN=%s\n", access)
	fmt.Printf("REFRESH_TOKEN=%s\n", refresh)
	fmt.Printf("KITCHEN_WS=%s\n", wsURL.String())
}
