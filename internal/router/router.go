package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kiwari-pos/dinein/internal/auth"
	"github.com/kiwari-pos/dinein/internal/catalog"
	"github.com/kiwari-pos/dinein/internal/config"
	"github.com/kiwari-pos/dinein/internal/enum"
	"github.com/kiwari-pos/dinein/internal/handler"
	"github.com/kiwari-pos/dinein/internal/kitchen"
	"github.com/kiwari-pos/dinein/internal/metrics"
	mw "github.com/kiwari-pos/dinein/internal/middleware"
	"github.com/kiwari-pos/dinein/internal/order"
	"github.com/kiwari-pos/dinein/internal/payment"
	"github.com/kiwari-pos/dinein/internal/ws"
)

// Deps are the long-lived components the routes share.
type Deps struct {
	Session *order.Store // guest ordering session
	Counter *order.Store // cashier POS order
	Board   *kitchen.Board
	Staff   *auth.Directory
	Hub     *ws.Hub
	Metrics *metrics.Registry
}

// New creates a Chi router with all application routes wired up.
// Guest screens are public; cashier, kitchen and admin screens require a
// staff token with the matching role.
func New(cfg *config.Config, d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(d.Metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})
	r.Method("GET", "/metrics", d.Metrics.Handler())

	menu := catalog.Menu()
	tables := catalog.Tables()

	// Guest screens (public)
	handler.NewSessionHandler(d.Session).RegisterRoutes(r)
	handler.NewTableHandler(d.Session, tables).RegisterRoutes(r)
	handler.NewMenuHandler(d.Session, menu).RegisterRoutes(r)
	r.Route("/cart", handler.NewCartHandler(d.Session, menu).RegisterRoutes)
	r.Route("/payment", handler.NewPaymentHandler(payment.NewService(d.Session, cfg.PaymentDelay)).RegisterRoutes)
	handler.NewReceiptHandler(d.Session).RegisterRoutes(r)

	handler.NewAuthHandler(d.Staff, cfg.JWTSecret).RegisterRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/kitchen", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(d.Hub, cfg.JWTSecret, ws.RoomKitchen, []string{enum.UserRoleKitchen, enum.UserRoleOwner}, w, r)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleCashier, enum.UserRoleOwner))
			cashier := handler.NewCashierHandler(d.Counter, payment.NewService(d.Counter, cfg.PaymentDelay), menu)
			r.Route("/cashier", cashier.RegisterRoutes)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleKitchen, enum.UserRoleOwner))
			r.Route("/kitchen", handler.NewKitchenHandler(d.Board).RegisterRoutes)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleOwner))
			r.Route("/admin", handler.NewAdminHandler(tables, d.Board).RegisterRoutes)
		})
	})

	log.Println("Router initialized with all handlers")
	return r
}
