package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/kiwari-pos/dinein/internal/kitchen"
	"github.com/kiwari-pos/dinein/internal/order"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns a private Prometheus registry and the collectors the
// service reports.
type Registry struct {
	reg *prometheus.Registry

	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	Actions         *prometheus.CounterVec
	OrdersCompleted *prometheus.CounterVec
	Revenue         *prometheus.CounterVec
	TicketEvents    *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dinein_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dinein_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "route", "status"})
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dinein_order_actions_total",
		Help: "Order store actions dispatched",
	}, []string{"store", "action"})
	completed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dinein_orders_completed_total",
		Help: "Orders moved from cart to last order",
	}, []string{"store"})
	revenue := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dinein_revenue_rupiah_total",
		Help: "Total (including tax) of completed orders in rupiah",
	}, []string{"store"})
	tickets := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dinein_kitchen_ticket_events_total",
		Help: "Kitchen ticket events by resulting status",
	}, []string{"event", "status"})

	r.MustRegister(httpRequests, httpDuration, actions, completed, revenue, tickets)
	return &Registry{
		reg:             r,
		HTTPRequests:    httpRequests,
		HTTPDuration:    httpDuration,
		Actions:         actions,
		OrdersCompleted: completed,
		Revenue:         revenue,
		TicketEvents:    tickets,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Middleware records count and latency per matched chi route pattern.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		labels := []string{req.Method, route, strconv.Itoa(status)}
		r.HTTPRequests.WithLabelValues(labels...).Inc()
		r.HTTPDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

// OrderObserver counts every action dispatched to the named store and the
// revenue of each completed order.
func (r *Registry) OrderObserver(store string) order.Observer {
	return func(a order.Action, next order.State) {
		r.Actions.WithLabelValues(store, a.Name()).Inc()
		if _, ok := a.(order.CompleteOrder); ok {
			r.OrdersCompleted.WithLabelValues(store).Inc()
			r.Revenue.WithLabelValues(store).Add(float64(order.Summarize(next.LastOrder).Total))
		}
	}
}

func (r *Registry) TicketObserver() kitchen.Observer {
	return func(event string, t kitchen.Ticket) {
		r.TicketEvents.WithLabelValues(event, string(t.Status)).Inc()
	}
}
