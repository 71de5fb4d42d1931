package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kiwari-pos/dinein/internal/auth"
	"github.com/kiwari-pos/dinein/internal/config"
	"github.com/kiwari-pos/dinein/internal/kitchen"
	"github.com/kiwari-pos/dinein/internal/metrics"
	"github.com/kiwari-pos/dinein/internal/order"
	"github.com/kiwari-pos/dinein/internal/router"
	"github.com/kiwari-pos/dinein/internal/ws"
)

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		Port:           "8081",
		JWTSecret:      "router-test-secret",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	staff, err := auth.NewDirectory([]auth.StaffSeed{
		{Username: "pemilik", Role: "OWNER", PIN: "9999"},
		{Username: "kasir", Role: "CASHIER", PIN: "1234"},
		{Username: "dapur", Role: "KITCHEN", PIN: "5678"},
	})
	if err != nil {
		t.Fatalf("staff directory: %v", err)
	}

	reg := metrics.NewRegistry()
	hub := ws.NewHub()
	// hub.Run() is never stopped; acceptable for tests.
	go hub.Run()

	r := router.New(cfg, router.Deps{
		Session: order.NewStore(order.WithObserver(reg.OrderObserver("session"))),
		Counter: order.NewStore(order.WithObserver(reg.OrderObserver("cashier"))),
		Board:   kitchen.NewBoard(kitchen.SampleTickets(), kitchen.WithObserver(reg.TicketObserver())),
		Staff:   staff,
		Hub:     hub,
		Metrics: reg,
	})
	return &testServer{t: t, handler: r}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) login(username, pin string) string {
	s.t.Helper()
	rr := s.do("POST", "/auth/pin-login", "", map[string]string{"username": username, "pin": pin})
	if rr.Code != http.StatusOK {
		s.t.Fatalf("login %s: status %d; body: %s", username, rr.Code, rr.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	json.NewDecoder(rr.Body).Decode(&resp)
	return resp.AccessToken
}

func TestGuestFlow(t *testing.T) {
	s := newTestServer(t)

	steps := []struct {
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"POST", "/session/start", map[string]string{"mode": "dine-in", "lang": "ID"}, http.StatusOK},
		{"PUT", "/session/table", map[string]int{"table_id": 1}, http.StatusOK},
		{"PUT", "/session/guests", map[string]int{"count": 4}, http.StatusOK},
		{"POST", "/cart/items", map[string]string{"item_id": "m1"}, http.StatusCreated},
		{"POST", "/cart/items", map[string]string{"item_id": "m1"}, http.StatusCreated},
		{"POST", "/payment", map[string]string{"method": "qris"}, http.StatusOK},
	}
	for _, st := range steps {
		if rr := s.do(st.method, st.path, "", st.body); rr.Code != st.want {
			t.Fatalf("%s %s: status %d, want %d; body: %s", st.method, st.path, rr.Code, st.want, rr.Body.String())
		}
	}

	rr := s.do("GET", "/receipt", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("receipt status: %d", rr.Code)
	}
	var rcpt struct {
		TableLabel string `json:"table_label"`
		Preview    bool   `json:"preview"`
		TotalLabel string `json:"total_label"`
		GuestCount int    `json:"guest_count"`
	}
	json.NewDecoder(rr.Body).Decode(&rcpt)
	if rcpt.TableLabel != "T01" || rcpt.Preview || rcpt.TotalLabel != "Rp 144.300" || rcpt.GuestCount != 4 {
		t.Errorf("receipt: got %+v", rcpt)
	}

	body := s.do("GET", "/metrics", "", nil).Body
	out, _ := io.ReadAll(body)
	for _, want := range []string{
		`dinein_orders_completed_total{store="session"} 1`,
		`dinein_http_requests_total{method="POST",route="/cart/items",status="201"} 2`,
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestStaffRoutes_RoleChecks(t *testing.T) {
	s := newTestServer(t)
	owner := s.login("pemilik", "9999")
	cashier := s.login("kasir", "1234")
	cook := s.login("dapur", "5678")

	tests := []struct {
		path  string
		token string
		want  int
	}{
		{"/kitchen/tickets", "", http.StatusUnauthorized},
		{"/kitchen/tickets", cashier, http.StatusForbidden},
		{"/kitchen/tickets", cook, http.StatusOK},
		{"/kitchen/tickets", owner, http.StatusOK},
		{"/cashier/order", cook, http.StatusForbidden},
		{"/cashier/order", cashier, http.StatusOK},
		{"/admin/dashboard", cashier, http.StatusForbidden},
		{"/admin/dashboard", owner, http.StatusOK},
	}
	for _, tc := range tests {
		if rr := s.do("GET", tc.path, tc.token, nil); rr.Code != tc.want {
			t.Errorf("GET %s: status %d, want %d", tc.path, rr.Code, tc.want)
		}
	}
}

func TestKitchenAdvance_ThroughRouter(t *testing.T) {
	s := newTestServer(t)
	cook := s.login("dapur", "5678")

	for i := 0; i < 3; i++ {
		if rr := s.do("POST", "/kitchen/tickets/ORD-001/advance", cook, nil); rr.Code != http.StatusOK {
			t.Fatalf("advance: status %d", rr.Code)
		}
	}

	var counts kitchen.Counts
	json.NewDecoder(s.do("GET", "/kitchen/stats", cook, nil).Body).Decode(&counts)
	if counts != (kitchen.Counts{Total: 4, New: 0, Cooking: 2, Ready: 2}) {
		t.Errorf("counts: got %+v", counts)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rr := s.do("GET", "/health", "", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"ok"`) {
		t.Errorf("health: %d %s", rr.Code, rr.Body.String())
	}
}
