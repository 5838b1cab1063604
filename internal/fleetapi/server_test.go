package fleetapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, opts ...ServerOption) (*Server, *httptest.Server) {
	t.Helper()
	base := []ServerOption{
		WithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }),
	}
	srv := NewServer(Settings{}, append(base, opts...)...)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func TestFleetStatsCountsInventory(t *testing.T) {
	inventory := []Truck{
		{ID: "a", Name: "A", Status: StatusAvailable},
		{ID: "b", Name: "B", Status: StatusAvailable},
		{ID: "c", Name: "C", Status: StatusRented},
		{ID: "d", Name: "D", Status: StatusSold},
	}
	_, ts := newTestServer(t, WithInventory(inventory))

	resp, err := http.Get(ts.URL + "/api/fleet-stats")
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var stats Stats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Stats{Total: 4, Available: 2, Rented: 1, Sold: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestCreateLeadAssignsID(t *testing.T) {
	srv, ts := newTestServer(t)
	body, _ := json.Marshal(Lead{
		CustomerName: "Maria Lopez",
		Phone:        "(555) 123-4567",
		Message:      "Interested in the 16ft trailer",
	})
	resp, err := http.Post(ts.URL+"/api/leads", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post lead: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var stored Lead
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stored.ID == "" {
		t.Fatalf("expected assigned lead id")
	}
	if stored.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be stamped")
	}
	if leads := srv.Leads(); len(leads) != 1 || leads[0].CustomerName != "Maria Lopez" {
		t.Fatalf("lead not stored: %+v", leads)
	}
}

func TestCreateLeadRejectsUnreachableCustomer(t *testing.T) {
	_, ts := newTestServer(t)
	body, _ := json.Marshal(Lead{CustomerName: "Ghost"})
	resp, err := http.Post(ts.URL+"/api/leads", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post lead: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestCreateLeadRejectsMalformedBody(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/leads", "application/json", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatalf("post lead: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
