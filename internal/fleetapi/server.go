package fleetapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// Settings configures the fleet API daemon.
type Settings struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address renders the listen address.
func (s Settings) Address() string {
	host := s.Host
	if host == "" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("%s:%d", host, s.Port)
}

func (s *Settings) applyDefaults() {
	if s.ReadTimeout <= 0 {
		s.ReadTimeout = 5 * time.Second
	}
	if s.WriteTimeout <= 0 {
		s.WriteTimeout = 10 * time.Second
	}
	if s.IdleTimeout <= 0 {
		s.IdleTimeout = 60 * time.Second
	}
}

// Logger is the minimal logging surface the server needs.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}

// Server hosts the fleet-stats and leads endpoints over an in-memory
// inventory. It mirrors the dealership backend: stats are derived by
// counting truck statuses, leads are stored with generated ids.
type Server struct {
	settings Settings
	logger   Logger
	clock    func() time.Time
	newID    func() string

	mu       sync.RWMutex
	trucks   []Truck
	leads    []Lead
	server   *http.Server
	listener net.Listener
}

// ServerOption customizes server construction.
type ServerOption func(*Server)

// WithLogger overrides the default no-op logger.
func WithLogger(l Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock allows tests to control timestamps.
func WithClock(clock func() time.Time) ServerOption {
	return func(s *Server) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithInventory seeds the fleet inventory.
func WithInventory(trucks []Truck) ServerOption {
	return func(s *Server) {
		s.trucks = append([]Truck(nil), trucks...)
	}
}

// NewServer prepares a fleet API server using the provided settings.
func NewServer(settings Settings, opts ...ServerOption) *Server {
	settings.applyDefaults()
	s := &Server{
		settings: settings,
		logger:   nopLogger{},
		clock:    func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.NewString() },
		trucks:   DefaultInventory(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// DefaultInventory returns the demo fleet the daemon serves out of the box.
func DefaultInventory() []Truck {
	return []Truck{
		{ID: "ft-101", Name: "16ft Concession Trailer", Status: StatusAvailable},
		{ID: "ft-102", Name: "24ft Kitchen Trailer", Status: StatusAvailable},
		{ID: "ft-103", Name: "Step Van Food Truck", Status: StatusAvailable},
		{ID: "ft-104", Name: "Coffee Cart Trailer", Status: StatusRented},
		{ID: "ft-105", Name: "BBQ Smoker Trailer", Status: StatusRented},
		{ID: "ft-106", Name: "Taco Truck", Status: StatusSold},
	}
}

// Router builds the HTTP handler. Exposed so tests can drive it through
// httptest without a listener.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Get("/health", s.handleHealth)
	r.Get("/api/fleet-stats", s.handleFleetStats)
	r.Post("/api/leads", s.handleCreateLead)
	r.Get("/api/leads", s.handleListLeads)
	return r
}

// Start binds the TCP listener and begins serving HTTP traffic.
func (s *Server) Start(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("fleetapi: server is nil")
	}
	s.mu.Lock()
	if s.listener != nil {
		s.mu.Unlock()
		return fmt.Errorf("fleetapi: server already started")
	}
	addr := s.settings.Address()
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("fleetapi: listen %s: %w", addr, err)
	}
	s.listener = listener
	server := &http.Server{
		Handler:      s.Router(),
		ReadTimeout:  s.settings.ReadTimeout,
		WriteTimeout: s.settings.WriteTimeout,
		IdleTimeout:  s.settings.IdleTimeout,
	}
	if ctx != nil {
		server.BaseContext = func(net.Listener) context.Context { return ctx }
	}
	s.server = server
	s.mu.Unlock()

	s.logger.Info("fleetapi listening on %s", listener.Addr())
	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("fleetapi: serve: %w", err)
	}
	return nil
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()
	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

// StatsSnapshot derives the counters from current inventory.
func (s *Server) StatsSnapshot() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := Stats{Total: len(s.trucks)}
	for _, truck := range s.trucks {
		switch truck.Status {
		case StatusAvailable:
			stats.Available++
		case StatusRented:
			stats.Rented++
		case StatusSold:
			stats.Sold++
		}
	}
	return stats
}

// Leads returns stored leads, newest first.
func (s *Server) Leads() []Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]Lead(nil), s.leads...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFleetStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.StatsSnapshot())
}

func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var lead Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	lead.Normalize()
	if err := lead.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	lead.ID = s.newID()
	lead.CreatedAt = s.clock()
	s.mu.Lock()
	s.leads = append(s.leads, lead)
	s.mu.Unlock()
	s.logger.Info("lead %s recorded for %s", lead.ID, lead.CustomerName)
	writeJSON(w, http.StatusCreated, lead)
}

func (s *Server) handleListLeads(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Leads())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
