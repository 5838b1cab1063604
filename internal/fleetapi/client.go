package fleetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to the fleet backend. Callers treat every error as
// non-fatal: the page keeps its statically rendered counts when the backend
// is unreachable.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption customizes client construction.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client (used in tests).
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient creates a client for the given base URL, e.g.
// "http://127.0.0.1:8750".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// FleetStats fetches the aggregate fleet counters.
func (c *Client) FleetStats(ctx context.Context) (Stats, error) {
	if c == nil || c.baseURL == "" {
		return Stats{}, fmt.Errorf("fleetapi: client not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/fleet-stats", nil)
	if err != nil {
		return Stats{}, fmt.Errorf("fleetapi: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Stats{}, fmt.Errorf("fleetapi: fetch stats: %w", err)
	}
	defer drainAndClose(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return Stats{}, fmt.Errorf("fleetapi: fetch stats: unexpected status %d", resp.StatusCode)
	}
	var stats Stats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return Stats{}, fmt.Errorf("fleetapi: decode stats: %w", err)
	}
	return stats, nil
}

// SubmitLead posts a contact-form inquiry and returns the stored lead
// (with its assigned id).
func (c *Client) SubmitLead(ctx context.Context, lead Lead) (Lead, error) {
	if c == nil || c.baseURL == "" {
		return Lead{}, fmt.Errorf("fleetapi: client not configured")
	}
	lead.Normalize()
	if err := lead.Validate(); err != nil {
		return Lead{}, err
	}
	body, err := json.Marshal(lead)
	if err != nil {
		return Lead{}, fmt.Errorf("fleetapi: encode lead: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/leads", bytes.NewReader(body))
	if err != nil {
		return Lead{}, fmt.Errorf("fleetapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return Lead{}, fmt.Errorf("fleetapi: submit lead: %w", err)
	}
	defer drainAndClose(resp.Body)
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return Lead{}, fmt.Errorf("fleetapi: submit lead: unexpected status %d", resp.StatusCode)
	}
	var stored Lead
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return Lead{}, fmt.Errorf("fleetapi: decode lead: %w", err)
	}
	return stored, nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 1<<16))
	_ = body.Close()
}
