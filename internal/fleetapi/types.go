package fleetapi

import (
	"fmt"
	"strings"
	"time"
)

// Stats is the fleet status counter payload served by /api/fleet-stats.
// Only Total is load-bearing for the page counters; the rest ride along for
// the admin surfaces.
type Stats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Rented    int `json:"rented"`
	Sold      int `json:"sold"`
}

// TruckStatus enumerates inventory states.
type TruckStatus string

const (
	StatusAvailable TruckStatus = "available"
	StatusRented    TruckStatus = "rented"
	StatusSold      TruckStatus = "sold"
)

// Truck is one unit of fleet inventory.
type Truck struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Status TruckStatus `json:"status"`
}

// Lead is a customer inquiry submitted from the contact form.
type Lead struct {
	ID           string    `json:"id,omitempty"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	TruckID      string    `json:"truck_id,omitempty"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Normalize trims user-entered fields before validation.
func (l *Lead) Normalize() {
	if l == nil {
		return
	}
	l.CustomerName = strings.TrimSpace(l.CustomerName)
	l.Email = strings.TrimSpace(l.Email)
	l.Phone = strings.TrimSpace(l.Phone)
	l.TruckID = strings.TrimSpace(l.TruckID)
	l.Message = strings.TrimSpace(l.Message)
}

// Validate enforces the minimum a lead needs to be actionable: a name and at
// least one way to reach the customer back.
func (l Lead) Validate() error {
	if l.CustomerName == "" {
		return fmt.Errorf("fleetapi: customer_name is required")
	}
	if l.Email == "" && l.Phone == "" {
		return fmt.Errorf("fleetapi: email or phone is required")
	}
	return nil
}
