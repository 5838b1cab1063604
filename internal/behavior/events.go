package behavior

import (
	"time"

	"github.com/Nestorservice/asapfoodtrailer/internal/fleetapi"
)

// Event is anything the page can react to. Events are dispatched
// synchronously to every attached behavior in registration order.
type Event interface{ isEvent() }

// PageReady fires once after behaviors are attached and the document has
// been reflowed.
type PageReady struct{}

func (PageReady) isEvent() {}

// Scroll fires after the viewport offset changes, whatever moved it.
type Scroll struct {
	Offset int
}

func (Scroll) isEvent() {}

// Frame fires on each animation tick while any animator is live.
type Frame struct {
	Now time.Time
}

func (Frame) isEvent() {}

// Click fires when the user activates an element. Behaviors call
// PreventDefault to consume it; the program only runs default navigation
// when nothing did.
type Click struct {
	// TargetID is the activated element's id.
	TargetID string

	prevented bool
}

func (*Click) isEvent() {}

// PreventDefault marks the click as consumed.
func (c *Click) PreventDefault() {
	if c != nil {
		c.prevented = true
	}
}

// DefaultPrevented reports whether a behavior consumed the click.
func (c *Click) DefaultPrevented() bool {
	return c != nil && c.prevented
}

// Input fires on every keystroke in a form field, carrying the field
// element's id and the raw value as typed.
type Input struct {
	FieldID string
	Value   string
}

func (Input) isEvent() {}

// StatsResult delivers the outcome of the live stats fetch.
type StatsResult struct {
	Stats fleetapi.Stats
	Err   error
}

func (StatsResult) isEvent() {}
