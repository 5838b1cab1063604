package behavior

import (
	"context"
	"time"

	"github.com/Nestorservice/asapfoodtrailer/internal/config"
	"github.com/Nestorservice/asapfoodtrailer/internal/fleetapi"
	"github.com/Nestorservice/asapfoodtrailer/internal/logbook"
	"github.com/Nestorservice/asapfoodtrailer/internal/page"
	"github.com/Nestorservice/asapfoodtrailer/internal/view"
)

// StatsFetcher is the outbound port for the live stats request.
type StatsFetcher interface {
	FleetStats(ctx context.Context) (fleetapi.Stats, error)
}

// Revealer is the optional scroll-reveal animator. When absent the reveal
// behavior is a no-op, matching a page loaded without the animation library.
type Revealer interface {
	Reveal(el *page.Element)
}

// Context carries everything a behavior may touch. Each behavior receives
// explicit references instead of reaching into ambient global state, which
// keeps them testable in isolation.
type Context struct {
	Doc  *page.Document
	View *view.State
	Log  *logbook.Logbook
	Site *config.Config

	// Stats is nil when no backend is configured.
	Stats StatsFetcher
	// Reveal is nil when the reveal animator is unavailable.
	Reveal Revealer

	Now func() time.Time

	async []func() Event
}

// Clock returns the context time source, defaulting to time.Now.
func (c *Context) Clock() time.Time {
	if c == nil || c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Go schedules asynchronous work whose resulting event is fed back through
// the dispatcher. The page's only async operation is the stats fetch; it is
// fire-and-forget with no retry and no cancellation.
func (c *Context) Go(fn func() Event) {
	if c == nil || fn == nil {
		return
	}
	c.async = append(c.async, fn)
}

// TakeAsync drains the scheduled asynchronous work.
func (c *Context) TakeAsync() []func() Event {
	if c == nil || len(c.async) == 0 {
		return nil
	}
	out := c.async
	c.async = nil
	return out
}

// Scoped returns a component-scoped logger, safe on a nil logbook.
func (c *Context) Scoped(id string) *logbook.Scoped {
	if c == nil || c.Log == nil {
		return nil
	}
	return c.Log.Scoped(id)
}
