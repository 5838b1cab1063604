package fleet_stats

import (
	"context"
	"strconv"

	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/counter"
)

const (
	behaviorID      = "fleet-stats"
	behaviorVersion = "1.0.0"

	// SectionID gates the whole component: no stats section, no request.
	SectionID = "fleet-stats"
)

// FleetStatsBehavior issues one request for live fleet counters and applies
// the total to counters whose static target is zero. Every failure is
// swallowed: the statically rendered counts are the designed fallback, so
// the user never sees an error.
type FleetStatsBehavior struct {
	requested bool
}

// Register installs the behavior factory.
func Register(reg *behavior.Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(behaviorID, func() (behavior.Behavior, error) {
		return New(), nil
	})
}

// New returns an unattached stats fetcher.
func New() *FleetStatsBehavior {
	return &FleetStatsBehavior{}
}

// Info describes the behavior.
func (b *FleetStatsBehavior) Info() behavior.Info {
	return behavior.Info{
		ID:          behaviorID,
		Name:        "Live Fleet Stats",
		Description: "Refines zero-valued counters from the fleet-stats endpoint.",
		Version:     behaviorVersion,
	}
}

// Attach activates only when the stats section exists and a fetcher is
// wired.
func (b *FleetStatsBehavior) Attach(ctx *behavior.Context) (bool, error) {
	if ctx.Stats == nil {
		return false, nil
	}
	return ctx.Doc.SectionByID(SectionID) != nil, nil
}

// HandleEvent fires the fetch once on page ready and applies the result.
func (b *FleetStatsBehavior) HandleEvent(ctx *behavior.Context, ev behavior.Event) error {
	switch e := ev.(type) {
	case behavior.PageReady:
		if b.requested {
			return nil
		}
		b.requested = true
		fetcher := ctx.Stats
		ctx.Go(func() behavior.Event {
			stats, err := fetcher.FleetStats(context.Background())
			return behavior.StatsResult{Stats: stats, Err: err}
		})
	case behavior.StatsResult:
		if e.Err != nil {
			if log := ctx.Scoped(behaviorID); log != nil {
				log.Warn("stats fetch suppressed: %v", e.Err)
			}
			return nil
		}
		b.apply(ctx, e.Stats.Total)
	}
	return nil
}

// apply refines every zero-target counter with the live total. Counters
// that already consumed their animation are updated in place; pending ones
// pick the new target up when they trigger.
func (b *FleetStatsBehavior) apply(ctx *behavior.Context, total int) {
	if total <= 0 {
		return
	}
	for _, el := range ctx.Doc.WithAttr(counter.CountAttr) {
		if counter.TargetOf(el) != 0 {
			continue
		}
		el.SetAttr(counter.CountAttr, strconv.Itoa(total))
		if el.HasClass(counter.DoneClass) {
			el.Text = strconv.Itoa(total)
		}
	}
}
