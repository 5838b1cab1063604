package counter

import (
	"strconv"
	"time"

	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/page"
	"github.com/Nestorservice/asapfoodtrailer/internal/view"
)

const (
	behaviorID      = "counter"
	behaviorVersion = "1.0.0"

	// CountAttr holds the animation target on each stat element.
	CountAttr = "data-count"
	// DoneClass marks counters whose animation has consumed its one shot.
	DoneClass = "counted"

	// Duration is the fixed animation length.
	Duration = 2000 * time.Millisecond
	// VisibilityThreshold is the visible ratio that triggers a counter.
	VisibilityThreshold = 0.5
)

// CounterBehavior animates stat elements from 0 to their data-count target
// the first time they become half visible. Each element fires exactly once
// per page life.
type CounterBehavior struct {
	obs     *view.Observer
	running map[string]*run
}

type run struct {
	el   *page.Element
	anim *view.Animation
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

// New returns an unattached counter animator.
func New() *CounterBehavior {
	return &CounterBehavior{
		obs:     view.NewObserver(VisibilityThreshold),
		running: map[string]*run{},
	}
}

// Info describes the behavior.
func (b *CounterBehavior) Info() behavior.Info {
	return behavior.Info{
		ID:          behaviorID,
		Name:        "Counter Animator",
		Description: "Counts stat values up from zero once they scroll into view.",
		Version:     behaviorVersion,
	}
}

// Attach observes every data-count element and renders its resting zero.
func (b *CounterBehavior) Attach(ctx *behavior.Context) (bool, error) {
	els := ctx.Doc.WithAttr(CountAttr)
	if len(els) == 0 {
		return false, nil
	}
	for _, el := range els {
		el.Text = "0"
		b.obs.Observe(el)
	}
	return true, nil
}

// HandleEvent starts animations when elements become visible and advances
// running ones on each frame.
func (b *CounterBehavior) HandleEvent(ctx *behavior.Context, ev behavior.Event) error {
	switch e := ev.(type) {
	case behavior.PageReady, behavior.Scroll:
		b.trigger(ctx)
	case behavior.Frame:
		b.trigger(ctx)
		b.advance(e.Now)
	}
	return nil
}

// Animating reports whether any counter is still mid-flight.
func (b *CounterBehavior) Animating() bool {
	return len(b.running) > 0
}

// trigger starts a run for each newly visible element. The target is read
// once, here; a missing or non-numeric attribute defaults to 0, which
// settles immediately with no animation.
func (b *CounterBehavior) trigger(ctx *behavior.Context) {
	for _, el := range b.obs.Take(ctx.View) {
		target := TargetOf(el)
		if target <= 0 {
			b.settle(el, 0)
			continue
		}
		b.running[el.ID] = &run{
			el:   el,
			anim: view.NewAnimation(0, float64(target), ctx.Clock(), Duration),
		}
	}
}

func (b *CounterBehavior) advance(now time.Time) {
	for id, r := range b.running {
		if r.anim.Done(now) {
			// Pin to the exact target so eased truncation can never leave
			// the display one below it.
			b.settle(r.el, int(r.anim.Target()))
			delete(b.running, id)
			continue
		}
		r.el.Text = strconv.Itoa(int(r.anim.Value(now)))
	}
}

func (b *CounterBehavior) settle(el *page.Element, value int) {
	el.Text = strconv.Itoa(value)
	el.AddClass(DoneClass)
}

// TargetOf parses an element's data-count attribute, defaulting to 0 for
// missing or malformed values.
func TargetOf(el *page.Element) int {
	raw, ok := el.Attr(CountAttr)
	if !ok {
		return 0
	}
	target, err := strconv.Atoi(raw)
	if err != nil || target < 0 {
		return 0
	}
	return target
}
