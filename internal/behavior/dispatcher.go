package behavior

import "fmt"

// Dispatcher attaches registered behaviors to a page and fans events out to
// the active ones. One behavior failing never halts the others: errors are
// logged and swallowed, so a lost enhancement never costs the page itself.
type Dispatcher struct {
	ctx   *Context
	units []*unit
}

type unit struct {
	behavior Behavior
	info     Info
	active   bool
}

// NewDispatcher resolves every id from the registry. Construction fails only
// on unknown ids or broken factories; Attach decides activity.
func NewDispatcher(ctx *Context, reg *Registry, ids ...string) (*Dispatcher, error) {
	if ctx == nil {
		return nil, fmt.Errorf("behavior: context is required")
	}
	if reg == nil {
		return nil, fmt.Errorf("behavior: registry is required")
	}
	if len(ids) == 0 {
		ids = reg.IDs()
	}
	d := &Dispatcher{ctx: ctx}
	for _, id := range ids {
		b, err := reg.Resolve(id)
		if err != nil {
			return nil, err
		}
		d.units = append(d.units, &unit{behavior: b, info: b.Info()})
	}
	return d, nil
}

// Attach runs each behavior's page-ready wiring. A behavior that cannot find
// its markup, or errors while looking, is simply left inactive.
func (d *Dispatcher) Attach() {
	if d == nil {
		return
	}
	for _, u := range d.units {
		active, err := u.behavior.Attach(d.ctx)
		if err != nil {
			u.active = false
			if log := d.ctx.Scoped(u.info.ID); log != nil {
				log.Warn("attach failed: %v", err)
			}
			continue
		}
		u.active = active
	}
}

// Dispatch delivers the event to every active behavior in order, returning
// any asynchronous follow-up work behaviors scheduled.
func (d *Dispatcher) Dispatch(ev Event) []func() Event {
	if d == nil || ev == nil {
		return nil
	}
	for _, u := range d.units {
		if !u.active {
			continue
		}
		if err := u.behavior.HandleEvent(d.ctx, ev); err != nil {
			if log := d.ctx.Scoped(u.info.ID); log != nil {
				log.Warn("event suppressed: %v", err)
			}
		}
	}
	return d.ctx.TakeAsync()
}

// Animating reports whether any active behavior still drives an animation.
func (d *Dispatcher) Animating() bool {
	if d == nil {
		return false
	}
	for _, u := range d.units {
		if !u.active {
			continue
		}
		if a, ok := u.behavior.(Animator); ok && a.Animating() {
			return true
		}
	}
	return false
}

// Active reports whether the behavior with the given id attached.
func (d *Dispatcher) Active(id string) bool {
	if d == nil {
		return false
	}
	for _, u := range d.units {
		if u.info.ID == id {
			return u.active
		}
	}
	return false
}
