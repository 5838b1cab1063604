package view

import "github.com/Nestorservice/asapfoodtrailer/internal/page"

// Observer watches elements for viewport intersection. Observation is
// one-shot: once an element crosses the threshold it is reported exactly
// once and dropped, so a watched set only ever shrinks.
type Observer struct {
	threshold float64
	entries   map[string]*page.Element
	order     []string
}

// NewObserver creates an observer firing at the given visibility ratio.
func NewObserver(threshold float64) *Observer {
	if threshold <= 0 {
		threshold = 0.01
	}
	if threshold > 1 {
		threshold = 1
	}
	return &Observer{threshold: threshold, entries: map[string]*page.Element{}}
}

// Observe registers an element. Elements without an id, or already
// registered, are ignored.
func (o *Observer) Observe(el *page.Element) {
	if o == nil || el == nil || el.ID == "" {
		return
	}
	if _, ok := o.entries[el.ID]; ok {
		return
	}
	o.entries[el.ID] = el
	o.order = append(o.order, el.ID)
}

// Unobserve drops an element before it fires.
func (o *Observer) Unobserve(id string) {
	if o == nil {
		return
	}
	delete(o.entries, id)
}

// Pending returns how many elements are still being watched.
func (o *Observer) Pending() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// Take returns every watched element that currently meets the visibility
// threshold, in observation order, unobserving each one so it never fires
// again.
func (o *Observer) Take(s *State) []*page.Element {
	if o == nil || len(o.entries) == 0 {
		return nil
	}
	var fired []*page.Element
	remaining := o.order[:0]
	for _, id := range o.order {
		el, ok := o.entries[id]
		if !ok {
			continue
		}
		if s.VisibleRatio(el) >= o.threshold {
			fired = append(fired, el)
			delete(o.entries, id)
			continue
		}
		remaining = append(remaining, id)
	}
	o.order = remaining
	return fired
}
