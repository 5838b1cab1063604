package sticky_header

import (
	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/page"
)

const (
	behaviorID      = "sticky-header"
	behaviorVersion = "1.0.0"

	// HeaderID is the element the controller looks up.
	HeaderID = "site-header"
	// StickyClass is the state class toggled on the header.
	StickyClass = "sticky"
	// Threshold is the scroll offset past which the header pins.
	Threshold = 80
)

// StickyHeaderBehavior toggles the header's sticky state from the scroll
// offset. The toggle is idempotent and cheap, so it tolerates high-frequency
// scroll events without debouncing.
type StickyHeaderBehavior struct {
	header *page.Element
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

// New returns an unattached sticky header controller.
func New() *StickyHeaderBehavior {
	return &StickyHeaderBehavior{}
}

// Info describes the behavior.
func (b *StickyHeaderBehavior) Info() behavior.Info {
	return behavior.Info{
		ID:          behaviorID,
		Name:        "Sticky Header",
		Description: "Pins the site header once the page scrolls past the threshold.",
		Version:     behaviorVersion,
	}
}

// Attach looks the header up; the behavior stays inactive without it.
func (b *StickyHeaderBehavior) Attach(ctx *behavior.Context) (bool, error) {
	b.header = ctx.Doc.ByID(HeaderID)
	return b.header != nil, nil
}

// HandleEvent re-derives the sticky state on every scroll.
func (b *StickyHeaderBehavior) HandleEvent(ctx *behavior.Context, ev behavior.Event) error {
	switch e := ev.(type) {
	case behavior.PageReady:
		b.apply(ctx.View.Offset())
	case behavior.Scroll:
		b.apply(e.Offset)
	}
	return nil
}

func (b *StickyHeaderBehavior) apply(offset int) {
	if offset > Threshold {
		b.header.AddClass(StickyClass)
		return
	}
	b.header.RemoveClass(StickyClass)
}
