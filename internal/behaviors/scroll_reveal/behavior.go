package scroll_reveal

import (
	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/view"
)

const (
	behaviorID      = "scroll-reveal"
	behaviorVersion = "1.0.0"

	// RevealAttr marks elements that enter with a reveal transition.
	RevealAttr = "data-reveal"

	// visibilityThreshold matches the shallow trigger the reveal effect
	// wants: start the transition as the element's top edge appears.
	visibilityThreshold = 0.15
)

// ScrollRevealBehavior hands each marked element to the runtime's reveal
// engine the first time it scrolls into view. Without an engine wired the
// behavior stays inactive and marked elements simply render as-is.
type ScrollRevealBehavior struct {
	obs *view.Observer
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

// New returns an unattached reveal delegate.
func New() *ScrollRevealBehavior {
	return &ScrollRevealBehavior{obs: view.NewObserver(visibilityThreshold)}
}

// Info describes the behavior.
func (b *ScrollRevealBehavior) Info() behavior.Info {
	return behavior.Info{
		ID:          behaviorID,
		Name:        "Scroll Reveal",
		Description: "Triggers entrance transitions for marked elements on first visibility.",
		Version:     behaviorVersion,
	}
}

// Attach activates only when a reveal engine is wired and the page carries
// marked elements.
func (b *ScrollRevealBehavior) Attach(ctx *behavior.Context) (bool, error) {
	if ctx.Reveal == nil {
		return false, nil
	}
	marked := ctx.Doc.WithAttr(RevealAttr)
	if len(marked) == 0 {
		return false, nil
	}
	for _, el := range marked {
		b.obs.Observe(el)
	}
	return true, nil
}

// HandleEvent reveals any marked element that has entered the viewport.
func (b *ScrollRevealBehavior) HandleEvent(ctx *behavior.Context, ev behavior.Event) error {
	switch ev.(type) {
	case behavior.PageReady, behavior.Scroll, behavior.Frame:
		for _, el := range b.obs.Take(ctx.View) {
			ctx.Reveal.Reveal(el)
		}
	}
	return nil
}
