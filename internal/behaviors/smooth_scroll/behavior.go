package smooth_scroll

import (
	"strings"

	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/view"
)

const (
	behaviorID      = "smooth-scroll"
	behaviorVersion = "1.0.0"

	// HrefAttr carries each anchor's fragment target.
	HrefAttr = "href"
)

// SmoothScrollBehavior intercepts in-page hash links and glides the view to
// the target's top. Links whose target does not exist are left to default
// navigation.
type SmoothScrollBehavior struct {
	view *view.State
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

// New returns an unattached anchor handler.
func New() *SmoothScrollBehavior {
	return &SmoothScrollBehavior{}
}

// Info describes the behavior.
func (b *SmoothScrollBehavior) Info() behavior.Info {
	return behavior.Info{
		ID:          behaviorID,
		Name:        "Smooth Scroll",
		Description: "Animates in-page hash navigation instead of jumping.",
		Version:     behaviorVersion,
	}
}

// Attach activates whenever the page carries at least one in-page link.
func (b *SmoothScrollBehavior) Attach(ctx *behavior.Context) (bool, error) {
	b.view = ctx.View
	for _, el := range ctx.Doc.WithAttr(HrefAttr) {
		if href, _ := el.Attr(HrefAttr); strings.HasPrefix(href, "#") {
			return true, nil
		}
	}
	return false, nil
}

// HandleEvent consumes clicks on hash links whose target exists.
func (b *SmoothScrollBehavior) HandleEvent(ctx *behavior.Context, ev behavior.Event) error {
	click, ok := ev.(*behavior.Click)
	if !ok {
		return nil
	}
	el := ctx.Doc.ByID(click.TargetID)
	if el == nil {
		return nil
	}
	href, ok := el.Attr(HrefAttr)
	if !ok || !strings.HasPrefix(href, "#") {
		return nil
	}
	top, found := targetTop(ctx, href)
	if !found {
		// Unknown fragment: leave default navigation untouched.
		return nil
	}
	click.PreventDefault()
	ctx.View.GlideTo(top, ctx.Clock())
	return nil
}

// Animating reports whether the view is still gliding toward a target.
func (b *SmoothScrollBehavior) Animating() bool {
	return b.view.Gliding()
}

func targetTop(ctx *behavior.Context, href string) (int, bool) {
	if section := ctx.Doc.SectionByID(href); section != nil {
		return section.Top, true
	}
	if el := ctx.Doc.ByID(href); el != nil {
		return el.Top, true
	}
	return 0, false
}
