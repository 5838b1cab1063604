package back_to_top

import (
	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/page"
	"github.com/Nestorservice/asapfoodtrailer/internal/view"
)

const (
	behaviorID      = "back-to-top"
	behaviorVersion = "1.0.0"

	// ButtonID is the injected floating control.
	ButtonID = "back-to-top"
	// VisibleClass toggles the control's visibility without removing it
	// from layout.
	VisibleClass = "visible"
	// Threshold is the scroll offset past which the control shows.
	Threshold = 400

	// StyleAttr carries the fixed visual contract of the injected button.
	StyleAttr = "style"
	// buttonStyle is cosmetic, not behavioral: size, offsets, rounding and
	// the brand orange.
	buttonStyle = "width:46px;height:46px;bottom:30px;right:30px;border-radius:50%;background:#FF7A00"
)

// BackToTopBehavior injects a floating button, shows it past the scroll
// threshold, and glides the page home on click.
type BackToTopBehavior struct {
	button *page.Element
	view   *view.State
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

// New returns an unattached back-to-top control.
func New() *BackToTopBehavior {
	return &BackToTopBehavior{}
}

// Info describes the behavior.
func (b *BackToTopBehavior) Info() behavior.Info {
	return behavior.Info{
		ID:          behaviorID,
		Name:        "Back To Top",
		Description: "Floating control that returns the page to the top.",
		Version:     behaviorVersion,
	}
}

// Attach injects the button unless the page already carries one.
func (b *BackToTopBehavior) Attach(ctx *behavior.Context) (bool, error) {
	b.view = ctx.View
	if existing := ctx.Doc.ByID(ButtonID); existing != nil {
		b.button = existing
		return true, nil
	}
	button := page.NewElement(ButtonID, page.KindButton)
	button.Text = "↑"
	button.SetAttr(StyleAttr, buttonStyle)
	ctx.Doc.InsertFloat(button)
	b.button = button
	return true, nil
}

// HandleEvent re-derives visibility from scroll position and serves clicks.
func (b *BackToTopBehavior) HandleEvent(ctx *behavior.Context, ev behavior.Event) error {
	switch e := ev.(type) {
	case behavior.PageReady:
		b.apply(ctx.View.Offset())
	case behavior.Scroll:
		b.apply(e.Offset)
	case *behavior.Click:
		if e.TargetID != ButtonID {
			return nil
		}
		e.PreventDefault()
		ctx.View.GlideTo(0, ctx.Clock())
	}
	return nil
}

// Animating reports whether the glide home is still in flight.
func (b *BackToTopBehavior) Animating() bool {
	return b.view.Gliding()
}

func (b *BackToTopBehavior) apply(offset int) {
	if offset > Threshold {
		b.button.AddClass(VisibleClass)
		return
	}
	b.button.RemoveClass(VisibleClass)
}
