package offcanvas_menu

import (
	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/page"
)

const (
	behaviorID      = "offcanvas-menu"
	behaviorVersion = "1.0.0"

	// ToggleID opens the menu; CloseID, OverlayID and any MenuLinkClass
	// element close it.
	ToggleID  = "menu-toggle"
	CloseID   = "menu-close"
	OverlayID = "menu-overlay"
	PanelID   = "mobile-menu"

	// MenuLinkClass marks navigation links inside the panel, so navigating
	// closes the menu.
	MenuLinkClass = "menu-link"

	// OpenClass is the state class mirrored onto panel and overlay.
	OpenClass = "open"
)

// MenuBehavior controls the off-canvas navigation panel. Invariant held at
// every step: the panel is open exactly when the overlay is open exactly
// when scrolling is locked.
type MenuBehavior struct {
	panel   *page.Element
	overlay *page.Element
	toggle  *page.Element
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

// New returns an unattached menu controller.
func New() *MenuBehavior {
	return &MenuBehavior{}
}

// Info describes the behavior.
func (b *MenuBehavior) Info() behavior.Info {
	return behavior.Info{
		ID:          behaviorID,
		Name:        "Off-canvas Menu",
		Description: "Opens and closes the mobile navigation panel with scroll locking.",
		Version:     behaviorVersion,
	}
}

// Attach resolves the panel, overlay and toggle. Missing any of the three
// disables the whole component; the close control and links are optional.
func (b *MenuBehavior) Attach(ctx *behavior.Context) (bool, error) {
	b.panel = ctx.Doc.ByID(PanelID)
	b.overlay = ctx.Doc.ByID(OverlayID)
	b.toggle = ctx.Doc.ByID(ToggleID)
	return b.panel != nil && b.overlay != nil && b.toggle != nil, nil
}

// HandleEvent reacts to clicks on the toggle, the close control, the
// overlay, and panel-internal navigation links.
func (b *MenuBehavior) HandleEvent(ctx *behavior.Context, ev behavior.Event) error {
	click, ok := ev.(*behavior.Click)
	if !ok {
		return nil
	}
	switch click.TargetID {
	case ToggleID:
		click.PreventDefault()
		if b.IsOpen() {
			b.Close(ctx)
		} else {
			b.Open(ctx)
		}
	case CloseID, OverlayID:
		click.PreventDefault()
		b.Close(ctx)
	default:
		if el := ctx.Doc.ByID(click.TargetID); el != nil && el.HasClass(MenuLinkClass) {
			// Navigation closes the menu; the click itself stays live so
			// the anchor handler can still scroll to the target.
			b.Close(ctx)
		}
	}
	return nil
}

// Open sets the open-state classes and locks page scrolling.
func (b *MenuBehavior) Open(ctx *behavior.Context) {
	b.panel.AddClass(OpenClass)
	b.overlay.AddClass(OpenClass)
	ctx.View.Lock()
}

// Close reverses Open. Closing an already-closed menu is a no-op.
func (b *MenuBehavior) Close(ctx *behavior.Context) {
	b.panel.RemoveClass(OpenClass)
	b.overlay.RemoveClass(OpenClass)
	ctx.View.Unlock()
}

// IsOpen reports whether the panel is currently open.
func (b *MenuBehavior) IsOpen() bool {
	return b.panel != nil && b.panel.HasClass(OpenClass)
}
