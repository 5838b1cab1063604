package lazy_image

import (
	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/page"
	"github.com/Nestorservice/asapfoodtrailer/internal/view"
)

const (
	behaviorID      = "lazy-image"
	behaviorVersion = "1.0.0"

	// DeferredAttr holds the real source until the image scrolls into view.
	DeferredAttr = "data-src"
	// SrcAttr is the live source attribute.
	SrcAttr = "src"
	// LoadedClass marks images that completed their one transition.
	LoadedClass = "loaded"

	// visibilityThreshold fires on any intersection at all.
	visibilityThreshold = 0.01
)

// LazyImageBehavior defers image loading until visibility when the runtime
// has no native lazy loading. Each image transitions exactly once:
// unloaded → loaded.
type LazyImageBehavior struct {
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

// New returns an unattached lazy image loader.
func New() *LazyImageBehavior {
	return &LazyImageBehavior{obs: view.NewObserver(visibilityThreshold)}
}

// Info describes the behavior.
func (b *LazyImageBehavior) Info() behavior.Info {
	return behavior.Info{
		ID:          behaviorID,
		Name:        "Lazy Image Fallback",
		Description: "Loads deferred images on first visibility when native lazy loading is unavailable.",
		Version:     behaviorVersion,
	}
}

// Attach is a no-op when native lazy loading is supported; otherwise it
// observes every deferred image.
func (b *LazyImageBehavior) Attach(ctx *behavior.Context) (bool, error) {
	if ctx.Site != nil && ctx.Site.Site.Capabilities.NativeLazyImages {
		return false, nil
	}
	images := b.deferredImages(ctx)
	if len(images) == 0 {
		return false, nil
	}
	for _, el := range images {
		b.obs.Observe(el)
	}
	return true, nil
}

// HandleEvent loads any deferred image that has entered the viewport.
func (b *LazyImageBehavior) HandleEvent(ctx *behavior.Context, ev behavior.Event) error {
	switch ev.(type) {
	case behavior.PageReady, behavior.Scroll, behavior.Frame:
		for _, el := range b.obs.Take(ctx.View) {
			load(el)
		}
	}
	return nil
}

func (b *LazyImageBehavior) deferredImages(ctx *behavior.Context) []*page.Element {
	var out []*page.Element
	for _, el := range ctx.Doc.WithAttr(DeferredAttr) {
		if el.Kind == page.KindImage {
			out = append(out, el)
		}
	}
	return out
}

func load(el *page.Element) {
	src, ok := el.Attr(DeferredAttr)
	if !ok {
		return
	}
	el.SetAttr(SrcAttr, src)
	el.DelAttr(DeferredAttr)
	el.AddClass(LoadedClass)
}
