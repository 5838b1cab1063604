package scroll_reveal

import (
	"testing"

	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/page"
	"github.com/Nestorservice/asapfoodtrailer/internal/view"
)

type recordingRevealer struct {
	revealed []string
}

func (r *recordingRevealer) Reveal(el *page.Element) {
	r.revealed = append(r.revealed, el.ID)
}

func newFixture(t *testing.T, engine behavior.Revealer) (*behavior.Context, *ScrollRevealBehavior) {
	t.Helper()
	doc := page.NewDocument()

	hero := &page.Section{ID: "hero", Title: "Hero"}
	card := page.NewElement("card-hero", page.KindText)
	card.SetAttr(RevealAttr, "fade-up")
	hero.Append(card)
	doc.AddSection(hero)

	filler := &page.Section{ID: "filler", Title: "Filler"}
	for i := 0; i < 60; i++ {
		filler.Append(page.NewElement("", page.KindText))
	}
	doc.AddSection(filler)

	deep := &page.Section{ID: "deep", Title: "Deep"}
	late := page.NewElement("card-deep", page.KindText)
	late.SetAttr(RevealAttr, "fade-up")
	deep.Append(late)
	doc.AddSection(deep)
	doc.Reflow()

	s := view.NewState(10)
	s.SetPageHeight(doc.Height())
	ctx := &behavior.Context{Doc: doc, View: s, Reveal: engine}
	return ctx, New()
}

func TestRevealsOnFirstVisibility(t *testing.T) {
	engine := &recordingRevealer{}
	ctx, b := newFixture(t, engine)
	if active, err := b.Attach(ctx); err != nil || !active {
		t.Fatalf("attach: active=%v err=%v", active, err)
	}

	if err := b.HandleEvent(ctx, behavior.PageReady{}); err != nil {
		t.Fatalf("page ready: %v", err)
	}
	if len(engine.revealed) != 1 || engine.revealed[0] != "card-hero" {
		t.Fatalf("above-the-fold element should reveal on page ready, got %v", engine.revealed)
	}

	ctx.View.ScrollTo(ctx.Doc.SectionByID("deep").Top)
	if err := b.HandleEvent(ctx, behavior.Scroll{Offset: ctx.View.Offset()}); err != nil {
		t.Fatalf("scroll: %v", err)
	}
	if len(engine.revealed) != 2 || engine.revealed[1] != "card-deep" {
		t.Fatalf("deep element should reveal after scrolling down, got %v", engine.revealed)
	}
}

func TestRevealFiresOnce(t *testing.T) {
	engine := &recordingRevealer{}
	ctx, b := newFixture(t, engine)
	if _, err := b.Attach(ctx); err != nil {
		t.Fatalf("attach: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := b.HandleEvent(ctx, behavior.Scroll{Offset: 0}); err != nil {
			t.Fatalf("scroll %d: %v", i, err)
		}
	}
	if len(engine.revealed) != 1 {
		t.Fatalf("each element reveals exactly once, got %v", engine.revealed)
	}
}

func TestInactiveWithoutEngine(t *testing.T) {
	ctx, b := newFixture(t, nil)
	if active, err := b.Attach(ctx); err != nil || active {
		t.Fatalf("no engine: active=%v err=%v", active, err)
	}
}

func TestInactiveWithoutMarkedElements(t *testing.T) {
	doc := page.NewDocument()
	doc.AddSection(&page.Section{ID: "hero", Title: "Hero"})
	doc.Reflow()
	ctx := &behavior.Context{Doc: doc, View: view.NewState(10), Reveal: &recordingRevealer{}}
	b := New()
	if active, err := b.Attach(ctx); err != nil || active {
		t.Fatalf("no marked elements: active=%v err=%v", active, err)
	}
}
