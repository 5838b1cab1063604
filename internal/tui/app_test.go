package tui

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/counter"
	"github.com/Nestorservice/asapfoodtrailer/internal/config"
	"github.com/Nestorservice/asapfoodtrailer/internal/fleetapi"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type stubStats struct {
	stats fleetapi.Stats
	err   error
	calls int
}

func (s *stubStats) FleetStats(context.Context) (fleetapi.Stats, error) {
	s.calls++
	return s.stats, s.err
}

func newTestApp(t *testing.T, opts ...AppOption) (*App, *testClock) {
	t.Helper()
	projectDir := t.TempDir()
	if err := config.InitShowroomDir(projectDir); err != nil {
		t.Fatalf("init showroom dir: %v", err)
	}
	clock := &testClock{now: time.Unix(0, 0)}
	baseOpts := []AppOption{
		WithClock(clock.Now),
		WithStatsFetcher(&stubStats{stats: fleetapi.Stats{Total: 6}}),
	}
	baseOpts = append(baseOpts, opts...)
	app, err := NewApp(projectDir, baseOpts...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app, clock
}

// pump executes commands and feeds their messages back through Update.
// Animation ticks are skipped; tests drive frames explicitly so the test
// clock stays in charge of time.
func pump(t *testing.T, a *App, cmds ...tea.Cmd) {
	t.Helper()
	queue := cmds
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		msg := cmd()
		switch m := msg.(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, m...)
		case frameMsg, spinner.TickMsg:
		default:
			_, next := a.Update(msg)
			queue = append(queue, next)
		}
	}
}

func frame(t *testing.T, a *App, clock *testClock, d time.Duration) {
	t.Helper()
	clock.advance(d)
	a.ticking = true // pretend the scheduled tick fired
	_, cmd := a.Update(frameMsg(clock.now))
	pump(t, a, cmd)
}

func TestInitAppliesLiveTotalToDeferredCounter(t *testing.T) {
	stats := &stubStats{stats: fleetapi.Stats{Total: 9}}
	app, _ := newTestApp(t, WithStatsFetcher(stats))
	pump(t, app, app.Init())

	if stats.calls != 1 {
		t.Fatalf("expected exactly one stats fetch, got %d", stats.calls)
	}
	el := app.doc.ByID("stat-trailers")
	if got := counter.TargetOf(el); got != 9 {
		t.Fatalf("deferred counter target = %d, want 9", got)
	}
	if got := counter.TargetOf(app.doc.ByID("stat-customers")); got != 250 {
		t.Fatalf("static counter must keep its target, got %d", got)
	}
}

func TestUnreachableBackendKeepsStaticCounts(t *testing.T) {
	stats := &stubStats{err: fmt.Errorf("dial tcp: connection refused")}
	app, _ := newTestApp(t, WithStatsFetcher(stats))
	pump(t, app, app.Init())

	if got := counter.TargetOf(app.doc.ByID("stat-trailers")); got != 0 {
		t.Fatalf("failed fetch must not touch counters, got %d", got)
	}
}

func TestDeepScrollPinsHeaderAndShowsTopControl(t *testing.T) {
	app, _ := newTestApp(t)
	pump(t, app, app.Init())

	header := app.doc.ByID("site-header")
	button := app.doc.ByID("back-to-top")
	if button == nil {
		t.Fatalf("back-to-top control should be injected")
	}
	if header.HasClass("sticky") || button.HasClass("visible") {
		t.Fatalf("deep-scroll state classes must start clear")
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	pump(t, app, cmd)

	if app.view.Offset() <= 400 {
		t.Fatalf("end key should land deep in the page, offset %d", app.view.Offset())
	}
	if !header.HasClass("sticky") {
		t.Fatalf("header should pin past the scroll threshold")
	}
	if !button.HasClass("visible") {
		t.Fatalf("back-to-top should show past its threshold")
	}
}

func TestBackToTopGlidesHome(t *testing.T) {
	app, clock := newTestApp(t)
	pump(t, app, app.Init())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	pump(t, app, cmd)
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	pump(t, app, cmd)

	if !app.view.Gliding() {
		t.Fatalf("back-to-top click should start a glide")
	}
	frame(t, app, clock, 700*time.Millisecond)
	if got := app.view.Offset(); got != 0 {
		t.Fatalf("offset after glide = %d, want 0", got)
	}
	if app.doc.ByID("site-header").HasClass("sticky") {
		t.Fatalf("header should unpin after returning to the top")
	}
}

func TestMenuOpensLocksScrollAndNavigates(t *testing.T) {
	app, clock := newTestApp(t)
	pump(t, app, app.Init())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	pump(t, app, cmd)

	panel := app.doc.ByID("mobile-menu")
	if !panel.HasClass("open") || !app.view.Locked() {
		t.Fatalf("menu toggle should open the panel and lock scrolling")
	}

	// Scrolling while locked must not move the page.
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	pump(t, app, cmd)
	if app.view.Offset() != 0 {
		t.Fatalf("locked viewport moved to %d", app.view.Offset())
	}

	// Select the contact link and follow it.
	for i := 0; i < 3; i++ {
		_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyDown})
		pump(t, app, cmd)
	}
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(t, app, cmd)

	if panel.HasClass("open") || app.view.Locked() {
		t.Fatalf("navigation should close the menu and unlock scrolling")
	}
	if !app.view.Gliding() {
		t.Fatalf("anchor handler should glide to the contact section")
	}
	frame(t, app, clock, 700*time.Millisecond)

	want := app.doc.SectionByID("contact").Top
	if maxOffset := app.doc.Height() - app.view.Height(); want > maxOffset {
		want = maxOffset
	}
	if got := app.view.Offset(); got != want {
		t.Fatalf("offset after navigation = %d, want %d", got, want)
	}
}

func TestEscapeClosesMenu(t *testing.T) {
	app, _ := newTestApp(t)
	pump(t, app, app.Init())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	pump(t, app, cmd)
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	pump(t, app, cmd)

	if app.doc.ByID("mobile-menu").HasClass("open") || app.view.Locked() {
		t.Fatalf("escape should close the menu and unlock scrolling")
	}
}

func TestPhoneFieldMasksWhileTyping(t *testing.T) {
	app, _ := newTestApp(t)
	pump(t, app, app.Init())

	// Tab into the form, then once more to reach the phone field.
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	pump(t, app, cmd)
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	pump(t, app, cmd)
	if app.fields[app.fieldIdx].id != "contact-phone" {
		t.Fatalf("expected phone field focus, got %s", app.fields[app.fieldIdx].id)
	}

	for _, r := range "5551234567" {
		_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		pump(t, app, cmd)
	}

	want := "(555) 123-4567"
	if got := app.doc.ByID("contact-phone").Text; got != want {
		t.Fatalf("masked element text = %q, want %q", got, want)
	}
	if got := app.fields[app.fieldIdx].input.Value(); got != want {
		t.Fatalf("masked widget value = %q, want %q", got, want)
	}
}

func TestLeadSubmissionRoundTrip(t *testing.T) {
	backend := fleetapi.NewServer(fleetapi.Settings{})
	ts := httptest.NewServer(backend.Router())
	defer ts.Close()

	projectDir := t.TempDir()
	if err := config.InitShowroomDir(projectDir); err != nil {
		t.Fatalf("init showroom dir: %v", err)
	}
	cfgYAML := fmt.Sprintf("version: 1\nbusiness:\n  name: ASAP Food Trailer\napi:\n  base_url: %s\n", ts.URL)
	cfgPath := filepath.Join(projectDir, config.ShowroomDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	clock := &testClock{now: time.Unix(0, 0)}
	app, err := NewApp(projectDir, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	pump(t, app, app.Init())

	app.doc.ByID("contact-name").Text = "Marcus Lee"
	app.doc.ByID("contact-phone").Text = "(555) 123-4567"
	app.doc.ByID("contact-message").Text = "Looking for a BBQ trailer"

	pump(t, app, app.submitLead())

	leads := backend.Leads()
	if len(leads) != 1 {
		t.Fatalf("expected one stored lead, got %d", len(leads))
	}
	if leads[0].CustomerName != "Marcus Lee" {
		t.Fatalf("stored lead name = %q", leads[0].CustomerName)
	}
	if app.statusMsg == "" {
		t.Fatalf("submission should surface a confirmation")
	}
	if app.doc.ByID("contact-name").Text != "" {
		t.Fatalf("form should clear after a successful submission")
	}
}

func TestLazyImagesLoadAsTheyScrollIn(t *testing.T) {
	app, _ := newTestApp(t)
	pump(t, app, app.Init())

	deep := app.doc.ByID("fleet-img-6")
	if deep.HasClass("loaded") {
		t.Fatalf("below-the-fold image must stay deferred")
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	pump(t, app, cmd)

	// The end of the page shows the later sections, not the sixth image;
	// scroll back to its position.
	app.view.ScrollTo(deep.Top)
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	pump(t, app, cmd)

	if !deep.HasClass("loaded") {
		t.Fatalf("image should load once scrolled into view")
	}
	if _, ok := deep.Attr("src"); !ok {
		t.Fatalf("loaded image should carry a live source")
	}
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	app, clock := newTestApp(t)
	pump(t, app, app.Init())
	_, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	pump(t, app, cmd)

	if out := app.View(); out == "" {
		t.Fatalf("view must render content")
	}
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	pump(t, app, cmd)
	if out := app.View(); out == "" {
		t.Fatalf("menu view must render content")
	}
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	pump(t, app, cmd)
	frame(t, app, clock, 100*time.Millisecond)
	if out := app.View(); out == "" {
		t.Fatalf("post-frame view must render content")
	}
}
