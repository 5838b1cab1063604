package behavior

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nestorservice/asapfoodtrailer/internal/logbook"
	"github.com/Nestorservice/asapfoodtrailer/internal/page"
	"github.com/Nestorservice/asapfoodtrailer/internal/view"
)

type fakeBehavior struct {
	id        string
	attach    bool
	attachErr error
	handleErr error
	events    []Event
	animating bool
}

func (f *fakeBehavior) Info() Info {
	return Info{ID: f.id, Name: strings.ToUpper(f.id), Version: "1.0.0"}
}

func (f *fakeBehavior) Attach(*Context) (bool, error) {
	return f.attach, f.attachErr
}

func (f *fakeBehavior) HandleEvent(_ *Context, ev Event) error {
	f.events = append(f.events, ev)
	return f.handleErr
}

func (f *fakeBehavior) Animating() bool { return f.animating }

func newTestContext(t *testing.T) *Context {
	t.Helper()
	book, err := logbook.New(filepath.Join(t.TempDir(), "page.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	return &Context{
		Doc:  page.NewDocument(),
		View: view.NewState(20),
		Log:  book,
	}
}

func registerFakes(t *testing.T, fakes ...*fakeBehavior) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, f := range fakes {
		f := f
		reg.MustRegister(f.id, func() (Behavior, error) { return f, nil })
	}
	return reg
}

func TestDispatcherSkipsInactiveBehaviors(t *testing.T) {
	active := &fakeBehavior{id: "active", attach: true}
	inactive := &fakeBehavior{id: "inactive", attach: false}
	ctx := newTestContext(t)
	d, err := NewDispatcher(ctx, registerFakes(t, active, inactive))
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	d.Attach()
	d.Dispatch(PageReady{})
	if len(active.events) != 1 {
		t.Fatalf("active behavior should receive events, got %d", len(active.events))
	}
	if len(inactive.events) != 0 {
		t.Fatalf("inactive behavior must not receive events")
	}
	if !d.Active("active") || d.Active("inactive") {
		t.Fatalf("activity flags wrong")
	}
}

func TestDispatcherSuppressesBehaviorErrors(t *testing.T) {
	failing := &fakeBehavior{id: "failing", attach: true, handleErr: fmt.Errorf("boom")}
	healthy := &fakeBehavior{id: "healthy", attach: true}
	ctx := newTestContext(t)
	d, err := NewDispatcher(ctx, registerFakes(t, failing, healthy))
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	d.Attach()
	d.Dispatch(Scroll{Offset: 10})
	if len(healthy.events) != 1 {
		t.Fatalf("healthy behavior must still run after another fails")
	}
	lines := ctx.Log.Tail(5)
	found := false
	for _, line := range lines {
		if strings.Contains(line, "failing") && strings.Contains(line, "boom") {
			found = true
		}
	}
	if !found {
		t.Fatalf("suppressed error should be logged, got %v", lines)
	}
}

func TestDispatcherAttachErrorDisablesBehavior(t *testing.T) {
	broken := &fakeBehavior{id: "broken", attach: true, attachErr: fmt.Errorf("no such element")}
	ctx := newTestContext(t)
	d, err := NewDispatcher(ctx, registerFakes(t, broken))
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	d.Attach()
	d.Dispatch(PageReady{})
	if len(broken.events) != 0 {
		t.Fatalf("behavior with failed attach must stay inactive")
	}
}

func TestDispatcherCollectsAsyncWork(t *testing.T) {
	async := &fakeBehavior{id: "async", attach: true}
	ctx := newTestContext(t)
	d, err := NewDispatcher(ctx, registerFakes(t, async))
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	d.Attach()
	ctx.Go(func() Event { return StatsResult{} })
	cmds := d.Dispatch(PageReady{})
	if len(cmds) != 1 {
		t.Fatalf("expected one async command, got %d", len(cmds))
	}
	if _, ok := cmds[0]().(StatsResult); !ok {
		t.Fatalf("async command should produce the scheduled event")
	}
	if extra := d.Dispatch(Frame{}); len(extra) != 0 {
		t.Fatalf("async queue should drain, got %d", len(extra))
	}
}

func TestDispatcherAnimating(t *testing.T) {
	still := &fakeBehavior{id: "still", attach: true}
	moving := &fakeBehavior{id: "moving", attach: true, animating: true}
	ctx := newTestContext(t)
	d, err := NewDispatcher(ctx, registerFakes(t, still, moving))
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	d.Attach()
	if !d.Animating() {
		t.Fatalf("expected animating while one animator is live")
	}
	moving.animating = false
	if d.Animating() {
		t.Fatalf("expected idle once animators settle")
	}
}

func TestRegistryRejectsDuplicatesAndUnknown(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("dup", func() (Behavior, error) {
		return &fakeBehavior{id: "dup"}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("dup", func() (Behavior, error) {
		return &fakeBehavior{id: "dup"}, nil
	}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := reg.Resolve("missing"); err == nil {
		t.Fatalf("expected unknown id error")
	}
	if got := reg.IDs(); len(got) != 1 || got[0] != "dup" {
		t.Fatalf("unexpected ids %v", got)
	}
}
