// internal/tui/app.go
//
// This is the main TUI for the showroom. It uses bubbletea, which follows
// The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen
//
// The page itself never changes here. Keystrokes become page events (scroll,
// click, input) that the dispatcher fans out to the attached behaviors; the
// View function just renders whatever the document currently says.

package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors"
	"github.com/Nestorservice/asapfoodtrailer/internal/config"
	"github.com/Nestorservice/asapfoodtrailer/internal/fleetapi"
	"github.com/Nestorservice/asapfoodtrailer/internal/logbook"
	"github.com/Nestorservice/asapfoodtrailer/internal/page"
	"github.com/Nestorservice/asapfoodtrailer/internal/view"
)

const (
	// frameInterval drives animation ticks while any behavior animates.
	frameInterval = 50 * time.Millisecond

	// chromeLines is the vertical space the header, log panel and footer
	// take away from the scrollable page window.
	chromeLines = 9

	// RevealedClass marks elements whose entrance transition has played.
	RevealedClass = "revealed"
)

type focusArea int

const (
	focusPage focusArea = iota
	focusForm
)

// frameMsg is one animation tick.
type frameMsg time.Time

// behaviorEventMsg feeds an asynchronously produced page event back into
// the dispatcher.
type behaviorEventMsg struct {
	ev behavior.Event
}

// leadSubmittedMsg delivers the contact-form submission outcome.
type leadSubmittedMsg struct {
	lead fleetapi.Lead
	err  error
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClock overrides the time source used for animation and events.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithStatsFetcher overrides the live stats source.
func WithStatsFetcher(f behavior.StatsFetcher) AppOption {
	return func(a *App) {
		a.stats = f
	}
}

// WithRegistry replaces the built-in behavior registry.
func WithRegistry(reg *behavior.Registry) AppOption {
	return func(a *App) {
		if reg != nil {
			a.registry = reg
		}
	}
}

// formField pairs a contact-form page element with its input widget.
type formField struct {
	id    string
	input textinput.Model
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	config     *config.Config
	logbook    *logbook.Logbook
	doc        *page.Document
	view       *view.State
	registry   *behavior.Registry
	dispatcher *behavior.Dispatcher
	bctx       *behavior.Context
	leads      *fleetapi.Client
	stats      behavior.StatsFetcher
	now        func() time.Time

	width  int
	height int

	focus    focusArea
	fields   []formField
	fieldIdx int
	menuIdx  int

	spinner      spinner.Model
	statsPending bool

	statusMsg string
	ticking   bool
}

// revealEngine is the default entrance animator: in the terminal a reveal is
// simply the element switching from dimmed to normal rendering.
type revealEngine struct{}

func (revealEngine) Reveal(el *page.Element) {
	el.AddClass(RevealedClass)
}

// NewApp creates a new App instance rooted at the given project directory.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "showroom.log"))
	if err == nil {
		lb.Info("Session opened · %s", cfg.Site.Business.Name)
	}

	doc := page.Home(cfg.Site)
	vs := view.NewState(24)
	vs.SetPageHeight(doc.Height())

	reg := behavior.NewRegistry()
	behaviors.RegisterBuiltins(reg)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF7A00"))

	app := &App{
		config:   cfg,
		logbook:  lb,
		doc:      doc,
		view:     vs,
		registry: reg,
		spinner:  sp,
		now:      time.Now,
	}
	if base := cfg.APIBaseURL(); base != "" {
		client := fleetapi.NewClient(base)
		app.leads = client
		app.stats = client
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	bctx := &behavior.Context{
		Doc:   doc,
		View:  vs,
		Log:   lb,
		Site:  cfg,
		Stats: app.stats,
		Now:   app.now,
	}
	if cfg.Site.Capabilities.ScrollReveal {
		bctx.Reveal = revealEngine{}
	}
	dispatcher, err := behavior.NewDispatcher(bctx, app.registry)
	if err != nil {
		return nil, err
	}
	app.bctx = bctx
	app.dispatcher = dispatcher
	app.fields = buildFormFields(doc)
	return app, nil
}

// buildFormFields creates one text input per contact-form element.
func buildFormFields(doc *page.Document) []formField {
	contact := doc.SectionByID("contact")
	if contact == nil {
		return nil
	}
	var fields []formField
	for _, el := range contact.Elements {
		if el.Kind != page.KindInput || el.ID == "" {
			continue
		}
		input := textinput.New()
		if placeholder, ok := el.Attr("placeholder"); ok {
			input.Placeholder = placeholder
		}
		input.CharLimit = 120
		fields = append(fields, formField{id: el.ID, input: input})
	}
	return fields
}

// Init attaches the behaviors and fires the page-ready event.
func (a *App) Init() tea.Cmd {
	a.dispatcher.Attach()
	a.logInfo("Page ready · %d behaviors registered", len(a.registry.IDs()))
	cmds := a.emit(behavior.PageReady{})
	if a.dispatcher.Active("fleet-stats") {
		a.statsPending = true
		cmds = append(cmds, a.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.view.SetHeight(max(5, msg.Height-chromeLines))
		return a, nil

	case frameMsg:
		a.ticking = false
		now := time.Time(msg)
		moved := a.view.Advance(now)
		cmds := a.emit(behavior.Frame{Now: now})
		if moved {
			cmds = append(cmds, a.emit(behavior.Scroll{Offset: a.view.Offset()})...)
		}
		return a, tea.Batch(cmds...)

	case behaviorEventMsg:
		if _, ok := msg.ev.(behavior.StatsResult); ok {
			a.statsPending = false
		}
		return a, tea.Batch(a.emit(msg.ev)...)

	case spinner.TickMsg:
		if !a.statsPending {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case leadSubmittedMsg:
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("Could not send your inquiry. Call %s instead.", a.config.Site.Business.Phone)
			a.logWarn("Lead submission failed: %v", msg.err)
			return a, nil
		}
		a.statusMsg = "Thanks! We'll be in touch shortly."
		a.logInfo("Lead %s submitted for %s", msg.lead.ID, msg.lead.CustomerName)
		a.clearForm()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if a.focus == focusForm {
		return a.handleFormKey(msg)
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.menuOpen() {
			if a.menuIdx > 0 {
				a.menuIdx--
			}
			return a, nil
		}
		return a, a.scrollBy(-1)
	case "down", "j":
		if a.menuOpen() {
			if a.menuIdx < len(a.menuLinks())-1 {
				a.menuIdx++
			}
			return a, nil
		}
		return a, a.scrollBy(1)
	case "pgup":
		return a, a.scrollBy(-a.view.Height())
	case "pgdown", " ":
		return a, a.scrollBy(a.view.Height())
	case "home", "g":
		return a, a.scrollTo(0)
	case "end", "G":
		return a, a.scrollTo(a.doc.Height())
	case "m":
		return a, a.click("menu-toggle")
	case "esc":
		if a.menuOpen() {
			return a, a.click("menu-overlay")
		}
	case "t":
		return a, a.click("back-to-top")
	case "tab":
		a.enterForm()
	case "enter":
		if a.menuOpen() {
			links := a.menuLinks()
			if a.menuIdx < len(links) {
				return a, a.click(links[a.menuIdx].ID)
			}
		}
	}
	return a, nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.leaveForm()
		return a, nil
	case "tab":
		if a.fieldIdx+1 >= len(a.fields) {
			a.leaveForm()
			return a, nil
		}
		a.focusField(a.fieldIdx + 1)
		return a, nil
	case "shift+tab":
		if a.fieldIdx > 0 {
			a.focusField(a.fieldIdx - 1)
		}
		return a, nil
	case "enter":
		return a, a.submitLead()
	}

	field := &a.fields[a.fieldIdx]
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)

	// Mirror the widget into the page element, let behaviors rewrite it
	// (the phone mask does), then mirror the result back.
	el := a.doc.ByID(field.id)
	if el == nil {
		return a, cmd
	}
	el.Text = field.input.Value()
	cmds := a.emit(behavior.Input{FieldID: field.id, Value: field.input.Value()})
	if el.Text != field.input.Value() {
		field.input.SetValue(el.Text)
		field.input.CursorEnd()
	}
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// emit dispatches a page event and converts any scheduled async work into
// bubbletea commands, plus a frame tick while anything animates.
func (a *App) emit(ev behavior.Event) []tea.Cmd {
	var cmds []tea.Cmd
	for _, fn := range a.dispatcher.Dispatch(ev) {
		work := fn
		cmds = append(cmds, func() tea.Msg {
			return behaviorEventMsg{ev: work()}
		})
	}
	if cmd := a.maybeTick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (a *App) maybeTick() tea.Cmd {
	if a.ticking {
		return nil
	}
	if !a.dispatcher.Animating() && !a.view.Gliding() {
		return nil
	}
	a.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (a *App) scrollBy(delta int) tea.Cmd {
	if !a.view.ScrollBy(delta) {
		return nil
	}
	return tea.Batch(a.emit(behavior.Scroll{Offset: a.view.Offset()})...)
}

func (a *App) scrollTo(offset int) tea.Cmd {
	if !a.view.ScrollTo(offset) {
		return nil
	}
	return tea.Batch(a.emit(behavior.Scroll{Offset: a.view.Offset()})...)
}

// click routes an activation through the behaviors and falls back to default
// navigation when nothing consumed it.
func (a *App) click(id string) tea.Cmd {
	ev := &behavior.Click{TargetID: id}
	cmds := a.emit(ev)
	if !ev.DefaultPrevented() {
		if cmd := a.defaultNavigate(id); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// defaultNavigate runs when no behavior consumed the click: in-page
// fragments jump without animation, external links just get announced.
func (a *App) defaultNavigate(id string) tea.Cmd {
	el := a.doc.ByID(id)
	if el == nil {
		return nil
	}
	href, ok := el.Attr("href")
	if !ok {
		return nil
	}
	if strings.HasPrefix(href, "#") {
		if section := a.doc.SectionByID(href); section != nil {
			return a.scrollTo(section.Top)
		}
		if target := a.doc.ByID(href); target != nil {
			return a.scrollTo(target.Top)
		}
		return nil
	}
	a.statusMsg = fmt.Sprintf("Opens %s", href)
	return nil
}

func (a *App) submitLead() tea.Cmd {
	if a.leads == nil {
		a.statusMsg = "No backend configured."
		return nil
	}
	lead := fleetapi.Lead{
		CustomerName: a.fieldValue("contact-name"),
		Phone:        a.fieldValue("contact-phone"),
		Email:        a.fieldValue("contact-email"),
		Message:      a.fieldValue("contact-message"),
	}
	client := a.leads
	return func() tea.Msg {
		stored, err := client.SubmitLead(context.Background(), lead)
		return leadSubmittedMsg{lead: stored, err: err}
	}
}

func (a *App) fieldValue(id string) string {
	if el := a.doc.ByID(id); el != nil {
		return el.Text
	}
	return ""
}

func (a *App) clearForm() {
	for i := range a.fields {
		a.fields[i].input.SetValue("")
		if el := a.doc.ByID(a.fields[i].id); el != nil {
			el.Text = ""
		}
	}
}

func (a *App) enterForm() {
	if len(a.fields) == 0 {
		return
	}
	a.focus = focusForm
	a.focusField(0)
	a.statusMsg = "Tab → next field    Enter → send    Esc → back to page"
}

func (a *App) leaveForm() {
	a.focus = focusPage
	for i := range a.fields {
		a.fields[i].input.Blur()
	}
	a.statusMsg = ""
}

func (a *App) focusField(idx int) {
	for i := range a.fields {
		a.fields[i].input.Blur()
	}
	a.fieldIdx = idx
	a.fields[idx].input.Focus()
}

func (a *App) menuOpen() bool {
	panel := a.doc.ByID("mobile-menu")
	return panel != nil && panel.HasClass("open")
}

func (a *App) menuLinks() []*page.Element {
	return a.doc.ByClass("menu-link")
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook != nil {
		a.logbook.Info(format, args...)
	}
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook != nil {
		a.logbook.Warn(format, args...)
	}
}
