// internal/tui/page_view.go
//
// Rendering for the showroom page. The document tree is the single source of
// truth: state classes set by behaviors (sticky, open, loaded, counted,
// visible, revealed) decide how each element draws.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nestorservice/asapfoodtrailer/internal/page"
)

var (
	brandOrange = lipgloss.Color("#FF7A00")
	dimGray     = lipgloss.Color("#666666")
	softGray    = lipgloss.Color("#AAAAAA")
	borderGray  = lipgloss.Color("#444444")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)
	stickyHeaderStyle = headerStyle.Background(brandOrange)
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(brandOrange)
	counterStyle      = lipgloss.NewStyle().Bold(true).Foreground(brandOrange)
	linkStyle         = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#5B8DEF"))
	pendingStyle      = lipgloss.NewStyle().Foreground(dimGray)
	hintStyle         = lipgloss.NewStyle().Foreground(softGray)
	panelStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(borderGray).
				Padding(0, 1)
)

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}

	sections := []string{
		a.renderHeader(width),
		a.renderWindow(width),
	}
	if a.menuOpen() {
		sections[1] = a.renderMenu(width)
	}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	sections = append(sections, a.renderFooter(width))
	return strings.Join(sections, "\n")
}

func (a *App) renderHeader(width int) string {
	title := a.config.Site.Business.Name
	style := headerStyle
	if header := a.doc.ByID("site-header"); header != nil {
		if header.Text != "" {
			title = header.Text
		}
		if header.HasClass("sticky") {
			style = stickyHeaderStyle
		}
	}
	bar := fmt.Sprintf("%s    ☰ menu (m)", title)
	return style.Width(max(20, width)).Render(bar)
}

// renderWindow draws the visible slice of the reflowed document.
func (a *App) renderWindow(width int) string {
	lines := a.pageLines()
	top := a.view.Offset()
	bottom := min(len(lines), top+a.view.Height())
	if top > len(lines) {
		top = len(lines)
	}
	visible := lines[top:bottom]
	body := strings.Join(visible, "\n")
	return panelStyle.Width(max(20, width-2)).Render(body)
}

// pageLines lays the whole document out as one line per reflow slot, so the
// scroll offset indexes straight into it.
func (a *App) pageLines() []string {
	lines := make([]string, 0, a.doc.Height())
	for _, section := range a.doc.Sections() {
		if section.Title != "" {
			lines = append(lines, titleStyle.Render("· "+section.Title))
		}
		for _, el := range section.Elements {
			lines = append(lines, a.renderElement(el)...)
		}
		lines = append(lines, "")
	}
	return lines
}

func (a *App) renderElement(el *page.Element) []string {
	height := max(1, el.Height)
	out := make([]string, height)
	for i := range out {
		out[i] = ""
	}

	switch el.Kind {
	case page.KindCounter:
		value := el.Text
		if value == "" {
			value = "0"
		}
		out[0] = counterStyle.Render(value)
	case page.KindImage:
		out[0] = a.renderImageLine(el)
		for i := 1; i < height; i++ {
			out[i] = out[0]
		}
	case page.KindLink:
		out[0] = linkStyle.Render("→ " + el.Text)
	case page.KindInput:
		out[0] = a.renderInputLine(el)
	case page.KindButton:
		out[0] = fmt.Sprintf("[ %s ]", el.Text)
	default:
		out[0] = el.Text
	}

	if _, marked := el.Attr("data-reveal"); marked && !el.HasClass(RevealedClass) {
		for i := range out {
			out[i] = pendingStyle.Render(stripANSI(out[i]))
		}
	}
	return out
}

func (a *App) renderImageLine(el *page.Element) string {
	if el.HasClass("loaded") {
		return fmt.Sprintf("▦ %s", el.Text)
	}
	return pendingStyle.Render("░░ loading ░░")
}

func (a *App) renderInputLine(el *page.Element) string {
	for i := range a.fields {
		if a.fields[i].id == el.ID {
			return a.fields[i].input.View()
		}
	}
	return fmt.Sprintf("[ %s ]", el.Text)
}

// renderMenu replaces the page window while the off-canvas panel is open.
func (a *App) renderMenu(width int) string {
	links := a.menuLinks()
	rows := []string{titleStyle.Render("Navigation"), ""}
	for i, link := range links {
		label := link.Text
		if i == a.menuIdx {
			label = lipgloss.NewStyle().Bold(true).Foreground(brandOrange).Render("▸ " + label)
		} else {
			label = "  " + label
		}
		rows = append(rows, label)
	}
	rows = append(rows, "", hintStyle.Render("Enter → go    Esc → close (✕)"))
	return panelStyle.Width(max(20, width-2)).Render(strings.Join(rows, "\n"))
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(3)
	if len(lines) == 0 {
		return ""
	}
	return hintStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) renderFooter(width int) string {
	parts := []string{"↑/↓ scroll", "m menu", "tab contact form", "q quit"}
	if a.statsPending {
		parts = append([]string{a.spinner.View() + " updating live counts"}, parts...)
	}
	if button := a.doc.ByID("back-to-top"); button != nil && button.HasClass("visible") {
		parts = append(parts, "t back to top ▲")
	}
	footer := strings.Join(parts, "    ")
	if a.statusMsg != "" {
		footer = a.statusMsg + "\n" + footer
	}
	return hintStyle.Width(max(20, width)).Render(footer)
}

// stripANSI drops styling so pending elements re-render dimmed without
// nesting escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
