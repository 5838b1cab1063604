// internal/page/page.go
//
// The page package models the showroom page as a document tree: sections
// containing elements, plus chrome (header, menu widgets) and floating
// controls injected at runtime. Behaviors look elements up by id, class, or
// data attribute and mutate classes/attributes/text; the TUI renders whatever
// the document currently says.

package page

import (
	"sort"
	"strings"
)

// Kind describes what an element renders as.
type Kind string

const (
	KindText    Kind = "text"
	KindCounter Kind = "counter"
	KindImage   Kind = "image"
	KindLink    Kind = "link"
	KindInput   Kind = "input"
	KindButton  Kind = "button"
)

// Element is a single addressable node on the page.
type Element struct {
	ID   string
	Kind Kind
	Text string

	classes map[string]struct{}
	attrs   map[string]string

	// Top and Height are document line coordinates assigned by Reflow.
	Top    int
	Height int
}

// NewElement constructs an element with the given id and kind.
func NewElement(id string, kind Kind) *Element {
	return &Element{ID: id, Kind: kind, Height: 1}
}

// AddClass sets a state class. Adding an existing class is a no-op.
func (e *Element) AddClass(name string) {
	if e == nil || name == "" {
		return
	}
	if e.classes == nil {
		e.classes = map[string]struct{}{}
	}
	e.classes[name] = struct{}{}
}

// RemoveClass clears a state class. Removing an absent class is a no-op.
func (e *Element) RemoveClass(name string) {
	if e == nil || e.classes == nil {
		return
	}
	delete(e.classes, name)
}

// HasClass reports whether the class is currently set.
func (e *Element) HasClass(name string) bool {
	if e == nil || e.classes == nil {
		return false
	}
	_, ok := e.classes[name]
	return ok
}

// Classes returns the sorted class list, mainly for rendering and tests.
func (e *Element) Classes() []string {
	if e == nil || len(e.classes) == 0 {
		return nil
	}
	out := make([]string, 0, len(e.classes))
	for name := range e.classes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Attr returns a data attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.attrs == nil {
		return "", false
	}
	value, ok := e.attrs[name]
	return value, ok
}

// SetAttr writes a data attribute.
func (e *Element) SetAttr(name, value string) {
	if e == nil || name == "" {
		return
	}
	if e.attrs == nil {
		e.attrs = map[string]string{}
	}
	e.attrs[name] = value
}

// DelAttr removes a data attribute if present.
func (e *Element) DelAttr(name string) {
	if e == nil || e.attrs == nil {
		return
	}
	delete(e.attrs, name)
}

// Section groups elements under a titled region of the page.
type Section struct {
	ID       string
	Title    string
	Elements []*Element

	Top    int
	Height int
}

// Append adds elements to the section.
func (s *Section) Append(els ...*Element) {
	for _, el := range els {
		if el != nil {
			s.Elements = append(s.Elements, el)
		}
	}
}

// Document is the whole page: chrome, sections, and floating controls.
type Document struct {
	chrome   []*Element
	sections []*Section
	floats   []*Element
	height   int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddChrome registers a header/menu element that lives outside the scroll flow.
func (d *Document) AddChrome(els ...*Element) {
	for _, el := range els {
		if el != nil {
			d.chrome = append(d.chrome, el)
		}
	}
}

// AddSection appends a section to the scroll flow.
func (d *Document) AddSection(sections ...*Section) {
	for _, s := range sections {
		if s != nil {
			d.sections = append(d.sections, s)
		}
	}
}

// InsertFloat registers a floating control (position independent of scroll).
func (d *Document) InsertFloat(el *Element) {
	if el != nil {
		d.floats = append(d.floats, el)
	}
}

// Sections returns the scrollable sections in order.
func (d *Document) Sections() []*Section {
	if d == nil {
		return nil
	}
	return d.sections
}

// Floats returns injected floating controls in insertion order.
func (d *Document) Floats() []*Element {
	if d == nil {
		return nil
	}
	return d.floats
}

// ByID returns the element with the given id, or nil. A leading "#" is
// accepted so href fragments can be resolved directly.
func (d *Document) ByID(id string) *Element {
	if d == nil {
		return nil
	}
	id = strings.TrimPrefix(strings.TrimSpace(id), "#")
	if id == "" {
		return nil
	}
	for _, el := range d.all() {
		if el.ID == id {
			return el
		}
	}
	return nil
}

// SectionByID returns the section with the given id, or nil.
func (d *Document) SectionByID(id string) *Section {
	if d == nil {
		return nil
	}
	id = strings.TrimPrefix(strings.TrimSpace(id), "#")
	for _, s := range d.sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// ByClass returns every element carrying the class, in document order.
func (d *Document) ByClass(name string) []*Element {
	var out []*Element
	for _, el := range d.all() {
		if el.HasClass(name) {
			out = append(out, el)
		}
	}
	return out
}

// WithAttr returns every element carrying the data attribute, in document order.
func (d *Document) WithAttr(name string) []*Element {
	var out []*Element
	for _, el := range d.all() {
		if _, ok := el.Attr(name); ok {
			out = append(out, el)
		}
	}
	return out
}

// Height returns the total document height computed by the last Reflow.
func (d *Document) Height() int {
	if d == nil {
		return 0
	}
	return d.height
}

// Reflow assigns line coordinates to sections and their elements and returns
// the total document height. Chrome and floats sit outside the scroll flow
// and keep zero coordinates. Layout is one line per element (images take
// their configured height) with a title line and a trailing blank per
// section.
func (d *Document) Reflow() int {
	if d == nil {
		return 0
	}
	top := 0
	for _, s := range d.sections {
		s.Top = top
		lines := 0
		if s.Title != "" {
			lines++
		}
		for _, el := range s.Elements {
			if el.Height <= 0 {
				el.Height = 1
			}
			el.Top = top + lines
			lines += el.Height
		}
		lines++ // blank separator
		s.Height = lines
		top += lines
	}
	d.height = top
	return top
}

func (d *Document) all() []*Element {
	if d == nil {
		return nil
	}
	out := make([]*Element, 0, len(d.chrome)+len(d.floats)+len(d.sections)*4)
	out = append(out, d.chrome...)
	for _, s := range d.sections {
		out = append(out, s.Elements...)
	}
	out = append(out, d.floats...)
	return out
}
