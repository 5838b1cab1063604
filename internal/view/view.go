// internal/view/view.go
//
// The view package owns the viewport: the current scroll offset, the
// visible height, eased glides between offsets, the scroll lock the
// off-canvas menu relies on, and element visibility math for one-shot
// observers.

package view

import (
	"time"

	"github.com/Nestorservice/asapfoodtrailer/internal/page"
)

// GlideDuration is how long an animated scroll (smooth-scroll anchors,
// back-to-top) takes to settle.
const GlideDuration = 600 * time.Millisecond

// State tracks the scroll position over a reflowed document.
type State struct {
	offset     int
	height     int
	pageHeight int
	locked     bool
	glide      *Animation
}

// NewState returns a viewport with the given visible height.
func NewState(height int) *State {
	if height < 0 {
		height = 0
	}
	return &State{height: height}
}

// Offset returns the current scroll offset in document lines.
func (s *State) Offset() int {
	if s == nil {
		return 0
	}
	return s.offset
}

// Height returns the visible viewport height.
func (s *State) Height() int {
	if s == nil {
		return 0
	}
	return s.height
}

// SetHeight resizes the viewport and re-clamps the offset.
func (s *State) SetHeight(height int) {
	if s == nil {
		return
	}
	if height < 0 {
		height = 0
	}
	s.height = height
	s.offset = s.clamp(s.offset)
}

// SetPageHeight records the document height produced by the last reflow.
func (s *State) SetPageHeight(height int) {
	if s == nil {
		return
	}
	if height < 0 {
		height = 0
	}
	s.pageHeight = height
	s.offset = s.clamp(s.offset)
}

// Lock disables user scrolling (the body overflow lock while the off-canvas
// menu is open).
func (s *State) Lock() {
	if s != nil {
		s.locked = true
	}
}

// Unlock re-enables user scrolling.
func (s *State) Unlock() {
	if s != nil {
		s.locked = false
	}
}

// Locked reports whether user scrolling is currently disabled.
func (s *State) Locked() bool {
	return s != nil && s.locked
}

// ScrollBy moves the offset by delta lines, honoring the lock and clamping
// to the document bounds. Returns true when the offset changed. Any manual
// scroll cancels an in-flight glide.
func (s *State) ScrollBy(delta int) bool {
	if s == nil || s.locked || delta == 0 {
		return false
	}
	next := s.clamp(s.offset + delta)
	if next == s.offset {
		return false
	}
	s.glide = nil
	s.offset = next
	return true
}

// ScrollTo jumps directly to an offset, honoring the lock.
func (s *State) ScrollTo(offset int) bool {
	if s == nil || s.locked {
		return false
	}
	next := s.clamp(offset)
	if next == s.offset {
		return false
	}
	s.glide = nil
	s.offset = next
	return true
}

// GlideTo starts an eased scroll toward the target offset. Glides run even
// while the lock is held so behaviors can reposition the page
// programmatically.
func (s *State) GlideTo(target int, now time.Time) {
	if s == nil {
		return
	}
	target = s.clamp(target)
	if target == s.offset {
		s.glide = nil
		return
	}
	s.glide = NewAnimation(float64(s.offset), float64(target), now, GlideDuration)
}

// Gliding reports whether an eased scroll is in flight.
func (s *State) Gliding() bool {
	return s != nil && s.glide != nil
}

// Advance steps the in-flight glide to the given instant. Returns true when
// the offset changed.
func (s *State) Advance(now time.Time) bool {
	if s == nil || s.glide == nil {
		return false
	}
	next := s.clamp(int(s.glide.Value(now)))
	done := s.glide.Done(now)
	if done {
		next = s.clamp(int(s.glide.Target()))
		s.glide = nil
	}
	if next == s.offset {
		return false
	}
	s.offset = next
	return true
}

// VisibleRatio returns how much of the element overlaps the viewport, in
// [0,1]. Elements with no height report 0.
func (s *State) VisibleRatio(el *page.Element) float64 {
	if s == nil || el == nil || el.Height <= 0 || s.height <= 0 {
		return 0
	}
	top := el.Top
	bottom := el.Top + el.Height
	viewTop := s.offset
	viewBottom := s.offset + s.height
	overlapTop := top
	if viewTop > overlapTop {
		overlapTop = viewTop
	}
	overlapBottom := bottom
	if viewBottom < overlapBottom {
		overlapBottom = viewBottom
	}
	overlap := overlapBottom - overlapTop
	if overlap <= 0 {
		return 0
	}
	return float64(overlap) / float64(el.Height)
}

func (s *State) clamp(offset int) int {
	maxOffset := s.pageHeight - s.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
