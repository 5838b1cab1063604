package behaviors

import (
	"github.com/Nestorservice/asapfoodtrailer/internal/behavior"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/back_to_top"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/counter"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/fleet_stats"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/lazy_image"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/offcanvas_menu"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/phone_mask"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/scroll_reveal"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/smooth_scroll"
	"github.com/Nestorservice/asapfoodtrailer/internal/behaviors/sticky_header"
)

// RegisterBuiltins installs all of the built-in behavior factories into the
// provided registry.
func RegisterBuiltins(reg *behavior.Registry) {
	if reg == nil {
		return
	}
	sticky_header.Register(reg)
	offcanvas_menu.Register(reg)
	counter.Register(reg)
	phone_mask.Register(reg)
	lazy_image.Register(reg)
	smooth_scroll.Register(reg)
	fleet_stats.Register(reg)
	back_to_top.Register(reg)
	scroll_reveal.Register(reg)
}
