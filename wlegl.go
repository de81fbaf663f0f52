package wlegl

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/ignite-laboratories/wayland-egl/native"
)

var ModuleName = "wlegl"

func init() {
	core.ModuleReport(ModuleName)
	native.Report()
}

func Report() {}

// DefaultSize sets the default size for surfaces created without one.
//
// If not overridden, it defaults to 640x480px
var DefaultSize = std.XY[int]{
	X: 640,
	Y: 480,
}
