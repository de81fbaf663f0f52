// Package glfw provides Wayland surfaces backed by GLFW windows, ready to be wrapped by wlegl.
//
// GLFW only exposes its wl_surface when built for Wayland, so build with -tags wayland.
package glfw

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/wayland-egl"
)

var ModuleName = "glfw"

func init() {
	wlegl.Report()
	core.SubmoduleReport(wlegl.ModuleName, ModuleName)
}

func Report() {}
