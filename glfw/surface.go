//go:build (linux || freebsd) && wayland

package glfw

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/wayland-egl"
)

// Surface is the wl_surface of a GLFW window.
//
// Once the surface is destroyed, or the GLFW loop stops, Ptr and Display return 0,
// ShouldClose returns true and Destroy does nothing.
type Surface struct {
	ID     uint64
	window *glfw.Window
}

var _ wlegl.Surface = (*Surface)(nil)

// open reports whether s is still registered; callers hold mutex.
func (s *Surface) open() bool {
	return surfaces[s.ID] == s
}

// Ptr returns the window's wl_surface.
func (s *Surface) Ptr() uintptr {
	var ptr unsafe.Pointer
	dispatch(s.open, func() {
		ptr = unsafe.Pointer(s.window.GetWaylandWindow())
	})
	return uintptr(ptr)
}

// Display returns the wl_display the surface lives on, for eglGetDisplay.
func (s *Surface) Display() uintptr {
	var ptr unsafe.Pointer
	dispatch(s.open, func() {
		ptr = unsafe.Pointer(glfw.GetWaylandDisplay())
	})
	return uintptr(ptr)
}

func (s *Surface) ShouldClose() bool {
	shouldClose := true
	dispatch(s.open, func() {
		shouldClose = s.window.ShouldClose()
	})
	return shouldClose
}

// Destroy closes the GLFW window, which destroys its wl_surface.
func (s *Surface) Destroy() {
	release := func() bool {
		if !s.open() {
			return false
		}
		delete(surfaces, s.ID)
		return true
	}
	if !dispatch(release, func() { s.window.Destroy() }) {
		return
	}
	core.Verbosef(ModuleName, "surface [%d] cleaned up\n", s.ID)
}
