// Package wlegl binds a Wayland surface to a wl_egl_window so it can back an EGL window surface.
//
// A Window owns both the wl_egl_window and the surface it was created from. Release it either
// with Close, which destroys both, or with Destroy, which destroys only the wl_egl_window and
// hands the surface back:
//
//	if !native.IsAvailable() {
//		return errNoEGL
//	}
//	w := wlegl.New(surface, 800, 600)
//	defer w.Close()
//
// Close is a no-op after Destroy, so the deferred call is always safe.
package wlegl
