package wlegl

import (
	"runtime"

	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/wayland-egl/native"
)

// Surface is the Wayland surface a Window is built on.
type Surface interface {
	// Ptr returns the wl_surface proxy pointer.
	Ptr() uintptr
	// Destroy issues the surface's own destroy request.
	Destroy()
}

type state int

const (
	live state = iota
	handedBack
	closed
)

func (s state) String() string {
	switch s {
	case live:
		return "live"
	case handedBack:
		return "handed back"
	case closed:
		return "closed"
	}
	return "unknown"
}

// Window is a wl_egl_window attached to the surface it exclusively owns.
//
// A Window may be shared between goroutines, but calls that release it must be synchronized by the caller.
// A live Window that becomes unreachable is closed by the garbage collector.
type Window[S Surface] struct {
	*resources[S]
	cleanup runtime.Cleanup
}

// resources is kept apart from Window so the GC cleanup can reach it without keeping the Window alive.
type resources[S Surface] struct {
	fns     *native.Functions
	surface S
	handle  uintptr
	state   state
}

// New takes ownership of surface and attaches a width x height wl_egl_window to it.
//
// native.IsAvailable must be true; otherwise the process is terminated.
// The dimensions are passed to libwayland-egl as given.
func New[S Surface](surface S, width, height int) *Window[S] {
	fns, err := native.Load()
	if err != nil {
		core.Fatalf(ModuleName, "cannot create an EGL window: %v\n", err)
	}
	return create(fns, surface, width, height)
}

func create[S Surface](fns *native.Functions, surface S, width, height int) *Window[S] {
	handle := fns.WindowCreate(surface.Ptr(), int32(width), int32(height))
	if handle == 0 {
		panic("wlegl: wl_egl_window_create returned NULL")
	}

	w := &Window[S]{
		resources: &resources[S]{
			fns:     fns,
			surface: surface,
			handle:  handle,
		},
	}
	w.cleanup = runtime.AddCleanup(w, (*resources[S]).release, w.resources)

	core.Verbosef(ModuleName, "[%#x] created at %dx%d\n", handle, width, height)
	return w
}

// Size returns the size libwayland-egl currently has attached to the window.
func (w *Window[S]) Size() (width, height int) {
	w.mustBeLive("Size")

	var x, y int32
	w.fns.GetAttachedSize(w.handle, &x, &y)
	runtime.KeepAlive(w)
	return int(x), int(y)
}

// Resize sets a new size, moving the top-left corner by dx, dy so the caller decides which edge stays put.
func (w *Window[S]) Resize(width, height, dx, dy int) {
	w.mustBeLive("Resize")
	w.fns.WindowResize(w.handle, int32(width), int32(height), int32(dx), int32(dy))
	runtime.KeepAlive(w)
}

// Handle returns the wl_egl_window pointer for eglCreateWindowSurface.
//
// It must not be used once the window has been released. A Window that becomes unreachable is
// closed by the garbage collector, so keep it reachable (or call runtime.KeepAlive on it) for as
// long as EGL holds the pointer:
//
//	w := wlegl.New(surface, 800, 600)
//	defer w.Close()
//	eglSurface := eglCreateWindowSurface(display, config, w.Handle(), nil)
func (w *Window[S]) Handle() uintptr {
	w.mustBeLive("Handle")
	return w.handle
}

// Surface returns the wrapped surface.
//
// The surface still belongs to the window; use Destroy to take it back.
func (w *Window[S]) Surface() S {
	w.mustBeLive("Surface")
	return w.surface
}

// Destroy releases the wl_egl_window and hands the surface back to the caller without destroying it.
//
// The returned surface may be wrapped again with New.
func (w *Window[S]) Destroy() S {
	w.mustBeLive("Destroy")
	w.cleanup.Stop()

	w.fns.WindowDestroy(w.handle)
	w.state = handedBack
	core.Verbosef(ModuleName, "[%#x] handed back its surface\n", w.handle)

	surface := w.surface
	var zero S
	w.surface = zero
	return surface
}

// Close releases the wl_egl_window and then destroys the surface.
//
// Close does nothing if the window was already released.
func (w *Window[S]) Close() {
	if w.state != live {
		return
	}
	w.cleanup.Stop()
	w.release()
}

func (r *resources[S]) release() {
	if r.state != live {
		return
	}
	r.fns.WindowDestroy(r.handle)
	r.state = closed
	r.surface.Destroy()
	core.Verbosef(ModuleName, "[%#x] closed\n", r.handle)

	var zero S
	r.surface = zero
}

func (w *Window[S]) mustBeLive(op string) {
	if w.state != live {
		panic("wlegl: " + op + " called on a window that was " + w.state.String())
	}
}
