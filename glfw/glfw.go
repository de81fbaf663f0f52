//go:build (linux || freebsd) && wayland

package glfw

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"github.com/ignite-laboratories/wayland-egl"
)

func init() {
	reset()
}

var Synchro std.Synchro

var once sync.Once
var running atomic.Bool

// mutex guards surfaces, accepting and the Synchro value handed to senders.
var mutex sync.Mutex

// surfaces holds every surface whose window is still open on the GLFW thread.
var surfaces map[uint64]*Surface

// accepting is true while the loop services Synchro.
var accepting bool

// pending counts sends the loop must still service before it may terminate GLFW.
var pending atomic.Int32

func reset() {
	mutex.Lock()
	defer mutex.Unlock()

	once = sync.Once{}
	surfaces = make(map[uint64]*Surface)
	Synchro = make(std.Synchro)
	accepting = false
	running.Store(false)
}

func Activate() {
	once.Do(run)
}

func Stop() {
	running.Store(false)
}

func run() {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		core.Verbosef(ModuleName, "sparking GLFW integration\n")
		running.Store(true)

		if err := glfw.Init(); err != nil {
			core.Fatalf(ModuleName, "failed to initialize GLFW: %v\n", err)
		}
		defer glfw.Terminate()

		// The EGL context is created by the caller from the wl_egl_window, not by GLFW.
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

		mutex.Lock()
		accepting = true
		mutex.Unlock()

		wg.Done()

		for core.Alive && running.Load() {
			Synchro.Engage() // Listen for external execution

			glfw.PollEvents()
		}

		shutdown()
		core.Verbosef(ModuleName, "GLFW integration stopped\n")
		reset() // Reset for re-activation
	}()
	wg.Wait()
}

// shutdown stops accepting work, forgets every open surface and services the sends already in flight.
//
// The windows themselves go with glfw.Terminate.
func shutdown() {
	mutex.Lock()
	accepting = false
	open := len(surfaces)
	surfaces = make(map[uint64]*Surface)
	synchro := Synchro
	mutex.Unlock()

	for pending.Load() > 0 {
		synchro.Engage()
		runtime.Gosched()
	}

	if open > 0 {
		core.Verbosef(ModuleName, "%d surfaces closed by shutdown\n", open)
	}
}

// dispatch runs fn on the GLFW thread if the loop is accepting work and admit, when given, agrees.
//
// admit runs under mutex. dispatch reports whether fn ran.
func dispatch(admit func() bool, fn func()) bool {
	mutex.Lock()
	if !accepting || (admit != nil && !admit()) {
		mutex.Unlock()
		return false
	}
	pending.Add(1)
	synchro := Synchro
	mutex.Unlock()

	defer pending.Add(-1)
	synchro.Send(fn)
	return true
}

// CreateSurface opens a GLFW window and returns its Wayland surface.
//
// A nil size uses wlegl.DefaultSize.
func CreateSurface(title string, size *std.XY[int]) *Surface {
	Activate()

	if size == nil {
		size = &wlegl.DefaultSize
	}

	var handle *glfw.Window
	ran := dispatch(nil, func() {
		h, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
		if err != nil {
			core.Fatalf(ModuleName, "failed to create GLFW window: %v\n", err)
		}
		handle = h
	})
	if !ran {
		core.Fatalf(ModuleName, "GLFW integration stopped before the window could be created\n")
	}

	s := &Surface{ID: core.NextID(), window: handle}

	// If the loop stopped in the meantime, glfw.Terminate already took the window.
	mutex.Lock()
	if accepting {
		surfaces[s.ID] = s
	}
	mutex.Unlock()

	core.Verbosef(ModuleName, "surface [%d] created\n", s.ID)
	return s
}
