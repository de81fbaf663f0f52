package native

import (
	"errors"
	"sync"

	"github.com/ignite-laboratories/core"
)

// LibraryNames lists the sonames tried, in order, on the first probe.
//
// Changing it after the first call to Load or IsAvailable has no effect.
var LibraryNames = []string{
	"libwayland-egl.so.1",
	"libwayland-egl.so",
}

// ErrUnavailable is wrapped by every error Load returns.
var ErrUnavailable = errors.New("libwayland-egl is not available")

// Functions is the resolved libwayland-egl function table.
type Functions struct {
	WindowCreate    func(surface uintptr, width, height int32) uintptr
	WindowDestroy   func(window uintptr)
	GetAttachedSize func(window uintptr, width, height *int32)
	WindowResize    func(window uintptr, width, height, dx, dy int32)
}

var once sync.Once
var functions *Functions
var library string
var loadErr error

func reset() {
	once = sync.Once{}
	functions = nil
	library = ""
	loadErr = nil
}

// Load resolves libwayland-egl once per process and returns the cached result.
func Load() (*Functions, error) {
	once.Do(func() {
		functions, library, loadErr = load(LibraryNames)
		if loadErr != nil {
			core.Verbosef(ModuleName, "%v\n", loadErr)
			return
		}
		core.Verbosef(ModuleName, "resolved %s\n", library)
	})
	return functions, loadErr
}

// IsAvailable reports whether libwayland-egl was found and all of its entry points resolved.
func IsAvailable() bool {
	_, err := Load()
	return err == nil
}

// Library returns the soname that resolved, or an empty string.
func Library() string {
	Load()
	return library
}
