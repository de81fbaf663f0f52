//go:build linux || freebsd

package native

import (
	"fmt"
	"strings"

	"github.com/ebitengine/purego"
)

func load(names []string) (*Functions, string, error) {
	var failures []string
	for _, name := range names {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil || handle == 0 {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		fns, err := resolve(handle)
		if err != nil {
			_ = purego.Dlclose(handle)
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		return fns, name, nil
	}
	return nil, "", fmt.Errorf("%w (%s)", ErrUnavailable, strings.Join(failures, "; "))
}

func resolve(handle uintptr) (*Functions, error) {
	fns := &Functions{}
	symbols := []struct {
		name string
		fptr any
	}{
		{"wl_egl_window_create", &fns.WindowCreate},
		{"wl_egl_window_destroy", &fns.WindowDestroy},
		{"wl_egl_window_get_attached_size", &fns.GetAttachedSize},
		{"wl_egl_window_resize", &fns.WindowResize},
	}
	for _, sym := range symbols {
		addr, err := purego.Dlsym(handle, sym.name)
		if err != nil || addr == 0 {
			return nil, fmt.Errorf("missing symbol %s", sym.name)
		}
		purego.RegisterFunc(sym.fptr, addr)
	}
	return fns, nil
}
