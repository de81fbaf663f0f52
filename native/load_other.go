//go:build !linux && !freebsd

package native

import (
	"fmt"
	"runtime"
)

func load(names []string) (*Functions, string, error) {
	return nil, "", fmt.Errorf("%w on %s", ErrUnavailable, runtime.GOOS)
}
