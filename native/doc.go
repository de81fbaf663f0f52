// Package native probes for libwayland-egl and resolves the four entry points the wrapper needs.
package native

import (
	"github.com/ignite-laboratories/core"
)

var ModuleName = "native"

func init() {
	core.SubmoduleReport("wlegl", ModuleName)
}

func Report() {}
