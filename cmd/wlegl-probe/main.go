// Command wlegl-probe reports whether libwayland-egl can be loaded.
package main

import (
	"fmt"
	"os"

	"github.com/ignite-laboratories/wayland-egl/native"
)

func main() {
	if _, err := native.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(native.Library())
}
