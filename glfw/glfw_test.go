//go:build (linux || freebsd) && wayland

package glfw

import (
	"sync"
	"testing"
	"time"
)

// within fails the test if fn has not returned after a second.
func within(t *testing.T, name string, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("%s blocked after the loop stopped", name)
	}
}

func TestSurfaceAfterShutdown(t *testing.T) {
	t.Cleanup(reset)

	s := &Surface{ID: 1}
	mutex.Lock()
	accepting = true
	surfaces[s.ID] = s
	mutex.Unlock()

	shutdown()

	mutex.Lock()
	left := len(surfaces)
	mutex.Unlock()
	if left != 0 {
		t.Fatalf("expected shutdown to forget every surface, %d left", left)
	}

	within(t, "Ptr", func() {
		if p := s.Ptr(); p != 0 {
			t.Errorf("expected a zero pointer, got %#x", p)
		}
	})
	within(t, "Display", func() {
		if p := s.Display(); p != 0 {
			t.Errorf("expected a zero display, got %#x", p)
		}
	})
	within(t, "ShouldClose", func() {
		if !s.ShouldClose() {
			t.Error("expected a torn down surface to report ShouldClose")
		}
	})
	within(t, "Destroy", s.Destroy)
}

func TestUnregisteredSurfaceIsNotDispatched(t *testing.T) {
	t.Cleanup(reset)

	mutex.Lock()
	accepting = true
	mutex.Unlock()

	// Accepting, but nothing services Synchro: any send would block.
	s := &Surface{ID: 2}
	within(t, "Destroy", s.Destroy)
	within(t, "Ptr", func() { s.Ptr() })
}

func TestDispatchRefusedWhenNotAccepting(t *testing.T) {
	t.Cleanup(reset)
	reset()

	ran := false
	within(t, "dispatch", func() {
		if dispatch(nil, func() { ran = true }) {
			t.Error("expected dispatch to refuse work while the loop is stopped")
		}
	})
	if ran {
		t.Error("expected fn not to run")
	}
}

func TestStopFromOtherGoroutines(t *testing.T) {
	t.Cleanup(reset)
	running.Store(true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Stop()
		}()
		go func() {
			defer wg.Done()
			_ = running.Load()
		}()
	}
	wg.Wait()

	if running.Load() {
		t.Error("expected Stop to clear running")
	}
}
