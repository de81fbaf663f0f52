package native

import (
	"errors"
	"sync"
	"testing"
)

func withNames(t *testing.T, names ...string) {
	t.Helper()
	saved := LibraryNames
	LibraryNames = names
	reset()
	t.Cleanup(func() {
		LibraryNames = saved
		reset()
	})
}

func TestMissingLibraryIsUnavailable(t *testing.T) {
	withNames(t, "libwlegl-does-not-exist.so.0")

	if IsAvailable() {
		t.Fatal("expected a missing library to be reported unavailable")
	}
	fns, err := Load()
	if fns != nil {
		t.Errorf("expected no function table, got %v", fns)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if lib := Library(); lib != "" {
		t.Errorf("expected empty library name, got %q", lib)
	}
}

func TestNoCandidatesIsUnavailable(t *testing.T) {
	withNames(t)

	if IsAvailable() {
		t.Fatal("expected no candidates to be reported unavailable")
	}
}

func TestProbeIsCached(t *testing.T) {
	withNames(t, "libwlegl-does-not-exist.so.0")

	first := IsAvailable()
	_, firstErr := Load()

	// The names are only consulted by the first probe.
	LibraryNames = []string{"libwayland-egl.so.1"}
	if IsAvailable() != first {
		t.Fatal("probe result changed after the first call")
	}
	if _, err := Load(); err != firstErr {
		t.Errorf("expected the cached error %v, got %v", firstErr, err)
	}
}

func TestProbeFromManyGoroutines(t *testing.T) {
	withNames(t, "libwlegl-does-not-exist.so.0")

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = IsAvailable()
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != results[0] {
			t.Fatalf("goroutine %d saw %v, goroutine 0 saw %v", i, r, results[0])
		}
	}
}

func TestLoadedTableIsComplete(t *testing.T) {
	reset()
	t.Cleanup(reset)

	fns, err := Load()
	if err != nil {
		t.Skipf("libwayland-egl not present: %v", err)
	}
	if fns.WindowCreate == nil || fns.WindowDestroy == nil || fns.GetAttachedSize == nil || fns.WindowResize == nil {
		t.Fatal("expected every entry point to be resolved")
	}
	if Library() == "" {
		t.Error("expected the resolving soname to be recorded")
	}
}
