package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCollapsesBurst(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	fired := make(chan string, 4)
	debouncer := NewDebouncer(30*time.Millisecond, func(key string) {
		calls.Add(1)
		fired <- key
	})
	defer debouncer.Stop()

	for i := 0; i < 5; i++ {
		debouncer.Trigger("words.xlsx")
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case key := <-fired:
		if key != "words.xlsx" {
			t.Fatalf("unexpected key %q", key)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("debounced callback never fired")
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 callback, got %d", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	debouncer := NewDebouncer(20*time.Millisecond, func(string) { calls.Add(1) })
	debouncer.Trigger("a")
	debouncer.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Fatalf("expected no callback after stop, got %d", got)
	}
}

func TestRunnerCoalescesRequestsDuringRun(t *testing.T) {
	t.Parallel()

	started := make(chan struct{}, 4)
	release := make(chan struct{})
	var runs atomic.Int32
	var active atomic.Int32
	var overlap atomic.Bool

	runner := NewRunner(func(ctx context.Context) {
		if active.Add(1) > 1 {
			overlap.Store(true)
		}
		runs.Add(1)
		started <- struct{}{}
		<-release
		active.Add(-1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runner.Run(ctx)
	}()

	runner.Request()
	<-started

	for i := 0; i < 3; i++ {
		runner.Request()
	}
	release <- struct{}{}

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatalf("queued run never started")
	}
	release <- struct{}{}

	time.Sleep(50 * time.Millisecond)
	cancel()
	wg.Wait()

	if got := runs.Load(); got != 2 {
		t.Fatalf("expected 2 runs, got %d", got)
	}
	if overlap.Load() {
		t.Fatalf("runs overlapped")
	}
}

func TestWatcherRunsOnStartAndOnChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "words.xlsx")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	seen := make(chan string, 8)
	watcher := New(path, func(_ context.Context, changed string) {
		seen <- changed
	})
	watcher.Delay = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- watcher.Run(ctx) }()

	expectRun := func(stage string) {
		t.Helper()
		select {
		case got := <-seen:
			if filepath.Base(got) != "words.xlsx" {
				t.Fatalf("%s: unexpected path %q", stage, got)
			}
		case <-time.After(3 * time.Second):
			t.Fatalf("%s: no run observed", stage)
		}
	}

	expectRun("initial")

	// Let the watch registration settle before touching the file.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write unrelated file: %v", err)
	}
	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatalf("rewrite file: %v", err)
	}
	expectRun("after change")

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("watcher did not stop after cancel")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	t.Parallel()

	watcher := New(filepath.Join(t.TempDir(), "missing", "words.xlsx"), func(context.Context, string) {})
	if err := watcher.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
