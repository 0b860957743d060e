package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitBatch(t *testing.T, w *Watcher, timeout time.Duration) ([]string, bool) {
	t.Helper()
	select {
	case batch := <-w.Reloads():
		return batch, true
	case <-time.After(timeout):
		return nil, false
	}
}

// TestWatcherCoalescesWrites verifies a burst of writes yields one batch
func TestWatcherCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binds.txt")
	if err := os.WriteFile(path, []byte("scancode A jump\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := New([]string{path}, WithDelay(50*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("scancode B jump\n"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	batch, ok := waitBatch(t, w, 2*time.Second)
	if !ok {
		t.Fatal("Expected a reload batch")
	}
	abs, _ := filepath.Abs(path)
	if len(batch) != 1 || batch[0] != abs {
		t.Errorf("Expected [%s], got %v", abs, batch)
	}

	if extra, ok := waitBatch(t, w, 250*time.Millisecond); ok {
		t.Errorf("Expected burst coalesced, got extra batch %v", extra)
	}
}

// TestWatcherIgnoresOtherFiles verifies siblings in a watched directory are filtered
func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binds.txt")
	os.WriteFile(path, nil, 0644)

	w, err := New([]string{path}, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644)
	if batch, ok := waitBatch(t, w, 200*time.Millisecond); ok {
		t.Errorf("Expected no batch for unrelated file, got %v", batch)
	}
}

// TestWatcherReplaceOnSave verifies rename-over-original is reported
func TestWatcherReplaceOnSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binds.txt")
	os.WriteFile(path, nil, 0644)

	w, err := New([]string{path}, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	tmp := filepath.Join(dir, ".binds.txt.swp")
	os.WriteFile(tmp, []byte("wheelup zoom\n"), 0644)
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	if _, ok := waitBatch(t, w, 2*time.Second); !ok {
		t.Error("Expected reload after replace")
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binds.txt")
	os.WriteFile(path, nil, 0644)

	w, err := New([]string{path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Second Close: %v", err)
	}
	if _, ok := <-w.Reloads(); ok {
		t.Error("Expected reloads channel closed")
	}
	if err := w.Add(path); err != ErrClosed {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "nope", "binds.txt")})
	if err == nil {
		t.Error("Expected error watching a missing directory")
	}
}
