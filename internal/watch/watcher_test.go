package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherBootstrapAndPoll(t *testing.T) {
	dir := t.TempDir()
	asset := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(asset, []byte("old"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	w := NewWatcher(asset, time.Second)
	if err := w.Bootstrap(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	now := time.Now()
	changed, err := w.Poll(now)
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if changed {
		t.Fatalf("expected no change after bootstrap")
	}

	if err := os.WriteFile(asset, []byte("rewritten-content"), 0644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	changed, err = w.Poll(now.Add(100 * time.Millisecond))
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if changed {
		t.Fatalf("expected no change before settle")
	}

	changed, err = w.Poll(now.Add(2 * time.Second))
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if !changed {
		t.Fatalf("expected change after settle")
	}

	changed, err = w.Poll(now.Add(3 * time.Second))
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if changed {
		t.Fatalf("expected change to be emitted once")
	}
}

func TestWatcherWaitsForRecreatedFile(t *testing.T) {
	dir := t.TempDir()
	asset := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(asset, []byte("a"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	w := NewWatcher(asset, 500*time.Millisecond)
	if err := w.Bootstrap(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	base := time.Now()
	if err := os.Remove(asset); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if changed, err := w.Poll(base); err != nil || changed {
		t.Fatalf("missing file should not report change: %v %v", changed, err)
	}

	if err := os.WriteFile(asset, []byte("a"), 0644); err != nil {
		t.Fatalf("recreate failed: %v", err)
	}
	if changed, _ := w.Poll(base.Add(100 * time.Millisecond)); changed {
		t.Fatalf("expected no change before settle")
	}
	if changed, _ := w.Poll(base.Add(2 * time.Second)); !changed {
		t.Fatalf("expected recreated file to be reported")
	}
}

func TestWatcherBootstrapMissingFile(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "none.mp4"), 0)
	if err := w.Bootstrap(); err == nil {
		t.Fatalf("expected bootstrap error for missing file")
	}
	if w.SettleFor != DefaultSettle {
		t.Fatalf("expected default settle, got %s", w.SettleFor)
	}
}

func TestEventWatcherSignalsAssetWrites(t *testing.T) {
	dir := t.TempDir()
	asset := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(asset, []byte("a"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	engine, err := NewAdaptiveWatcher(asset, 200*time.Millisecond)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer engine.Close()
	if err := engine.Bootstrap(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if engine.Mode() != "event+polling" {
		t.Fatalf("unexpected mode: %s", engine.Mode())
	}

	if err := os.WriteFile(asset, []byte("changed"), 0644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	select {
	case <-engine.Events():
	case <-time.After(3 * time.Second):
		t.Fatalf("expected fsnotify signal for asset write")
	}
}
