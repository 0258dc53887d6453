package watch

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// DefaultSettle bir yazımın bitmiş sayılması için beklenen süre.
const DefaultSettle = 1500 * time.Millisecond

// Engine tek bir asset dosyasını izleyen backend.
type Engine interface {
	Bootstrap() error
	Poll(now time.Time) (bool, error)
	Events() <-chan struct{}
	Close() error
	Mode() string
}

type fileState struct {
	Exists     bool
	Size       int64
	ModTime    time.Time
	LastChange time.Time
	Processed  bool
}

// Watcher polling tabanlı tek dosya izleyicisidir.
type Watcher struct {
	Path      string
	SettleFor time.Duration

	state fileState
}

// NewWatcher yeni bir watcher oluşturur.
func NewWatcher(path string, settleFor time.Duration) *Watcher {
	if settleFor <= 0 {
		settleFor = DefaultSettle
	}
	return &Watcher{
		Path:      filepath.Clean(path),
		SettleFor: settleFor,
	}
}

// Bootstrap mevcut dosyayı "zaten yüklenmiş" olarak kaydeder.
func (w *Watcher) Bootstrap() error {
	info, err := os.Stat(w.Path)
	if err != nil {
		return err
	}
	w.state = fileState{
		Exists:     true,
		Size:       info.Size(),
		ModTime:    info.ModTime(),
		LastChange: time.Now(),
		Processed:  true,
	}
	return nil
}

// Poll dosya değişip stabilize olduysa true döner; her değişiklik bir kez
// bildirilir. Dosya silinmişse yeniden oluşturulmasını bekler.
func (w *Watcher) Poll(now time.Time) (bool, error) {
	info, err := os.Stat(w.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if w.state.Exists {
				w.state = fileState{LastChange: now}
			}
			return false, nil
		}
		return false, err
	}

	if !w.state.Exists || w.state.Size != info.Size() || !w.state.ModTime.Equal(info.ModTime()) {
		w.state = fileState{
			Exists:     true,
			Size:       info.Size(),
			ModTime:    info.ModTime(),
			LastChange: now,
		}
		return false, nil
	}

	if !w.state.Processed && now.Sub(w.state.LastChange) >= w.SettleFor {
		w.state.Processed = true
		return true, nil
	}
	return false, nil
}

// Events polling backend'inde sinyal yoktur; çağıran periyodik Poll yapar.
func (w *Watcher) Events() <-chan struct{} { return nil }

func (w *Watcher) Close() error { return nil }

func (w *Watcher) Mode() string { return "polling" }
