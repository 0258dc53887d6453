package timeline

import (
	"fmt"
	"time"
)

// EventKind host'a gönderilen bildirim türü.
type EventKind int

const (
	// EventPositionChanged sürükleme/kaydırma sırasında sürekli gönderilir.
	EventPositionChanged EventKind = iota + 1
	// EventPositionSettled etkileşim bittiğinde bir kez gönderilir.
	EventPositionSettled
	// EventSeekRequested dokunma veya sürükleyerek arama sonrası gönderilir.
	EventSeekRequested
	// EventInteractionStarted tutamaç sürüklemesinin başında bir kez gönderilir.
	EventInteractionStarted
)

func (k EventKind) String() string {
	switch k {
	case EventPositionChanged:
		return "position-changed"
	case EventPositionSettled:
		return "position-settled"
	case EventSeekRequested:
		return "seek-requested"
	case EventInteractionStarted:
		return "interaction-started"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event controller'ın host'a ilettiği ayrık bildirim.
// InteractionStarted için Time anlamsızdır.
type Event struct {
	Kind EventKind
	Time time.Duration
}

func (e Event) String() string {
	if e.Kind == EventInteractionStarted {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s@%s", e.Kind, e.Time)
}

// Listener controller bildirimlerini alır.
type Listener interface {
	HandleEvent(Event)
}

// ListenerFunc düz fonksiyonları Listener olarak kullanmayı sağlar.
type ListenerFunc func(Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// EventLog gelen bildirimleri sırasıyla biriktirir.
type EventLog struct {
	Events []Event
}

func (l *EventLog) HandleEvent(e Event) {
	l.Events = append(l.Events, e)
}

// Count verilen türdeki bildirim sayısını döner.
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last verilen türdeki son bildirimi döner.
func (l *EventLog) Last(kind EventKind) (Event, bool) {
	for i := len(l.Events) - 1; i >= 0; i-- {
		if l.Events[i].Kind == kind {
			return l.Events[i], true
		}
	}
	return Event{}, false
}

// Drain biriken bildirimleri döner ve kaydı temizler.
func (l *EventLog) Drain() []Event {
	events := l.Events
	l.Events = nil
	return events
}
