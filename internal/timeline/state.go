package timeline

import "fmt"

// Side sürüklenen tutamacı belirtir.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// GesturePhase jest tanıyıcının bildirdiği faz.
type GesturePhase int

const (
	PhaseBegan GesturePhase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
	PhaseFailed
)

func (p GesturePhase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// StateKind controller'ın etkileşim durumu.
type StateKind int

const (
	StateIdle StateKind = iota
	StateDraggingHandle
	StateScrollingTimeline
	StateSeekingByTap
)

// State etkileşim durumu; Side yalnızca StateDraggingHandle için anlamlıdır.
type State struct {
	Kind StateKind
	Side Side
}

func (s State) String() string {
	switch s.Kind {
	case StateIdle:
		return "idle"
	case StateDraggingHandle:
		return "dragging(" + s.Side.String() + ")"
	case StateScrollingTimeline:
		return "scrolling"
	case StateSeekingByTap:
		return "seeking"
	default:
		return fmt.Sprintf("state(%d)", int(s.Kind))
	}
}

type action int

const (
	actIgnore action = iota
	actBegin
	actMove
	actSettle
	actSeek
	actFinish
)

// Faz -> aksiyon tabloları. Sürekli (move) ve kapanış (settle) bildirimleri
// buradan ayrışır.
var (
	handlePanActions = map[GesturePhase]action{
		PhaseBegan:     actBegin,
		PhaseChanged:   actMove,
		PhaseEnded:     actSettle,
		PhaseCancelled: actSettle,
		PhaseFailed:    actSettle,
	}
	seekPanActions = map[GesturePhase]action{
		PhaseBegan:     actSeek,
		PhaseChanged:   actSeek,
		PhaseEnded:     actFinish,
		PhaseCancelled: actFinish,
		PhaseFailed:    actFinish,
	}
)
