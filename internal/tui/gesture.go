package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlihgenel/videotrim-cli/internal/timeline"
)

type target int

const (
	targetNone target = iota
	targetLeftHandle
	targetRightHandle
	targetStrip
)

// pointer basılı fare tuşunun izlediği jest.
type pointer struct {
	target    target
	scrolling bool
	moved     bool

	pressX  int // ekran
	originX int // kapsayıcı
	lastX   int

	lastMotion time.Time
	velocity   float64
}

func (p *pointer) reset() {
	*p = pointer{}
}

func (p *pointer) active() bool {
	return p.target != targetNone
}

// stripOrigin şeridin ilk hücresinin ekran koordinatı. View ile aynı
// yerleşimi varsayar: başlık satırları, kenar boşluğu ve çerçeve.
func (m Model) stripOrigin() (int, int) {
	return marginX + 1, headerLines + 1
}

// locate fare olayını kapsayıcı sütununa çevirir. Zone bilgisi varsa o
// kullanılır; yoksa yerleşimden hesaplanır.
func (m Model) locate(msg tea.MouseMsg) (int, bool) {
	if z := m.zones.Get(zoneStrip); z != nil && !z.IsZero() {
		if !z.InBounds(msg) {
			return 0, false
		}
		x, _ := z.Pos(msg)
		return x, true
	}

	ox, oy := m.stripOrigin()
	snap := m.ctrl.Snapshot()
	x, y := msg.X-ox, msg.Y-oy
	if y < 0 || y >= stripRows || x < 0 || x >= round(snap.ContainerWidth) {
		return 0, false
	}
	return x, true
}

// classify kapsayıcı sütununun tutamaç mı şerit mi olduğunu söyler.
func (m Model) classify(x int) target {
	snap := m.ctrl.Snapshot()
	left := round(snap.LeftHandle)
	right := round(snap.RightHandle)
	hw := round(snap.HandleWidth)
	switch {
	case x >= left && x < left+hw:
		return targetLeftHandle
	case x >= right && x < right+hw:
		return targetRightHandle
	default:
		return targetStrip
	}
}

func sideOf(t target) timeline.Side {
	if t == targetRightHandle {
		return timeline.SideRight
	}
	return timeline.SideLeft
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := m.pointer

	if msg.Action == tea.MouseActionPress && tea.MouseEvent(msg).IsWheel() {
		if _, ok := m.locate(msg); !ok {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.surface.Fling(wheelFling)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.surface.Fling(-wheelFling)
		}
		return m, m.startFrames()
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if p.active() {
			return m, nil
		}
		x, ok := m.locate(msg)
		if !ok {
			return m, nil
		}
		p.target = m.classify(x)
		p.pressX = msg.X
		p.originX = x
		p.lastX = msg.X
		p.lastMotion = time.Now()

		switch {
		case p.target != targetStrip:
			m.focus = sideOf(p.target)
			m.ctrl.HandlePan(m.focus, timeline.PhaseBegan, 0)
		case msg.Button == tea.MouseButtonRight || msg.Button == tea.MouseButtonMiddle || msg.Shift:
			// Şeridi tutup kaydırma
			p.scrolling = true
			m.surface.BeginDrag()
		}
		return m, nil

	case tea.MouseActionMotion:
		if !p.active() {
			return m, nil
		}
		translation := float64(msg.X - p.pressX)
		switch {
		case p.target != targetStrip:
			m.ctrl.HandlePan(sideOf(p.target), timeline.PhaseChanged, translation)
		case p.scrolling:
			now := time.Now()
			dx := float64(msg.X - p.lastX)
			if dt := now.Sub(p.lastMotion).Seconds(); dt > 0 {
				p.velocity = -dx / dt
			}
			p.lastMotion = now
			m.surface.DragBy(-dx)
		default:
			phase := timeline.PhaseChanged
			if !p.moved {
				phase = timeline.PhaseBegan
			}
			p.moved = true
			m.ctrl.HandleSeekPan(phase, float64(p.originX)+translation)
		}
		p.lastX = msg.X
		return m, nil

	case tea.MouseActionRelease:
		if !p.active() {
			return m, nil
		}
		translation := float64(msg.X - p.pressX)
		x := float64(p.originX) + translation
		var cmd tea.Cmd
		switch {
		case p.target != targetStrip:
			m.ctrl.HandlePan(sideOf(p.target), timeline.PhaseEnded, translation)
		case p.scrolling:
			velocity := p.velocity
			if time.Since(p.lastMotion) > maxFrameStep {
				velocity = 0
			}
			m.surface.EndDrag(velocity)
			cmd = m.startFrames()
		case p.moved:
			m.ctrl.HandleSeekPan(timeline.PhaseEnded, x)
		default:
			// Hareketsiz bırakma: pan başarısız, dokunma olarak işlenir.
			m.ctrl.HandleSeekPan(timeline.PhaseFailed, x)
			m.ctrl.HandleTap(x)
		}
		p.reset()
		m.syncPlayer()
		return m, cmd
	}
	return m, nil
}
