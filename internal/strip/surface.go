package strip

import (
	"math"
	"time"
)

const (
	// DecelerationRate milisaniye başına hız çarpanı.
	DecelerationRate = 0.998
	// MinFlingVelocity bu hızın (sütun/sn) altındaki fırlatmalar yavaşlamaya girmez.
	MinFlingVelocity = 4.0
	// DefaultZoom içerik genişliğinin görünür genişliğe oranı.
	DefaultZoom = 3.0
	MaxZoom     = 12.0
)

// ScrollListener kaydırma yaşam döngüsü bildirimlerini alır.
// timeline.Controller bu arayüzü doğrudan karşılar.
type ScrollListener interface {
	ScrollBegan()
	DidScroll()
	EndedDragging(willDecelerate bool)
	EndedDecelerating()
}

// Surface yatay kaydırılabilir önizleme şeridi. timeline.Surface'i karşılar.
type Surface struct {
	visible float64
	zoom    float64
	offset  float64

	velocity     float64
	dragging     bool
	decelerating bool

	listener ScrollListener
}

// NewSurface verilen görünür genişlik ve zoom ile yüzey oluşturur.
func NewSurface(visible, zoom float64) *Surface {
	s := &Surface{}
	s.visible = math.Max(visible, 0)
	s.zoom = normalizeZoom(zoom)
	return s
}

func normalizeZoom(z float64) float64 {
	if z < 1 || math.IsNaN(z) {
		return 1
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// SetListener kaydırma bildirimlerinin alıcısını ayarlar.
func (s *Surface) SetListener(l ScrollListener) {
	s.listener = l
}

func (s *Surface) ContentWidth() float64  { return s.visible * s.zoom }
func (s *Surface) VisibleWidth() float64  { return s.visible }
func (s *Surface) ContentOffset() float64 { return s.offset }

// Zoom mevcut yakınlaştırma oranı.
func (s *Surface) Zoom() float64 { return s.zoom }

// Decelerating momentum devam ediyor mu
func (s *Surface) Decelerating() bool { return s.decelerating }

// Dragging kullanıcı şu an kaydırıyor mu
func (s *Surface) Dragging() bool { return s.dragging }

func (s *Surface) maxOffset() float64 {
	return math.Max(s.ContentWidth()-s.visible, 0)
}

func (s *Surface) clampOffset(v float64) float64 {
	if v < 0 {
		return 0
	}
	if m := s.maxOffset(); v > m {
		return m
	}
	return v
}

// SetVisibleWidth terminal yeniden boyutlandığında çağrılır. Ofset içerik
// oranı korunarak ölçeklenir.
func (s *Surface) SetVisibleWidth(w float64) {
	s.rescale(math.Max(w, 0), s.zoom)
}

// SetZoom içerik genişliğini görünür genişliğin katı olarak değiştirir.
func (s *Surface) SetZoom(z float64) {
	s.rescale(s.visible, normalizeZoom(z))
}

func (s *Surface) rescale(visible, zoom float64) {
	ratio := 0.0
	if c := s.ContentWidth(); c > 0 {
		ratio = s.offset / c
	}
	s.visible = visible
	s.zoom = zoom
	s.offset = s.clampOffset(ratio * s.ContentWidth())
}

// BeginDrag kullanıcı kaydırmasını başlatır; süren momentum durdurulur.
func (s *Surface) BeginDrag() {
	s.decelerating = false
	s.velocity = 0
	s.dragging = true
	if s.listener != nil {
		s.listener.ScrollBegan()
	}
}

// DragBy sürükleme sırasında ofseti dx kadar kaydırır.
func (s *Surface) DragBy(dx float64) {
	if !s.dragging {
		return
	}
	s.moveTo(s.offset + dx)
}

// EndDrag sürüklemeyi bitirir. Hız yeterliyse yavaşlama başlar.
func (s *Surface) EndDrag(velocity float64) {
	if !s.dragging {
		return
	}
	s.dragging = false
	willDecelerate := math.Abs(velocity) >= MinFlingVelocity && s.canMove(velocity)
	if willDecelerate {
		s.velocity = velocity
		s.decelerating = true
	}
	if s.listener != nil {
		s.listener.EndedDragging(willDecelerate)
	}
}

// ScrollBy tek seferlik, momentumsuz kaydırma.
func (s *Surface) ScrollBy(dx float64) {
	s.BeginDrag()
	s.DragBy(dx)
	s.EndDrag(0)
}

// Fling verilen hızla (sütun/sn) momentumlu kaydırma başlatır.
func (s *Surface) Fling(velocity float64) {
	s.BeginDrag()
	s.EndDrag(velocity)
}

// Step momentumu dt kadar ilerletir. Yavaşlama sürüyorsa true döner.
func (s *Surface) Step(dt time.Duration) bool {
	if !s.decelerating {
		return false
	}
	if dt > 0 {
		s.moveTo(s.offset + s.velocity*dt.Seconds())
		s.velocity *= math.Pow(DecelerationRate, float64(dt)/float64(time.Millisecond))
	}
	if math.Abs(s.velocity) < MinFlingVelocity || !s.canMove(s.velocity) {
		s.stop()
		return false
	}
	return true
}

// Stop süren momentumu keser.
func (s *Surface) Stop() {
	if s.decelerating {
		s.stop()
	}
}

func (s *Surface) stop() {
	s.decelerating = false
	s.velocity = 0
	if s.listener != nil {
		s.listener.EndedDecelerating()
	}
}

func (s *Surface) canMove(velocity float64) bool {
	if velocity > 0 {
		return s.offset < s.maxOffset()
	}
	if velocity < 0 {
		return s.offset > 0
	}
	return false
}

func (s *Surface) moveTo(v float64) {
	v = s.clampOffset(v)
	if v == s.offset {
		return
	}
	s.offset = v
	if s.listener != nil {
		s.listener.DidScroll()
	}
}
