package timeline

import "time"

// Mapper timeline içerik alanındaki yatay piksel ofseti ile medya zamanı
// arasında dönüşüm yapar. Durum tutmaz.
type Mapper struct {
	Duration     time.Duration
	ContentWidth float64
}

func (m Mapper) defined() bool {
	return m.Duration > 0 && m.ContentWidth > 0
}

// PositionFromTime zamana karşılık gelen piksel ofsetini döner.
// Asset yoksa veya süre sıfırsa ok=false döner.
func (m Mapper) PositionFromTime(t time.Duration) (float64, bool) {
	if !m.defined() {
		return 0, false
	}
	return t.Seconds() / m.Duration.Seconds() * m.ContentWidth, true
}

// TimeFromPosition piksel ofsetini zamana çevirir. x önce [0, ContentWidth]
// aralığına sıkıştırılır, dönen zaman her zaman [0, Duration] içindedir.
func (m Mapper) TimeFromPosition(x float64) (time.Duration, bool) {
	if !m.defined() {
		return 0, false
	}
	x = clamp(x, 0, m.ContentWidth)
	sec := x / m.ContentWidth * m.Duration.Seconds()
	t := time.Duration(sec * float64(time.Second))
	if t > m.Duration {
		t = m.Duration
	}
	return t, true
}

// MinSelectionPixels minimum seçim süresinin piksel karşılığı.
func (m Mapper) MinSelectionPixels(minDuration time.Duration) float64 {
	if !m.defined() || minDuration <= 0 {
		return 0
	}
	return minDuration.Seconds() * m.ContentWidth / m.Duration.Seconds()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
