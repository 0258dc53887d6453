package player

import "time"

// Player host tarafındaki oynatıcı. Gerçek çözümleme yapmaz; konumu bir
// [start, end] döngü penceresi içinde ilerletir.
type Player struct {
	duration time.Duration
	position time.Duration
	start    time.Duration
	end      time.Duration
	playing  bool
	rate     float64
}

// New verilen süre için durdurulmuş oynatıcı oluşturur.
func New(duration time.Duration) *Player {
	if duration < 0 {
		duration = 0
	}
	return &Player{duration: duration, end: duration, rate: 1}
}

func (p *Player) Duration() time.Duration { return p.duration }
func (p *Player) Position() time.Duration { return p.position }
func (p *Player) Playing() bool           { return p.playing }

// Window döngü penceresi.
func (p *Player) Window() (time.Duration, time.Duration) {
	return p.start, p.end
}

// SetWindow döngü penceresini ayarlar; konum pencere dışındaysa içine çekilir.
func (p *Player) SetWindow(start, end time.Duration) {
	start = clamp(start, 0, p.duration)
	end = clamp(end, 0, p.duration)
	if end < start {
		start, end = end, start
	}
	p.start, p.end = start, end
	if p.playing {
		p.position = clamp(p.position, p.start, p.end)
	}
}

// SetRate oynatma hızı; sıfır ve negatif değerler 1 kabul edilir.
func (p *Player) SetRate(rate float64) {
	if rate <= 0 {
		rate = 1
	}
	p.rate = rate
}

// Seek konumu verilen zamana taşır. Duraklatılmış oynatıcı pencere dışına da
// gidebilir; oynarken pencereye sıkıştırılır.
func (p *Player) Seek(t time.Duration) {
	t = clamp(t, 0, p.duration)
	if p.playing {
		t = clamp(t, p.start, p.end)
	}
	p.position = t
}

// Play oynatmayı başlatır. Konum pencere dışındaysa baştan başlar.
func (p *Player) Play() {
	if p.duration == 0 {
		return
	}
	if p.position < p.start || p.position >= p.end {
		p.position = p.start
	}
	p.playing = true
}

func (p *Player) Pause() {
	p.playing = false
}

// Toggle oynat/duraklat. Yeni durumu döner.
func (p *Player) Toggle() bool {
	if p.playing {
		p.Pause()
	} else {
		p.Play()
	}
	return p.playing
}

// Advance oynatma sürüyorsa konumu dt kadar ilerletir ve pencere sonunda
// başa sarar. Konum değiştiyse true döner.
func (p *Player) Advance(dt time.Duration) bool {
	if !p.playing || dt <= 0 {
		return false
	}
	window := p.end - p.start
	if window <= 0 {
		p.position = p.start
		return false
	}
	next := p.position + time.Duration(float64(dt)*p.rate)
	if next >= p.end {
		next = p.start + (next-p.start)%window
	}
	changed := next != p.position
	p.position = next
	return changed
}

func clamp(v, lo, hi time.Duration) time.Duration {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
