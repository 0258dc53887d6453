package timeline

import "time"

// DefaultMinDuration minimum seçim süresinin varsayılanı.
const DefaultMinDuration = 3 * time.Second

// Controller ham jest/kaydırma olaylarını çözücüye ve konum çubuğuna
// yönlendirir, host'a bildirim gönderir.
//
// Tek bir olay döngüsünden çağrılmak üzere tasarlanmıştır; kilit kullanmaz.
type Controller struct {
	surface     Surface
	layout      Layout
	asset       *Asset
	minDuration time.Duration

	selection Selection
	indicator Indicator
	state     State
	listener  Listener
}

// NewController verilen yüzey ve ölçülerle controller oluşturur.
func NewController(surface Surface, layout Layout) *Controller {
	return &Controller{
		surface:     surface,
		layout:      layout,
		minDuration: DefaultMinDuration,
	}
}

// SetListener bildirimlerin gönderileceği alıcıyı ayarlar (nil olabilir).
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

func (c *Controller) frame() frame {
	f := frame{
		layout:  c.layout,
		visible: c.surface.VisibleWidth(),
		offset:  c.surface.ContentOffset(),
	}
	f.mapper.ContentWidth = c.surface.ContentWidth()
	if c.asset != nil {
		f.mapper.Duration = c.asset.Duration
	}
	f.minSel = f.mapper.MinSelectionPixels(c.minDuration)
	return f
}

// Mapper mevcut asset ve yüzey için dönüştürücüyü döner.
func (c *Controller) Mapper() Mapper {
	return c.frame().mapper
}

// SetAsset asset'i değiştirir ve tüm türetilmiş durumu sıfırlar.
func (c *Controller) SetAsset(a *Asset) {
	if a != nil && a.Duration < 0 {
		a = &Asset{Name: a.Name}
	}
	c.asset = a
	c.selection.Reset()
	c.indicator.reset()
	c.state = State{Kind: StateIdle}
}

// Asset yüklü asset'i döner, yoksa nil.
func (c *Controller) Asset() *Asset {
	return c.asset
}

// MinDuration çözücünün uyguladığı minimum seçim süresi.
func (c *Controller) MinDuration() time.Duration {
	return c.minDuration
}

// SetMinDuration minimum süreyi değiştirir ve tutamaçları yeni sınıra göre
// sıfır delta ile yeniden çözer.
func (c *Controller) SetMinDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.minDuration = d
	f := c.frame()
	c.selection.solve(SideLeft, c.selection.left, 0, f)
	c.selection.solve(SideRight, c.selection.right, 0, f)
	c.layoutIndicator()
}

// StartTime seçili aralığın başlangıcı.
func (c *Controller) StartTime() (time.Duration, bool) {
	return c.selection.startTime(c.frame())
}

// EndTime seçili aralığın bitişi.
func (c *Controller) EndTime() (time.Duration, bool) {
	return c.selection.endTime(c.frame())
}

// SetStartTime başlangıcı programatik olarak ayarlar. Değer sağ tutamaca ve
// minimum süreye göre sıkıştırılır.
func (c *Controller) SetStartTime(t time.Duration) {
	if c.selection.setStart(t, c.frame()) {
		c.layoutIndicator()
	}
}

// SetEndTime bitişi programatik olarak ayarlar.
func (c *Controller) SetEndTime(t time.Duration) {
	if c.selection.setEnd(t, c.frame()) {
		c.layoutIndicator()
	}
}

// Seek konum çubuğunu verilen zamana taşır; seçim tutamaçlarına dokunmaz.
func (c *Controller) Seek(t time.Duration) {
	f := c.frame()
	pos, ok := f.mapper.PositionFromTime(t)
	if !ok {
		return
	}
	raw := pos - f.offset - c.selection.leftHandleOffset()
	c.indicator.place(raw, &c.selection, f)
}

// IndicatorTime konum çubuğunun gösterdiği zaman.
func (c *Controller) IndicatorTime() (time.Duration, bool) {
	f := c.frame()
	return f.mapper.TimeFromPosition(c.indicator.contentPosition(&c.selection, f))
}

// State mevcut etkileşim durumu.
func (c *Controller) State() State {
	return c.state
}

// Reshape yüzey geometrisini değiştiren fonksiyonu çalıştırır ve seçili
// zamanları yeni geometriye yeniden uygular.
func (c *Controller) Reshape(change func()) {
	start, okStart := c.StartTime()
	end, okEnd := c.EndTime()
	pos, okPos := c.IndicatorTime()
	change()
	c.selection.left, c.selection.right = 0, 0
	if okStart && okEnd {
		c.SetStartTime(start)
		c.SetEndTime(end)
	}
	c.selection.rebase()
	if okPos {
		c.Seek(pos)
	}
	c.layoutIndicator()
}

// HandlePan tutamaç üzerindeki pan jestini işler. translation sürükleme
// başından beri toplam yatay ötelemedir.
func (c *Controller) HandlePan(side Side, phase GesturePhase, translation float64) {
	switch handlePanActions[phase] {
	case actBegin:
		c.selection.begin(side)
		c.state = State{Kind: StateDraggingHandle, Side: side}
		c.notify(Event{Kind: EventInteractionStarted})
		c.notifyPosition(false)
	case actMove:
		if !c.selection.dragging(side) {
			return
		}
		f := c.frame()
		c.selection.drag(side, translation, f)
		c.layoutIndicator()
		var boundary time.Duration
		var ok bool
		if side == SideLeft {
			boundary, ok = c.StartTime()
		} else {
			boundary, ok = c.EndTime()
		}
		if ok {
			c.Seek(boundary)
		}
		c.notifyPosition(false)
	case actSettle:
		if !c.selection.dragging(side) {
			return
		}
		c.selection.end(side)
		c.state = State{Kind: StateIdle}
		if other := 1 - side; c.selection.dragging(other) {
			c.state = State{Kind: StateDraggingHandle, Side: other}
		}
		c.layoutIndicator()
		c.notifyPosition(true)
	}
}

// HandleSeekPan önizleme şeridi üzerindeki pan jestini işler. x kapsayıcıya
// göre dokunma konumudur.
func (c *Controller) HandleSeekPan(phase GesturePhase, x float64) {
	switch seekPanActions[phase] {
	case actSeek:
		if c.state.Kind == StateIdle || c.state.Kind == StateSeekingByTap {
			c.state = State{Kind: StateSeekingByTap}
		}
		c.seekFromLocation(x)
	case actFinish:
		if c.state.Kind == StateSeekingByTap {
			c.state = State{Kind: StateIdle}
		}
	}
}

// HandleTap önizleme şeridine dokunmayı işler; tek seferliktir.
func (c *Controller) HandleTap(x float64) {
	prev := c.state
	if prev.Kind == StateIdle {
		c.state = State{Kind: StateSeekingByTap}
	}
	c.seekFromLocation(x)
	c.state = prev
}

func (c *Controller) seekFromLocation(x float64) {
	f := c.frame()
	t, ok := f.mapper.TimeFromPosition(x - f.layout.HandleWidth + f.offset)
	if !ok {
		return
	}
	start, okStart := c.selection.startTime(f)
	end, okEnd := c.selection.endTime(f)
	if !okStart || !okEnd {
		return
	}
	if t < start {
		t = start
	} else if t > end {
		t = end
	}
	c.Seek(t)
	c.notify(Event{Kind: EventSeekRequested, Time: t})
}

// ScrollBegan yüzey kaydırmaya başladığında çağrılır.
func (c *Controller) ScrollBegan() {
	if c.state.Kind == StateIdle {
		c.state = State{Kind: StateScrollingTimeline}
	}
}

// DidScroll her kaydırma adımında çağrılır.
func (c *Controller) DidScroll() {
	c.layoutIndicator()
	c.notifyPosition(false)
}

// EndedDragging kullanıcı kaydırmayı bıraktığında çağrılır; yavaşlama
// gelmeyecekse etkileşim burada biter.
func (c *Controller) EndedDragging(willDecelerate bool) {
	if willDecelerate {
		return
	}
	c.settleScroll()
}

// EndedDecelerating yavaşlama bittiğinde çağrılır.
func (c *Controller) EndedDecelerating() {
	c.settleScroll()
}

func (c *Controller) settleScroll() {
	if c.state.Kind == StateScrollingTimeline {
		c.state = State{Kind: StateIdle}
	}
	c.notifyPosition(true)
}

func (c *Controller) layoutIndicator() {
	c.indicator.normalize(&c.selection, c.frame())
}

func (c *Controller) notifyPosition(settled bool) {
	t, ok := c.IndicatorTime()
	if !ok {
		return
	}
	kind := EventPositionChanged
	if settled {
		kind = EventPositionSettled
	}
	c.notify(Event{Kind: kind, Time: t})
}

func (c *Controller) notify(e Event) {
	if c.listener != nil {
		c.listener.HandleEvent(e)
	}
}
