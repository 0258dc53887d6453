package timeline

import "time"

// Snapshot controller durumunun salt okunur izdüşümü. Çizim katmanı her
// karede bunu okur; tersi yönde veri akışı yoktur.
type Snapshot struct {
	HasAsset bool
	Duration time.Duration

	ContainerWidth float64
	VisibleWidth   float64
	ContentWidth   float64
	ContentOffset  float64
	HandleWidth    float64
	IndicatorWidth float64

	// Kapsayıcıya göre sol kenarlar.
	LeftHandle  float64
	RightHandle float64
	Indicator   float64

	Start    time.Duration
	End      time.Duration
	Position time.Duration

	MinDuration time.Duration
	State       State
}

// Snapshot mevcut durumun izdüşümünü döner.
func (c *Controller) Snapshot() Snapshot {
	f := c.frame()
	s := Snapshot{
		HasAsset:       f.mapper.defined(),
		Duration:       f.mapper.Duration,
		ContainerWidth: f.width(),
		VisibleWidth:   f.visible,
		ContentWidth:   f.mapper.ContentWidth,
		ContentOffset:  f.offset,
		HandleWidth:    f.layout.HandleWidth,
		IndicatorWidth: f.layout.IndicatorWidth,
		LeftHandle:     c.selection.leftHandleOffset(),
		RightHandle:    c.selection.rightHandleOffset(f),
		Indicator:      c.indicator.containerOffset(&c.selection, f),
		MinDuration:    c.minDuration,
		State:          c.state,
	}
	s.Start, _ = c.selection.startTime(f)
	s.End, _ = c.selection.endTime(f)
	s.Position, _ = f.mapper.TimeFromPosition(c.indicator.contentPosition(&c.selection, f))
	return s
}

// Length seçili aralığın süresi.
func (s Snapshot) Length() time.Duration {
	return s.End - s.Start
}
