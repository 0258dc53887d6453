package timeline

import "time"

// Surface timeline'ın kaydırılabilir önizleme yüzeyi. Core bu değerleri
// yalnızca okur.
type Surface interface {
	ContentWidth() float64
	VisibleWidth() float64
	ContentOffset() float64
}

// Asset kırpılan medya. Süre negatif olamaz.
type Asset struct {
	Name     string
	Duration time.Duration
}

// Layout tutamaç ve konum çubuğu genişlikleri.
type Layout struct {
	HandleWidth    float64
	IndicatorWidth float64
}

// DefaultLayout dokunmatik ekran ölçülerindeki varsayılan genişlikler.
func DefaultLayout() Layout {
	return Layout{HandleWidth: 16, IndicatorWidth: 3}
}

// frame tek bir olay turunda okunan geometri.
type frame struct {
	mapper  Mapper
	layout  Layout
	visible float64
	offset  float64
	minSel  float64
}

// width tutamaçlar dahil kapsayıcı genişliği.
func (f frame) width() float64 {
	return f.visible + 2*f.layout.HandleWidth
}

// StaticSurface kaydırılmayan sabit bir yüzey.
type StaticSurface struct {
	Content float64
	Visible float64
	Offset  float64
}

func (s *StaticSurface) ContentWidth() float64  { return s.Content }
func (s *StaticSurface) VisibleWidth() float64  { return s.Visible }
func (s *StaticSurface) ContentOffset() float64 { return s.Offset }
