package timeline

// LeftDrag sol tutamaç için çözücü girdisi. Ofsetler timeline kapsayıcısının
// sol kenarına göredir.
type LeftDrag struct {
	Baseline          float64 // sürükleme başındaki ofset
	Delta             float64 // başlangıçtan beri toplam öteleme
	RightHandleOffset float64 // sağ tutamacın sol kenarı
	HandleWidth       float64
	MinSelection      float64 // piksel
}

// RightDrag sağ tutamaç için çözücü girdisi. Baseline ve sonuç, sağ kenardan
// negatif içe kayma (inset) olarak ifade edilir.
type RightDrag struct {
	Baseline         float64
	Delta            float64
	LeftHandleOffset float64
	HandleWidth      float64
	TimelineWidth    float64 // kapsayıcı genişliği (tutamaçlar dahil)
	MinSelection     float64
}

// SolveLeft önerilen sürüklemeyi sol tutamaç için geçerli bir ofsete çevirir.
// Saf fonksiyondur; aynı girdi her zaman aynı sonucu verir.
func SolveLeft(d LeftDrag) float64 {
	upper := d.RightHandleOffset - d.HandleWidth - d.MinSelection
	if upper < 0 {
		upper = 0
	}
	return clamp(d.Baseline+d.Delta, 0, upper)
}

// SolveRight önerilen sürüklemeyi sağ tutamaç için geçerli bir inset'e çevirir.
func SolveRight(d RightDrag) float64 {
	lower := 2*d.HandleWidth - d.TimelineWidth + d.LeftHandleOffset + d.MinSelection
	if lower > 0 {
		lower = 0
	}
	return clamp(d.Baseline+d.Delta, lower, 0)
}
