package timeline

// Indicator konum çubuğunun ofsetini tutar. Ofset sol tutamacın iç kenarına
// göredir; tutamaç kaydıkça çubuk onunla birlikte hareket eder.
type Indicator struct {
	offset float64
}

func (p *Indicator) reset() {
	p.offset = 0
}

// maxOffset çubuğun seçim alanı içinde kalabileceği en büyük ofset.
func (p *Indicator) maxOffset(sel *Selection, f frame) float64 {
	m := sel.rightHandleOffset(f) - (sel.leftHandleOffset() + f.layout.HandleWidth) - f.layout.IndicatorWidth
	if m < 0 {
		return 0
	}
	return m
}

// place ham ofseti seçim alanına sıkıştırarak yerleştirir.
func (p *Indicator) place(raw float64, sel *Selection, f frame) {
	p.offset = clamp(raw, 0, p.maxOffset(sel, f))
}

// normalize mevcut ofseti yeniden sıkıştırır.
func (p *Indicator) normalize(sel *Selection, f frame) {
	p.place(p.offset, sel, f)
}

// containerOffset çubuğun kapsayıcıya göre sol kenarı.
func (p *Indicator) containerOffset(sel *Selection, f frame) float64 {
	return sel.leftHandleOffset() + f.layout.HandleWidth + p.offset
}

// contentPosition çubuğun içerik koordinatındaki konumu.
func (p *Indicator) contentPosition(sel *Selection, f frame) float64 {
	return sel.leftHandleOffset() + p.offset + f.offset
}
