package timeline

import "time"

// session sürükleme başında alınan taban ofseti. Delta her zaman bu tabana
// uygulanır, böylece ara adımlarda birikim olmaz.
type session struct {
	active      bool
	baseline    float64
	translation float64
}

// Selection iki tutamacın konumunu tutar.
//
// left sol kenardan ofsettir (>= 0), right sağ kenardan negatif inset'tir
// (<= 0). Değişiklikler her zaman çözücüden geçer.
type Selection struct {
	left     float64
	right    float64
	sessions [2]session
}

// Reset tutamaçları tam aralığa döndürür.
func (s *Selection) Reset() {
	s.left = 0
	s.right = 0
	s.sessions = [2]session{}
}

func (s *Selection) leftHandleOffset() float64 { return s.left }

func (s *Selection) rightHandleOffset(f frame) float64 {
	return f.width() + s.right - f.layout.HandleWidth
}

// startPosition ve endPosition içerik koordinatında (kaydırma dahil) sınırlar.
func (s *Selection) startPosition(f frame) float64 {
	return s.left + f.offset
}

func (s *Selection) endPosition(f frame) float64 {
	return s.rightHandleOffset(f) - f.layout.HandleWidth + f.offset
}

func (s *Selection) startTime(f frame) (time.Duration, bool) {
	return f.mapper.TimeFromPosition(s.startPosition(f))
}

func (s *Selection) endTime(f frame) (time.Duration, bool) {
	return f.mapper.TimeFromPosition(s.endPosition(f))
}

func (s *Selection) begin(side Side) {
	base := s.left
	if side == SideRight {
		base = s.right
	}
	s.sessions[side] = session{active: true, baseline: base}
}

func (s *Selection) end(side Side) {
	s.sessions[side] = session{}
}

func (s *Selection) dragging(side Side) bool {
	return s.sessions[side].active
}

func (s *Selection) solve(side Side, baseline, delta float64, f frame) {
	if side == SideLeft {
		s.left = SolveLeft(LeftDrag{
			Baseline:          baseline,
			Delta:             delta,
			RightHandleOffset: s.rightHandleOffset(f),
			HandleWidth:       f.layout.HandleWidth,
			MinSelection:      f.minSel,
		})
		return
	}
	s.right = SolveRight(RightDrag{
		Baseline:         baseline,
		Delta:            delta,
		LeftHandleOffset: s.leftHandleOffset(),
		HandleWidth:      f.layout.HandleWidth,
		TimelineWidth:    f.width(),
		MinSelection:     f.minSel,
	})
}

// drag aktif oturumun tabanına toplam ötelemeyi uygular.
func (s *Selection) drag(side Side, translation float64, f frame) {
	s.sessions[side].translation = translation
	s.solve(side, s.sessions[side].baseline, translation, f)
}

// rebase geometri değiştikten sonra aktif oturumların tabanını, son öteleme
// yeni ofsete denk gelecek şekilde kaydırır.
func (s *Selection) rebase() {
	for side := range s.sessions {
		sess := &s.sessions[side]
		if !sess.active {
			continue
		}
		current := s.left
		if Side(side) == SideRight {
			current = s.right
		}
		sess.baseline = current - sess.translation
	}
}

// setStart istenen zamanı yeni taban kabul edip sıfır delta ile çözer.
func (s *Selection) setStart(t time.Duration, f frame) bool {
	pos, ok := f.mapper.PositionFromTime(t)
	if !ok {
		return false
	}
	s.solve(SideLeft, pos-f.offset, 0, f)
	return true
}

func (s *Selection) setEnd(t time.Duration, f frame) bool {
	pos, ok := f.mapper.PositionFromTime(t)
	if !ok {
		return false
	}
	s.solve(SideRight, pos-f.offset-f.visible, 0, f)
	return true
}
