package strip

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	halfBlock = "▀"
	emptyCell = "▒"
)

// Strip çıkarılmış karelerden oluşan önizleme şeridi.
type Strip struct {
	Thumbs []Thumbnail
}

// View şeridin ekrana düşen parçası.
type View struct {
	Offset  int // içerik koordinatında ilk görünür sütun
	Visible int
	Content int
	Rows    int

	// Masked görünür sütunun seçim dışında kalıp kalmadığını söyler.
	Masked    func(col int) bool
	MaskColor string
	FillColor string

	// Overlay görünür sütunun yerine çizilecek hazır metni döner (tutamaç,
	// konum çubuğu). ok=false ise kare hücresi çizilir.
	Overlay func(col, row int) (string, bool)
}

// CellAt içerik sütunu col ve satır row'daki hücreyi döner.
func (s *Strip) CellAt(col, row, content int) (Cell, bool) {
	if s == nil || len(s.Thumbs) == 0 || content <= 0 || col < 0 || col >= content {
		return Cell{}, false
	}
	n := len(s.Thumbs)
	p := (float64(col) + 0.5) / float64(content) * float64(n)
	idx := int(p)
	if idx >= n {
		idx = n - 1
	}
	thumb := s.Thumbs[idx]
	if !thumb.Ready() || row < 0 || row >= len(thumb.Cells) {
		return Cell{}, false
	}
	cols := len(thumb.Cells[row])
	inner := int((p - float64(idx)) * float64(cols))
	if inner >= cols {
		inner = cols - 1
	}
	return thumb.Cells[row][inner], true
}

// Render görünür parçayı satır satır üretir. Kare yoksa düz bir bar çizilir.
func (s *Strip) Render(v View) []string {
	rows := v.Rows
	if rows < 1 {
		rows = 1
	}
	out := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for x := 0; x < v.Visible; x++ {
			if v.Overlay != nil {
				if text, ok := v.Overlay(x, r); ok {
					b.WriteString(text)
					continue
				}
			}
			masked := v.Masked != nil && v.Masked(x)
			cell, ok := s.CellAt(v.Offset+x, r, v.Content)
			b.WriteString(renderCell(cell, ok, masked, v))
		}
		out[r] = b.String()
	}
	return out
}

func renderCell(c Cell, ok, masked bool, v View) string {
	if !ok {
		fill := v.FillColor
		if masked && v.MaskColor != "" {
			fill = v.MaskColor
		}
		style := lipgloss.NewStyle()
		if fill != "" {
			style = style.Foreground(lipgloss.Color(fill))
		}
		return style.Render(emptyCell)
	}
	top, bottom := c.Top, c.Bottom
	if masked {
		mask := parseHex(v.MaskColor)
		top = blend(top, mask, 0.6)
		bottom = blend(bottom, mask, 0.6)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(top))).
		Background(lipgloss.Color(hex(bottom))).
		Render(halfBlock)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func parseHex(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(s, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
