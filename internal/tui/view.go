package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mlihgenel/videotrim-cli/internal/media"
	"github.com/mlihgenel/videotrim-cli/internal/strip"
	"github.com/mlihgenel/videotrim-cli/internal/timeline"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(m.viewStrip())
	b.WriteString("\n")
	b.WriteString(m.viewLabels())
	b.WriteString("\n\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", marginX) + m.help.View(m.keys))

	return m.zones.Scan(b.String())
}

// viewHeader tam olarak headerLines satır üretir.
func (m Model) viewHeader() string {
	pad := strings.Repeat(" ", marginX)
	name := m.asset.Name
	if name == "" {
		name = "video yok"
	}
	title := titleStyle.Render("🎬 " + name)

	info := []string{media.FormatTimecode(m.asset.Duration)}
	if r := m.asset.Resolution(); r != "" {
		info = append(info, r)
	}
	if m.asset.VideoCodec != "" {
		info = append(info, m.asset.VideoCodec)
	}
	info = append(info, fmt.Sprintf("zoom x%.1f", m.surface.Zoom()))
	info = append(info, fmt.Sprintf("adım %g", nudgeSteps[m.stepIdx]))
	if m.opts.Engine != nil {
		info = append(info, "izleniyor: "+m.opts.Engine.Mode())
	}

	return pad + title + "\n" + pad + dimStyle.Render(strings.Join(info, " · ")) + "\n"
}

func (m Model) viewStrip() string {
	snap := m.ctrl.Snapshot()
	width := round(snap.ContainerWidth)
	hw := round(snap.HandleWidth)
	left := round(snap.LeftHandle)
	right := round(snap.RightHandle)
	indicator := round(snap.Indicator)

	handle := lipgloss.NewStyle().Foreground(m.theme.Handle)
	focused := lipgloss.NewStyle().Foreground(m.theme.Main)
	bar := lipgloss.NewStyle().Bold(true).Foreground(m.theme.PositionBar)

	rows := m.thumbs.Render(strip.View{
		Offset:    round(snap.ContentOffset) - hw,
		Visible:   width,
		Content:   round(snap.ContentWidth),
		Rows:      stripRows,
		MaskColor: string(m.theme.Mask),
		FillColor: string(dimTextColor),
		Masked: func(col int) bool {
			return col < left+hw || col >= right
		},
		Overlay: func(col, row int) (string, bool) {
			switch {
			case col >= left && col < left+hw:
				return handleGlyph(col-left, hw, m.focus == timeline.SideLeft, handle, focused), true
			case col >= right && col < right+hw:
				return handleGlyph(col-right, hw, m.focus == timeline.SideRight, handle, focused), true
			case snap.HasAsset && col == indicator:
				return bar.Render("┃"), true
			}
			return "", false
		},
	})

	box := lipgloss.NewStyle().
		Border(m.theme.border()).
		BorderForeground(m.theme.Main).
		MarginLeft(marginX)
	return box.Render(m.zones.Mark(zoneStrip, strings.Join(rows, "\n")))
}

func handleGlyph(i, width int, isFocused bool, normal, focused lipgloss.Style) string {
	style := normal
	if isFocused {
		style = focused
	}
	if width > 1 && i == width/2 {
		return style.Render("▌")
	}
	return style.Render("█")
}

func (m Model) viewLabels() string {
	snap := m.ctrl.Snapshot()
	if !snap.HasAsset {
		return strings.Repeat(" ", marginX) + dimStyle.Render("Süre bilinmiyor")
	}

	start := labelStyle.Render("◀ " + media.FormatTimecode(snap.Start))
	end := labelStyle.Render(media.FormatTimecode(snap.End) + " ▶")
	mid := infoStyle.Render(fmt.Sprintf("⏵ %s  ·  %s", media.FormatTimecode(snap.Position), media.FormatTimecode(snap.Length())))

	total := round(snap.ContainerWidth) + 2
	gap := total - lipgloss.Width(start) - lipgloss.Width(mid) - lipgloss.Width(end)
	if gap < 2 {
		return strings.Repeat(" ", marginX) + start + " " + mid + " " + end
	}
	leftGap := gap / 2
	return strings.Repeat(" ", marginX) + start + strings.Repeat(" ", leftGap) + mid + strings.Repeat(" ", gap-leftGap) + end
}

func (m Model) viewStatus() string {
	pad := strings.Repeat(" ", marginX)
	switch {
	case m.status != "" && m.statusErr:
		return pad + errorStyle.Render("❌ "+m.status)
	case m.status != "":
		return pad + successStyle.Render("✅ "+m.status)
	case m.loading:
		return pad + dimStyle.Render("Önizleme kareleri hazırlanıyor...")
	case m.player.Playing():
		return pad + infoStyle.Render("▶ Oynatılıyor")
	default:
		return pad + dimStyle.Render(m.ctrl.State().String())
	}
}
