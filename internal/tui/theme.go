package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mlihgenel/videotrim-cli/internal/config"
)

// Theme şerit çizim renkleri.
type Theme struct {
	Main         lipgloss.Color // çerçeve ve odaklı tutamaç
	Handle       lipgloss.Color
	PositionBar  lipgloss.Color
	Mask         lipgloss.Color
	CornerRadius int
}

// DefaultTheme varsayılan renkler.
func DefaultTheme() Theme {
	return Theme{
		Main:         lipgloss.Color("#F59E0B"),
		Handle:       lipgloss.Color("#E2E8F0"),
		PositionBar:  lipgloss.Color("#FFFFFF"),
		Mask:         lipgloss.Color("#0F172A"),
		CornerRadius: 1,
	}
}

// ThemeFromConfig proje ayarlarındaki boş olmayan renkleri varsayılanların
// üzerine yazar.
func ThemeFromConfig(c config.Theme) Theme {
	t := DefaultTheme()
	if v := strings.TrimSpace(c.MainColor); v != "" {
		t.Main = lipgloss.Color(v)
	}
	if v := strings.TrimSpace(c.HandleColor); v != "" {
		t.Handle = lipgloss.Color(v)
	}
	if v := strings.TrimSpace(c.PositionBarColor); v != "" {
		t.PositionBar = lipgloss.Color(v)
	}
	if v := strings.TrimSpace(c.MaskColor); v != "" {
		t.Mask = lipgloss.Color(v)
	}
	if c.CornerRadius > 0 {
		t.CornerRadius = c.CornerRadius
	}
	return t
}

func (t Theme) border() lipgloss.Border {
	if t.CornerRadius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

var (
	textColor    = lipgloss.Color("#E2E8F0")
	dimTextColor = lipgloss.Color("#64748B")
	accentColor  = lipgloss.Color("#10B981")
	dangerColor  = lipgloss.Color("#EF4444")
	infoColor    = lipgloss.Color("#06B6D4")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	dimStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(textColor)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(dangerColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(infoColor)
)
