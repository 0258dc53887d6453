package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	IconFrame = "🖼️ "
	IconVideo = "🎬"

	iconSuccess = "✅"
	iconError   = "❌"
	iconWarning = "⚠️ "
	iconInfo    = "ℹ️ "
	iconTrim    = "✂️ "
	iconDone    = "🎉"
	iconTime    = "⏱️ "
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	codecStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("6")).
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 2).
			Margin(1, 2)
)

func PrintBanner() {
	fmt.Println(bannerStyle.Render("VideoTrim CLI\nTerminalde önizlemeli video kırpma"))
}

func PrintSuccess(msg string) { fmt.Println(iconSuccess, successStyle.Render(msg)) }
func PrintError(msg string)   { fmt.Println(iconError, errorStyle.Render(msg)) }
func PrintWarning(msg string) { fmt.Println(iconWarning, warningStyle.Render(msg)) }
func PrintInfo(msg string)    { fmt.Println(iconInfo, infoStyle.Render(msg)) }

// PrintTrim "girdi [aralık] → çıktı" satırı
func PrintTrim(input, output, span string) {
	fmt.Printf("%s %s [%s] → %s\n", iconTrim, dimStyle.Render(input), accentStyle.Render(span), successStyle.Render(output))
}

func PrintDuration(d time.Duration) {
	fmt.Printf("%s  Süre: %s\n", iconTime, accentStyle.Render(formatDuration(d)))
}

// PrintTable doctor tablosu gibi küçük tablolar için. Eksik hücreler boş kalır.
func PrintTable(headers []string, rows [][]string) {
	fmt.Println(renderTable(headers, rows))
}

func renderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	padded := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		padded = append(padded, cells)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(padded...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return labelStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return lipgloss.NewStyle().MarginLeft(2).Render(t.String())
}

// PrintClipSummary export sonrası özet
func PrintClipSummary(output, span string, length time.Duration, codec string, elapsed time.Duration) {
	fmt.Println()
	fmt.Println(renderClipSummary(output, span, length, codec, elapsed))
	fmt.Println()
}

func renderClipSummary(output, span string, length time.Duration, codec string, elapsed time.Duration) string {
	lines := []string{
		fmt.Sprintf("%s %s", iconDone, labelStyle.Render("Klip Hazır")),
		strings.Repeat("─", 40),
		"Dosya:   " + successStyle.Render(output),
		"Aralık:  " + accentStyle.Render(span),
		"Uzunluk: " + accentStyle.Render(formatDuration(length)),
		"Codec:   " + codecStyle.Render(codec),
		"Süre:    " + warningStyle.Render(formatDuration(elapsed)),
	}
	return lipgloss.NewStyle().MarginLeft(2).Render(strings.Join(lines, "\n"))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%dm %02ds", int(d.Minutes()), int(d.Seconds())%60)
}
