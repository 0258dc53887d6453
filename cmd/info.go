package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mlihgenel/videotrim-cli/internal/media"
	"github.com/mlihgenel/videotrim-cli/internal/ui"
)

// probeAsset testlerde değiştirilebilir.
var probeAsset = media.Probe

var probeCmd = &cobra.Command{
	Use:     "probe <video>",
	Aliases: []string{"info"},
	Short:   "Video hakkında detaylı bilgi göster",
	Long: `Bir videonun süre, çözünürlük, codec ve FPS bilgilerini gösterir.

Örnekler:
  videotrim probe video.mp4
  videotrim probe video.mp4 --output-format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := probeAsset(context.Background(), args[0])
		if err != nil {
			ui.PrintError(err.Error())
			return err
		}

		if isJSONOutput() {
			return printJSON(newAssetPayload(asset))
		}

		printAssetInfo(asset)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func printAssetInfo(a media.Asset) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#10B981"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E2E8F0")).
		Width(16)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748B"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#334155")).
		Padding(1, 2).
		MarginTop(1)

	var lines []string

	lines = append(lines, headerStyle.Render(fmt.Sprintf("%s  %s", ui.IconVideo, a.Name)))
	lines = append(lines, dimStyle.Render(strings.Repeat("─", 40)))

	lines = append(lines, formatInfoLine(labelStyle, valueStyle, "Süre", media.FormatTimecode(a.Duration)))
	lines = append(lines, formatInfoLine(labelStyle, valueStyle, "Boyut", formatSize(a.Size)))
	if r := a.Resolution(); r != "" {
		lines = append(lines, formatInfoLine(labelStyle, valueStyle, "Çözünürlük", r))
	}
	if a.VideoCodec != "" {
		lines = append(lines, formatInfoLine(labelStyle, valueStyle, "Video Codec", a.VideoCodec))
	}
	if a.AudioCodec != "" {
		lines = append(lines, formatInfoLine(labelStyle, valueStyle, "Ses Codec", a.AudioCodec))
	}
	if a.Bitrate > 0 {
		lines = append(lines, formatInfoLine(labelStyle, valueStyle, "Bitrate", fmt.Sprintf("%d kb/s", a.Bitrate/1000)))
	}
	if a.FPS > 0 {
		lines = append(lines, formatInfoLine(labelStyle, valueStyle, "FPS", fmt.Sprintf("%.2f", a.FPS)))
	}

	fmt.Println(boxStyle.Render(strings.Join(lines, "\n")))
}

func formatInfoLine(labelStyle, valueStyle lipgloss.Style, label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
