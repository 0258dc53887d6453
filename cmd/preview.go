package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mlihgenel/videotrim-cli/internal/media"
	"github.com/mlihgenel/videotrim-cli/internal/strip"
	"github.com/mlihgenel/videotrim-cli/internal/ui"
)

var (
	previewWidth int
	previewRows  int
)

// extractFrame testlerde değiştirilebilir.
var extractFrame strip.FrameFunc = media.ExtractFrame

var previewCmd = &cobra.Command{
	Use:   "preview <video>",
	Short: "Önizleme şeridini terminale yazdır",
	Long: `Videodan eşit aralıklı kareler çıkarır ve kırpma ekranındaki şeridi
etkileşimsiz olarak çizer. --start/--end verilirse seçim dışı maskelenir.

Örnekler:
  videotrim preview klip.mp4
  videotrim preview klip.mp4 --thumbs 8 --width 96 --rows 3
  videotrim preview klip.mp4 --start 10 --end 25`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := probeAsset(context.Background(), args[0])
		if err != nil {
			ui.PrintError(err.Error())
			return err
		}
		if thumbnails <= 0 || noThumbs {
			return fmt.Errorf("önizleme için --thumbs en az 1 olmalı")
		}
		if previewWidth < thumbnails {
			return fmt.Errorf("genişlik (%d) kare sayısından (%d) küçük olamaz", previewWidth, thumbnails)
		}

		minDuration, err := parseMinDuration(minDurationRaw)
		if err != nil {
			return fmt.Errorf("gecersiz min-duration: %w", err)
		}
		start, err := parseOptionalTime(startRaw)
		if err != nil {
			return fmt.Errorf("gecersiz başlangıç: %w", err)
		}
		end, err := parseOptionalTime(endRaw)
		if err != nil {
			return fmt.Errorf("gecersiz bitiş: %w", err)
		}
		from, to, err := resolveRange(asset.Duration, minDuration, start, end)
		if err != nil {
			ui.PrintError(err.Error())
			return err
		}

		extractor := strip.NewExtractor(asset.Path, previewWidth/thumbnails, previewRows)
		extractor.Frame = extractFrame
		if !isJSONOutput() {
			bar := ui.NewProgressBar(thumbnails, "Kareler")
			extractor.OnProgress = func(completed, total int) {
				bar.Update(completed)
			}
		}

		started := time.Now()
		thumbs, err := extractor.Extract(context.Background(), asset.Duration, thumbnails)
		if err != nil {
			ui.PrintWarning(err.Error())
		}

		fmt.Println()
		fmt.Printf("  %s %s\n", ui.IconFrame, asset.Name)
		fmt.Println(renderPreview(thumbs, asset.Duration, from, to, previewWidth, previewRows))
		if verbose {
			ui.PrintDuration(time.Since(started))
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 72, "Şerit genişliği (sütun)")
	previewCmd.Flags().IntVar(&previewRows, "rows", 2, "Şerit yüksekliği (satır)")
	rootCmd.AddCommand(previewCmd)
}

// renderPreview şeridi çerçeve ve zaman etiketleriyle birlikte çizer.
func renderPreview(thumbs []strip.Thumbnail, duration, from, to time.Duration, width, rows int) string {
	s := &strip.Strip{Thumbs: thumbs}
	startCol, endCol := 0, width
	if duration > 0 {
		startCol = int(float64(from) / float64(duration) * float64(width))
		endCol = int(float64(to) / float64(duration) * float64(width))
	}

	lines := s.Render(strip.View{
		Visible:   width,
		Content:   width,
		Rows:      rows,
		MaskColor: "#1E293B",
		FillColor: "#475569",
		Masked: func(col int) bool {
			return col < startCol || col >= endCol
		},
	})

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#8B5CF6")).
		MarginLeft(2)

	left := media.FormatTimecode(from)
	right := media.FormatTimecode(to)
	gap := width + 2 - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	labels := "  " + left + strings.Repeat(" ", gap) + right

	return box.Render(strings.Join(lines, "\n")) + "\n" + labels
}
