package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/videotrim-cli/internal/config"
	"github.com/mlihgenel/videotrim-cli/internal/media"
	"github.com/mlihgenel/videotrim-cli/internal/timeline"
	"github.com/mlihgenel/videotrim-cli/internal/ui"
)

// rangeResolution etkileşimsiz seçimde kullanılan yüzey genişliği (piksel).
// 1e6 piksel saatlik videoda bile milisaniye altı hassasiyet verir.
const rangeResolution = 1e6

var (
	exportDryRun bool
	exportFormat string
)

// runExport testlerde değiştirilebilir.
var runExport = media.Export

var exportCmd = &cobra.Command{
	Use:   "export <video>",
	Short: "Seçili aralığı arayüz açmadan dışa aktar",
	Long: `Başlangıç ve bitiş zamanlarını etkileşimli ekrandaki kurallarla
(minimum süre, tutamaç sınırları) uygular ve klibi FFmpeg ile kaydeder.

Örnekler:
  videotrim export klip.mp4 --start 00:00:12 --end 00:00:30
  videotrim export klip.mp4 --start 5 --end 9.5 --codec reencode --format webm
  videotrim export klip.mp4 --start 1:00 --dry-run --output-format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asset, err := probeAsset(context.Background(), args[0])
		if err != nil {
			ui.PrintError(err.Error())
			return err
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

		plan, err := media.BuildPlan(media.PlanOptions{
			Input:      asset.Path,
			Output:     outputFile,
			OutputDir:  outputDir,
			Format:     exportFormat,
			Start:      from,
			End:        to,
			Codec:      codec,
			Quality:    quality,
			OnConflict: onConflict,
		})
		if err != nil {
			ui.PrintError(err.Error())
			return err
		}

		if err := executePlan(plan); err != nil {
			return err
		}
		if cmd.Flags().Changed("output-dir") && !exportDryRun {
			rememberOutputDir(outputDir)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportDryRun, "dry-run", false, "FFmpeg çalıştırmadan planı göster")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Hedef format (varsayılan: kaynak ile aynı)")
	rootCmd.AddCommand(exportCmd)
}

// resolveRange istenen aralığı timeline motoru üzerinden sıkıştırır.
// Eksik başlangıç 0, eksik bitiş video sonu kabul edilir.
func resolveRange(duration, minDuration time.Duration, start, end *time.Duration) (time.Duration, time.Duration, error) {
	if duration <= 0 {
		return 0, 0, fmt.Errorf("video süresi okunamadı")
	}

	surface := &timeline.StaticSurface{Content: rangeResolution, Visible: rangeResolution}
	ctrl := timeline.NewController(surface, timeline.Layout{HandleWidth: 1, IndicatorWidth: 1})
	ctrl.SetAsset(&timeline.Asset{Duration: duration})
	if minDuration > 0 {
		ctrl.SetMinDuration(minDuration)
	}
	if start != nil {
		ctrl.SetStartTime(*start)
	}
	if end != nil {
		ctrl.SetEndTime(*end)
	}

	from, ok := ctrl.StartTime()
	if !ok {
		return 0, 0, fmt.Errorf("başlangıç zamanı hesaplanamadı")
	}
	to, ok := ctrl.EndTime()
	if !ok {
		return 0, 0, fmt.Errorf("bitiş zamanı hesaplanamadı")
	}
	return from.Round(time.Millisecond), to.Round(time.Millisecond), nil
}

// rememberOutputDir --output-dir değerini sonraki çalıştırmalar için saklar.
// Kayıt hatası export'u bozmaz, yalnızca uyarı basılır.
func rememberOutputDir(dir string) bool {
	if err := config.SetDefaultOutputDir(dir); err != nil {
		ui.PrintWarning(fmt.Sprintf("Çıktı dizini kaydedilemedi: %s", err.Error()))
		return false
	}
	return true
}

func executePlan(plan media.Plan) error {
	span := formatSpan(plan.Start, plan.End)
	payload := newExportPayload(plan, exportDryRun)

	if plan.Skip {
		if isJSONOutput() {
			return printJSON(payload)
		}
		ui.PrintWarning(fmt.Sprintf("Çıktı zaten var, atlandı: %s", plan.Output))
		return nil
	}

	if exportDryRun {
		payload.Args = plan.Args(verbose)
		if isJSONOutput() {
			return printJSON(payload)
		}
		ui.PrintTrim(plan.Input, plan.Output, span)
		if plan.Note != "" {
			ui.PrintInfo(plan.Note)
		}
		fmt.Printf("  ffmpeg %s\n", strings.Join(payload.Args, " "))
		return nil
	}

	if !isJSONOutput() {
		ui.PrintTrim(plan.Input, plan.Output, span)
		if plan.Note != "" && verbose {
			ui.PrintInfo(plan.Note)
		}
	}

	started := time.Now()
	err := runExport(context.Background(), plan, verbose)
	elapsed := time.Since(started)
	if err != nil {
		if isJSONOutput() {
			payload.Error = err.Error()
			_ = printJSON(payload)
			return err
		}
		ui.PrintError(err.Error())
		return err
	}

	if isJSONOutput() {
		payload.Elapsed = elapsed.Seconds()
		return printJSON(payload)
	}
	ui.PrintClipSummary(plan.Output, span, plan.Length(), plan.Codec, elapsed)
	return nil
}
