package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/videotrim-cli/internal/config"
	"github.com/mlihgenel/videotrim-cli/internal/media"
	"github.com/mlihgenel/videotrim-cli/internal/tui"
	"github.com/mlihgenel/videotrim-cli/internal/ui"
	"github.com/mlihgenel/videotrim-cli/internal/watch"
)

// runTUI testlerde değiştirilebilir.
var runTUI = tui.Run

var openCmd = &cobra.Command{
	Use:   "open <video>",
	Short: "Videoyu etkileşimli kırpma ekranında aç",
	Long: `Videoyu önizleme şeridiyle açar. Tutamaçları sürükleyerek aralığı seçin,
şeride dokunarak konumu değiştirin, Enter ile dışa aktarın.

Kısayollar:
  tab          odaklı tutamacı değiştir
  ←/→          tutamacı kaydır
  shift+←/→    şeridi kaydır
  +/-          yakınlaştır / uzaklaştır
  space        oynat / duraklat
  [ ]          adım boyutu
  s            konum karesini kaydet
  enter        dışa aktar
  q            çıkış

Örnekler:
  videotrim open klip.mp4
  videotrim open klip.mp4 --min-duration 5s --start 10 --end 00:00:40`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOpen(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, path string) error {
	if isJSONOutput() {
		return fmt.Errorf("open komutu json çıktı desteklemez")
	}

	warnFirstRun()
	asset, err := probeAsset(context.Background(), path)
	if err != nil {
		ui.PrintError(err.Error())
		return err
	}
	if err := config.SetLastAsset(asset.Path); err != nil && verbose {
		ui.PrintWarning(fmt.Sprintf("Ayar kaydedilemedi: %s", err.Error()))
	}

	opts, err := buildTUIOptions(asset)
	if err != nil {
		return err
	}

	if !noWatch {
		engine, watchErr := watch.NewAdaptiveWatcher(asset.Path, watch.DefaultSettle)
		if watchErr != nil && verbose {
			ui.PrintWarning(fmt.Sprintf("Event watcher başlatılamadı, polling kullanılacak: %s", watchErr.Error()))
		}
		if err := engine.Bootstrap(); err != nil {
			ui.PrintWarning(fmt.Sprintf("Dosya izleme kapatıldı: %s", err.Error()))
		} else {
			defer engine.Close()
			opts.Engine = engine
		}
	}

	result, err := runTUI(opts)
	if err != nil {
		ui.PrintError(err.Error())
		return err
	}

	span := formatSpan(result.Start, result.End)
	if result.Exported != "" {
		ui.PrintTrim(asset.Path, result.Exported, span)
		ui.PrintSuccess("Klip kaydedildi")
		return nil
	}
	ui.PrintInfo(fmt.Sprintf("Son seçim: %s", span))
	return nil
}

// buildTUIOptions bayrak ve proje ayarlarından arayüz seçeneklerini toplar.
func buildTUIOptions(asset media.Asset) (tui.Options, error) {
	minDuration, err := parseMinDuration(minDurationRaw)
	if err != nil {
		return tui.Options{}, fmt.Errorf("gecersiz min-duration: %w", err)
	}
	start, err := parseOptionalTime(startRaw)
	if err != nil {
		return tui.Options{}, fmt.Errorf("gecersiz başlangıç: %w", err)
	}
	end, err := parseOptionalTime(endRaw)
	if err != nil {
		return tui.Options{}, fmt.Errorf("gecersiz bitiş: %w", err)
	}
	if media.NormalizeCodec(codec) == "" {
		return tui.Options{}, fmt.Errorf("gecersiz codec modu: %s (auto|copy|reencode)", codec)
	}

	opts := tui.Options{
		Asset:       asset,
		MinDuration: minDuration,
		Start:       start,
		End:         end,
		Zoom:        zoom,
		Thumbnails:  thumbnails,
		Debug:       debugMode,
		Export: media.PlanOptions{
			Output:     outputFile,
			OutputDir:  outputDir,
			Codec:      codec,
			Quality:    quality,
			OnConflict: onConflict,
		},
	}
	if noThumbs {
		opts.Thumbnails = 0
	}
	if activeProjectConfig != nil {
		opts.Theme = tui.ThemeFromConfig(activeProjectConfig.Theme)
	}
	return opts, nil
}

func formatSpan(start, end time.Duration) string {
	return fmt.Sprintf("%s → %s", media.FormatTimecode(start), media.FormatTimecode(end))
}
