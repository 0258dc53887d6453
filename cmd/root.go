package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/videotrim-cli/internal/config"
	"github.com/mlihgenel/videotrim-cli/internal/ui"
)

var (
	verbose      bool
	outputFormat string

	// Seçim ve arayüz
	minDurationRaw string
	startRaw       string
	endRaw         string
	zoom           float64
	thumbnails     int
	noThumbs       bool
	noWatch        bool
	debugMode      bool

	// Dışa aktarma
	codec      string
	quality    int
	outputFile string
	outputDir  string
	onConflict string

	activeProjectConfig     *config.ProjectConfig
	activeProjectConfigPath string

	appVersion = "dev"
	appCommit  = ""
	appDate    = ""
)

const defaultThumbnails = 12

// SetVersionInfo build-time version bilgisini ayarlar
func SetVersionInfo(version, commit, date string) {
	if strings.TrimSpace(version) != "" {
		appVersion = version
	}
	appCommit = strings.TrimSpace(commit)
	appDate = strings.TrimSpace(date)
	if appDate == "" || appDate == "unknown" {
		appDate = time.Now().Format("2006-01-02 15:04:05")
	}
	rootCmd.Version = appVersion
	rootCmd.SetVersionTemplate(versionTemplate())
}

func versionTemplate() string {
	commit := appCommit
	if commit == "" {
		commit = "none"
	}
	return fmt.Sprintf(
		"VideoTrim CLI v%s\nCommit: %s\nTarih:  %s\nGo:     %s\nOS:     %s/%s\n",
		appVersion, commit, appDate, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	)
}

var rootCmd = &cobra.Command{
	Use:   "videotrim [video]",
	Short: "VideoTrim CLI - terminalde video kırpma",
	Long: `VideoTrim CLI — Videolarınızı terminalden, önizleme şeridi üzerinde kırpın.

Video açıldığında kare şeridi, iki tutamaç ve konum çubuğu gösterilir.
Tutamaçları fare veya klavyeyle sürükleyerek aralığı seçin, şeride
dokunarak konumu değiştirin ve seçimi FFmpeg ile dışa aktarın.

Proje ayarları çalışma dizininden yukarı doğru aranan .videotrim.yaml
dosyasından, ortam değişkenlerinden (VIDEOTRIM_*) ve bayraklardan okunur.

Örnekler:
  videotrim klip.mp4
  videotrim open klip.mp4 --min-duration 5 --zoom 4
  videotrim probe klip.mp4 --output-format json
  videotrim preview klip.mp4 --thumbs 8
  videotrim export klip.mp4 --start 00:00:12 --end 00:00:30 --codec copy
  videotrim export klip.mp4 --start 5 --end 9.5 --dry-run`,
	Version:           appVersion,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: prepareRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			ui.PrintBanner()
			if last := config.GetLastAsset(); last != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Son açılan video: %s\n\n", last)
			}
			return cmd.Help()
		}
		return runOpen(cmd, args[0])
	},
}

// Execute CLI'ı çalıştırır
func Execute() error {
	return rootCmd.Execute()
}

func prepareRun(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err == nil {
		cfg, path, loadErr := config.LoadProjectConfig(wd)
		if loadErr != nil {
			return fmt.Errorf("proje ayarları okunamadı: %w", loadErr)
		}
		activeProjectConfig = cfg
		activeProjectConfigPath = path
	}
	if NormalizeOutputFormat(outputFormat) == "" {
		return outputFormatError(outputFormat)
	}
	return applyRootDefaults(cmd)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Detaylı çıktı modu")
	flags.StringVar(&outputFormat, "output-format", OutputFormatText, "Çıktı formatı (text|json)")

	flags.StringVar(&minDurationRaw, "min-duration", "", "Minimum seçim süresi (örn: 3, 2.5s, 00:00:04)")
	flags.StringVar(&startRaw, "start", "", "Başlangıç zamanı (ss, mm:ss veya hh:mm:ss)")
	flags.StringVar(&endRaw, "end", "", "Bitiş zamanı (ss, mm:ss veya hh:mm:ss)")
	flags.Float64Var(&zoom, "zoom", 0, "Şerit yakınlaştırma oranı (içerik/görünür genişlik)")
	flags.IntVar(&thumbnails, "thumbs", defaultThumbnails, "Önizleme kare sayısı")
	flags.BoolVar(&noThumbs, "no-thumbs", false, "Önizleme karelerini üretme")
	flags.BoolVar(&noWatch, "no-watch", false, "Video dosyasındaki değişiklikleri izleme")
	flags.BoolVar(&debugMode, "debug", false, "Arayüz olaylarını videotrim-debug.log dosyasına yaz")

	flags.StringVar(&codec, "codec", "auto", "Codec modu (auto|copy|reencode)")
	flags.IntVarP(&quality, "quality", "q", 0, "Yeniden kodlama kalitesi (1-100)")
	flags.StringVarP(&outputFile, "output", "o", "", "Çıktı dosyası")
	flags.StringVar(&outputDir, "output-dir", "", "Çıktı dizini (varsayılan: kaynak dizin)")
	flags.StringVar(&onConflict, "on-conflict", "versioned", "Çakışma politikası (overwrite|skip|versioned)")

	SetVersionInfo(appVersion, appCommit, appDate)

	// Hata mesajlarını özelleştir
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(os.Stderr, "Hata: %s\n\n", err.Error())
		cmd.Usage()
		return err
	})
}
