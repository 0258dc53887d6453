package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlihgenel/videotrim-cli/internal/config"
	"github.com/mlihgenel/videotrim-cli/internal/media"
)

const (
	envMinDuration = "VIDEOTRIM_MIN_DURATION"
	envZoom        = "VIDEOTRIM_ZOOM"
	envCodec       = "VIDEOTRIM_CODEC"
	envQuality     = "VIDEOTRIM_QUALITY"
	envConflict    = "VIDEOTRIM_ON_CONFLICT"
	envOutputDir   = "VIDEOTRIM_OUTPUT_DIR"
	envThumbnails  = "VIDEOTRIM_THUMBNAILS"
)

// applyRootDefaults değiştirilmemiş bayraklara ortam değişkeni ve proje
// ayarlarını uygular. Öncelik: bayrak > ortam > proje > kullanıcı > varsayılan.
func applyRootDefaults(cmd *cobra.Command) error {
	cfg := activeProjectConfig
	flags := cmd.Flags()

	if !flags.Changed("min-duration") {
		if v := strings.TrimSpace(os.Getenv(envMinDuration)); v != "" {
			minDurationRaw = v
		} else if cfg != nil && cfg.MinDuration > 0 {
			minDurationRaw = time.Duration(cfg.MinDuration).String()
		}
	}

	if !flags.Changed("zoom") {
		if v, ok := readEnvFloat(envZoom); ok && v >= 1 {
			zoom = v
		} else if cfg != nil && cfg.Zoom >= 1 {
			zoom = cfg.Zoom
		}
	}

	if !flags.Changed("codec") {
		if v := strings.TrimSpace(os.Getenv(envCodec)); v != "" {
			codec = strings.ToLower(v)
		} else if cfg != nil && cfg.Codec != "" {
			codec = cfg.Codec
		}
	}

	if !flags.Changed("quality") {
		if v, ok := readEnvInt(envQuality); ok && v >= 0 {
			quality = v
		} else if cfg != nil && cfg.Quality > 0 {
			quality = cfg.Quality
		}
	}

	if !flags.Changed("on-conflict") {
		if v := strings.TrimSpace(os.Getenv(envConflict)); v != "" {
			onConflict = strings.ToLower(v)
		} else if cfg != nil && cfg.OnConflict != "" {
			onConflict = cfg.OnConflict
		}
	}

	if !flags.Changed("output-dir") {
		if v := strings.TrimSpace(os.Getenv(envOutputDir)); v != "" {
			outputDir = v
		} else if cfg != nil && strings.TrimSpace(cfg.OutputDir) != "" {
			outputDir = strings.TrimSpace(cfg.OutputDir)
		} else if dir := config.GetDefaultOutputDir(); dir != "" {
			outputDir = dir
		}
	}

	if !flags.Changed("thumbs") {
		if v, ok := readEnvInt(envThumbnails); ok && v >= 0 {
			thumbnails = v
		} else if cfg != nil {
			thumbnails = cfg.ThumbnailCount(thumbnails)
		}
	}

	return nil
}

// parseMinDuration "2.5s" gibi Go süreleri ile saniye/timecode değerlerini kabul eder.
func parseMinDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		if d < 0 {
			return 0, fmt.Errorf("min-duration negatif olamaz")
		}
		return d, nil
	}
	return media.ParseTimecode(raw)
}

// parseOptionalTime boş değerde nil döner.
func parseOptionalTime(raw string) (*time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := media.ParseTimecode(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func readEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func readEnvFloat(name string) (float64, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
