package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const projectConfigFileName = ".videotrim.yaml"

// Duration YAML'da "2.5s", "1m" ya da saniye olarak sayı kabul eder.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	raw := strings.TrimSpace(value.Value)
	if raw == "" {
		*d = 0
		return nil
	}
	if parsed, err := time.ParseDuration(raw); err == nil {
		*d = Duration(parsed)
		return nil
	}
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("satır %d: gecersiz sure degeri: %s", value.Line, raw)
	}
	*d = Duration(secs * float64(time.Second))
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Theme şerit, tutamaç ve konum çubuğu renkleri.
type Theme struct {
	MainColor        string `yaml:"main_color,omitempty"`
	HandleColor      string `yaml:"handle_color,omitempty"`
	PositionBarColor string `yaml:"position_bar_color,omitempty"`
	MaskColor        string `yaml:"mask_color,omitempty"`
	CornerRadius     int    `yaml:"corner_radius,omitempty"`
}

// ProjectConfig proje bazlı CLI varsayılanlarını tutar.
type ProjectConfig struct {
	MinDuration Duration `yaml:"min_duration,omitempty"`
	Zoom        float64  `yaml:"zoom,omitempty"`
	Codec       string   `yaml:"codec,omitempty"`
	Quality     int      `yaml:"quality,omitempty"`
	OnConflict  string   `yaml:"on_conflict,omitempty"`
	OutputDir   string   `yaml:"output_dir,omitempty"`
	Thumbnails  *int     `yaml:"thumbnails,omitempty"`
	Theme       Theme    `yaml:"theme,omitempty"`
}

// ThumbnailCount kare sayısı; ayarlanmamışsa fallback döner.
func (c *ProjectConfig) ThumbnailCount(fallback int) int {
	if c == nil || c.Thumbnails == nil {
		return fallback
	}
	return *c.Thumbnails
}

// LoadProjectConfig currentDir'den yukarı doğru .videotrim.yaml arar.
// Dosya yoksa (nil, "", nil) döner.
func LoadProjectConfig(currentDir string) (*ProjectConfig, string, error) {
	path, err := findProjectConfigPath(currentDir)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return nil, "", nil
	}

	cfg, err := parseProjectConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func findProjectConfigPath(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", errors.New("gecersiz calisma dizini")
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, projectConfigFileName)
		info, statErr := os.Stat(candidate)
		if statErr == nil && !info.IsDir() {
			return candidate, nil
		}
		if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
			return "", statErr
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

func parseProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &ProjectConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.Codec = strings.ToLower(strings.TrimSpace(cfg.Codec))
	cfg.OnConflict = strings.ToLower(strings.TrimSpace(cfg.OnConflict))

	if cfg.MinDuration < 0 {
		return nil, fmt.Errorf("min_duration negatif olamaz")
	}
	if cfg.Zoom != 0 && cfg.Zoom < 1 {
		return nil, fmt.Errorf("zoom 1 veya daha buyuk olmali")
	}
	if cfg.Quality < 0 || cfg.Quality > 100 {
		return nil, fmt.Errorf("quality 0-100 araliginda olmali")
	}
	if cfg.Thumbnails != nil && *cfg.Thumbnails < 0 {
		return nil, fmt.Errorf("thumbnails 0 veya daha buyuk olmali")
	}
	if cfg.Theme.CornerRadius < 0 {
		return nil, fmt.Errorf("corner_radius negatif olamaz")
	}

	return cfg, nil
}

// SaveProjectConfig yapılandırmayı dir altındaki .videotrim.yaml dosyasına yazar.
func SaveProjectConfig(dir string, cfg *ProjectConfig) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("yapilandirma yazilamadi: %w", err)
	}
	path := filepath.Join(dir, projectConfigFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
