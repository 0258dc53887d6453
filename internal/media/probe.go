package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Asset ffprobe ile okunan video bilgileri
type Asset struct {
	Path       string        `json:"path"`
	Name       string        `json:"name"`
	Duration   time.Duration `json:"duration"`
	Size       int64         `json:"size_bytes"`
	Width      int           `json:"width,omitempty"`
	Height     int           `json:"height,omitempty"`
	VideoCodec string        `json:"video_codec,omitempty"`
	AudioCodec string        `json:"audio_codec,omitempty"`
	FPS        float64       `json:"fps,omitempty"`
	Bitrate    int64         `json:"bitrate,omitempty"`
}

// Resolution "1920x1080" biçiminde çözünürlük döner
func (a Asset) Resolution() string {
	if a.Width <= 0 || a.Height <= 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", a.Width, a.Height)
}

// AspectRatio genişlik/yükseklik oranı, bilinmiyorsa 16:9
func (a Asset) AspectRatio() float64 {
	if a.Width <= 0 || a.Height <= 0 {
		return 16.0 / 9.0
	}
	return float64(a.Width) / float64(a.Height)
}

// ffprobeResult ffprobe JSON çıktısının ilgili alanları
type ffprobeResult struct {
	Format struct {
		Duration string `json:"duration"`
		BitRate  string `json:"bit_rate"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		Width      int    `json:"width,omitempty"`
		Height     int    `json:"height,omitempty"`
		RFrameRate string `json:"r_frame_rate,omitempty"`
		Duration   string `json:"duration,omitempty"`
	} `json:"streams"`
}

// Probe dosyayı ffprobe ile okur
func Probe(ctx context.Context, path string) (Asset, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return Asset{}, fmt.Errorf("dosya bulunamadı: %w", err)
	}
	if stat.IsDir() {
		return Asset{}, fmt.Errorf("video yerine dizin verildi: %s", path)
	}

	ffprobePath, err := FindFFprobe()
	if err != nil {
		return Asset{}, err
	}

	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return Asset{}, fmt.Errorf("ffprobe hatası: %w", err)
	}

	asset, err := parseProbeOutput(output)
	if err != nil {
		return Asset{}, err
	}
	asset.Path = path
	asset.Name = filepath.Base(path)
	asset.Size = stat.Size()
	return asset, nil
}

func parseProbeOutput(output []byte) (Asset, error) {
	var result ffprobeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return Asset{}, fmt.Errorf("ffprobe çıktısı okunamadı: %w", err)
	}

	asset := Asset{}
	durationRaw := result.Format.Duration

	for _, s := range result.Streams {
		switch s.CodecType {
		case "video":
			if asset.VideoCodec != "" {
				continue
			}
			asset.VideoCodec = s.CodecName
			asset.Width = s.Width
			asset.Height = s.Height
			if s.RFrameRate != "" {
				asset.FPS = parseFrameRate(s.RFrameRate)
			}
			// Bazı kapsayıcılar süreyi yalnızca stream'de taşır
			if durationRaw == "" {
				durationRaw = s.Duration
			}
		case "audio":
			if asset.AudioCodec == "" {
				asset.AudioCodec = s.CodecName
			}
		}
	}

	if asset.VideoCodec == "" {
		return Asset{}, fmt.Errorf("video akışı bulunamadı")
	}

	if durationRaw != "" {
		sec, err := strconv.ParseFloat(strings.TrimSpace(durationRaw), 64)
		if err != nil || sec < 0 {
			return Asset{}, fmt.Errorf("geçersiz süre: %s", durationRaw)
		}
		asset.Duration = time.Duration(sec * float64(time.Second))
	}

	if result.Format.BitRate != "" {
		if br, err := strconv.ParseInt(result.Format.BitRate, 10, 64); err == nil {
			asset.Bitrate = br
		}
	}
	return asset, nil
}

// parseFrameRate "30000/1001" gibi kare oranlarını float'a çevirir
func parseFrameRate(rate string) float64 {
	parts := strings.SplitN(rate, "/", 2)
	if len(parts) == 2 {
		num, err1 := strconv.ParseFloat(parts[0], 64)
		den, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 == nil && err2 == nil && den != 0 {
			return num / den
		}
	}
	if f, err := strconv.ParseFloat(rate, 64); err == nil {
		return f
	}
	return 0
}
