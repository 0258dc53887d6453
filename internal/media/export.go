package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	CodecAuto     = "auto"
	CodecCopy     = "copy"
	CodecReencode = "reencode"
)

// NormalizeCodec codec modunu doğrular; geçersizse boş döner.
func NormalizeCodec(codec string) string {
	switch strings.ToLower(strings.TrimSpace(codec)) {
	case "", CodecAuto:
		return CodecAuto
	case CodecCopy:
		return CodecCopy
	case CodecReencode, "re-encode":
		return CodecReencode
	default:
		return ""
	}
}

// Plan seçili aralığın dışa aktarım planı
type Plan struct {
	Input   string
	Output  string
	Format  string
	Start   time.Duration
	End     time.Duration
	Codec   string
	Quality int
	Skip    bool
	Note    string
}

// Length klip süresi
func (p Plan) Length() time.Duration {
	return p.End - p.Start
}

// PlanOptions plan oluşturma girdileri
type PlanOptions struct {
	Input      string
	Output     string
	OutputDir  string
	Format     string
	Start      time.Duration
	End        time.Duration
	Codec      string
	Quality    int
	OnConflict string
}

// BuildPlan çıktı yolunu ve codec modunu çözerek plan üretir.
func BuildPlan(opts PlanOptions) (Plan, error) {
	if strings.TrimSpace(opts.Input) == "" {
		return Plan{}, fmt.Errorf("trim için video seçilmedi")
	}
	if opts.Start < 0 {
		return Plan{}, fmt.Errorf("başlangıç zamanı negatif olamaz")
	}
	if opts.End <= opts.Start {
		return Plan{}, fmt.Errorf("bitiş zamanı başlangıçtan büyük olmalıdır")
	}

	format := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(opts.Format), "."))
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Input)), ".")
	}
	if format == "" {
		return Plan{}, fmt.Errorf("hedef format belirlenemedi")
	}

	requested := NormalizeCodec(opts.Codec)
	if requested == "" {
		return Plan{}, fmt.Errorf("gecersiz codec modu: %s", opts.Codec)
	}
	codec, note := resolveEffectiveCodec(opts.Input, format, requested)

	output := strings.TrimSpace(opts.Output)
	if output == "" {
		output = ClipOutputPath(opts.Input, opts.OutputDir, format)
	}
	resolved, skip, err := ResolveOutputPathConflict(output, opts.OnConflict)
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		Input:   opts.Input,
		Output:  resolved,
		Format:  format,
		Start:   opts.Start,
		End:     opts.End,
		Codec:   codec,
		Quality: opts.Quality,
		Skip:    skip,
		Note:    note,
	}, nil
}

func resolveEffectiveCodec(input, targetFormat, requested string) (string, string) {
	sourceFormat := strings.TrimPrefix(strings.ToLower(filepath.Ext(input)), ".")
	switch requested {
	case CodecCopy:
		if targetFormat != sourceFormat {
			return CodecReencode, "Format değiştiği için copy yerine reencode kullanılacak"
		}
		return CodecCopy, ""
	case CodecReencode:
		return CodecReencode, ""
	default:
		if targetFormat == sourceFormat && targetFormat != "gif" {
			return CodecCopy, "Auto: aynı kapsayıcı, stream copy kullanılacak (keyframe hassasiyeti)"
		}
		return CodecReencode, "Auto: format değiştiği için reencode kullanılacak"
	}
}

// Args plan için ffmpeg argümanlarını üretir.
func (p Plan) Args(verbose bool) []string {
	args := []string{}
	if !verbose {
		args = append(args, "-loglevel", "error")
	}
	if p.Start > 0 {
		args = append(args, "-ss", FormatSeconds(p.Start))
	}
	args = append(args, "-i", p.Input)
	args = append(args, "-t", FormatSeconds(p.Length()))
	args = append(args, codecArgs(p.Format, p.Codec, p.Quality)...)
	args = append(args, "-y", p.Output)
	return args
}

// Export planı ffmpeg ile çalıştırır.
func Export(ctx context.Context, p Plan, verbose bool) error {
	if p.Skip {
		return nil
	}
	ffmpegPath, err := FindFFmpeg()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.Output), 0755); err != nil {
		return err
	}
	return runFFmpeg(ctx, ffmpegPath, p.Args(verbose), "video trim ffmpeg hatasi")
}

func runFFmpeg(ctx context.Context, ffmpegPath string, args []string, prefix string) error {
	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %s\n%s", prefix, err.Error(), string(out))
	}
	return nil
}

func codecArgs(targetFormat, codec string, quality int) []string {
	if codec == CodecCopy {
		return []string{"-c", "copy", "-avoid_negative_ts", "make_zero"}
	}
	crf := qualityCRF(quality)

	switch targetFormat {
	case "gif":
		return []string{"-loop", "0", "-an"}
	case "webm":
		webmCRF := crf + 6
		if webmCRF > 40 {
			webmCRF = 40
		}
		return []string{
			"-c:v", "libvpx-vp9",
			"-crf", strconv.Itoa(webmCRF),
			"-b:v", "0",
			"-c:a", "libopus",
			"-b:a", "128k",
		}
	case "mp4", "m4v", "mov":
		return []string{
			"-c:v", "libx264",
			"-crf", strconv.Itoa(crf),
			"-preset", "medium",
			"-pix_fmt", "yuv420p",
			"-movflags", "+faststart",
			"-c:a", "aac",
			"-b:a", "128k",
		}
	default: // mkv ve h264 uyumlu kapsayıcılar
		return []string{
			"-c:v", "libx264",
			"-crf", strconv.Itoa(crf),
			"-preset", "medium",
			"-pix_fmt", "yuv420p",
			"-c:a", "aac",
			"-b:a", "128k",
		}
	}
}

func qualityCRF(quality int) int {
	if quality <= 0 {
		return 23
	}
	switch {
	case quality <= 25:
		return 30
	case quality <= 50:
		return 27
	case quality <= 75:
		return 24
	default:
		return 20
	}
}
