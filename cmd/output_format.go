package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mlihgenel/videotrim-cli/internal/installer"
	"github.com/mlihgenel/videotrim-cli/internal/media"
)

const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// jsonOut --output-format json çıktısının yazıldığı yer; testlerde değişir.
var jsonOut io.Writer = os.Stdout

// NormalizeOutputFormat bilinmeyen formatta boş döner.
func NormalizeOutputFormat(format string) string {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "":
		return OutputFormatText
	case OutputFormatText, OutputFormatJSON:
		return f
	}
	return ""
}

func isJSONOutput() bool {
	return NormalizeOutputFormat(outputFormat) == OutputFormatJSON
}

func outputFormatError(format string) error {
	return fmt.Errorf("gecersiz output-format: %s (text|json)", format)
}

func printJSON(payload any) error {
	enc := json.NewEncoder(jsonOut)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// assetPayload probe çıktısı
type assetPayload struct {
	Path       string  `json:"path"`
	Name       string  `json:"name"`
	Duration   string  `json:"duration"`
	Seconds    float64 `json:"seconds"`
	Size       int64   `json:"size"`
	Resolution string  `json:"resolution,omitempty"`
	VideoCodec string  `json:"video_codec,omitempty"`
	AudioCodec string  `json:"audio_codec,omitempty"`
	FPS        float64 `json:"fps,omitempty"`
	Bitrate    int64   `json:"bitrate,omitempty"`
}

func newAssetPayload(a media.Asset) assetPayload {
	return assetPayload{
		Path:       a.Path,
		Name:       a.Name,
		Duration:   media.FormatTimecode(a.Duration),
		Seconds:    a.Duration.Seconds(),
		Size:       a.Size,
		Resolution: a.Resolution(),
		VideoCodec: a.VideoCodec,
		AudioCodec: a.AudioCodec,
		FPS:        a.FPS,
		Bitrate:    a.Bitrate,
	}
}

// exportPayload export planı ve sonucu. Args yalnızca dry-run'da, Elapsed
// yalnızca başarılı çalıştırmada dolar.
type exportPayload struct {
	Input   string   `json:"input"`
	Output  string   `json:"output"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Length  float64  `json:"length_seconds"`
	Codec   string   `json:"codec"`
	Skipped bool     `json:"skipped"`
	DryRun  bool     `json:"dry_run"`
	Note    string   `json:"note,omitempty"`
	Args    []string `json:"ffmpeg_args,omitempty"`
	Elapsed float64  `json:"elapsed_seconds,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func newExportPayload(plan media.Plan, dryRun bool) exportPayload {
	return exportPayload{
		Input:   plan.Input,
		Output:  plan.Output,
		Start:   media.FormatTimecode(plan.Start),
		End:     media.FormatTimecode(plan.End),
		Length:  plan.Length().Seconds(),
		Codec:   plan.Codec,
		Skipped: plan.Skip,
		DryRun:  dryRun,
		Note:    plan.Note,
	}
}

type toolPayload struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
}

// doctorPayload araç durumu ve önerilen kurulum komutu
type doctorPayload struct {
	Tools     []toolPayload `json:"tools"`
	Missing   []string      `json:"missing"`
	Install   string        `json:"install,omitempty"`
	ManualURL string        `json:"manual_url,omitempty"`
}

func newDoctorPayload(tools []media.ExternalTool, info installer.InstallInfo) doctorPayload {
	p := doctorPayload{
		Tools:   make([]toolPayload, 0, len(tools)),
		Missing: missingTools(tools),
	}
	if p.Missing == nil {
		p.Missing = []string{}
	}
	for _, t := range tools {
		p.Tools = append(p.Tools, toolPayload{Name: t.Name, Available: t.Available, Path: t.Path, Version: t.Version})
	}
	if len(p.Missing) > 0 {
		if info.Supported {
			p.Install = info.Description
		} else {
			p.ManualURL = info.ManualURL
		}
	}
	return p
}
