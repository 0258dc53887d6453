package media

import (
	"math"
	"testing"
	"time"
)

const sampleProbe = `{
  "streams": [
    {"codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080, "r_frame_rate": "30000/1001"},
    {"codec_type": "audio", "codec_name": "aac"}
  ],
  "format": {"duration": "30.500000", "bit_rate": "4500000"}
}`

func TestParseProbeOutput(t *testing.T) {
	asset, err := parseProbeOutput([]byte(sampleProbe))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.Duration != 30500*time.Millisecond {
		t.Fatalf("unexpected duration: %s", asset.Duration)
	}
	if asset.Resolution() != "1920x1080" {
		t.Fatalf("unexpected resolution: %s", asset.Resolution())
	}
	if math.Abs(asset.FPS-29.97) > 0.01 {
		t.Fatalf("unexpected fps: %.3f", asset.FPS)
	}
	if asset.VideoCodec != "h264" || asset.AudioCodec != "aac" {
		t.Fatalf("unexpected codecs: %s/%s", asset.VideoCodec, asset.AudioCodec)
	}
	if asset.Bitrate != 4500000 {
		t.Fatalf("unexpected bitrate: %d", asset.Bitrate)
	}
}

func TestParseProbeOutputStreamDurationFallback(t *testing.T) {
	raw := `{"streams":[{"codec_type":"video","codec_name":"vp9","duration":"12.0"}],"format":{}}`
	asset, err := parseProbeOutput([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.Duration != 12*time.Second {
		t.Fatalf("expected stream duration fallback, got %s", asset.Duration)
	}
	if asset.AspectRatio() != 16.0/9.0 {
		t.Fatalf("expected default aspect ratio")
	}
}

func TestParseProbeOutputRejectsAudioOnly(t *testing.T) {
	raw := `{"streams":[{"codec_type":"audio","codec_name":"mp3"}],"format":{"duration":"3"}}`
	if _, err := parseProbeOutput([]byte(raw)); err == nil {
		t.Fatalf("expected error for audio-only input")
	}
}

func TestParseFrameRate(t *testing.T) {
	if got := parseFrameRate("25/1"); got != 25 {
		t.Fatalf("unexpected rate: %.2f", got)
	}
	if got := parseFrameRate("24"); got != 24 {
		t.Fatalf("unexpected plain rate: %.2f", got)
	}
	if got := parseFrameRate("1/0"); got != 0 {
		t.Fatalf("expected zero for invalid rate, got %.2f", got)
	}
}
