package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		1500 * time.Millisecond: "1.50s",
		250 * time.Millisecond:  "250ms",
		65 * time.Second:        "1m 05s",
	}
	for in, want := range cases {
		if got := formatDuration(in); got != want {
			t.Fatalf("formatDuration(%s): expected %s, got %s", in, want, got)
		}
	}
}

func TestProgressBarIgnoresEmptyTotal(t *testing.T) {
	pb := NewProgressBar(0, "Kareler")
	pb.Update(3)
	if pb.Current != 0 {
		t.Fatalf("expected no update for empty total")
	}
}

func TestProgressBarClampsAndFinishesLine(t *testing.T) {
	var buf bytes.Buffer
	pb := NewProgressBar(4, "Kareler")
	pb.out = &buf

	pb.Update(2)
	if strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("line should stay open mid-way: %q", buf.String())
	}
	pb.Update(9)
	if pb.Current != 4 {
		t.Fatalf("expected current clamped to 4, got %d", pb.Current)
	}
	if !strings.Contains(buf.String(), "(4/4)") || !strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("unexpected final output: %q", buf.String())
	}
}

func TestRenderBarWidth(t *testing.T) {
	bar := renderBar(1, 4, 8)
	if strings.Count(bar, "█") != 2 || strings.Count(bar, "░") != 6 {
		t.Fatalf("unexpected bar: %q", bar)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"Araç", "Durum", "Yol"}, [][]string{{"FFmpeg", "✅", "/usr/bin/ffmpeg"}, {"FFprobe"}})
	for _, want := range []string{"Araç", "FFmpeg", "/usr/bin/ffmpeg", "FFprobe"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if renderTable(nil, nil) != "" {
		t.Fatalf("expected empty table without headers")
	}
}

func TestRenderClipSummary(t *testing.T) {
	out := renderClipSummary("klip_trim.mp4", "00:00:05 → 00:00:12", 7*time.Second, "copy", 250*time.Millisecond)
	for _, want := range []string{"klip_trim.mp4", "7.00s", "copy", "250ms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
