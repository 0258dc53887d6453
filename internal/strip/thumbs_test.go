package strip

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func writeSolidPNG(path string, c color.RGBA) error {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func TestTimes(t *testing.T) {
	got := Times(10*time.Second, 4)
	want := []time.Duration{1250 * time.Millisecond, 3750 * time.Millisecond, 6250 * time.Millisecond, 8750 * time.Millisecond}
	if len(got) != len(want) {
		t.Fatalf("expected %d times, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("time %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if Times(0, 4) != nil || Times(time.Second, 0) != nil {
		t.Fatalf("expected nil for invalid input")
	}
}

func TestExtractorOrdersResultsAndReportsProgress(t *testing.T) {
	var calls atomic.Int64
	e := NewExtractor("clip.mp4", 4, 2)
	e.Workers = 3
	e.TempDir = t.TempDir()
	e.Frame = func(ctx context.Context, input string, at time.Duration, output string, width int) error {
		calls.Add(1)
		return writeSolidPNG(output, color.RGBA{R: 200, G: 10, B: 10, A: 255})
	}
	var last int
	e.OnProgress = func(completed, total int) { last = completed }

	thumbs, err := e.Extract(context.Background(), 8*time.Second, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(thumbs) != 5 || calls.Load() != 5 || last != 5 {
		t.Fatalf("expected 5 thumbnails/calls/progress, got %d/%d/%d", len(thumbs), calls.Load(), last)
	}
	for i := 1; i < len(thumbs); i++ {
		if thumbs[i].At <= thumbs[i-1].At {
			t.Fatalf("thumbnails not ordered by time")
		}
	}
	if len(thumbs[0].Cells) != 2 || len(thumbs[0].Cells[0]) != 4 {
		t.Fatalf("unexpected cell grid")
	}
	if c := thumbs[0].Cells[0][0].Top; c.R < 150 || c.G > 60 {
		t.Fatalf("unexpected downsampled colour: %+v", c)
	}
}

func TestExtractorPartialAndTotalFailure(t *testing.T) {
	e := NewExtractor("clip.mp4", 2, 1)
	e.TempDir = t.TempDir()
	e.Frame = func(ctx context.Context, input string, at time.Duration, output string, width int) error {
		if at < time.Second {
			return errors.New("ffmpeg yok")
		}
		return writeSolidPNG(output, color.RGBA{G: 255, A: 255})
	}
	thumbs, err := e.Extract(context.Background(), 4*time.Second, 4)
	if err != nil {
		t.Fatalf("partial failure should not fail: %v", err)
	}
	if thumbs[0].Ready() || !thumbs[3].Ready() {
		t.Fatalf("unexpected readiness")
	}

	e.Frame = func(ctx context.Context, input string, at time.Duration, output string, width int) error {
		return errors.New("ffmpeg yok")
	}
	if _, err := e.Extract(context.Background(), 4*time.Second, 2); err == nil {
		t.Fatalf("expected error when every frame fails")
	}
}

func TestStripRenderFallsBackToBar(t *testing.T) {
	var s Strip
	rows := s.Render(View{Visible: 5, Content: 10, Rows: 1})
	if len(rows) != 1 || strings.Count(rows[0], emptyCell) != 5 {
		t.Fatalf("expected plain bar, got %q", rows)
	}
}

func TestStripCellAtMapsContentColumns(t *testing.T) {
	red := Cell{Top: color.RGBA{R: 255, A: 255}}
	blue := Cell{Top: color.RGBA{B: 255, A: 255}}
	s := Strip{Thumbs: []Thumbnail{
		{Cells: [][]Cell{{red, red}}},
		{Cells: [][]Cell{{blue, blue}}},
	}}
	if c, ok := s.CellAt(0, 0, 8); !ok || c != red {
		t.Fatalf("expected first thumbnail at column 0")
	}
	if c, ok := s.CellAt(7, 0, 8); !ok || c != blue {
		t.Fatalf("expected second thumbnail at column 7")
	}
	if _, ok := s.CellAt(8, 0, 8); ok {
		t.Fatalf("column outside content should be empty")
	}
	rows := s.Render(View{Visible: 4, Content: 8, Rows: 1, Masked: func(col int) bool { return col == 0 }, MaskColor: "#000000"})
	if strings.Count(rows[0], halfBlock) != 4 {
		t.Fatalf("expected 4 half blocks, got %q", rows[0])
	}
}

func TestBlendAndHex(t *testing.T) {
	got := blend(color.RGBA{R: 200, A: 255}, parseHex("#000000"), 0.5)
	if got.R != 100 {
		t.Fatalf("expected blended red 100, got %d", got.R)
	}
	if hex(color.RGBA{R: 255, G: 16, B: 1}) != "#ff1001" {
		t.Fatalf("unexpected hex")
	}
}

func TestStripRenderOverlay(t *testing.T) {
	var s Strip
	rows := s.Render(View{
		Visible: 4,
		Content: 4,
		Rows:    2,
		Overlay: func(col, row int) (string, bool) {
			if col == 1 {
				return "|", true
			}
			return "", false
		},
	})
	for _, row := range rows {
		if strings.Count(row, "|") != 1 || strings.Count(row, emptyCell) != 3 {
			t.Fatalf("unexpected overlay row: %q", row)
		}
	}
}
