package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FrameArgs tek kare çıkarmak için ffmpeg argümanları. width > 0 ise kare
// orantılı olarak küçültülür.
func FrameArgs(input string, at time.Duration, output string, width int) []string {
	args := []string{"-loglevel", "error", "-ss", FormatSeconds(at), "-i", input, "-frames:v", "1"}
	if width > 0 {
		args = append(args, "-vf", "scale="+strconv.Itoa(width)+":-2")
	}
	return append(args, "-y", output)
}

// ExtractFrame videonun verilen anındaki kareyi output'a yazar.
func ExtractFrame(ctx context.Context, input string, at time.Duration, output string, width int) error {
	ffmpegPath, err := FindFFmpeg()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return err
	}
	if err := runFFmpeg(ctx, ffmpegPath, FrameArgs(input, at, output, width), "kare çıkarma hatasi"); err != nil {
		return err
	}
	if info, err := os.Stat(output); err != nil || info.Size() == 0 {
		return fmt.Errorf("kare üretilemedi: %s", output)
	}
	return nil
}

// SnapshotPath konum çubuğundaki kare için çıktı yolu.
func SnapshotPath(input, dir string, at time.Duration) string {
	base := filepath.Base(input)
	base = base[:len(base)-len(filepath.Ext(base))]
	if dir == "" {
		dir = filepath.Dir(input)
	}
	stamp := fmt.Sprintf("%dms", at.Milliseconds())
	return filepath.Join(dir, fmt.Sprintf("%s_frame_%s.png", base, stamp))
}
