package strip

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/mlihgenel/videotrim-cli/internal/media"
)

// Cell yarım blok karakterle çizilen bir terminal hücresi: üst ve alt piksel.
type Cell struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// Thumbnail şeritteki tek bir kare.
type Thumbnail struct {
	At    time.Duration
	Cells [][]Cell // satır x sütun
	Err   error
}

// Ready hücreler üretilmiş mi
func (t Thumbnail) Ready() bool {
	return t.Err == nil && len(t.Cells) > 0
}

// FrameFunc tek kareyi diske yazar. Varsayılanı media.ExtractFrame.
type FrameFunc func(ctx context.Context, input string, at time.Duration, output string, width int) error

// Extractor videodan eşit aralıklı kareleri paralel olarak çıkarır ve
// terminal hücrelerine küçültür.
type Extractor struct {
	Input      string
	Cols       int
	Rows       int
	Workers    int
	TempDir    string
	Frame      FrameFunc
	OnProgress func(completed, total int)

	processed atomic.Int64
}

// NewExtractor varsayılan ayarlarla extractor oluşturur.
func NewExtractor(input string, cols, rows int) *Extractor {
	workers := runtime.NumCPU()
	if workers > 4 {
		workers = 4
	}
	return &Extractor{
		Input:   input,
		Cols:    cols,
		Rows:    rows,
		Workers: workers,
		Frame:   media.ExtractFrame,
	}
}

type thumbJob struct {
	index int
	at    time.Duration
}

type thumbResult struct {
	index int
	thumb Thumbnail
}

// Times count adet karenin zaman damgaları (her dilimin ortası).
func Times(duration time.Duration, count int) []time.Duration {
	if count <= 0 || duration <= 0 {
		return nil
	}
	out := make([]time.Duration, count)
	slot := float64(duration) / float64(count)
	for i := range out {
		out[i] = time.Duration(slot*float64(i) + slot/2)
	}
	return out
}

// Extract count kareyi çıkarır. Başarısız kareler Err alanıyla döner; hiçbir
// kare üretilemezse hata döner.
func (e *Extractor) Extract(ctx context.Context, duration time.Duration, count int) ([]Thumbnail, error) {
	times := Times(duration, count)
	if len(times) == 0 {
		return nil, fmt.Errorf("önizleme için kare sayısı veya süre geçersiz")
	}
	if e.Cols < 1 || e.Rows < 1 {
		return nil, fmt.Errorf("önizleme hücre boyutu geçersiz: %dx%d", e.Cols, e.Rows)
	}

	tempDir := e.TempDir
	if tempDir == "" {
		dir, err := os.MkdirTemp("", "videotrim-thumbs-*")
		if err != nil {
			return nil, fmt.Errorf("geçici klasör oluşturulamadı: %w", err)
		}
		defer os.RemoveAll(dir)
		tempDir = dir
	}

	workers := e.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(times) {
		workers = len(times)
	}
	e.processed.Store(0)

	jobChan := make(chan thumbJob, len(times))
	resultChan := make(chan thumbResult, len(times))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				resultChan <- thumbResult{index: job.index, thumb: e.process(ctx, tempDir, job)}
			}
		}()
	}

	for i, at := range times {
		jobChan <- thumbJob{index: i, at: at}
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]thumbResult, 0, len(times))
	for r := range resultChan {
		results = append(results, r)
		completed := int(e.processed.Add(1))
		if e.OnProgress != nil {
			e.OnProgress(completed, len(times))
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })

	thumbs := make([]Thumbnail, len(results))
	failed := 0
	var firstErr error
	for i, r := range results {
		thumbs[i] = r.thumb
		if r.thumb.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.thumb.Err
			}
		}
	}
	if failed == len(thumbs) {
		return thumbs, fmt.Errorf("hiçbir önizleme karesi üretilemedi: %w", firstErr)
	}
	return thumbs, nil
}

func (e *Extractor) process(ctx context.Context, dir string, job thumbJob) Thumbnail {
	thumb := Thumbnail{At: job.at}
	if err := ctx.Err(); err != nil {
		thumb.Err = err
		return thumb
	}

	out := filepath.Join(dir, fmt.Sprintf("thumb_%03d.png", job.index))
	// Hücre başına iki dikey piksel; ffmpeg'e biraz geniş kare istenir.
	if err := e.Frame(ctx, e.Input, job.at, out, e.Cols*4); err != nil {
		thumb.Err = err
		return thumb
	}

	img, err := decodePNG(out)
	if err != nil {
		thumb.Err = err
		return thumb
	}
	thumb.Cells = Downsample(img, e.Cols, e.Rows)
	return thumb
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("kare çözümlenemedi: %w", err)
	}
	return img, nil
}

// Downsample görseli cols x rows hücreye küçültür.
func Downsample(src image.Image, cols, rows int) [][]Cell {
	if cols < 1 || rows < 1 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	cells := make([][]Cell, rows)
	for y := 0; y < rows; y++ {
		cells[y] = make([]Cell, cols)
		for x := 0; x < cols; x++ {
			cells[y][x] = Cell{
				Top:    dst.RGBAAt(x, y*2),
				Bottom: dst.RGBAAt(x, y*2+1),
			}
		}
	}
	return cells
}
