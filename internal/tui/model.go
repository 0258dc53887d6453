package tui

import (
	"context"
	"fmt"
	"log"
	"math"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/mlihgenel/videotrim-cli/internal/media"
	"github.com/mlihgenel/videotrim-cli/internal/player"
	"github.com/mlihgenel/videotrim-cli/internal/strip"
	"github.com/mlihgenel/videotrim-cli/internal/timeline"
	"github.com/mlihgenel/videotrim-cli/internal/watch"
)

const (
	marginX      = 2
	headerLines  = 2
	stripRows    = 2
	handleWidth  = 2
	minVisible   = 10
	frameEvery   = 33 * time.Millisecond
	watchEvery   = 500 * time.Millisecond
	wheelFling   = 60.0
	zoomFactor   = 1.5
	zoneStrip    = "videotrim-strip"
	maxFrameStep = 100 * time.Millisecond
)

var nudgeSteps = []float64{1, 2, 5, 10}

// Options TUI başlangıç ayarları.
type Options struct {
	Asset       media.Asset
	MinDuration time.Duration
	Start       *time.Duration
	End         *time.Duration
	Zoom        float64
	Thumbnails  int
	Theme       Theme
	Export      media.PlanOptions
	DryRun      bool
	Debug       bool

	// Listener controller bildirimlerini oynatıcıdan sonra ayrıca alır (nil olabilir).
	Listener timeline.Listener

	Probe  func(ctx context.Context, path string) (media.Asset, error)
	Frame  strip.FrameFunc
	Run    func(ctx context.Context, p media.Plan, verbose bool) error
	Engine watch.Engine
}

// Result TUI kapandıktan sonra çağırana dönen özet.
type Result struct {
	Start    time.Duration
	End      time.Duration
	Exported string
}

// bridge controller bildirimlerini oynatıcıya aktarır.
type bridge struct {
	player *player.Player
	tap    timeline.Listener
	debug  bool
}

func (b *bridge) HandleEvent(e timeline.Event) {
	switch e.Kind {
	case timeline.EventInteractionStarted:
		b.player.Pause()
	case timeline.EventSeekRequested, timeline.EventPositionChanged:
		b.player.Seek(e.Time)
	case timeline.EventPositionSettled:
		b.player.Seek(e.Time)
		if b.debug {
			log.Printf("konum sabitlendi: %s", media.FormatTimecode(e.Time))
		}
	}
	if b.tap != nil {
		b.tap.HandleEvent(e)
	}
}

// Model videotrim arayüzü.
type Model struct {
	opts  Options
	asset media.Asset

	ctrl    *timeline.Controller
	surface *strip.Surface
	player  *player.Player
	bridge  *bridge
	thumbs  strip.Strip

	keys  keyMap
	help  help.Model
	zones *zone.Manager
	theme Theme

	pointer *pointer
	focus   timeline.Side
	stepIdx int

	ticking   bool
	lastFrame time.Time
	exporting bool
	loading   bool

	status    string
	statusErr bool
	result    Result

	width    int
	height   int
	quitting bool
}

// Mesajlar
type frameMsg time.Time

type watchTickMsg struct{}

type thumbsDoneMsg struct {
	thumbs []strip.Thumbnail
	err    error
}

type assetReloadedMsg struct {
	asset media.Asset
	err   error
}

type exportDoneMsg struct {
	plan     media.Plan
	err      error
	duration time.Duration
}

type snapshotDoneMsg struct {
	path string
	err  error
}

// New verilen asset için modeli oluşturur.
func New(opts Options) Model {
	if opts.Zoom == 0 {
		opts.Zoom = strip.DefaultZoom
	}
	if opts.Probe == nil {
		opts.Probe = media.Probe
	}
	if opts.Frame == nil {
		opts.Frame = media.ExtractFrame
	}
	if opts.Run == nil {
		opts.Run = media.Export
	}
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme()
	}

	m := Model{
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		zones:   zone.New(),
		theme:   opts.Theme,
		pointer: &pointer{},
		width:   80,
		height:  24,
	}
	m.surface = strip.NewSurface(m.visibleFor(m.width), opts.Zoom)
	m.ctrl = timeline.NewController(m.surface, timeline.Layout{HandleWidth: handleWidth, IndicatorWidth: 1})
	m.surface.SetListener(m.ctrl)
	m.player = player.New(0)
	m.bridge = &bridge{player: m.player, tap: opts.Listener, debug: opts.Debug}
	m.ctrl.SetListener(m.bridge)
	if opts.MinDuration > 0 {
		m.ctrl.SetMinDuration(opts.MinDuration)
	}
	m.loadAsset(opts.Asset)
	if opts.Start != nil {
		m.ctrl.SetStartTime(*opts.Start)
	}
	if opts.End != nil {
		m.ctrl.SetEndTime(*opts.End)
	}
	m.syncPlayer()
	m.loading = opts.Thumbnails > 0 && opts.Asset.Path != ""
	return m
}

// visibleFor terminal genişliğinden şeridin görünür içerik genişliğini
// hesaplar: kenar boşlukları, çerçeve ve iki tutamaç düşülür.
func (m Model) visibleFor(width int) float64 {
	v := width - 2*marginX - 2 - 2*handleWidth
	if v < minVisible {
		v = minVisible
	}
	return float64(v)
}

func (m *Model) loadAsset(a media.Asset) {
	m.asset = a
	m.thumbs = strip.Strip{}
	m.ctrl.SetAsset(&timeline.Asset{Name: a.Name, Duration: a.Duration})
	*m.player = *player.New(a.Duration)
}

func (m *Model) syncPlayer() {
	start, okStart := m.ctrl.StartTime()
	end, okEnd := m.ctrl.EndTime()
	if okStart && okEnd {
		m.player.SetWindow(start, end)
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// Controller altta yatan etkileşim motoru.
func (m Model) Controller() *timeline.Controller {
	return m.ctrl
}

// Result son seçim ve dışa aktarım bilgisi.
func (m Model) Result() Result {
	r := m.result
	r.Start, _ = m.ctrl.StartTime()
	r.End, _ = m.ctrl.EndTime()
	return r
}

// ========================================
// bubbletea Interface
// ========================================

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.thumbsCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.opts.Engine != nil {
		cmds = append(cmds, waitForWatch(m.opts.Engine))
	}
	return tea.Batch(cmds...)
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameEvery, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func waitForWatch(engine watch.Engine) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-engine.Events():
		case <-time.After(watchEvery):
		}
		return watchTickMsg{}
	}
}

// startFrames momentum veya oynatma için kare zamanlayıcısını başlatır.
func (m *Model) startFrames() tea.Cmd {
	if m.ticking || !(m.surface.Decelerating() || m.player.Playing()) {
		return nil
	}
	m.ticking = true
	m.lastFrame = time.Time{}
	return frameCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ctrl.Reshape(func() {
			m.surface.SetVisibleWidth(m.visibleFor(msg.Width))
		})
		m.syncPlayer()
		return m, nil

	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case watchTickMsg:
		return m.handleWatchTick()

	case thumbsDoneMsg:
		m.loading = false
		m.thumbs = strip.Strip{Thumbs: msg.thumbs}
		if msg.err != nil {
			m.setStatus("Önizleme kareleri üretilemedi: "+msg.err.Error(), true)
		}
		return m, nil

	case assetReloadedMsg:
		if msg.err != nil {
			m.setStatus("Video yeniden okunamadı: "+msg.err.Error(), true)
			return m, nil
		}
		m.loadAsset(msg.asset)
		m.syncPlayer()
		m.setStatus("Video değişti, yeniden yüklendi", false)
		return m, m.thumbsCmd()

	case exportDoneMsg:
		m.exporting = false
		switch {
		case msg.err != nil:
			m.setStatus("Dışa aktarma hatası: "+msg.err.Error(), true)
		case msg.plan.Skip:
			m.setStatus("Çıktı zaten var, atlandı: "+filepath.Base(msg.plan.Output), false)
		case m.opts.DryRun:
			m.result.Exported = msg.plan.Output
			m.setStatus(fmt.Sprintf("Plan: %s (%s)", filepath.Base(msg.plan.Output), msg.plan.Codec), false)
		default:
			m.result.Exported = msg.plan.Output
			m.setStatus(fmt.Sprintf("Kaydedildi: %s (%s)", filepath.Base(msg.plan.Output), msg.duration.Round(time.Millisecond)), false)
		}
		return m, nil

	case snapshotDoneMsg:
		if msg.err != nil {
			m.setStatus("Kare alınamadı: "+msg.err.Error(), true)
		} else {
			m.setStatus("Kare kaydedildi: "+filepath.Base(msg.path), false)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameEvery
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
	}
	if dt > maxFrameStep {
		dt = maxFrameStep
	}
	m.lastFrame = now

	m.surface.Step(dt)
	if m.player.Advance(dt) {
		m.ctrl.Seek(m.player.Position())
	}

	if m.surface.Decelerating() || m.player.Playing() {
		return m, frameCmd()
	}
	m.ticking = false
	return m, nil
}

func (m Model) handleWatchTick() (tea.Model, tea.Cmd) {
	engine := m.opts.Engine
	if engine == nil {
		return m, nil
	}
	changed, err := engine.Poll(time.Now())
	if err != nil {
		log.Printf("izleme hatası: %v", err)
	}
	cmds := []tea.Cmd{waitForWatch(engine)}
	if changed {
		cmds = append(cmds, m.reloadCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.focus = 1 - m.focus
	case key.Matches(msg, m.keys.NudgeLeft):
		m.nudge(-nudgeSteps[m.stepIdx])
	case key.Matches(msg, m.keys.NudgeRight):
		m.nudge(nudgeSteps[m.stepIdx])
	case key.Matches(msg, m.keys.ScrollLeft):
		m.surface.ScrollBy(-m.surface.VisibleWidth() / 4)
	case key.Matches(msg, m.keys.ScrollRight):
		m.surface.ScrollBy(m.surface.VisibleWidth() / 4)
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoom(m.surface.Zoom() * zoomFactor)
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoom(m.surface.Zoom() / zoomFactor)
	case key.Matches(msg, m.keys.StepDown):
		if m.stepIdx > 0 {
			m.stepIdx--
		}
	case key.Matches(msg, m.keys.StepUp):
		if m.stepIdx < len(nudgeSteps)-1 {
			m.stepIdx++
		}
	case key.Matches(msg, m.keys.Play):
		m.syncPlayer()
		m.player.Toggle()
		if m.player.Playing() {
			m.ctrl.Seek(m.player.Position())
		}
		return m, m.startFrames()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.SetStartTime(0)
		m.ctrl.SetEndTime(m.asset.Duration)
	case key.Matches(msg, m.keys.Snapshot):
		return m, m.snapshotCmd()
	case key.Matches(msg, m.keys.Export):
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		m.setStatus("Dışa aktarılıyor...", false)
		return m, m.exportCmd()
	}
	m.syncPlayer()
	return m, nil
}

// nudge odaklı tutamacı sentetik bir pan jestiyle cols sütun kaydırır.
func (m *Model) nudge(cols float64) {
	m.ctrl.HandlePan(m.focus, timeline.PhaseBegan, 0)
	m.ctrl.HandlePan(m.focus, timeline.PhaseChanged, cols)
	m.ctrl.HandlePan(m.focus, timeline.PhaseEnded, cols)
}

func (m *Model) zoom(z float64) {
	m.surface.Stop()
	m.ctrl.Reshape(func() {
		m.surface.SetZoom(z)
	})
}

// ========================================
// Komutlar
// ========================================

func (m *Model) thumbsCmd() tea.Cmd {
	count := m.opts.Thumbnails
	if count <= 0 || m.asset.Duration <= 0 || m.asset.Path == "" {
		return nil
	}
	m.loading = true
	content := int(m.surface.ContentWidth())
	cols := content / count
	if cols < 2 {
		cols = 2
	}
	extractor := strip.NewExtractor(m.asset.Path, cols, stripRows)
	extractor.Frame = m.opts.Frame
	duration := m.asset.Duration
	return func() tea.Msg {
		thumbs, err := extractor.Extract(context.Background(), duration, count)
		return thumbsDoneMsg{thumbs: thumbs, err: err}
	}
}

func (m Model) reloadCmd() tea.Cmd {
	probe := m.opts.Probe
	path := m.asset.Path
	return func() tea.Msg {
		asset, err := probe(context.Background(), path)
		return assetReloadedMsg{asset: asset, err: err}
	}
}

func (m Model) exportCmd() tea.Cmd {
	opts := m.opts.Export
	opts.Input = m.asset.Path
	opts.Start, _ = m.ctrl.StartTime()
	opts.End, _ = m.ctrl.EndTime()
	dryRun := m.opts.DryRun
	run := m.opts.Run
	return func() tea.Msg {
		plan, err := media.BuildPlan(opts)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if dryRun || plan.Skip {
			return exportDoneMsg{plan: plan}
		}
		started := time.Now()
		err = run(context.Background(), plan, false)
		return exportDoneMsg{plan: plan, err: err, duration: time.Since(started)}
	}
}

func (m Model) snapshotCmd() tea.Cmd {
	at, ok := m.ctrl.IndicatorTime()
	if !ok || m.asset.Path == "" {
		return nil
	}
	path := media.SnapshotPath(m.asset.Path, m.opts.Export.OutputDir, at)
	input := m.asset.Path
	frame := m.opts.Frame
	return func() tea.Msg {
		err := frame(context.Background(), input, at, path, 0)
		return snapshotDoneMsg{path: path, err: err}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
