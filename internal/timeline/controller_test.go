package timeline

import (
	"math/rand"
	"testing"
	"time"
)

func newTestController(duration time.Duration) (*Controller, *StaticSurface, *EventLog) {
	surface := &StaticSurface{Content: 300, Visible: 300}
	c := NewController(surface, DefaultLayout())
	log := &EventLog{}
	c.SetListener(log)
	c.SetAsset(&Asset{Name: "clip.mp4", Duration: duration})
	return c, surface, log
}

func mustTimes(t *testing.T, c *Controller) (time.Duration, time.Duration) {
	t.Helper()
	start, ok := c.StartTime()
	if !ok {
		t.Fatalf("start time undefined")
	}
	end, ok := c.EndTime()
	if !ok {
		t.Fatalf("end time undefined")
	}
	return start, end
}

func TestInitialSelectionIsFullRange(t *testing.T) {
	c, _, _ := newTestController(30 * time.Second)
	start, end := mustTimes(t, c)
	if start != 0 || !approx(end, 30*time.Second) {
		t.Fatalf("expected 0..30s, got %s..%s", start, end)
	}
}

func TestDragRightHandleStopsAtMinDuration(t *testing.T) {
	c, _, _ := newTestController(30 * time.Second)

	c.HandlePan(SideRight, PhaseBegan, 0)
	c.HandlePan(SideRight, PhaseChanged, -290)
	c.HandlePan(SideRight, PhaseEnded, -290)

	start, end := mustTimes(t, c)
	if !approx(end-start, 3*time.Second) {
		t.Fatalf("expected 3s selection, got %s", end-start)
	}
}

func TestSetStartTimeProgrammatically(t *testing.T) {
	c, _, _ := newTestController(30 * time.Second)
	c.SetStartTime(10 * time.Second)

	start, end := mustTimes(t, c)
	if !approx(start, 10*time.Second) {
		t.Fatalf("expected start 10s, got %s", start)
	}
	if !approx(end, 30*time.Second) {
		t.Fatalf("expected end unchanged at 30s, got %s", end)
	}
}

func TestOutOfRangeWritesAreClamped(t *testing.T) {
	c, _, _ := newTestController(30 * time.Second)
	c.SetEndTime(12 * time.Second)
	c.SetStartTime(25 * time.Second)

	start, end := mustTimes(t, c)
	if !approx(end, 12*time.Second) {
		t.Fatalf("expected end 12s, got %s", end)
	}
	if !approx(start, 9*time.Second) {
		t.Fatalf("expected start clamped to 9s, got %s", start)
	}
}

func TestTapSeekIsClampedToSelection(t *testing.T) {
	c, _, log := newTestController(30 * time.Second)
	c.SetStartTime(10 * time.Second)
	c.SetEndTime(20 * time.Second)

	// t=5s -> içerik ofseti 50px, kapsayıcıda tutamaç genişliği kadar kayık.
	c.HandleTap(50 + DefaultLayout().HandleWidth)

	evt, ok := log.Last(EventSeekRequested)
	if !ok {
		t.Fatalf("expected seek notification")
	}
	if !approx(evt.Time, 10*time.Second) {
		t.Fatalf("expected seek to 10s, got %s", evt.Time)
	}
	pos, _ := c.IndicatorTime()
	if !approx(pos, 10*time.Second) {
		t.Fatalf("expected indicator at 10s, got %s", pos)
	}
	if c.State().Kind != StateIdle {
		t.Fatalf("expected idle after tap, got %s", c.State())
	}
}

func TestAssetChangeResetsSelection(t *testing.T) {
	c, _, _ := newTestController(30 * time.Second)
	c.SetStartTime(10 * time.Second)
	c.SetEndTime(20 * time.Second)
	c.Seek(15 * time.Second)

	c.SetAsset(&Asset{Name: "other.mov", Duration: time.Minute})

	start, end := mustTimes(t, c)
	if start != 0 || !approx(end, time.Minute) {
		t.Fatalf("expected 0..60s after reset, got %s..%s", start, end)
	}
	if pos, _ := c.IndicatorTime(); pos != 0 {
		t.Fatalf("expected indicator reset, got %s", pos)
	}
}

func TestHandleDragNotifications(t *testing.T) {
	c, _, log := newTestController(30 * time.Second)

	c.HandlePan(SideLeft, PhaseBegan, 0)
	if c.State() != (State{Kind: StateDraggingHandle, Side: SideLeft}) {
		t.Fatalf("unexpected state: %s", c.State())
	}
	for _, dx := range []float64{10, 40, 100} {
		c.HandlePan(SideLeft, PhaseChanged, dx)
	}
	c.HandlePan(SideLeft, PhaseEnded, 100)

	if n := log.Count(EventInteractionStarted); n != 1 {
		t.Fatalf("expected one interaction-started, got %d", n)
	}
	if n := log.Count(EventPositionSettled); n != 1 {
		t.Fatalf("expected one settled, got %d", n)
	}
	if n := log.Count(EventPositionChanged); n < 3 {
		t.Fatalf("expected continuous changes, got %d", n)
	}
	if c.State().Kind != StateIdle {
		t.Fatalf("expected idle after drag end")
	}

	start, _ := mustTimes(t, c)
	if !approx(start, 10*time.Second) {
		t.Fatalf("expected start 10s, got %s", start)
	}
	// sol tutamaç sürüklenirken konum çubuğu başlangıcı gösterir
	pos, _ := c.IndicatorTime()
	if !approx(pos, start) {
		t.Fatalf("expected indicator at start %s, got %s", start, pos)
	}
}

func TestCancelledDragKeepsLastPosition(t *testing.T) {
	c, _, log := newTestController(30 * time.Second)

	c.HandlePan(SideRight, PhaseBegan, 0)
	c.HandlePan(SideRight, PhaseChanged, -100)
	c.HandlePan(SideRight, PhaseCancelled, 0)

	_, end := mustTimes(t, c)
	if !approx(end, 20*time.Second) {
		t.Fatalf("expected end 20s after cancel, got %s", end)
	}
	if log.Count(EventPositionSettled) != 1 {
		t.Fatalf("expected settle on cancel")
	}
}

func TestMoveWithoutBeginIsIgnored(t *testing.T) {
	c, _, log := newTestController(30 * time.Second)
	c.HandlePan(SideLeft, PhaseChanged, 120)
	c.HandlePan(SideLeft, PhaseEnded, 120)

	start, _ := mustTimes(t, c)
	if start != 0 {
		t.Fatalf("expected untouched start, got %s", start)
	}
	if len(log.Events) != 0 {
		t.Fatalf("expected no events, got %v", log.Events)
	}
}

func TestSimultaneousHandleDrags(t *testing.T) {
	c, _, _ := newTestController(30 * time.Second)

	c.HandlePan(SideLeft, PhaseBegan, 0)
	c.HandlePan(SideRight, PhaseBegan, 0)
	c.HandlePan(SideLeft, PhaseChanged, 50)
	c.HandlePan(SideRight, PhaseChanged, -50)
	c.HandlePan(SideLeft, PhaseEnded, 50)

	if c.State() != (State{Kind: StateDraggingHandle, Side: SideRight}) {
		t.Fatalf("expected right drag to remain active, got %s", c.State())
	}
	c.HandlePan(SideRight, PhaseEnded, -50)

	start, end := mustTimes(t, c)
	if !approx(start, 5*time.Second) || !approx(end, 25*time.Second) {
		t.Fatalf("expected 5..25s, got %s..%s", start, end)
	}
}

func TestScrollLifecycle(t *testing.T) {
	surface := &StaticSurface{Content: 600, Visible: 300}
	c := NewController(surface, DefaultLayout())
	log := &EventLog{}
	c.SetListener(log)
	c.SetAsset(&Asset{Duration: 30 * time.Second})

	c.ScrollBegan()
	if c.State().Kind != StateScrollingTimeline {
		t.Fatalf("expected scrolling state, got %s", c.State())
	}
	surface.Offset = 100
	c.DidScroll()

	evt, ok := log.Last(EventPositionChanged)
	if !ok || !approx(evt.Time, 5*time.Second) {
		t.Fatalf("expected changed at 5s, got %v", evt)
	}
	start, end := mustTimes(t, c)
	if !approx(start, 5*time.Second) || !approx(end, 20*time.Second) {
		t.Fatalf("expected 5..20s window, got %s..%s", start, end)
	}

	c.EndedDragging(true)
	if log.Count(EventPositionSettled) != 0 {
		t.Fatalf("settle must wait for deceleration")
	}
	c.EndedDecelerating()
	if log.Count(EventPositionSettled) != 1 {
		t.Fatalf("expected settle after deceleration")
	}
	if c.State().Kind != StateIdle {
		t.Fatalf("expected idle after scroll")
	}

	c.ScrollBegan()
	c.EndedDragging(false)
	if log.Count(EventPositionSettled) != 2 {
		t.Fatalf("expected settle when no deceleration follows")
	}
}

func TestSeekPanMovesIndicator(t *testing.T) {
	c, _, log := newTestController(30 * time.Second)
	hw := DefaultLayout().HandleWidth

	c.HandleSeekPan(PhaseBegan, hw+100)
	if c.State().Kind != StateSeekingByTap {
		t.Fatalf("expected seeking state, got %s", c.State())
	}
	c.HandleSeekPan(PhaseChanged, hw+150)
	c.HandleSeekPan(PhaseEnded, hw+150)

	if n := log.Count(EventSeekRequested); n != 2 {
		t.Fatalf("expected 2 seek requests, got %d", n)
	}
	evt, _ := log.Last(EventSeekRequested)
	if !approx(evt.Time, 15*time.Second) {
		t.Fatalf("expected 15s, got %s", evt.Time)
	}
	if c.State().Kind != StateIdle {
		t.Fatalf("expected idle after seek pan")
	}
}

func TestHostSeekDoesNotMoveHandles(t *testing.T) {
	c, _, log := newTestController(30 * time.Second)
	c.SetStartTime(5 * time.Second)
	c.SetEndTime(25 * time.Second)

	c.Seek(12 * time.Second)
	pos, _ := c.IndicatorTime()
	if !approx(pos, 12*time.Second) {
		t.Fatalf("expected indicator at 12s, got %s", pos)
	}
	c.Seek(29 * time.Second)
	pos, _ = c.IndicatorTime()
	_, end := mustTimes(t, c)
	if pos > end {
		t.Fatalf("indicator %s escaped selection end %s", pos, end)
	}
	start, _ := mustTimes(t, c)
	if !approx(start, 5*time.Second) {
		t.Fatalf("handles moved by seek: start %s", start)
	}
	if len(log.Events) != 0 {
		t.Fatalf("host seek must not notify, got %v", log.Events)
	}
}

func TestUndefinedMappingSkipsNotifications(t *testing.T) {
	surface := &StaticSurface{Content: 300, Visible: 300}
	c := NewController(surface, DefaultLayout())
	log := &EventLog{}
	c.SetListener(log)

	c.HandleTap(120)
	c.Seek(time.Second)
	c.SetStartTime(time.Second)
	c.DidScroll()

	if _, ok := c.StartTime(); ok {
		t.Fatalf("expected undefined start without asset")
	}
	if len(log.Events) != 0 {
		t.Fatalf("expected no events without asset, got %v", log.Events)
	}

	c.SetAsset(&Asset{Duration: 0})
	c.HandleTap(120)
	if len(log.Events) != 0 {
		t.Fatalf("expected no events for zero duration asset")
	}
}

func TestSetMinDurationReappliesConstraint(t *testing.T) {
	c, _, _ := newTestController(30 * time.Second)
	c.SetStartTime(10 * time.Second)
	c.SetEndTime(15 * time.Second)

	c.SetMinDuration(10 * time.Second)
	start, end := mustTimes(t, c)
	if !approx(end-start, 10*time.Second) {
		t.Fatalf("expected 10s selection, got %s", end-start)
	}
}

func TestReshapeKeepsSelectedTimes(t *testing.T) {
	c, surface, _ := newTestController(30 * time.Second)
	c.SetStartTime(10 * time.Second)
	c.SetEndTime(20 * time.Second)

	c.Reshape(func() {
		surface.Content = 600
		surface.Visible = 600
	})

	start, end := mustTimes(t, c)
	if !approx(start, 10*time.Second) || !approx(end, 20*time.Second) {
		t.Fatalf("expected 10..20s after reshape, got %s..%s", start, end)
	}
}

func TestRandomInteractionsPreserveInvariants(t *testing.T) {
	c, surface, _ := newTestController(30 * time.Second)
	surface.Content = 900
	rng := rand.New(rand.NewSource(7))
	layout := DefaultLayout()

	for i := 0; i < 2000; i++ {
		switch rng.Intn(5) {
		case 0, 1:
			side := Side(rng.Intn(2))
			c.HandlePan(side, PhaseBegan, 0)
			dx := 0.0
			for j := 0; j < 1+rng.Intn(4); j++ {
				dx += rng.Float64()*400 - 200
				c.HandlePan(side, PhaseChanged, dx)
			}
			c.HandlePan(side, PhaseEnded, dx)
		case 2:
			c.HandleTap(rng.Float64() * 340)
		case 3:
			c.ScrollBegan()
			surface.Offset = rng.Float64() * (surface.Content - surface.Visible)
			c.DidScroll()
			c.EndedDragging(false)
		case 4:
			c.Seek(time.Duration(rng.Int63n(int64(30 * time.Second))))
		}

		start, end := mustTimes(t, c)
		if end-start < c.MinDuration()-epsilon {
			t.Fatalf("step %d: selection %s shorter than minimum", i, end-start)
		}
		snap := c.Snapshot()
		minSel := c.Mapper().MinSelectionPixels(c.MinDuration())
		if snap.LeftHandle > snap.RightHandle-layout.HandleWidth-minSel+1e-6 {
			t.Fatalf("step %d: handles crossed (%.3f, %.3f)", i, snap.LeftHandle, snap.RightHandle)
		}
		pos, _ := c.IndicatorTime()
		if pos < start-epsilon || pos > end+epsilon {
			t.Fatalf("step %d: indicator %s outside %s..%s", i, pos, start, end)
		}
	}
}

func TestReshapeDuringDragKeepsHandleUnderPointer(t *testing.T) {
	c, surface, _ := newTestController(30 * time.Second)

	c.HandlePan(SideLeft, PhaseBegan, 0)
	c.HandlePan(SideLeft, PhaseChanged, 100)
	if start, _ := mustTimes(t, c); !approx(start, 10*time.Second) {
		t.Fatalf("expected start 10s, got %s", start)
	}

	c.Reshape(func() {
		surface.Content = 600
		surface.Visible = 600
	})
	if start, _ := mustTimes(t, c); !approx(start, 10*time.Second) {
		t.Fatalf("reshape should keep start at 10s, got %s", start)
	}

	c.HandlePan(SideLeft, PhaseChanged, 101)
	c.HandlePan(SideLeft, PhaseEnded, 101)
	if start, _ := mustTimes(t, c); !approx(start, 10050*time.Millisecond) {
		t.Fatalf("expected start 10.05s after one more column, got %s", start)
	}

	c.HandlePan(SideRight, PhaseBegan, 0)
	c.HandlePan(SideRight, PhaseChanged, -200)
	if _, end := mustTimes(t, c); !approx(end, 20*time.Second) {
		t.Fatalf("expected end 20s, got %s", end)
	}

	c.Reshape(func() {
		surface.Content = 300
		surface.Visible = 300
	})
	c.HandlePan(SideRight, PhaseChanged, -201)
	c.HandlePan(SideRight, PhaseEnded, -201)
	if _, end := mustTimes(t, c); !approx(end, 19900*time.Millisecond) {
		t.Fatalf("expected end 19.9s after one more column, got %s", end)
	}
}

func TestSettersUnderScrollOffset(t *testing.T) {
	surface := &StaticSurface{Content: 600, Visible: 300, Offset: 100}
	c := NewController(surface, DefaultLayout())
	c.SetAsset(&Asset{Duration: 30 * time.Second})

	c.SetStartTime(10 * time.Second)
	c.SetEndTime(18 * time.Second)

	start, end := mustTimes(t, c)
	if !approx(start, 10*time.Second) {
		t.Fatalf("expected start 10s under offset, got %s", start)
	}
	if !approx(end, 18*time.Second) {
		t.Fatalf("expected end 18s under offset, got %s", end)
	}
}
