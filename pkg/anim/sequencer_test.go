package anim

import (
	"math"
	"testing"
	"time"

	"github.com/matzehuels/bloom/pkg/flower"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testTiming() Timing {
	return Timing{
		Petal:       100 * time.Millisecond,
		CaptionFade: 50 * time.Millisecond,
		Hold:        100 * time.Millisecond,
		FadeOut:     100 * time.Millisecond,
		Pause:       50 * time.Millisecond,
		Recovery:    200 * time.Millisecond,
		Frame:       10 * time.Millisecond,
	}
}

func newTestSequencer(t *testing.T, opts ...Option) (*Sequencer, *flower.Flower) {
	t.Helper()
	f := flower.Build(flower.DefaultParams())
	return NewSequencer(f, 3, testTiming(), opts...), f
}

func sampleAt(t *testing.T, offset time.Duration, opts ...Option) (VisualState, *flower.Flower) {
	t.Helper()
	seq, f := newTestSequencer(t, opts...)
	return Sample(seq, t0, offset, testTiming().Frame), f
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSequencerInitialFrame(t *testing.T) {
	vs, _ := sampleAt(t, 0)
	if vs.Stage != StageGrow || vs.Step != 0 {
		t.Errorf("stage/step = %v/%d, want grow/0", vs.Stage, vs.Step)
	}
	if vs.Progress != (Progress{}) {
		t.Errorf("progress = %v, want zero", vs.Progress)
	}
	if vs.CenterVisible {
		t.Error("center visible before any growth")
	}
	if vs.Opacity != 1 {
		t.Errorf("opacity = %v, want 1", vs.Opacity)
	}
	for i, c := range vs.Captions {
		if c.Visible {
			t.Errorf("caption %d visible at start", i)
		}
	}
}

func TestSequencerFirstPetalThenCaption(t *testing.T) {
	vs, f := sampleAt(t, 50*time.Millisecond)
	if !approx(vs.Progress[0], 0.75) {
		t.Errorf("progress[0] at half time = %v, want 0.75", vs.Progress[0])
	}
	if !approx(vs.Radii[0], 0.75*f.Petals[0].MaxExtent) {
		t.Errorf("radius[0] = %v, want %v", vs.Radii[0], 0.75*f.Petals[0].MaxExtent)
	}
	if !vs.CenterVisible {
		t.Error("center hidden while petal 0 grows")
	}
	if vs.Captions[0].Visible {
		t.Error("caption 0 visible before petal 0 finished")
	}

	vs, _ = sampleAt(t, 100*time.Millisecond)
	if vs.Progress[0] != 1 || vs.Step != 1 {
		t.Errorf("progress[0]/step = %v/%d, want 1/1", vs.Progress[0], vs.Step)
	}
	if !vs.Captions[0].Visible || vs.Captions[0].Opacity != 0 {
		t.Errorf("caption 0 = %+v, want visible at the start of its fade", vs.Captions[0])
	}
	if vs.Captions[1].Visible {
		t.Error("caption 1 visible too early")
	}

	vs, _ = sampleAt(t, 150*time.Millisecond)
	if !approx(vs.Captions[0].Opacity, 1) {
		t.Errorf("caption 0 opacity after fade = %v, want 1", vs.Captions[0].Opacity)
	}
	if !approx(vs.Progress[2], 0.75) {
		t.Errorf("progress[2] = %v, want 0.75", vs.Progress[2])
	}
}

func TestSequencerOverlapAppearsWithNeighbor(t *testing.T) {
	vs, f := sampleAt(t, 250*time.Millisecond)
	// Petals 2 (done) and 3 (growing) share overlap 2.
	o := vs.Overlaps[2]
	if o.Opacity != 1 {
		t.Fatalf("overlap 2 opacity = %v, want 1", o.Opacity)
	}
	want := math.Min(f.Petals[2].MaxExtent, 0.75*f.Petals[3].MaxExtent)
	if !approx(o.Radius, want) {
		t.Errorf("overlap 2 radius = %v, want %v", o.Radius, want)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if vs.Overlaps[i].Opacity != 0 {
			t.Errorf("overlap %d visible without both petals", i)
		}
	}
}

func TestSequencerConcurrentPetals(t *testing.T) {
	for _, off := range []time.Duration{310, 350, 390} {
		vs, _ := sampleAt(t, off*time.Millisecond)
		if vs.Progress[1] != vs.Progress[4] {
			t.Errorf("at %dms progress[1] = %v, progress[4] = %v, want equal", off, vs.Progress[1], vs.Progress[4])
		}
	}
}

func TestSequencerHoldAndFade(t *testing.T) {
	vs, _ := sampleAt(t, 400*time.Millisecond)
	if vs.Stage != StageHold {
		t.Fatalf("stage = %v, want hold", vs.Stage)
	}
	for i, p := range vs.Progress {
		if p != 1 {
			t.Errorf("progress[%d] = %v, want 1", i, p)
		}
		if vs.Overlaps[i].Opacity != 1 {
			t.Errorf("overlap %d hidden in full bloom", i)
		}
	}
	for i, c := range vs.Captions {
		if !c.Visible {
			t.Errorf("caption %d hidden during hold", i)
		}
	}

	vs, _ = sampleAt(t, 550*time.Millisecond)
	if vs.Stage != StageFadeOut || !approx(vs.Opacity, 0.5) {
		t.Errorf("stage/opacity = %v/%v, want fade-out/0.5", vs.Stage, vs.Opacity)
	}

	vs, _ = sampleAt(t, 620*time.Millisecond)
	if vs.Stage != StagePause || vs.Opacity != 0 {
		t.Errorf("stage/opacity = %v/%v, want pause/0", vs.Stage, vs.Opacity)
	}
}

func TestSequencerNextCycle(t *testing.T) {
	vs, _ := sampleAt(t, 650*time.Millisecond)
	if vs.Cycle != 1 || vs.Round != 1 {
		t.Fatalf("cycle/round = %d/%d, want 1/1", vs.Cycle, vs.Round)
	}
	if vs.Stage != StageGrow || vs.Progress != (Progress{}) || vs.Opacity != 1 {
		t.Errorf("state after reset = %v %v %v, want grow, zero progress, opacity 1", vs.Stage, vs.Progress, vs.Opacity)
	}
	if vs.CenterVisible {
		t.Error("center visible after reset")
	}
	for i, c := range vs.Captions {
		if c != (CaptionState{}) {
			t.Errorf("caption %d = %+v after reset, want hidden", i, c)
		}
	}
}

func TestSequencerRoundsWrap(t *testing.T) {
	seq, _ := newTestSequencer(t)
	vs := Sample(seq, t0, 1950*time.Millisecond, testTiming().Frame)
	if vs.Cycle != 3 || vs.Round != 0 {
		t.Errorf("cycle/round = %d/%d, want 3/0", vs.Cycle, vs.Round)
	}
	if seq.Cycles() != 3 || seq.Round() != 0 {
		t.Errorf("Cycles/Round = %d/%d, want 3/0", seq.Cycles(), seq.Round())
	}
}

func TestSequencerProgressMonotone(t *testing.T) {
	seq, _ := newTestSequencer(t)
	frames := Frames(seq, t0, time.Millisecond, 650)
	for i := 1; i < len(frames); i++ {
		if frames[i].Cycle != frames[0].Cycle {
			break
		}
		for p := range frames[i].Progress {
			if frames[i].Progress[p] < frames[i-1].Progress[p] {
				t.Fatalf("frame %d: progress[%d] fell from %v to %v", i, p, frames[i-1].Progress[p], frames[i].Progress[p])
			}
		}
		if frames[i].Opacity > frames[i-1].Opacity {
			t.Fatalf("frame %d: opacity rose within a cycle", i)
		}
	}
}

func TestSequencerStageOrder(t *testing.T) {
	seq, _ := newTestSequencer(t)
	var stages []Stage
	for _, vs := range Frames(seq, t0, testTiming().Frame, 80) {
		if len(stages) == 0 || stages[len(stages)-1] != vs.Stage {
			stages = append(stages, vs.Stage)
		}
	}
	want := []Stage{StageGrow, StageHold, StageFadeOut, StagePause, StageGrow}
	if len(stages) != len(want) {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Fatalf("stages = %v, want %v", stages, want)
		}
	}
}

func TestSequencerRestart(t *testing.T) {
	seq, _ := newTestSequencer(t)
	vs := Sample(seq, t0, 250*time.Millisecond, testTiming().Frame)
	if vs.Step != 2 {
		t.Fatalf("step = %d, want 2", vs.Step)
	}

	seq.Restart()
	vs = seq.Step(t0.Add(time.Second))
	if vs.Progress != (Progress{}) || vs.Step != 0 || vs.Stage != StageGrow {
		t.Errorf("after restart: progress %v step %d stage %v, want a fresh cycle", vs.Progress, vs.Step, vs.Stage)
	}
	if vs.Round != 0 || vs.Cycle != 0 {
		t.Errorf("restart changed round/cycle to %d/%d", vs.Round, vs.Cycle)
	}
	if vs.Captions[0].Visible {
		t.Error("caption 0 still visible after restart")
	}
}

func TestSequencerOptions(t *testing.T) {
	f := flower.Build(flower.DefaultParams())

	seq := NewSequencer(f, 3, testTiming(), WithStartRound(4))
	if seq.Round() != 1 {
		t.Errorf("WithStartRound(4) of 3 rounds = %d, want 1", seq.Round())
	}

	seq = NewSequencer(f, 0, testTiming())
	vs := Sample(seq, t0, 700*time.Millisecond, testTiming().Frame)
	if vs.Round != 0 || vs.Cycle != 1 {
		t.Errorf("single round: cycle/round = %d/%d, want 1/0", vs.Cycle, vs.Round)
	}

	all := []GrowthStep{{Petals: []int{0, 1, 2, 3, 4}, Caption: 1}}
	seq = NewSequencer(f, 1, testTiming(), WithGrowth(all))
	vs = Sample(seq, t0, 100*time.Millisecond, testTiming().Frame)
	if vs.Stage != StageHold {
		t.Errorf("stage = %v, want hold after the only step", vs.Stage)
	}
	if !vs.Captions[1].Visible || vs.Captions[0].Visible {
		t.Errorf("captions = %+v, want only block 1", vs.Captions)
	}
}

func TestCycleDuration(t *testing.T) {
	if got := testTiming().CycleDuration(len(DefaultGrowth)); got != 650*time.Millisecond {
		t.Errorf("CycleDuration = %v, want 650ms", got)
	}
	if got := DefaultTiming().CycleDuration(4); got != 12400*time.Millisecond {
		t.Errorf("default CycleDuration = %v, want 12.4s", got)
	}
}
