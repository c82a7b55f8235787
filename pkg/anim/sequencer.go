package anim

import (
	"time"

	"github.com/matzehuels/bloom/pkg/caption"
	"github.com/matzehuels/bloom/pkg/flower"
)

// GrowthStep grows Petals together and then reveals caption block Caption
// (-1 for none).
type GrowthStep struct {
	Petals  []int
	Caption int
}

// DefaultGrowth is the growth order: three single petals, each followed by
// its caption, then the last two petals together.
var DefaultGrowth = []GrowthStep{
	{Petals: []int{0}, Caption: 0},
	{Petals: []int{2}, Caption: 1},
	{Petals: []int{3}, Caption: 2},
	{Petals: []int{1, 4}, Caption: -1},
}

// maxTransitions bounds the stage changes handled in one Step so that
// zero-length stages cannot spin forever.
const maxTransitions = 16

type captionTrack struct {
	shown bool
	at    time.Time
}

// Sequencer is the cycle state machine. It is not safe for concurrent use;
// exactly one goroutine polls it.
type Sequencer struct {
	extents [flower.NumPetals]float64
	pairs   [flower.NumPetals][2]int
	timing  Timing
	growth  []GrowthStep
	rounds  int

	started    bool
	round      int
	cycle      int
	stage      Stage
	step       int
	stageStart time.Time
	progress   Progress
	captions   [caption.BlocksPerRound]captionTrack
	opacity    float64
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithGrowth replaces DefaultGrowth.
func WithGrowth(steps []GrowthStep) Option {
	return func(s *Sequencer) { s.growth = steps }
}

// WithStartRound starts on the given caption round.
func WithStartRound(round int) Option {
	return func(s *Sequencer) { s.round = round }
}

// NewSequencer creates a sequencer over the precomputed geometry of f,
// cycling through rounds caption rounds.
func NewSequencer(f *flower.Flower, rounds int, timing Timing, opts ...Option) *Sequencer {
	s := &Sequencer{
		extents: f.Extents(),
		pairs:   OverlapPairs(f),
		timing:  timing,
		growth:  DefaultGrowth,
		rounds:  max(rounds, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.round = ((s.round % s.rounds) + s.rounds) % s.rounds
	return s
}

// Round returns the current caption round.
func (s *Sequencer) Round() int { return s.round }

// Cycles returns the number of completed cycles.
func (s *Sequencer) Cycles() int { return s.cycle }

// Restart abandons the current cycle. The next Step resets at its own
// time and grows from scratch on the same round.
func (s *Sequencer) Restart() {
	s.started = false
}

// Step advances the sequence to now and returns the resulting frame. Times
// passed to successive calls must not decrease.
func (s *Sequencer) Step(now time.Time) VisualState {
	if !s.started {
		s.started = true
		s.reset(now)
	}
	for i := 0; i < maxTransitions; i++ {
		if !s.advance(now) {
			break
		}
	}
	return s.snapshot(now)
}

func (s *Sequencer) reset(now time.Time) {
	s.progress = Progress{}
	s.captions = [caption.BlocksPerRound]captionTrack{}
	s.opacity = 1
	s.enter(StageGrow, now)
	s.step = 0
}

func (s *Sequencer) enter(stage Stage, now time.Time) {
	s.stage = stage
	s.stageStart = now
}

// advance applies the current stage at now. It reports whether the stage
// finished, in which case the next stage must be evaluated at the same time.
func (s *Sequencer) advance(now time.Time) bool {
	elapsed := float64(now.Sub(s.stageStart))

	switch s.stage {
	case StageGrow:
		if s.step >= len(s.growth) {
			s.enter(StageHold, now)
			return true
		}
		st := s.growth[s.step]
		t := fraction(elapsed, float64(s.timing.Petal))
		v := EaseOutQuad(t)
		for _, p := range st.Petals {
			if v > s.progress[p] {
				s.progress[p] = v
			}
		}
		if t < 1 {
			return false
		}
		for _, p := range st.Petals {
			s.progress[p] = 1
		}
		if st.Caption >= 0 && st.Caption < len(s.captions) {
			s.captions[st.Caption] = captionTrack{shown: true, at: now}
		}
		s.step++
		s.stageStart = now
		return true

	case StageHold:
		if elapsed < float64(s.timing.Hold) {
			return false
		}
		s.enter(StageFadeOut, now)
		return true

	case StageFadeOut:
		t := fraction(elapsed, float64(s.timing.FadeOut))
		s.opacity = 1 - EaseInOutQuad(t)
		if t < 1 {
			return false
		}
		s.opacity = 0
		s.enter(StagePause, now)
		return true

	case StagePause:
		if elapsed < float64(s.timing.Pause) {
			return false
		}
		s.round = (s.round + 1) % s.rounds
		s.cycle++
		s.reset(now)
		return true
	}
	return false
}

func (s *Sequencer) snapshot(now time.Time) VisualState {
	vs := VisualState{
		Cycle:    s.cycle,
		Round:    s.round,
		Stage:    s.stage,
		Step:     s.step,
		Progress: s.progress,
		Opacity:  s.opacity,
	}
	vs.Derive(s.extents, s.pairs)
	for i, c := range s.captions {
		if !c.shown {
			continue
		}
		t := fraction(float64(now.Sub(c.at)), float64(s.timing.CaptionFade))
		vs.Captions[i] = CaptionState{Visible: true, Opacity: Ease(t)}
	}
	return vs
}

// Sample runs a fresh sequencer from start, one frame at a time, and
// returns the state at start+offset. Stepping frame by frame matters:
// stage boundaries fall on frames, exactly as in live playback.
func Sample(s *Sequencer, start time.Time, offset, frame time.Duration) VisualState {
	if frame <= 0 {
		frame = DefaultTiming().Frame
	}
	var vs VisualState
	for at := time.Duration(0); ; at += frame {
		if at > offset {
			at = offset
		}
		vs = s.Step(start.Add(at))
		if at >= offset {
			return vs
		}
	}
}

// Frames steps s from start n times at the given frame interval and returns
// every state.
func Frames(s *Sequencer, start time.Time, frame time.Duration, n int) []VisualState {
	out := make([]VisualState, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.Step(start.Add(time.Duration(i)*frame)))
	}
	return out
}
