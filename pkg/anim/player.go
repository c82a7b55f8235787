package anim

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/observability"
)

// Surface receives every frame. Apply gets the complete state plus the
// changes since the previously applied state.
type Surface interface {
	Apply(ctx context.Context, state VisualState, changes Changes) error
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(ctx context.Context, state VisualState, changes Changes) error

// Apply calls f.
func (f SurfaceFunc) Apply(ctx context.Context, state VisualState, changes Changes) error {
	return f(ctx, state, changes)
}

// Player drives a Sequencer in real time.
type Player struct {
	seq     *Sequencer
	surface Surface
	logger  *log.Logger
	clock   Clock

	cycleStart time.Time
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithClock replaces the system clock.
func WithClock(c Clock) PlayerOption {
	return func(p *Player) { p.clock = c }
}

// NewPlayer creates a player. A nil logger uses log.Default().
func NewPlayer(seq *Sequencer, surface Surface, logger *log.Logger, opts ...PlayerOption) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{seq: seq, surface: surface, logger: logger, clock: SystemClock{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run plays frames until ctx is done and then returns ctx.Err(). A failed
// frame never stops playback: the player waits Timing.Recovery and restarts
// the cycle from Reset.
func (p *Player) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.seq.timing.Frame)
	defer ticker.Stop()

	var prev *VisualState
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C():
			state, err := p.frame(ctx, now, prev)
			if err != nil {
				if err := p.restartAfter(ctx, err); err != nil {
					return err
				}
				prev = nil
				continue
			}
			p.notify(ctx, now, prev, state)
			prev = &state
		}
	}
}

func (p *Player) frame(ctx context.Context, now time.Time, prev *VisualState) (state VisualState, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.FromPanic(r)
		}
	}()
	state = p.seq.Step(now)
	if err := p.surface.Apply(ctx, state, Diff(prev, state)); err != nil {
		return state, errors.Wrap(errors.ErrCodeRender, err, "apply frame")
	}
	return state, nil
}

func (p *Player) restartAfter(ctx context.Context, cause error) error {
	delay := p.seq.timing.Recovery
	p.logger.Warn("Frame failed, restarting cycle", "err", cause, "round", p.seq.Round(), "delay", delay)
	observability.Animation().OnRecover(ctx, cause, delay)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.clock.After(delay):
	}
	p.seq.Restart()
	return nil
}

func (p *Player) notify(ctx context.Context, now time.Time, prev *VisualState, state VisualState) {
	hooks := observability.Animation()
	if prev != nil && prev.Cycle != state.Cycle {
		d := now.Sub(p.cycleStart)
		p.logger.Debug("Cycle complete", "round", prev.Round, "duration", d.Round(time.Millisecond))
		hooks.OnCycleComplete(ctx, prev.Round, d)
	}
	if prev == nil || prev.Cycle != state.Cycle {
		p.cycleStart = now
		hooks.OnCycleStart(ctx, state.Round)
		return
	}
	if prev.Stage != state.Stage {
		hooks.OnStageEnter(ctx, state.Stage.String())
	}
}
