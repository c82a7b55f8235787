// Package anim sequences the flower's reveal, hold and fade animation.
//
// # Model
//
// A [Sequencer] is a state machine polled once per frame. Each call to
// [Sequencer.Step] advances it to the given time and returns an immutable
// [VisualState]: petal progress, the clip radii and overlap visibility
// derived from it, caption fades and the composition opacity. Nothing is
// rendered here; surfaces consume the state and the [Diff] against the
// previous frame.
//
// One cycle runs these stages strictly in order:
//
//  1. Reset: progress to 0, captions hidden at once, opacity back to 1
//  2. Grow: petal 0, caption 0, petal 2, caption 1, petal 3, caption 2,
//     then petals 1 and 4 together
//  3. Hold
//  4. Fade out with an ease-in-out curve
//  5. Pause
//  6. Advance to the next caption round and start over
//
// Petals 1 and 4 grow in the same frames against the shared progress
// vector, so they always finish on the same frame.
//
// # Playback
//
// A [Player] drives a Sequencer from a frame ticker and hands each state to
// a [Surface]. When a frame fails (an error from the surface or a panic),
// the player waits [Timing.Recovery] and restarts the cycle from Reset.
//
//	seq := anim.NewSequencer(flower.Build(flower.DefaultParams()), len(caption.DefaultRounds), anim.DefaultTiming())
//	p := anim.NewPlayer(seq, surface, logger)
//	err := p.Run(ctx) // returns only when ctx is done
package anim
