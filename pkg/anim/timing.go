package anim

import "time"

// Timing holds every duration of the cycle.
type Timing struct {
	Petal       time.Duration // growth of one petal
	CaptionFade time.Duration // caption fade-in
	Hold        time.Duration // full flower on screen
	FadeOut     time.Duration // composition fade-out
	Pause       time.Duration // empty screen before the next round
	Recovery    time.Duration // wait before restarting after a failed frame
	Frame       time.Duration // frame interval used by the Player
}

// DefaultTiming returns the tuned durations at roughly 60 frames per second.
func DefaultTiming() Timing {
	return Timing{
		Petal:       2000 * time.Millisecond,
		CaptionFade: 600 * time.Millisecond,
		Hold:        3000 * time.Millisecond,
		FadeOut:     800 * time.Millisecond,
		Pause:       600 * time.Millisecond,
		Recovery:    2000 * time.Millisecond,
		Frame:       time.Second / 60,
	}
}

// CycleDuration is the nominal length of one cycle for the given number of
// growth steps. Actual cycles run slightly longer because every stage ends
// on a frame boundary.
func (t Timing) CycleDuration(steps int) time.Duration {
	return time.Duration(steps)*t.Petal + t.Hold + t.FadeOut + t.Pause
}
