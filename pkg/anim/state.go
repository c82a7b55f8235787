package anim

import (
	"github.com/matzehuels/bloom/pkg/caption"
	"github.com/matzehuels/bloom/pkg/flower"
)

// OverlapThreshold is the progress both petals of a pair must exceed before
// their overlap shading appears.
const OverlapThreshold = 0.05

// Stage is a timed stage of the cycle. Reset and round advance happen
// between frames and have no stage of their own.
type Stage int

const (
	StageGrow Stage = iota
	StageHold
	StageFadeOut
	StagePause
)

func (s Stage) String() string {
	switch s {
	case StageGrow:
		return "grow"
	case StageHold:
		return "hold"
	case StageFadeOut:
		return "fade-out"
	case StagePause:
		return "pause"
	}
	return "unknown"
}

// Progress is the growth fraction of each petal, in [0,1].
type Progress [flower.NumPetals]float64

// OverlapState is the visibility of one overlap region.
type OverlapState struct {
	Petals  [2]int
	Opacity float64 // 0 or 1
	Radius  float64 // reveal clip radius
}

// CaptionState is the visibility of one caption block.
type CaptionState struct {
	Visible bool    // reveal has been triggered this cycle
	Opacity float64 // current point of the fade
}

// VisualState is everything a surface needs to draw one frame. It is a
// value: the sequencer never mutates a state it has returned.
type VisualState struct {
	Cycle    int // completed cycles
	Round    int // caption round on screen
	Stage    Stage
	Step     int // growth step within StageGrow
	Progress Progress

	Radii         [flower.NumPetals]float64
	Overlaps      [flower.NumPetals]OverlapState
	CenterVisible bool
	Captions      [caption.BlocksPerRound]CaptionState
	Opacity       float64 // whole composition
}

// Derive fills the clip radii, overlap states and center marker of s from
// its progress vector. extents are the fully grown clip radii and pairs the
// petal pairs of each overlap region.
func (s *VisualState) Derive(extents [flower.NumPetals]float64, pairs [flower.NumPetals][2]int) {
	anyGrown := false
	for i, p := range s.Progress {
		s.Radii[i] = extents[i] * p
		if p > 0 {
			anyGrown = true
		}
	}
	for i, pair := range pairs {
		a, b := pair[0], pair[1]
		o := OverlapState{Petals: pair}
		if s.Progress[a] > OverlapThreshold && s.Progress[b] > OverlapThreshold {
			o.Opacity = 1
			o.Radius = min(s.Radii[a], s.Radii[b])
		}
		s.Overlaps[i] = o
	}
	s.CenterVisible = anyGrown
}

// Changes lists what differs between two consecutive states.
type Changes struct {
	Petals   []int // clip radius changed
	Overlaps []int // opacity or radius changed
	Captions []int // visibility or opacity changed
	Center   bool
	Opacity  bool
	Round    bool // caption text must be replaced
}

// Empty reports whether nothing changed.
func (c Changes) Empty() bool {
	return len(c.Petals) == 0 && len(c.Overlaps) == 0 && len(c.Captions) == 0 &&
		!c.Center && !c.Opacity && !c.Round
}

// Diff compares prev with next. A nil prev means everything changed.
func Diff(prev *VisualState, next VisualState) Changes {
	var c Changes
	if prev == nil {
		for i := range next.Radii {
			c.Petals = append(c.Petals, i)
		}
		for i := range next.Overlaps {
			c.Overlaps = append(c.Overlaps, i)
		}
		for i := range next.Captions {
			c.Captions = append(c.Captions, i)
		}
		c.Center, c.Opacity, c.Round = true, true, true
		return c
	}
	for i := range next.Radii {
		if prev.Radii[i] != next.Radii[i] {
			c.Petals = append(c.Petals, i)
		}
	}
	for i := range next.Overlaps {
		if prev.Overlaps[i] != next.Overlaps[i] {
			c.Overlaps = append(c.Overlaps, i)
		}
	}
	for i := range next.Captions {
		if prev.Captions[i] != next.Captions[i] {
			c.Captions = append(c.Captions, i)
		}
	}
	c.Center = prev.CenterVisible != next.CenterVisible
	c.Opacity = prev.Opacity != next.Opacity
	c.Round = prev.Round != next.Round
	return c
}

// OverlapPairs returns the petal pairs of f's overlap regions.
func OverlapPairs(f *flower.Flower) [flower.NumPetals][2]int {
	var pairs [flower.NumPetals][2]int
	for i, o := range f.Overlaps {
		pairs[i] = o.Petals
	}
	return pairs
}
