// Package caption holds the text shown next to the petal tips.
//
// Captions come in rounds. A [Round] has exactly [BlocksPerRound] blocks of
// one to [MaxLines] lines each; one round is shown per animation cycle and
// rounds cycle in order. [Place] turns a round into positioned lines for the
// current [Profile].
package caption

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/geometry"
)

const (
	// BlocksPerRound is the number of text blocks in every round.
	BlocksPerRound = 3
	// MaxLines is the maximum number of lines in a block.
	MaxLines = 3
)

// Block is one caption block, first line first.
type Block []string

// Round is one set of caption blocks shown together.
type Round [BlocksPerRound]Block

// DefaultRounds is the built-in caption content.
var DefaultRounds = []Round{
	{
		{"גם", "סוגר עסקאות"},
		{"גם", "מכיר את עולם", "התוכן המקצועי"},
		{"וגם", "אחלה בן אדם", "שמבין תרבות סטארטאפ"},
	},
	{
		{"גם", "טכנית ויכולה", "לצלול לפרטים"},
		{"גם", "חיה ונושמת לקוחות"},
		{"וגם", "מדברת ישראלית שוטפת"},
	},
	{
		{"גם", "חושב אסטרטגית", "ומכיר את השוק"},
		{"גם", "אוהב ללכלך את הידיים", "וכבר בנה מאפס"},
		{"וגם", "כיף לשבת איתו לבירה"},
	},
}

// Validate checks that there is at least one round and that every block
// has between one and MaxLines non-empty lines.
func Validate(rounds []Round) error {
	if len(rounds) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "no caption rounds")
	}
	for ri, r := range rounds {
		for bi, b := range r {
			if len(b) == 0 || len(b) > MaxLines {
				return errors.New(errors.ErrCodeInvalidConfig,
					"round %d block %d has %d lines (must be 1-%d)", ri, bi, len(b), MaxLines)
			}
			for li, line := range b {
				if line == "" {
					return errors.New(errors.ErrCodeInvalidConfig, "round %d block %d line %d is empty", ri, bi, li)
				}
			}
		}
	}
	return nil
}

// Direction is a text direction as used by the SVG direction attribute.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// DirectionOf returns RTL when the first strong character of s is
// right-to-left (Hebrew, Arabic, ...) and LTR otherwise.
func DirectionOf(s string) Direction {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		if size == 0 {
			break
		}
		switch p.Class() {
		case bidi.R, bidi.AL:
			return RTL
		case bidi.L:
			return LTR
		}
		s = s[size:]
	}
	return LTR
}

// Anchor places a block relative to a petal tip.
type Anchor struct {
	Petal  int
	DX, DY float64
}

// DefaultAnchors puts block 0 upper right of petal 0, block 1 below right of
// petal 2 and block 2 below left of petal 3.
var DefaultAnchors = [BlocksPerRound]Anchor{
	{Petal: 0, DX: 220, DY: -10},
	{Petal: 2, DX: 178, DY: 40},
	{Petal: 3, DX: -138, DY: 40},
}

// Line is a single positioned caption line. Each line is its own text
// element; mixing lines of one paragraph in a single element lets renderers
// reorder characters across line boundaries.
type Line struct {
	Text      string
	X, Y      float64
	Bold      bool
	Direction Direction
}

// Place positions every line of round. tips are the petal tips the anchors
// refer to.
func Place(round Round, tips []geometry.Point, anchors [BlocksPerRound]Anchor, profile Profile) [BlocksPerRound][]Line {
	var out [BlocksPerRound][]Line
	for bi, block := range round {
		a := anchors[bi]
		tip := tips[a.Petal]
		x, y := tip.X+a.DX, tip.Y+a.DY
		lines := make([]Line, len(block))
		for i, text := range block {
			lines[i] = Line{
				Text:      text,
				X:         x,
				Y:         y + float64(i)*profile.LineHeight,
				Bold:      i == 0,
				Direction: DirectionOf(text),
			}
		}
		out[bi] = lines
	}
	return out
}
