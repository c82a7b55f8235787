package caption

import "github.com/matzehuels/bloom/pkg/errors"

// DefaultBreakpoint is the viewport width below which the compact profile
// is used.
const DefaultBreakpoint = 768

// Profile is a caption text layout.
type Profile struct {
	Name       string
	LineHeight float64
	FontSize   float64
}

var (
	// Compact is used on narrow (mobile) viewports. Its larger text stays
	// legible once the whole scene is scaled down.
	Compact = Profile{Name: "compact", LineHeight: 40, FontSize: 34}
	// Standard is used on desktop viewports.
	Standard = Profile{Name: "standard", LineHeight: 32, FontSize: 28}
)

// ProfileFor picks the profile for a viewport width. It is meant to be
// called once at startup.
func ProfileFor(viewportWidth, breakpoint int) Profile {
	if viewportWidth < breakpoint {
		return Compact
	}
	return Standard
}

// ProfileByName resolves "compact" or "standard".
func ProfileByName(name string) (Profile, error) {
	switch name {
	case Compact.Name:
		return Compact, nil
	case Standard.Name:
		return Standard, nil
	}
	return Profile{}, errors.New(errors.ErrCodeInvalidProfile, "unknown profile %q (must be 'compact' or 'standard')", name)
}
