// Package svg writes the flower as SVG documents.
//
// [RenderFrame] draws the animated scene for one [anim.VisualState]: five
// petals clipped by growing circles, the overlap shading, the center marker
// and the caption blocks of the current round. Rendering every state of a
// timeline gives a frame sequence; the document structure is the same for
// every frame so consumers can diff them.
//
// [RenderLogo] draws the static, fully grown flower with heavier veins, and
// [DataURI] packs any document into a data URI suitable for a favicon link.
//
// [anim.VisualState]: github.com/matzehuels/bloom/pkg/anim.VisualState
package svg
