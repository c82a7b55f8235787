// Package pkg provides the libraries behind bloom, the five-petal flower
// animation.
//
// # Overview
//
// The flower is built from five equal circles arranged on a ring. Each pair
// of neighbouring circles intersects in a lens, the petal; each triple of
// neighbours shares a smaller region that is drawn darker. The pkg
// directory is organized in layers:
//
//  1. [geometry] - points, circle intersections, lens and triple-overlap paths
//  2. [flower] - the static shape: petals, veins, extents, tips, overlaps
//  3. [caption] - caption rounds, layout profiles and text direction
//  4. [anim] - easing, the cycle sequencer and the frame player
//  5. [render] - SVG frames and logos, PNG favicons
//
// Supporting packages: [config] (TOML settings), [cache] (rendered frame
// reuse), [errors] (coded errors), [observability] (hooks) and [buildinfo].
//
// # Data Flow
//
//	config.Config
//	     ↓
//	flower.Build  → static geometry, built once
//	     ↓
//	anim.Sequencer.Step(now) → anim.VisualState, once per frame
//	     ↓
//	svg.RenderFrame / anim.Player surface
//
// # Quick Start
//
//	f := flower.Build(flower.DefaultParams())
//	seq := anim.NewSequencer(f, len(caption.DefaultRounds), anim.DefaultTiming())
//	state := anim.Sample(seq, start, 9*time.Second, 0)
//	doc := svg.RenderFrame(f, state)
//
// [geometry]: github.com/matzehuels/bloom/pkg/geometry
// [flower]: github.com/matzehuels/bloom/pkg/flower
// [caption]: github.com/matzehuels/bloom/pkg/caption
// [anim]: github.com/matzehuels/bloom/pkg/anim
// [render]: github.com/matzehuels/bloom/pkg/render
// [config]: github.com/matzehuels/bloom/pkg/config
// [cache]: github.com/matzehuels/bloom/pkg/cache
// [errors]: github.com/matzehuels/bloom/pkg/errors
// [observability]: github.com/matzehuels/bloom/pkg/observability
// [buildinfo]: github.com/matzehuels/bloom/pkg/buildinfo
package pkg
