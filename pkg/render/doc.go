// Package render holds what the output formats share: the colour palette,
// stroke widths and the caption font.
//
// # Formats
//
// The [svg] subpackage writes the animated scene one frame at a time, the
// static logo and the favicon data URI. The [raster] subpackage fills the
// same logo geometry into a PNG for hosts that cannot show SVG icons.
//
//	f := flower.Build(flower.DefaultParams())
//	frame := svg.RenderFrame(f, state, svg.WithProfile(caption.Standard))
//	logo := svg.RenderLogo(f)
//	png, err := raster.RenderLogoPNG(f, 64)
//
// [svg]: github.com/matzehuels/bloom/pkg/render/svg
// [raster]: github.com/matzehuels/bloom/pkg/render/raster
package render
