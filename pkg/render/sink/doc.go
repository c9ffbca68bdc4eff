// Package sink renders measured blocks into output formats.
//
// RenderSVG produces a standalone SVG document; the outline's cutout
// contours become visible holes through the even-odd fill rule. RenderJSON
// exports the raw layout and path data for consumers that draw the block
// themselves.
package sink
