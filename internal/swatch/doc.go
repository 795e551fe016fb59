// Package swatch renders a pair of CIE L*a*b* colors as a side-by-side PNG.
//
// The reference color fills the left half and the sample the right half, so a
// reviewer can judge by eye what a ∆E value means. An optional divider bar and
// a numeric label (typically the ∆E value) can be drawn on top.
//
// # Display Conversion
//
// Colors are converted from L*a*b* (D65) to sRGB for display only. Colors that
// fall outside the sRGB gamut are clamped and reported through the
// ReferenceInGamut and SampleInGamut flags, since the rendered patch then no
// longer shows the exact color that was measured.
//
// # Output
//
// Images are returned as base64-encoded PNG data with their MIME type, the same
// shape the MCP server uses for every image-producing tool.
package swatch
