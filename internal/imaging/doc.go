// Package imaging applies the colorspace conversions to raster images.
//
// It samples pixel colors, extracts dominant colors, lightens or darkens
// whole images in HSL space, and renders color swatches with readable
// labels. Images are standard Go image.Image values; coordinates are
// 0-based with (0,0) at the top-left corner.
//
// # Regions
//
// A Region's (X1,Y1) corner is inclusive and its (X2,Y2) corner is
// exclusive, so Width = X2 - X1 and Height = Y2 - Y1.
//
// # Color Representation
//
// Sampled colors are returned as colorspace.Description values, which carry
// the hex form "#RRGGBBAA", the 8-bit channels, and the normalized RGBA,
// HSLA and HSBA views. Hue is normalized to 0-1 with a separate degree
// field.
//
// # Generated Images
//
// Operations that produce an image (AdjustLightness, RenderSwatch,
// RenderLabel) return an ImageResult holding a base64-encoded PNG.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless
// and do not modify their input images.
package imaging
