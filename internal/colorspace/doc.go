// Package colorspace converts colors between packed hex encodings and the
// RGB, HSL and HSB color models, and derives lighter, darker and contrast
// ("primary") colors from an existing color.
//
// RGBA is the canonical representation. HSLA and HSBA are views that are
// recomputed from RGBA on every call; none of the types cache or mutate
// anything, so every function and method in this package is safe for
// concurrent use.
//
// # Value Ranges
//
// All float components are normalized:
//   - R, G, B, A: 0.0 to 1.0
//   - H: 0.0 to 1.0 (degrees / 360), 1.0 wraps to 0.0
//   - S, L, B (brightness): 0.0 to 1.0
//
// # Hex Parsing
//
// Two parsers are provided. ParseHexStrict reports malformed input with
// ErrInvalidColorFormat. ParseHex is the permissive variant and maps any
// malformed input to PackedColor(0), which is transparent black.
//
//	p, err := colorspace.ParseHexStrict("#C1D2EB")
//	if err != nil {
//	    return err
//	}
//	bg := p.RGBA()
//	fg := bg.Primary(1.0) // readable text color on bg
package colorspace
