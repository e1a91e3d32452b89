package fractal

import "math"

// InteriorColor is the fixed color for points classified as interior.
var InteriorColor = Black

// ColorOf converts a sample result into a color using the given palette.
//
// Interior points map to [InteriorColor]. Escaped points map a real-valued
// color position onto the palette treated as a cyclic ramp: the integer
// part selects the entry, the fractional part interpolates toward the next
// entry. With stripe coloring on, the position is the intensity-scaled
// stripe average; otherwise it is the smooth iteration value scaled by the
// color density.
//
// For any finite position the lookup stays in range; the index is reduced
// with a floored modulo, so the function never reads outside the palette.
func ColorOf(res Result, st State, pal Palette) RGBA {
	if !res.Escaped {
		return InteriorColor
	}

	var pos float64
	if st.Stripes && res.Iterations > 0 {
		pos = st.StripeIntensity * (res.StripeSum / float64(res.Iterations))
	} else {
		pos = res.Smooth * st.ColorDensity
	}

	base := math.Floor(pos)
	frac := pos - base

	n := len(pal)
	idx := int(base) % n
	if idx < 0 {
		idx += n
	}
	return pal[idx].Lerp(pal[(idx+1)%n], frac)
}
