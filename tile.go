package fractal

// renderBand fills one row band at full resolution: every pixel in the
// band is sampled and colored individually. Bands carry absolute row
// coordinates, so the pixel-to-plane mapping is the same no matter how the
// buffer was partitioned.
func renderBand(st State, band Band, pal Palette) {
	w := band.Width()
	pixelSize := st.ViewportWidth / float64(w)
	halfSize := st.ViewportWidth / 2

	for y := band.MinY(); y < band.MaxY(); y++ {
		ci := st.CenterY - halfSize + float64(y)*pixelSize

		for x := 0; x < w; x++ {
			cr := st.CenterX - halfSize + float64(x)*pixelSize
			res := Sample(cr, ci, st)
			band.SetPixel(x, y, ColorOf(res, st, pal))
		}
	}
}

// renderPreviewBand fills the band on a coarse block grid: only the
// top-left pixel of each stride-by-stride block is sampled, and its color
// is replicated across the block, clipped at the buffer edges. The cost
// drops by roughly stride squared, which is what makes previews cheap
// enough to run on every input event.
func renderPreviewBand(st State, band Band, stride int, pal Palette) {
	w := band.Width()
	pixelSize := st.ViewportWidth / float64(w)
	halfSize := st.ViewportWidth / 2

	for y := band.MinY(); y < band.MaxY(); y += stride {
		ci := st.CenterY - halfSize + float64(y)*pixelSize

		for x := 0; x < w; x += stride {
			cr := st.CenterX - halfSize + float64(x)*pixelSize
			res := Sample(cr, ci, st)
			c := ColorOf(res, st, pal)

			for by := 0; by < stride && y+by < band.MaxY(); by++ {
				for bx := 0; bx < stride && x+bx < w; bx++ {
					band.SetPixel(x+bx, y+by, c)
				}
			}
		}
	}
}
