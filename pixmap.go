package fractal

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored row-major, RGBA, 4 bytes per pixel. A pixmap is owned
// by one render call at a time; it persists across renders and is
// overwritten in place.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Writes outside the pixmap
// bounds are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return RGBA{}
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Band returns an exclusive row-range view covering rows [y0, y1).
// Bands are how render workers receive write access: the scheduler hands
// each worker a distinct band, and non-overlapping bands never touch the
// same byte, so concurrent band writes need no synchronization.
//
// Band panics if the range is empty or lies outside the pixmap; handing a
// worker an invalid window is a programming error, not a runtime condition.
func (p *Pixmap) Band(y0, y1 int) Band {
	if y0 < 0 || y1 > p.height || y0 >= y1 {
		panic(fmt.Sprintf("fractal: invalid band rows [%d, %d) for height %d", y0, y1, p.height))
	}
	return Band{pm: p, y0: y0, y1: y1}
}

// Band is a write window onto a contiguous row range of a pixmap.
// Writes outside the window are ignored, so a worker holding a band cannot
// clobber another worker's rows.
type Band struct {
	pm *Pixmap
	y0 int
	y1 int
}

// Width returns the width of the underlying pixmap.
func (b Band) Width() int { return b.pm.width }

// Height returns the height of the underlying pixmap.
func (b Band) Height() int { return b.pm.height }

// MinY returns the first row of the window.
func (b Band) MinY() int { return b.y0 }

// MaxY returns the row one past the end of the window.
func (b Band) MaxY() int { return b.y1 }

// SetPixel sets a pixel within the band's row window. Writes outside the
// window or the pixmap width are ignored.
func (b Band) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= b.pm.width || y < b.y0 || y >= b.y1 {
		return
	}
	i := (y*b.pm.width + x) * 4
	b.pm.data[i+0] = uint8(clamp255(c.R * 255))
	b.pm.data[i+1] = uint8(clamp255(c.G * 255))
	b.pm.data[i+2] = uint8(clamp255(c.B * 255))
	b.pm.data[i+3] = uint8(clamp255(c.A * 255))
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
