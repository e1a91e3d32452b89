package fractal

// Palette is an ordered, non-empty sequence of colors treated as a cyclic
// ramp: entry n and entry (n+1) mod len are always valid interpolation
// endpoints. Palettes are read-only; do not mutate the built-in set.
type Palette []RGBA

// At returns the palette entry at index i, wrapping cyclically.
// Negative indices wrap to the end of the ramp.
func (p Palette) At(i int) RGBA {
	n := len(p)
	i %= n
	if i < 0 {
		i += n
	}
	return p[i]
}

// Built-in palettes.
var (
	// ClassicBlueGold is the classic Mandelbrot blue-to-gold ramp.
	ClassicBlueGold = Palette{
		RGB8(66, 30, 15), RGB8(25, 7, 26), RGB8(9, 1, 47),
		RGB8(4, 4, 73), RGB8(0, 7, 100), RGB8(12, 44, 138),
		RGB8(24, 82, 177), RGB8(57, 125, 209), RGB8(134, 181, 229),
		RGB8(211, 236, 248), RGB8(241, 233, 191), RGB8(248, 201, 95),
		RGB8(255, 170, 0), RGB8(204, 128, 0), RGB8(153, 87, 0),
	}

	// Fire ramps from black through reds and oranges to white.
	Fire = Palette{
		RGB8(0, 0, 0), RGB8(20, 0, 0), RGB8(40, 0, 0),
		RGB8(80, 0, 0), RGB8(120, 20, 0), RGB8(160, 40, 0),
		RGB8(200, 80, 0), RGB8(240, 120, 0), RGB8(255, 160, 0),
		RGB8(255, 200, 0), RGB8(255, 240, 40), RGB8(255, 255, 100),
		RGB8(255, 255, 170), RGB8(255, 255, 220), RGB8(255, 255, 255),
	}

	// Grayscale ramps linearly from black to white.
	Grayscale = Palette{
		RGB8(0, 0, 0), RGB8(32, 32, 32), RGB8(64, 64, 64),
		RGB8(96, 96, 96), RGB8(128, 128, 128), RGB8(160, 160, 160),
		RGB8(192, 192, 192), RGB8(224, 224, 224), RGB8(255, 255, 255),
	}

	// OceanDepths ramps from near-black navy to pale cyan.
	OceanDepths = Palette{
		RGB8(3, 13, 30), RGB8(6, 26, 48), RGB8(9, 38, 67),
		RGB8(17, 55, 92), RGB8(25, 71, 116), RGB8(33, 88, 140),
		RGB8(41, 105, 165), RGB8(50, 138, 193), RGB8(64, 174, 224),
		RGB8(110, 197, 233), RGB8(158, 218, 241), RGB8(198, 236, 248),
		RGB8(214, 249, 255), RGB8(225, 252, 255), RGB8(240, 255, 255),
	}

	// Arctic ramps from deep night blue to white.
	Arctic = Palette{
		RGB8(15, 20, 40), RGB8(20, 30, 65), RGB8(30, 40, 90),
		RGB8(40, 60, 120), RGB8(65, 90, 150), RGB8(95, 130, 180),
		RGB8(135, 175, 205), RGB8(175, 205, 225), RGB8(200, 225, 240),
		RGB8(220, 235, 245), RGB8(230, 243, 250), RGB8(240, 250, 253),
		RGB8(245, 253, 255), RGB8(250, 255, 255), RGB8(255, 255, 255),
	}
)

// Palettes is the fixed, read-only palette set, selected by [State.PaletteIndex].
var Palettes = []Palette{ClassicBlueGold, Fire, Grayscale, OceanDepths, Arctic}

// PaletteNames holds display names for the entries of Palettes, index-aligned.
var PaletteNames = []string{"classic", "fire", "grayscale", "ocean", "arctic"}

// PaletteAt returns the palette selected by index, reducing the index modulo
// the palette-set size first. Any integer is a valid selector.
func PaletteAt(index int) Palette {
	n := len(Palettes)
	index %= n
	if index < 0 {
		index += n
	}
	return Palettes[index]
}
