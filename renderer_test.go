package fractal

import (
	"bytes"
	"errors"
	"testing"
)

func testState() State {
	st := DefaultState()
	st.AutoIterations = false
	st.MaxIter = 64
	return st
}

func TestSplitRows_PartitionComplete(t *testing.T) {
	tests := []struct {
		height, workers int
	}{
		{height: 100, workers: 4},
		{height: 37, workers: 4},
		{height: 1, workers: 8},
		{height: 8, workers: 8},
		{height: 5, workers: 16},
		{height: 10, workers: 1},
		{height: 799, workers: 7},
		{height: 3, workers: 0}, // degenerate worker count falls back to 1
	}

	for _, tt := range tests {
		bands := splitRows(tt.height, tt.workers)

		if len(bands) == 0 {
			t.Fatalf("h=%d t=%d: no bands", tt.height, tt.workers)
		}
		if tt.workers >= 1 && len(bands) > tt.workers {
			t.Errorf("h=%d t=%d: %d bands exceed worker count", tt.height, tt.workers, len(bands))
		}

		next := 0
		for i, b := range bands {
			if b.y0 != next {
				t.Fatalf("h=%d t=%d: band %d starts at %d, want %d (gap or overlap)",
					tt.height, tt.workers, i, b.y0, next)
			}
			if b.y1 <= b.y0 {
				t.Fatalf("h=%d t=%d: band %d is empty [%d, %d)", tt.height, tt.workers, i, b.y0, b.y1)
			}
			next = b.y1
		}
		if next != tt.height {
			t.Errorf("h=%d t=%d: bands end at %d, want %d", tt.height, tt.workers, next, tt.height)
		}
	}
}

func TestRender_PreviewAgreesAtBlockCorners(t *testing.T) {
	st := testState()
	r := NewRenderer(WithWorkers(2))
	defer r.Close()

	// 50x35 is deliberately not a multiple of the stride, so edge blocks
	// get clipped.
	const w, h, stride = 50, 35, 12
	full := NewPixmap(w, h)
	prev := NewPixmap(w, h)

	if _, err := r.Render(st, full, false); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(st, prev, true); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cornerX := (x / stride) * stride
			cornerY := (y / stride) * stride

			got := prev.GetPixel(x, y)
			want := full.GetPixel(cornerX, cornerY)
			if got != want {
				t.Fatalf("preview(%d,%d) = %v, want full(%d,%d) = %v",
					x, y, got, cornerX, cornerY, want)
			}
		}
	}
}

func TestRender_WorkerCountInvariance(t *testing.T) {
	st := testState()
	const w, h = 64, 40

	render := func(workers int) []uint8 {
		r := NewRenderer(WithWorkers(workers))
		defer r.Close()
		pm := NewPixmap(w, h)
		if _, err := r.Render(st, pm, false); err != nil {
			t.Fatal(err)
		}
		return pm.Data()
	}

	one := render(1)
	five := render(5)
	if !bytes.Equal(one, five) {
		t.Error("render output depends on worker count")
	}
}

func TestRender_FillsEveryPixel(t *testing.T) {
	st := testState()
	r := NewRenderer(WithWorkers(3))
	defer r.Close()

	for _, preview := range []bool{false, true} {
		pm := NewPixmap(53, 41)
		// Start transparent so untouched pixels are detectable.
		pm.Clear(RGBA{})

		if _, err := r.Render(st, pm, preview); err != nil {
			t.Fatal(err)
		}

		data := pm.Data()
		for i := 3; i < len(data); i += 4 {
			if data[i] != 255 {
				t.Fatalf("preview=%v: pixel %d has alpha %d, buffer not fully written",
					preview, i/4, data[i])
			}
		}
	}
}

func TestRenderInto_SizeMismatch(t *testing.T) {
	st := testState()
	r := NewRenderer(WithWorkers(1))
	defer r.Close()

	pm := NewPixmap(10, 10)
	if _, err := r.RenderInto(st, pm, 10, 20, false); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("got %v, want ErrSizeMismatch", err)
	}
	if _, err := r.RenderInto(st, pm, 10, 10, false); err != nil {
		t.Errorf("matching dimensions should render: %v", err)
	}
}

func TestRender_RejectsDegenerateState(t *testing.T) {
	r := NewRenderer(WithWorkers(1))
	defer r.Close()
	pm := NewPixmap(4, 4)

	st := testState()
	st.ViewportWidth = 0
	if _, err := r.Render(st, pm, false); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("got %v, want ErrInvalidViewport", err)
	}

	st = testState()
	st.MaxIter = 0
	if _, err := r.Render(st, pm, false); !errors.Is(err, ErrInvalidIterations) {
		t.Errorf("got %v, want ErrInvalidIterations", err)
	}
}

func TestRenderHighRes_SameViewport(t *testing.T) {
	st := testState()
	r := NewRenderer(WithWorkers(2))
	defer r.Close()

	const w, h, scale = 20, 20, 2

	full := NewPixmap(w, h)
	if _, err := r.Render(st, full, false); err != nil {
		t.Fatal(err)
	}

	hi, err := r.RenderHighRes(st, w, h, scale)
	if err != nil {
		t.Fatal(err)
	}
	if hi.Width() != w*scale || hi.Height() != h*scale {
		t.Fatalf("high-res buffer is %dx%d, want %dx%d", hi.Width(), hi.Height(), w*scale, h*scale)
	}

	// Every scale-th high-res pixel samples exactly the same plane point
	// as the corresponding display pixel, so the colors must match.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got, want := hi.GetPixel(x*scale, y*scale), full.GetPixel(x, y); got != want {
				t.Fatalf("hi(%d,%d) = %v, want full(%d,%d) = %v", x*scale, y*scale, got, x, y, want)
			}
		}
	}
}

func TestRenderHighRes_InvalidScale(t *testing.T) {
	r := NewRenderer(WithWorkers(1))
	defer r.Close()

	if _, err := r.RenderHighRes(testState(), 10, 10, 0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("got %v, want ErrInvalidScale", err)
	}
}

func TestRenderer_RepeatedRendersAreIndependent(t *testing.T) {
	// Interactive use hammers Render with previews and full renders in
	// quick succession; no state may leak between calls.
	st := testState()
	r := NewRenderer(WithWorkers(4))
	defer r.Close()

	pm := NewPixmap(40, 40)
	if _, err := r.Render(st, pm, false); err != nil {
		t.Fatal(err)
	}
	first := append([]uint8(nil), pm.Data()...)

	for i := 0; i < 5; i++ {
		zoomed := st.ZoomAt(7, 13, 40, 40, 0.5)
		if _, err := r.Render(zoomed, pm, true); err != nil {
			t.Fatal(err)
		}
		if _, err := r.Render(st, pm, false); err != nil {
			t.Fatal(err)
		}
	}

	if !bytes.Equal(first, pm.Data()) {
		t.Error("re-rendering the same state after intervening renders changed the output")
	}
}
