package raster

import (
	"context"
	"errors"
	"image"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

var orange = field.Color{R: 0xFF, G: 0x66, B: 0x00, A: 1}

func TestFillCircle(t *testing.T) {
	s := NewSurface(40, 40)
	s.FillCircle(20, 20, 4, orange)

	c := s.Image().NRGBAAt(20, 20)
	if c.A != 255 || c.R != 0xFF || c.G != 0x66 {
		t.Errorf("centre pixel = %+v, want opaque orange", c)
	}
	if c := s.Image().NRGBAAt(2, 2); c.A != 0 {
		t.Errorf("pixel outside circle = %+v, want transparent", c)
	}
}

func TestGlobalAlphaScalesFill(t *testing.T) {
	s := NewSurface(40, 40)
	s.SetGlobalAlpha(0.5)
	s.FillCircle(20, 20, 4, orange)
	a := s.Image().NRGBAAt(20, 20).A
	if a < 120 || a > 135 {
		t.Errorf("alpha = %d, want about half", a)
	}
}

func TestStrokeLine(t *testing.T) {
	s := NewSurface(40, 20)
	s.StrokeLine(5, 10, 35, 10, 0.5, orange.WithAlpha(0.1))

	if a := s.Image().NRGBAAt(20, 10).A + s.Image().NRGBAAt(20, 9).A; a == 0 {
		t.Error("expected line coverage near y=10")
	}
	if c := s.Image().NRGBAAt(20, 2); c.A != 0 {
		t.Errorf("pixel away from line = %+v, want transparent", c)
	}

	// Degenerate segments draw nothing.
	s.Clear()
	s.StrokeLine(5, 5, 5, 5, 0.5, orange)
	for _, p := range s.Image().Pix {
		if p != 0 {
			t.Fatal("zero-length line left pixels behind")
		}
	}
}

func TestClearAndResize(t *testing.T) {
	s := NewSurface(20, 20)
	s.FillCircle(10, 10, 3, orange)
	s.Clear()
	if c := s.Image().NRGBAAt(10, 10); c.A != 0 {
		t.Errorf("pixel after Clear = %+v", c)
	}
	s.SetSize(64, 32)
	if w, h := s.Size(); w != 64 || h != 32 {
		t.Errorf("Size = %dx%d, want 64x32", w, h)
	}
}

func litOutside(img *image.NRGBA, keep ...image.Rectangle) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
	next:
		for x := b.Min.X; x < b.Max.X; x++ {
			for _, r := range keep {
				if (image.Point{x, y}).In(r) {
					continue next
				}
			}
			if img.NRGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestShapesTouchOnlyTheirBounds(t *testing.T) {
	s := NewSurface(1280, 720)
	s.FillCircle(640.5, 360.5, 2, orange)
	s.StrokeLine(100, 100, 160, 100, 0.5, orange)

	if c := s.Image().NRGBAAt(640, 360); c.A == 0 {
		t.Error("circle not drawn")
	}
	if c := s.Image().NRGBAAt(130, 99); c.A == 0 {
		t.Error("line not drawn")
	}
	circle := image.Rect(638, 358, 643, 363)
	line := image.Rect(100, 99, 160, 101)
	if n := litOutside(s.Image(), circle, line); n != 0 {
		t.Errorf("%d pixels drawn outside the shapes' bounds", n)
	}
}

func TestShapesClippedAtEdges(t *testing.T) {
	s := NewSurface(40, 30)
	s.FillCircle(-1, -1, 4, orange)
	s.FillCircle(39.5, 29.5, 3, orange)
	s.StrokeLine(-50, 15, 10, 15, 1, orange)

	for _, p := range []image.Point{{0, 0}, {39, 29}, {0, 15}, {9, 15}} {
		if c := s.Image().NRGBAAt(p.X, p.Y); c.A == 0 {
			t.Errorf("pixel %v not drawn", p)
		}
	}
	if c := s.Image().NRGBAAt(20, 15); c.A != 0 {
		t.Errorf("line drawn past its end: %+v", c)
	}
}

func TestShapesOffImageAreIgnored(t *testing.T) {
	s := NewSurface(40, 30)
	s.FillCircle(-10, 10, 4, orange)
	s.FillCircle(60, 60, 4, orange)
	s.StrokeLine(-30, -5, -10, -5, 0.5, orange)
	s.StrokeLine(50, 10, 70, 20, 0.5, orange)
	for _, p := range s.Image().Pix {
		if p != 0 {
			t.Fatal("shape outside the image left pixels behind")
		}
	}

	empty := NewSurface(0, 0)
	empty.FillCircle(0, 0, 4, orange)
	empty.StrokeLine(0, 0, 5, 5, 0.5, orange)
}

func testConfig() config.Run {
	cfg := config.Default()
	cfg.Backend = config.BackendHeadless
	cfg.Width, cfg.Height = 400, 300
	cfg.Frames = config.TPS * 2
	return cfg
}

func TestRender(t *testing.T) {
	f := field.New(field.WithRand(rand.New(rand.NewPCG(7, 7))))
	img, err := Render(context.Background(), testConfig(), f)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("image bounds = %v", b)
	}
	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("rendered image has no particles")
	}
	if f.Mounted() {
		t.Error("field still mounted after Render")
	}
}

func TestRenderDefaultSize(t *testing.T) {
	cfg := testConfig()
	cfg.Width, cfg.Height = config.DefaultWidth, config.DefaultHeight
	cfg.Frames = 10
	f := field.New(field.WithRand(rand.New(rand.NewPCG(9, 9))))
	img, err := Render(context.Background(), cfg, f)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != config.DefaultWidth || b.Dy() != config.DefaultHeight {
		t.Fatalf("image bounds = %v", b)
	}
	if got := f.Stats(); got.Frames != 10 || got.Particles != field.Count(config.DefaultWidth) {
		t.Errorf("stats = %+v", got)
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Render(ctx, testConfig(), field.New())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestHeadlessWithoutSurface(t *testing.T) {
	h := NewHeadless(100, 100)
	h.NoSurface = true
	f := field.New()
	f.Mount(h)
	if h.Step() {
		t.Error("frame ran without a surface")
	}
	img := h.Image()
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			t.Fatal("expected a plain black page")
		}
	}
	f.Unmount()
}

func TestHeadlessResize(t *testing.T) {
	h := NewHeadless(800, 600)
	f := field.New(field.WithRand(rand.New(rand.NewPCG(1, 1))))
	f.Mount(h)
	h.Step()
	h.Resize(1600, 900)
	if w, hh := h.surface.Size(); w != 1600 || hh != 900 {
		t.Errorf("surface = %dx%d, want 1600x900", w, hh)
	}
	if got := f.Stats().Particles; got != 40 {
		t.Errorf("particles = %d, want 40 (count fixed at mount)", got)
	}
	h.Step()
	if got := f.Stats().Particles; got != 40 {
		t.Errorf("particles after frame = %d, want 40", got)
	}
}

func TestWritePNG(t *testing.T) {
	h := NewHeadless(32, 16)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, h.Image()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("bounds = %v, want 32x16", b)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	err := WritePNG(filepath.Join(t.TempDir(), "missing", "out.png"), NewHeadless(1, 1).Image())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
