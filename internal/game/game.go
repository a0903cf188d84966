package game

import (
	"errors"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/raster"
)

// Game hosts a particle field in a resizable desktop window. Frame
// callbacks run once per Update, at config.TPS; Draw only composites the
// field layer onto the screen.
type Game struct {
	field.Scheduler

	field  *field.Field
	index  field.LinkIndex
	logger *log.Logger

	width, height int
	layer         *surface
	vignette      *ebiten.Image

	started bool

	// overlay and snapshot state
	showStats bool
	capture   bool
	captured  *image.RGBA
	lastErr   error
}

func New(cfg config.Run, f *field.Field, ix field.LinkIndex, logger *log.Logger) *Game {
	return &Game{
		field:     f,
		index:     ix,
		logger:    logger,
		width:     cfg.Width,
		height:    cfg.Height,
		showStats: cfg.Debug,
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Run, f *field.Field, ix field.LinkIndex, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Particle Field - D: stats, S: snapshot, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	g := New(cfg, f, ix, logger)
	err := ebiten.RunGame(g)
	f.Unmount()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) Viewport() (int, int) { return g.width, g.height }

func (g *Game) Surface() (field.Surface, bool) {
	if g.layer == nil {
		g.layer = newSurface(g.width, g.height)
	}
	return g.layer, true
}

func (g *Game) Update() error {
	g.advance()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showStats = !g.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.capture = true
	}

	if g.captured != nil {
		img := g.captured
		g.captured = nil
		if err := g.saveSnapshot(img); err != nil {
			g.lastErr = err
			g.logger.Printf("snapshot: %v", err)
		}
	}
	return nil
}

// advance mounts the field on the first update and runs the pending
// frame callback.
func (g *Game) advance() {
	if !g.started {
		g.started = true
		g.field.Mount(g)
	}
	g.Tick()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.PageBackground)

	if g.layer != nil {
		fade := field.FadeIn(g.field.Elapsed())
		if g.vignette == nil || g.vignette.Bounds().Dx() != g.layer.w || g.vignette.Bounds().Dy() != g.layer.h {
			if g.vignette != nil {
				g.vignette.Deallocate()
			}
			g.vignette = ebiten.NewImageFromImage(field.Vignette(g.layer.w, g.layer.h))
		}
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(fade))
		screen.DrawImage(g.vignette, op)
		screen.DrawImage(g.layer.img, op)
	}

	if g.capture {
		g.capture = false
		img := image.NewRGBA(screen.Bounds())
		screen.ReadPixels(img.Pix)
		g.captured = img
	}

	if g.showStats {
		status := statusLine(g.field.Stats(), ebiten.ActualFPS(), g.field.Elapsed(), g.index)
		if g.lastErr != nil {
			status += " | Error: " + g.lastErr.Error()
		}
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// Layout tracks the window size. A change is delivered to resize handlers
// before the next frame is drawn.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.NotifyResize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func (g *Game) saveSnapshot(img image.Image) error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("field.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := raster.WritePNG(filename, img); err != nil {
		return err
	}
	g.logger.Printf("snapshot saved to %s", filename)
	return nil
}
