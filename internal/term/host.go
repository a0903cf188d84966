// Package term runs the particle field in a terminal.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

// Host drives a field on a tcell screen. The viewport is the screen size
// in virtual pixels.
type Host struct {
	field.Scheduler

	screen  tcell.Screen
	surface *surface
}

// New wraps an initialized screen. A nil screen yields a host without a
// drawing surface.
func New(screen tcell.Screen) *Host {
	h := &Host{screen: screen}
	if screen != nil {
		h.surface = &surface{screen: screen, alpha: 1}
	}
	return h
}

func (h *Host) Viewport() (int, int) {
	if h.screen == nil {
		return 0, 0
	}
	cols, rows := h.screen.Size()
	return cols * config.TerminalCellWidth, rows * config.TerminalCellHeight
}

func (h *Host) Surface() (field.Surface, bool) {
	if h.surface == nil {
		return nil, false
	}
	return h.surface, true
}

// Step runs the pending frame and shows it.
func (h *Host) Step() bool {
	if !h.Tick() {
		return false
	}
	h.screen.Show()
	return true
}

// handle processes one terminal event and reports whether to keep running.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.NotifyResize(cols*config.TerminalCellWidth, rows*config.TerminalCellHeight)
		h.screen.Sync()
	}
	return true
}

// Run mounts f and animates it until ctx is done, the user quits, or the
// screen stops delivering events.
func (h *Host) Run(ctx context.Context, f *field.Field) error {
	if h.screen == nil {
		return nil
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	f.Mount(h)
	defer f.Unmount()

	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.Step()
		}
	}
}

// RunScreen opens the terminal, runs the field and restores the terminal.
func RunScreen(ctx context.Context, f *field.Field) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()

	return New(screen).Run(ctx, f)
}
