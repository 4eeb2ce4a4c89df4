package game

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Background paints the cached gradient backdrop with faint circuit
// traces and an optional CRT overlay. The cache rebuilds only on
// resize.
type Background struct {
	Theme *CircuitTheme
	CRT   bool

	cached *ebiten.Image
	w, h   int
	seed   int64
}

// NewBackground creates the backdrop painter.
func NewBackground(theme *CircuitTheme) *Background {
	return &Background{Theme: theme, seed: rand.Int63()}
}

// Draw paints the backdrop, rebuilding the cache when the screen size
// changed.
func (bg *Background) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	if bg.cached == nil || bg.w != w || bg.h != h {
		bg.w, bg.h = w, h
		bg.cached = ebiten.NewImage(w, h)
		bg.render()
	}
	screen.DrawImage(bg.cached, nil)
}

// DrawCRT lays the scanline and vignette overlay on top of the whole
// frame; the app calls it after every widget has drawn.
func (bg *Background) DrawCRT(screen *ebiten.Image) {
	if !bg.CRT {
		return
	}
	bg.drawCRT(screen, screen.Bounds().Dx(), screen.Bounds().Dy())
}

func (bg *Background) render() {
	w, h := bg.w, bg.h
	top := bg.Theme.Background
	bottom := color.NRGBA{top.R / 2, top.G / 2, uint8(float64(top.B) * 0.8), 255}

	steps := h / 4
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		col := lerpColor(top, bottom, t)
		y := i * h / steps
		vector.DrawFilledRect(bg.cached, 0, float32(y), float32(w), float32(h/steps+1), col, true)
	}

	// Faint circuit traces, deterministic per seed so resizing
	// doesn't reshuffle the board.
	rng := rand.New(rand.NewSource(bg.seed))
	trace := bg.Theme.Primary
	trace.A = 16
	for i := 0; i < 14; i++ {
		x := float32(rng.Intn(w))
		y := float32(rng.Intn(h))
		length := float32(60 + rng.Intn(180))
		if rng.Intn(2) == 0 {
			vector.StrokeLine(bg.cached, x, y, x+length, y, 1, trace, true)
			vector.StrokeLine(bg.cached, x+length, y, x+length, y+length/2, 1, trace, true)
		} else {
			vector.StrokeLine(bg.cached, x, y, x, y+length, 1, trace, true)
			vector.StrokeLine(bg.cached, x, y+length, x+length/2, y+length, 1, trace, true)
		}
		vector.DrawFilledCircle(bg.cached, x, y, 2, trace, true)
	}
}

// drawCRT lays scanlines and a corner vignette over the frame.
func (bg *Background) drawCRT(screen *ebiten.Image, w, h int) {
	line := color.NRGBA{0, 0, 0, 28}
	for y := 0; y < h; y += 3 {
		vector.DrawFilledRect(screen, 0, float32(y), float32(w), 1, line, true)
	}
	vig := color.NRGBA{0, 0, 0, 60}
	edge := 48
	for i := 0; i < edge; i += 4 {
		a := uint8(int(vig.A) * (edge - i) / edge)
		c := color.NRGBA{0, 0, 0, a}
		vector.StrokeRect(screen, float32(i), float32(i), float32(w-2*i), float32(h-2*i), 4, c, true)
	}
}

// Invalidate forces a cache rebuild, used when the theme changes.
func (bg *Background) Invalidate() {
	bg.cached = nil
}
