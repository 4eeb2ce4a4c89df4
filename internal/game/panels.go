package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const scrollbarWidth = 8

// ScrollablePanel clips and scrolls content taller than its viewport.
// Scrolling works by wheel, by dragging the thumb and by clicking the
// track above or below it.
type ScrollablePanel struct {
	X, Y          int
	Width, Height int
	ContentHeight int
	Scroll        float64
	Theme         *CircuitTheme

	dragging   bool
	dragOffset float64
}

// NewScrollablePanel creates a panel at the given bounds.
func NewScrollablePanel(x, y, w, h int, theme *CircuitTheme) *ScrollablePanel {
	return &ScrollablePanel{X: x, Y: y, Width: w, Height: h, Theme: theme}
}

// SetBounds repositions the panel, re-clamping the scroll.
func (p *ScrollablePanel) SetBounds(x, y, w, h int) {
	p.X, p.Y, p.Width, p.Height = x, y, w, h
	p.clamp()
}

// SetContentHeight declares the total content height, re-clamping.
func (p *ScrollablePanel) SetContentHeight(h int) {
	p.ContentHeight = h
	p.clamp()
}

// MaxScroll is how far the content can scroll up.
func (p *ScrollablePanel) MaxScroll() float64 {
	m := float64(p.ContentHeight - p.Height)
	if m < 0 {
		return 0
	}
	return m
}

func (p *ScrollablePanel) clamp() {
	if p.Scroll < 0 {
		p.Scroll = 0
	}
	if m := p.MaxScroll(); p.Scroll > m {
		p.Scroll = m
	}
}

// Contains reports whether a point is inside the viewport.
func (p *ScrollablePanel) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// HandleWheel applies a wheel delta when the cursor is over the panel.
func (p *ScrollablePanel) HandleWheel(x, y int, dy float64) bool {
	if !p.Contains(x, y) || dy == 0 {
		return false
	}
	p.Scroll -= dy * 40
	p.clamp()
	return true
}

// thumbRect returns the scrollbar thumb geometry in screen space.
func (p *ScrollablePanel) thumbRect() (x, y, w, h int, ok bool) {
	if p.MaxScroll() <= 0 {
		return 0, 0, 0, 0, false
	}
	trackH := p.Height
	thumbH := trackH * p.Height / p.ContentHeight
	if thumbH < 24 {
		thumbH = 24
	}
	travel := trackH - thumbH
	thumbY := p.Y + int(p.Scroll/p.MaxScroll()*float64(travel))
	return p.X + p.Width - scrollbarWidth, thumbY, scrollbarWidth, thumbH, true
}

// HandlePress starts a thumb drag or pages on a track click. Returns
// true when the press was consumed by the scrollbar.
func (p *ScrollablePanel) HandlePress(x, y int) bool {
	tx, ty, tw, th, ok := p.thumbRect()
	if !ok {
		return false
	}
	if x < tx || x >= tx+tw || y < p.Y || y >= p.Y+p.Height {
		return false
	}
	if y >= ty && y < ty+th {
		p.dragging = true
		p.dragOffset = float64(y - ty)
		return true
	}
	// Track click pages a viewport at a time.
	if y < ty {
		p.Scroll -= float64(p.Height)
	} else {
		p.Scroll += float64(p.Height)
	}
	p.clamp()
	return true
}

// HandleDrag continues a thumb drag.
func (p *ScrollablePanel) HandleDrag(y int) {
	if !p.dragging {
		return
	}
	_, _, _, th, ok := p.thumbRect()
	if !ok {
		return
	}
	travel := float64(p.Height - th)
	if travel <= 0 {
		return
	}
	pos := float64(y-p.Y) - p.dragOffset
	p.Scroll = pos / travel * p.MaxScroll()
	p.clamp()
}

// HandleRelease ends any thumb drag.
func (p *ScrollablePanel) HandleRelease() {
	p.dragging = false
}

// Dragging reports whether the thumb is held.
func (p *ScrollablePanel) Dragging() bool { return p.dragging }

// DrawFrame renders the panel background and scrollbar. Content is
// drawn by the caller offset by -Scroll inside the viewport.
func (p *ScrollablePanel) DrawFrame(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.Theme.Glass, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 1, p.Theme.Border, true)

	if tx, ty, tw, th, ok := p.thumbRect(); ok {
		track := p.Theme.Surface
		vector.DrawFilledRect(screen, float32(tx), float32(p.Y), float32(tw), float32(p.Height), track, true)
		thumb := p.Theme.Border
		if p.dragging {
			thumb = p.Theme.Primary
		}
		vector.DrawFilledRect(screen, float32(tx+1), float32(ty), float32(tw-2), float32(th), thumb, true)
	}
}
