package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/assets/fonts"
)

// GridComponent is one motherboard part holding a bank of bit cells.
type GridComponent struct {
	Name     string
	Category string // balance category gating the part, "" = always on
	Col, Row int    // position on the 4x2 cell layout
	ColSpan  int
	Capacity int
	Filled   int
	Unlocked bool
}

// Completion is the fill fraction of this component.
func (c *GridComponent) Completion() float64 {
	if c.Capacity == 0 {
		return 0
	}
	return float64(c.Filled) / float64(c.Capacity)
}

// MotherboardBitGrid renders rebirth progress as bits filling the
// parts of a motherboard. Bits spread least-filled-first so every
// unlocked part grows together.
type MotherboardBitGrid struct {
	Components []*GridComponent
	Theme      *CircuitTheme
	pulse      float64
}

// NewMotherboardBitGrid builds the standard five-part board.
func NewMotherboardBitGrid(theme *CircuitTheme) *MotherboardBitGrid {
	return &MotherboardBitGrid{
		Theme: theme,
		Components: []*GridComponent{
			{Name: "CPU", Category: "cpu", Col: 0, Row: 0, ColSpan: 1, Capacity: 64, Unlocked: true},
			{Name: "BUS", Category: "", Col: 1, Row: 0, ColSpan: 2, Capacity: 32, Unlocked: true},
			{Name: "RAM", Category: "ram", Col: 3, Row: 0, ColSpan: 1, Capacity: 128},
			{Name: "GPU", Category: "gpu", Col: 0, Row: 1, ColSpan: 2, Capacity: 96},
			{Name: "STORAGE", Category: "storage", Col: 2, Row: 1, ColSpan: 2, Capacity: 160},
		},
	}
}

// SetUnlocked applies category availability from the current hardware
// generation. Uncategorized parts stay on.
func (g *MotherboardBitGrid) SetUnlocked(unlocked func(category string) bool) {
	for _, c := range g.Components {
		c.Unlocked = c.Category == "" || unlocked(c.Category)
	}
}

// TotalCapacity counts cells across unlocked parts.
func (g *MotherboardBitGrid) TotalCapacity() int {
	n := 0
	for _, c := range g.Components {
		if c.Unlocked {
			n += c.Capacity
		}
	}
	return n
}

// Completion is the overall fill fraction of the unlocked board.
func (g *MotherboardBitGrid) Completion() float64 {
	capacity, filled := 0, 0
	for _, c := range g.Components {
		if c.Unlocked {
			capacity += c.Capacity
			filled += c.Filled
		}
	}
	if capacity == 0 {
		return 0
	}
	return float64(filled) / float64(capacity)
}

// SetProgress fills the board to match a 0..1 rebirth progress
// fraction, redistributing from scratch.
func (g *MotherboardBitGrid) SetProgress(frac float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	g.Distribute(int(math.Round(frac * float64(g.TotalCapacity()))))
}

// Distribute assigns n bits across unlocked parts, always topping up
// the least-filled part first.
func (g *MotherboardBitGrid) Distribute(n int) {
	for _, c := range g.Components {
		c.Filled = 0
	}
	if n > g.TotalCapacity() {
		n = g.TotalCapacity()
	}
	for i := 0; i < n; i++ {
		var target *GridComponent
		best := 2.0
		for _, c := range g.Components {
			if !c.Unlocked || c.Filled >= c.Capacity {
				continue
			}
			if r := c.Completion(); r < best {
				best = r
				target = c
			}
		}
		if target == nil {
			return
		}
		target.Filled++
	}
}

// UpgradeComponent doubles one part's capacity, keeping its fill
// count.
func (g *MotherboardBitGrid) UpgradeComponent(name string) bool {
	for _, c := range g.Components {
		if c.Name == name {
			c.Capacity *= 2
			return true
		}
	}
	return false
}

// Reset clears all fills, called on rebirth.
func (g *MotherboardBitGrid) Reset() {
	for _, c := range g.Components {
		c.Filled = 0
	}
}

// Update advances the connection pulse.
func (g *MotherboardBitGrid) Update(dt float64) {
	g.pulse = math.Mod(g.pulse+dt, 2)
}

// Draw renders the board into the given bounds.
func (g *MotherboardBitGrid) Draw(screen *ebiten.Image, x, y, w, h int) {
	const gap = 8
	cellW := (w - gap*3) / 4
	cellH := (h - gap) / 2

	type rect struct{ x, y, w, h int }
	rects := make([]rect, len(g.Components))
	for i, c := range g.Components {
		rects[i] = rect{
			x: x + c.Col*(cellW+gap),
			y: y + c.Row*(cellH+gap),
			w: cellW*c.ColSpan + gap*(c.ColSpan-1),
			h: cellH,
		}
	}

	// L-shaped traces from each part to the BUS, with a travelling
	// pulse dot.
	var busIdx int
	for i, c := range g.Components {
		if c.Name == "BUS" {
			busIdx = i
		}
	}
	bus := rects[busIdx]
	bx := float32(bus.x + bus.w/2)
	by := float32(bus.y + bus.h/2)
	for i, c := range g.Components {
		if i == busIdx {
			continue
		}
		r := rects[i]
		cx := float32(r.x + r.w/2)
		cy := float32(r.y + r.h/2)
		traceCol := g.Theme.Border
		if c.Unlocked {
			traceCol = g.Theme.Primary
			traceCol.A = 90
		}
		vector.StrokeLine(screen, cx, cy, cx, by, 2, traceCol, true)
		vector.StrokeLine(screen, cx, by, bx, by, 2, traceCol, true)
		if c.Unlocked && c.Filled > 0 {
			t := math.Mod(g.pulse/2+float64(i)*0.2, 1)
			dotX, dotY := lPoint(float64(cx), float64(cy), float64(bx), float64(by), t)
			vector.DrawFilledCircle(screen, float32(dotX), float32(dotY), 3, g.Theme.Accent, true)
		}
	}

	face := fonts.Mono(11)
	for i, c := range g.Components {
		r := rects[i]
		bg := g.Theme.Surface
		border := g.Theme.Border
		label := g.Theme.TextSecondary
		if !c.Unlocked {
			bg.A = 120
			label = g.Theme.TextMuted
		} else if c.Completion() >= 1 {
			border = g.Theme.Accent
		}
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, true)
		vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, border, true)
		text.Draw(screen, c.Name, face, r.x+4, r.y+13, label)

		if c.Unlocked {
			g.drawBits(screen, c, r.x+4, r.y+18, r.w-8, r.h-22)
		}
	}
}

// drawBits renders the component's cells as a grid of small squares.
func (g *MotherboardBitGrid) drawBits(screen *ebiten.Image, c *GridComponent, x, y, w, h int) {
	if w <= 0 || h <= 0 || c.Capacity == 0 {
		return
	}
	cols := int(math.Ceil(math.Sqrt(float64(c.Capacity) * float64(w) / float64(h))))
	if cols < 1 {
		cols = 1
	}
	rows := (c.Capacity + cols - 1) / cols
	cell := math.Min(float64(w)/float64(cols), float64(h)/float64(rows))
	if cell < 2 {
		cell = 2
	}
	on := g.Theme.Accent
	off := g.Theme.Border
	off.A = 90
	for i := 0; i < c.Capacity; i++ {
		px := float32(float64(x) + float64(i%cols)*cell)
		py := float32(float64(y) + float64(i/cols)*cell)
		col := off
		if i < c.Filled {
			col = on
		}
		vector.DrawFilledRect(screen, px, py, float32(cell)-1, float32(cell)-1, col, true)
	}
}

// lPoint walks an L-shaped path (vertical then horizontal) at t 0..1.
func lPoint(x0, y0, x1, y1, t float64) (float64, float64) {
	v := math.Abs(y1 - y0)
	hzt := math.Abs(x1 - x0)
	total := v + hzt
	if total == 0 {
		return x0, y0
	}
	d := t * total
	if d < v {
		dir := 1.0
		if y1 < y0 {
			dir = -1
		}
		return x0, y0 + dir*d
	}
	d -= v
	dir := 1.0
	if x1 < x0 {
		dir = -1
	}
	return x0 + dir*d, y1
}
