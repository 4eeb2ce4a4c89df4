package game

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/assets/fonts"
)

const rainColumnSpacing = 20

// rainColumn is one falling strand of 0/1 glyphs.
type rainColumn struct {
	X      float64
	Y      float64 // head position
	Speed  float64 // px/s, 30..80
	Glyphs []string
}

// BinaryRain is the background matrix of falling binary columns.
type BinaryRain struct {
	Columns []*rainColumn
	Width   int
	Height  int
	Color   color.NRGBA
}

// NewBinaryRain seeds one column per 20px of width at random heights.
func NewBinaryRain(width, height int, col color.NRGBA) *BinaryRain {
	r := &BinaryRain{Width: width, Height: height, Color: col}
	n := width / rainColumnSpacing
	for i := 0; i < n; i++ {
		c := newRainColumn(float64(i * rainColumnSpacing))
		c.Y = rand.Float64() * float64(height)
		r.Columns = append(r.Columns, c)
	}
	return r
}

func newRainColumn(x float64) *rainColumn {
	n := 5 + rand.Intn(11) // 5..15 glyphs
	glyphs := make([]string, n)
	for i := range glyphs {
		if rand.Intn(2) == 0 {
			glyphs[i] = "0"
		} else {
			glyphs[i] = "1"
		}
	}
	return &rainColumn{
		X:      x,
		Y:      -float64(n) * 14,
		Speed:  30 + rand.Float64()*50,
		Glyphs: glyphs,
	}
}

// Resize rebuilds the column set for a new screen size.
func (r *BinaryRain) Resize(width, height int) {
	if width == r.Width && height == r.Height {
		return
	}
	r.Width = width
	r.Height = height
	n := width / rainColumnSpacing
	for len(r.Columns) < n {
		c := newRainColumn(float64(len(r.Columns) * rainColumnSpacing))
		c.Y = rand.Float64() * float64(height)
		r.Columns = append(r.Columns, c)
	}
	if len(r.Columns) > n {
		r.Columns = r.Columns[:n]
	}
}

// Update advances every column, recycling those past the bottom.
func (r *BinaryRain) Update(dt float64) {
	for i, c := range r.Columns {
		c.Y += c.Speed * dt
		tail := c.Y - float64(len(c.Glyphs))*14
		if tail > float64(r.Height) {
			nc := newRainColumn(c.X)
			r.Columns[i] = nc
		}
	}
}

// Draw renders the columns, dimming glyphs toward the tail.
func (r *BinaryRain) Draw(screen *ebiten.Image) {
	face := fonts.Mono(12)
	for _, c := range r.Columns {
		for i, g := range c.Glyphs {
			y := c.Y - float64(i)*14
			if y < -14 || y > float64(r.Height)+14 {
				continue
			}
			fade := 1.0 - float64(i)/float64(len(c.Glyphs))
			col := r.Color
			col.A = uint8(float64(col.A) * fade * 0.5)
			if i == 0 {
				col.A = uint8(float64(r.Color.A) * 0.8)
			}
			text.Draw(screen, g, face, int(c.X), int(y), col)
		}
	}
}
