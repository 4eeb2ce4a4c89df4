package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/assets/fonts"
)

// FloatingText is one rising, fading label ("+5 bits").
type FloatingText struct {
	X, Y  float64
	Text  string
	Life  float64 // seconds remaining
	Color color.NRGBA
}

const (
	floatingLife = 1.0
	floatingRise = 50.0 // px/s upward
)

// FloatingTextManager owns the live floating labels.
type FloatingTextManager struct {
	Items []*FloatingText
}

// NewFloatingTextManager creates an empty manager.
func NewFloatingTextManager() *FloatingTextManager {
	return &FloatingTextManager{}
}

// Spawn adds a label at the given point.
func (m *FloatingTextManager) Spawn(x, y float64, s string, col color.NRGBA) {
	m.Items = append(m.Items, &FloatingText{X: x, Y: y, Text: s, Life: floatingLife, Color: col})
}

// Update rises and expires the labels.
func (m *FloatingTextManager) Update(dt float64) {
	for i := len(m.Items) - 1; i >= 0; i-- {
		ft := m.Items[i]
		ft.Y -= floatingRise * dt
		ft.Life -= dt
		if ft.Life <= 0 {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
		}
	}
}

// Draw renders each label with its remaining life as alpha.
func (m *FloatingTextManager) Draw(screen *ebiten.Image) {
	face := fonts.Bold(14)
	for _, ft := range m.Items {
		col := ft.Color
		col.A = uint8(float64(col.A) * (ft.Life / floatingLife))
		text.Draw(screen, ft.Text, face, int(ft.X), int(ft.Y), col)
	}
}
