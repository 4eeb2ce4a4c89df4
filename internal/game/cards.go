package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/assets/fonts"
)

// CardKind selects the purchase action a card triggers.
type CardKind int

const (
	KindGenerator CardKind = iota
	KindUpgrade
	KindShardUpgrade
	KindCompGenerator
	KindCompUpgrade
	KindInvention
)

const cardHeight = 64

// Card is one row in a purchase list. Cards are rebuilt every frame
// from the balance state; they carry no logic of their own.
type Card struct {
	ID         string
	Kind       CardKind
	X, Y, W, H int
	Icon       string
	Title      string
	Subtitle   string // production or effect line
	CostText   string
	CountText  string // owned count or level/max
	Flavor     string // tooltip body
	Affordable bool
	Maxed      bool
}

// Contains checks if a point is within the card bounds
func (c *Card) Contains(x, y int) bool {
	return x >= c.X && x < c.X+c.W && y >= c.Y && y < c.Y+c.H
}

// Draw renders the card.
func (c *Card) Draw(screen *ebiten.Image, theme *CircuitTheme, hovered bool) {
	bg := theme.CardBackground
	border := theme.Border
	switch {
	case c.Maxed:
		border = theme.Gold
	case !c.Affordable:
		bg.A = 150
	case hovered:
		border = theme.Primary
	}
	vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), bg, true)
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), 1, border, true)

	// Icon box on the left.
	iconCol := theme.Primary
	if !c.Affordable && !c.Maxed {
		iconCol = theme.TextMuted
	}
	vector.StrokeRect(screen, float32(c.X+6), float32(c.Y+6), float32(c.H-12), float32(c.H-12), 1, iconCol, true)
	iconFace := fonts.Mono(12)
	ib := text.BoundString(iconFace, c.Icon)
	text.Draw(screen, c.Icon, iconFace,
		c.X+6+(c.H-12-ib.Dx())/2, c.Y+6+(c.H-12+ib.Dy())/2, iconCol)

	titleCol := theme.TextPrimary
	if !c.Affordable && !c.Maxed {
		titleCol = theme.TextSecondary
	}
	tx := c.X + c.H + 4
	text.Draw(screen, c.Title, fonts.Bold(13), tx, c.Y+20, titleCol)
	text.Draw(screen, c.Subtitle, fonts.Regular(11), tx, c.Y+36, theme.TextSecondary)

	costCol := theme.Success
	if c.Maxed {
		costCol = theme.Gold
	} else if !c.Affordable {
		costCol = theme.Danger
	}
	text.Draw(screen, c.CostText, fonts.Mono(12), tx, c.Y+54, costCol)

	if c.CountText != "" {
		face := fonts.Mono(12)
		cb := text.BoundString(face, c.CountText)
		text.Draw(screen, c.CountText, face, c.X+c.W-cb.Dx()-10, c.Y+20, theme.TextSecondary)
	}
}

// DrawTooltip renders the hover tooltip near the cursor, flipped to
// stay on screen.
func DrawTooltip(screen *ebiten.Image, theme *CircuitTheme, mx, my int, title, body string) {
	if body == "" && title == "" {
		return
	}
	face := fonts.Regular(12)
	titleFace := fonts.Bold(12)
	tb := text.BoundString(titleFace, title)
	bb := text.BoundString(face, body)
	w := tb.Dx()
	if bb.Dx() > w {
		w = bb.Dx()
	}
	w += 16
	h := 16
	if title != "" {
		h += 16
	}
	if body != "" {
		h += 16
	}

	x := mx + 14
	y := my + 14
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	if x+w > sw {
		x = mx - w - 6
	}
	if y+h > sh {
		y = my - h - 6
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), theme.Glass, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, theme.Border, true)
	ty := y + 18
	if title != "" {
		text.Draw(screen, title, titleFace, x+8, ty, theme.TextPrimary)
		ty += 16
	}
	if body != "" {
		text.Draw(screen, body, face, x+8, ty, theme.TextSecondary)
	}
}
