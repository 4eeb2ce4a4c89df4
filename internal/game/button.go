package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/assets/fonts"
)

// ButtonState represents the current state of a button
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonPressed
	ButtonDisabled
)

// CircuitButton is a themed button with animated hover/press
// transitions and cached rendering
type CircuitButton struct {
	X, Y          int
	Width, Height int
	Label         string
	State         ButtonState
	Theme         *CircuitTheme
	OnClick       func()

	// Accent overrides the hover color, used by the rebirth and
	// compress buttons.
	Accent *color.NRGBA

	// Animation properties
	hoverProgress float64
	pressProgress float64
	lastState     ButtonState
	animationTime time.Time

	// Cached rendering
	cachedImage *ebiten.Image
	needsRedraw bool
}

// NewCircuitButton creates a new CircuitButton
func NewCircuitButton(x, y, width, height int, label string, theme *CircuitTheme, onClick func()) *CircuitButton {
	return &CircuitButton{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		Label:         label,
		State:         ButtonNormal,
		Theme:         theme,
		OnClick:       onClick,
		animationTime: time.Now(),
		needsRedraw:   true,
	}
}

// Update advances the button's animation state
func (btn *CircuitButton) Update() {
	now := time.Now()
	dt := now.Sub(btn.animationTime).Seconds()
	btn.animationTime = now

	targetHover := 0.0
	targetPress := 0.0
	switch btn.State {
	case ButtonHover:
		targetHover = 1.0
	case ButtonPressed:
		targetHover = 1.0
		targetPress = 1.0
	}

	if btn.hoverProgress < targetHover {
		btn.hoverProgress = math.Min(targetHover, btn.hoverProgress+dt*8)
		btn.needsRedraw = true
	} else if btn.hoverProgress > targetHover {
		btn.hoverProgress = math.Max(targetHover, btn.hoverProgress-dt*8)
		btn.needsRedraw = true
	}

	if btn.pressProgress < targetPress {
		btn.pressProgress = math.Min(targetPress, btn.pressProgress+dt*12)
		btn.needsRedraw = true
	} else if btn.pressProgress > targetPress {
		btn.pressProgress = math.Max(targetPress, btn.pressProgress-dt*12)
		btn.needsRedraw = true
	}

	if btn.State != btn.lastState {
		btn.needsRedraw = true
		btn.lastState = btn.State
	}
}

// Draw renders the button through its cache
func (btn *CircuitButton) Draw(screen *ebiten.Image) {
	btn.Update()

	if btn.cachedImage == nil || btn.needsRedraw {
		if btn.cachedImage == nil ||
			btn.cachedImage.Bounds().Dx() != btn.Width ||
			btn.cachedImage.Bounds().Dy() != btn.Height {
			btn.cachedImage = ebiten.NewImage(btn.Width, btn.Height)
		}
		btn.renderToCache()
		btn.needsRedraw = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(btn.X), float64(btn.Y))
	screen.DrawImage(btn.cachedImage, op)
}

func (btn *CircuitButton) renderToCache() {
	btn.cachedImage.Clear()

	base := btn.Theme.Surface
	hover := btn.Theme.Primary
	if btn.Accent != nil {
		hover = *btn.Accent
	}
	if btn.State == ButtonDisabled {
		base = color.NRGBA{base.R, base.G, base.B, 120}
		hover = base
	}

	fill := lerpColor(base, color.NRGBA{hover.R, hover.G, hover.B, 90}, btn.hoverProgress)
	fill = lerpColor(fill, color.NRGBA{hover.R, hover.G, hover.B, 150}, btn.pressProgress)
	vector.DrawFilledRect(btn.cachedImage, 0, 0, float32(btn.Width), float32(btn.Height), fill, true)

	borderColor := btn.Theme.Border
	borderWidth := float32(1)
	switch btn.State {
	case ButtonHover:
		borderColor = hover
		borderWidth = 2
	case ButtonPressed:
		borderColor = btn.Theme.Glow
		borderWidth = 3
	}
	vector.StrokeRect(btn.cachedImage, 0, 0, float32(btn.Width), float32(btn.Height), borderWidth, borderColor, true)

	if btn.hoverProgress > 0 && btn.State != ButtonDisabled {
		glow := btn.Theme.Glow
		glow.A = uint8(btn.hoverProgress * 140)
		vector.StrokeRect(btn.cachedImage, 2, 2, float32(btn.Width-4), float32(btn.Height-4), 1, glow, true)
	}

	labelColor := btn.Theme.TextPrimary
	if btn.State == ButtonDisabled {
		labelColor = btn.Theme.TextMuted
	}
	face := fonts.Regular(13)
	bounds := text.BoundString(face, btn.Label)
	textX := (btn.Width - bounds.Dx()) / 2
	textY := (btn.Height + bounds.Dy()) / 2
	text.Draw(btn.cachedImage, btn.Label, face, textX, textY, labelColor)
}

// Contains checks if a point is within the button bounds
func (btn *CircuitButton) Contains(x, y int) bool {
	return x >= btn.X && x <= btn.X+btn.Width && y >= btn.Y && y <= btn.Y+btn.Height
}

// SetState sets the button state and marks for redraw
func (btn *CircuitButton) SetState(state ButtonState) {
	if btn.State != state {
		btn.State = state
		btn.needsRedraw = true
	}
}

// SetLabel changes the label, invalidating the cache
func (btn *CircuitButton) SetLabel(label string) {
	if btn.Label != label {
		btn.Label = label
		btn.needsRedraw = true
	}
}

// Move repositions the button. The cache survives a pure move.
func (btn *CircuitButton) Move(x, y int) {
	btn.X = x
	btn.Y = y
}

// Resize changes the button bounds, invalidating the cache.
func (btn *CircuitButton) Resize(w, h int) {
	if btn.Width != w || btn.Height != h {
		btn.Width = w
		btn.Height = h
		btn.needsRedraw = true
	}
}
