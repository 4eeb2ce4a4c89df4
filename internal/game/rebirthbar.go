package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/assets/fonts"
	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/balance"
)

const rebirthBarHeight = 72

// RebirthBar is the bottom progress bar toward the next rebirth, with
// the morphing rebirth/compress button on its right.
type RebirthBar struct {
	Theme  *CircuitTheme
	Button *CircuitButton

	shimmer  float64
	shownPct float64
}

// NewRebirthBar creates the bar; the button's action is wired by the
// app.
func NewRebirthBar(theme *CircuitTheme, onClick func()) *RebirthBar {
	return &RebirthBar{
		Theme:  theme,
		Button: NewCircuitButton(0, 0, 150, 40, "REBIRTH", theme, onClick),
	}
}

// Update advances the shimmer and eases the displayed fill.
func (rb *RebirthBar) Update(dt float64, st *balance.State) {
	rb.shimmer = math.Mod(rb.shimmer+dt*0.45, 1.4)
	target := st.RebirthProgress()
	rb.shownPct += (target - rb.shownPct) * math.Min(dt*6, 1)

	// The button morphs into the deep prestige once it opens up.
	switch {
	case st.CanCompress():
		rb.Button.SetLabel("COMPRESS")
		rb.Button.Accent = &rb.Theme.Gold
		rb.Button.SetState(stateForEnabled(rb.Button.State, true))
	case st.CanRebirth():
		rb.Button.SetLabel("REBIRTH")
		rb.Button.Accent = &rb.Theme.Secondary
		rb.Button.SetState(stateForEnabled(rb.Button.State, true))
	default:
		rb.Button.SetLabel("REBIRTH")
		rb.Button.Accent = nil
		rb.Button.SetState(ButtonDisabled)
	}
}

// stateForEnabled lifts a button out of the disabled state without
// clobbering a live hover.
func stateForEnabled(cur ButtonState, enabled bool) ButtonState {
	if !enabled {
		return ButtonDisabled
	}
	if cur == ButtonDisabled {
		return ButtonNormal
	}
	return cur
}

// Draw renders the bar across the bottom of the screen.
func (rb *RebirthBar) Draw(screen *ebiten.Image, width, height int, st *balance.State) {
	y := height - rebirthBarHeight
	vector.DrawFilledRect(screen, 0, float32(y), float32(width), rebirthBarHeight, rb.Theme.Surface, true)
	vector.StrokeLine(screen, 0, float32(y), float32(width), float32(y), 1, rb.Theme.Border, true)

	barX := 16
	barY := y + 16
	barW := width - 200
	barH := 20
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW), float32(barH), rb.Theme.Background, true)

	// Gradient fill, dark primary to bright accent, drawn as
	// vertical slices.
	fillW := int(rb.shownPct * float64(barW))
	if fillW > 0 {
		steps := fillW / 4
		if steps < 1 {
			steps = 1
		}
		for i := 0; i < steps; i++ {
			t := float64(i) / float64(steps)
			col := lerpColor(rb.Theme.Secondary, rb.Theme.Primary, t)
			sx := barX + i*fillW/steps
			sw := fillW/steps + 1
			vector.DrawFilledRect(screen, float32(sx), float32(barY), float32(sw), float32(barH), col, true)
		}
		// Shimmer sweep across the filled region.
		shimmerX := barX + int((rb.shimmer-0.2)*float64(fillW))
		if shimmerX > barX && shimmerX < barX+fillW-8 {
			shine := rb.Theme.TextPrimary
			shine.A = 90
			vector.DrawFilledRect(screen, float32(shimmerX), float32(barY), 8, float32(barH), shine, true)
		}
	}
	vector.StrokeRect(screen, float32(barX), float32(barY), float32(barW), float32(barH), 1, rb.Theme.Border, true)

	label := fmt.Sprintf("Generation %d: %s / %s (%s)",
		st.Generation+1,
		FormatNumber(st.TotalEarned),
		FormatNumber(st.RebirthThreshold()),
		FormatPercent(st.RebirthProgress()))
	if st.RebirthProgress() >= 1 {
		label = fmt.Sprintf("Generation %d complete. Rebirth for %d shards",
			st.Generation+1, st.RebirthReward())
	}
	text.Draw(screen, label, fonts.Regular(12), barX, barY+barH+16, rb.Theme.TextSecondary)

	rb.Button.Move(width-166, y+16)
	rb.Button.Draw(screen)
}
