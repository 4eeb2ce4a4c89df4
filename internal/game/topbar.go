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

const topBarHeight = 64

// TopBar shows the title, era and the smoothed currency readout.
type TopBar struct {
	Theme *CircuitTheme

	// display values lerp toward the real ones so big jumps roll
	// instead of snapping.
	shownBits float64
	shownRate float64
}

// NewTopBar creates the top bar.
func NewTopBar(theme *CircuitTheme) *TopBar {
	return &TopBar{Theme: theme}
}

// Update eases the displayed numbers toward the live state.
func (tb *TopBar) Update(dt float64, st *balance.State) {
	k := 1 - math.Pow(0.0015, dt) // framerate-independent lerp
	tb.shownBits += (st.Bits - tb.shownBits) * k
	tb.shownRate += (st.ProductionRate() - tb.shownRate) * k
	// snap when close so the readout settles on exact values.
	if diff := st.Bits - tb.shownBits; diff < 1 && diff > -1 {
		tb.shownBits = st.Bits
	}
}

// Draw renders the bar across the top of the screen.
func (tb *TopBar) Draw(screen *ebiten.Image, width int, st *balance.State) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), topBarHeight, tb.Theme.Surface, true)
	vector.StrokeLine(screen, 0, topBarHeight, float32(width), topBarHeight, 1, tb.Theme.Border, true)

	text.Draw(screen, "BIT BY BIT", fonts.Bold(18), 16, 26, tb.Theme.Primary)

	eraName := "Transistor Era"
	if st.CurrentEra < len(balance.Eras) {
		eraName = balance.Eras[st.CurrentEra].Name
	}
	if st.Generation > 0 && st.CurrentEra == len(balance.Eras)-1 {
		eraName = balance.HardwareGenerations[minInt(st.Generation, len(balance.HardwareGenerations)-1)].Name
	}
	text.Draw(screen, eraName, fonts.Regular(12), 16, 46, tb.Theme.TextSecondary)

	readout := fmt.Sprintf("%s %s", FormatNumber(tb.shownBits), st.CurrencyName())
	face := fonts.Bold(20)
	rb := text.BoundString(face, readout)
	cx := (width - rb.Dx()) / 2
	text.Draw(screen, readout, face, cx, 30, tb.Theme.TextPrimary)
	rate := FormatRate(tb.shownRate)
	rateFace := fonts.Mono(12)
	rrb := text.BoundString(rateFace, rate)
	text.Draw(screen, rate, rateFace, (width-rrb.Dx())/2, 50, tb.Theme.Accent)

	// Right side: meta currencies.
	right := width - 16
	if st.DataShards > 0 || st.RebirthCount > 0 {
		s := fmt.Sprintf("SHARDS %d", st.DataShards)
		sb := text.BoundString(rateFace, s)
		text.Draw(screen, s, rateFace, right-sb.Dx(), 26, tb.Theme.Secondary)
	}
	if st.CompressionUnlocked() {
		s := fmt.Sprintf("TOKENS %s", FormatNumber(st.CompressionTokens))
		sb := text.BoundString(rateFace, s)
		text.Draw(screen, s, rateFace, right-sb.Dx(), 46, tb.Theme.Gold)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
