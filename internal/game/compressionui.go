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

// CompressionPanel is the header of the compression tab: efficiency
// meter, pipeline readouts and rising sparkles.
type CompressionPanel struct {
	Theme *CircuitTheme

	shownEff   float64
	glowPhase  float64
	sparkTimer float64
}

// NewCompressionPanel creates the panel.
func NewCompressionPanel(theme *CircuitTheme) *CompressionPanel {
	return &CompressionPanel{Theme: theme, shownEff: 1}
}

// Update eases the meter and feeds sparkles into the shared particle
// system.
func (cp *CompressionPanel) Update(dt float64, st *balance.State, ps *ParticleSystem, x, y, w int) {
	cp.glowPhase += dt
	target := st.CompressionEfficiency()
	cp.shownEff += (target - cp.shownEff) * math.Min(dt*5, 1)

	cp.sparkTimer += dt
	if cp.sparkTimer > 0.5 {
		cp.sparkTimer = 0
		ps.CompressionSparkles(float64(x), float64(y+90), float64(w), cp.Theme)
	}
}

// Draw renders the panel header into the given bounds.
func (cp *CompressionPanel) Draw(screen *ebiten.Image, x, y, w, h int, st *balance.State) {
	// Vertical gradient in slices.
	top := cp.Theme.Surface
	bottom := cp.Theme.Background
	steps := h / 6
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		col := lerpColor(top, bottom, t)
		sy := y + i*h/steps
		sh := h/steps + 1
		vector.DrawFilledRect(screen, float32(x), float32(sy), float32(w), float32(sh), col, true)
	}

	glow := cp.Theme.Secondary
	glow.A = uint8(120 + 60*math.Sin(cp.glowPhase*2))
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, glow, true)

	text.Draw(screen, "COMPRESSION PIPELINE", fonts.Bold(14), x+12, y+24, cp.Theme.Secondary)

	prod, overhead := st.CompressionProduction()
	eff := st.CompressionEfficiency()
	penalty := balance.EfficiencyPenalty(eff)

	info := fmt.Sprintf("out %s   overhead %s   net %s",
		FormatRate(prod), FormatRate(overhead), FormatRate(st.CompressionRate()))
	text.Draw(screen, info, fonts.Mono(11), x+12, y+44, cp.Theme.TextSecondary)

	// Efficiency meter.
	meterX := x + 12
	meterY := y + 56
	meterW := w - 24
	meterH := 14
	vector.DrawFilledRect(screen, float32(meterX), float32(meterY), float32(meterW), float32(meterH), cp.Theme.Background, true)
	var meterCol = cp.Theme.Success
	switch {
	case eff < 0.5:
		meterCol = cp.Theme.Danger
	case eff < 0.7:
		meterCol = cp.Theme.Warning
	case eff < 0.9:
		meterCol = cp.Theme.Primary
	}
	fill := int(cp.shownEff * float64(meterW))
	vector.DrawFilledRect(screen, float32(meterX), float32(meterY), float32(fill), float32(meterH), meterCol, true)
	vector.StrokeRect(screen, float32(meterX), float32(meterY), float32(meterW), float32(meterH), 1, cp.Theme.Border, true)

	effLabel := fmt.Sprintf("efficiency %s", FormatPercent(eff))
	if penalty < 1 {
		effLabel += fmt.Sprintf("  (throughput x%.2f)", penalty)
	}
	text.Draw(screen, effLabel, fonts.Regular(11), meterX, meterY+28, cp.Theme.TextSecondary)
}
