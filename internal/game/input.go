package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const accumulatorClickRadius = 70

// handleInput processes one frame of mouse input. The game is
// mouse-only apart from the bulk-buy modifier keys.
func (g *Game) handleInput() {
	g.mouseX, g.mouseY = ebiten.CursorPosition()

	if g.modal != nil {
		g.modal.HandleHover(g.mouseX, g.mouseY)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if g.modal.HandleClick(g.mouseX, g.mouseY) {
				g.modal = nil
			}
		}
		return
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.panel.HandleWheel(g.mouseX, g.mouseY, dy)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handlePress(g.mouseX, g.mouseY)
	}
	if g.panel.Dragging() {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.panel.HandleDrag(g.mouseY)
		} else {
			g.panel.HandleRelease()
		}
	}

	btn := g.rebirthBar.Button
	if btn.State != ButtonDisabled {
		if btn.Contains(g.mouseX, g.mouseY) {
			btn.SetState(ButtonHover)
		} else {
			btn.SetState(ButtonNormal)
		}
	}
}

func (g *Game) handlePress(mx, my int) {
	if g.rebirthBar.Button.Contains(mx, my) && g.rebirthBar.Button.State != ButtonDisabled {
		g.onPrestigePressed()
		return
	}

	for i, b := range g.tabButtons {
		if b.Contains(mx, my) {
			if g.tab != Tab(i) {
				g.tab = Tab(i)
				g.panel.Scroll = 0
				g.panel.HandleRelease()
			}
			return
		}
	}

	if g.tab == TabSettings {
		for _, b := range g.settingsButtons {
			if b.Contains(mx, my) {
				if b.OnClick != nil {
					b.OnClick()
				}
				saveNow(g.State, g.Settings)
				return
			}
		}
	} else {
		if g.panel.HandlePress(mx, my) {
			return
		}
		if g.panel.Contains(mx, my) {
			for _, c := range g.cards {
				if c.Contains(mx, my) {
					g.activateCard(c)
					return
				}
			}
			return
		}
	}

	dx := float64(mx) - g.viz.CenterX
	dy := float64(my) - g.viz.CenterY
	if math.Hypot(dx, dy) <= accumulatorClickRadius {
		v := g.State.Click()
		if g.Settings.Particles {
			g.particles.ClickBurst(float64(mx), float64(my), g.Theme)
		}
		g.floaters.Spawn(float64(mx)-12, float64(my)-16, "+"+FormatNumber(v), g.Theme.Primary)
	}
}

// activateCard performs the purchase a card stands for, with effects
// on success.
func (g *Game) activateCard(c *Card) {
	st := g.State
	cx := float64(c.X + c.H/2)
	cy := float64(c.Y + c.H/2)

	switch c.Kind {
	case KindGenerator:
		qty := buyQty()
		cost := st.BulkGeneratorCost(c.ID, qty)
		if st.BuyGenerator(c.ID, qty) {
			if g.Settings.Particles {
				g.particles.PurchaseFlight(cx, cy, g.viz.CenterX, g.viz.CenterY, g.Theme)
			}
			g.floaters.Spawn(cx, cy, "-"+FormatNumber(cost), g.Theme.Danger)
		}
	case KindUpgrade:
		cost := st.UpgradeCost(c.ID)
		if st.BuyUpgrade(c.ID) {
			if g.Settings.Particles {
				g.particles.PurchaseFlight(cx, cy, g.viz.CenterX, g.viz.CenterY, g.Theme)
			}
			g.floaters.Spawn(cx, cy, "-"+FormatNumber(cost), g.Theme.Danger)
		}
	case KindInvention:
		if st.Invent(c.ID) {
			if g.Settings.Particles {
				g.particles.RebirthCelebration(g.viz.CenterX, g.viz.CenterY, g.Theme)
			}
			g.floaters.Spawn(g.viz.CenterX-30, g.viz.CenterY-90, c.Title, g.Theme.Gold)
			saveNow(st, g.Settings)
		}
	case KindShardUpgrade:
		if c.ID == "collect" {
			if n := st.CollectShards(); n > 0 {
				g.floaters.Spawn(cx, cy, FormatNumber(float64(n))+" shards", g.Theme.Secondary)
			}
			return
		}
		if st.BuyShardUpgrade(c.ID) {
			g.floaters.Spawn(cx, cy, c.Title, g.Theme.Secondary)
		}
	case KindCompGenerator:
		cost := st.CompGeneratorCost(c.ID)
		if st.BuyCompGenerator(c.ID) {
			if g.Settings.Particles {
				g.particles.PurchaseFlight(cx, cy, g.viz.CenterX, g.viz.CenterY, g.Theme)
			}
			g.floaters.Spawn(cx, cy, "-"+FormatNumber(cost), g.Theme.Danger)
		}
	case KindCompUpgrade:
		if st.BuyCompUpgrade(c.ID) {
			g.floaters.Spawn(cx, cy, c.Title, g.Theme.Gold)
		}
	}
}
