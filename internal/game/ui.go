package game

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/assets/fonts"
	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/balance"
)

// buyQty reads the bulk-buy modifier: Shift buys 10, Ctrl buys 100.
func buyQty() int {
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		return 100
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		return 10
	}
	return 1
}

// visibleGeneratorIDs lists the generators the current era and
// generation expose, in display order.
func (g *Game) visibleGeneratorIDs() []string {
	st := g.State
	var ids []string
	if st.CurrentEra < len(balance.Eras)-1 {
		if st.CurrentEra < len(balance.EraGeneratorOrder) {
			ids = append(ids, balance.EraGeneratorOrder[st.CurrentEra]...)
		}
		return ids
	}
	ids = append(ids, balance.GeneratorOrder...)
	for _, id := range balance.HardwareGeneratorOrder {
		if st.CategoryUnlocked(balance.HardwareGenerators[id].Category) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (g *Game) generatorCards() []*Card {
	st := g.State
	qty := buyQty()
	var rows []*Card
	for _, id := range g.visibleGeneratorIDs() {
		if !st.GeneratorUnlocked(id) {
			continue
		}
		gen, _, _ := balance.LookupGenerator(id)
		cost := st.BulkGeneratorCost(id, qty)
		costText := FormatNumber(cost)
		if qty > 1 {
			costText = fmt.Sprintf("%s (x%d)", costText, qty)
		}
		rows = append(rows, &Card{
			ID:         id,
			Kind:       KindGenerator,
			Icon:       gen.Icon,
			Title:      gen.Name,
			Subtitle:   fmt.Sprintf("+%s each", FormatRate(gen.BaseProduction)),
			CostText:   costText,
			CountText:  fmt.Sprintf("x%d", st.GeneratorCounts[id]),
			Flavor:     gen.Flavor,
			Affordable: st.Bits >= cost,
		})
	}
	return rows
}

func (g *Game) upgradeCards() []*Card {
	st := g.State
	var rows []*Card

	add := func(id string, u balance.Upgrade) {
		if !st.UpgradeUnlocked(id) {
			return
		}
		lvl := st.UpgradeLevels[id]
		maxed := lvl >= u.MaxLevel
		cost := st.UpgradeCost(id)
		costText := FormatNumber(cost)
		if maxed {
			costText = "MAX"
		}
		rows = append(rows, &Card{
			ID:         id,
			Kind:       KindUpgrade,
			Icon:       u.Icon,
			Title:      u.Name,
			Subtitle:   u.Description,
			CostText:   costText,
			CountText:  fmt.Sprintf("%d/%d", lvl, u.MaxLevel),
			Flavor:     u.Description,
			Affordable: !maxed && st.Bits >= cost,
			Maxed:      maxed,
		})
	}
	for _, id := range balance.UpgradeOrder {
		add(id, balance.Upgrades[id])
	}
	for _, id := range balance.HardwareUpgradeOrder {
		add(id, balance.HardwareUpgrades[id])
	}

	for _, id := range balance.EraUpgradeOrder {
		if !st.UpgradeUnlocked(id) {
			continue
		}
		u := balance.EraUpgrades[id]
		lvl := st.EraUpgradeLevels[id]
		cost := st.UpgradeCost(id)
		sub := fmt.Sprintf("x%.1f era output per level", u.Effect)
		if u.Category == "" {
			sub = fmt.Sprintf("+%.0f per click per level", u.Effect)
		}
		rows = append(rows, &Card{
			ID:         id,
			Kind:       KindUpgrade,
			Icon:       "ERA",
			Title:      u.Name,
			Subtitle:   sub,
			CostText:   FormatNumber(cost),
			CountText:  fmt.Sprintf("lv%d", lvl),
			Flavor:     sub,
			Affordable: st.Bits >= cost,
		})
	}

	for _, id := range balance.InventionOrder {
		inv := balance.Inventions[id]
		owned := st.Inventions[id]
		if !owned && !st.InventionAvailable(id) && st.TotalEarned < inv.UnlockThreshold/2 {
			continue
		}
		costText := fmt.Sprintf("at %s earned", FormatNumber(inv.UnlockThreshold))
		if owned {
			costText = "INVENTED"
		}
		rows = append(rows, &Card{
			ID:         id,
			Kind:       KindInvention,
			Icon:       "INV",
			Title:      inv.Name,
			Subtitle:   fmt.Sprintf("x%.0f binary efficiency", inv.Effect),
			CostText:   costText,
			Flavor:     "A one-time leap in understanding.",
			Affordable: st.InventionAvailable(id),
			Maxed:      owned,
		})
	}
	return rows
}

func (g *Game) shardCards() []*Card {
	st := g.State
	pending := st.CollectibleShards()
	rows := []*Card{{
		ID:         "collect",
		Kind:       KindShardUpgrade,
		Icon:       "DSH",
		Title:      "Collect Data Shards",
		Subtitle:   fmt.Sprintf("%s / %s accumulated", FormatNumber(st.BitsSinceCollect), FormatNumber(st.ShardThreshold())),
		CostText:   fmt.Sprintf("+%d shards", pending),
		Flavor:     "Condense raw bits into durable shards.",
		Affordable: pending > 0,
	}}
	for _, id := range balance.DataShardUpgradeOrder {
		u := balance.DataShardUpgrades[id]
		lvl := st.ShardUpgradeLevels[id]
		maxed := lvl >= u.MaxLevel
		cost := st.ShardUpgradeCost(id)
		costText := fmt.Sprintf("%d shards", cost)
		if maxed {
			costText = "MAX"
		}
		rows = append(rows, &Card{
			ID:         id,
			Kind:       KindShardUpgrade,
			Icon:       u.Icon,
			Title:      u.Name,
			Subtitle:   u.Description,
			CostText:   costText,
			CountText:  fmt.Sprintf("%d/%d", lvl, u.MaxLevel),
			Flavor:     u.Description,
			Affordable: !maxed && cost >= 0 && st.DataShards >= cost,
			Maxed:      maxed,
		})
	}
	return rows
}

func (g *Game) compressionCards() []*Card {
	st := g.State
	if !st.CompressionUnlocked() {
		return nil
	}
	var rows []*Card
	for _, id := range balance.CompressionGeneratorOrder {
		cg := balance.CompressionGenerators[id]
		cost := st.CompGeneratorCost(id)
		rows = append(rows, &Card{
			ID:         id,
			Kind:       KindCompGenerator,
			Icon:       cg.Icon,
			Title:      cg.Name,
			Subtitle:   fmt.Sprintf("+%s, %s overhead", FormatRate(cg.BaseProduction), FormatRate(cg.OverheadProduction)),
			CostText:   FormatNumber(cost),
			CountText:  fmt.Sprintf("x%d", st.CompGeneratorCounts[id]),
			Flavor:     "Throughput against overhead.",
			Affordable: st.Bits >= cost,
		})
	}
	for _, id := range balance.CompressionUpgradeOrder {
		u := balance.CompressionUpgrades[id]
		lvl := st.CompUpgradeLevels[id]
		maxed := lvl >= u.MaxLevel
		cost := st.ShardUpgradeCost(id)
		costText := fmt.Sprintf("%d tokens", cost)
		if maxed {
			costText = "MAX"
		}
		rows = append(rows, &Card{
			ID:         id,
			Kind:       KindCompUpgrade,
			Icon:       u.Icon,
			Title:      u.Name,
			Subtitle:   u.Description,
			CostText:   costText,
			CountText:  fmt.Sprintf("%d/%d", lvl, u.MaxLevel),
			Flavor:     u.Description,
			Affordable: !maxed && cost >= 0 && st.CompressionTokens >= float64(cost),
			Maxed:      maxed,
		})
	}
	return rows
}

// rebuildCards lays out the active tab's rows inside the scroll
// panel and refreshes the hover target.
func (g *Game) rebuildCards() {
	var rows []*Card
	switch g.tab {
	case TabGenerators:
		rows = g.generatorCards()
	case TabUpgrades:
		rows = g.upgradeCards()
	case TabShards:
		rows = g.shardCards()
	case TabCompression:
		rows = g.compressionCards()
	}

	y := g.panel.Y + 8 - int(g.panel.Scroll)
	for _, c := range rows {
		c.X = g.panel.X + 8
		c.W = g.panel.Width - 16 - scrollbarWidth
		c.H = cardHeight
		c.Y = y
		y += cardHeight + 8
	}
	g.panel.SetContentHeight(len(rows)*(cardHeight+8) + 16)
	g.cards = rows

	g.hoverCard = nil
	if g.panel.Contains(g.mouseX, g.mouseY) {
		for _, c := range rows {
			if c.Contains(g.mouseX, g.mouseY) {
				g.hoverCard = c
				break
			}
		}
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.background.Draw(screen)
	if g.Settings.Rain {
		g.rain.Draw(screen)
	}

	g.viz.Draw(screen)

	leftW := g.width * 11 / 20
	gridY := int(g.viz.CenterY) + 160
	gridH := g.height - gridY - rebirthBarHeight - 16
	if gridH > 80 {
		g.grid.Draw(screen, 16, gridY, leftW-32, gridH)
	}

	if g.tab == TabSettings {
		for _, b := range g.settingsButtons {
			b.Draw(screen)
		}
	} else {
		g.panel.DrawFrame(screen)
		clip := image.Rect(g.panel.X, g.panel.Y, g.panel.X+g.panel.Width, g.panel.Y+g.panel.Height)
		sub := screen.SubImage(clip).(*ebiten.Image)
		for _, c := range g.cards {
			if c.Y+c.H < g.panel.Y || c.Y > g.panel.Y+g.panel.Height {
				continue
			}
			c.Draw(sub, g.Theme, c == g.hoverCard)
		}
		if g.tab == TabCompression {
			px, py, pw, _ := g.panelBounds()
			if g.State.CompressionUnlocked() {
				g.compPanel.Draw(screen, px, py, pw, 92, g.State)
			} else {
				text.Draw(screen, "Compression opens after your first COMPRESS.",
					fonts.Regular(12), px+12, py+28, g.Theme.TextMuted)
				text.Draw(screen, "Reach generation 4 with 1M bits earned.",
					fonts.Regular(12), px+12, py+46, g.Theme.TextMuted)
			}
		}
	}

	for i, btn := range g.tabButtons {
		if Tab(i) == g.tab {
			btn.SetState(ButtonPressed)
		} else if btn.Contains(g.mouseX, g.mouseY) {
			btn.SetState(ButtonHover)
		} else {
			btn.SetState(ButtonNormal)
		}
		btn.Draw(screen)
	}

	if g.Settings.Particles {
		g.particles.Draw(screen)
	}
	g.floaters.Draw(screen)

	g.topBar.Draw(screen, g.width, g.State)
	g.rebirthBar.Draw(screen, g.width, g.height, g.State)

	if g.hoverCard != nil && g.modal == nil {
		DrawTooltip(screen, g.Theme, g.mouseX, g.mouseY, g.hoverCard.Title, g.hoverCard.Flavor)
	}

	if g.modal != nil {
		g.modal.Draw(screen, g.width, g.height)
	}

	g.background.DrawCRT(screen)
}
