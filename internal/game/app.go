package game

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/balance"
)

// Tab selects the right-hand purchase list.
type Tab int

const (
	TabGenerators Tab = iota
	TabUpgrades
	TabShards
	TabCompression
	TabSettings
)

const (
	baseWidth  = 1200
	baseHeight = 800
)

// Game is the ebiten.Game. It owns the balance state, every widget
// and the frame loop.
type Game struct {
	Theme    *CircuitTheme
	State    *balance.State
	Settings Settings

	background *Background
	rain       *BinaryRain
	particles  *ParticleSystem
	floaters   *FloatingTextManager
	viz        *SmartBitVisualization
	grid       *MotherboardBitGrid
	topBar     *TopBar
	rebirthBar *RebirthBar
	compPanel  *CompressionPanel
	panel      *ScrollablePanel
	modal      *Modal

	tab             Tab
	tabButtons      []*CircuitButton
	settingsButtons []*CircuitButton
	cards           []*Card
	hoverCard       *Card

	width, height int
	mouseX        int
	mouseY        int
	ambientTimer  float64
	autosave      autosaver
}

// New builds the game, loading any existing save and crediting
// offline progress.
func New() *Game {
	theme := DefaultCircuitTheme()
	g := &Game{
		Theme:      theme,
		State:      balance.NewState(),
		Settings:   DefaultSettings(),
		background: NewBackground(theme),
		rain:       NewBinaryRain(baseWidth, baseHeight, theme.Rain),
		particles:  NewParticleSystem(),
		floaters:   NewFloatingTextManager(),
		viz:        NewSmartBitVisualization(theme),
		grid:       NewMotherboardBitGrid(theme),
		topBar:     NewTopBar(theme),
		compPanel:  NewCompressionPanel(theme),
		width:      baseWidth,
		height:     baseHeight,
	}
	g.panel = NewScrollablePanel(0, 0, 10, 10, theme)
	g.rebirthBar = NewRebirthBar(theme, g.onPrestigePressed)
	g.buildTabs()
	g.buildSettingsButtons()

	if blob, away, err := LoadFromFile(ConfigPath(saveFileName)); err == nil {
		g.State = blob.State
		g.Settings = blob.Settings
		earned := g.State.ApplyOfflineProgress(away.Seconds())
		if earned > 0 {
			g.modal = NewModal(theme, "WELCOME BACK",
				[]string{
					fmt.Sprintf("Away for %s", FormatDuration(away.Seconds())),
					fmt.Sprintf("Your hardware produced %s bits", FormatNumber(earned)),
				},
				"COLLECT", nil)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("load: %v", err)
	}
	g.applySettings()
	return g
}

func (g *Game) buildTabs() {
	labels := []string{"BUILD", "UPGRADE", "SHARDS", "COMPRESS", "CONFIG"}
	g.tabButtons = g.tabButtons[:0]
	for _, l := range labels {
		g.tabButtons = append(g.tabButtons, NewCircuitButton(0, 0, 90, 28, l, g.Theme, nil))
	}
}

func (g *Game) buildSettingsButtons() {
	mk := func(onClick func()) *CircuitButton {
		return NewCircuitButton(0, 0, 220, 34, "", g.Theme, onClick)
	}
	g.settingsButtons = []*CircuitButton{
		mk(func() { g.Settings.Rain = !g.Settings.Rain }),
		mk(func() { g.Settings.Particles = !g.Settings.Particles }),
		mk(func() {
			g.Settings.CRT = !g.Settings.CRT
			g.applySettings()
		}),
		mk(func() {
			g.Settings.Quality = (g.Settings.Quality + 1) % 3
			g.applySettings()
		}),
		mk(func() {
			if err := ExportToClipboard(g.State, g.Settings); err != nil {
				log.Printf("export: %v", err)
			}
		}),
		mk(func() {
			blob, err := ImportFromClipboard()
			if err != nil {
				log.Printf("import: %v", err)
				return
			}
			g.State = blob.State
			g.Settings = blob.Settings
			g.applySettings()
			g.grid.Reset()
			saveNow(g.State, g.Settings)
		}),
	}
}

// settingsLabels refreshes the toggle labels to show current values.
func (g *Game) settingsLabels() {
	onOff := func(b bool) string {
		if b {
			return "ON"
		}
		return "OFF"
	}
	quality := [...]string{"LOW", "MEDIUM", "HIGH"}
	q := g.Settings.Quality
	if q < 0 || q > 2 {
		q = 2
	}
	labels := []string{
		"BINARY RAIN: " + onOff(g.Settings.Rain),
		"PARTICLES: " + onOff(g.Settings.Particles),
		"CRT OVERLAY: " + onOff(g.Settings.CRT),
		"QUALITY: " + quality[q],
		"EXPORT SAVE",
		"IMPORT SAVE",
	}
	for i, b := range g.settingsButtons {
		b.SetLabel(labels[i])
	}
}

func (g *Game) applySettings() {
	g.viz.Quality = VizQuality(g.Settings.Quality)
	g.background.CRT = g.Settings.CRT
}

// onPrestigePressed opens the confirm dialog for whichever prestige
// the morphing button currently offers.
func (g *Game) onPrestigePressed() {
	st := g.State
	if st.CanCompress() {
		reward := st.CompressionReward()
		g.modal = NewModal(g.Theme, "COMPRESS REALITY",
			[]string{
				fmt.Sprintf("Gain %s compression tokens", FormatNumber(reward)),
				"Everything resets, including hardware generation.",
				"Keeps shards, inventions and compression holdings.",
			},
			"COMPRESS", func() {
				if st.Compress() {
					g.grid.Reset()
					g.particles.RebirthCelebration(g.viz.CenterX, g.viz.CenterY, g.Theme)
					saveNow(g.State, g.Settings)
				}
			})
		return
	}
	if !st.CanRebirth() {
		return
	}
	// The grid must be essentially full before the hardware can be
	// reborn.
	if g.grid.Completion() < 0.999 {
		g.grid.SetProgress(st.RebirthProgress())
		if g.grid.Completion() < 0.999 {
			return
		}
	}
	reward := st.RebirthReward()
	g.modal = NewModal(g.Theme, "REBIRTH",
		[]string{
			fmt.Sprintf("Gain %d data shards", reward),
			"Advance to the next hardware generation.",
			"Bits, generators and upgrades reset.",
		},
		"REBIRTH", func() {
			if st.Rebirth() {
				g.grid.Reset()
				g.particles.RebirthCelebration(g.viz.CenterX, g.viz.CenterY, g.Theme)
				saveNow(g.State, g.Settings)
			}
		})
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / math.Max(ebiten.ActualTPS(), 20)
	if dt > 0.05 {
		dt = 0.05
	}

	g.handleInput()

	st := g.State
	st.Tick(dt)
	for st.CanAdvanceEra() {
		if !st.AdvanceEra() {
			break
		}
		g.floaters.Spawn(g.viz.CenterX-40, g.viz.CenterY-80,
			balance.Eras[st.CurrentEra].Name, g.Theme.Gold)
	}

	g.layout()

	if g.Settings.Rain {
		g.rain.Update(dt)
	}
	if g.Settings.Particles {
		g.particles.Update(dt)
		g.ambientTimer += dt
		if g.ambientTimer > 2.5 {
			g.ambientTimer = 0
			g.particles.AmbientMotes(float64(g.width), float64(g.height), g.Theme)
		}
	}
	g.floaters.Update(dt)

	g.viz.Amount = st.Bits
	g.viz.Update(dt)

	g.grid.SetUnlocked(st.CategoryUnlocked)
	g.grid.SetProgress(st.RebirthProgress())
	g.grid.Update(dt)

	g.topBar.Update(dt, st)
	g.rebirthBar.Update(dt, st)
	if g.tab == TabCompression && st.CompressionUnlocked() && g.Settings.Particles {
		px, _, pw, _ := g.panelBounds()
		g.compPanel.Update(dt, st, g.particles, px, topBarHeight+40, pw)
	}

	g.rebuildCards()

	if g.autosave.Tick(dt) {
		saveNow(st, g.Settings)
	}
	return nil
}

// layout recomputes widget geometry from the current screen size.
func (g *Game) layout() {
	g.rain.Resize(g.width, g.height)

	leftW := g.width * 11 / 20
	g.viz.CenterX = float64(leftW) / 2
	g.viz.CenterY = float64(topBarHeight) + float64(g.height-topBarHeight-rebirthBarHeight)*0.32

	px, py, pw, ph := g.panelBounds()
	headerH := 0
	if g.tab == TabCompression && g.State.CompressionUnlocked() {
		headerH = 100
	}
	g.panel.SetBounds(px, py+headerH, pw, ph-headerH)

	tabX := px
	for _, btn := range g.tabButtons {
		btn.Move(tabX, topBarHeight+6)
		tabX += btn.Width + 4
	}

	if g.tab == TabSettings {
		g.settingsLabels()
		for i, b := range g.settingsButtons {
			b.Move(px+12, py+12+i*44)
		}
	}
}

// panelBounds is the right-hand column below the tab row.
func (g *Game) panelBounds() (x, y, w, h int) {
	leftW := g.width * 11 / 20
	x = leftW + 8
	y = topBarHeight + 40
	w = g.width - x - 8
	h = g.height - y - rebirthBarHeight - 8
	return
}

// SaveOnExit persists the state once on shutdown.
func (g *Game) SaveOnExit() {
	saveNow(g.State, g.Settings)
}

// Layout implements ebiten.Game: the window is resizable and the
// logical size tracks it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 640 {
		outsideWidth = 640
	}
	if outsideHeight < 480 {
		outsideHeight = 480
	}
	g.width = outsideWidth
	g.height = outsideHeight
	return outsideWidth, outsideHeight
}
