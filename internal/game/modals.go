package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/assets/fonts"
)

// Modal is a centered confirmation dialog over a dimmed screen.
type Modal struct {
	Title   string
	Lines   []string
	Theme   *CircuitTheme
	Confirm *CircuitButton
	Cancel  *CircuitButton

	OnConfirm func()
}

const (
	modalWidth  = 380
	modalHeight = 190
)

// NewModal builds a confirm/cancel dialog. Cancel simply closes.
func NewModal(theme *CircuitTheme, title string, lines []string, confirmLabel string, onConfirm func()) *Modal {
	m := &Modal{
		Title:     title,
		Lines:     lines,
		Theme:     theme,
		OnConfirm: onConfirm,
	}
	m.Confirm = NewCircuitButton(0, 0, 140, 36, confirmLabel, theme, nil)
	m.Cancel = NewCircuitButton(0, 0, 140, 36, "CANCEL", theme, nil)
	return m
}

// Layout positions the dialog for the current screen size.
func (m *Modal) Layout(width, height int) (x, y int) {
	x = (width - modalWidth) / 2
	y = (height - modalHeight) / 2
	m.Confirm.Move(x+30, y+modalHeight-50)
	m.Cancel.Move(x+modalWidth-170, y+modalHeight-50)
	return x, y
}

// HandleClick dispatches a press inside the dialog. It reports
// whether the modal should close.
func (m *Modal) HandleClick(mx, my int) (close bool) {
	if m.Confirm.Contains(mx, my) {
		if m.OnConfirm != nil {
			m.OnConfirm()
		}
		return true
	}
	if m.Cancel.Contains(mx, my) {
		return true
	}
	return false
}

// HandleHover updates button hover states.
func (m *Modal) HandleHover(mx, my int) {
	for _, b := range []*CircuitButton{m.Confirm, m.Cancel} {
		if b.Contains(mx, my) {
			b.SetState(ButtonHover)
		} else {
			b.SetState(ButtonNormal)
		}
	}
}

// Draw renders the dimmer and the dialog.
func (m *Modal) Draw(screen *ebiten.Image, width, height int) {
	dim := m.Theme.Shadow
	dim.A = 170
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), dim, true)

	x, y := m.Layout(width, height)
	vector.DrawFilledRect(screen, float32(x), float32(y), modalWidth, modalHeight, m.Theme.Surface, true)
	vector.StrokeRect(screen, float32(x), float32(y), modalWidth, modalHeight, 2, m.Theme.Primary, true)

	titleFace := fonts.Bold(16)
	tb := text.BoundString(titleFace, m.Title)
	text.Draw(screen, m.Title, titleFace, x+(modalWidth-tb.Dx())/2, y+32, m.Theme.TextPrimary)

	lineFace := fonts.Regular(12)
	ly := y + 58
	for _, line := range m.Lines {
		lb := text.BoundString(lineFace, line)
		text.Draw(screen, line, lineFace, x+(modalWidth-lb.Dx())/2, ly, m.Theme.TextSecondary)
		ly += 18
	}

	m.Confirm.Draw(screen)
	m.Cancel.Draw(screen)
}
