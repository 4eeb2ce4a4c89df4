package game

import "testing"

func newTestPanel() *ScrollablePanel {
	p := NewScrollablePanel(100, 50, 300, 400, DefaultCircuitTheme())
	p.SetContentHeight(1000)
	return p
}

func TestPanelScrollClamping(t *testing.T) {
	p := newTestPanel()
	if got := p.MaxScroll(); got != 600 {
		t.Fatalf("max scroll = %v, want 600", got)
	}
	p.Scroll = 9999
	p.SetContentHeight(1000)
	if p.Scroll != 600 {
		t.Fatalf("scroll not clamped down: %v", p.Scroll)
	}
	p.Scroll = -50
	p.SetBounds(100, 50, 300, 400)
	if p.Scroll != 0 {
		t.Fatalf("scroll not clamped up: %v", p.Scroll)
	}

	p.SetContentHeight(200) // fits entirely
	if p.MaxScroll() != 0 || p.Scroll != 0 {
		t.Fatalf("short content still scrolls: max=%v scroll=%v", p.MaxScroll(), p.Scroll)
	}
}

func TestPanelWheel(t *testing.T) {
	p := newTestPanel()
	if p.HandleWheel(0, 0, -1) {
		t.Fatal("wheel outside panel consumed")
	}
	if !p.HandleWheel(150, 100, -1) {
		t.Fatal("wheel over panel ignored")
	}
	if p.Scroll != 40 {
		t.Fatalf("scroll after wheel = %v, want 40", p.Scroll)
	}
	p.HandleWheel(150, 100, 100) // way up
	if p.Scroll != 0 {
		t.Fatalf("scroll after big wheel up = %v", p.Scroll)
	}
}

func TestPanelThumbDrag(t *testing.T) {
	p := newTestPanel()
	tx, ty, _, th, ok := p.thumbRect()
	if !ok {
		t.Fatal("no thumb for scrollable content")
	}
	if !p.HandlePress(tx+2, ty+2) || !p.Dragging() {
		t.Fatal("press on thumb did not start a drag")
	}
	p.HandleDrag(ty + 2 + (400 - th)) // drag a full travel down
	if p.Scroll != p.MaxScroll() {
		t.Fatalf("drag to bottom: scroll=%v max=%v", p.Scroll, p.MaxScroll())
	}
	p.HandleRelease()
	if p.Dragging() {
		t.Fatal("release did not end the drag")
	}
}

func TestPanelTrackPaging(t *testing.T) {
	p := newTestPanel()
	tx, _, _, th, _ := p.thumbRect()
	// Click the track below the thumb: pages a viewport down.
	if !p.HandlePress(tx+2, 50+th+100) {
		t.Fatal("track click not consumed")
	}
	if p.Scroll != 400 {
		t.Fatalf("scroll after page down = %v, want 400", p.Scroll)
	}
	// Thumb moved down; click above it pages back up.
	_, ty2, _, _, _ := p.thumbRect()
	if !p.HandlePress(tx+2, ty2-5) {
		t.Fatal("upper track click not consumed")
	}
	if p.Scroll != 0 {
		t.Fatalf("scroll after page up = %v, want 0", p.Scroll)
	}
}

func TestPanelPressOutsideScrollbar(t *testing.T) {
	p := newTestPanel()
	if p.HandlePress(120, 100) {
		t.Fatal("press over content consumed by scrollbar")
	}
}
