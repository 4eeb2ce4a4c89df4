package game

import "testing"

func TestRainColumnLayout(t *testing.T) {
	r := NewBinaryRain(400, 300, DefaultCircuitTheme().Rain)
	if len(r.Columns) != 20 {
		t.Fatalf("columns = %d, want 20", len(r.Columns))
	}
	for i, c := range r.Columns {
		if c.X != float64(i*rainColumnSpacing) {
			t.Errorf("column %d at x=%v", i, c.X)
		}
		if c.Speed < 30 || c.Speed > 80 {
			t.Errorf("column %d speed %v out of 30..80", i, c.Speed)
		}
		if n := len(c.Glyphs); n < 5 || n > 15 {
			t.Errorf("column %d has %d glyphs, want 5..15", i, n)
		}
		for _, g := range c.Glyphs {
			if g != "0" && g != "1" {
				t.Errorf("column %d glyph %q", i, g)
			}
		}
	}
}

func TestRainRecyclesBelowScreen(t *testing.T) {
	r := NewBinaryRain(40, 100, DefaultCircuitTheme().Rain)
	old := r.Columns[0]
	// Long enough for the slowest column to clear the screen.
	for i := 0; i < 20; i++ {
		r.Update(1)
	}
	if r.Columns[0] == old {
		t.Fatal("column never recycled")
	}
	if r.Columns[0].X != old.X {
		t.Fatalf("recycled column moved to x=%v", r.Columns[0].X)
	}
}

func TestRainResize(t *testing.T) {
	r := NewBinaryRain(400, 300, DefaultCircuitTheme().Rain)
	r.Resize(600, 300)
	if len(r.Columns) != 30 {
		t.Fatalf("columns after widen = %d, want 30", len(r.Columns))
	}
	r.Resize(200, 300)
	if len(r.Columns) != 10 {
		t.Fatalf("columns after narrow = %d, want 10", len(r.Columns))
	}
}
