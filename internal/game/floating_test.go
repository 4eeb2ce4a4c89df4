package game

import "testing"

func TestFloatingTextRisesAndExpires(t *testing.T) {
	m := NewFloatingTextManager()
	m.Spawn(100, 200, "+5", DefaultCircuitTheme().Primary)

	m.Update(0.5)
	if len(m.Items) != 1 {
		t.Fatal("label expired early")
	}
	if got := m.Items[0].Y; got != 175 {
		t.Fatalf("y after 0.5s = %v, want 175", got)
	}

	m.Update(0.6)
	if len(m.Items) != 0 {
		t.Fatal("label outlived its second")
	}
}

func TestFloatingTextIndependentLifetimes(t *testing.T) {
	m := NewFloatingTextManager()
	m.Spawn(0, 0, "a", DefaultCircuitTheme().Primary)
	m.Update(0.8)
	m.Spawn(0, 0, "b", DefaultCircuitTheme().Primary)
	m.Update(0.3)
	if len(m.Items) != 1 || m.Items[0].Text != "b" {
		t.Fatalf("items = %+v", m.Items)
	}
}
