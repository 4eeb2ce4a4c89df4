package game

import (
	"math"
	"testing"
)

func allUnlocked(string) bool { return true }

func TestGridDistributeLeastFilledFirst(t *testing.T) {
	g := NewMotherboardBitGrid(DefaultCircuitTheme())
	g.SetUnlocked(allUnlocked)

	g.Distribute(48)
	// Least-filled-first keeps fill ratios within one bit of each
	// other across every unlocked part.
	var minR, maxR = 2.0, -1.0
	for _, c := range g.Components {
		r := c.Completion()
		minR = math.Min(minR, r)
		maxR = math.Max(maxR, r)
	}
	if maxR-minR > 0.05 {
		t.Fatalf("fill ratios diverged: min=%v max=%v", minR, maxR)
	}
	total := 0
	for _, c := range g.Components {
		total += c.Filled
	}
	if total != 48 {
		t.Fatalf("distributed %d bits, want 48", total)
	}
}

func TestGridDistributeRespectsLocks(t *testing.T) {
	g := NewMotherboardBitGrid(DefaultCircuitTheme())
	g.SetUnlocked(func(cat string) bool { return cat == "cpu" })

	g.Distribute(1000)
	for _, c := range g.Components {
		if !c.Unlocked && c.Filled != 0 {
			t.Errorf("locked %s got %d bits", c.Name, c.Filled)
		}
	}
	// CPU (64) + BUS (32) saturate at 96.
	if got := g.TotalCapacity(); got != 96 {
		t.Fatalf("unlocked capacity = %d, want 96", got)
	}
	if g.Completion() != 1 {
		t.Fatalf("completion = %v, want 1", g.Completion())
	}
}

func TestGridSetProgress(t *testing.T) {
	g := NewMotherboardBitGrid(DefaultCircuitTheme())
	g.SetUnlocked(allUnlocked)

	g.SetProgress(0.5)
	if got := g.Completion(); math.Abs(got-0.5) > 0.01 {
		t.Fatalf("half progress completion = %v", got)
	}
	g.SetProgress(2) // clamps
	if g.Completion() != 1 {
		t.Fatalf("overfull completion = %v", g.Completion())
	}
	g.SetProgress(-1)
	if g.Completion() != 0 {
		t.Fatalf("negative progress completion = %v", g.Completion())
	}
}

func TestGridUpgradeAndReset(t *testing.T) {
	g := NewMotherboardBitGrid(DefaultCircuitTheme())
	g.SetUnlocked(allUnlocked)

	if !g.UpgradeComponent("RAM") {
		t.Fatal("RAM upgrade failed")
	}
	var ram *GridComponent
	for _, c := range g.Components {
		if c.Name == "RAM" {
			ram = c
		}
	}
	if ram.Capacity != 256 {
		t.Fatalf("RAM capacity = %d, want 256", ram.Capacity)
	}
	if g.UpgradeComponent("FPU") {
		t.Fatal("upgraded a part that does not exist")
	}

	g.Distribute(100)
	g.Reset()
	for _, c := range g.Components {
		if c.Filled != 0 {
			t.Errorf("%s not cleared on reset", c.Name)
		}
	}
}
