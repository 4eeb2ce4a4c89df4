package balance

import "math"

// State is the full mutable game state. All currency math runs on
// float64 with int-truncated costs.
type State struct {
	Bits             float64 `json:"bits"`
	TotalEarned      float64 `json:"totalEarned"`
	LifetimeEarned   float64 `json:"lifetimeEarned"`
	BitsSinceCollect float64 `json:"bitsSinceCollect"`

	GeneratorCounts  map[string]int `json:"generators"`
	UpgradeLevels    map[string]int `json:"upgrades"`
	EraUpgradeLevels map[string]int `json:"eraUpgrades"`

	CurrentEra       int             `json:"currentEra"`
	Inventions       map[string]bool `json:"inventions"`
	BinaryEfficiency float64         `json:"binaryEfficiency"`

	Generation   int `json:"generation"`
	RebirthCount int `json:"rebirthCount"`
	DataShards   int `json:"dataShards"`

	ShardUpgradeLevels map[string]int `json:"shardUpgrades"`

	CompressionCount    int            `json:"compressionCount"`
	CompressionTokens   float64        `json:"compressionTokens"`
	CompGeneratorCounts map[string]int `json:"compGenerators"`
	CompUpgradeLevels   map[string]int `json:"compUpgrades"`
}

// NewState returns a fresh run at the start of the Abacus era.
func NewState() *State {
	return &State{
		BinaryEfficiency:    1,
		GeneratorCounts:     map[string]int{},
		UpgradeLevels:       map[string]int{},
		EraUpgradeLevels:    map[string]int{},
		Inventions:          map[string]bool{},
		ShardUpgradeLevels:  map[string]int{},
		CompGeneratorCounts: map[string]int{},
		CompUpgradeLevels:   map[string]int{},
	}
}

// Normalize fills nil maps and zero fields after a JSON load.
func (s *State) Normalize() {
	if s.GeneratorCounts == nil {
		s.GeneratorCounts = map[string]int{}
	}
	if s.UpgradeLevels == nil {
		s.UpgradeLevels = map[string]int{}
	}
	if s.EraUpgradeLevels == nil {
		s.EraUpgradeLevels = map[string]int{}
	}
	if s.Inventions == nil {
		s.Inventions = map[string]bool{}
	}
	if s.ShardUpgradeLevels == nil {
		s.ShardUpgradeLevels = map[string]int{}
	}
	if s.CompGeneratorCounts == nil {
		s.CompGeneratorCounts = map[string]int{}
	}
	if s.CompUpgradeLevels == nil {
		s.CompUpgradeLevels = map[string]int{}
	}
	if s.BinaryEfficiency < 1 {
		s.BinaryEfficiency = 1
	}
}

// eraGeneratorTables indexes the historical era generator sets.
var eraGeneratorTables = []map[string]Generator{
	AbacusGenerators,
	MechanicalGenerators,
	ElectromechanicalGenerators,
	VacuumTubeGenerators,
}

// LookupGenerator resolves a generator id across every table. The
// second return is the historical era it belongs to, or -1 for the
// entropy and hardware tables.
func LookupGenerator(id string) (Generator, int, bool) {
	for era, tbl := range eraGeneratorTables {
		if g, ok := tbl[id]; ok {
			return g, era, true
		}
	}
	if g, ok := Generators[id]; ok {
		return g, -1, true
	}
	if g, ok := HardwareGenerators[id]; ok {
		return g, -1, true
	}
	return Generator{}, -1, false
}

// LookupUpgrade resolves an upgrade id across the basic and hardware
// tables.
func LookupUpgrade(id string) (Upgrade, bool) {
	if u, ok := Upgrades[id]; ok {
		return u, ok
	}
	u, ok := HardwareUpgrades[id]
	return u, ok
}

func (s *State) addEarned(amount float64) {
	s.Bits += amount
	s.TotalEarned += amount
	s.LifetimeEarned += amount
	s.BitsSinceCollect += amount
}

// Tick advances production by dt seconds.
func (s *State) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	s.addEarned(s.ProductionRate() * dt)
}

// Click applies one manual click.
func (s *State) Click() float64 {
	v := s.ClickPower()
	s.addEarned(v)
	return v
}

// ClickPower is the currency granted per manual click. Only the
// current era's click upgrade applies; earlier eras' tools are left
// behind with the era.
func (s *State) ClickPower() float64 {
	v := 1.0
	if u, ok := Upgrades["click_power"]; ok {
		v += u.Effect * float64(s.UpgradeLevels["click_power"])
	}
	if id, ok := eraClickUpgrade[s.CurrentEra]; ok {
		v += EraUpgrades[id].Effect * float64(s.EraUpgradeLevels[id])
	}
	v += float64(s.CompressionCount) // permanent +1 per compression
	return v * s.BinaryEfficiency
}

// entropyMultiplier is the global 2^level amplification.
func (s *State) entropyMultiplier() float64 {
	u := Upgrades["entropy_amplification"]
	return math.Pow(u.Effect, float64(s.UpgradeLevels["entropy_amplification"]))
}

// CategoryMultiplier is the hardware upgrade multiplier for one
// category.
func (s *State) CategoryMultiplier(category string) float64 {
	id, ok := CategoryUpgrade[category]
	if !ok {
		return 1
	}
	u := HardwareUpgrades[id]
	return math.Pow(u.Effect, float64(s.UpgradeLevels[id]))
}

// EraMultiplier is the product of the era's production upgrades.
func (s *State) EraMultiplier(era int) float64 {
	cat, ok := eraCategory[era]
	if !ok {
		return 1
	}
	mult := 1.0
	for id, u := range EraUpgrades {
		if u.Category != cat {
			continue
		}
		if lvl := s.EraUpgradeLevels[id]; lvl > 0 {
			mult *= math.Pow(u.Effect, float64(lvl))
		}
	}
	return mult
}

// PrestigeBonus is the permanent production multiplier from
// compressions.
func (s *State) PrestigeBonus() float64 {
	return 1 + 0.1*float64(s.CompressionCount)
}

// ProductionRate is currency per second from the current era's owned
// generators, global multipliers applied, plus compression output.
// Generators from earlier eras stop producing when the era is left
// behind; the entropy and hardware tables run only in the final era.
func (s *State) ProductionRate() float64 {
	base := 0.0
	for id, count := range s.GeneratorCounts {
		if count <= 0 {
			continue
		}
		g, era, ok := LookupGenerator(id)
		if !ok {
			continue
		}
		if era >= 0 {
			if era != s.CurrentEra {
				continue
			}
			base += g.BaseProduction * float64(count) * s.EraMultiplier(era)
			continue
		}
		if s.CurrentEra < len(Eras)-1 {
			continue
		}
		p := g.BaseProduction * float64(count)
		if g.Category != "" {
			p *= s.CategoryMultiplier(g.Category)
		}
		base += p
	}
	base += s.CompressionRate()
	return base * s.entropyMultiplier() * s.BinaryEfficiency * s.PrestigeBonus()
}

// GeneratorCost is the next-unit cost for one generator: base times
// multiplier^owned, truncated. Historical eras can override the
// multiplier.
func (s *State) GeneratorCost(id string) float64 {
	g, era, ok := LookupGenerator(id)
	if !ok {
		return math.Inf(1)
	}
	mult := g.CostMultiplier
	if era >= 0 {
		if m, ok := CostMultByEra[era]; ok {
			mult = m
		}
	}
	return math.Trunc(g.BaseCost * math.Pow(mult, float64(s.GeneratorCounts[id])))
}

// BulkGeneratorCost prices qty units as a geometric series from the
// current count.
func (s *State) BulkGeneratorCost(id string, qty int) float64 {
	if qty <= 0 {
		return 0
	}
	g, era, ok := LookupGenerator(id)
	if !ok {
		return math.Inf(1)
	}
	mult := g.CostMultiplier
	if era >= 0 {
		if m, ok := CostMultByEra[era]; ok {
			mult = m
		}
	}
	first := g.BaseCost * math.Pow(mult, float64(s.GeneratorCounts[id]))
	if mult == 1 {
		return math.Trunc(first * float64(qty))
	}
	return math.Trunc(first * (math.Pow(mult, float64(qty)) - 1) / (mult - 1))
}

// BuyGenerator purchases qty units if affordable and unlocked.
func (s *State) BuyGenerator(id string, qty int) bool {
	if qty <= 0 || !s.GeneratorUnlocked(id) {
		return false
	}
	cost := s.BulkGeneratorCost(id, qty)
	if s.Bits < cost {
		return false
	}
	s.Bits -= cost
	s.GeneratorCounts[id] += qty
	return true
}

// GeneratorUnlocked reports whether a generator is visible and
// purchasable: its earn threshold is met and, for hardware, its
// category belongs to the current generation.
func (s *State) GeneratorUnlocked(id string) bool {
	g, _, ok := LookupGenerator(id)
	if !ok {
		return false
	}
	if s.TotalEarned < g.UnlockThreshold {
		return false
	}
	if g.Category != "" {
		return s.CategoryUnlocked(g.Category)
	}
	return true
}

// CategoryUnlocked reports whether a hardware category is open at the
// current generation.
func (s *State) CategoryUnlocked(category string) bool {
	gen := s.Generation
	if gen >= len(HardwareGenerations) {
		gen = len(HardwareGenerations) - 1
	}
	for _, c := range HardwareGenerations[gen].UnlockCategories {
		if c == category {
			return true
		}
	}
	return false
}

// UpgradeCost is base times multiplier^level, truncated. Unknown ids
// and maxed upgrades cost infinity.
func (s *State) UpgradeCost(id string) float64 {
	if u, ok := LookupUpgrade(id); ok {
		lvl := s.UpgradeLevels[id]
		if lvl >= u.MaxLevel {
			return math.Inf(1)
		}
		return math.Trunc(u.BaseCost * math.Pow(u.CostMultiplier, float64(lvl)))
	}
	if u, ok := EraUpgrades[id]; ok {
		return math.Trunc(u.BaseCost * math.Pow(u.CostMultiplier, float64(s.EraUpgradeLevels[id])))
	}
	return math.Inf(1)
}

// BuyUpgrade levels an upgrade if affordable, unlocked and not maxed.
func (s *State) BuyUpgrade(id string) bool {
	if !s.UpgradeUnlocked(id) {
		return false
	}
	cost := s.UpgradeCost(id)
	if s.Bits < cost {
		return false
	}
	s.Bits -= cost
	if _, ok := LookupUpgrade(id); ok {
		s.UpgradeLevels[id]++
	} else {
		s.EraUpgradeLevels[id]++
	}
	return true
}

// UpgradeUnlocked gates basic upgrades at 1000 earned, hardware
// upgrades by category and era upgrades to their own era. An era
// upgrade left behind produces nothing, so it leaves the shop too.
func (s *State) UpgradeUnlocked(id string) bool {
	if _, ok := Upgrades[id]; ok {
		return s.TotalEarned >= 1000
	}
	if u, ok := HardwareUpgrades[id]; ok {
		return s.CategoryUnlocked(u.Category)
	}
	if u, ok := EraUpgrades[id]; ok {
		if cat, ok := eraCategory[s.CurrentEra]; ok && cat == u.Category {
			return true
		}
		return eraClickUpgrade[s.CurrentEra] == id
	}
	return false
}

// UpgradeLevel reads the level of any upgrade id.
func (s *State) UpgradeLevel(id string) int {
	if _, ok := LookupUpgrade(id); ok {
		return s.UpgradeLevels[id]
	}
	return s.EraUpgradeLevels[id]
}

// StorageCapacity is the byte capacity of the current generation's
// motherboard.
func (s *State) StorageCapacity() float64 {
	gen := s.Generation
	if gen >= len(HardwareGenerations) {
		gen = len(HardwareGenerations) - 1
	}
	return HardwareGenerations[gen].StorageCapacity
}

// CurrencyName is the display name of the current era's currency.
func (s *State) CurrencyName() string {
	if s.CurrentEra >= 0 && s.CurrentEra < len(Eras) {
		return Eras[s.CurrentEra].CurrencyName
	}
	return "bits"
}
