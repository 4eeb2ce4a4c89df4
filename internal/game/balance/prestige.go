package balance

import "math"

// RebirthThreshold is the total-earned gate for leaving the current
// generation. Generations past the table reuse the last entry.
func (s *State) RebirthThreshold() float64 {
	if len(RebirthThresholds) == 0 {
		return RebirthThresholdDefault
	}
	if s.Generation < len(RebirthThresholds) {
		return RebirthThresholds[s.Generation]
	}
	return RebirthThresholds[len(RebirthThresholds)-1]
}

// RebirthProgress is 0..1 toward the next rebirth.
func (s *State) RebirthProgress() float64 {
	t := s.RebirthThreshold()
	if t <= 0 {
		return 1
	}
	return math.Min(s.TotalEarned/t, 1)
}

// CanRebirth reports whether the earn gate is met. Grid completion is
// checked by the caller that owns the grid.
func (s *State) CanRebirth() bool {
	return s.TotalEarned >= s.RebirthThreshold()
}

// shardBonus is the shard_doubler multiplier on shard payouts.
func (s *State) shardBonus() float64 {
	u, ok := DataShardUpgrades["shard_doubler"]
	if !ok {
		return 0
	}
	return u.EffectPerLevel / 100 * float64(s.ShardUpgradeLevels["shard_doubler"])
}

// RebirthReward is the data shards granted for rebirthing now.
func (s *State) RebirthReward() int {
	if s.TotalEarned < 1 {
		return 0
	}
	base := math.Log2(s.TotalEarned) - 20 + 5*float64(s.Generation)
	if base < 0 {
		base = 0
	}
	return int(base * (1 + s.shardBonus()))
}

// Rebirth advances the hardware generation, pays out shards and resets
// the run. Inventions, shard upgrades and compression progress
// survive.
func (s *State) Rebirth() bool {
	if !s.CanRebirth() {
		return false
	}
	s.DataShards += s.RebirthReward()
	if s.Generation < len(HardwareGenerations)-1 {
		s.Generation++
	}
	s.RebirthCount++
	s.resetRun()
	return true
}

func (s *State) resetRun() {
	s.Bits = 0
	s.TotalEarned = 0
	s.BitsSinceCollect = 0
	s.GeneratorCounts = map[string]int{}
	s.UpgradeLevels = map[string]int{}
	s.EraUpgradeLevels = map[string]int{}
}

// ShardThreshold is the earned-bits step per collection, shrunk by
// quick_collect.
func (s *State) ShardThreshold() float64 {
	t := float64(ShardCollectThreshold)
	if u, ok := DataShardUpgrades["quick_collect"]; ok {
		reduction := u.EffectPerLevel / 100 * float64(s.ShardUpgradeLevels["quick_collect"])
		if reduction > 0.9 {
			reduction = 0.9
		}
		t *= 1 - reduction
	}
	return t
}

// CollectibleShards is the payout waiting at the current accumulation,
// zero below the threshold. shard_doubler boosts rebirth payouts only,
// not collection.
func (s *State) CollectibleShards() int {
	if s.BitsSinceCollect < s.ShardThreshold() {
		return 0
	}
	n := int(math.Log10(s.BitsSinceCollect)) - 3
	if n < 0 {
		n = 0
	}
	return n
}

// CollectShards banks the waiting payout and restarts accumulation.
func (s *State) CollectShards() int {
	n := s.CollectibleShards()
	if n <= 0 {
		return 0
	}
	s.DataShards += n
	s.BitsSinceCollect = 0
	return n
}

// ShardUpgradeCost scales linearly: base + scale*level. Maxed and
// unknown ids cost -1.
func (s *State) ShardUpgradeCost(id string) int {
	u, ok := DataShardUpgrades[id]
	if !ok {
		u, ok = CompressionUpgrades[id]
	}
	if !ok {
		return -1
	}
	lvl := s.ShardUpgradeLevels[id]
	if _, comp := CompressionUpgrades[id]; comp {
		lvl = s.CompUpgradeLevels[id]
	}
	if lvl >= u.MaxLevel {
		return -1
	}
	return u.BaseCost + u.CostScale*lvl
}

// BuyShardUpgrade spends data shards on a shard upgrade.
func (s *State) BuyShardUpgrade(id string) bool {
	if _, ok := DataShardUpgrades[id]; !ok {
		return false
	}
	cost := s.ShardUpgradeCost(id)
	if cost < 0 || s.DataShards < cost {
		return false
	}
	s.DataShards -= cost
	s.ShardUpgradeLevels[id]++
	return true
}

// CanCompress gates the compression prestige on generation 3 and a
// million earned.
func (s *State) CanCompress() bool {
	return s.Generation >= 3 && s.TotalEarned >= 1e6
}

// CompressionReward is the token payout for compressing now.
func (s *State) CompressionReward() float64 {
	if s.TotalEarned <= 0 {
		return 0
	}
	return math.Sqrt(s.TotalEarned) / 100 * (1 + 0.5*float64(s.Generation))
}

// Compress performs the deep prestige: pays tokens, bumps the
// permanent bonuses and resets everything including the hardware
// generation and the data shard balance. Shard upgrades, inventions
// and compression holdings persist.
func (s *State) Compress() bool {
	if !s.CanCompress() {
		return false
	}
	s.CompressionTokens += s.CompressionReward()
	s.CompressionCount++
	s.Generation = 0
	s.RebirthCount = 0
	s.DataShards = 0
	s.resetRun()
	return true
}

// CompressionUnlocked reports whether the compression layer is open.
func (s *State) CompressionUnlocked() bool {
	return s.CompressionCount > 0
}

// CompressionProduction sums the compression pipeline's raw output and
// overhead per second. compression_ratio trims the overhead.
func (s *State) CompressionProduction() (prod, overhead float64) {
	for id, count := range s.CompGeneratorCounts {
		g, ok := CompressionGenerators[id]
		if !ok || count <= 0 {
			continue
		}
		prod += g.BaseProduction * float64(count)
		overhead += g.OverheadProduction * float64(count)
	}
	if u, ok := CompressionUpgrades["compression_ratio"]; ok {
		reduction := u.EffectPerLevel / 100 * float64(s.CompUpgradeLevels["compression_ratio"])
		if reduction > 0.95 {
			reduction = 0.95
		}
		overhead *= 1 - reduction
	}
	return prod, overhead
}

// CompressionEfficiency is prod/(prod+overhead), 1 when idle.
func (s *State) CompressionEfficiency() float64 {
	prod, overhead := s.CompressionProduction()
	if prod <= 0 {
		return 1
	}
	return prod / (prod + overhead)
}

// EfficiencyPenalty steps the throughput multiplier down as
// efficiency falls.
func EfficiencyPenalty(eff float64) float64 {
	switch {
	case eff < 0.5:
		return 0.5
	case eff < 0.7:
		return 0.75
	case eff < 0.9:
		return 0.9
	default:
		return 1
	}
}

// CompressionRate is the effective bits per second contributed by the
// compression pipeline.
func (s *State) CompressionRate() float64 {
	if !s.CompressionUnlocked() {
		return 0
	}
	prod, _ := s.CompressionProduction()
	eff := s.CompressionEfficiency()
	return prod * eff * EfficiencyPenalty(eff)
}

// CompGeneratorCost prices the next compression generator unit.
func (s *State) CompGeneratorCost(id string) float64 {
	g, ok := CompressionGenerators[id]
	if !ok {
		return math.Inf(1)
	}
	return math.Trunc(g.BaseCost * math.Pow(g.CostMultiplier, float64(s.CompGeneratorCounts[id])))
}

// BuyCompGenerator spends bits on one compression generator.
func (s *State) BuyCompGenerator(id string) bool {
	if !s.CompressionUnlocked() {
		return false
	}
	cost := s.CompGeneratorCost(id)
	if s.Bits < cost {
		return false
	}
	s.Bits -= cost
	s.CompGeneratorCounts[id]++
	return true
}

// BuyCompUpgrade spends compression tokens on a pipeline upgrade.
func (s *State) BuyCompUpgrade(id string) bool {
	if _, ok := CompressionUpgrades[id]; !ok {
		return false
	}
	cost := s.ShardUpgradeCost(id)
	if cost < 0 || s.CompressionTokens < float64(cost) {
		return false
	}
	s.CompressionTokens -= float64(cost)
	s.CompUpgradeLevels[id]++
	return true
}

// NextEraThreshold is the total-earned gate for the next historical
// era, or +Inf at the end of the line.
func (s *State) NextEraThreshold() float64 {
	if s.CurrentEra+1 >= len(Eras) {
		return math.Inf(1)
	}
	return Eras[s.CurrentEra+1].UnlockBits
}

// EraProgress is 0..1 toward the next era.
func (s *State) EraProgress() float64 {
	t := s.NextEraThreshold()
	if math.IsInf(t, 1) || t <= 0 {
		return 1
	}
	return math.Min(s.TotalEarned/t, 1)
}

// CanAdvanceEra reports whether the next era's gate is met. Entering
// the Transistor era additionally requires the bit to exist.
func (s *State) CanAdvanceEra() bool {
	if s.CurrentEra+1 >= len(Eras) {
		return false
	}
	if s.TotalEarned < Eras[s.CurrentEra+1].UnlockBits {
		return false
	}
	if s.CurrentEra+1 == len(Eras)-1 && !s.Inventions["define_bit"] {
		return false
	}
	return true
}

// AdvanceEra moves to the next historical era.
func (s *State) AdvanceEra() bool {
	if !s.CanAdvanceEra() {
		return false
	}
	s.CurrentEra++
	return true
}

// InventionAvailable reports whether an invention can be bought now.
// The chain is strict: boolean algebra needs the bit defined, logic
// gates need boolean algebra and the electromechanical era.
func (s *State) InventionAvailable(id string) bool {
	inv, ok := Inventions[id]
	if !ok || s.Inventions[id] {
		return false
	}
	switch id {
	case "boolean_algebra":
		if !s.Inventions["define_bit"] {
			return false
		}
	case "logic_gates":
		if !s.Inventions["boolean_algebra"] || s.CurrentEra < 2 {
			return false
		}
	}
	return s.TotalEarned >= inv.UnlockThreshold
}

// Invent claims an invention: binary efficiency multiplies by its
// effect, and defining the bit converts pebbles to bits at 100:1.
func (s *State) Invent(id string) bool {
	if !s.InventionAvailable(id) {
		return false
	}
	inv := Inventions[id]
	s.Inventions[id] = true
	s.BinaryEfficiency *= inv.Effect
	if id == "define_bit" {
		s.Bits = math.Trunc(s.Bits / PebbleConversionRatio)
	}
	return true
}

// OfflineProgress is the currency owed for elapsed away seconds:
// capped at a day, discounted to 75%.
func (s *State) OfflineProgress(elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed > OfflineCapSeconds {
		elapsed = OfflineCapSeconds
	}
	return s.ProductionRate() * elapsed * OfflineEfficiency
}

// ApplyOfflineProgress credits away-time earnings and returns the
// amount.
func (s *State) ApplyOfflineProgress(elapsed float64) float64 {
	earned := s.OfflineProgress(elapsed)
	if earned > 0 {
		s.addEarned(earned)
	}
	return earned
}
