package balance

import (
	"math"
	"testing"
)

func TestGeneratorCostProgression(t *testing.T) {
	s := NewState()
	cases := []struct {
		owned int
		want  float64
	}{
		{0, 10},
		{1, 11},  // 10 * 1.15
		{2, 13},  // 10 * 1.3225
		{5, 20},  // 10 * 1.15^5 = 20.11
		{10, 40}, // 10 * 1.15^10 = 40.45
	}
	for _, c := range cases {
		s.GeneratorCounts["rng"] = c.owned
		if got := s.GeneratorCost("rng"); got != c.want {
			t.Errorf("rng cost at %d owned = %v, want %v", c.owned, got, c.want)
		}
	}
	if got := s.GeneratorCost("nope"); !math.IsInf(got, 1) {
		t.Errorf("unknown generator cost = %v, want +Inf", got)
	}
}

func TestBulkGeneratorCostMatchesSeries(t *testing.T) {
	s := NewState()
	s.GeneratorCounts["rng"] = 3
	first := 10 * math.Pow(1.15, 3)
	want := math.Trunc(first * (math.Pow(1.15, 10) - 1) / 0.15)
	if got := s.BulkGeneratorCost("rng", 10); got != want {
		t.Errorf("bulk cost = %v, want %v", got, want)
	}
	if got := s.BulkGeneratorCost("rng", 1); got != s.GeneratorCost("rng") {
		t.Errorf("bulk of one = %v, want single cost %v", got, s.GeneratorCost("rng"))
	}
	if got := s.BulkGeneratorCost("rng", 0); got != 0 {
		t.Errorf("bulk of zero = %v, want 0", got)
	}
}

func TestBuyGeneratorGates(t *testing.T) {
	s := NewState()
	s.Bits = 5
	if s.BuyGenerator("rng", 1) {
		t.Fatal("bought rng with insufficient bits")
	}
	s.Bits = 10
	if !s.BuyGenerator("rng", 1) {
		t.Fatal("could not buy rng at exact cost")
	}
	if s.Bits != 0 || s.GeneratorCounts["rng"] != 1 {
		t.Fatalf("after purchase: bits=%v count=%d", s.Bits, s.GeneratorCounts["rng"])
	}

	// biased_coin stays locked until 100 total earned.
	s.Bits = 1000
	if s.BuyGenerator("biased_coin", 1) {
		t.Fatal("bought biased_coin before its unlock threshold")
	}
	s.TotalEarned = 100
	if !s.BuyGenerator("biased_coin", 1) {
		t.Fatal("could not buy unlocked biased_coin")
	}
}

func TestHardwareCategoryUnlocks(t *testing.T) {
	s := NewState()
	s.Bits = 1e9
	s.TotalEarned = 1e9
	if s.GeneratorUnlocked("memory_stick") {
		t.Fatal("ram generator unlocked at generation 0")
	}
	if !s.GeneratorUnlocked("cpu_core") {
		t.Fatal("cpu generator locked at generation 0")
	}
	s.Generation = 1
	if !s.GeneratorUnlocked("memory_stick") {
		t.Fatal("ram generator locked at generation 1")
	}
	s.Generation = 6
	for id := range HardwareGenerators {
		if !s.GeneratorUnlocked(id) {
			t.Errorf("%s locked at final generation", id)
		}
	}
}

func TestUpgradeCostAndMax(t *testing.T) {
	s := NewState()
	cases := []struct {
		level int
		want  float64
	}{
		{0, 1000},
		{1, 10000},
		{2, 100000},
	}
	for _, c := range cases {
		s.UpgradeLevels["entropy_amplification"] = c.level
		if got := s.UpgradeCost("entropy_amplification"); got != c.want {
			t.Errorf("amp cost at level %d = %v, want %v", c.level, got, c.want)
		}
	}
	s.UpgradeLevels["entropy_amplification"] = 10
	if got := s.UpgradeCost("entropy_amplification"); !math.IsInf(got, 1) {
		t.Errorf("maxed upgrade cost = %v, want +Inf", got)
	}
	if got := s.UpgradeCost("nope"); !math.IsInf(got, 1) {
		t.Errorf("unknown upgrade cost = %v, want +Inf", got)
	}
}

func TestProductionRateMultipliers(t *testing.T) {
	s := NewState()
	s.CurrentEra = len(Eras) - 1
	s.GeneratorCounts["rng"] = 2
	if got := s.ProductionRate(); got != 2 {
		t.Fatalf("base rate = %v, want 2", got)
	}
	s.UpgradeLevels["entropy_amplification"] = 1
	if got := s.ProductionRate(); got != 4 {
		t.Fatalf("amplified rate = %v, want 4", got)
	}
	s.BinaryEfficiency = 2
	if got := s.ProductionRate(); got != 8 {
		t.Fatalf("binary rate = %v, want 8", got)
	}
	s.CompressionCount = 1
	if got := s.ProductionRate(); math.Abs(got-8.8) > 1e-9 {
		t.Fatalf("prestiged rate = %v, want 8.8", got)
	}
}

func TestProductionScopedToCurrentEra(t *testing.T) {
	s := NewState()
	s.GeneratorCounts["pebble"] = 10 // 10/s while the abacus era lasts
	if got := s.ProductionRate(); got != 10 {
		t.Fatalf("abacus rate = %v, want 10", got)
	}
	s.CurrentEra = 1
	if got := s.ProductionRate(); got != 0 {
		t.Fatalf("pebbles still producing in the mechanical era: %v", got)
	}
	s.GeneratorCounts["crank_adder"] = 1
	if got := s.ProductionRate(); got != 150 {
		t.Fatalf("mechanical rate = %v, want 150", got)
	}
	// entropy and hardware generators run only in the final era.
	s.GeneratorCounts["rng"] = 5
	s.GeneratorCounts["cpu_core"] = 1
	if got := s.ProductionRate(); got != 150 {
		t.Fatalf("pre-transistor hardware producing: %v", got)
	}
	s.CurrentEra = len(Eras) - 1
	if got := s.ProductionRate(); got != 10 {
		t.Fatalf("transistor rate = %v, want 10", got)
	}
}

func TestCategoryMultiplier(t *testing.T) {
	s := NewState()
	s.CurrentEra = len(Eras) - 1
	s.GeneratorCounts["cpu_core"] = 10 // 50/s
	s.GeneratorCounts["hard_drive"] = 1
	s.Generation = 2
	base := s.ProductionRate()
	s.UpgradeLevels["overclock"] = 2 // cpu x4
	if got := s.ProductionRate(); got != base+150 {
		t.Fatalf("rate with overclock = %v, want %v", got, base+150)
	}
}

func TestClickPower(t *testing.T) {
	s := NewState()
	if got := s.ClickPower(); got != 1 {
		t.Fatalf("base click = %v, want 1", got)
	}
	s.UpgradeLevels["click_power"] = 3
	if got := s.ClickPower(); got != 4 {
		t.Fatalf("leveled click = %v, want 4", got)
	}
	s.EraUpgradeLevels["clay_inscriptions"] = 2
	if got := s.ClickPower(); got != 6 {
		t.Fatalf("era click = %v, want 6", got)
	}
	s.CompressionCount = 1
	s.BinaryEfficiency = 2
	if got := s.ClickPower(); got != 14 {
		t.Fatalf("full click = %v, want 14", got)
	}
	// clay inscriptions stay behind with the abacus era.
	s.CurrentEra = 1
	if got := s.ClickPower(); got != 10 {
		t.Fatalf("mechanical click = %v, want 10", got)
	}
	s.CurrentEra = 0
	before := s.Bits
	v := s.Click()
	if s.Bits != before+v || s.TotalEarned != v {
		t.Fatalf("click did not credit %v", v)
	}
}

func TestTickAccumulates(t *testing.T) {
	s := NewState()
	s.CurrentEra = len(Eras) - 1
	s.GeneratorCounts["rng"] = 4
	s.Tick(2.5)
	if s.Bits != 10 || s.TotalEarned != 10 || s.BitsSinceCollect != 10 {
		t.Fatalf("tick: bits=%v total=%v sinceCollect=%v", s.Bits, s.TotalEarned, s.BitsSinceCollect)
	}
	s.Tick(-1)
	if s.Bits != 10 {
		t.Fatal("negative dt changed state")
	}
}

func TestRebirth(t *testing.T) {
	s := NewState()
	if s.Rebirth() {
		t.Fatal("rebirthed with nothing earned")
	}
	s.TotalEarned = math.Pow(2, 30) // reward log2-20 = 10
	s.Bits = 12345
	s.GeneratorCounts["rng"] = 7
	s.UpgradeLevels["click_power"] = 2
	s.Inventions["define_bit"] = true
	if !s.CanRebirth() {
		t.Fatal("gate not met at 2^30 earned vs threshold 9728")
	}
	if got := s.RebirthReward(); got != 10 {
		t.Fatalf("reward = %d, want 10", got)
	}
	if !s.Rebirth() {
		t.Fatal("rebirth failed")
	}
	if s.Generation != 1 || s.RebirthCount != 1 || s.DataShards != 10 {
		t.Fatalf("after rebirth: gen=%d count=%d shards=%d", s.Generation, s.RebirthCount, s.DataShards)
	}
	if s.Bits != 0 || s.TotalEarned != 0 || len(s.GeneratorCounts) != 0 || len(s.UpgradeLevels) != 0 {
		t.Fatal("run state not reset")
	}
	if !s.Inventions["define_bit"] {
		t.Fatal("inventions did not survive rebirth")
	}
}

func TestRebirthThresholdTable(t *testing.T) {
	s := NewState()
	if got := s.RebirthThreshold(); got != 9728 {
		t.Fatalf("gen 0 threshold = %v", got)
	}
	s.Generation = 1
	if got := s.RebirthThreshold(); got != 150016 {
		t.Fatalf("gen 1 threshold = %v", got)
	}
	s.Generation = len(RebirthThresholds) + 5
	if got := s.RebirthThreshold(); got != RebirthThresholds[len(RebirthThresholds)-1] {
		t.Fatalf("past-table threshold = %v", got)
	}
}

func TestShardCollection(t *testing.T) {
	s := NewState()
	s.BitsSinceCollect = 9999
	if got := s.CollectibleShards(); got != 0 {
		t.Fatalf("shards below threshold = %d", got)
	}
	s.BitsSinceCollect = 10000
	if got := s.CollectibleShards(); got != 1 {
		t.Fatalf("shards at threshold = %d, want 1", got)
	}
	s.BitsSinceCollect = 1e6
	if got := s.CollectibleShards(); got != 3 {
		t.Fatalf("shards at 1e6 = %d, want 3", got)
	}
	// shard_doubler boosts rebirth payouts, not collection.
	s.ShardUpgradeLevels["shard_doubler"] = 10
	if got := s.CollectibleShards(); got != 3 {
		t.Fatalf("shards with doubler = %d, want 3", got)
	}
	n := s.CollectShards()
	if n != 3 || s.DataShards != 3 || s.BitsSinceCollect != 0 {
		t.Fatalf("collect: n=%d banked=%d remaining=%v", n, s.DataShards, s.BitsSinceCollect)
	}
}

func TestShardCollectionCanPayNothing(t *testing.T) {
	s := NewState()
	s.ShardUpgradeLevels["quick_collect"] = 4 // threshold 8000
	s.BitsSinceCollect = 8000                 // log10 floor 3, payout 0
	if got := s.CollectibleShards(); got != 0 {
		t.Fatalf("payout = %d, want 0", got)
	}
	if n := s.CollectShards(); n != 0 || s.BitsSinceCollect != 8000 {
		t.Fatalf("empty collect: n=%d remaining=%v", n, s.BitsSinceCollect)
	}
}

func TestQuickCollectShrinksThreshold(t *testing.T) {
	s := NewState()
	if got := s.ShardThreshold(); got != 10000 {
		t.Fatalf("base threshold = %v", got)
	}
	s.ShardUpgradeLevels["quick_collect"] = 4 // -20%
	if got := s.ShardThreshold(); got != 8000 {
		t.Fatalf("reduced threshold = %v, want 8000", got)
	}
}

func TestShardUpgradePurchase(t *testing.T) {
	s := NewState()
	s.DataShards = 2
	if s.BuyShardUpgrade("quick_collect") {
		t.Fatal("bought with insufficient shards")
	}
	s.DataShards = 3
	if !s.BuyShardUpgrade("quick_collect") {
		t.Fatal("could not buy at exact cost")
	}
	// next level costs base 3 + scale 2.
	if got := s.ShardUpgradeCost("quick_collect"); got != 5 {
		t.Fatalf("level 1 cost = %d, want 5", got)
	}
	s.ShardUpgradeLevels["quick_collect"] = DataShardUpgrades["quick_collect"].MaxLevel
	if got := s.ShardUpgradeCost("quick_collect"); got != -1 {
		t.Fatalf("maxed cost = %d, want -1", got)
	}
}

func TestCompression(t *testing.T) {
	s := NewState()
	s.Generation = 2
	s.TotalEarned = 1e9
	if s.CanCompress() {
		t.Fatal("compress allowed before generation 3")
	}
	s.Generation = 3
	s.TotalEarned = 1e6
	if !s.CanCompress() {
		t.Fatal("compress gate not met")
	}
	// sqrt(1e6)/100 * (1 + 1.5) = 25
	if got := s.CompressionReward(); math.Abs(got-25) > 1e-9 {
		t.Fatalf("reward = %v, want 25", got)
	}
	s.DataShards = 9
	s.ShardUpgradeLevels["quick_collect"] = 2
	if !s.Compress() {
		t.Fatal("compress failed")
	}
	if s.CompressionCount != 1 || s.CompressionTokens != 25 {
		t.Fatalf("after compress: count=%d tokens=%v", s.CompressionCount, s.CompressionTokens)
	}
	if s.Generation != 0 || s.RebirthCount != 0 || s.TotalEarned != 0 {
		t.Fatal("compress did not fully reset the run")
	}
	if s.DataShards != 0 {
		t.Fatalf("shard balance survived compression: %d", s.DataShards)
	}
	if s.ShardUpgradeLevels["quick_collect"] != 2 {
		t.Fatal("shard upgrade levels did not survive compression")
	}
	if !s.CompressionUnlocked() {
		t.Fatal("compression layer still locked")
	}
}

func TestEfficiencyPenaltySteps(t *testing.T) {
	cases := []struct {
		eff, want float64
	}{
		{0.2, 0.5},
		{0.49, 0.5},
		{0.5, 0.75},
		{0.69, 0.75},
		{0.7, 0.9},
		{0.89, 0.9},
		{0.9, 1},
		{1, 1},
	}
	for _, c := range cases {
		if got := EfficiencyPenalty(c.eff); got != c.want {
			t.Errorf("penalty(%v) = %v, want %v", c.eff, got, c.want)
		}
	}
}

func TestCompressionPipeline(t *testing.T) {
	s := NewState()
	s.CompressionCount = 1
	s.CompGeneratorCounts["rle_packer"] = 5 // 50 prod, 10 overhead
	prod, overhead := s.CompressionProduction()
	if prod != 50 || overhead != 10 {
		t.Fatalf("production = %v/%v, want 50/10", prod, overhead)
	}
	if got := s.CompressionEfficiency(); math.Abs(got-50.0/60.0) > 1e-9 {
		t.Fatalf("efficiency = %v", got)
	}
	// eff ~0.833 lands in the 0.9 penalty band.
	want := 50 * (50.0 / 60.0) * 0.9
	if got := s.CompressionRate(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("rate = %v, want %v", got, want)
	}
	s.CompUpgradeLevels["compression_ratio"] = 10 // -50% overhead
	_, overhead = s.CompressionProduction()
	if overhead != 5 {
		t.Fatalf("reduced overhead = %v, want 5", overhead)
	}
}

func TestCompGeneratorPurchase(t *testing.T) {
	s := NewState()
	s.Bits = 1e6
	if s.BuyCompGenerator("rle_packer") {
		t.Fatal("bought compression generator before unlocking the layer")
	}
	s.CompressionCount = 1
	if got := s.CompGeneratorCost("rle_packer"); got != 50 {
		t.Fatalf("base cost = %v, want 50", got)
	}
	if !s.BuyCompGenerator("rle_packer") {
		t.Fatal("purchase failed")
	}
	if got := s.CompGeneratorCost("rle_packer"); got != 57 { // 50*1.15
		t.Fatalf("scaled cost = %v, want 57", got)
	}
}

func TestEraProgression(t *testing.T) {
	s := NewState()
	if s.CurrencyName() != "pebbles" {
		t.Fatalf("starting currency = %q", s.CurrencyName())
	}
	if s.AdvanceEra() {
		t.Fatal("advanced with nothing earned")
	}
	s.TotalEarned = 5000
	if !s.AdvanceEra() || s.CurrentEra != 1 {
		t.Fatalf("mechanical era not reached, era=%d", s.CurrentEra)
	}
	s.TotalEarned = 250000
	if !s.AdvanceEra() || s.CurrentEra != 2 {
		t.Fatal("electromechanical era not reached")
	}
	s.TotalEarned = 10000000
	if !s.AdvanceEra() || s.CurrentEra != 3 {
		t.Fatal("vacuum tube era not reached")
	}
	// the final era needs the bit defined, not just the earn gate.
	s.TotalEarned = 500000000
	if s.AdvanceEra() {
		t.Fatal("entered transistor era without define_bit")
	}
	s.Inventions["define_bit"] = true
	if !s.AdvanceEra() || s.CurrentEra != 4 {
		t.Fatal("transistor era not reached")
	}
	if s.CurrencyName() != "bits" {
		t.Fatalf("final currency = %q", s.CurrencyName())
	}
	if s.AdvanceEra() {
		t.Fatal("advanced past the last era")
	}
}

func TestEraProgressFraction(t *testing.T) {
	s := NewState()
	s.TotalEarned = 2500
	if got := s.EraProgress(); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("progress = %v, want 0.5", got)
	}
	s.TotalEarned = 99999
	s.CurrentEra = 4
	if got := s.EraProgress(); got != 1 {
		t.Fatalf("terminal progress = %v, want 1", got)
	}
}

func TestInventions(t *testing.T) {
	s := NewState()
	if s.InventionAvailable("define_bit") {
		t.Fatal("define_bit available with nothing earned")
	}
	s.TotalEarned = 500
	s.Bits = 500
	if !s.Invent("define_bit") {
		t.Fatal("define_bit not inventable at 500 earned")
	}
	if s.Bits != 5 {
		t.Fatalf("pebble conversion: bits=%v, want 5", s.Bits)
	}
	if s.BinaryEfficiency != 2 {
		t.Fatalf("binary efficiency = %v, want 2", s.BinaryEfficiency)
	}
	if s.Invent("define_bit") {
		t.Fatal("invented the bit twice")
	}

	s.TotalEarned = 1e9
	s.CurrentEra = 2
	if s.Invent("logic_gates") {
		t.Fatal("logic_gates invented before boolean algebra")
	}
	if !s.Invent("boolean_algebra") || s.BinaryEfficiency != 4 {
		t.Fatalf("boolean_algebra: efficiency=%v", s.BinaryEfficiency)
	}
	if !s.Invent("logic_gates") || s.BinaryEfficiency != 8 {
		t.Fatalf("logic_gates: efficiency=%v", s.BinaryEfficiency)
	}
}

func TestInventionChainIsStrict(t *testing.T) {
	s := NewState()
	s.TotalEarned = 50000
	if s.InventionAvailable("boolean_algebra") {
		t.Fatal("boolean_algebra available without define_bit")
	}
	s.Inventions["define_bit"] = true
	if !s.InventionAvailable("boolean_algebra") {
		t.Fatal("boolean_algebra locked with define_bit invented")
	}
	s.TotalEarned = 1e9
	s.Inventions["boolean_algebra"] = true
	if s.InventionAvailable("logic_gates") {
		t.Fatal("logic_gates available before era 2")
	}
	s.CurrentEra = 2
	if !s.InventionAvailable("logic_gates") {
		t.Fatal("logic_gates locked with its chain complete")
	}
}

func TestEraUpgradeMultiplier(t *testing.T) {
	s := NewState()
	s.GeneratorCounts["pebble"] = 10 // 10/s in the abacus era
	if got := s.ProductionRate(); got != 10 {
		t.Fatalf("base rate = %v", got)
	}
	s.EraUpgradeLevels["polished_stones"] = 2 // 1.5^2
	if got := s.ProductionRate(); math.Abs(got-22.5) > 1e-9 {
		t.Fatalf("upgraded rate = %v, want 22.5", got)
	}
}

func TestEraUpgradeUnlockFollowsEra(t *testing.T) {
	s := NewState()
	s.TotalEarned = 1e12
	s.Bits = 1e12
	if s.UpgradeUnlocked("oiled_gears") {
		t.Fatal("mechanical upgrade unlocked in the abacus era")
	}
	s.CurrentEra = 1
	if !s.UpgradeUnlocked("oiled_gears") || !s.UpgradeUnlocked("precision_crafting") {
		t.Fatal("mechanical upgrades locked in their own era")
	}
	if s.UpgradeUnlocked("clay_inscriptions") {
		t.Fatal("abacus upgrade still for sale in the mechanical era")
	}
}

func TestOfflineProgress(t *testing.T) {
	s := NewState()
	s.CurrentEra = len(Eras) - 1
	s.GeneratorCounts["rng"] = 4 // 4/s
	if got := s.OfflineProgress(100); got != 300 { // 4*100*0.75
		t.Fatalf("offline = %v, want 300", got)
	}
	capWant := 4.0 * OfflineCapSeconds * OfflineEfficiency
	if got := s.OfflineProgress(1e9); got != capWant {
		t.Fatalf("capped offline = %v, want %v", got, capWant)
	}
	if got := s.OfflineProgress(-5); got != 0 {
		t.Fatalf("negative elapsed = %v", got)
	}
	earned := s.ApplyOfflineProgress(100)
	if earned != 300 || s.Bits != 300 {
		t.Fatalf("apply: earned=%v bits=%v", earned, s.Bits)
	}
}

func TestStorageCapacityByGeneration(t *testing.T) {
	s := NewState()
	if got := s.StorageCapacity(); got != 128*1024*1024 {
		t.Fatalf("gen 0 capacity = %v", got)
	}
	s.Generation = 6
	if got := s.StorageCapacity(); got != 512*1024*1024*1024 {
		t.Fatalf("gen 6 capacity = %v", got)
	}
}

func TestNormalizeFillsMaps(t *testing.T) {
	s := &State{}
	s.Normalize()
	if s.GeneratorCounts == nil || s.Inventions == nil || s.CompUpgradeLevels == nil {
		t.Fatal("normalize left nil maps")
	}
	if s.BinaryEfficiency != 1 {
		t.Fatalf("normalize efficiency = %v", s.BinaryEfficiency)
	}
}
