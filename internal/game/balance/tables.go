// Package balance holds the numerical model of the game: generator and
// upgrade tables, era and hardware-generation progression, and the
// cost/production/prestige arithmetic. Everything here is pure logic so
// it can be tuned and tested without a window.
package balance

// Generator produces currency per second once bought.
type Generator struct {
	ID              string
	Name            string
	Icon            string
	Flavor          string
	Category        string // hardware generators only
	BaseCost        float64
	BaseProduction  float64
	CostMultiplier  float64
	UnlockThreshold float64 // total earned required; 0 means always visible
}

// Upgrade is a leveled purchase that multiplies or adds to production.
type Upgrade struct {
	ID             string
	Name           string
	Icon           string
	Description    string
	Category       string // hardware upgrades only
	BaseCost       float64
	CostMultiplier float64
	Effect         float64
	MaxLevel       int
}

// HardwareGeneration is one rung of the rebirth meta-progression.
type HardwareGeneration struct {
	Name             string
	Description      string
	StorageCapacity  float64
	UnlockCategories []string
	PrimaryCategory  string
	Theme            string
	Icon             string
}

// Era is one rung of the pre-transistor historical progression.
type Era struct {
	Name         string
	CurrencyName string
	UnlockBits   float64 // total currency earned to enter
	Categories   []string
}

// Invention is a one-shot prestige purchase (the binary inventions).
type Invention struct {
	ID              string
	Name            string
	UnlockThreshold float64
	Effect          float64 // multiplier applied to binary efficiency
}

// EraUpgrade is a leveled upgrade scoped to a historical era. Click
// upgrades leave Category empty and add Effect per level to clicks;
// production upgrades multiply their era's output by Effect^level.
type EraUpgrade struct {
	ID             string
	Name           string
	Category       string
	BaseCost       float64
	CostMultiplier float64
	Effect         float64
}

// CompressionGenerator produces compressed bits at the cost of
// overhead, which drags efficiency down.
type CompressionGenerator struct {
	ID                 string
	Name               string
	Icon               string
	BaseCost           float64
	BaseProduction     float64
	OverheadProduction float64
	CostMultiplier     float64
}

// ShardUpgrade is bought with data shards. Costs scale linearly.
type ShardUpgrade struct {
	ID             string
	Name           string
	Icon           string
	Description    string
	EffectType     string // "percent" effects are divided by 100 where applied
	BaseCost       int
	CostScale      int
	EffectPerLevel float64
	MaxLevel       int
}

const (
	// Pebbles convert to bits at this ratio when binary is invented.
	PebbleConversionRatio = 100

	// RebirthThresholdDefault backs generations missing from the table.
	RebirthThresholdDefault = 9728

	// ShardCollectThreshold is the base earned-bits step per collection.
	ShardCollectThreshold = 10000

	// OfflineEfficiency discounts production accrued while away.
	OfflineEfficiency = 0.75
	// OfflineCapSeconds caps credited away time at 24 hours.
	OfflineCapSeconds = 86400
)

// Display orders keep the UI stable across frames; the maps alone
// would shuffle.
var (
	GeneratorOrder = []string{"rng", "biased_coin", "dice_roller"}

	HardwareGeneratorOrder = []string{
		"cpu_core", "cpu_cache",
		"memory_stick", "memory_bank",
		"hard_drive", "solid_state",
		"graphics_card", "tensor_core",
		"ethernet_card", "fiber_optic",
		"mobile_chip",
		"ai_accelerator",
	}

	UpgradeOrder = []string{"entropy_amplification", "click_power"}

	HardwareUpgradeOrder = []string{
		"overclock", "memory_optimization", "data_compression",
		"ray_tracing", "bandwidth_boost", "battery_efficiency",
		"neural_network",
	}

	EraGeneratorOrder = [][]string{
		{"pebble", "counting_board", "abacus_rack"},
		{"crank_adder", "pascaline", "difference_engine"},
		{"relay_switch", "punch_card_reader", "tabulator"},
		{"triode", "tube_bank", "eniac_panel"},
	}

	EraUpgradeOrder = []string{
		"clay_inscriptions", "polished_stones",
		"precision_crafting", "oiled_gears",
		"card_punching", "copper_contacts",
		"tube_replacement", "getter_coating",
	}

	InventionOrder = []string{"define_bit", "boolean_algebra", "logic_gates"}

	CompressionGeneratorOrder = []string{
		"rle_packer", "huffman_encoder", "lz_dictionary", "arithmetic_coder",
	}

	DataShardUpgradeOrder = []string{"quick_collect", "shard_doubler"}

	CompressionUpgradeOrder = []string{"compression_ratio"}
)

// Generators are the basic entropy-era generators.
var Generators = map[string]Generator{
	"rng": {
		ID: "rng", Name: "Random Number Generator", Icon: "RNG",
		Flavor:   "Pure chaos. Maximum entropy.",
		BaseCost: 10, BaseProduction: 1, CostMultiplier: 1.15,
	},
	"biased_coin": {
		ID: "biased_coin", Name: "Biased Coin", Icon: "COIN",
		Flavor:   "Not all outcomes are equal.",
		BaseCost: 100, BaseProduction: 8, CostMultiplier: 1.15,
		UnlockThreshold: 100,
	},
	"dice_roller": {
		ID: "dice_roller", Name: "Dice Roller", Icon: "DICE",
		Flavor:   "Six possible states.",
		BaseCost: 1200, BaseProduction: 100, CostMultiplier: 1.15,
		UnlockThreshold: 1000,
	},
}

// HardwareGenerators unlock by category as generations advance.
var HardwareGenerators = map[string]Generator{
	"cpu_core": {
		ID: "cpu_core", Name: "CPU Core", Category: "cpu", Icon: "CPU",
		Flavor:   "The heart of computation.",
		BaseCost: 50, BaseProduction: 5, CostMultiplier: 1.15,
	},
	"cpu_cache": {
		ID: "cpu_cache", Name: "CPU Cache", Category: "cpu", Icon: "L2",
		Flavor:   "Lightning-fast memory access.",
		BaseCost: 500, BaseProduction: 50, CostMultiplier: 1.15,
	},
	"memory_stick": {
		ID: "memory_stick", Name: "Memory Stick", Category: "ram", Icon: "RAM",
		Flavor:   "Volatile but speedy storage.",
		BaseCost: 200, BaseProduction: 20, CostMultiplier: 1.15,
	},
	"memory_bank": {
		ID: "memory_bank", Name: "Memory Bank", Category: "ram", Icon: "BNK",
		Flavor:   "Organized memory architecture.",
		BaseCost: 2000, BaseProduction: 200, CostMultiplier: 1.15,
	},
	"hard_drive": {
		ID: "hard_drive", Name: "Hard Drive", Category: "storage", Icon: "HDD",
		Flavor:   "Spinning platters of data.",
		BaseCost: 1000, BaseProduction: 100, CostMultiplier: 1.15,
	},
	"solid_state": {
		ID: "solid_state", Name: "SSD", Category: "storage", Icon: "SSD",
		Flavor:   "Flash-based storage revolution.",
		BaseCost: 10000, BaseProduction: 1000, CostMultiplier: 1.15,
	},
	"graphics_card": {
		ID: "graphics_card", Name: "Graphics Card", Category: "gpu", Icon: "GPU",
		Flavor:   "Parallel processing powerhouse.",
		BaseCost: 5000, BaseProduction: 500, CostMultiplier: 1.15,
	},
	"tensor_core": {
		ID: "tensor_core", Name: "Tensor Core", Category: "gpu", Icon: "TNS",
		Flavor:   "AI acceleration unit.",
		BaseCost: 50000, BaseProduction: 5000, CostMultiplier: 1.15,
	},
	"ethernet_card": {
		ID: "ethernet_card", Name: "Ethernet Card", Category: "network", Icon: "ETH",
		Flavor:   "Connect to the world.",
		BaseCost: 3000, BaseProduction: 300, CostMultiplier: 1.15,
	},
	"fiber_optic": {
		ID: "fiber_optic", Name: "Fiber Optic", Category: "network", Icon: "FBR",
		Flavor:   "Light-speed data transfer.",
		BaseCost: 30000, BaseProduction: 3000, CostMultiplier: 1.15,
	},
	"mobile_chip": {
		ID: "mobile_chip", Name: "Mobile Chip", Category: "mobile", Icon: "MOB",
		Flavor:   "Computing in your pocket.",
		BaseCost: 15000, BaseProduction: 1500, CostMultiplier: 1.15,
	},
	"ai_accelerator": {
		ID: "ai_accelerator", Name: "AI Accelerator", Category: "ai", Icon: "NPU",
		Flavor:   "Neural network processor.",
		BaseCost: 100000, BaseProduction: 10000, CostMultiplier: 1.15,
	},
}

// Upgrades are the basic always-available upgrades.
var Upgrades = map[string]Upgrade{
	"entropy_amplification": {
		ID: "entropy_amplification", Name: "Entropy Amplification", Icon: "AMP",
		Description: "Multiplies ALL production by 2x",
		BaseCost:    1000, CostMultiplier: 10, Effect: 2, MaxLevel: 10,
	},
	"click_power": {
		ID: "click_power", Name: "Click Power", Icon: "CLK",
		Description: "Increases click value by +1 bit",
		BaseCost:    500, CostMultiplier: 3, Effect: 1, MaxLevel: 15,
	},
}

// HardwareUpgrades double one category's production per level.
var HardwareUpgrades = map[string]Upgrade{
	"overclock": {
		ID: "overclock", Name: "CPU Overclock", Category: "cpu", Icon: "OC",
		Description: "Double all CPU production",
		BaseCost:    5000, CostMultiplier: 5, Effect: 2, MaxLevel: 5,
	},
	"memory_optimization": {
		ID: "memory_optimization", Name: "Memory Optimization", Category: "ram", Icon: "OPT",
		Description: "Double all RAM production",
		BaseCost:    8000, CostMultiplier: 5, Effect: 2, MaxLevel: 5,
	},
	"data_compression": {
		ID: "data_compression", Name: "Data Compression", Category: "storage", Icon: "ZIP",
		Description: "Double all Storage production",
		BaseCost:    12000, CostMultiplier: 5, Effect: 2, MaxLevel: 5,
	},
	"ray_tracing": {
		ID: "ray_tracing", Name: "Ray Tracing", Category: "gpu", Icon: "RTX",
		Description: "Double all GPU production",
		BaseCost:    20000, CostMultiplier: 5, Effect: 2, MaxLevel: 5,
	},
	"bandwidth_boost": {
		ID: "bandwidth_boost", Name: "Bandwidth Boost", Category: "network", Icon: "BW",
		Description: "Double all Network production",
		BaseCost:    25000, CostMultiplier: 5, Effect: 2, MaxLevel: 5,
	},
	"battery_efficiency": {
		ID: "battery_efficiency", Name: "Battery Efficiency", Category: "mobile", Icon: "BAT",
		Description: "Double all Mobile production",
		BaseCost:    30000, CostMultiplier: 5, Effect: 2, MaxLevel: 5,
	},
	"neural_network": {
		ID: "neural_network", Name: "Neural Network", Category: "ai", Icon: "NN",
		Description: "Double all AI production",
		BaseCost:    50000, CostMultiplier: 5, Effect: 2, MaxLevel: 5,
	},
}

// CategoryUpgrade maps a hardware category to the upgrade that
// multiplies it.
var CategoryUpgrade = map[string]string{
	"cpu":     "overclock",
	"ram":     "memory_optimization",
	"storage": "data_compression",
	"gpu":     "ray_tracing",
	"network": "bandwidth_boost",
	"mobile":  "battery_efficiency",
	"ai":      "neural_network",
}

// HardwareGenerations index the rebirth meta-progression.
var HardwareGenerations = []HardwareGeneration{
	{
		Name: "Mainframe Era (1960s)", Description: "Massive room-sized computers",
		StorageCapacity:  128 * 1024 * 1024,
		UnlockCategories: []string{"cpu"}, PrimaryCategory: "cpu",
		Theme: "mainframe", Icon: "MF",
	},
	{
		Name: "Apple II Era (1977)", Description: "Personal computer revolution begins",
		StorageCapacity:  512 * 1024 * 1024,
		UnlockCategories: []string{"cpu", "ram"}, PrimaryCategory: "ram",
		Theme: "apple2", Icon: "A2",
	},
	{
		Name: "IBM PC Era (1981)", Description: "Business computing standardization",
		StorageCapacity:  2 * 1024 * 1024 * 1024,
		UnlockCategories: []string{"cpu", "ram", "storage"}, PrimaryCategory: "storage",
		Theme: "ibmpc", Icon: "PC",
	},
	{
		Name: "Multimedia Era (1990s)", Description: "Sound and graphics cards emerge",
		StorageCapacity:  8 * 1024 * 1024 * 1024,
		UnlockCategories: []string{"cpu", "ram", "storage", "gpu"}, PrimaryCategory: "gpu",
		Theme: "multimedia", Icon: "MM",
	},
	{
		Name: "Internet Era (2000s)", Description: "Broadband and networking revolution",
		StorageCapacity:  32 * 1024 * 1024 * 1024,
		UnlockCategories: []string{"cpu", "ram", "storage", "gpu", "network"}, PrimaryCategory: "network",
		Theme: "internet", Icon: "NET",
	},
	{
		Name: "Mobile Era (2010s)", Description: "Smartphones and cloud computing",
		StorageCapacity:  128 * 1024 * 1024 * 1024,
		UnlockCategories: []string{"cpu", "ram", "storage", "gpu", "network", "mobile"}, PrimaryCategory: "mobile",
		Theme: "mobile", Icon: "MOB",
	},
	{
		Name: "AI Era (2020s)", Description: "Machine learning and quantum computing",
		StorageCapacity:  512 * 1024 * 1024 * 1024,
		UnlockCategories: []string{"cpu", "ram", "storage", "gpu", "network", "mobile", "ai"}, PrimaryCategory: "ai",
		Theme: "ai", Icon: "AI",
	},
}

// RebirthThresholds give the total-earned gate per hardware generation.
var RebirthThresholds = []float64{
	9728,           // Mainframe
	150016,         // Apple II
	1114112,        // IBM PC
	46137344,       // Multimedia
	10884218880,    // Internet
	1832519377920,  // Mobile
	111669149696,   // AI
	43980465111040, // Quantum
	175921860444160,
	703687441776640,
}

// Eras cover the historical progression before transistors take over.
var Eras = []Era{
	{Name: "Abacus Era", CurrencyName: "pebbles", UnlockBits: 0},
	{Name: "Mechanical Era", CurrencyName: "cogs", UnlockBits: 5000},
	{Name: "Electromechanical Era", CurrencyName: "relays", UnlockBits: 250000},
	{Name: "Vacuum Tube Era", CurrencyName: "pulses", UnlockBits: 10000000},
	{Name: "Transistor Era", CurrencyName: "bits", UnlockBits: 500000000,
		Categories: []string{"cpu"}},
}

// CostMultByEra hands early eras steeper generator scaling. Design
// target: 1.15 for early eras, easing toward 1.10 late.
var CostMultByEra = map[int]float64{
	0: 1.15,
	1: 1.15,
	2: 1.12,
	3: 1.12,
	4: 1.10,
	5: 1.10,
}

// AbacusGenerators through VacuumTubeGenerators are the per-era
// generator tables. Production roughly x8-12 and cost roughly x10-12
// per tier, the same curve the entropy generators follow.
var AbacusGenerators = map[string]Generator{
	"pebble": {
		ID: "pebble", Name: "Pebble Pile", Icon: "PBL",
		Flavor:   "One stone, one count.",
		BaseCost: 10, BaseProduction: 1, CostMultiplier: 1.15,
	},
	"counting_board": {
		ID: "counting_board", Name: "Counting Board", Icon: "BRD",
		Flavor:   "Grooves keep the stones honest.",
		BaseCost: 100, BaseProduction: 8, CostMultiplier: 1.15,
		UnlockThreshold: 100,
	},
	"abacus_rack": {
		ID: "abacus_rack", Name: "Abacus Rack", Icon: "ABC",
		Flavor:   "Beads on wires. Civilization accelerates.",
		BaseCost: 1200, BaseProduction: 100, CostMultiplier: 1.15,
		UnlockThreshold: 1000,
	},
}

var MechanicalGenerators = map[string]Generator{
	"crank_adder": {
		ID: "crank_adder", Name: "Crank Adder", Icon: "CRK",
		Flavor:   "Turn the handle, carry the one.",
		BaseCost: 2000, BaseProduction: 150, CostMultiplier: 1.15,
	},
	"pascaline": {
		ID: "pascaline", Name: "Pascaline", Icon: "PSC",
		Flavor:   "Gears that remember.",
		BaseCost: 20000, BaseProduction: 1200, CostMultiplier: 1.15,
		UnlockThreshold: 20000,
	},
	"difference_engine": {
		ID: "difference_engine", Name: "Difference Engine", Icon: "DIF",
		Flavor:   "Babbage's unfinished dream, finished.",
		BaseCost: 250000, BaseProduction: 15000, CostMultiplier: 1.15,
		UnlockThreshold: 100000,
	},
}

var ElectromechanicalGenerators = map[string]Generator{
	"relay_switch": {
		ID: "relay_switch", Name: "Relay Switch", Icon: "RLY",
		Flavor:   "Click-clack logic.",
		BaseCost: 150000, BaseProduction: 8000, CostMultiplier: 1.12,
	},
	"punch_card_reader": {
		ID: "punch_card_reader", Name: "Punch Card Reader", Icon: "PCH",
		Flavor:   "Holes in paper hold the answer.",
		BaseCost: 1500000, BaseProduction: 80000, CostMultiplier: 1.12,
		UnlockThreshold: 1000000,
	},
	"tabulator": {
		ID: "tabulator", Name: "Tabulating Machine", Icon: "TAB",
		Flavor:   "A census in a week, not a decade.",
		BaseCost: 20000000, BaseProduction: 1000000, CostMultiplier: 1.12,
		UnlockThreshold: 5000000,
	},
}

var VacuumTubeGenerators = map[string]Generator{
	"triode": {
		ID: "triode", Name: "Triode Tube", Icon: "TRI",
		Flavor:   "A valve for electrons.",
		BaseCost: 8000000, BaseProduction: 400000, CostMultiplier: 1.12,
	},
	"tube_bank": {
		ID: "tube_bank", Name: "Tube Bank", Icon: "TBK",
		Flavor:   "A wall of warm glass.",
		BaseCost: 80000000, BaseProduction: 4500000, CostMultiplier: 1.12,
		UnlockThreshold: 40000000,
	},
	"eniac_panel": {
		ID: "eniac_panel", Name: "ENIAC Panel", Icon: "ENI",
		Flavor:   "Thirty tons of arithmetic.",
		BaseCost: 1000000000, BaseProduction: 60000000, CostMultiplier: 1.12,
		UnlockThreshold: 200000000,
	},
}

// EraUpgrades hold both per-era production multipliers (Category set)
// and per-era click bonuses (Category empty, Effect added per level).
var EraUpgrades = map[string]EraUpgrade{
	"clay_inscriptions": {
		ID: "clay_inscriptions", Name: "Clay Inscriptions",
		BaseCost: 50, CostMultiplier: 3, Effect: 1,
	},
	"polished_stones": {
		ID: "polished_stones", Name: "Polished Stones", Category: "abacus",
		BaseCost: 200, CostMultiplier: 4, Effect: 1.5,
	},
	"precision_crafting": {
		ID: "precision_crafting", Name: "Precision Crafting",
		BaseCost: 10000, CostMultiplier: 3, Effect: 2,
	},
	"oiled_gears": {
		ID: "oiled_gears", Name: "Oiled Gears", Category: "mechanical",
		BaseCost: 50000, CostMultiplier: 4, Effect: 1.5,
	},
	"card_punching": {
		ID: "card_punching", Name: "Card Punching",
		BaseCost: 500000, CostMultiplier: 3, Effect: 5,
	},
	"copper_contacts": {
		ID: "copper_contacts", Name: "Copper Contacts", Category: "electromechanical",
		BaseCost: 3000000, CostMultiplier: 4, Effect: 1.5,
	},
	"tube_replacement": {
		ID: "tube_replacement", Name: "Tube Replacement",
		BaseCost: 20000000, CostMultiplier: 3, Effect: 10,
	},
	"getter_coating": {
		ID: "getter_coating", Name: "Getter Coating", Category: "vacuum_tubes",
		BaseCost: 150000000, CostMultiplier: 4, Effect: 1.5,
	},
}

// eraClickUpgrade names the click upgrade for each historical era.
var eraClickUpgrade = map[int]string{
	0: "clay_inscriptions",
	1: "precision_crafting",
	2: "card_punching",
	3: "tube_replacement",
}

// eraCategory names the production-upgrade category for each era.
var eraCategory = map[int]string{
	0: "abacus",
	1: "mechanical",
	2: "electromechanical",
	3: "vacuum_tubes",
}

// Inventions are the binary prestige milestones. Each multiplies
// binary efficiency; define_bit additionally converts pebbles to bits.
var Inventions = map[string]Invention{
	"define_bit": {
		ID: "define_bit", Name: "Define the Bit",
		UnlockThreshold: 500, Effect: 2,
	},
	"boolean_algebra": {
		ID: "boolean_algebra", Name: "Boolean Algebra",
		UnlockThreshold: 50000, Effect: 2,
	},
	"logic_gates": {
		ID: "logic_gates", Name: "Logic Gates",
		UnlockThreshold: 1000000, Effect: 2,
	},
}
