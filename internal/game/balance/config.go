package balance

import (
	"embed"
	"fmt"
	"log"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/toon"
)

//go:embed config/*.toon
var configFS embed.FS

// CompressionGenerators and friends are populated from the embedded
// TOON documents by LoadConfig. The Go tables above stay authoritative
// when a document is missing or malformed.
var (
	CompressionGenerators = map[string]CompressionGenerator{}
	CompressionUpgrades   = map[string]ShardUpgrade{}
	DataShardUpgrades     = map[string]ShardUpgrade{}
)

func init() { LoadConfig() }

// LoadConfig parses the embedded tuning documents and overlays them on
// the built-in tables. Errors are logged and the defaults kept, so a
// bad edit to a config file never bricks the game.
func LoadConfig() {
	if doc, err := parseEmbedded("config/generators.toon"); err != nil {
		log.Printf("balance: generators config: %v", err)
	} else {
		overlayGenerators(Generators, section(doc, "generators"))
	}
	if doc, err := parseEmbedded("config/upgrades.toon"); err != nil {
		log.Printf("balance: upgrades config: %v", err)
	} else {
		overlayUpgrades(Upgrades, section(doc, "upgrades"))
	}
	if doc, err := parseEmbedded("config/compression_generators.toon"); err != nil {
		log.Printf("balance: compression generators config: %v", err)
	} else {
		loadCompressionGenerators(section(doc, "compression_generators"))
	}
	if doc, err := parseEmbedded("config/compression_upgrades.toon"); err != nil {
		log.Printf("balance: compression upgrades config: %v", err)
	} else {
		loadShardUpgrades(CompressionUpgrades, section(doc, "compression_upgrades"))
		loadShardUpgrades(DataShardUpgrades, section(doc, "data_shard_upgrades"))
	}
}

func parseEmbedded(name string) (map[string]any, error) {
	raw, err := configFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	v, err := toon.Parse(string(raw))
	if err != nil {
		return nil, err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: top level is %T, want object", name, v)
	}
	return doc, nil
}

func section(doc map[string]any, key string) map[string]any {
	m, _ := doc[key].(map[string]any)
	return m
}

func overlayGenerators(dst map[string]Generator, src map[string]any) {
	for id, raw := range src {
		fields, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		g := dst[id]
		g.ID = id
		g.Name = str(fields, "name", g.Name)
		g.Icon = str(fields, "icon", g.Icon)
		g.Flavor = str(fields, "flavor", g.Flavor)
		g.Category = str(fields, "category", g.Category)
		g.BaseCost = num(fields, "base_cost", g.BaseCost)
		g.BaseProduction = num(fields, "base_production", g.BaseProduction)
		g.CostMultiplier = num(fields, "cost_multiplier", g.CostMultiplier)
		g.UnlockThreshold = num(fields, "unlock_threshold", g.UnlockThreshold)
		dst[id] = g
	}
}

func overlayUpgrades(dst map[string]Upgrade, src map[string]any) {
	for id, raw := range src {
		fields, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		u := dst[id]
		u.ID = id
		u.Name = str(fields, "name", u.Name)
		u.Icon = str(fields, "icon", u.Icon)
		u.Description = str(fields, "description", u.Description)
		u.Category = str(fields, "category", u.Category)
		u.BaseCost = num(fields, "base_cost", u.BaseCost)
		u.CostMultiplier = num(fields, "cost_multiplier", u.CostMultiplier)
		u.Effect = num(fields, "effect", u.Effect)
		u.MaxLevel = integer(fields, "max_level", u.MaxLevel)
		dst[id] = u
	}
}

func loadCompressionGenerators(src map[string]any) {
	for id, raw := range src {
		fields, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		CompressionGenerators[id] = CompressionGenerator{
			ID:                 id,
			Name:               str(fields, "name", id),
			Icon:               str(fields, "icon", ""),
			BaseCost:           num(fields, "base_cost", 0),
			BaseProduction:     num(fields, "base_production", 0),
			OverheadProduction: num(fields, "overhead_production", 0),
			CostMultiplier:     num(fields, "cost_multiplier", 1.15),
		}
	}
}

func loadShardUpgrades(dst map[string]ShardUpgrade, src map[string]any) {
	for id, raw := range src {
		fields, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		dst[id] = ShardUpgrade{
			ID:             id,
			Name:           str(fields, "name", id),
			Icon:           str(fields, "icon", ""),
			Description:    str(fields, "description", ""),
			EffectType:     str(fields, "effect_type", ""),
			BaseCost:       integer(fields, "base_cost", 1),
			CostScale:      integer(fields, "cost_scale", 1),
			EffectPerLevel: num(fields, "effect_per_level", 0),
			MaxLevel:       integer(fields, "max_level", 1),
		}
	}
}

func str(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}

func num(m map[string]any, key string, def float64) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return def
}

func integer(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}
