package game

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/balance"
)

func TestSaveRoundTrip(t *testing.T) {
	st := balance.NewState()
	st.Bits = 1234.5
	st.TotalEarned = 99999
	st.GeneratorCounts["rng"] = 7
	st.UpgradeLevels["click_power"] = 3
	st.Inventions["define_bit"] = true
	st.Generation = 2
	st.DataShards = 11
	settings := Settings{Rain: false, Particles: true, CRT: true, Quality: 1}

	path := filepath.Join(t.TempDir(), "save.json")
	if err := SaveToFile(path, st, settings); err != nil {
		t.Fatalf("save: %v", err)
	}
	blob, away, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if away > time.Minute {
		t.Fatalf("away time = %v", away)
	}
	got := blob.State
	if got.Bits != st.Bits || got.TotalEarned != st.TotalEarned {
		t.Fatalf("currency mismatch: %+v", got)
	}
	if got.GeneratorCounts["rng"] != 7 || got.UpgradeLevels["click_power"] != 3 {
		t.Fatal("purchases lost")
	}
	if !got.Inventions["define_bit"] || got.Generation != 2 || got.DataShards != 11 {
		t.Fatal("meta progress lost")
	}
	if blob.Settings != settings {
		t.Fatalf("settings mismatch: %+v", blob.Settings)
	}
}

func TestDecodeSaveRejectsBadBlobs(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"garbage", "not json"},
		{"no version", `{"state":{}}`},
		{"future version", `{"version":99,"state":{}}`},
		{"no state", `{"version":1}`},
	}
	for _, c := range cases {
		if _, err := DecodeSave([]byte(c.data)); err == nil {
			t.Errorf("%s: accepted", c.name)
		}
	}
}

func TestDecodeSaveNormalizes(t *testing.T) {
	blob, err := DecodeSave([]byte(`{"version":1,"state":{"bits":5}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	st := blob.State
	if st.GeneratorCounts == nil || st.BinaryEfficiency != 1 {
		t.Fatalf("state not normalized: %+v", st)
	}
	// A normalized load must be playable immediately.
	st.GeneratorCounts["rng"] = 1
	if st.ProductionRate() != 1 {
		t.Fatalf("rate = %v", st.ProductionRate())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing file load succeeded")
	}
}
