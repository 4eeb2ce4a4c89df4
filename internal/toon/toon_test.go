package toon

import (
	"strings"
	"testing"
)

func TestParseFlatObject(t *testing.T) {
	doc := "name: Bit by Bit\nfps: 60\nratio: 1.15\nenabled: true\nempty: null\n"
	obj, err := ParseObject(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if obj["name"] != "Bit by Bit" {
		t.Errorf("name = %v", obj["name"])
	}
	if obj["fps"] != int64(60) {
		t.Errorf("fps = %v (%T)", obj["fps"], obj["fps"])
	}
	if obj["ratio"] != 1.15 {
		t.Errorf("ratio = %v", obj["ratio"])
	}
	if obj["enabled"] != true {
		t.Errorf("enabled = %v", obj["enabled"])
	}
	if v, ok := obj["empty"]; !ok || v != nil {
		t.Errorf("empty = %v ok=%v", v, ok)
	}
}

func TestParseNestedObject(t *testing.T) {
	doc := strings.Join([]string{
		"display:",
		"  width: 1200",
		"  height: 800",
		"game:",
		"  save_file: save.json",
	}, "\n")
	obj, err := ParseObject(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	display, ok := obj["display"].(map[string]any)
	if !ok {
		t.Fatalf("display = %T", obj["display"])
	}
	if display["width"] != int64(1200) || display["height"] != int64(800) {
		t.Errorf("display = %v", display)
	}
	game := obj["game"].(map[string]any)
	if game["save_file"] != "save.json" {
		t.Errorf("game = %v", game)
	}
}

func TestParseInlineArray(t *testing.T) {
	obj, err := ParseObject("tags[3]: cpu,ram,gpu\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tags, ok := obj["tags"].([]any)
	if !ok || len(tags) != 3 {
		t.Fatalf("tags = %#v", obj["tags"])
	}
	if tags[0] != "cpu" || tags[2] != "gpu" {
		t.Errorf("tags = %v", tags)
	}
}

func TestParseListItemObjects(t *testing.T) {
	doc := strings.Join([]string{
		"generators[2]:",
		"  - id: rng",
		"    base_cost: 10",
		"    base_production: 1",
		"  - id: biased_coin",
		"    base_cost: 100",
		"    base_production: 8",
	}, "\n")
	obj, err := ParseObject(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	gens, ok := obj["generators"].([]any)
	if !ok || len(gens) != 2 {
		t.Fatalf("generators = %#v", obj["generators"])
	}
	first := gens[0].(map[string]any)
	if first["id"] != "rng" || first["base_cost"] != int64(10) {
		t.Errorf("first = %v", first)
	}
	second := gens[1].(map[string]any)
	if second["base_production"] != int64(8) {
		t.Errorf("second = %v", second)
	}
}

func TestStrictLengthMismatch(t *testing.T) {
	if _, err := ParseObject("tags[5]: a,b\n"); err == nil {
		t.Fatal("want length mismatch error")
	}
	p := &Parser{Strict: false}
	v, err := p.Parse("tags[5]: a,b\n")
	if err != nil {
		t.Fatalf("lenient parse: %v", err)
	}
	if tags := v.(map[string]any)["tags"].([]any); len(tags) != 2 {
		t.Errorf("lenient tags = %v", tags)
	}
}

func TestQuotedStringsAndEscapes(t *testing.T) {
	obj, err := ParseObject(`flavor: "Pure chaos. Maximum entropy."` + "\n" + `multi: "line1\nline2"` + "\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if obj["flavor"] != "Pure chaos. Maximum entropy." {
		t.Errorf("flavor = %q", obj["flavor"])
	}
	if obj["multi"] != "line1\nline2" {
		t.Errorf("multi = %q", obj["multi"])
	}
}

func TestInlineArrayQuotedDelimiter(t *testing.T) {
	obj, err := ParseObject(`names[2]: "a,b",c` + "\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	names := obj["names"].([]any)
	if names[0] != "a,b" || names[1] != "c" {
		t.Errorf("names = %v", names)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := map[string]any{
		"display": map[string]any{
			"width":  int64(1200),
			"height": int64(800),
		},
		"name":    "Bit by Bit",
		"ratio":   1.15,
		"enabled": true,
		"tags":    []any{"cpu", "ram"},
	}
	out, err := ParseObject(string(Marshal(in)))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if out["name"] != "Bit by Bit" || out["ratio"] != 1.15 || out["enabled"] != true {
		t.Errorf("out = %v", out)
	}
	display := out["display"].(map[string]any)
	if display["width"] != int64(1200) {
		t.Errorf("display = %v", display)
	}
	tags := out["tags"].([]any)
	if len(tags) != 2 || tags[1] != "ram" {
		t.Errorf("tags = %v", tags)
	}
}

func TestEmptyDocument(t *testing.T) {
	v, err := Parse("\n\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if obj, ok := v.(map[string]any); !ok || len(obj) != 0 {
		t.Errorf("v = %#v", v)
	}
}
