package game

import "testing"

func TestProfileID(t *testing.T) {
	t.Setenv("BITBYBIT_PROFILE", "")
	if got := profileID(); got != "default" {
		t.Fatalf("default profile = %q", got)
	}
	t.Setenv("BITBYBIT_PROFILE", "Dev Save!")
	if got := profileID(); got != "dev_save" {
		t.Fatalf("sanitized profile = %q", got)
	}
}
