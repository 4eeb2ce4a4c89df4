package game

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

func sanitize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	re := regexp.MustCompile(`[^a-z0-9._-]`)
	s = re.ReplaceAllString(s, "")
	if s == "" {
		s = "default"
	}
	return s
}

// profileID names the save profile. BITBYBIT_PROFILE (e.g. "dev")
// keeps a second save out of the main one; everything else shares
// "default".
func profileID() string {
	return sanitize(os.Getenv("BITBYBIT_PROFILE"))
}

// ConfigDir = OS config dir / BitByBit / profileID()
// Examples:
//
//	Windows: %APPDATA%\BitByBit\<profile>\
//	macOS:   ~/Library/Application Support/BitByBit/<profile>/
//	Linux:   ~/.config/BitByBit/<profile>/
func ConfigDir() string {
	root, _ := os.UserConfigDir()
	if root == "" {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, ".config")
	}
	dir := filepath.Join(root, "BitByBit", profileID())
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

func ConfigPath(name string) string {
	return filepath.Join(ConfigDir(), name)
}
