package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game/balance"
)

const (
	saveVersion  = 1
	saveFileName = "save.json"
	autosaveSecs = 30
)

// Settings are the persisted visual toggles.
type Settings struct {
	Rain      bool `json:"rain"`
	Particles bool `json:"particles"`
	CRT       bool `json:"crt"`
	Quality   int  `json:"quality"`
}

// DefaultSettings enables everything at full quality.
func DefaultSettings() Settings {
	return Settings{Rain: true, Particles: true, CRT: false, Quality: int(QualityHigh)}
}

// SaveBlob is the versioned on-disk and clipboard format.
type SaveBlob struct {
	Version  int            `json:"version"`
	SavedAt  int64          `json:"savedAt"` // unix seconds
	State    *balance.State `json:"state"`
	Settings Settings       `json:"settings"`
}

// EncodeSave serializes the blob.
func EncodeSave(st *balance.State, settings Settings, now time.Time) ([]byte, error) {
	blob := SaveBlob{
		Version:  saveVersion,
		SavedAt:  now.Unix(),
		State:    st,
		Settings: settings,
	}
	return json.MarshalIndent(blob, "", "  ")
}

// DecodeSave validates and deserializes a blob. The state comes back
// normalized.
func DecodeSave(data []byte) (*SaveBlob, error) {
	var blob SaveBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, err
	}
	if blob.Version <= 0 || blob.Version > saveVersion {
		return nil, fmt.Errorf("unsupported save version %d", blob.Version)
	}
	if blob.State == nil {
		return nil, errors.New("save has no state")
	}
	blob.State.Normalize()
	return &blob, nil
}

// SaveToFile writes the save atomically into the profile dir.
func SaveToFile(path string, st *balance.State, settings Settings) error {
	data, err := EncodeSave(st, settings, time.Now())
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadFromFile reads a save, returning the away time alongside.
func LoadFromFile(path string) (*SaveBlob, time.Duration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	blob, err := DecodeSave(data)
	if err != nil {
		return nil, 0, err
	}
	away := time.Since(time.Unix(blob.SavedAt, 0))
	if away < 0 {
		away = 0
	}
	return blob, away, nil
}

// ExportToClipboard puts the JSON blob on the system clipboard.
func ExportToClipboard(st *balance.State, settings Settings) error {
	data, err := EncodeSave(st, settings, time.Now())
	if err != nil {
		return err
	}
	return clipboard.WriteAll(string(data))
}

// ImportFromClipboard reads and validates a blob from the clipboard.
func ImportFromClipboard() (*SaveBlob, error) {
	data, err := clipboard.ReadAll()
	if err != nil {
		return nil, err
	}
	return DecodeSave([]byte(data))
}

// autosaver tracks the periodic save timer for the app.
type autosaver struct {
	elapsed float64
}

// Tick reports true every autosave interval.
func (a *autosaver) Tick(dt float64) bool {
	a.elapsed += dt
	if a.elapsed >= autosaveSecs {
		a.elapsed = 0
		return true
	}
	return false
}

// saveNow persists to the default path, logging failures instead of
// interrupting play.
func saveNow(st *balance.State, settings Settings) {
	if err := SaveToFile(ConfigPath(saveFileName), st, settings); err != nil {
		log.Printf("save: %v", err)
	}
}
