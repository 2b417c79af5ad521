// Package persist saves and restores run progress and player settings.
package persist

import (
	"errors"
	"fmt"
)

// Version is the save schema written by this build.
const Version = 2

var (
	// ErrNoSave is returned when no saved run exists.
	ErrNoSave = errors.New("no saved game")
	// ErrCorrupt is returned when a saved run cannot be used.
	ErrCorrupt = errors.New("saved game is corrupt")
)

// PlayerRecord is the persisted player progress.
type PlayerRecord struct {
	HP             int   `json:"hp"`
	MaxHP          int   `json:"maxHp"`
	XP             int   `json:"xp"`
	Level          int   `json:"level"`
	XPToNext       int   `json:"xpToNext"`
	SkillPoints    int   `json:"skillPoints"`
	SpellsUnlocked []int `json:"spellsUnlocked"`
	DamageBonus    int   `json:"damageBonus"`
}

// GameRecord is the persisted run position.
type GameRecord struct {
	Wave      int `json:"wave"`
	ZoneIndex int `json:"zoneIndex"`
}

// Settings are the player's audio preferences.
type Settings struct {
	SFXEnabled   bool `json:"sfxEnabled" yaml:"sfx_enabled"`
	MusicEnabled bool `json:"musicEnabled" yaml:"music_enabled"`
}

// DefaultSettings enables all audio.
func DefaultSettings() Settings {
	return Settings{SFXEnabled: true, MusicEnabled: true}
}

// Record is one saved run.
type Record struct {
	Version  int          `json:"version"`
	Player   PlayerRecord `json:"player"`
	Game     GameRecord   `json:"game"`
	Settings *Settings    `json:"settings,omitempty"`
}

// Validate checks that the record describes a playable run.
func (r Record) Validate() error {
	if r.Version != Version {
		return fmt.Errorf("unsupported version %d", r.Version)
	}
	p := r.Player
	switch {
	case p.Level < 1:
		return fmt.Errorf("level %d below 1", p.Level)
	case p.MaxHP < 1:
		return fmt.Errorf("max hp %d below 1", p.MaxHP)
	case p.HP < 1 || p.HP > p.MaxHP:
		return fmt.Errorf("hp %d outside 1..%d", p.HP, p.MaxHP)
	case p.XP < 0 || p.XPToNext < 1:
		return fmt.Errorf("xp %d/%d invalid", p.XP, p.XPToNext)
	case p.SkillPoints < 0:
		return fmt.Errorf("negative skill points %d", p.SkillPoints)
	case len(p.SpellsUnlocked) == 0:
		return errors.New("no spells unlocked")
	case r.Game.Wave < 1:
		return fmt.Errorf("wave %d below 1", r.Game.Wave)
	case r.Game.ZoneIndex < 0:
		return fmt.Errorf("negative zone index %d", r.Game.ZoneIndex)
	}

	seen := make(map[int]bool, len(p.SpellsUnlocked))
	for _, id := range p.SpellsUnlocked {
		if seen[id] {
			return fmt.Errorf("spell %d unlocked twice", id)
		}
		seen[id] = true
	}
	return nil
}

// Store persists a single run.
type Store interface {
	Save(Record) error
	Load() (Record, error)
}

// MemoryStore keeps the record in memory. The zero value is empty.
type MemoryStore struct {
	data []byte
}

// Save encodes r into memory.
func (m *MemoryStore) Save(r Record) error {
	data, err := encode(r)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

// Load decodes the stored record.
func (m *MemoryStore) Load() (Record, error) {
	if m.data == nil {
		return Record{}, ErrNoSave
	}
	return decode(m.data)
}

// SetRaw replaces the stored bytes, valid or not.
func (m *MemoryStore) SetRaw(data []byte) {
	m.data = data
}
