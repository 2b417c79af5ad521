package persist

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func sampleRecord() Record {
	return Record{
		Version: Version,
		Player: PlayerRecord{
			HP: 4, MaxHP: 5, XP: 7, Level: 3, XPToNext: 25,
			SkillPoints: 1, SpellsUnlocked: []int{0, 1, 2}, DamageBonus: 1,
		},
		Game:     GameRecord{Wave: 6, ZoneIndex: 1},
		Settings: &Settings{SFXEnabled: false, MusicEnabled: true},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "save.json"))
	want := sampleRecord()

	if store.Exists() {
		t.Fatal("fresh store reports an existing save")
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !store.Exists() {
		t.Fatal("save file missing after Save")
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Player.Level != want.Player.Level || got.Player.HP != want.Player.HP ||
		got.Player.XP != want.Player.XP || got.Player.DamageBonus != want.Player.DamageBonus {
		t.Errorf("player = %+v, want %+v", got.Player, want.Player)
	}
	if !slices.Equal(got.Player.SpellsUnlocked, want.Player.SpellsUnlocked) {
		t.Errorf("spells = %v, want %v", got.Player.SpellsUnlocked, want.Player.SpellsUnlocked)
	}
	if got.Game != want.Game {
		t.Errorf("game = %+v, want %+v", got.Game, want.Game)
	}
	if got.Settings == nil || *got.Settings != *want.Settings {
		t.Errorf("settings = %v, want %v", got.Settings, want.Settings)
	}
}

func TestFileStoreMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nothing.json"))
	if _, err := store.Load(); !errors.Is(err, ErrNoSave) {
		t.Errorf("Load on missing file = %v, want ErrNoSave", err)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"wrong version", `{"version":1,"player":{"hp":3,"maxHp":3,"level":1,"xpToNext":15,"spellsUnlocked":[0]},"game":{"wave":1}}`},
		{"zero level", `{"version":2,"player":{"hp":3,"maxHp":3,"level":0,"xpToNext":15,"spellsUnlocked":[0]},"game":{"wave":1}}`},
		{"duplicate spell", `{"version":2,"player":{"hp":3,"maxHp":3,"level":1,"xpToNext":15,"spellsUnlocked":[0,0]},"game":{"wave":1}}`},
		{"no wave", `{"version":2,"player":{"hp":3,"maxHp":3,"level":1,"xpToNext":15,"spellsUnlocked":[0]},"game":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "save.json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := NewFileStore(path).Load()
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Load = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestMemoryStore(t *testing.T) {
	var store MemoryStore
	if _, err := store.Load(); !errors.Is(err, ErrNoSave) {
		t.Errorf("empty store Load = %v, want ErrNoSave", err)
	}
	if err := store.Save(sampleRecord()); err != nil {
		t.Fatal(err)
	}
	if r, err := store.Load(); err != nil || r.Game.Wave != 6 {
		t.Errorf("Load = %+v, %v", r, err)
	}
	store.SetRaw([]byte("garbage"))
	if _, err := store.Load(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("garbage Load = %v, want ErrCorrupt", err)
	}
}

func TestSettingsStore(t *testing.T) {
	dir := t.TempDir()
	store := NewSettingsStore(filepath.Join(dir, "settings.yaml"))

	st, err := store.Load()
	if err != nil || st != DefaultSettings() {
		t.Errorf("missing settings = %+v, %v; want defaults", st, err)
	}

	if err := store.Save(Settings{SFXEnabled: false, MusicEnabled: true}); err != nil {
		t.Fatal(err)
	}
	st, err = store.Load()
	if err != nil || st.SFXEnabled || !st.MusicEnabled {
		t.Errorf("reloaded settings = %+v, %v", st, err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("sfx_enabled: [nope"), 0644); err != nil {
		t.Fatal(err)
	}
	st, err = NewSettingsStore(bad).Load()
	if err == nil || st != DefaultSettings() {
		t.Errorf("malformed settings = %+v, %v; want defaults and an error", st, err)
	}
}
