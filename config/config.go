// Package config provides configuration loading and access for the arena.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all arena configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Player    PlayerConfig    `yaml:"player"`
	Spells    []SpellConfig   `yaml:"spells"`
	Enemies   []EnemyConfig   `yaml:"enemies"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Combat    CombatConfig    `yaml:"combat"`
	Waves     WavesConfig     `yaml:"waves"`
	Zones     []ZoneConfig    `yaml:"zones"`
	Particles ParticlesConfig `yaml:"particles"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Save      SaveConfig      `yaml:"save"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds playfield dimensions and the time base.
type ArenaConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	GridSize float64 `yaml:"grid_size"`
	FrameMs  float64 `yaml:"frame_ms"` // Reference frame length; per-frame speeds are scaled by dt/frame_ms
}

// PlayerConfig holds the starting player stats.
type PlayerConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Size           float64 `yaml:"size"`
	Speed          float64 `yaml:"speed"` // Max units per tick on each axis
	MaxHP          int     `yaml:"max_hp"`
	InvulnerableMs float64 `yaml:"invulnerable_ms"`
	StartingSpells []int   `yaml:"starting_spells"`
	Color          Color   `yaml:"color"`
}

// SpellConfig defines one entry of the spell catalog.
type SpellConfig struct {
	ID              int     `yaml:"id"`
	Name            string  `yaml:"name"`
	Description     string  `yaml:"description"`
	Color           Color   `yaml:"color"`
	CooldownMs      float64 `yaml:"cooldown_ms"`
	BaseDamage      int     `yaml:"base_damage"` // Negative heals the caster
	UnlockLevel     int     `yaml:"unlock_level"`
	Sound           string  `yaml:"sound"`
	Kind            string  `yaml:"kind"`             // bolt or heal
	ProjectileSpeed float64 `yaml:"projectile_speed"` // Fraction of remaining distance covered per frame
	ProjectileSize  float64 `yaml:"projectile_size"`
	Effect          string  `yaml:"effect"` // "", slow, splash
}

// EnemyConfig defines a named enemy preset.
type EnemyConfig struct {
	Type             string  `yaml:"type"`
	Name             string  `yaml:"name"`
	Color            Color   `yaml:"color"`
	Speed            float64 `yaml:"speed"`
	Health           int     `yaml:"health"`
	Attack           int     `yaml:"attack"`
	XP               int     `yaml:"xp"`
	Size             float64 `yaml:"size"`
	Behavior         string  `yaml:"behavior"` // melee or ranged
	AttackRange      float64 `yaml:"attack_range"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	AttackCooldownMs float64 `yaml:"attack_cooldown_ms"` // 0 = combat.default_attack_cooldown_ms
	Special          string  `yaml:"special"`            // "", heal, summon
}

// SpawnWeight is one entry of the regular-wave draw table.
type SpawnWeight struct {
	Type   string `yaml:"type"`
	Weight int    `yaml:"weight"`
}

// PoolEntry gates an enemy type behind a minimum wave.
type PoolEntry struct {
	Type    string `yaml:"type"`
	MinWave int    `yaml:"min_wave"`
}

// LayoutConfig holds the deterministic spawn grid.
type LayoutConfig struct {
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
	Columns  int     `yaml:"columns"`
	SpacingX float64 `yaml:"spacing_x"`
	SpacingY float64 `yaml:"spacing_y"`
}

// SpawnerConfig holds wave population parameters.
type SpawnerConfig struct {
	BossEvery    int           `yaml:"boss_every"`
	BossType     string        `yaml:"boss_type"`
	BaseCount    int           `yaml:"base_count"`
	CountPerWave float64       `yaml:"count_per_wave"`
	HealthScale  float64       `yaml:"health_scale"` // health *= 1 + wave*health_scale
	XPScale      float64       `yaml:"xp_scale"`     // xp *= 1 + wave*xp_scale
	Weights      []SpawnWeight `yaml:"weights"`
	Pool         []PoolEntry   `yaml:"pool"`
	Layout       LayoutConfig  `yaml:"layout"`
}

// CombatConfig holds damage, status and AI tuning.
type CombatConfig struct {
	HitFlashMs              float64 `yaml:"hit_flash_ms"`
	SlowMs                  float64 `yaml:"slow_ms"`
	SlowFactor              float64 `yaml:"slow_factor"`
	SplashRadius            float64 `yaml:"splash_radius"`
	SplashFraction          float64 `yaml:"splash_fraction"`
	MeleeReach              float64 `yaml:"melee_reach"`
	KiteFraction            float64 `yaml:"kite_fraction"`
	KiteSpeedFactor         float64 `yaml:"kite_speed_factor"`
	HealRadius              float64 `yaml:"heal_radius"`
	HealAmount              int     `yaml:"heal_amount"`
	HealThreshold           float64 `yaml:"heal_threshold"`
	HealCooldownFactor      float64 `yaml:"heal_cooldown_factor"`
	EnemyProjectileSize     float64 `yaml:"enemy_projectile_size"`
	DefaultAttackCooldownMs float64 `yaml:"default_attack_cooldown_ms"`
	XPBase                  int     `yaml:"xp_base"`
	XPPerLevel              int     `yaml:"xp_per_level"`
}

// WavesConfig holds phase transition delays.
type WavesConfig struct {
	TransitionMs     float64 `yaml:"transition_ms"`
	GameOverPromptMs float64 `yaml:"game_over_prompt_ms"`
}

// ZoneConfig describes one arena zone.
type ZoneConfig struct {
	Name       string `yaml:"name"`
	Background Color  `yaml:"background"`
}

// BurstConfig describes a cosmetic particle burst.
type BurstConfig struct {
	Count int     `yaml:"count"`
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	Life  float64 `yaml:"life"` // In frames
}

// ParticlesConfig holds burst presets.
type ParticlesConfig struct {
	Hit        BurstConfig `yaml:"hit"`
	Shot       BurstConfig `yaml:"shot"`
	Cast       BurstConfig `yaml:"cast"`
	Heal       BurstConfig `yaml:"heal"`
	PlayerHit  BurstConfig `yaml:"player_hit"`
	HealColor  Color       `yaml:"heal_color"`
	DamageTint Color       `yaml:"damage_tint"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfCollectorWindow int `yaml:"perf_collector_window"`
	BattleLogLines      int `yaml:"battle_log_lines"`
}

// SaveConfig holds persistence locations.
type SaveConfig struct {
	Path         string `yaml:"path"`
	SettingsPath string `yaml:"settings_path"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SpellIndex  map[int]int    // spell id -> index in Spells
	EnemyIndex  map[string]int // enemy type -> index in Enemies
	TotalWeight int            // Sum of Spawner.Weights
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.SpellIndex = make(map[int]int, len(c.Spells))
	for i, s := range c.Spells {
		c.Derived.SpellIndex[s.ID] = i
	}

	c.Derived.EnemyIndex = make(map[string]int, len(c.Enemies))
	for i, e := range c.Enemies {
		c.Derived.EnemyIndex[e.Type] = i
	}

	c.Derived.TotalWeight = 0
	for _, w := range c.Spawner.Weights {
		c.Derived.TotalWeight += w.Weight
	}

	if c.Arena.FrameMs <= 0 {
		c.Arena.FrameMs = 16
	}
}

func (c *Config) validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return errors.New("arena dimensions must be positive")
	}
	if c.Arena.GridSize <= 0 {
		return errors.New("arena.grid_size must be positive")
	}
	if c.Player.MaxHP < 1 {
		return errors.New("player.max_hp must be at least 1")
	}
	for _, id := range c.Player.StartingSpells {
		if _, ok := c.Derived.SpellIndex[id]; !ok {
			return fmt.Errorf("starting spell %d not in catalog", id)
		}
	}
	if c.Derived.TotalWeight <= 0 {
		return errors.New("spawner weights must sum to a positive value")
	}
	for _, w := range c.Spawner.Weights {
		if _, ok := c.Derived.EnemyIndex[w.Type]; !ok {
			return fmt.Errorf("spawn weight references unknown enemy type %q", w.Type)
		}
	}
	if _, ok := c.Derived.EnemyIndex[c.Spawner.BossType]; !ok {
		return fmt.Errorf("boss type %q not in enemy presets", c.Spawner.BossType)
	}
	if c.Spawner.BossEvery < 1 || c.Spawner.Layout.Columns < 1 {
		return errors.New("spawner.boss_every and layout.columns must be at least 1")
	}
	if len(c.Zones) == 0 {
		return errors.New("at least one zone is required")
	}
	return nil
}

// Spell returns the catalog entry for id.
func (c *Config) Spell(id int) (SpellConfig, bool) {
	i, ok := c.Derived.SpellIndex[id]
	if !ok {
		return SpellConfig{}, false
	}
	return c.Spells[i], true
}

// Enemy returns the preset for the given type.
func (c *Config) Enemy(typ string) (EnemyConfig, bool) {
	i, ok := c.Derived.EnemyIndex[typ]
	if !ok {
		return EnemyConfig{}, false
	}
	return c.Enemies[i], true
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
