// Package game runs the arena simulation: one player, waves of enemies,
// homing spells and the combat rules that tie them together.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/config"
	"github.com/pthm-cable/arena/events"
	"github.com/pthm-cable/arena/persist"
	"github.com/pthm-cable/arena/systems"
	"github.com/pthm-cable/arena/telemetry"
)

// Phase is the run state machine position.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhaseWaveInProgress
	PhaseWaveTransition
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseWaveInProgress:
		return "wave"
	case PhaseWaveTransition:
		return "transition"
	case PhaseGameOver:
		return "game-over"
	}
	return fmt.Sprintf("phase(%d)", p)
}

// Playing reports whether a run is active.
func (p Phase) Playing() bool {
	return p == PhaseWaveInProgress || p == PhaseWaveTransition
}

// SettingsSaver persists audio settings.
type SettingsSaver interface {
	Save(persist.Settings) error
}

// Options configures a new Game.
type Options struct {
	Seed int64

	Store         persist.Store // nil disables saving
	SettingsStore SettingsSaver // nil keeps settings in memory
	Settings      persist.Settings

	// OnSettings is called whenever the audio settings change.
	OnSettings func(persist.Settings)

	// Sinks receive every simulation event after each tick.
	Sinks []events.Sink

	// Run number stamped on telemetry rows.
	Run int

	// LogEvents mirrors battle log lines to slog.
	LogEvents bool
}

type enemyMapper = ecs.Map4[components.Position, components.Body, components.Enemy, components.Status]
type enemyFilter = ecs.Filter4[components.Position, components.Body, components.Enemy, components.Status]
type shotMapper = ecs.Map4[components.Position, components.Velocity, components.Body, components.Projectile]
type shotFilter = ecs.Filter4[components.Position, components.Velocity, components.Body, components.Projectile]
type particleMapper = ecs.Map3[components.Position, components.Velocity, components.Particle]
type particleFilter = ecs.Filter3[components.Position, components.Velocity, components.Particle]

// Game holds the complete simulation state. All mutation happens inside
// Update or a command method; nothing here is safe for concurrent use.
type Game struct {
	cfg   *config.Config
	rng   *rand.Rand // Spawner draws
	fxRng *rand.Rand // Cosmetic particles

	world          *ecs.World
	enemyMap       *enemyMapper
	enemyFilter    *enemyFilter
	shotMap        *shotMapper
	shotFilter     *shotFilter
	particleMap    *particleMapper
	particleFilter *particleFilter
	posMap         *ecs.Map1[components.Position]

	// Spatial index over live enemies
	grid *systems.SpatialGrid

	player  components.Player
	catalog []components.SpellTemplate
	spells  []components.SpellSlot

	// Live roster: ids in spawn order, plus id -> entity
	roster  []uint32
	enemies map[uint32]ecs.Entity
	nextID  uint32
	target  int

	phase  Phase
	paused bool
	wave   int
	zone   int

	transitionMs float64
	promptMs     float64
	pointerX     float64
	pointerY     float64

	tick    int64
	clockMs float64
	run     int

	queue         *events.Queue
	battleLog     *BattleLog
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	store         persist.Store
	settingsStore SettingsSaver
	settings      persist.Settings
	onSettings    func(persist.Settings)

	// Scratch buffers reused across ticks
	shotScratch     []ecs.Entity
	particleScratch []ecs.Entity
	neighbors       []systems.Neighbor
}

// NewGame creates a game sitting at the main menu.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	catalog, err := buildCatalog(cfg)
	if err != nil {
		return nil, err
	}
	for _, e := range cfg.Enemies {
		if _, ok := components.ParseBehavior(e.Behavior); !ok {
			return nil, fmt.Errorf("enemy %q: unknown behavior %q", e.Type, e.Behavior)
		}
		if _, ok := components.ParseSpecial(e.Special); !ok {
			return nil, fmt.Errorf("enemy %q: unknown special %q", e.Type, e.Special)
		}
	}

	g := &Game{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		fxRng:         rand.New(rand.NewSource(opts.Seed + 1)),
		catalog:       catalog,
		enemies:       make(map[uint32]ecs.Entity),
		phase:         PhaseMenu,
		wave:          1,
		queue:         events.NewQueue(),
		battleLog:     NewBattleLog(cfg.Telemetry.BattleLogLines, opts.LogEvents),
		collector:     telemetry.NewCollector(opts.Run),
		run:           opts.Run,
		perf:          telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow, time.Duration(cfg.Arena.FrameMs*float64(time.Millisecond))),
		store:         opts.Store,
		settingsStore: opts.SettingsStore,
		settings:      opts.Settings,
		onSettings:    opts.OnSettings,
		pointerX:      cfg.Player.StartX,
		pointerY:      cfg.Player.StartY,
	}
	g.initWorld()
	g.resetPlayer()

	g.queue.Subscribe(g.battleLog)
	g.queue.Subscribe(g.collector)
	for _, s := range opts.Sinks {
		g.queue.Subscribe(s)
	}

	return g, nil
}

// initWorld replaces the ECS world, dropping every entity.
func (g *Game) initWorld() {
	world := ecs.NewWorld()
	g.world = world
	g.enemyMap = ecs.NewMap4[components.Position, components.Body, components.Enemy, components.Status](world)
	g.enemyFilter = ecs.NewFilter4[components.Position, components.Body, components.Enemy, components.Status](world)
	g.shotMap = ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Projectile](world)
	g.shotFilter = ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Projectile](world)
	g.particleMap = ecs.NewMap3[components.Position, components.Velocity, components.Particle](world)
	g.particleFilter = ecs.NewFilter3[components.Position, components.Velocity, components.Particle](world)
	g.posMap = ecs.NewMap1[components.Position](world)

	g.grid = systems.NewSpatialGrid(g.cfg.Arena.Width, g.cfg.Arena.Height, g.cfg.Combat.SplashRadius)

	g.roster = g.roster[:0]
	clear(g.enemies)
	g.target = 0
}

// buildCatalog converts the configured spells into templates.
func buildCatalog(cfg *config.Config) ([]components.SpellTemplate, error) {
	catalog := make([]components.SpellTemplate, 0, len(cfg.Spells))
	for _, s := range cfg.Spells {
		kind, ok := components.ParseSpellKind(s.Kind)
		if !ok {
			return nil, fmt.Errorf("spell %d: unknown kind %q", s.ID, s.Kind)
		}
		effect, ok := components.ParseEffect(s.Effect)
		if !ok {
			return nil, fmt.Errorf("spell %d: unknown effect %q", s.ID, s.Effect)
		}
		catalog = append(catalog, components.SpellTemplate{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Color:           s.Color.ToRGBA(),
			CooldownMs:      s.CooldownMs,
			BaseDamage:      s.BaseDamage,
			UnlockLevel:     s.UnlockLevel,
			Sound:           s.Sound,
			Kind:            kind,
			ProjectileSpeed: s.ProjectileSpeed,
			ProjectileSize:  s.ProjectileSize,
			Effect:          effect,
		})
	}
	return catalog, nil
}

// template returns the catalog entry for a spell id.
func (g *Game) template(id int) (components.SpellTemplate, bool) {
	i, ok := g.cfg.Derived.SpellIndex[id]
	if !ok {
		return components.SpellTemplate{}, false
	}
	return g.catalog[i], true
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Phase returns the current run phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Paused reports whether the simulation is frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// Wave returns the wave number in progress, or the next one during a transition.
func (g *Game) Wave() int {
	return g.wave
}

// Zone returns the current zone index.
func (g *Game) Zone() int {
	return g.zone
}

// Player returns a copy of the player state.
func (g *Game) Player() components.Player {
	p := g.player
	p.SpellsUnlocked = append([]int(nil), g.player.SpellsUnlocked...)
	return p
}

// Spells returns a copy of the active spell slots.
func (g *Game) Spells() []components.SpellSlot {
	return append([]components.SpellSlot(nil), g.spells...)
}

// Roster returns the live enemy ids in roster order.
func (g *Game) Roster() []uint32 {
	return append([]uint32(nil), g.roster...)
}

// Target returns the id of the current target, if any.
func (g *Game) Target() (uint32, bool) {
	if len(g.roster) == 0 {
		return 0, false
	}
	return g.roster[g.target], true
}

// TargetIndex returns the roster index of the current target.
func (g *Game) TargetIndex() int {
	return g.target
}

// Tick returns the number of simulated ticks.
func (g *Game) Tick() int64 {
	return g.tick
}

// ClockMs returns the simulated time in milliseconds.
func (g *Game) ClockMs() float64 {
	return g.clockMs
}

// Settings returns the audio settings.
func (g *Game) Settings() persist.Settings {
	return g.settings
}

// BattleLog returns the battle log.
func (g *Game) BattleLog() *BattleLog {
	return g.battleLog
}

// Collector returns the per-wave telemetry collector.
func (g *Game) Collector() *telemetry.Collector {
	return g.collector
}

// Perf returns the performance collector.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perf
}

// PromptReady reports whether the game-over prompt delay has elapsed.
func (g *Game) PromptReady() bool {
	return g.phase == PhaseGameOver && g.promptMs <= 0
}

// TransitionRemaining returns the time left before the next wave spawns.
func (g *Game) TransitionRemaining() float64 {
	if g.phase != PhaseWaveTransition {
		return 0
	}
	return g.transitionMs
}

// emit stamps and queues an event.
func (g *Game) emit(e events.Event) {
	e.TimeMs = g.clockMs
	if e.Wave == 0 {
		e.Wave = g.wave
	}
	g.queue.Push(e)
}
