package game

import (
	"fmt"
	"image/color"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/systems"
)

// EnemyView is the render state of one enemy.
type EnemyView struct {
	ID       uint32
	Type     string
	Name     string
	X, Y     float64
	Radius   float64
	Color    color.RGBA
	HP       int
	MaxHP    int
	Health   float64 // HP/MaxHP in [0,1]
	Flashing bool
	Slowed   bool
	Targeted bool
}

// ProjectileView is the render state of one projectile.
type ProjectileView struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
	Enemy  bool
}

// ParticleView is the render state of one particle.
type ParticleView struct {
	X, Y  float64
	Size  float64
	Color color.RGBA
	Alpha float64
}

// SpellView is the HUD state of one spell slot.
type SpellView struct {
	Slot     int
	Name     string
	Color    color.RGBA
	Ready    bool
	Cooldown float64 // Remaining fraction in [0,1]
}

// View is a read-only snapshot of everything the renderer and UI draw.
type View struct {
	Phase       Phase
	Paused      bool
	Wave        int
	ZoneName    string
	Background  color.RGBA
	PromptReady bool

	// Set during a wave transition
	Banner       string
	TransitionMs float64

	Player      components.Player
	PlayerColor color.RGBA

	Enemies     []EnemyView
	Projectiles []ProjectileView
	Particles   []ParticleView
	Spells      []SpellView
	Log         []string
}

// View builds a snapshot of the current state. Nothing in the snapshot
// aliases simulation memory.
func (g *Game) View() View {
	zone := g.cfg.Zones[min(g.zone, len(g.cfg.Zones)-1)]
	v := View{
		Phase:       g.phase,
		Paused:      g.paused,
		Wave:        g.wave,
		ZoneName:    zone.Name,
		Background:  zone.Background.ToRGBA(),
		PromptReady: g.PromptReady(),
		Player:      g.Player(),
		PlayerColor: g.cfg.Player.Color.ToRGBA(),
		Log:         g.battleLog.Lines(),
	}
	if g.phase == PhaseWaveTransition {
		v.Banner = waveBanner(g.wave - 1)
		v.TransitionMs = g.transitionMs
	}

	targetID, hasTarget := g.Target()
	v.Enemies = make([]EnemyView, 0, len(g.roster))
	for _, id := range g.roster {
		pos, body, en, st := g.enemyMap.Get(g.enemies[id])
		v.Enemies = append(v.Enemies, EnemyView{
			ID:       id,
			Type:     en.Type,
			Name:     en.Name,
			X:        pos.X,
			Y:        pos.Y,
			Radius:   body.Radius,
			Color:    en.Color,
			HP:       max(en.HP, 0),
			MaxHP:    en.MaxHP,
			Health:   systems.HealthRatio(en.HP, en.MaxHP),
			Flashing: st.FlashMs > 0,
			Slowed:   st.Slowed(),
			Targeted: hasTarget && id == targetID,
		})
	}

	shots := g.shotFilter.Query()
	for shots.Next() {
		pos, _, body, proj := shots.Get()
		v.Projectiles = append(v.Projectiles, ProjectileView{
			X: pos.X, Y: pos.Y,
			Radius: body.Radius,
			Color:  proj.Color,
			Enemy:  proj.Origin == components.OriginEnemy,
		})
	}

	parts := g.particleFilter.Query()
	for parts.Next() {
		pos, _, p := parts.Get()
		v.Particles = append(v.Particles, ParticleView{
			X: pos.X, Y: pos.Y,
			Size:  p.Size,
			Color: p.Color,
			Alpha: p.Alpha(),
		})
	}

	v.Spells = make([]SpellView, len(g.spells))
	for i, s := range g.spells {
		v.Spells[i] = SpellView{
			Slot:     i,
			Name:     s.Template.Name,
			Color:    s.Template.Color,
			Ready:    s.Ready,
			Cooldown: s.CooldownRatio(),
		}
	}
	return v
}

func waveBanner(cleared int) string {
	return fmt.Sprintf("Wave %d Complete!", cleared)
}
