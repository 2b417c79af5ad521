package components

import "image/color"

// Effect is an optional on-hit modifier carried by a projectile.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectSlow
	EffectSplash
)

// ParseEffect maps a catalog tag to an Effect.
func ParseEffect(s string) (Effect, bool) {
	switch s {
	case "":
		return EffectNone, true
	case "slow":
		return EffectSlow, true
	case "splash":
		return EffectSplash, true
	}
	return EffectNone, false
}

func (e Effect) String() string {
	switch e {
	case EffectSlow:
		return "slow"
	case EffectSplash:
		return "splash"
	}
	return ""
}

// Origin distinguishes player bolts from enemy shots.
type Origin uint8

const (
	OriginPlayer Origin = iota // Homing toward TargetID
	OriginEnemy                // Ballistic along the entity's Velocity
)

// Projectile holds projectile state. Player projectiles home on TargetID with
// Speed as the fraction of the remaining distance covered per frame; enemy
// projectiles move along their Velocity component.
type Projectile struct {
	Origin   Origin
	TargetID uint32
	Speed    float64
	Damage   int
	SpellID  int
	Label    string
	Effect   Effect
	Color    color.RGBA
}

// Particle is a cosmetic spark with a countdown life measured in frames.
type Particle struct {
	Color   color.RGBA
	Size    float64
	Life    float64
	MaxLife float64
}

// Alpha returns the remaining life fraction in [0, 1].
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	if p.Life >= p.MaxLife {
		return 1
	}
	return p.Life / p.MaxLife
}
