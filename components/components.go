// Package components defines ECS components for the arena simulation.
package components

import "image/color"

// Position represents an entity's arena position.
type Position struct {
	X, Y float64
}

// Velocity represents a per-frame displacement.
type Velocity struct {
	X, Y float64
}

// Body holds the collision radius.
type Body struct {
	Radius float64
}

// Behavior is the movement/attack model of an enemy.
type Behavior uint8

const (
	BehaviorMelee  Behavior = iota // Chase and strike on contact
	BehaviorRanged                 // Hold range, kite and shoot
)

// ParseBehavior maps a preset tag to a Behavior.
func ParseBehavior(s string) (Behavior, bool) {
	switch s {
	case "melee":
		return BehaviorMelee, true
	case "ranged":
		return BehaviorRanged, true
	}
	return BehaviorMelee, false
}

func (b Behavior) String() string {
	if b == BehaviorRanged {
		return "ranged"
	}
	return "melee"
}

// Special is an optional enemy ability layered on top of its Behavior.
type Special uint8

const (
	SpecialNone   Special = iota
	SpecialHeal           // Heals one wounded ally when off cooldown
	SpecialSummon         // Declared on the boss, currently inert
)

// ParseSpecial maps a preset tag to a Special.
func ParseSpecial(s string) (Special, bool) {
	switch s {
	case "":
		return SpecialNone, true
	case "heal":
		return SpecialHeal, true
	case "summon":
		return SpecialSummon, true
	}
	return SpecialNone, false
}

// RangedAttack holds the parameters of a ranged enemy's shot.
type RangedAttack struct {
	Range           float64
	ProjectileSpeed float64 // Units per frame
}

// Enemy holds the identity and stats of a live enemy.
type Enemy struct {
	ID       uint32 // Run-scoped, never reused
	Type     string // Preset key
	Name     string
	Color    color.RGBA
	HP       int
	MaxHP    int
	Speed    float64
	Attack   int
	XPValue  int
	Behavior Behavior
	Ranged   RangedAttack
	Special  Special

	AttackCooldownMs float64 // Reset value for Status.CooldownMs
}

// Status holds the transient timers of an enemy, all in milliseconds.
type Status struct {
	SlowMs     float64
	FlashMs    float64
	CooldownMs float64 // Shared by attacks and the heal special
}

// Slowed reports whether the slow effect is active.
func (s Status) Slowed() bool {
	return s.SlowMs > 0
}
