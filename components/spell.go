package components

import "image/color"

// SpellKind selects the cast strategy for a spell.
type SpellKind uint8

const (
	SpellBolt SpellKind = iota // Homing projectile at the current target
	SpellHeal                  // Self heal, no target needed
)

// ParseSpellKind maps a catalog tag to a SpellKind.
func ParseSpellKind(s string) (SpellKind, bool) {
	switch s {
	case "bolt":
		return SpellBolt, true
	case "heal":
		return SpellHeal, true
	}
	return SpellBolt, false
}

// SpellTemplate is the immutable catalog entry for a spell.
// A negative BaseDamage heals.
type SpellTemplate struct {
	ID          int
	Name        string
	Description string
	Color       color.RGBA
	CooldownMs  float64
	BaseDamage  int
	UnlockLevel int
	Sound       string
	Kind        SpellKind

	ProjectileSpeed float64
	ProjectileSize  float64
	Effect          Effect
}

// SpellSlot is the per-run instance of an unlocked spell.
type SpellSlot struct {
	Template   SpellTemplate
	Ready      bool
	CooldownMs float64
}

// NewSpellSlot returns a ready slot for t.
func NewSpellSlot(t SpellTemplate) SpellSlot {
	return SpellSlot{Template: t, Ready: true}
}

// Trigger consumes the slot. Returns false if it was not ready.
func (s *SpellSlot) Trigger() bool {
	if !s.Ready {
		return false
	}
	s.Ready = false
	s.CooldownMs = s.Template.CooldownMs
	return true
}

// Tick advances the cooldown by dt. Returns true when the slot becomes ready.
func (s *SpellSlot) Tick(dt float64) bool {
	if s.Ready {
		return false
	}
	s.CooldownMs -= dt
	if s.CooldownMs <= 0 {
		s.CooldownMs = 0
		s.Ready = true
		return true
	}
	return false
}

// CooldownRatio returns the remaining cooldown fraction in [0, 1].
func (s SpellSlot) CooldownRatio() float64 {
	if s.Ready || s.Template.CooldownMs <= 0 {
		return 0
	}
	return min(1, s.CooldownMs/s.Template.CooldownMs)
}
