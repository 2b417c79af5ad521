package components

import "slices"

// Player is the single player character. HP may drop to zero or below; that
// is what ends the run.
type Player struct {
	Position
	Size  float64
	Speed float64

	HP    int
	MaxHP int

	XP          int
	XPToNext    int
	Level       int
	SkillPoints int
	DamageBonus int

	SpellsUnlocked []int // Unique, in unlock order

	Invulnerable   bool
	SinceDamagedMs float64
}

// HasSpell reports whether the spell id is unlocked.
func (p *Player) HasSpell(id int) bool {
	return slices.Contains(p.SpellsUnlocked, id)
}

// Unlock adds id to the unlocked set. Returns false if it was already there.
func (p *Player) Unlock(id int) bool {
	if p.HasSpell(id) {
		return false
	}
	p.SpellsUnlocked = append(p.SpellsUnlocked, id)
	return true
}

// Heal raises HP by amount, capped at MaxHP. Returns the amount restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.HP
	p.HP = min(p.MaxHP, p.HP+amount)
	if p.HP < before {
		p.HP = before
	}
	return p.HP - before
}

// Alive reports whether the player still has HP.
func (p *Player) Alive() bool {
	return p.HP > 0
}
