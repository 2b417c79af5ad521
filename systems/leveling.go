package systems

import "github.com/pthm-cable/arena/components"

// XPToNext returns the xp needed to leave level.
func XPToNext(level, base, perLevel int) int {
	return base + level*perLevel
}

// AwardXP adds xp and applies every level-up it pays for. Each level grants a
// skill point and one max HP, and refills HP. Returns the number of levels gained.
func AwardXP(p *components.Player, amount, base, perLevel int) int {
	if amount <= 0 {
		return 0
	}
	p.XP += amount

	levels := 0
	for p.XPToNext > 0 && p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.SkillPoints++
		p.XPToNext = XPToNext(p.Level, base, perLevel)
		p.MaxHP++
		p.HP = p.MaxHP
		levels++
	}
	return levels
}

// HealthRatio returns hp/maxHP clamped to [0, 1].
func HealthRatio(hp, maxHP int) float64 {
	if maxHP <= 0 {
		return 0
	}
	return Clamp(float64(hp)/float64(maxHP), 0, 1)
}

// SplashAmount returns the floored share of damage dealt to bystanders.
func SplashAmount(damage int, fraction float64) int {
	if damage <= 0 || fraction <= 0 {
		return 0
	}
	return int(float64(damage) * fraction)
}
