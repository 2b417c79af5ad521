package components

import (
	"math"
	"testing"
)

func TestSpellSlotCooldown(t *testing.T) {
	slot := NewSpellSlot(SpellTemplate{ID: 0, Name: "Firebolt", CooldownMs: 1000})

	if !slot.Trigger() {
		t.Fatal("fresh slot should trigger")
	}
	if slot.Trigger() {
		t.Fatal("slot triggered twice without cooling down")
	}
	if slot.Ready || slot.CooldownMs != 1000 {
		t.Fatalf("after trigger: ready=%v cooldown=%v", slot.Ready, slot.CooldownMs)
	}

	if slot.Tick(600) {
		t.Error("slot ready after 600ms of a 1000ms cooldown")
	}
	if r := slot.CooldownRatio(); math.Abs(r-0.4) > 1e-9 {
		t.Errorf("cooldown ratio = %v, want 0.4", r)
	}
	if !slot.Tick(400) {
		t.Error("slot not ready after full cooldown")
	}
	if slot.CooldownMs != 0 || slot.CooldownRatio() != 0 {
		t.Errorf("ready slot kept cooldown %v", slot.CooldownMs)
	}
}

func TestPlayerHealCapped(t *testing.T) {
	p := Player{HP: 2, MaxHP: 3}
	if got := p.Heal(2); got != 1 {
		t.Errorf("Heal(2) restored %d, want 1", got)
	}
	if p.HP != 3 {
		t.Errorf("HP = %d, want 3", p.HP)
	}
	if got := p.Heal(-5); got != 0 || p.HP != 3 {
		t.Errorf("negative heal changed HP to %d", p.HP)
	}
}

func TestPlayerUnlockUnique(t *testing.T) {
	p := Player{SpellsUnlocked: []int{0, 1}}
	if p.Unlock(1) {
		t.Error("Unlock(1) reported success for an already unlocked spell")
	}
	if !p.Unlock(2) {
		t.Error("Unlock(2) failed")
	}
	if len(p.SpellsUnlocked) != 3 {
		t.Errorf("unlocked = %v, want 3 entries", p.SpellsUnlocked)
	}
}

func TestParseTags(t *testing.T) {
	if b, ok := ParseBehavior("ranged"); !ok || b != BehaviorRanged {
		t.Errorf("ParseBehavior(ranged) = %v, %v", b, ok)
	}
	if _, ok := ParseBehavior("flying"); ok {
		t.Error("ParseBehavior accepted an unknown tag")
	}
	if s, ok := ParseSpecial("summon"); !ok || s != SpecialSummon {
		t.Errorf("ParseSpecial(summon) = %v, %v", s, ok)
	}
	if e, ok := ParseEffect("splash"); !ok || e != EffectSplash {
		t.Errorf("ParseEffect(splash) = %v, %v", e, ok)
	}
	if k, ok := ParseSpellKind("heal"); !ok || k != SpellHeal {
		t.Errorf("ParseSpellKind(heal) = %v, %v", k, ok)
	}
}

func TestParticleAlpha(t *testing.T) {
	p := Particle{Life: 15, MaxLife: 30}
	if a := p.Alpha(); a != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", a)
	}
	p.Life = -1
	if a := p.Alpha(); a != 0 {
		t.Errorf("expired Alpha = %v, want 0", a)
	}
}
