package game

import (
	"log/slog"
	"slices"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/events"
	"github.com/pthm-cable/arena/persist"
)

// Commands from the input collaborator. Each one validates the current
// state and quietly does nothing when it does not apply.

// SetPointer records the pointer position the player walks toward.
func (g *Game) SetPointer(x, y float64) {
	g.pointerX, g.pointerY = x, y
}

// Cast fires the spell in slot. Returns true if the spell was cast.
func (g *Game) Cast(slot int) bool {
	if !g.phase.Playing() || g.paused {
		return false
	}
	if slot < 0 || slot >= len(g.spells) {
		return false
	}
	s := &g.spells[slot]
	if !s.Ready {
		return false
	}
	fn, ok := castTable[s.Template.Kind]
	if !ok || !fn(g, s.Template) {
		return false
	}
	s.Trigger()

	g.emit(events.Event{
		Type:   events.SpellCast,
		Name:   s.Template.Name,
		Sound:  s.Template.Sound,
		Amount: s.Template.ID,
	})
	return true
}

// CycleTarget advances the current target through the live roster.
func (g *Game) CycleTarget() {
	if !g.phase.Playing() || g.paused || len(g.roster) == 0 {
		return
	}
	g.target = (g.target + 1) % len(g.roster)

	id := g.roster[g.target]
	_, _, en, _ := g.enemyMap.Get(g.enemies[id])
	g.emit(events.Event{Type: events.TargetChanged, EntityID: id, Name: en.Name})
}

// TogglePause freezes or resumes the simulation during a run.
func (g *Game) TogglePause() {
	if !g.phase.Playing() {
		return
	}
	g.paused = !g.paused
	if g.paused {
		g.emit(events.Event{Type: events.Paused})
	} else {
		g.emit(events.Event{Type: events.Resumed})
	}
}

// AvailableUnlocks lists the catalog spells the player could unlock now.
func (g *Game) AvailableUnlocks() []components.SpellTemplate {
	var out []components.SpellTemplate
	for _, t := range g.catalog {
		if !g.player.HasSpell(t.ID) && t.UnlockLevel <= g.player.Level {
			out = append(out, t)
		}
	}
	return out
}

// UnlockSpell spends a skill point on spell id. Returns true on success.
func (g *Game) UnlockSpell(id int) bool {
	if !g.phase.Playing() || g.player.SkillPoints < 1 {
		return false
	}
	ok := slices.ContainsFunc(g.AvailableUnlocks(), func(t components.SpellTemplate) bool {
		return t.ID == id
	})
	if !ok {
		return false
	}

	t, _ := g.template(id)
	g.player.Unlock(id)
	g.player.SkillPoints--
	g.spells = append(g.spells, components.NewSpellSlot(t))

	g.emit(events.Event{Type: events.SpellUnlocked, Name: t.Name, Amount: t.ID})
	return true
}

// SetSFX enables or disables sound effects.
func (g *Game) SetSFX(on bool) {
	st := g.settings
	st.SFXEnabled = on
	g.applySettings(st)
}

// SetMusic enables or disables music.
func (g *Game) SetMusic(on bool) {
	st := g.settings
	st.MusicEnabled = on
	g.applySettings(st)
}

// applySettings stores, persists and announces new audio settings.
func (g *Game) applySettings(st persist.Settings) {
	g.settings = st
	if g.settingsStore != nil {
		if err := g.settingsStore.Save(st); err != nil {
			slog.Error("failed to save settings", "error", err)
		}
	}
	if g.onSettings != nil {
		g.onSettings(st)
	}
}
