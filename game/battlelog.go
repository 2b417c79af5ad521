package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/arena/events"
)

// BattleLog keeps the most recent human-readable combat messages. It
// implements events.Sink.
type BattleLog struct {
	lines []string
	next  int
	full  bool
	echo  bool
}

// NewBattleLog creates a log holding up to size lines. With echo set every
// line is also written to slog.
func NewBattleLog(size int, echo bool) *BattleLog {
	if size < 1 {
		size = 8
	}
	return &BattleLog{lines: make([]string, size), echo: echo}
}

// Handle implements events.Sink.
func (l *BattleLog) Handle(e events.Event) {
	msg := Describe(e)
	if msg == "" {
		return
	}
	l.Add(msg)

	if l.echo {
		level := slog.LevelInfo
		if e.Type == events.EnemyHit || e.Type == events.XPGained {
			level = slog.LevelDebug
		}
		slog.Log(context.Background(), level, msg, "event", e.Type.String(), "wave", e.Wave, "t_ms", e.TimeMs)
	}
}

// Add appends a line, evicting the oldest when full.
func (l *BattleLog) Add(line string) {
	l.lines[l.next] = line
	l.next = (l.next + 1) % len(l.lines)
	if l.next == 0 {
		l.full = true
	}
}

// Lines returns the kept lines, oldest first.
func (l *BattleLog) Lines() []string {
	if !l.full {
		return append([]string(nil), l.lines[:l.next]...)
	}
	out := make([]string, 0, len(l.lines))
	out = append(out, l.lines[l.next:]...)
	return append(out, l.lines[:l.next]...)
}

// Describe renders an event as a battle log line. Events that are not worth
// a line render as "".
func Describe(e events.Event) string {
	switch e.Type {
	case events.DamageTaken:
		return fmt.Sprintf("You took %d damage! HP: %d/%d", e.Amount, e.HP, e.MaxHP)
	case events.Heal:
		return fmt.Sprintf("Healed %d HP! (%d/%d)", e.Amount, e.HP, e.MaxHP)
	case events.EnemyHit:
		return fmt.Sprintf("Hit %s with %s for %d damage!", e.Name, e.Label, e.Amount)
	case events.EnemyKilled:
		return fmt.Sprintf("%s defeated!", e.Name)
	case events.EnemyHealed:
		return fmt.Sprintf("%s healed %s!", e.Name, e.Label)
	case events.XPGained:
		return fmt.Sprintf("Gained %d XP! (%d/%d)", e.Amount, e.HP, e.MaxHP)
	case events.LevelUp:
		return fmt.Sprintf("Level up! Now level %d.", e.Amount)
	case events.SpellUnlocked:
		return fmt.Sprintf("Unlocked new spell: %s!", e.Name)
	case events.TargetChanged:
		return fmt.Sprintf("Target switched to %s", e.Name)
	case events.WaveStart:
		if e.Label == "boss" {
			return fmt.Sprintf("Wave %d started! A boss approaches!", e.Wave)
		}
		return fmt.Sprintf("Wave %d started! %d enemies approaching!", e.Wave, e.Amount)
	case events.WaveComplete:
		return fmt.Sprintf("Wave %d Complete!", e.Wave)
	case events.GameOver:
		return "You have been defeated!"
	case events.GameSaved:
		return "Game saved."
	case events.SaveFailed:
		return "Save failed: " + e.Label
	case events.Paused:
		return "Paused."
	case events.Resumed:
		return "Resumed."
	}
	return ""
}
