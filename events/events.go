// Package events defines the discrete notifications the simulation emits for
// audio, logging and telemetry collaborators.
package events

import "fmt"

// Type identifies a simulation event.
type Type uint8

const (
	DamageTaken Type = iota
	Heal
	EnemyHit
	EnemyKilled
	EnemyHealed
	XPGained
	LevelUp
	SpellCast
	SpellUnlocked
	TargetChanged
	WaveStart
	WaveComplete
	GameOver
	GameSaved
	SaveFailed
	Paused
	Resumed
)

var typeNames = [...]string{
	DamageTaken:   "damage-taken",
	Heal:          "heal",
	EnemyHit:      "enemy-hit",
	EnemyKilled:   "enemy-killed",
	EnemyHealed:   "enemy-healed",
	XPGained:      "xp-gained",
	LevelUp:       "level-up",
	SpellCast:     "spell-cast",
	SpellUnlocked: "spell-unlocked",
	TargetChanged: "target-changed",
	WaveStart:     "wave-start",
	WaveComplete:  "wave-complete",
	GameOver:      "game-over",
	GameSaved:     "game-saved",
	SaveFailed:    "save-failed",
	Paused:        "paused",
	Resumed:       "resumed",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("event(%d)", t)
}

// Event is a single notification. Fields beyond Type are optional.
type Event struct {
	Type   Type
	TimeMs float64 // Simulation clock when emitted
	Wave   int

	EntityID uint32 // Enemy involved, if any
	Name     string // Enemy or spell name
	Label    string // Damage label, e.g. "Plasma Orb (splash)"
	Sound    string // Sound key for audio collaborators
	Amount   int    // Damage, heal, xp, level or count depending on Type
	HP       int    // Resulting HP of the affected entity
	MaxHP    int
}

// Sink consumes events. Handle must not block the simulation.
type Sink interface {
	Handle(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

// Handle calls f(e).
func (f SinkFunc) Handle(e Event) { f(e) }

// Queue buffers the events of one tick and delivers them to subscribers when
// drained.
type Queue struct {
	pending []Event
	sinks   []Sink
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{pending: make([]Event, 0, 32)}
}

// Subscribe registers a sink for all future drains.
func (q *Queue) Subscribe(s Sink) {
	if s != nil {
		q.sinks = append(q.sinks, s)
	}
}

// Push appends an event to the current batch.
func (q *Queue) Push(e Event) {
	q.pending = append(q.pending, e)
}

// Pending returns the number of undelivered events.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Drain delivers the pending batch to every sink in emission order and
// returns how many events were delivered.
func (q *Queue) Drain() int {
	n := len(q.pending)
	for _, e := range q.pending {
		for _, s := range q.sinks {
			s.Handle(e)
		}
	}
	clear(q.pending)
	q.pending = q.pending[:0]
	return n
}
