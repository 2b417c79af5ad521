package events

import "testing"

func TestQueueDeliversInOrder(t *testing.T) {
	q := NewQueue()

	var a, b []Type
	q.Subscribe(SinkFunc(func(e Event) { a = append(a, e.Type) }))
	q.Subscribe(SinkFunc(func(e Event) { b = append(b, e.Type) }))

	q.Push(Event{Type: EnemyHit})
	q.Push(Event{Type: EnemyKilled})
	q.Push(Event{Type: WaveComplete})

	if q.Pending() != 3 {
		t.Fatalf("pending = %d, want 3", q.Pending())
	}
	if n := q.Drain(); n != 3 {
		t.Errorf("drained %d, want 3", n)
	}
	if q.Pending() != 0 {
		t.Errorf("pending after drain = %d", q.Pending())
	}

	want := []Type{EnemyHit, EnemyKilled, WaveComplete}
	for _, got := range [][]Type{a, b} {
		if len(got) != len(want) {
			t.Fatalf("sink saw %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("event %d = %v, want %v", i, got[i], want[i])
			}
		}
	}

	if n := q.Drain(); n != 0 {
		t.Errorf("second drain delivered %d events", n)
	}
}

func TestTypeString(t *testing.T) {
	if s := LevelUp.String(); s != "level-up" {
		t.Errorf("LevelUp = %q", s)
	}
	if s := Type(200).String(); s != "event(200)" {
		t.Errorf("unknown type = %q", s)
	}
}
