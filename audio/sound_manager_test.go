package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/arena/events"
	"github.com/pthm-cable/arena/persist"
)

// drain streams s to completion and returns the number of samples and the
// peak absolute amplitude. Gives up after limit samples.
func drain(s beep.Streamer, limit int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	want := sampleRate.N(100 * time.Millisecond)
	for _, w := range waves {
		t.Run(w.name, func(t *testing.T) {
			total, peak := drain(NewOscillator(440, 100*time.Millisecond, w.wave, sampleRate), 10*want)
			if total != want {
				t.Errorf("streamed %d samples, want %d", total, want)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v, want in (0, 1]", peak)
			}
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, sampleRate), d, 10*time.Millisecond, 10*time.Millisecond, sampleRate)

	n := sampleRate.N(d)
	buf := make([][2]float64, n)
	got, _ := env.Stream(buf)
	if got != n {
		t.Fatalf("streamed %d, want %d", got, n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 at the start of the attack", buf[0][0])
	}
	if mid := buf[n/2][0]; math.Abs(mid) != 1 {
		t.Errorf("sustain sample = %v, want full scale", mid)
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("last sample = %v, want faded out", last)
	}
}

func TestNewVolume(t *testing.T) {
	d := 20 * time.Millisecond
	_, full := drain(newVolume(NewOscillator(0, d, WaveSquare, sampleRate), 1), 1<<16)
	_, half := drain(newVolume(NewOscillator(0, d, WaveSquare, sampleRate), 0.5), 1<<16)
	_, mute := drain(newVolume(NewOscillator(0, d, WaveSquare, sampleRate), 0), 1<<16)

	if math.Abs(full-1) > 1e-9 || math.Abs(half-0.5) > 1e-9 || mute != 0 {
		t.Errorf("peaks full=%v half=%v mute=%v", full, half, mute)
	}
}

func TestEveryEffectTerminates(t *testing.T) {
	limit := sampleRate.N(5 * time.Second)
	for key := range recipes {
		t.Run(key, func(t *testing.T) {
			total, peak := drain(Effect(key, sampleRate), limit)
			if total == 0 || total >= limit {
				t.Errorf("streamed %d samples", total)
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
		})
	}
	if Effect("kazoo", sampleRate) != nil {
		t.Error("unknown key produced a streamer")
	}
}

func TestSoundManagerHandlesEvents(t *testing.T) {
	sm := NewSoundManager(persist.Settings{SFXEnabled: true, MusicEnabled: false})
	if sm.Active() != 1 {
		t.Fatalf("fresh mixer has %d streamers, want the music only", sm.Active())
	}

	sm.Handle(events.Event{Type: events.SpellCast, Sound: "fire"})
	sm.Handle(events.Event{Type: events.EnemyKilled})
	sm.Handle(events.Event{Type: events.LevelUp, Sound: "levelUp"})
	if sm.Active() != 3 {
		t.Errorf("active = %d, want music plus two effects", sm.Active())
	}

	// Drain the mix; finished effects fall out of the mixer.
	total, peak := drain(sm.mixer, sampleRate.N(2*time.Second))
	if total == 0 || peak == 0 {
		t.Errorf("mix produced %d samples, peak %v", total, peak)
	}
	if sm.Active() != 1 {
		t.Errorf("active = %d after effects finished, want 1", sm.Active())
	}
}

func TestSoundManagerSettings(t *testing.T) {
	sm := NewSoundManager(persist.Settings{})
	if sm.Play("fire") {
		t.Error("effect played with sfx disabled")
	}

	// Music paused: the mix is silent.
	if _, peak := drain(sm.mixer, 4096); peak != 0 {
		t.Errorf("paused music peak = %v", peak)
	}

	sm.Apply(persist.Settings{SFXEnabled: true, MusicEnabled: true})
	if _, peak := drain(sm.mixer, 4096*8); peak == 0 {
		t.Error("music enabled but the mix is silent")
	}
	if !sm.Play("heal") || sm.Play("kazoo") {
		t.Error("Play ignored the new settings or accepted an unknown key")
	}
	if sm.Settings() != (persist.Settings{SFXEnabled: true, MusicEnabled: true}) {
		t.Errorf("settings = %+v", sm.Settings())
	}
}

func TestSoundManagerCleanupWithoutInit(t *testing.T) {
	sm := NewSoundManager(persist.DefaultSettings())
	sm.Play("gameOver")
	sm.Cleanup()
	if sm.Active() != 0 {
		t.Errorf("active = %d after cleanup", sm.Active())
	}
	sm.Apply(persist.DefaultSettings())
	if sm.Active() != 1 {
		t.Errorf("music not restored after cleanup: active %d", sm.Active())
	}
}
