package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator returns a streamer producing duration worth of the given
// wave at freq Hz. Noise ignores freq.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine whose frequency glides linearly from one pitch to another.
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep returns a sine gliding from one frequency to another over duration.
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, duration: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.duration {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.duration {
			return i, true
		}
		t := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*t

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release fade.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Zero or less is silent; effects.Volume works
// in log2 space, where 0 would be -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped oscillator.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// recipe builds a fresh streamer for one sound key.
type recipe func(rate beep.SampleRate) beep.Streamer

// recipes maps the simulation's sound keys to synthesized effects.
var recipes = map[string]recipe{
	"fire": func(rate beep.SampleRate) beep.Streamer {
		d := 180 * time.Millisecond
		body := NewEnvelope(NewSweep(220, 660, d, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate)
		crackle := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 150*time.Millisecond, rate)
		return beep.Mix(newVolume(body, 0.6), newVolume(crackle, 0.25))
	},
	"ice": func(rate beep.SampleRate) beep.Streamer {
		d := 220 * time.Millisecond
		return beep.Mix(
			newVolume(tone(1318.51, d, WaveSine, rate), 0.5),
			newVolume(tone(1975.53, d, WaveSine, rate), 0.25),
		)
	},
	"thunder": func(rate beep.SampleRate) beep.Streamer {
		d := 400 * time.Millisecond
		rumble := NewEnvelope(NewSweep(120, 40, d, rate), d, 2*time.Millisecond, 300*time.Millisecond, rate)
		crack := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 350*time.Millisecond, rate)
		return beep.Mix(newVolume(rumble, 0.6), newVolume(crack, 0.4))
	},
	"heal": func(rate beep.SampleRate) beep.Streamer {
		d := 120 * time.Millisecond
		return newVolume(beep.Seq(
			tone(523.25, d, WaveSine, rate),
			tone(659.25, d, WaveSine, rate),
			tone(783.99, d, WaveSine, rate),
		), 0.5)
	},
	"levelUp": func(rate beep.SampleRate) beep.Streamer {
		d := 90 * time.Millisecond
		return newVolume(beep.Seq(
			tone(523.25, d, WaveSquare, rate),
			tone(659.25, d, WaveSquare, rate),
			tone(783.99, d, WaveSquare, rate),
			tone(1046.5, 2*d, WaveSquare, rate),
		), 0.25)
	},
	"enemyHit": func(rate beep.SampleRate) beep.Streamer {
		d := 70 * time.Millisecond
		return newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 60*time.Millisecond, rate), 0.35)
	},
	"playerHit": func(rate beep.SampleRate) beep.Streamer {
		d := 200 * time.Millisecond
		return newVolume(tone(100, d, WaveSaw, rate), 0.5)
	},
	"waveStart": func(rate beep.SampleRate) beep.Streamer {
		d := 150 * time.Millisecond
		return newVolume(beep.Seq(
			tone(392, d, WaveSquare, rate),
			tone(587.33, 2*d, WaveSquare, rate),
		), 0.25)
	},
	"gameOver": func(rate beep.SampleRate) beep.Streamer {
		d := 900 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(440, 110, d, rate), d, 10*time.Millisecond, 600*time.Millisecond, rate), 0.5)
	},
}

// Effect returns a fresh streamer for a sound key, or nil for an unknown key.
func Effect(key string, rate beep.SampleRate) beep.Streamer {
	r, ok := recipes[key]
	if !ok {
		return nil
	}
	return r(rate)
}

// drone is the endless background pad: two detuned sines under a slow swell.
type drone struct {
	root  float64
	pos   int
	rate  beep.SampleRate
	cycle int
}

func newDrone(root float64, rate beep.SampleRate) *drone {
	return &drone{root: root, rate: rate, cycle: rate.N(8 * time.Second)}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(d.pos) / float64(d.rate)
		cyclePos := float64(d.pos%d.cycle) / float64(d.cycle)
		swell := 0.5 + 0.5*math.Sin(2*math.Pi*cyclePos)

		val := 0.6*math.Sin(2*math.Pi*d.root*t) + 0.4*math.Sin(2*math.Pi*d.root*1.005*t)
		val *= 0.08 * (0.6 + 0.4*swell)

		samples[i][0] = val
		samples[i][1] = val
		d.pos++
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }
