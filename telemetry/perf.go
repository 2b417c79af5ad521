package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// PerfPhase identifies one update pass of the simulation step.
type PerfPhase uint8

// Update passes, in the order the simulation step runs them.
const (
	PhasePlayer PerfPhase = iota
	PhaseEnemies
	PhaseProjectiles
	PhaseParticles
	PhaseCooldowns
	PhaseTimers
	numPhases
)

var phaseNames = [numPhases]string{"player", "enemies", "projectiles", "particles", "cooldowns", "timers"}

func (p PerfPhase) String() string {
	if p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

// tickSample is the timing of one simulation tick.
type tickSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times simulation ticks over a rolling window of samples and
// counts the ticks that ran longer than the frame budget.
type PerfCollector struct {
	samples []tickSample
	next    int
	filled  int
	budget  time.Duration

	cur        tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      PerfPhase
	inPhase    bool

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector keeps the last windowSize ticks. budget is the wall-clock
// time one tick may take before it counts as over budget; zero disables that
// count.
func NewPerfCollector(windowSize int, budget time.Duration) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{samples: make([]tickSample, windowSize), budget: budget}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.cur = tickSample{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase PerfPhase) {
	now := time.Now()
	p.closePhase(now)
	p.phase = phase
	p.phaseStart = now
	p.inPhase = phase < numPhases
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	}
	p.inPhase = false
}

// EndTick closes the tick and stores it in the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.cur.total = now.Sub(p.tickStart)

	p.samples[p.next] = p.cur
	p.next = (p.next + 1) % len(p.samples)
	p.filled = min(p.filled+1, len(p.samples))
}

// RecordFrame marks a rendered frame. Call once per frame in windowed mode.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats aggregates the current window.
type PerfStats struct {
	Ticks           int
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	P95TickDuration time.Duration
	TicksPerSecond  float64

	// Share of the average tick spent in each pass, in percent
	PhasePct map[string]float64

	// Fraction of ticks in the window slower than the budget
	OverBudget float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats summarizes the ticks currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		Ticks:         p.filled,
		PhasePct:      make(map[string]float64, numPhases),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	totals := make([]float64, p.filled)
	var phaseSum [numPhases]time.Duration
	over := 0
	for i, smp := range p.samples[:p.filled] {
		totals[i] = float64(smp.total)
		for ph, d := range smp.phases {
			phaseSum[ph] += d
		}
		if p.budget > 0 && smp.total > p.budget {
			over++
		}
	}

	mean := stat.Mean(totals, nil)
	slices.Sort(totals)
	s.AvgTickDuration = time.Duration(mean)
	s.MinTickDuration = time.Duration(totals[0])
	s.MaxTickDuration = time.Duration(totals[len(totals)-1])
	s.P95TickDuration = time.Duration(stat.Quantile(0.95, stat.Empirical, totals, nil))
	s.OverBudget = float64(over) / float64(p.filled)

	if mean > 0 {
		s.TicksPerSecond = float64(time.Second) / mean
		for ph, sum := range phaseSum {
			avg := float64(sum) / float64(p.filled)
			s.PhasePct[PerfPhase(ph).String()] = avg / mean * 100
		}
	}
	return s
}

// LogStats writes the window summary at Info.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("p95_tick_us", s.P95TickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("over_budget", s.OverBudget),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for _, name := range phaseNames {
		if pct := s.PhasePct[name]; pct >= 0.1 {
			attrs = append(attrs, slog.Float64(name+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	Tick           int64   `csv:"tick"`
	AvgTickUS      int64   `csv:"avg_tick_us"`
	P95TickUS      int64   `csv:"p95_tick_us"`
	MaxTickUS      int64   `csv:"max_tick_us"`
	OverBudget     float64 `csv:"over_budget"`
	FPS            float64 `csv:"fps"`
	PlayerPct      float64 `csv:"player_pct"`
	EnemiesPct     float64 `csv:"enemies_pct"`
	ProjectilesPct float64 `csv:"projectiles_pct"`
	ParticlesPct   float64 `csv:"particles_pct"`
	CooldownsPct   float64 `csv:"cooldowns_pct"`
	TimersPct      float64 `csv:"timers_pct"`
}

// ToCSV flattens the stats for the tick they were taken at.
func (s PerfStats) ToCSV(tick int64) PerfStatsCSV {
	pct := func(p PerfPhase) float64 { return s.PhasePct[p.String()] }
	return PerfStatsCSV{
		Tick:           tick,
		AvgTickUS:      s.AvgTickDuration.Microseconds(),
		P95TickUS:      s.P95TickDuration.Microseconds(),
		MaxTickUS:      s.MaxTickDuration.Microseconds(),
		OverBudget:     s.OverBudget,
		FPS:            s.FPS,
		PlayerPct:      pct(PhasePlayer),
		EnemiesPct:     pct(PhaseEnemies),
		ProjectilesPct: pct(PhaseProjectiles),
		ParticlesPct:   pct(PhaseParticles),
		CooldownsPct:   pct(PhaseCooldowns),
		TimersPct:      pct(PhaseTimers),
	}
}
