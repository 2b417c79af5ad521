// Command wavesim plays many seeded autopilot runs headlessly and reports
// how far they get. Use it to check the wave tuning in a config file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/pthm-cable/arena/config"
	"github.com/pthm-cable/arena/game"
	"github.com/pthm-cable/arena/telemetry"
)

type runResult struct {
	stats telemetry.RunStats
	waves []telemetry.WaveStats
	err   error
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	runs := flag.Int("runs", 20, "Number of runs")
	baseSeed := flag.Int64("seed", 1, "Seed of the first run; run i uses seed+i")
	maxTicks := flag.Int("max-ticks", 216000, "Tick limit per run (0 = until defeat)")
	outputDir := flag.String("output-dir", "", "Directory for waves.csv and runs.csv")
	parallel := flag.Int("parallel", 4, "Runs simulated at once")
	flag.Parse()

	if *runs < 1 {
		log.Fatal("-runs must be at least 1")
	}
	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("failed to create output manager: %v", err)
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		log.Printf("failed to write config snapshot: %v", err)
	}

	fmt.Printf("Simulating %d runs from seed %d (max %d ticks each)\n", *runs, *baseSeed, *maxTicks)
	start := time.Now()

	results := make([]runResult, *runs)
	sem := make(chan struct{}, max(*parallel, 1))
	var wg sync.WaitGroup
	for i := range *runs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = simulate(cfg, idx, *baseSeed+int64(idx), *maxTicks)
		}(i)
	}
	wg.Wait()

	// Output is written from this goroutine only.
	var allWaves []telemetry.WaveStats
	reached := make([]float64, 0, *runs)
	for _, r := range results {
		if r.err != nil {
			log.Printf("run failed: %v", r.err)
			continue
		}
		for _, w := range r.waves {
			if err := om.WriteWave(w); err != nil {
				log.Printf("failed to write wave stats: %v", err)
			}
		}
		if err := om.WriteRun(r.stats); err != nil {
			log.Printf("failed to write run stats: %v", err)
		}
		allWaves = append(allWaves, r.waves...)
		reached = append(reached, float64(r.stats.WaveReached))
		fmt.Printf("Run %d (seed %d): wave %d, level %d, %d kills, %s\n",
			r.stats.Run, r.stats.Seed, r.stats.WaveReached, r.stats.Level, r.stats.Kills,
			outcome(r.stats.Defeated))
	}

	fmt.Printf("\nDone in %s\n", time.Since(start).Round(time.Millisecond))
	if len(reached) == 0 {
		return
	}
	slog.Info("wave reached", "summary", telemetry.Summarize(reached))

	byWave := telemetry.DurationsByWave(allWaves)
	waves := make([]int, 0, len(byWave))
	for w := range byWave {
		waves = append(waves, w)
	}
	slices.Sort(waves)
	for _, w := range waves {
		slog.Info("wave duration", "wave", w, "duration_ms", telemetry.Summarize(byWave[w]))
	}
}

// simulate plays one autopilot run to defeat or the tick limit.
func simulate(cfg *config.Config, run int, seed int64, maxTicks int) runResult {
	g, err := game.NewGame(cfg, game.Options{Seed: seed, Run: run})
	if err != nil {
		return runResult{err: err}
	}
	pilot := game.NewAutopilot()
	dt := cfg.Arena.FrameMs

	for g.Phase() != game.PhaseGameOver {
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			g.Collector().Flush(g.ClockMs())
			break
		}
		pilot.Drive(g)
		g.Update(dt)
	}
	return runResult{stats: g.RunStats(seed), waves: g.Collector().Waves()}
}

func outcome(defeated bool) string {
	if defeated {
		return "defeated"
	}
	return "survived"
}
