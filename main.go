package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/audio"
	"github.com/pthm-cable/arena/config"
	"github.com/pthm-cable/arena/events"
	"github.com/pthm-cable/arena/game"
	"github.com/pthm-cable/arena/persist"
	"github.com/pthm-cable/arena/renderer"
	"github.com/pthm-cable/arena/telemetry"
	"github.com/pthm-cable/arena/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (implies -autopilot and -no-audio)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	savePath := flag.String("save", "", "Save file path (empty = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logPerf := flag.Bool("log-perf", false, "Log wave and perf stats via slog")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot play")
	noAudio := flag.Bool("no-audio", false, "Disable the audio device")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *savePath == "" {
		*savePath = cfg.Save.Path
	}
	store := persist.NewFileStore(*savePath)
	settingsStore := persist.NewSettingsStore(cfg.Save.SettingsPath)
	settings, err := settingsStore.Load()
	if err != nil {
		slog.Warn("using default settings", "error", err)
	}

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	var sound *audio.SoundManager
	var sinks []events.Sink
	if !*headless && !*noAudio {
		sound = audio.NewSoundManager(settings)
		if err := sound.Initialize(); err != nil {
			slog.Warn("audio unavailable", "error", err)
		}
		defer sound.Cleanup()
		sinks = append(sinks, sound)
	}

	opts := game.Options{
		Seed:          rngSeed,
		Store:         store,
		SettingsStore: settingsStore,
		Settings:      settings,
		Sinks:         sinks,
		LogEvents:     *headless,
		OnSettings: func(st persist.Settings) {
			if sound != nil {
				sound.Apply(st)
			}
		},
	}
	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	g.AttachOutput(om, *logPerf)

	if *headless {
		runHeadless(g, om, rngSeed, *maxTicks)
		return
	}
	runWindow(g, cfg, *autopilot, *maxTicks)
}

// runHeadless plays one autopilot run at a fixed frame step.
func runHeadless(g *game.Game, om *telemetry.OutputManager, seed int64, maxTicks int) {
	pilot := game.NewAutopilot()
	dt := g.Config().Arena.FrameMs

	slog.Info("starting headless run", "seed", seed, "max_ticks", maxTicks)

	for {
		pilot.Drive(g)
		g.Update(dt)

		if g.Phase() == game.PhaseGameOver {
			slog.Info("run ended", "wave", g.Wave(), "tick", g.Tick())
			break
		}
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "wave", g.Wave())
			g.Collector().Flush(g.ClockMs())
			break
		}
	}

	if err := om.WriteRun(g.RunStats(seed)); err != nil {
		slog.Error("failed to write run stats", "error", err)
	}
}

// runWindow runs the graphical client.
func runWindow(g *game.Game, cfg *config.Config, autopilot bool, maxTicks int) {
	w, h := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	rl.InitWindow(w, h, "Grimoire Gauntlet")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(0) // Escape pauses

	arena := renderer.NewArena(int32(cfg.Arena.Width), int32(cfg.Arena.Height), int32(cfg.Arena.GridSize))
	screen := ui.NewScreen(w, h)

	var pilot *game.Autopilot
	if autopilot {
		pilot = game.NewAutopilot()
	}

	for !rl.WindowShouldClose() {
		// Cap dt so a stalled frame cannot skip through collisions.
		dt := min(float64(rl.GetFrameTime())*1000, 100)
		g.Perf().RecordFrame()

		if pilot != nil {
			pilot.Drive(g)
		} else {
			screen.HandleInput(g)
		}
		g.Update(dt)

		v := g.View()
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		arena.Draw(&v, rl.GetTime()*1000)
		screen.Draw(g, &v)
		rl.EndDrawing()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}
