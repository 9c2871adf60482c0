// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"survivors-night/internal/config"
	"survivors-night/internal/state"
	"survivors-night/pkg/render"
)

var (
	configPath = flag.String("config", "", "YAML config file")
	seed       = flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	pprofAddr  = flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	skipMenu   = flag.Bool("play", false, "start a run immediately instead of showing the menu")
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := config.NewLogger(os.Stderr, cfg.LogLevel, false)

	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof listening", "addr", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				logger.Error("pprof server stopped", "error", err)
			}
		}()
	}

	face, err := render.LoadFace(14)
	if err != nil {
		logger.Warn("falling back to bitmap font", "error", err)
		face = render.FallbackFace()
	}
	session := &state.Session{
		Config: cfg,
		Logger: logger,
		Face:   face,
		Arena: render.NewArenaRenderer(int(cfg.Playfield.Width), int(cfg.Playfield.Height), render.ArenaColors{
			Background: config.BackgroundColor,
			Grid:       config.GridColor,
			Border:     config.BorderColor,
		}),
	}

	sm := state.NewStateMachine(session)
	if *skipMenu {
		gs, err := state.NewGameState(sm)
		if err != nil {
			logger.Error("failed to start run", "error", err)
			os.Exit(1)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survivor's Night")
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}
