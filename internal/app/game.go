// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"survivors-night/internal/component"
	"survivors-night/internal/config"
	"survivors-night/internal/defs"
	"survivors-night/internal/entity"
	"survivors-night/internal/event"
	"survivors-night/internal/input"
	"survivors-night/internal/system"
	"survivors-night/internal/utils"
	"survivors-night/pkg/render"
)

// HUD receives a snapshot after every simulated tick.
type HUD interface {
	Update(snap Snapshot, elapsed float64, enemyCount int)
}

// Game owns one run: the world, every system and the per-tick ordering.
type Game struct {
	RunID           uuid.UUID
	Config          config.Config
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Library         *defs.Library
	Rng             *utils.PRNGService
	Logger          *slog.Logger
	Input           input.Source
	HUD             HUD

	CombatSystem       *system.CombatSystem
	ProgressionSystem  *system.ProgressionSystem
	PlayerSystem       *system.PlayerSystem
	SkillSystem        *system.SkillSystem
	EnemySystem        *system.EnemySystem
	ItemSystem         *system.ItemSystem
	VisualEffectSystem *system.VisualEffectSystem
	ProjectileSystem   *system.ProjectileSystem
	StatusEffectSystem *system.StatusEffectSystem
	CollisionSystem    *system.CollisionSystem
	SpawnSystem        *system.SpawnSystem
	StateSystem        *system.StateSystem
	RenderSystem       *system.RenderSystem

	ticks int
}

// NewGame builds a run from cfg. Definition overrides named in cfg are loaded here.
func NewGame(cfg config.Config, in input.Source, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	library := defs.NewLibrary()
	if path := cfg.Definitions.Enemies; path != "" {
		if _, err := library.LoadEnemyDefinitions(path); err != nil {
			return nil, fmt.Errorf("failed to load enemy definitions: %w", err)
		}
	}
	if path := cfg.Definitions.Items; path != "" {
		if _, err := library.LoadItemDefinitions(path); err != nil {
			return nil, fmt.Errorf("failed to load item definitions: %w", err)
		}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	runID := uuid.New()
	logger = logger.With("run_id", runID.String())

	world := entity.NewWorld(utils.Bounds{Width: cfg.Playfield.Width, Height: cfg.Playfield.Height})
	world.Player = component.NewPlayer(cfg.Playfield.Width/2, cfg.Playfield.Height/2, cfg.Player)

	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)
	fxSeed := cfg.Seed
	if fxSeed != 0 {
		fxSeed++
	}

	g := &Game{
		RunID:           runID,
		Config:          cfg,
		World:           world,
		EventDispatcher: eventDispatcher,
		Library:         library,
		Rng:             rng,
		Logger:          logger,
		Input:           in,
	}
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, utils.NewPRNGService(fxSeed), logger)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher, g.VisualEffectSystem)
	g.ProgressionSystem = system.NewProgressionSystem(world, eventDispatcher, logger)
	g.ItemSystem = system.NewItemSystem(world, library, rng, eventDispatcher, g.VisualEffectSystem, logger, cfg.MaxItems)
	g.EnemySystem = system.NewEnemySystem(world, eventDispatcher, g.VisualEffectSystem, logger)
	g.StatusEffectSystem = system.NewStatusEffectSystem(world, g.CombatSystem, logger)
	g.ProjectileSystem = system.NewProjectileSystem(world, g.CombatSystem, g.StatusEffectSystem, g.VisualEffectSystem, logger)
	g.SkillSystem = system.NewSkillSystem(world, g.ProjectileSystem, rng, logger)
	g.PlayerSystem = system.NewPlayerSystem(world, g.CombatSystem, g.SkillSystem)
	g.CollisionSystem = system.NewCollisionSystem(world, g.CombatSystem, g.ItemSystem, eventDispatcher, g.VisualEffectSystem, cfg.ContactDestroysEnemy)
	g.SpawnSystem = system.NewSpawnSystem(world, library, rng, eventDispatcher, logger, cfg.MaxEnemies)
	g.StateSystem = system.NewStateSystem(world, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(world, g.ProjectileSystem, logger)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.BossSpawned, event.GameOver)

	logger.Info("run started", "seed", cfg.Seed, "max_enemies", cfg.MaxEnemies, "contact_destroys_enemy", cfg.ContactDestroysEnemy)
	return g, nil
}

// GameEventListener logs the milestones of a run.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemySpawnedData:
		l.game.Logger.Info("boss arrived", "id", data.EnemyID, "game_time", l.game.World.GameTime)
	case event.GameOverData:
		l.game.Logger.Info("game over",
			"survival", system.FormatSurvivalTime(data.SurvivalTime),
			"kills", data.EnemiesKilled,
			"level", data.Level,
			"score", data.Score,
		)
	}
}

// SanitizeDelta replaces a non-finite or non-positive step with the default frame
// and clamps long frames. The second result is false when the input was rejected.
func SanitizeDelta(deltaTime float64) (float64, bool) {
	if !utils.IsFinite(deltaTime) || deltaTime <= 0 {
		return config.DefaultDeltaTime, false
	}
	if deltaTime > config.MaxDeltaTime {
		return config.MaxDeltaTime, true
	}
	return deltaTime, true
}

// Update runs one tick in fixed order: player, enemies, items, particles,
// projectiles, burns, collisions, spawner; then compaction, HUD and the
// game-over check. It returns true once the run has ended.
func (g *Game) Update(deltaTime float64) bool {
	dt, ok := SanitizeDelta(deltaTime)
	if !ok {
		g.Logger.Warn("invalid frame delta, using default", "delta", deltaTime, "default", dt)
	}
	if g.StateSystem.IsOver() {
		return true
	}

	g.ticks++
	g.World.GameTime += dt

	var in input.State
	if g.Input != nil {
		in = g.Input.Poll()
	}

	g.PlayerSystem.Update(dt, in)
	g.EnemySystem.Update(dt)
	g.ItemSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.CollisionSystem.Update()
	g.SpawnSystem.Update(dt)
	g.World.Compact()

	if g.HUD != nil {
		g.HUD.Update(g.Snapshot(), g.World.GameTime, len(g.World.Enemies))
	}
	return g.StateSystem.Update()
}

// IsOver reports whether the player has died.
func (g *Game) IsOver() bool {
	return g.StateSystem.IsOver()
}

// Ticks is the number of simulated ticks.
func (g *Game) Ticks() int { return g.ticks }

// FinalStats summarizes the run so far.
func (g *Game) FinalStats() system.FinalStats {
	return system.Summarize(g.World.Player)
}

// Draw renders the world. It has no effect on the simulation.
func (g *Game) Draw(surface render.Surface) {
	g.RenderSystem.Draw(surface)
}

// ShakeOffset is the camera displacement the renderer should apply this frame.
func (g *Game) ShakeOffset() (float64, float64) {
	return g.VisualEffectSystem.ShakeOffset()
}
