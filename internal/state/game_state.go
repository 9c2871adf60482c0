// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"survivors-night/internal/app"
	"survivors-night/internal/config"
	"survivors-night/internal/input"
	"survivors-night/internal/ui"
	"survivors-night/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState runs the simulation once per frame and draws the arena and the HUD.
type GameState struct {
	sm   *StateMachine
	game *app.Game
	hud  *ui.HUD
}

func NewGameState(sm *StateMachine) (*GameState, error) {
	session := sm.Session()
	g, err := app.NewGame(session.Config, input.NewKeyboard(), session.Logger)
	if err != nil {
		return nil, err
	}
	hud := ui.NewHUD(g.EventDispatcher, session.Config.Playfield.Width)
	g.HUD = hud
	return &GameState{sm: sm, game: g, hud: hud}, nil
}

// Game exposes the running simulation.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.SetShowDamage(!g.hud.ShowDamage())
	}

	if g.game.Update(deltaTime) {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	session := g.sm.Session()
	ox, oy := g.game.ShakeOffset()

	screen.Fill(config.BackgroundColor)
	if session.Arena != nil {
		session.Arena.Draw(screen, ox, oy)
	}
	world := render.NewEbitenSurface(screen, session.Face)
	world.OffsetX, world.OffsetY = ox, oy
	g.game.Draw(world)

	g.hud.Draw(render.NewEbitenSurface(screen, session.Face))
}

func (g *GameState) Exit() {}
