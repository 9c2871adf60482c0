// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"survivors-night/internal/config"
	"survivors-night/internal/system"
	"survivors-night/pkg/render"
)

var _ State = (*GameOverState)(nil)

var gameOverOverlayColor = color.RGBA{0, 0, 0, 180}

// GameOverState shows the final stats of a finished run over its last frame.
type GameOverState struct {
	sm    *StateMachine
	run   *GameState
	final system.FinalStats
}

func NewGameOverState(sm *StateMachine, run *GameState) *GameOverState {
	return &GameOverState{sm: sm, run: run, final: run.Game().FinalStats()}
}

func (s *GameOverState) Enter() {
	s.sm.Session().Logger.Info("run finished",
		"survival", system.FormatSurvivalTime(s.final.SurvivalTime),
		"score", s.final.Score,
	)
}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		gs, err := NewGameState(s.sm)
		if err != nil {
			s.sm.Session().Logger.Error("failed to restart run", "error", err)
			return
		}
		s.sm.SetState(gs)
	case inpututil.IsKeyJustPressed(ebiten.KeyM), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm))
	}
}

// Lines is the text of the results panel.
func (s *GameOverState) Lines() []string {
	return GameOverLines(s.final)
}

// GameOverLines formats final stats for the results panel.
func GameOverLines(f system.FinalStats) []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("Survived %s", system.FormatSurvivalTime(f.SurvivalTime)),
		fmt.Sprintf("Enemies killed %d", f.EnemiesKilled),
		fmt.Sprintf("Level %d", f.Level),
		fmt.Sprintf("Score %d", f.Score),
		"R restart  M menu",
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.run.Draw(screen)
	surface := render.NewEbitenSurface(screen, s.sm.Session().Face)
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	surface.FillRect(0, 0, w, h, gameOverOverlayColor)
	for n, line := range s.Lines() {
		surface.Text(line, w/2-80, h/2-60+float64(n)*24, config.TextLightColor)
	}
}

func (s *GameOverState) Exit() {}
