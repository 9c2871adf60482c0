// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"survivors-night/internal/config"
	"survivors-night/pkg/render"
)

var _ State = (*PauseState)(nil)

var pauseOverlayColor = color.RGBA{0, 0, 0, 128}

// PauseState freezes the run. The simulation is simply not stepped while it is active.
type PauseState struct {
	sm       *StateMachine
	previous State
}

func NewPauseState(sm *StateMachine, previous State) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(s.previous)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	surface := render.NewEbitenSurface(screen, s.sm.Session().Face)
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	surface.FillRect(0, 0, w, h, pauseOverlayColor)
	surface.Text("PAUSED", w/2-24, h/2-10, config.TextLightColor)
	surface.Text("P resume  M menu", w/2-60, h/2+20, config.TextLightColor)
}

func (s *PauseState) Exit() {}
