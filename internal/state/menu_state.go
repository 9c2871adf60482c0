// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"survivors-night/internal/config"
	"survivors-night/internal/ui"
	"survivors-night/pkg/render"
)

var _ State = (*MenuState)(nil)

// MenuState is the title screen. Space, Enter or the Start button begin a run.
type MenuState struct {
	sm      *StateMachine
	start   *ui.Button
	message string
}

func NewMenuState(sm *StateMachine) *MenuState {
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	return &MenuState{
		sm:    sm,
		start: ui.NewButton(w/2-80, h/2, 160, 40, "Start"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || m.start.IsClicked() {
		gs, err := NewGameState(m.sm)
		if err != nil {
			m.sm.Session().Logger.Error("failed to start run", "error", err)
			m.message = err.Error()
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s := render.NewEbitenSurface(screen, m.sm.Session().Face)
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)

	s.Text("SURVIVOR'S NIGHT", w/2-100, h/2-80, config.TextLightColor)
	s.Text("WASD move  Space dash  Q/E/R skills  P pause", w/2-200, h/2-40, config.TextLightColor)
	m.start.Draw(s, m.start.Hovered())
	if m.message != "" {
		s.Text(m.message, 20, h-30, config.HitFlashColor)
	}
}

func (m *MenuState) Exit() {}
