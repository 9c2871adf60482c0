// internal/state/state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"survivors-night/internal/config"
	"survivors-night/pkg/render"
)

// State is one screen of the application.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Session is what every state shares: the tuning, the logger and the drawing resources.
type Session struct {
	Config config.Config
	Logger *slog.Logger
	Face   font.Face
	Arena  *render.ArenaRenderer
}

// StateMachine switches between states and remembers whether the player asked to quit.
type StateMachine struct {
	current State
	session *Session
	quit    bool
}

func NewStateMachine(session *Session) *StateMachine {
	return &StateMachine{session: session}
}

// SetState exits the current state and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Quit asks the application to close after this frame.
func (sm *StateMachine) Quit() {
	sm.quit = true
}

// ShouldQuit reports whether Quit was called.
func (sm *StateMachine) ShouldQuit() bool {
	return sm.quit
}

// Session returns the shared resources.
func (sm *StateMachine) Session() *Session {
	return sm.session
}
