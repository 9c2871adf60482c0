package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"survivors-night/internal/system"
)

type fakeState struct {
	name string
	log  *[]string
}

func (f *fakeState) Enter()                    { *f.log = append(*f.log, f.name+":enter") }
func (f *fakeState) Update(deltaTime float64)  { *f.log = append(*f.log, f.name+":update") }
func (f *fakeState) Draw(screen *ebiten.Image) { *f.log = append(*f.log, f.name+":draw") }
func (f *fakeState) Exit()                     { *f.log = append(*f.log, f.name+":exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine(&Session{})
	a := &fakeState{name: "a", log: &log}
	b := &fakeState{name: "b", log: &log}

	sm.Update(0.016)
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)
	sm.Draw(nil)

	assert.Equal(t, []string{"a:enter", "a:update", "a:exit", "b:enter", "b:draw"}, log)
	assert.Same(t, b, sm.Current())
}

func TestStateMachineQuit(t *testing.T) {
	sm := NewStateMachine(&Session{})
	assert.False(t, sm.ShouldQuit())
	sm.Quit()
	assert.True(t, sm.ShouldQuit())
}

func TestGameOverLines(t *testing.T) {
	lines := GameOverLines(system.FinalStats{SurvivalTime: 125.7, EnemiesKilled: 42, Level: 4, Score: 9457})
	assert.Equal(t, []string{
		"GAME OVER",
		"Survived 2:05",
		"Enemies killed 42",
		"Level 4",
		"Score 9457",
		"R restart  M menu",
	}, lines)
}
