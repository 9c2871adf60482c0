package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard reads WASD or the arrow keys, Space to dash and Q/E/R for skills.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Poll() State {
	var st State
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		st.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		st.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		st.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		st.MoveY++
	}
	st.MoveX, st.MoveY = st.Movement()

	st.Dash = ebiten.IsKeyPressed(ebiten.KeySpace)
	st.MagicArrow = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	st.Fireball = inpututil.IsKeyJustPressed(ebiten.KeyE)
	st.ChainLightning = inpututil.IsKeyJustPressed(ebiten.KeyR)
	return st
}
