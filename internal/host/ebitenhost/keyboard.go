package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"padkeys/internal/controller/components"
)

var arrowBindings = map[components.VirtualKey]ebiten.Key{
	components.KeyArrowLeft:  ebiten.KeyArrowLeft,
	components.KeyArrowRight: ebiten.KeyArrowRight,
	components.KeyArrowUp:    ebiten.KeyArrowUp,
	components.KeyArrowDown:  ebiten.KeyArrowDown,
}

// Keyboard reports arrow keys held on the ebiten window.
type Keyboard struct{}

func (Keyboard) IsPressed(key components.VirtualKey) bool {
	k, ok := arrowBindings[key]
	return ok && ebiten.IsKeyPressed(k)
}
