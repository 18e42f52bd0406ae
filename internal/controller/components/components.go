// Package components defines the ECS components attached to scene entities.
package components

// Name identifies an entity in logs.
type Name string

// Player tags entities driven by local input. The scene runs its systems over
// every entity carrying this tag.
type Player struct{}

// Input holds the virtual keys currently active for an entity. Keyboard and
// gamepad systems both write into the same set.
type Input struct {
	Keys KeySet
}

// NewInput returns an Input with an empty, ready-to-use key set.
func NewInput() *Input {
	return &Input{Keys: NewKeySet()}
}

// Position is the entity location in world units.
type Position struct {
	X float64
	Y float64
}

// Velocity is the current movement vector in world units per second. Speed is
// the magnitude applied when a direction is held.
type Velocity struct {
	Speed float64
	X     float64
	Y     float64
}

// Stop zeroes the movement vector and keeps Speed.
func (v *Velocity) Stop() {
	v.X, v.Y = 0, 0
}
