package systems

import (
	"padkeys/internal/controller/components"

	"github.com/mlange-42/ark/ecs"
)

// EventConnected is the gamepad facility event fired when a pad is plugged in.
const EventConnected = "connected"

// Host is the scene context handed to systems at construction. Input returns
// nil when the host has no input subsystem; implementations must return an
// untyped nil in that case.
type Host interface {
	Input() InputPlugin
}

// InputPlugin is the host input subsystem. Gamepad returns nil when gamepads
// are not supported.
type InputPlugin interface {
	Gamepad() GamepadPlugin
}

// GamepadPlugin delivers gamepad notifications. Once registers fn for the next
// occurrence of event only, and calls it on the frame-loop goroutine.
type GamepadPlugin interface {
	Once(event string, fn func(Pad))
}

// Pad is a read-only view of one connected gamepad, ordered by the standard
// gamepad layout.
type Pad interface {
	Buttons() []Button
	Axes() []Axis
}

// Button is a digital or pressure-sensitive button; Value is in [0, 1].
type Button struct {
	Value float64
}

// Axis is an analog axis reading in [-1, 1].
type Axis interface {
	Value() float64
}

// AxisValue is a fixed axis reading.
type AxisValue float64

func (a AxisValue) Value() float64 { return float64(a) }

// KeyboardState reports whether the key bound to a virtual key is held.
type KeyboardState interface {
	IsPressed(key components.VirtualKey) bool
}

// InputLookup is the typed accessor for the input component.
type InputLookup interface {
	LookupInput(e ecs.Entity) (*components.Input, bool)
}

// MotionLookup adds access to position and velocity.
type MotionLookup interface {
	InputLookup
	LookupMotion(e ecs.Entity) (*components.Position, *components.Velocity, bool)
}

// Step is one per-frame system run by the scene in a fixed order.
type Step interface {
	Name() string
	Update(entities []ecs.Entity) error
}
