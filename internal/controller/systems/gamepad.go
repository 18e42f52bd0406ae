package systems

import (
	"github.com/mlange-42/ark/ecs"

	"padkeys/internal/controller/components"
	"padkeys/internal/logger"
)

// Standard gamepad layout indices (W3C Gamepad "standard" mapping).
const (
	ButtonDpadUp    = 12
	ButtonDpadDown  = 13
	ButtonDpadLeft  = 14
	ButtonDpadRight = 15

	AxisLeftStickX = 0
	AxisLeftStickY = 1
)

// AxisThreshold is the symmetric deadzone edge. Readings at or beyond it count
// as a held direction.
const AxisThreshold = 0.5

const gamepadSystemName = "gamepad"

var dpadKeys = [...]struct {
	button int
	key    components.VirtualKey
}{
	{ButtonDpadLeft, components.KeyArrowLeft},
	{ButtonDpadRight, components.KeyArrowRight},
	{ButtonDpadUp, components.KeyArrowUp},
	{ButtonDpadDown, components.KeyArrowDown},
}

// Negative vertical is up in screen coordinates.
var stickKeys = [...]struct {
	axis          int
	negative, pos components.VirtualKey
}{
	{AxisLeftStickX, components.KeyArrowLeft, components.KeyArrowRight},
	{AxisLeftStickY, components.KeyArrowUp, components.KeyArrowDown},
}

// GamepadSystem translates the connected pad into virtual keys on each
// entity's input component, replacing whatever the set held before.
type GamepadSystem struct {
	conn   *ConnectionManager
	inputs InputLookup
	states *StateLogger
	log    logger.Logger
}

type padWork struct {
	entity ecs.Entity
	input  *components.Input
	pad    Pad
}

// NewGamepadSystem subscribes to gamepad connections on host.
func NewGamepadSystem(host Host, inputs InputLookup, log logger.Logger) *GamepadSystem {
	sysLog := logger.Component(log, "gamepad")
	return &GamepadSystem{
		conn:   NewConnectionManager(host, log),
		inputs: inputs,
		states: NewStateLogger(sysLog),
		log:    sysLog,
	}
}

func (s *GamepadSystem) Name() string { return gamepadSystemName }

// Connection exposes the connection state and pad cell.
func (s *GamepadSystem) Connection() *ConnectionManager { return s.conn }

// Update writes the pad state into every entity. Without a pad it returns
// immediately and leaves all key sets untouched.
func (s *GamepadSystem) Update(entities []ecs.Entity) error {
	if s.conn.Pad().Load() == nil {
		return nil
	}
	work, err := s.collectWork(entities)
	if err != nil {
		s.log.Error("gamepad update aborted", logger.F("error", err))
		return err
	}
	s.applyWork(work)
	return nil
}

// collectWork fetches each input component and then re-checks the pad, in
// that order, before anything is mutated.
func (s *GamepadSystem) collectWork(entities []ecs.Entity) ([]padWork, error) {
	work := make([]padWork, 0, len(entities))
	for _, e := range entities {
		in, ok := s.inputs.LookupInput(e)
		if !ok {
			return nil, entityError(gamepadSystemName, e, ErrMissingInputComponent)
		}
		pad := s.conn.Pad().Load()
		if pad == nil {
			return nil, entityError(gamepadSystemName, e, ErrMissingGamepad)
		}
		work = append(work, padWork{entity: e, input: in, pad: pad})
	}
	return work, nil
}

func (s *GamepadSystem) applyWork(work []padWork) {
	for _, w := range work {
		before := w.input.Keys.Strings()
		w.input.Keys.Clear()
		translatePad(w.pad, w.input.Keys)
		s.states.LogTransition(w.entity, before, w.input.Keys.Strings())
	}
}

// translatePad adds the keys held on pad. Buttons and sticks contribute
// independently. Slots the pad does not report are treated as released.
func translatePad(pad Pad, keys components.KeySet) {
	buttons := pad.Buttons()
	for _, d := range dpadKeys {
		if d.button < len(buttons) && buttons[d.button].Value != 0 {
			keys.Add(d.key)
		}
	}

	axes := pad.Axes()
	for _, st := range stickKeys {
		if st.axis >= len(axes) || axes[st.axis] == nil {
			continue
		}
		switch v := axes[st.axis].Value(); {
		case v <= -AxisThreshold:
			keys.Add(st.negative)
		case v >= AxisThreshold:
			keys.Add(st.pos)
		}
	}
}
